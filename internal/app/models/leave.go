package models

import "time"

// LeaveApplication defines the leave application model based on the
// 'leave_applications' table. ReviewerID and ReviewedAt are set only once a
// decision has been made; approved and rejected are terminal states.
type LeaveApplication struct {
	ID          int64       `json:"id" db:"id"`
	ApplicantID int64       `json:"applicantId" db:"applicant_id"`
	StartDate   time.Time   `json:"startDate" db:"start_date"`
	EndDate     time.Time   `json:"endDate" db:"end_date"`
	Reason      string      `json:"reason" db:"reason"`
	Status      LeaveStatus `json:"status" db:"status"`
	ReviewerID  *int64      `json:"reviewerId,omitempty" db:"reviewer_id"`
	ReviewedAt  *time.Time  `json:"reviewedAt,omitempty" db:"reviewed_at"`
}
