package dto

import (
	"time"

	"github.com/bkaya/studentportal/internal/app/models"
)

// ApplyLeaveRequest is the payload for submitting a leave application.
// Dates are calendar dates in YYYY-MM-DD form.
type ApplyLeaveRequest struct {
	StartDate string `json:"startDate" binding:"required" example:"2024-01-10"`
	EndDate   string `json:"endDate" binding:"required" example:"2024-01-12"`
	Reason    string `json:"reason" binding:"required" example:"Family visit"`
}

// PendingLeave is a pending application joined with its applicant's name
type PendingLeave struct {
	ID            int64     `json:"id" db:"id"`
	ApplicantID   int64     `json:"applicantId" db:"applicant_id"`
	ApplicantName string    `json:"applicantName" db:"applicant_name"`
	StartDate     time.Time `json:"startDate" db:"start_date"`
	EndDate       time.Time `json:"endDate" db:"end_date"`
	Reason        string    `json:"reason" db:"reason"`
}

// LeaveDecisionResponse reports the outcome of a decision
type LeaveDecisionResponse struct {
	Application models.LeaveApplication `json:"application"`
	Decision    string                  `json:"decision" example:"approve"`
}
