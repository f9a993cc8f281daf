package dto

import "github.com/bkaya/studentportal/internal/app/models"

// DashboardResponse is the role-specific summary shown after login. Fields
// not relevant to the caller's role are omitted.
type DashboardResponse struct {
	Role                string                  `json:"role" example:"student"`
	Announcements       []models.Announcement   `json:"announcements"`
	UnreadNotifications int                     `json:"unreadNotifications" example:"2"`
	PendingLeaves       *int                    `json:"pendingLeaves,omitempty"`       // admin, faculty
	TotalUsers          *int                    `json:"totalUsers,omitempty"`          // admin
	UnreadMessages      *int                    `json:"unreadMessages,omitempty"`      // faculty
	RecentMaterials     []models.StudyMaterial  `json:"recentMaterials,omitempty"`     // faculty (own), student (all)
	Timetable           []models.TimetableEntry `json:"timetable,omitempty"`           // student
}
