package models

// Role defines a user role
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleFaculty Role = "faculty"
	RoleStudent Role = "student"
)

// ValidRole reports whether s (case-insensitively) names one of the three
// roles the portal knows about.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleAdmin, RoleFaculty, RoleStudent:
		return true
	}
	return false
}

// LeaveStatus defines the state of a leave application
type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
	LeaveStatusRejected LeaveStatus = "rejected"
)
