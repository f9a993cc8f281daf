package services

import (
	"context"
	"mime/multipart"

	"github.com/bkaya/studentportal/internal/app/models"
	"github.com/bkaya/studentportal/internal/app/models/dto"
)

// AuthService handles registration, login and session lifecycle
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	Logout(ctx context.Context, userID int64) error
}

// DashboardService computes the role-specific summary view
type DashboardService interface {
	GetDashboard(ctx context.Context, userID int64, role models.Role) (*dto.DashboardResponse, error)
}

// AnnouncementService handles announcement listing and creation
type AnnouncementService interface {
	GetAll(ctx context.Context) ([]models.Announcement, error)
	Create(ctx context.Context, posterID int64, req *dto.CreateAnnouncementRequest) (*models.Announcement, error)
}

// MaterialService handles study material listing, upload and download
type MaterialService interface {
	List(ctx context.Context) (*dto.MaterialListResponse, error)
	Upload(ctx context.Context, uploaderID int64, req *dto.UploadMaterialRequest, file *multipart.FileHeader) (*models.StudyMaterial, error)
	Download(ctx context.Context, id int64) (*models.StudyMaterial, string, error)
}

// ChatService handles the role-specific chat view and message sending
type ChatService interface {
	GetView(ctx context.Context, userID int64, role models.Role) (*dto.ChatViewResponse, error)
	Send(ctx context.Context, senderID int64, senderName string, req *dto.SendMessageRequest) (*models.Message, error)
}

// TimetableService returns the role-filtered schedule
type TimetableService interface {
	GetForUser(ctx context.Context, userID int64, role models.Role) ([]models.TimetableEntry, error)
}

// LeaveService handles leave applications and decisions
type LeaveService interface {
	Apply(ctx context.Context, applicantID int64, applicantName string, req *dto.ApplyLeaveRequest) (*models.LeaveApplication, error)
	ListPending(ctx context.Context) ([]dto.PendingLeave, error)
	Decide(ctx context.Context, leaveID int64, decision string, reviewerID int64) (*models.LeaveApplication, error)
}

// NotificationService creates notifications on domain events and serves a
// user's notification feed.
type NotificationService interface {
	Notify(ctx context.Context, userID int64, content, link string) error
	NotifyAllUsers(ctx context.Context, content, link string) (int, error)
	NotifyRole(ctx context.Context, role models.Role, content, link string) (int, error)
	ListAndMarkRead(ctx context.Context, userID int64) ([]models.Notification, error)
	UnreadCount(ctx context.Context, userID int64) (int, error)
}

// UserService covers the admin user management surface
type UserService interface {
	ListUsers(ctx context.Context) ([]dto.UserSummary, error)
	DeleteUser(ctx context.Context, id int64) error
}

// MaintenanceService covers destructive admin maintenance operations
type MaintenanceService interface {
	ResetDatabase(ctx context.Context) error
}
