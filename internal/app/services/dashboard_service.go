package services

import (
	"context"
	"fmt"

	"github.com/bkaya/studentportal/internal/app/models"
	"github.com/bkaya/studentportal/internal/app/models/dto"
	"github.com/bkaya/studentportal/internal/app/repositories"
)

// Dashboard aggregate sizes
const (
	recentAnnouncementLimit = 5
	recentMaterialLimit     = 3
)

type dashboardService struct {
	userRepo         repositories.IUserRepository
	announcementRepo repositories.IAnnouncementRepository
	materialRepo     repositories.IMaterialRepository
	messageRepo      repositories.IMessageRepository
	timetableRepo    repositories.ITimetableRepository
	leaveRepo        repositories.ILeaveRepository
	notifications    NotificationService
}

// NewDashboardService creates a new instance of DashboardService
func NewDashboardService(
	userRepo repositories.IUserRepository,
	announcementRepo repositories.IAnnouncementRepository,
	materialRepo repositories.IMaterialRepository,
	messageRepo repositories.IMessageRepository,
	timetableRepo repositories.ITimetableRepository,
	leaveRepo repositories.ILeaveRepository,
	notifications NotificationService,
) DashboardService {
	return &dashboardService{
		userRepo:         userRepo,
		announcementRepo: announcementRepo,
		materialRepo:     materialRepo,
		messageRepo:      messageRepo,
		timetableRepo:    timetableRepo,
		leaveRepo:        leaveRepo,
		notifications:    notifications,
	}
}

// GetDashboard builds the role-specific summary view
func (s *dashboardService) GetDashboard(ctx context.Context, userID int64, role models.Role) (*dto.DashboardResponse, error) {
	announcements, err := s.announcementRepo.GetRecent(ctx, recentAnnouncementLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent announcements: %w", err)
	}

	unread, err := s.notifications.UnreadCount(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	response := &dto.DashboardResponse{
		Role:                string(role),
		Announcements:       announcements,
		UnreadNotifications: unread,
	}

	switch role {
	case models.RoleAdmin:
		totalUsers, err := s.userRepo.Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count users: %w", err)
		}
		pendingLeaves, err := s.leaveRepo.CountPending(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count pending leaves: %w", err)
		}
		response.TotalUsers = &totalUsers
		response.PendingLeaves = &pendingLeaves

	case models.RoleFaculty:
		pendingLeaves, err := s.leaveRepo.CountPending(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count pending leaves: %w", err)
		}
		unreadMessages, err := s.messageRepo.CountUnread(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to count unread messages: %w", err)
		}
		materials, err := s.materialRepo.GetRecentByUploader(ctx, userID, recentMaterialLimit)
		if err != nil {
			return nil, fmt.Errorf("failed to load recent uploads: %w", err)
		}
		response.PendingLeaves = &pendingLeaves
		response.UnreadMessages = &unreadMessages
		response.RecentMaterials = materials

	case models.RoleStudent:
		user, err := s.userRepo.GetByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		timetable, err := s.timetableRepo.GetByDepartment(ctx, user.Department)
		if err != nil {
			return nil, fmt.Errorf("failed to load timetable: %w", err)
		}
		materials, err := s.materialRepo.GetRecent(ctx, recentMaterialLimit)
		if err != nil {
			return nil, fmt.Errorf("failed to load recent materials: %w", err)
		}
		response.Timetable = timetable
		response.RecentMaterials = materials
	}

	return response, nil
}
