package services

import (
	"context"
	"fmt"

	"github.com/bkaya/studentportal/internal/app/models"
	"github.com/bkaya/studentportal/internal/app/repositories"
	"github.com/bkaya/studentportal/internal/pkg/logger"
)

type notificationService struct {
	notificationRepo repositories.INotificationRepository
	userRepo         repositories.IUserRepository
}

// NewNotificationService creates a new instance of NotificationService
func NewNotificationService(
	notificationRepo repositories.INotificationRepository,
	userRepo repositories.IUserRepository,
) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
	}
}

// Notify creates a single notification for the given user.
func (s *notificationService) Notify(ctx context.Context, userID int64, content, link string) error {
	notification := &models.Notification{
		UserID:  userID,
		Content: content,
		Link:    link,
	}
	if _, err := s.notificationRepo.Create(ctx, notification); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// NotifyAllUsers fans a notification out to every registered user. On failure
// the notifications created so far are kept; the count reflects how many were
// written before the error.
func (s *notificationService) NotifyAllUsers(ctx context.Context, content, link string) (int, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list users for notification fan-out: %w", err)
	}
	return s.fanOut(ctx, users, content, link)
}

// NotifyRole fans a notification out to every user holding the given role.
func (s *notificationService) NotifyRole(ctx context.Context, role models.Role, content, link string) (int, error) {
	users, err := s.userRepo.GetByRole(ctx, role)
	if err != nil {
		return 0, fmt.Errorf("failed to list %s users for notification fan-out: %w", role, err)
	}
	return s.fanOut(ctx, users, content, link)
}

func (s *notificationService) fanOut(ctx context.Context, users []models.User, content, link string) (int, error) {
	created := 0
	for i := range users {
		notification := &models.Notification{
			UserID:  users[i].ID,
			Content: content,
			Link:    link,
		}
		if _, err := s.notificationRepo.Create(ctx, notification); err != nil {
			logger.Error().Err(err).Int64("userId", users[i].ID).Msg("Notification fan-out stopped mid-way")
			return created, fmt.Errorf("failed to create notification for user %d: %w", users[i].ID, err)
		}
		created++
	}
	return created, nil
}

// ListAndMarkRead returns the user's full notification feed, newest first,
// and marks every unread entry as read. Viewing the feed is what clears the
// unread badge.
func (s *notificationService) ListAndMarkRead(ctx context.Context, userID int64) ([]models.Notification, error) {
	notifications, err := s.notificationRepo.GetAllForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	for i := range notifications {
		if notifications[i].IsRead {
			continue
		}
		if err := s.notificationRepo.MarkRead(ctx, notifications[i].ID); err != nil {
			return nil, fmt.Errorf("failed to mark notification %d as read: %w", notifications[i].ID, err)
		}
		notifications[i].IsRead = true
	}

	return notifications, nil
}

// UnreadCount returns the number of unread notifications for the user.
func (s *notificationService) UnreadCount(ctx context.Context, userID int64) (int, error) {
	return s.notificationRepo.CountUnread(ctx, userID)
}
