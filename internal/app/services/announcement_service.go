package services

import (
	"context"
	"fmt"

	"github.com/bkaya/studentportal/internal/app/models"
	"github.com/bkaya/studentportal/internal/app/models/dto"
	"github.com/bkaya/studentportal/internal/app/repositories"
	"github.com/bkaya/studentportal/internal/pkg/logger"
)

type announcementService struct {
	announcementRepo repositories.IAnnouncementRepository
	notifications    NotificationService
}

// NewAnnouncementService creates a new instance of AnnouncementService
func NewAnnouncementService(
	announcementRepo repositories.IAnnouncementRepository,
	notifications NotificationService,
) AnnouncementService {
	return &announcementService{
		announcementRepo: announcementRepo,
		notifications:    notifications,
	}
}

// GetAll returns every announcement, newest first
func (s *announcementService) GetAll(ctx context.Context) ([]models.Announcement, error) {
	return s.announcementRepo.GetAll(ctx)
}

// Create posts an announcement and notifies every user about it. A fan-out
// failure does not undo the announcement itself.
func (s *announcementService) Create(ctx context.Context, posterID int64, req *dto.CreateAnnouncementRequest) (*models.Announcement, error) {
	announcement := &models.Announcement{
		Title:    req.Title,
		Content:  req.Content,
		IsUrgent: req.IsUrgent,
		PostedBy: posterID,
	}

	id, err := s.announcementRepo.Create(ctx, announcement)
	if err != nil {
		return nil, fmt.Errorf("failed to create announcement: %w", err)
	}
	announcement.ID = id

	content := fmt.Sprintf("New announcement: %s", announcement.Title)
	notified, err := s.notifications.NotifyAllUsers(ctx, content, "/announcements")
	if err != nil {
		logger.Error().Err(err).Int64("announcementId", announcement.ID).
			Msg("Announcement notification fan-out failed")
	} else {
		logger.Info().Int64("announcementId", announcement.ID).Int("notified", notified).
			Msg("Announcement posted")
	}

	return announcement, nil
}
