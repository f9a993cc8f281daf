package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bkaya/studentportal/internal/app/models"
	"github.com/bkaya/studentportal/internal/app/models/dto"
)

func TestAnnouncementService_Create(t *testing.T) {
	ctx := context.Background()
	userRepo := newFakeUserRepo()
	notifRepo := newFakeNotificationRepo()
	announcementRepo := newFakeAnnouncementRepo()

	admin := userRepo.add(&models.User{Name: "Admin", Email: "admin@campus.edu", Role: models.RoleAdmin})
	userRepo.add(&models.User{Name: "F", Email: "f@campus.edu", Role: models.RoleFaculty})
	userRepo.add(&models.User{Name: "S", Email: "s@campus.edu", Role: models.RoleStudent})

	notifications := NewNotificationService(notifRepo, userRepo)
	svc := NewAnnouncementService(announcementRepo, notifications)

	announcement, err := svc.Create(ctx, admin.ID, &dto.CreateAnnouncementRequest{
		Title:    "Exam week",
		Content:  "Midterms start Monday",
		IsUrgent: true,
	})
	require.NoError(t, err)
	assert.NotZero(t, announcement.ID)
	assert.Equal(t, admin.ID, announcement.PostedBy)
	assert.True(t, announcement.IsUrgent)

	// Every user got exactly one notification
	require.Len(t, notifRepo.notifications, 3)
	for _, n := range notifRepo.notifications {
		assert.Equal(t, "New announcement: Exam week", n.Content)
		assert.Equal(t, "/announcements", n.Link)
	}
}

func TestAnnouncementService_GetAll(t *testing.T) {
	ctx := context.Background()
	userRepo := newFakeUserRepo()
	announcementRepo := newFakeAnnouncementRepo()
	admin := userRepo.add(&models.User{Name: "Admin", Email: "admin@campus.edu", Role: models.RoleAdmin})

	svc := NewAnnouncementService(announcementRepo, NewNotificationService(newFakeNotificationRepo(), userRepo))

	_, err := svc.Create(ctx, admin.ID, &dto.CreateAnnouncementRequest{Title: "first", Content: "a"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, admin.ID, &dto.CreateAnnouncementRequest{Title: "second", Content: "b"})
	require.NoError(t, err)

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "second", all[0].Title, "newest first")
}
