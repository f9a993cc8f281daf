package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bkaya/studentportal/internal/app/models"
	"github.com/bkaya/studentportal/internal/app/models/dto"
	"github.com/bkaya/studentportal/internal/pkg/apperrors"
)

func newLeaveFixture() (*fakeUserRepo, *fakeLeaveRepo, *fakeNotificationRepo, LeaveService) {
	userRepo := newFakeUserRepo()
	leaveRepo := newFakeLeaveRepo()
	notifRepo := newFakeNotificationRepo()
	svc := NewLeaveService(leaveRepo, NewNotificationService(notifRepo, userRepo))
	return userRepo, leaveRepo, notifRepo, svc
}

func TestLeaveService_Apply(t *testing.T) {
	ctx := context.Background()

	t.Run("creates pending application and notifies faculty", func(t *testing.T) {
		userRepo, _, notifRepo, svc := newLeaveFixture()
		student := userRepo.add(&models.User{Name: "Jane", Email: "jane@campus.edu", Role: models.RoleStudent})
		userRepo.add(&models.User{Name: "Prof A", Email: "a@campus.edu", Role: models.RoleFaculty})
		userRepo.add(&models.User{Name: "Prof B", Email: "b@campus.edu", Role: models.RoleFaculty})

		application, err := svc.Apply(ctx, student.ID, student.Name, &dto.ApplyLeaveRequest{
			StartDate: "2026-09-10",
			EndDate:   "2026-09-12",
			Reason:    "Family visit",
		})
		require.NoError(t, err)
		assert.Equal(t, models.LeaveStatusPending, application.Status)
		assert.Nil(t, application.ReviewerID)

		require.Len(t, notifRepo.notifications, 2, "both faculty members notified")
		assert.Equal(t, "New leave application from Jane", notifRepo.notifications[0].Content)
		assert.Equal(t, "/leave/manage", notifRepo.notifications[0].Link)
	})

	t.Run("rejects end date before start date", func(t *testing.T) {
		userRepo, _, _, svc := newLeaveFixture()
		student := userRepo.add(&models.User{Name: "Jane", Email: "jane@campus.edu", Role: models.RoleStudent})

		_, err := svc.Apply(ctx, student.ID, student.Name, &dto.ApplyLeaveRequest{
			StartDate: "2026-09-12",
			EndDate:   "2026-09-10",
			Reason:    "typo",
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidLeaveDates)
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		userRepo, _, _, svc := newLeaveFixture()
		student := userRepo.add(&models.User{Name: "Jane", Email: "jane@campus.edu", Role: models.RoleStudent})

		_, err := svc.Apply(ctx, student.ID, student.Name, &dto.ApplyLeaveRequest{
			StartDate: "next monday",
			EndDate:   "2026-09-10",
			Reason:    "x",
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidLeaveDates)
	})

	t.Run("single day leave is valid", func(t *testing.T) {
		userRepo, _, _, svc := newLeaveFixture()
		student := userRepo.add(&models.User{Name: "Jane", Email: "jane@campus.edu", Role: models.RoleStudent})

		application, err := svc.Apply(ctx, student.ID, student.Name, &dto.ApplyLeaveRequest{
			StartDate: "2026-09-10",
			EndDate:   "2026-09-10",
			Reason:    "appointment",
		})
		require.NoError(t, err)
		assert.Equal(t, application.StartDate, application.EndDate)
	})
}

func TestLeaveService_Decide(t *testing.T) {
	ctx := context.Background()

	apply := func(t *testing.T, userRepo *fakeUserRepo, svc LeaveService) (*models.User, *models.LeaveApplication) {
		student := userRepo.add(&models.User{Name: "Jane", Email: "jane@campus.edu", Role: models.RoleStudent})
		application, err := svc.Apply(ctx, student.ID, student.Name, &dto.ApplyLeaveRequest{
			StartDate: "2026-09-10", EndDate: "2026-09-12", Reason: "visit",
		})
		require.NoError(t, err)
		return student, application
	}

	t.Run("approve marks application and notifies applicant", func(t *testing.T) {
		userRepo, _, notifRepo, svc := newLeaveFixture()
		reviewer := userRepo.add(&models.User{Name: "Prof", Email: "p@campus.edu", Role: models.RoleFaculty})
		student, application := apply(t, userRepo, svc)
		notifRepo.notifications = nil // drop the application fan-out

		decided, err := svc.Decide(ctx, application.ID, "approve", reviewer.ID)
		require.NoError(t, err)
		assert.Equal(t, models.LeaveStatusApproved, decided.Status)
		require.NotNil(t, decided.ReviewerID)
		assert.Equal(t, reviewer.ID, *decided.ReviewerID)
		assert.NotNil(t, decided.ReviewedAt)

		require.Len(t, notifRepo.notifications, 1)
		assert.Equal(t, student.ID, notifRepo.notifications[0].UserID)
		assert.Equal(t, "Your leave application has been approved", notifRepo.notifications[0].Content)
		assert.Equal(t, "/dashboard", notifRepo.notifications[0].Link)
	})

	t.Run("reject produces the rejected notification", func(t *testing.T) {
		userRepo, _, notifRepo, svc := newLeaveFixture()
		reviewer := userRepo.add(&models.User{Name: "Prof", Email: "p@campus.edu", Role: models.RoleFaculty})
		_, application := apply(t, userRepo, svc)
		notifRepo.notifications = nil

		decided, err := svc.Decide(ctx, application.ID, "reject", reviewer.ID)
		require.NoError(t, err)
		assert.Equal(t, models.LeaveStatusRejected, decided.Status)
		require.Len(t, notifRepo.notifications, 1)
		assert.Equal(t, "Your leave application has been rejected", notifRepo.notifications[0].Content)
	})

	t.Run("rejects unknown decision tokens", func(t *testing.T) {
		userRepo, _, _, svc := newLeaveFixture()
		reviewer := userRepo.add(&models.User{Name: "Prof", Email: "p@campus.edu", Role: models.RoleFaculty})
		_, application := apply(t, userRepo, svc)

		for _, decision := range []string{"approved", "deny", "APPROVE", ""} {
			_, err := svc.Decide(ctx, application.ID, decision, reviewer.ID)
			assert.ErrorIs(t, err, apperrors.ErrInvalidDecision, "decision %q", decision)
		}
	})

	t.Run("decided applications are terminal", func(t *testing.T) {
		userRepo, _, _, svc := newLeaveFixture()
		reviewer := userRepo.add(&models.User{Name: "Prof", Email: "p@campus.edu", Role: models.RoleFaculty})
		_, application := apply(t, userRepo, svc)

		_, err := svc.Decide(ctx, application.ID, "approve", reviewer.ID)
		require.NoError(t, err)

		_, err = svc.Decide(ctx, application.ID, "reject", reviewer.ID)
		assert.ErrorIs(t, err, apperrors.ErrLeaveAlreadyDecided)
	})

	t.Run("unknown application", func(t *testing.T) {
		userRepo, _, _, svc := newLeaveFixture()
		reviewer := userRepo.add(&models.User{Name: "Prof", Email: "p@campus.edu", Role: models.RoleFaculty})

		_, err := svc.Decide(ctx, 9999, "approve", reviewer.ID)
		assert.ErrorIs(t, err, apperrors.ErrLeaveNotFound)
	})
}

func TestLeaveService_ListPending(t *testing.T) {
	ctx := context.Background()
	userRepo, leaveRepo, _, svc := newLeaveFixture()
	reviewer := userRepo.add(&models.User{Name: "Prof", Email: "p@campus.edu", Role: models.RoleFaculty})
	student := userRepo.add(&models.User{Name: "Jane", Email: "jane@campus.edu", Role: models.RoleStudent})
	leaveRepo.applicants[student.ID] = student.Name

	first, err := svc.Apply(ctx, student.ID, student.Name, &dto.ApplyLeaveRequest{
		StartDate: "2026-09-10", EndDate: "2026-09-11", Reason: "a",
	})
	require.NoError(t, err)
	second, err := svc.Apply(ctx, student.ID, student.Name, &dto.ApplyLeaveRequest{
		StartDate: "2026-10-01", EndDate: "2026-10-02", Reason: "b",
	})
	require.NoError(t, err)

	_, err = svc.Decide(ctx, first.ID, "approve", reviewer.ID)
	require.NoError(t, err)

	pending, err := svc.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1, "decided applications drop out of the pending list")
	assert.Equal(t, second.ID, pending[0].ID)
	assert.Equal(t, "Jane", pending[0].ApplicantName)
}
