package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bkaya/studentportal/internal/app/models"
	"github.com/bkaya/studentportal/internal/pkg/apperrors"
)

func TestUserService_ListUsers(t *testing.T) {
	ctx := context.Background()
	userRepo := newFakeUserRepo()
	userRepo.add(&models.User{Name: "Admin", Email: "a@campus.edu", Role: models.RoleAdmin, Password: "hash"})
	userRepo.add(&models.User{Name: "Jane", Email: "j@campus.edu", Role: models.RoleStudent, Password: "hash"})
	svc := NewUserService(userRepo)

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "admin", users[0].Role)
	assert.Equal(t, "Jane", users[1].Name)
}

func TestUserService_DeleteUser(t *testing.T) {
	ctx := context.Background()
	userRepo := newFakeUserRepo()
	admin := userRepo.add(&models.User{Name: "Admin", Email: "a@campus.edu", Role: models.RoleAdmin})
	student := userRepo.add(&models.User{Name: "Jane", Email: "j@campus.edu", Role: models.RoleStudent})
	svc := NewUserService(userRepo)

	t.Run("deletes non-admin accounts", func(t *testing.T) {
		require.NoError(t, svc.DeleteUser(ctx, student.ID))
		_, err := userRepo.GetByID(ctx, student.ID)
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})

	t.Run("refuses to delete admins", func(t *testing.T) {
		err := svc.DeleteUser(ctx, admin.ID)
		assert.ErrorIs(t, err, apperrors.ErrAdminNotDeletable)
		_, getErr := userRepo.GetByID(ctx, admin.ID)
		assert.NoError(t, getErr)
	})

	t.Run("unknown user", func(t *testing.T) {
		err := svc.DeleteUser(ctx, 9999)
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}
