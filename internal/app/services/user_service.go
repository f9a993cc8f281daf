package services

import (
	"context"
	"fmt"

	"github.com/bkaya/studentportal/internal/app/models"
	"github.com/bkaya/studentportal/internal/app/models/dto"
	"github.com/bkaya/studentportal/internal/app/repositories"
	"github.com/bkaya/studentportal/internal/pkg/apperrors"
	"github.com/bkaya/studentportal/internal/pkg/logger"
)

type userService struct {
	userRepo repositories.IUserRepository
}

// NewUserService creates a new instance of UserService
func NewUserService(userRepo repositories.IUserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// ListUsers returns all accounts for the admin user management view
func (s *userService) ListUsers(ctx context.Context) ([]dto.UserSummary, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	summaries := make([]dto.UserSummary, 0, len(users))
	for i := range users {
		summaries = append(summaries, dto.UserSummary{
			ID:         users[i].ID,
			Name:       users[i].Name,
			Email:      users[i].Email,
			Role:       string(users[i].Role),
			Department: users[i].Department,
		})
	}
	return summaries, nil
}

// DeleteUser removes an account. Admin accounts cannot be deleted.
func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	role, err := s.userRepo.GetRole(ctx, id)
	if err != nil {
		return err
	}
	if role == models.RoleAdmin {
		return apperrors.ErrAdminNotDeletable
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info().Int64("userId", id).Str("role", string(role)).Msg("User deleted")
	return nil
}
