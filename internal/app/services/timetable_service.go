package services

import (
	"context"

	"github.com/bkaya/studentportal/internal/app/models"
	"github.com/bkaya/studentportal/internal/app/repositories"
)

type timetableService struct {
	timetableRepo repositories.ITimetableRepository
	userRepo      repositories.IUserRepository
}

// NewTimetableService creates a new instance of TimetableService
func NewTimetableService(
	timetableRepo repositories.ITimetableRepository,
	userRepo repositories.IUserRepository,
) TimetableService {
	return &timetableService{
		timetableRepo: timetableRepo,
		userRepo:      userRepo,
	}
}

// GetForUser returns the schedule visible to the user. Students see only
// their own department's entries; faculty and admins see everything.
func (s *timetableService) GetForUser(ctx context.Context, userID int64, role models.Role) ([]models.TimetableEntry, error) {
	if role != models.RoleStudent {
		return s.timetableRepo.GetAll(ctx)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.timetableRepo.GetByDepartment(ctx, user.Department)
}
