package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bkaya/studentportal/internal/pkg/logger"
)

type maintenanceService struct {
	db     *pgxpool.Pool
	reseed func(ctx context.Context) error
}

// NewMaintenanceService creates a new instance of MaintenanceService. The
// reseed function restores the default admin account and sample data after a
// reset.
func NewMaintenanceService(db *pgxpool.Pool, reseed func(ctx context.Context) error) MaintenanceService {
	return &maintenanceService{
		db:     db,
		reseed: reseed,
	}
}

// ResetDatabase wipes all portal data and reseeds the defaults. Everything
// including user accounts is lost; sessions held by deleted users die with
// their refresh tokens.
func (s *maintenanceService) ResetDatabase(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `
		TRUNCATE TABLE notifications, messages, leave_applications,
			study_materials, announcements, timetables, refresh_tokens, users
		RESTART IDENTITY CASCADE`)
	if err != nil {
		return fmt.Errorf("failed to truncate tables: %w", err)
	}

	if s.reseed != nil {
		if err := s.reseed(ctx); err != nil {
			return fmt.Errorf("failed to reseed after reset: %w", err)
		}
	}

	logger.Warn().Msg("Database reset to seed state")
	return nil
}
