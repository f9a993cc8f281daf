package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/bkaya/studentportal/internal/app/models"
	appRepos "github.com/bkaya/studentportal/internal/app/repositories"
	"github.com/bkaya/studentportal/internal/pkg/auth"
)

// DefaultAdminEmail is the seeded admin account's address
const DefaultAdminEmail = "admin@portal.edu"

// CreateDefaultData creates the default admin account and a sample timetable
// if they don't exist. Errors are collected so one failure doesn't stop the
// rest of the seeding.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	// --- Default Admin User --- //
	exists, err := userRepo.EmailExists(ctx, DefaultAdminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if admin user exists")
		finalErr = errors.Join(finalErr, err)
	} else if !exists {
		lgr.Info().Msg("Creating default admin user...")

		hashedPassword, err := auth.HashPassword("admin123")
		if err != nil {
			lgr.Error().Err(err).Msg("Error hashing admin password")
			finalErr = errors.Join(finalErr, err)
		} else {
			admin := &appModels.User{
				Name:       "Administrator",
				Email:      DefaultAdminEmail,
				Password:   hashedPassword,
				Role:       appModels.RoleAdmin,
				Department: "Administration",
			}

			adminID, err := userRepo.Create(ctx, admin)
			if err != nil {
				lgr.Error().Err(err).Msg("Error creating admin user")
				finalErr = errors.Join(finalErr, err)
			} else {
				lgr.Info().Int64("adminID", adminID).Msg("Default admin user created")
			}
		}
	} else {
		lgr.Info().Msg("Admin user already exists, skipping creation")
	}

	// --- Sample Timetable --- //
	var timetableCount int
	if err := dbPool.QueryRow(ctx, `SELECT COUNT(*) FROM timetables`).Scan(&timetableCount); err != nil {
		lgr.Error().Err(err).Msg("Error counting timetable entries")
		finalErr = errors.Join(finalErr, err)
	} else if timetableCount == 0 {
		lgr.Info().Msg("Creating sample timetable...")

		entries := []struct {
			day, timeSlot, subject, classroom, department string
		}{
			{"Monday", "09:00-10:30", "Data Structures", "B-102", "CS"},
			{"Monday", "11:00-12:30", "Linear Algebra", "A-201", "CS"},
			{"Tuesday", "09:00-10:30", "Operating Systems", "B-104", "CS"},
			{"Wednesday", "13:00-14:30", "Database Systems", "B-102", "CS"},
			{"Thursday", "09:00-10:30", "Circuit Theory", "C-301", "EE"},
			{"Friday", "11:00-12:30", "Signals and Systems", "C-305", "EE"},
		}

		for _, e := range entries {
			_, err := dbPool.Exec(ctx,
				`INSERT INTO timetables (day, time_slot, subject, classroom, department) VALUES ($1, $2, $3, $4, $5)`,
				e.day, e.timeSlot, e.subject, e.classroom, e.department)
			if err != nil {
				lgr.Error().Err(err).Str("subject", e.subject).Msg("Error creating timetable entry")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	lgr.Info().Msg("Default data check/creation finished")
	return finalErr
}
