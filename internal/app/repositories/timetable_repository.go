package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bkaya/studentportal/internal/app/models"
	"github.com/bkaya/studentportal/internal/pkg/logger"
)

// ITimetableRepository defines the interface for timetable reads. The
// timetable is read-only through the API; rows are managed by seeding or
// direct administration.
type ITimetableRepository interface {
	GetAll(ctx context.Context) ([]models.TimetableEntry, error)
	GetByDepartment(ctx context.Context, department string) ([]models.TimetableEntry, error)
}

// TimetableRepository handles database operations for timetables
type TimetableRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTimetableRepository creates a new TimetableRepository
func NewTimetableRepository(db *pgxpool.Pool) *TimetableRepository {
	return &TimetableRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *TimetableRepository) selectEntries() squirrel.SelectBuilder {
	return r.sb.Select("id", "day", "time_slot", "subject", "faculty_id", "classroom", "department").
		From("timetables").
		OrderBy("id")
}

// GetAll retrieves every timetable entry
func (r *TimetableRepository) GetAll(ctx context.Context) ([]models.TimetableEntry, error) {
	return r.query(ctx, r.selectEntries())
}

// GetByDepartment retrieves the timetable entries for one department
func (r *TimetableRepository) GetByDepartment(ctx context.Context, department string) ([]models.TimetableEntry, error) {
	return r.query(ctx, r.selectEntries().Where(squirrel.Eq{"department": department}))
}

func (r *TimetableRepository) query(ctx context.Context, builder squirrel.SelectBuilder) ([]models.TimetableEntry, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build timetable query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing timetable query")
		return nil, fmt.Errorf("error listing timetable: %w", err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

func collectEntries(rows pgx.Rows) ([]models.TimetableEntry, error) {
	entries := make([]models.TimetableEntry, 0)
	for rows.Next() {
		var e models.TimetableEntry
		if err := rows.Scan(&e.ID, &e.Day, &e.TimeSlot, &e.Subject, &e.FacultyID, &e.Classroom, &e.Department); err != nil {
			return nil, fmt.Errorf("error scanning timetable row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
