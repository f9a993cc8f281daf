package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bkaya/studentportal/internal/app/models"
	"github.com/bkaya/studentportal/internal/app/models/dto"
	"github.com/bkaya/studentportal/internal/pkg/apperrors"
	"github.com/bkaya/studentportal/internal/pkg/logger"
)

// ILeaveRepository defines the interface for leave application persistence
type ILeaveRepository interface {
	Create(ctx context.Context, application *models.LeaveApplication) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.LeaveApplication, error)
	GetPendingWithApplicant(ctx context.Context) ([]dto.PendingLeave, error)
	CountPending(ctx context.Context) (int, error)
	Decide(ctx context.Context, id int64, status models.LeaveStatus, reviewerID int64, reviewedAt time.Time) error
}

// LeaveRepository handles database operations for leave applications
type LeaveRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewLeaveRepository creates a new LeaveRepository
func NewLeaveRepository(db *pgxpool.Pool) *LeaveRepository {
	return &LeaveRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const leaveColumns = "id, applicant_id, start_date, end_date, reason, status, reviewer_id, reviewed_at"

// Create inserts a new leave application with pending status and returns its id
func (r *LeaveRepository) Create(ctx context.Context, application *models.LeaveApplication) (int64, error) {
	sql, args, err := r.sb.Insert("leave_applications").
		Columns("applicant_id", "start_date", "end_date", "reason", "status").
		Values(application.ApplicantID, application.StartDate, application.EndDate,
			application.Reason, models.LeaveStatusPending).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create leave SQL")
		return 0, fmt.Errorf("failed to build create leave query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&application.ID)
	if err != nil {
		logger.Error().Err(err).Int64("applicantID", application.ApplicantID).Msg("Error executing create leave query")
		return 0, fmt.Errorf("error creating leave application: %w", err)
	}
	application.Status = models.LeaveStatusPending

	return application.ID, nil
}

// GetByID retrieves a leave application by id
func (r *LeaveRepository) GetByID(ctx context.Context, id int64) (*models.LeaveApplication, error) {
	sql, args, err := r.sb.Select(leaveColumns).From("leave_applications").
		Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get leave query: %w", err)
	}

	application := &models.LeaveApplication{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&application.ID, &application.ApplicantID, &application.StartDate, &application.EndDate,
		&application.Reason, &application.Status, &application.ReviewerID, &application.ReviewedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrLeaveNotFound
		}
		logger.Error().Err(err).Int64("leaveID", id).Msg("Error scanning leave row")
		return nil, fmt.Errorf("error retrieving leave application: %w", err)
	}

	return application, nil
}

// GetPendingWithApplicant retrieves all pending applications joined with the
// applicant's name.
func (r *LeaveRepository) GetPendingWithApplicant(ctx context.Context) ([]dto.PendingLeave, error) {
	sql, args, err := r.sb.Select("l.id", "l.applicant_id", "u.name AS applicant_name",
		"l.start_date", "l.end_date", "l.reason").
		From("leave_applications l").
		Join("users u ON l.applicant_id = u.id").
		Where(squirrel.Eq{"l.status": models.LeaveStatusPending}).
		OrderBy("l.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build pending leaves query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing pending leaves query")
		return nil, fmt.Errorf("error listing pending leaves: %w", err)
	}
	defer rows.Close()

	leaves := make([]dto.PendingLeave, 0)
	for rows.Next() {
		var l dto.PendingLeave
		if err := rows.Scan(&l.ID, &l.ApplicantID, &l.ApplicantName,
			&l.StartDate, &l.EndDate, &l.Reason); err != nil {
			return nil, fmt.Errorf("error scanning pending leave row: %w", err)
		}
		leaves = append(leaves, l)
	}
	return leaves, rows.Err()
}

// CountPending counts pending leave applications
func (r *LeaveRepository) CountPending(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM leave_applications WHERE status = $1`,
		models.LeaveStatusPending).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting pending leaves: %w", err)
	}
	return count, nil
}

// Decide moves a pending application to approved or rejected and records the
// reviewer. The WHERE clause only matches pending rows, so approved and
// rejected stay terminal even under concurrent decisions.
func (r *LeaveRepository) Decide(ctx context.Context, id int64, status models.LeaveStatus, reviewerID int64, reviewedAt time.Time) error {
	sql, args, err := r.sb.Update("leave_applications").
		Set("status", status).
		Set("reviewer_id", reviewerID).
		Set("reviewed_at", reviewedAt).
		Where(squirrel.Eq{"id": id, "status": models.LeaveStatusPending}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build decide leave query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("leaveID", id).Msg("Error executing decide leave query")
		return fmt.Errorf("error deciding leave application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Either the id is unknown or the row already left pending.
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return getErr
		}
		return apperrors.ErrLeaveAlreadyDecided
	}

	return nil
}
