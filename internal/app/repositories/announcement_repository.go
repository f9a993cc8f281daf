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

// IAnnouncementRepository defines the interface for announcement persistence
type IAnnouncementRepository interface {
	Create(ctx context.Context, announcement *models.Announcement) (int64, error)
	GetAll(ctx context.Context) ([]models.Announcement, error)
	GetRecent(ctx context.Context, limit uint64) ([]models.Announcement, error)
}

// AnnouncementRepository handles database operations for announcements
type AnnouncementRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAnnouncementRepository creates a new AnnouncementRepository
func NewAnnouncementRepository(db *pgxpool.Pool) *AnnouncementRepository {
	return &AnnouncementRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new announcement and returns its id
func (r *AnnouncementRepository) Create(ctx context.Context, announcement *models.Announcement) (int64, error) {
	sql, args, err := r.sb.Insert("announcements").
		Columns("title", "content", "posted_by", "is_urgent").
		Values(announcement.Title, announcement.Content, announcement.PostedBy, announcement.IsUrgent).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create announcement SQL")
		return 0, fmt.Errorf("failed to build create announcement query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&announcement.ID, &announcement.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create announcement query")
		return 0, fmt.Errorf("error creating announcement: %w", err)
	}

	return announcement.ID, nil
}

func (r *AnnouncementRepository) selectAnnouncements() squirrel.SelectBuilder {
	return r.sb.Select("id", "title", "content", "posted_by", "created_at", "is_urgent").
		From("announcements").
		OrderBy("created_at DESC")
}

// GetAll retrieves every announcement, newest first
func (r *AnnouncementRepository) GetAll(ctx context.Context) ([]models.Announcement, error) {
	return r.query(ctx, r.selectAnnouncements())
}

// GetRecent retrieves the newest announcements up to limit
func (r *AnnouncementRepository) GetRecent(ctx context.Context, limit uint64) ([]models.Announcement, error) {
	return r.query(ctx, r.selectAnnouncements().Limit(limit))
}

func (r *AnnouncementRepository) query(ctx context.Context, builder squirrel.SelectBuilder) ([]models.Announcement, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build announcements query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing announcements query")
		return nil, fmt.Errorf("error listing announcements: %w", err)
	}
	defer rows.Close()

	return collectAnnouncements(rows)
}

func collectAnnouncements(rows pgx.Rows) ([]models.Announcement, error) {
	announcements := make([]models.Announcement, 0)
	for rows.Next() {
		var a models.Announcement
		if err := rows.Scan(&a.ID, &a.Title, &a.Content, &a.PostedBy, &a.CreatedAt, &a.IsUrgent); err != nil {
			return nil, fmt.Errorf("error scanning announcement row: %w", err)
		}
		announcements = append(announcements, a)
	}
	return announcements, rows.Err()
}
