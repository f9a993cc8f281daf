package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bkaya/studentportal/internal/app/models"
	"github.com/bkaya/studentportal/internal/pkg/apperrors"
	"github.com/bkaya/studentportal/internal/pkg/logger"
)

// IMaterialRepository defines the interface for study material persistence
type IMaterialRepository interface {
	Create(ctx context.Context, material *models.StudyMaterial) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.StudyMaterial, error)
	GetAll(ctx context.Context) ([]models.StudyMaterial, error)
	GetRecent(ctx context.Context, limit uint64) ([]models.StudyMaterial, error)
	GetRecentByUploader(ctx context.Context, uploaderID int64, limit uint64) ([]models.StudyMaterial, error)
	GetSubjects(ctx context.Context) ([]string, error)
}

// MaterialRepository handles database operations for study materials
type MaterialRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMaterialRepository creates a new MaterialRepository
func NewMaterialRepository(db *pgxpool.Pool) *MaterialRepository {
	return &MaterialRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const materialColumns = "id, title, filename, description, uploaded_by, uploaded_at, subject, file_type"

// Create inserts a new study material row and returns its id
func (r *MaterialRepository) Create(ctx context.Context, material *models.StudyMaterial) (int64, error) {
	sql, args, err := r.sb.Insert("study_materials").
		Columns("title", "filename", "description", "uploaded_by", "subject", "file_type").
		Values(material.Title, material.Filename, material.Description,
			material.UploadedBy, material.Subject, material.FileType).
		Suffix("RETURNING id, uploaded_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create material SQL")
		return 0, fmt.Errorf("failed to build create material query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&material.ID, &material.UploadedAt)
	if err != nil {
		logger.Error().Err(err).Str("filename", material.Filename).Msg("Error executing create material query")
		return 0, fmt.Errorf("error creating material: %w", err)
	}

	return material.ID, nil
}

// GetByID retrieves a study material by id
func (r *MaterialRepository) GetByID(ctx context.Context, id int64) (*models.StudyMaterial, error) {
	sql, args, err := r.sb.Select(materialColumns).From("study_materials").
		Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get material query: %w", err)
	}

	material := &models.StudyMaterial{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&material.ID, &material.Title, &material.Filename, &material.Description,
		&material.UploadedBy, &material.UploadedAt, &material.Subject, &material.FileType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMaterialNotFound
		}
		logger.Error().Err(err).Int64("materialID", id).Msg("Error scanning material row")
		return nil, fmt.Errorf("error retrieving material: %w", err)
	}

	return material, nil
}

func (r *MaterialRepository) selectMaterials() squirrel.SelectBuilder {
	return r.sb.Select(materialColumns).
		From("study_materials").
		OrderBy("uploaded_at DESC")
}

// GetAll retrieves every study material, newest first
func (r *MaterialRepository) GetAll(ctx context.Context) ([]models.StudyMaterial, error) {
	return r.query(ctx, r.selectMaterials())
}

// GetRecent retrieves the newest materials system-wide up to limit
func (r *MaterialRepository) GetRecent(ctx context.Context, limit uint64) ([]models.StudyMaterial, error) {
	return r.query(ctx, r.selectMaterials().Limit(limit))
}

// GetRecentByUploader retrieves a user's newest materials up to limit
func (r *MaterialRepository) GetRecentByUploader(ctx context.Context, uploaderID int64, limit uint64) ([]models.StudyMaterial, error) {
	return r.query(ctx, r.selectMaterials().Where(squirrel.Eq{"uploaded_by": uploaderID}).Limit(limit))
}

// GetSubjects retrieves the distinct non-empty subjects across all materials
func (r *MaterialRepository) GetSubjects(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT DISTINCT subject FROM study_materials WHERE subject <> '' ORDER BY subject`)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing subjects query")
		return nil, fmt.Errorf("error listing subjects: %w", err)
	}
	defer rows.Close()

	subjects := make([]string, 0)
	for rows.Next() {
		var subject string
		if err := rows.Scan(&subject); err != nil {
			return nil, fmt.Errorf("error scanning subject row: %w", err)
		}
		subjects = append(subjects, subject)
	}
	return subjects, rows.Err()
}

func (r *MaterialRepository) query(ctx context.Context, builder squirrel.SelectBuilder) ([]models.StudyMaterial, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build materials query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing materials query")
		return nil, fmt.Errorf("error listing materials: %w", err)
	}
	defer rows.Close()

	materials := make([]models.StudyMaterial, 0)
	for rows.Next() {
		var m models.StudyMaterial
		if err := rows.Scan(&m.ID, &m.Title, &m.Filename, &m.Description,
			&m.UploadedBy, &m.UploadedAt, &m.Subject, &m.FileType); err != nil {
			return nil, fmt.Errorf("error scanning material row: %w", err)
		}
		materials = append(materials, m)
	}
	return materials, rows.Err()
}
