package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/bkaya/studentportal/internal/app/models"
	"github.com/bkaya/studentportal/internal/app/models/dto"
	"github.com/bkaya/studentportal/internal/app/repositories"
	"github.com/bkaya/studentportal/internal/pkg/apperrors"
	"github.com/bkaya/studentportal/internal/pkg/filestorage"
	"github.com/bkaya/studentportal/internal/pkg/logger"
)

type materialService struct {
	materialRepo      repositories.IMaterialRepository
	storage           filestorage.Storage
	allowedExtensions map[string]struct{}
}

// NewMaterialService creates a new instance of MaterialService. Extensions
// are matched case-insensitively and without the leading dot.
func NewMaterialService(
	materialRepo repositories.IMaterialRepository,
	storage filestorage.Storage,
	allowedExtensions []string,
) MaterialService {
	allowed := make(map[string]struct{}, len(allowedExtensions))
	for _, ext := range allowedExtensions {
		allowed[strings.ToLower(strings.TrimPrefix(ext, "."))] = struct{}{}
	}
	return &materialService{
		materialRepo:      materialRepo,
		storage:           storage,
		allowedExtensions: allowed,
	}
}

// List returns all study materials with the distinct subject values used to
// filter them client-side.
func (s *materialService) List(ctx context.Context) (*dto.MaterialListResponse, error) {
	materials, err := s.materialRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	subjects, err := s.materialRepo.GetSubjects(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.MaterialListResponse{
		Materials: materials,
		Subjects:  subjects,
	}, nil
}

// Upload stores the file and its metadata. Files with a disallowed extension
// are rejected before anything touches disk.
func (s *materialService) Upload(ctx context.Context, uploaderID int64, req *dto.UploadMaterialRequest, file *multipart.FileHeader) (*models.StudyMaterial, error) {
	if file == nil {
		return nil, apperrors.ErrMissingUploadFile
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(file.Filename), "."))
	if _, ok := s.allowedExtensions[ext]; !ok {
		return nil, apperrors.ErrFileTypeNotAllowed
	}

	filename, err := s.storage.SaveFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to save uploaded file: %w", err)
	}

	material := &models.StudyMaterial{
		Title:       req.Title,
		Filename:    filename,
		Description: req.Description,
		UploadedBy:  uploaderID,
		Subject:     req.Subject,
		FileType:    req.FileType,
	}

	id, err := s.materialRepo.Create(ctx, material)
	if err != nil {
		// Metadata insert failed; remove the orphaned file
		if delErr := s.storage.DeleteFile(filename); delErr != nil {
			logger.Warn().Err(delErr).Str("filename", filename).Msg("Failed to clean up orphaned upload")
		}
		return nil, err
	}
	material.ID = id

	logger.Info().Int64("materialId", id).Str("filename", filename).Msg("Study material uploaded")
	return material, nil
}

// Download resolves a material to its on-disk path
func (s *materialService) Download(ctx context.Context, id int64) (*models.StudyMaterial, string, error) {
	material, err := s.materialRepo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	return material, s.storage.FilePath(material.Filename), nil
}
