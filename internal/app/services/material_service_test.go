package services

import (
	"context"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bkaya/studentportal/internal/app/models/dto"
	"github.com/bkaya/studentportal/internal/pkg/apperrors"
)

func uploadHeader(filename string) *multipart.FileHeader {
	return &multipart.FileHeader{Filename: filename, Size: 128}
}

func TestMaterialService_Upload(t *testing.T) {
	ctx := context.Background()
	allowed := []string{"pdf", "docx"}

	t.Run("stores file and metadata", func(t *testing.T) {
		materialRepo := newFakeMaterialRepo()
		storage := &fakeStorage{}
		svc := NewMaterialService(materialRepo, storage, allowed)

		material, err := svc.Upload(ctx, 7, &dto.UploadMaterialRequest{
			Title:   "Week 1",
			Subject: "Algorithms",
		}, uploadHeader("notes.pdf"))
		require.NoError(t, err)
		assert.Equal(t, int64(7), material.UploadedBy)
		assert.Equal(t, "notes.pdf", material.Filename)
		assert.Len(t, storage.saved, 1)
	})

	t.Run("extension check is case-insensitive", func(t *testing.T) {
		svc := NewMaterialService(newFakeMaterialRepo(), &fakeStorage{}, allowed)

		_, err := svc.Upload(ctx, 7, &dto.UploadMaterialRequest{Title: "x"}, uploadHeader("NOTES.PDF"))
		assert.NoError(t, err)
	})

	t.Run("rejects disallowed extension without touching storage", func(t *testing.T) {
		storage := &fakeStorage{}
		svc := NewMaterialService(newFakeMaterialRepo(), storage, allowed)

		for _, filename := range []string{"virus.exe", "script.sh", "noextension"} {
			_, err := svc.Upload(ctx, 7, &dto.UploadMaterialRequest{Title: "x"}, uploadHeader(filename))
			assert.ErrorIs(t, err, apperrors.ErrFileTypeNotAllowed, "filename %q", filename)
		}
		assert.Empty(t, storage.saved)
	})

	t.Run("rejects missing file", func(t *testing.T) {
		svc := NewMaterialService(newFakeMaterialRepo(), &fakeStorage{}, allowed)

		_, err := svc.Upload(ctx, 7, &dto.UploadMaterialRequest{Title: "x"}, nil)
		assert.ErrorIs(t, err, apperrors.ErrMissingUploadFile)
	})

	t.Run("cleans up file when metadata insert fails", func(t *testing.T) {
		materialRepo := newFakeMaterialRepo()
		materialRepo.failNext = true
		storage := &fakeStorage{}
		svc := NewMaterialService(materialRepo, storage, allowed)

		_, err := svc.Upload(ctx, 7, &dto.UploadMaterialRequest{Title: "x"}, uploadHeader("notes.pdf"))
		assert.Error(t, err)
		assert.Equal(t, []string{"notes.pdf"}, storage.deleted)
	})
}

func TestMaterialService_List(t *testing.T) {
	ctx := context.Background()
	materialRepo := newFakeMaterialRepo()
	svc := NewMaterialService(materialRepo, &fakeStorage{}, []string{"pdf"})

	_, err := svc.Upload(ctx, 1, &dto.UploadMaterialRequest{Title: "a", Subject: "Algorithms"}, uploadHeader("a.pdf"))
	require.NoError(t, err)
	_, err = svc.Upload(ctx, 1, &dto.UploadMaterialRequest{Title: "b", Subject: "Databases"}, uploadHeader("b.pdf"))
	require.NoError(t, err)
	_, err = svc.Upload(ctx, 1, &dto.UploadMaterialRequest{Title: "c", Subject: "Algorithms"}, uploadHeader("c.pdf"))
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list.Materials, 3)
	assert.ElementsMatch(t, []string{"Algorithms", "Databases"}, list.Subjects)
}

func TestMaterialService_Download(t *testing.T) {
	ctx := context.Background()
	materialRepo := newFakeMaterialRepo()
	storage := &fakeStorage{}
	svc := NewMaterialService(materialRepo, storage, []string{"pdf"})

	uploaded, err := svc.Upload(ctx, 1, &dto.UploadMaterialRequest{Title: "a"}, uploadHeader("a.pdf"))
	require.NoError(t, err)

	material, path, err := svc.Download(ctx, uploaded.ID)
	require.NoError(t, err)
	assert.Equal(t, uploaded.ID, material.ID)
	assert.Equal(t, "/data/a.pdf", path)

	_, _, err = svc.Download(ctx, 404)
	assert.ErrorIs(t, err, apperrors.ErrMaterialNotFound)
}
