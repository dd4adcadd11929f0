package upload

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/internal/utils/images"
	"Recipe-Share-Backend/internal/utils/storage"
	"bytes"
	"context"
	"mime/multipart"
)

type (
	UploadService interface {
		UploadRecipeImage(ctx context.Context, file *multipart.FileHeader) (string, error)
		UploadStepImage(ctx context.Context, file *multipart.FileHeader) (string, error)
	}

	uploadService struct {
		storage storage.Storage
	}
)

func NewUploadService(store storage.Storage) UploadService {
	return &uploadService{storage: store}
}

func (s *uploadService) UploadRecipeImage(ctx context.Context, file *multipart.FileHeader) (string, error) {
	return s.ingest(ctx, storage.KindRecipe, file)
}

func (s *uploadService) UploadStepImage(ctx context.Context, file *multipart.FileHeader) (string, error) {
	return s.ingest(ctx, storage.KindRecipeStep, file)
}

// ingest normalizes the upload (bounded width, fixed JPEG quality) and
// stores it under a freshly generated name.
func (s *uploadService) ingest(ctx context.Context, kind string, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	normalized, err := images.Normalize(src)
	if err != nil {
		return "", domain.ErrInvalidImage
	}

	return s.storage.Save(ctx, kind, storage.GenerateFilename(), bytes.NewReader(normalized), int64(len(normalized)))
}
