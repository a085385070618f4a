package paper

import (
	"context"
	"mime/multipart"

	"pubdesk/internal/domain"
)

type PaperRepositoryInterface interface {
	Create(ctx context.Context, p *domain.Paper) error
	GetByID(ctx context.Context, id string) (*domain.Paper, error)
	ListByAuthor(ctx context.Context, authorID string) ([]domain.Paper, error)
	UpdateVersioned(ctx context.Context, id string, version int64, updates map[string]any) (bool, error)
}

type FileStore interface {
	Save(bucket string, fileHeader *multipart.FileHeader) (string, error)
	SignedURL(bucket, objectPath string) (string, error)
}
