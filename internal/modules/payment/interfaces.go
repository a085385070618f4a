package payment

import (
	"context"
	"mime/multipart"

	"pubdesk/internal/domain"
)

type PaymentRepositoryInterface interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	GetActiveByPaperID(ctx context.Context, paperID string) (*domain.Payment, error)
	ListByAuthor(ctx context.Context, authorID string) ([]domain.Payment, error)
	UpdateVersioned(ctx context.Context, id string, version int64, updates map[string]any) (bool, error)
}

type PaperRepositoryInterface interface {
	GetByID(ctx context.Context, id string) (*domain.Paper, error)
}

type FileStore interface {
	Save(bucket string, fileHeader *multipart.FileHeader) (string, error)
	SignedURL(bucket, objectPath string) (string, error)
}
