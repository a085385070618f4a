package certificate

import (
	"context"

	"pubdesk/internal/domain"

	"gorm.io/gorm"
)

type CertificateRepositoryInterface interface {
	CreateTx(tx *gorm.DB, c *domain.Certificate) error
	NextNumberTx(tx *gorm.DB, year int) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Certificate, error)
	GetByNumber(ctx context.Context, number string) (*domain.Certificate, error)
	GetByPaperID(ctx context.Context, paperID string) (*domain.Certificate, error)
	List(ctx context.Context, page, limit int) ([]domain.Certificate, int, error)
	ListByAuthor(ctx context.Context, authorID string) ([]domain.Certificate, error)
	SetValidity(ctx context.Context, id string, isValid bool) error
	DB() *gorm.DB
}

type PaperRepositoryInterface interface {
	GetByID(ctx context.Context, id string) (*domain.Paper, error)
}

// Notifier pushes real-time events to a connected user. Implementations
// must not block.
type Notifier interface {
	Notify(userID string, event string, payload any)
}
