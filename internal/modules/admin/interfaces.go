package admin

import (
	"context"
	"time"

	"pubdesk/internal/domain"
	"pubdesk/internal/repository"
)

type PaperRepositoryInterface interface {
	GetByID(ctx context.Context, id string) (*domain.Paper, error)
	List(ctx context.Context, f repository.PaperFilters, page, limit int) ([]domain.Paper, int, error)
	UpdateVersioned(ctx context.Context, id string, version int64, updates map[string]any) (bool, error)
	CountByStatus(ctx context.Context) (map[domain.PaperStatus]int64, error)
}

type PaymentRepositoryInterface interface {
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	List(ctx context.Context, f repository.PaymentFilters, page, limit int) ([]domain.Payment, int, error)
	UpdateVersioned(ctx context.Context, id string, version int64, updates map[string]any) (bool, error)
	SumVerified(ctx context.Context) (int64, error)
}

type CertificateCounter interface {
	Count(ctx context.Context) (int64, error)
}

type UserRepositoryInterface interface {
	List(ctx context.Context, role string, page, limit int) ([]domain.User, int, error)
}

type AuditRepositoryInterface interface {
	Create(ctx context.Context, entry *domain.AuditLog) error
	List(ctx context.Context, page, limit int) ([]domain.AuditLog, int, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type Notifier interface {
	Notify(userID string, event string, payload any)
}
