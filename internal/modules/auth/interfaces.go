package auth

import (
	"context"

	"pubdesk/internal/domain"

	"gorm.io/gorm"
)

// UserRepositoryInterface defines the user persistence operations the
// auth service depends on.
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	DB() *gorm.DB
}

type ProfileRepositoryInterface interface {
	Create(ctx context.Context, p *domain.Profile) error
	GetByUserID(ctx context.Context, userID string) (*domain.Profile, error)
	Update(ctx context.Context, p *domain.Profile) error
}
