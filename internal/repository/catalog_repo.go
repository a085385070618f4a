package repository

import (
	"context"

	"pubdesk/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) CreateConference(ctx context.Context, c *domain.Conference) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CatalogRepository) ListActiveConferences(ctx context.Context) ([]domain.Conference, error) {
	var confs []domain.Conference
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("start_date ASC").
		Find(&confs).Error
	return confs, err
}

func (r *CatalogRepository) CreateStandard(ctx context.Context, s *domain.Standard) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *CatalogRepository) ListActiveStandards(ctx context.Context) ([]domain.Standard, error) {
	var standards []domain.Standard
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("category ASC, title ASC").
		Find(&standards).Error
	return standards, err
}
