package catalog

import (
	"context"

	"pubdesk/internal/domain"
	"pubdesk/internal/repository"
)

type CatalogRepositoryInterface interface {
	CreateConference(ctx context.Context, c *domain.Conference) error
	ListActiveConferences(ctx context.Context) ([]domain.Conference, error)
	CreateStandard(ctx context.Context, s *domain.Standard) error
	ListActiveStandards(ctx context.Context) ([]domain.Standard, error)
}

type PaperRepositoryInterface interface {
	List(ctx context.Context, f repository.PaperFilters, page, limit int) ([]domain.Paper, int, error)
}
