package catalog

import (
	"context"

	"pubdesk/internal/domain"
	"pubdesk/internal/repository"

	"github.com/google/uuid"
)

// Service serves the public catalog: published papers, upcoming
// conferences and publication standards.
type Service struct {
	catalog CatalogRepositoryInterface
	papers  PaperRepositoryInterface
}

func NewService(catalog CatalogRepositoryInterface, papers PaperRepositoryInterface) *Service {
	return &Service{catalog: catalog, papers: papers}
}

func (s *Service) Publications(ctx context.Context, domainFilter, query string, page, limit int) ([]PublicationResponse, int, error) {
	papers, total, err := s.papers.List(ctx, repository.PaperFilters{
		Status: string(domain.PaperPublished),
		Domain: domainFilter,
		Query:  query,
	}, page, limit)
	if err != nil {
		return nil, 0, err
	}

	out := make([]PublicationResponse, 0, len(papers))
	for _, p := range papers {
		out = append(out, PublicationResponse{
			ID:              p.ID,
			Title:           p.Title,
			Abstract:        p.Abstract,
			Keywords:        p.Keywords,
			Domain:          string(p.Domain),
			PublicationType: string(p.PublicationType),
			Authors:         p.Authors,
			PublishedAt:     p.PublishedAt,
		})
	}
	return out, total, nil
}

func (s *Service) Conferences(ctx context.Context) ([]domain.Conference, error) {
	return s.catalog.ListActiveConferences(ctx)
}

func (s *Service) Standards(ctx context.Context) ([]domain.Standard, error) {
	return s.catalog.ListActiveStandards(ctx)
}

func (s *Service) CreateConference(ctx context.Context, req CreateConferenceRequest) (*domain.Conference, error) {
	conf := &domain.Conference{
		ID:                 uuid.NewString(),
		Title:              req.Title,
		Description:        req.Description,
		Venue:              req.Venue,
		Domains:            domain.StringList(req.Domains),
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		SubmissionDeadline: req.SubmissionDeadline,
		RegistrationFee:    req.RegistrationFee,
		IsActive:           true,
	}
	if err := s.catalog.CreateConference(ctx, conf); err != nil {
		return nil, err
	}
	return conf, nil
}

func (s *Service) CreateStandard(ctx context.Context, req CreateStandardRequest) (*domain.Standard, error) {
	std := &domain.Standard{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		IsActive:    true,
	}
	if err := s.catalog.CreateStandard(ctx, std); err != nil {
		return nil, err
	}
	return std, nil
}
