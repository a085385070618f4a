package paper

import (
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"pubdesk/internal/domain"
	"pubdesk/internal/pkg/validator"
	"pubdesk/internal/storage"

	"github.com/google/uuid"
)

// Service contains all business logic for manuscript submissions
type Service struct {
	papers PaperRepositoryInterface
	files  FileStore
}

func NewService(papers PaperRepositoryInterface, files FileStore) *Service {
	return &Service{papers: papers, files: files}
}

// Submit validates the submission form, stores the manuscript and
// creates the paper in submitted state.
func (s *Service) Submit(ctx context.Context, authorID string, form SubmitPaperForm, file *multipart.FileHeader) (*domain.Paper, error) {
	paperDomain := domain.PaperDomain(form.Domain)
	if !paperDomain.Valid() {
		return nil, ErrInvalidDomain
	}
	pubType := domain.PublicationType(form.PublicationType)
	if !pubType.Valid() {
		return nil, ErrInvalidType
	}

	authors, err := parseAuthors(form.Authors)
	if err != nil {
		return nil, err
	}

	filePath, err := s.files.Save(storage.BucketPapers, file)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	p := &domain.Paper{
		ID:              uuid.NewString(),
		AuthorID:        authorID,
		Title:           strings.TrimSpace(form.Title),
		Abstract:        strings.TrimSpace(form.Abstract),
		Keywords:        parseKeywords(form.Keywords),
		Domain:          paperDomain,
		PublicationType: pubType,
		Status:          domain.PaperSubmitted,
		Authors:         authors,
		FilePath:        filePath,
		SubmittedAt:     now,
		Version:         1,
	}
	if err := s.papers.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Paper, error) {
	p, err := s.papers.GetByID(ctx, id)
	if err != nil {
		return nil, ErrPaperNotFound
	}
	return p, nil
}

func (s *Service) ListByAuthor(ctx context.Context, authorID string) ([]domain.Paper, error) {
	return s.papers.ListByAuthor(ctx, authorID)
}

// Resubmit replaces the manuscript of a paper that was sent back for
// revision and moves it to submitted again. The previous review trail
// (admin notes, plagiarism score) is cleared for the fresh round.
func (s *Service) Resubmit(ctx context.Context, paperID string, file *multipart.FileHeader) (*domain.Paper, error) {
	p, err := s.papers.GetByID(ctx, paperID)
	if err != nil {
		return nil, ErrPaperNotFound
	}
	if p.Status != domain.PaperRevisionRequested {
		return nil, ErrNotResubmittable
	}

	filePath, err := s.files.Save(storage.BucketPapers, file)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	updated, err := s.papers.UpdateVersioned(ctx, p.ID, p.Version, map[string]any{
		"status":            domain.PaperSubmitted,
		"file_path":         filePath,
		"submitted_at":      now,
		"plagiarism_score":  nil,
		"admin_notes":       "",
		"revision_deadline": nil,
	})
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrVersionConflict
	}

	return s.papers.GetByID(ctx, p.ID)
}

// ToResponse converts a paper into its API shape, signing the
// manuscript URL when the caller may download it.
func (s *Service) ToResponse(p *domain.Paper, includeFile bool) PaperResponse {
	resp := PaperResponse{
		ID:               p.ID,
		Title:            p.Title,
		Abstract:         p.Abstract,
		Keywords:         p.Keywords,
		Domain:           string(p.Domain),
		PublicationType:  string(p.PublicationType),
		Status:           string(p.Status),
		Authors:          p.Authors,
		PlagiarismScore:  p.PlagiarismScore,
		AdminNotes:       p.AdminNotes,
		RevisionDeadline: p.RevisionDeadline,
		SubmittedAt:      p.SubmittedAt,
		ReviewedAt:       p.ReviewedAt,
		ApprovedAt:       p.ApprovedAt,
		PublishedAt:      p.PublishedAt,
		Version:          p.Version,
	}
	if includeFile && p.FilePath != "" {
		if url, err := s.files.SignedURL(storage.BucketPapers, p.FilePath); err == nil {
			resp.FileURL = url
		}
	}
	return resp
}

func parseAuthors(raw string) (domain.AuthorList, error) {
	var authors domain.AuthorList
	if err := json.Unmarshal([]byte(raw), &authors); err != nil {
		return nil, fmt.Errorf("%w: not a JSON array", ErrInvalidAuthors)
	}
	if len(authors) < domain.MinPaperAuthors || len(authors) > domain.MaxPaperAuthors {
		return nil, ErrAuthorCount
	}
	for i := range authors {
		authors[i].Name = strings.TrimSpace(authors[i].Name)
		authors[i].Email = strings.TrimSpace(authors[i].Email)
		if fields := validator.Validate(authors[i]); fields != nil {
			return nil, fmt.Errorf("%w: author %d: %v", ErrInvalidAuthors, i+1, fields)
		}
	}
	return authors, nil
}

func parseKeywords(raw string) domain.StringList {
	parts := strings.Split(raw, ",")
	keywords := make(domain.StringList, 0, len(parts))
	for _, p := range parts {
		if kw := strings.TrimSpace(p); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}
