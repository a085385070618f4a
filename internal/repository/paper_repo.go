package repository

import (
	"context"
	"strings"
	"time"

	"pubdesk/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaperRepository struct {
	db *gorm.DB
}

func NewPaperRepository(db *gorm.DB) *PaperRepository {
	return &PaperRepository{db: db}
}

func (r *PaperRepository) DB() *gorm.DB { return r.db }

func (r *PaperRepository) Create(ctx context.Context, p *domain.Paper) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaperRepository) GetByID(ctx context.Context, id string) (*domain.Paper, error) {
	var p domain.Paper
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaperRepository) ListByAuthor(ctx context.Context, authorID string) ([]domain.Paper, error) {
	var papers []domain.Paper
	err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("submitted_at DESC").
		Find(&papers).Error
	return papers, err
}

// PaperFilters narrows admin and public listings.
type PaperFilters struct {
	Status string
	Domain string
	Query  string
}

func (r *PaperRepository) List(ctx context.Context, f PaperFilters, page, limit int) ([]domain.Paper, int, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	q := r.db.WithContext(ctx).Model(&domain.Paper{})
	if strings.TrimSpace(f.Status) != "" {
		q = q.Where("status = ?", strings.TrimSpace(f.Status))
	}
	if strings.TrimSpace(f.Domain) != "" {
		q = q.Where("domain = ?", strings.TrimSpace(f.Domain))
	}
	if strings.TrimSpace(f.Query) != "" {
		sv := "%" + strings.ToLower(strings.TrimSpace(f.Query)) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(abstract) LIKE ?", sv, sv)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var papers []domain.Paper
	if err := q.
		Order("submitted_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&papers).Error; err != nil {
		return nil, 0, err
	}

	return papers, int(total), nil
}

// UpdateVersioned applies updates only when the stored row still carries
// the expected version, and bumps the version in the same statement.
// Returns false when another writer got there first.
func (r *PaperRepository) UpdateVersioned(ctx context.Context, id string, version int64, updates map[string]any) (bool, error) {
	updates["version"] = version + 1
	updates["updated_at"] = time.Now().UTC()

	tx := r.db.WithContext(ctx).
		Model(&domain.Paper{}).
		Where("id = ? AND version = ?", id, version).
		Updates(updates)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

func (r *PaperRepository) CountByStatus(ctx context.Context) (map[domain.PaperStatus]int64, error) {
	type row struct {
		Status string
		N      int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&domain.Paper{}).
		Select("status, COUNT(*) AS n").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[domain.PaperStatus]int64, len(rows))
	for _, rw := range rows {
		counts[domain.PaperStatus(rw.Status)] = rw.N
	}
	return counts, nil
}
