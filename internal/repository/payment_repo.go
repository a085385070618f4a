package repository

import (
	"context"
	"strings"
	"time"

	"pubdesk/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) DB() *gorm.DB { return r.db }

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	var p domain.Payment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// GetActiveByPaperID returns the paper's non-rejected payment, if any.
// A rejected payment does not block creating a fresh one.
func (r *PaymentRepository) GetActiveByPaperID(ctx context.Context, paperID string) (*domain.Payment, error) {
	var p domain.Payment
	err := r.db.WithContext(ctx).
		Where("paper_id = ? AND status <> ?", paperID, domain.PaymentRejected).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) ListByAuthor(ctx context.Context, authorID string) ([]domain.Payment, error) {
	var payments []domain.Payment
	err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&payments).Error
	return payments, err
}

type PaymentFilters struct {
	Status        string
	TransactionID string
}

func (r *PaymentRepository) List(ctx context.Context, f PaymentFilters, page, limit int) ([]domain.Payment, int, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	q := r.db.WithContext(ctx).Model(&domain.Payment{})
	if strings.TrimSpace(f.Status) != "" {
		q = q.Where("status = ?", strings.TrimSpace(f.Status))
	}
	if strings.TrimSpace(f.TransactionID) != "" {
		q = q.Where("transaction_id LIKE ?", "%"+strings.TrimSpace(f.TransactionID)+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var payments []domain.Payment
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&payments).Error; err != nil {
		return nil, 0, err
	}

	return payments, int(total), nil
}

func (r *PaymentRepository) UpdateVersioned(ctx context.Context, id string, version int64, updates map[string]any) (bool, error) {
	updates["version"] = version + 1
	updates["updated_at"] = time.Now().UTC()

	tx := r.db.WithContext(ctx).
		Model(&domain.Payment{}).
		Where("id = ? AND version = ?", id, version).
		Updates(updates)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

func (r *PaymentRepository) SumVerified(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&domain.Payment{}).
		Where("status = ?", domain.PaymentVerified).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&total).Error
	return total, err
}
