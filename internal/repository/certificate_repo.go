package repository

import (
	"context"
	"fmt"

	"pubdesk/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CertificateRepository struct {
	db *gorm.DB
}

func NewCertificateRepository(db *gorm.DB) *CertificateRepository {
	return &CertificateRepository{db: db}
}

func (r *CertificateRepository) DB() *gorm.DB { return r.db }

// CreateTx inserts within the caller's transaction so certificate row and
// paper publication commit or roll back together.
func (r *CertificateRepository) CreateTx(tx *gorm.DB, c *domain.Certificate) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return tx.Create(c).Error
}

// NextNumberTx allocates the next certificate number for the given year
// inside the issuance transaction. The unique index on certificate_number
// is the backstop should two transactions race to the same sequence.
func (r *CertificateRepository) NextNumberTx(tx *gorm.DB, year int) (string, error) {
	prefix := fmt.Sprintf("IRPCERT-%d-", year)

	var count int64
	if err := tx.Model(&domain.Certificate{}).
		Where("certificate_number LIKE ?", prefix+"%").
		Count(&count).Error; err != nil {
		return "", err
	}

	return fmt.Sprintf("%s%06d", prefix, count+1), nil
}

func (r *CertificateRepository) GetByID(ctx context.Context, id string) (*domain.Certificate, error) {
	var c domain.Certificate
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CertificateRepository) GetByNumber(ctx context.Context, number string) (*domain.Certificate, error) {
	var c domain.Certificate
	if err := r.db.WithContext(ctx).Where("certificate_number = ?", number).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CertificateRepository) GetByPaperID(ctx context.Context, paperID string) (*domain.Certificate, error) {
	var c domain.Certificate
	if err := r.db.WithContext(ctx).Where("paper_id = ?", paperID).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CertificateRepository) List(ctx context.Context, page, limit int) ([]domain.Certificate, int, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.Certificate{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var certs []domain.Certificate
	if err := r.db.WithContext(ctx).
		Order("issued_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&certs).Error; err != nil {
		return nil, 0, err
	}

	return certs, int(total), nil
}

func (r *CertificateRepository) ListByAuthor(ctx context.Context, authorID string) ([]domain.Certificate, error) {
	var certs []domain.Certificate
	err := r.db.WithContext(ctx).
		Joins("JOIN papers ON papers.id = certificates.paper_id").
		Where("papers.author_id = ?", authorID).
		Order("certificates.issued_at DESC").
		Find(&certs).Error
	return certs, err
}

func (r *CertificateRepository) SetValidity(ctx context.Context, id string, isValid bool) error {
	tx := r.db.WithContext(ctx).
		Model(&domain.Certificate{}).
		Where("id = ?", id).
		Update("is_valid", isValid)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CertificateRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&domain.Certificate{}).Count(&total).Error
	return total, err
}
