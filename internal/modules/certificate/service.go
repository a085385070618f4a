package certificate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pubdesk/internal/domain"
	"pubdesk/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const issueRetries = 3

// Service contains all business logic for publication certificates
type Service struct {
	certs    CertificateRepositoryInterface
	papers   PaperRepositoryInterface
	files    *storage.Service
	notifier Notifier
	baseURL  string
}

func NewService(certs CertificateRepositoryInterface, papers PaperRepositoryInterface, files *storage.Service, notifier Notifier, baseURL string) *Service {
	return &Service{
		certs:    certs,
		papers:   papers,
		files:    files,
		notifier: notifier,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}
}

// Issue creates the certificate and publishes the paper in a single
// transaction. Preconditions checked inside the transaction: the paper
// is approved, carries a verified payment and has no certificate yet.
// A lost race on the certificate number is retried with a fresh
// sequence.
func (s *Service) Issue(ctx context.Context, paperID string) (*domain.Certificate, error) {
	var cert *domain.Certificate
	var err error

	for attempt := 0; attempt < issueRetries; attempt++ {
		cert, err = s.issueOnce(ctx, paperID)
		if err != nil && isUniqueViolation(err) {
			continue
		}
		break
	}
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if paper, perr := s.papers.GetByID(ctx, cert.PaperID); perr == nil {
			s.notifier.Notify(paper.AuthorID, "certificate_issued", cert)
		}
	}
	return cert, nil
}

func (s *Service) issueOnce(ctx context.Context, paperID string) (*domain.Certificate, error) {
	var cert *domain.Certificate

	err := s.certs.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var paper domain.Paper
		if err := tx.Where("id = ?", paperID).First(&paper).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPaperNotFound
			}
			return err
		}
		if paper.Status != domain.PaperApproved {
			return ErrPaperNotApproved
		}

		var payment domain.Payment
		err := tx.Where("paper_id = ? AND status = ?", paperID, domain.PaymentVerified).First(&payment).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPaymentNotVerified
			}
			return err
		}

		var existing domain.Certificate
		err = tx.Where("paper_id = ?", paperID).First(&existing).Error
		if err == nil {
			return ErrAlreadyIssued
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		now := time.Now()
		number, err := s.certs.NextNumberTx(tx, now.Year())
		if err != nil {
			return err
		}

		cert = &domain.Certificate{
			ID:                uuid.NewString(),
			PaperID:           paper.ID,
			CertificateNumber: number,
			QRCodeData:        fmt.Sprintf("%s/verify/%s", s.baseURL, number),
			IsValid:           true,
			IssuedAt:          now,
		}
		if err := s.certs.CreateTx(tx, cert); err != nil {
			return err
		}

		// Publish the paper under the same transaction. The version
		// guard rolls everything back if a review ran concurrently.
		res := tx.Model(&domain.Paper{}).
			Where("id = ? AND version = ?", paper.ID, paper.Version).
			Updates(map[string]any{
				"status":       domain.PaperPublished,
				"published_at": now,
				"version":      paper.Version + 1,
				"updated_at":   now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != 1 {
			return ErrIssueConflict
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cert, nil
}

// Verify resolves a certificate number for the public verification
// page. Revoked certificates resolve with IsValid false rather than
// appearing absent.
func (s *Service) Verify(ctx context.Context, number string) (*VerificationResponse, error) {
	cert, err := s.certs.GetByNumber(ctx, strings.TrimSpace(number))
	if err != nil {
		return nil, ErrCertificateNotFound
	}

	resp := &VerificationResponse{
		CertificateNumber: cert.CertificateNumber,
		IsValid:           cert.IsValid,
		IssuedAt:          cert.IssuedAt,
	}

	paper, err := s.papers.GetByID(ctx, cert.PaperID)
	if err == nil {
		resp.PaperTitle = paper.Title
		resp.Authors = paper.Authors
		resp.Domain = string(paper.Domain)
		resp.PublicationType = string(paper.PublicationType)
		resp.PublishedAt = paper.PublishedAt
	}
	return resp, nil
}

func (s *Service) SetValidity(ctx context.Context, id string, isValid bool) (*domain.Certificate, error) {
	if err := s.certs.SetValidity(ctx, id, isValid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCertificateNotFound
		}
		return nil, err
	}
	return s.certs.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, page, limit int) ([]domain.Certificate, int, error) {
	return s.certs.List(ctx, page, limit)
}

func (s *Service) ListByAuthor(ctx context.Context, authorID string) ([]domain.Certificate, error) {
	return s.certs.ListByAuthor(ctx, authorID)
}

func (s *Service) ToResponse(c *domain.Certificate) CertificateResponse {
	resp := CertificateResponse{
		ID:                c.ID,
		PaperID:           c.PaperID,
		CertificateNumber: c.CertificateNumber,
		QRCodeData:        c.QRCodeData,
		IsValid:           c.IsValid,
		IssuedAt:          c.IssuedAt,
	}
	if c.PDFPath != "" && s.files != nil {
		if url, err := s.files.PublicURL(storage.BucketCertificates, c.PDFPath); err == nil {
			resp.PDFURL = url
		}
	}
	return resp
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate key")
}
