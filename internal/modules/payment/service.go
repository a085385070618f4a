package payment

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"
	"time"

	"pubdesk/internal/domain"
	"pubdesk/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service contains all business logic for publication fees
type Service struct {
	payments PaymentRepositoryInterface
	papers   PaperRepositoryInterface
	files    FileStore
}

func NewService(payments PaymentRepositoryInterface, papers PaperRepositoryInterface, files FileStore) *Service {
	return &Service{payments: payments, papers: papers, files: files}
}

// Quote computes the publication fee for a paper without creating
// anything. The fee depends only on the stored author count and the
// hardcopy flag, never on client-supplied amounts.
func (s *Service) Quote(ctx context.Context, paperID string, wantsHardcopy bool) (*QuoteResponse, error) {
	p, err := s.papers.GetByID(ctx, paperID)
	if err != nil {
		return nil, ErrPaperNotFound
	}

	fee := domain.ComputeFee(len(p.Authors), wantsHardcopy)
	return &QuoteResponse{
		PaperID:     p.ID,
		AuthorCount: len(p.Authors),
		Fee:         fee,
		Currency:    "INR",
	}, nil
}

// Create opens a pending payment for an approved paper. Only one
// non-rejected payment may exist per paper.
func (s *Service) Create(ctx context.Context, paperID string, req CreatePaymentRequest) (*domain.Payment, error) {
	p, err := s.papers.GetByID(ctx, paperID)
	if err != nil {
		return nil, ErrPaperNotFound
	}
	if p.Status != domain.PaperApproved && p.Status != domain.PaperPublished {
		return nil, ErrPaperNotPayable
	}
	if req.WantsHardcopy && strings.TrimSpace(req.ShippingAddress) == "" {
		return nil, ErrShippingRequired
	}

	_, err = s.payments.GetActiveByPaperID(ctx, paperID)
	if err == nil {
		return nil, ErrPaymentExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	fee := domain.ComputeFee(len(p.Authors), req.WantsHardcopy)
	pay := &domain.Payment{
		ID:              uuid.NewString(),
		PaperID:         p.ID,
		AuthorID:        p.AuthorID,
		BaseAmount:      fee.BaseAmount,
		ExtraAuthorFee:  fee.ExtraAuthorFee,
		HardcopyFee:     fee.HardcopyFee,
		TotalAmount:     fee.TotalAmount,
		Status:          domain.PaymentPending,
		WantsHardcopy:   req.WantsHardcopy,
		ShippingAddress: strings.TrimSpace(req.ShippingAddress),
		Version:         1,
	}
	if err := s.payments.Create(ctx, pay); err != nil {
		return nil, err
	}
	return pay, nil
}

// SubmitProof attaches the bank transaction reference and proof file,
// moving the payment from pending to submitted for admin verification.
func (s *Service) SubmitProof(ctx context.Context, paymentID, transactionID string, proof *multipart.FileHeader) (*domain.Payment, error) {
	pay, err := s.payments.GetByID(ctx, paymentID)
	if err != nil {
		return nil, ErrPaymentNotFound
	}
	if pay.Status != domain.PaymentPending {
		return nil, ErrNotAwaitingProof
	}

	proofPath, err := s.files.Save(storage.BucketPaymentProofs, proof)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	updated, err := s.payments.UpdateVersioned(ctx, pay.ID, pay.Version, map[string]any{
		"status":         domain.PaymentSubmitted,
		"transaction_id": strings.TrimSpace(transactionID),
		"proof_path":     proofPath,
		"paid_at":        now,
	})
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrVersionConflict
	}

	return s.payments.GetByID(ctx, pay.ID)
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	pay, err := s.payments.GetByID(ctx, id)
	if err != nil {
		return nil, ErrPaymentNotFound
	}
	return pay, nil
}

func (s *Service) ListByAuthor(ctx context.Context, authorID string) ([]domain.Payment, error) {
	return s.payments.ListByAuthor(ctx, authorID)
}

func (s *Service) ToResponse(p *domain.Payment) PaymentResponse {
	resp := PaymentResponse{
		ID:              p.ID,
		PaperID:         p.PaperID,
		BaseAmount:      p.BaseAmount,
		ExtraAuthorFee:  p.ExtraAuthorFee,
		HardcopyFee:     p.HardcopyFee,
		TotalAmount:     p.TotalAmount,
		Status:          string(p.Status),
		WantsHardcopy:   p.WantsHardcopy,
		ShippingAddress: p.ShippingAddress,
		TransactionID:   p.TransactionID,
		PaidAt:          p.PaidAt,
		VerifiedAt:      p.VerifiedAt,
		Version:         p.Version,
		CreatedAt:       p.CreatedAt,
	}
	if p.ProofPath != "" {
		if url, err := s.files.SignedURL(storage.BucketPaymentProofs, p.ProofPath); err == nil {
			resp.ProofURL = url
		}
	}
	return resp
}
