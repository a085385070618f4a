package admin

import (
	"context"
	"log"
	"time"

	"pubdesk/internal/domain"
	"pubdesk/internal/repository"
)

// Service contains the editorial-desk business logic: reviewing papers,
// verifying payments and the dashboard numbers behind both.
type Service struct {
	papers        PaperRepositoryInterface
	payments      PaymentRepositoryInterface
	certs         CertificateCounter
	users         UserRepositoryInterface
	audit         AuditRepositoryInterface
	notifier      Notifier
	plagiarismMax float64
}

func NewService(
	papers PaperRepositoryInterface,
	payments PaymentRepositoryInterface,
	certs CertificateCounter,
	users UserRepositoryInterface,
	audit AuditRepositoryInterface,
	notifier Notifier,
	plagiarismMax float64,
) *Service {
	return &Service{
		papers:        papers,
		payments:      payments,
		certs:         certs,
		users:         users,
		audit:         audit,
		notifier:      notifier,
		plagiarismMax: plagiarismMax,
	}
}

func (s *Service) ListPapers(ctx context.Context, f repository.PaperFilters, page, limit int) ([]domain.Paper, int, error) {
	return s.papers.List(ctx, f, page, limit)
}

// ReviewPaper applies an editorial decision. The client must echo the
// version it read; a stale version means another admin decided first
// and the update is refused. Publishing is reserved for certificate
// issuance and cannot be reached from here.
func (s *Service) ReviewPaper(ctx context.Context, adminID, ip, paperID string, req ReviewPaperRequest) (*domain.Paper, error) {
	p, err := s.papers.GetByID(ctx, paperID)
	if err != nil {
		return nil, ErrPaperNotFound
	}

	target := domain.PaperStatus(req.Status)
	if !target.Valid() {
		return nil, ErrInvalidStatus
	}
	if target == domain.PaperPublished || !p.Status.CanTransitionTo(target) {
		return nil, ErrInvalidTransition
	}

	if target == domain.PaperApproved {
		score := req.PlagiarismScore
		if score == nil {
			score = p.PlagiarismScore
		}
		if score == nil {
			return nil, ErrPlagiarismRequired
		}
		if *score > s.plagiarismMax && !req.OverridePlagiarism {
			return nil, ErrPlagiarismTooHigh
		}
	}

	now := time.Now()
	updates := map[string]any{
		"status":      target,
		"reviewed_at": now,
	}
	if req.AdminNotes != "" {
		updates["admin_notes"] = req.AdminNotes
	}
	if req.PlagiarismScore != nil {
		updates["plagiarism_score"] = *req.PlagiarismScore
	}
	if target == domain.PaperApproved {
		updates["approved_at"] = now
	}
	if target == domain.PaperRevisionRequested && req.RevisionDeadline != nil {
		updates["revision_deadline"] = *req.RevisionDeadline
	}

	updated, err := s.papers.UpdateVersioned(ctx, p.ID, req.Version, updates)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrVersionConflict
	}

	s.recordAudit(ctx, adminID, ip, "paper_status_change", "papers", p.ID, domain.AuditDetails{
		"from":                string(p.Status),
		"to":                  string(target),
		"notes":               req.AdminNotes,
		"override_plagiarism": req.OverridePlagiarism,
	})
	if s.notifier != nil {
		s.notifier.Notify(p.AuthorID, "paper_reviewed", map[string]any{
			"paper_id": p.ID,
			"status":   string(target),
			"notes":    req.AdminNotes,
		})
	}

	return s.papers.GetByID(ctx, p.ID)
}

func (s *Service) ListPayments(ctx context.Context, f repository.PaymentFilters, page, limit int) ([]domain.Payment, int, error) {
	return s.payments.List(ctx, f, page, limit)
}

// ReviewPayment verifies or rejects a submitted payment proof.
func (s *Service) ReviewPayment(ctx context.Context, adminID, ip, paymentID string, req ReviewPaymentRequest) (*domain.Payment, error) {
	pay, err := s.payments.GetByID(ctx, paymentID)
	if err != nil {
		return nil, ErrPaymentNotFound
	}
	if pay.Status != domain.PaymentSubmitted {
		return nil, ErrPaymentNotReviewable
	}

	target := domain.PaymentStatus(req.Status)
	updates := map[string]any{"status": target}
	if target == domain.PaymentVerified {
		updates["verified_at"] = time.Now()
	}

	updated, err := s.payments.UpdateVersioned(ctx, pay.ID, req.Version, updates)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrVersionConflict
	}

	s.recordAudit(ctx, adminID, ip, "payment_status_change", "payments", pay.ID, domain.AuditDetails{
		"from":  string(pay.Status),
		"to":    string(target),
		"notes": req.Notes,
	})
	if s.notifier != nil {
		s.notifier.Notify(pay.AuthorID, "payment_reviewed", map[string]any{
			"payment_id": pay.ID,
			"status":     string(target),
		})
	}

	return s.payments.GetByID(ctx, pay.ID)
}

func (s *Service) Stats(ctx context.Context) (*DashboardStats, error) {
	byStatus, err := s.papers.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{PapersByStatus: make(map[string]int64, len(byStatus))}
	for status, n := range byStatus {
		stats.PapersByStatus[string(status)] = n
		stats.TotalPapers += n
	}
	stats.PendingVerification = byStatus[domain.PaperSubmitted] + byStatus[domain.PaperUnderReview]

	if stats.VerifiedRevenue, err = s.payments.SumVerified(ctx); err != nil {
		return nil, err
	}
	if stats.CertificatesIssued, err = s.certs.Count(ctx); err != nil {
		return nil, err
	}
	if _, stats.RegisteredAuthors, err = s.users.List(ctx, string(domain.RoleAuthor), 1, 1); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *Service) ListUsers(ctx context.Context, role string, page, limit int) ([]domain.User, int, error) {
	return s.users.List(ctx, role, page, limit)
}

func (s *Service) ListAuditLogs(ctx context.Context, page, limit int) ([]domain.AuditLog, int, error) {
	return s.audit.List(ctx, page, limit)
}

// recordAudit never fails the admin action; a lost audit row is logged
// and the decision stands.
func (s *Service) recordAudit(ctx context.Context, adminID, ip, action, table, recordID string, details domain.AuditDetails) {
	entry := &domain.AuditLog{
		AdminID:   adminID,
		Action:    action,
		Table:     table,
		RecordID:  recordID,
		Details:   details,
		IPAddress: ip,
	}
	if err := s.audit.Create(ctx, entry); err != nil {
		log.Printf("audit write failed action=%s record=%s error=%v", action, recordID, err)
	}
}
