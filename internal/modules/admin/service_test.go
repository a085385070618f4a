package admin

import (
	"context"
	"testing"
	"time"

	"pubdesk/internal/database"
	"pubdesk/internal/domain"
	"pubdesk/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type capturedEvent struct {
	userID string
	event  string
}

type fakeNotifier struct {
	events []capturedEvent
}

func (f *fakeNotifier) Notify(userID string, event string, _ any) {
	f.events = append(f.events, capturedEvent{userID: userID, event: event})
}

func newTestService(t *testing.T) (*Service, *gorm.DB, *fakeNotifier) {
	t.Helper()

	db, err := database.Connect("file:" + t.Name() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.User{}, &domain.Paper{}, &domain.Payment{},
		&domain.Certificate{}, &domain.AuditLog{},
	))

	notifier := &fakeNotifier{}
	svc := NewService(
		repository.NewPaperRepository(db),
		repository.NewPaymentRepository(db),
		repository.NewCertificateRepository(db),
		repository.NewUserRepository(db),
		repository.NewAuditRepository(db),
		notifier,
		40,
	)
	return svc, db, notifier
}

func seedPaper(t *testing.T, db *gorm.DB, status domain.PaperStatus, score *float64) *domain.Paper {
	t.Helper()
	p := &domain.Paper{
		ID:              uuid.NewString(),
		AuthorID:        "author-1",
		Title:           "Low Power Scheduling on Heterogeneous Cores",
		Abstract:        "An abstract of reasonable length for a test fixture.",
		Domain:          domain.DomainCSE,
		Status:          status,
		Authors:         domain.AuthorList{{Name: "A", Email: "a@example.com"}},
		PlagiarismScore: score,
		Version:         1,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func TestReviewPaperApprove(t *testing.T) {
	svc, db, notifier := newTestService(t)
	ctx := context.Background()

	score := 12.0
	paper := seedPaper(t, db, domain.PaperUnderReview, &score)

	got, err := svc.ReviewPaper(ctx, "admin-1", "10.0.0.1", paper.ID, ReviewPaperRequest{
		Status:  "approved",
		Version: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.PaperApproved, got.Status)
	assert.NotNil(t, got.ReviewedAt)
	assert.NotNil(t, got.ApprovedAt)
	assert.Equal(t, int64(2), got.Version)

	// decision is audited and the author notified
	var logs []domain.AuditLog
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.Equal(t, "paper_status_change", logs[0].Action)
	assert.Equal(t, "admin-1", logs[0].AdminID)
	assert.Equal(t, paper.ID, logs[0].RecordID)

	require.Len(t, notifier.events, 1)
	assert.Equal(t, "author-1", notifier.events[0].userID)
	assert.Equal(t, "paper_reviewed", notifier.events[0].event)
}

func TestReviewPaperPlagiarismGate(t *testing.T) {
	svc, db, _ := newTestService(t)
	ctx := context.Background()

	// no score on record and none supplied
	paper := seedPaper(t, db, domain.PaperUnderReview, nil)
	_, err := svc.ReviewPaper(ctx, "admin-1", "", paper.ID, ReviewPaperRequest{Status: "approved", Version: 1})
	assert.ErrorIs(t, err, ErrPlagiarismRequired)

	// score above the configured maximum
	high := 55.0
	_, err = svc.ReviewPaper(ctx, "admin-1", "", paper.ID, ReviewPaperRequest{
		Status: "approved", PlagiarismScore: &high, Version: 1,
	})
	assert.ErrorIs(t, err, ErrPlagiarismTooHigh)

	// explicit override approves anyway
	got, err := svc.ReviewPaper(ctx, "admin-1", "", paper.ID, ReviewPaperRequest{
		Status: "approved", PlagiarismScore: &high, OverridePlagiarism: true, Version: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PaperApproved, got.Status)
	require.NotNil(t, got.PlagiarismScore)
	assert.Equal(t, 55.0, *got.PlagiarismScore)
}

func TestReviewPaperTransitions(t *testing.T) {
	svc, db, _ := newTestService(t)
	ctx := context.Background()

	rejected := seedPaper(t, db, domain.PaperRejected, nil)
	_, err := svc.ReviewPaper(ctx, "admin-1", "", rejected.ID, ReviewPaperRequest{Status: "approved", Version: 1})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// publishing is reserved for certificate issuance
	score := 1.0
	approved := seedPaper(t, db, domain.PaperApproved, &score)
	_, err = svc.ReviewPaper(ctx, "admin-1", "", approved.ID, ReviewPaperRequest{Status: "published", Version: 1})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	submitted := seedPaper(t, db, domain.PaperSubmitted, nil)
	_, err = svc.ReviewPaper(ctx, "admin-1", "", submitted.ID, ReviewPaperRequest{Status: "nonsense", Version: 1})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestReviewPaperVersionConflict(t *testing.T) {
	svc, db, _ := newTestService(t)
	ctx := context.Background()

	paper := seedPaper(t, db, domain.PaperSubmitted, nil)

	_, err := svc.ReviewPaper(ctx, "admin-1", "", paper.ID, ReviewPaperRequest{Status: "under_review", Version: 7})
	assert.ErrorIs(t, err, ErrVersionConflict)

	// the stale write must not have touched the row
	var fresh domain.Paper
	require.NoError(t, db.First(&fresh, "id = ?", paper.ID).Error)
	assert.Equal(t, domain.PaperSubmitted, fresh.Status)
	assert.Equal(t, int64(1), fresh.Version)
}

func TestReviewPayment(t *testing.T) {
	svc, db, notifier := newTestService(t)
	ctx := context.Background()

	now := time.Now()
	pay := &domain.Payment{
		ID:          uuid.NewString(),
		PaperID:     uuid.NewString(),
		AuthorID:    "author-2",
		BaseAmount:  1000,
		TotalAmount: 1000,
		Status:      domain.PaymentSubmitted,
		PaidAt:      &now,
		Version:     1,
	}
	require.NoError(t, db.Create(pay).Error)

	got, err := svc.ReviewPayment(ctx, "admin-1", "10.0.0.1", pay.ID, ReviewPaymentRequest{Status: "verified", Version: 1})
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentVerified, got.Status)
	assert.NotNil(t, got.VerifiedAt)
	assert.Equal(t, int64(2), got.Version)

	require.Len(t, notifier.events, 1)
	assert.Equal(t, "author-2", notifier.events[0].userID)

	// already decided
	_, err = svc.ReviewPayment(ctx, "admin-1", "", pay.ID, ReviewPaymentRequest{Status: "rejected", Version: 2})
	assert.ErrorIs(t, err, ErrPaymentNotReviewable)
}

func TestStats(t *testing.T) {
	svc, db, _ := newTestService(t)
	ctx := context.Background()

	seedPaper(t, db, domain.PaperSubmitted, nil)
	seedPaper(t, db, domain.PaperUnderReview, nil)
	seedPaper(t, db, domain.PaperPublished, nil)

	now := time.Now()
	require.NoError(t, db.Create(&domain.Payment{
		ID: uuid.NewString(), PaperID: uuid.NewString(), AuthorID: "author-1",
		TotalAmount: 1700, Status: domain.PaymentVerified, VerifiedAt: &now, Version: 1,
	}).Error)
	require.NoError(t, db.Create(&domain.Payment{
		ID: uuid.NewString(), PaperID: uuid.NewString(), AuthorID: "author-1",
		TotalAmount: 1000, Status: domain.PaymentSubmitted, Version: 1,
	}).Error)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalPapers)
	assert.Equal(t, int64(1), stats.PapersByStatus["published"])
	assert.Equal(t, int64(2), stats.PendingVerification)
	assert.Equal(t, int64(1700), stats.VerifiedRevenue)
	assert.Zero(t, stats.CertificatesIssued)
}
