package certificate

import (
	"context"
	"fmt"
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

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	db, err := database.Connect("file:" + t.Name() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Paper{}, &domain.Payment{}, &domain.Certificate{}))

	svc := NewService(
		repository.NewCertificateRepository(db),
		repository.NewPaperRepository(db),
		nil,
		nil,
		"http://localhost:8080",
	)
	return svc, db
}

func seedPaper(t *testing.T, db *gorm.DB, status domain.PaperStatus) *domain.Paper {
	t.Helper()
	p := &domain.Paper{
		ID:       uuid.NewString(),
		AuthorID: "author-1",
		Title:    "Edge Caching for Vehicular Networks",
		Abstract: "An abstract long enough to be plausible.",
		Domain:   domain.DomainCSE,
		Status:   status,
		Authors:  domain.AuthorList{{Name: "A", Email: "a@example.com"}},
		Version:  1,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func seedVerifiedPayment(t *testing.T, db *gorm.DB, paperID string) {
	t.Helper()
	now := time.Now()
	require.NoError(t, db.Create(&domain.Payment{
		ID:          uuid.NewString(),
		PaperID:     paperID,
		AuthorID:    "author-1",
		BaseAmount:  1000,
		TotalAmount: 1000,
		Status:      domain.PaymentVerified,
		VerifiedAt:  &now,
		Version:     1,
	}).Error)
}

func TestIssueCertificate(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	paper := seedPaper(t, db, domain.PaperApproved)
	seedVerifiedPayment(t, db, paper.ID)

	cert, err := svc.Issue(ctx, paper.ID)
	require.NoError(t, err)

	year := time.Now().Year()
	assert.Equal(t, fmt.Sprintf("IRPCERT-%d-000001", year), cert.CertificateNumber)
	assert.Equal(t, fmt.Sprintf("http://localhost:8080/verify/%s", cert.CertificateNumber), cert.QRCodeData)
	assert.True(t, cert.IsValid)

	// paper must be published in the same transaction
	var published domain.Paper
	require.NoError(t, db.First(&published, "id = ?", paper.ID).Error)
	assert.Equal(t, domain.PaperPublished, published.Status)
	assert.NotNil(t, published.PublishedAt)
	assert.Equal(t, int64(2), published.Version)

	// certificate numbers increase within a year
	second := seedPaper(t, db, domain.PaperApproved)
	seedVerifiedPayment(t, db, second.ID)
	cert2, err := svc.Issue(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("IRPCERT-%d-000002", year), cert2.CertificateNumber)
}

func TestIssuePreconditions(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	_, err := svc.Issue(ctx, "missing")
	assert.ErrorIs(t, err, ErrPaperNotFound)

	pending := seedPaper(t, db, domain.PaperUnderReview)
	_, err = svc.Issue(ctx, pending.ID)
	assert.ErrorIs(t, err, ErrPaperNotApproved)

	unpaid := seedPaper(t, db, domain.PaperApproved)
	_, err = svc.Issue(ctx, unpaid.ID)
	assert.ErrorIs(t, err, ErrPaymentNotVerified)

	// rollback check: no certificate row may exist after the failures
	var count int64
	require.NoError(t, db.Model(&domain.Certificate{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestIssueIsIdempotentPerPaper(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	paper := seedPaper(t, db, domain.PaperApproved)
	seedVerifiedPayment(t, db, paper.ID)

	_, err := svc.Issue(ctx, paper.ID)
	require.NoError(t, err)

	// the paper is now published, so a second issue cannot pass the
	// approved check, let alone the unique paper_id index
	_, err = svc.Issue(ctx, paper.ID)
	assert.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&domain.Certificate{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestVerifyAndRevoke(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	paper := seedPaper(t, db, domain.PaperApproved)
	seedVerifiedPayment(t, db, paper.ID)
	cert, err := svc.Issue(ctx, paper.ID)
	require.NoError(t, err)

	got, err := svc.Verify(ctx, cert.CertificateNumber)
	require.NoError(t, err)
	assert.True(t, got.IsValid)
	assert.Equal(t, paper.Title, got.PaperTitle)
	assert.NotNil(t, got.PublishedAt)

	_, err = svc.Verify(ctx, "IRPCERT-2019-999999")
	assert.ErrorIs(t, err, ErrCertificateNotFound)

	// a revoked certificate still resolves, flagged invalid
	_, err = svc.SetValidity(ctx, cert.ID, false)
	require.NoError(t, err)

	got, err = svc.Verify(ctx, cert.CertificateNumber)
	require.NoError(t, err)
	assert.False(t, got.IsValid)
}
