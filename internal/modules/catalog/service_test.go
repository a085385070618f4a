package catalog

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

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	db, err := database.Connect("file:" + t.Name() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Paper{}, &domain.Conference{}, &domain.Standard{}))

	return NewService(repository.NewCatalogRepository(db), repository.NewPaperRepository(db)), db
}

func TestPublicationsOnlyPublished(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	now := time.Now()
	require.NoError(t, db.Create(&domain.Paper{
		ID: uuid.NewString(), AuthorID: "a1", Title: "Published Work",
		Domain: domain.DomainIT, Status: domain.PaperPublished,
		Authors: domain.AuthorList{{Name: "A", Email: "a@x.com"}}, PublishedAt: &now, Version: 2,
	}).Error)
	require.NoError(t, db.Create(&domain.Paper{
		ID: uuid.NewString(), AuthorID: "a1", Title: "Still Under Review",
		Domain: domain.DomainIT, Status: domain.PaperUnderReview,
		Authors: domain.AuthorList{{Name: "A", Email: "a@x.com"}}, Version: 1,
	}).Error)

	pubs, total, err := svc.Publications(ctx, "", "", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, pubs, 1)
	assert.Equal(t, "Published Work", pubs[0].Title)
	assert.NotNil(t, pubs[0].PublishedAt)
}

func TestConferencesAndStandardsFilterInactive(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	conf, err := svc.CreateConference(ctx, CreateConferenceRequest{
		Title:              "International Conference on Embedded Systems",
		Venue:              "Hyderabad",
		Domains:            []string{"ECE", "CSE"},
		StartDate:          time.Now().AddDate(0, 2, 0),
		EndDate:            time.Now().AddDate(0, 2, 3),
		SubmissionDeadline: time.Now().AddDate(0, 1, 0),
		RegistrationFee:    2500,
	})
	require.NoError(t, err)
	assert.True(t, conf.IsActive)

	_, err = svc.CreateStandard(ctx, CreateStandardRequest{
		Title:    "Manuscript Formatting Guide",
		Category: "formatting",
	})
	require.NoError(t, err)

	confs, err := svc.Conferences(ctx)
	require.NoError(t, err)
	assert.Len(t, confs, 1)

	standards, err := svc.Standards(ctx)
	require.NoError(t, err)
	assert.Len(t, standards, 1)
}
