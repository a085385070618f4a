package paper

import (
	"context"
	"mime/multipart"
	"testing"

	"pubdesk/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePaperRepo struct {
	papers map[string]*domain.Paper
}

func newFakePaperRepo() *fakePaperRepo {
	return &fakePaperRepo{papers: map[string]*domain.Paper{}}
}

func (r *fakePaperRepo) Create(_ context.Context, p *domain.Paper) error {
	cp := *p
	r.papers[p.ID] = &cp
	return nil
}

func (r *fakePaperRepo) GetByID(_ context.Context, id string) (*domain.Paper, error) {
	p, ok := r.papers[id]
	if !ok {
		return nil, ErrPaperNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakePaperRepo) ListByAuthor(_ context.Context, authorID string) ([]domain.Paper, error) {
	var out []domain.Paper
	for _, p := range r.papers {
		if p.AuthorID == authorID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePaperRepo) UpdateVersioned(_ context.Context, id string, version int64, updates map[string]any) (bool, error) {
	p, ok := r.papers[id]
	if !ok || p.Version != version {
		return false, nil
	}
	if v, ok := updates["status"]; ok {
		p.Status = v.(domain.PaperStatus)
	}
	if v, ok := updates["file_path"]; ok {
		p.FilePath = v.(string)
	}
	if _, ok := updates["plagiarism_score"]; ok {
		p.PlagiarismScore = nil
	}
	if v, ok := updates["admin_notes"]; ok {
		p.AdminNotes = v.(string)
	}
	p.Version++
	return true, nil
}

type fakeFileStore struct {
	saved int
}

func (f *fakeFileStore) Save(bucket string, _ *multipart.FileHeader) (string, error) {
	f.saved++
	return "2026/08/test_manuscript.pdf", nil
}

func (f *fakeFileStore) SignedURL(bucket, objectPath string) (string, error) {
	return "http://localhost:8080/api/v1/files/" + bucket + "/" + objectPath + "?sig=x", nil
}

func validForm() SubmitPaperForm {
	return SubmitPaperForm{
		Title:           "Fault Tolerant Routing in Sensor Networks",
		Abstract:        "We present a routing scheme resilient to correlated node failures.",
		Keywords:        "routing, sensor networks, fault tolerance",
		Domain:          "ECE",
		PublicationType: "journal",
		Authors:         `[{"name":"A. Author","email":"a@example.com"}]`,
	}
}

func TestSubmitPaper(t *testing.T) {
	repo := newFakePaperRepo()
	store := &fakeFileStore{}
	svc := NewService(repo, store)

	p, err := svc.Submit(context.Background(), "author-1", validForm(), &multipart.FileHeader{Size: 1})
	require.NoError(t, err)

	assert.Equal(t, domain.PaperSubmitted, p.Status)
	assert.Equal(t, "author-1", p.AuthorID)
	assert.Equal(t, int64(1), p.Version)
	assert.Len(t, p.Keywords, 3)
	assert.Equal(t, 1, store.saved)
	assert.False(t, p.SubmittedAt.IsZero())
}

func TestSubmitPaperValidation(t *testing.T) {
	svc := NewService(newFakePaperRepo(), &fakeFileStore{})
	ctx := context.Background()

	form := validForm()
	form.Domain = "Astrology"
	_, err := svc.Submit(ctx, "author-1", form, &multipart.FileHeader{Size: 1})
	assert.ErrorIs(t, err, ErrInvalidDomain)

	form = validForm()
	form.PublicationType = "blog"
	_, err = svc.Submit(ctx, "author-1", form, &multipart.FileHeader{Size: 1})
	assert.ErrorIs(t, err, ErrInvalidType)

	form = validForm()
	form.Authors = `[]`
	_, err = svc.Submit(ctx, "author-1", form, &multipart.FileHeader{Size: 1})
	assert.ErrorIs(t, err, ErrAuthorCount)

	form = validForm()
	form.Authors = `[{"name":"A. Author","email":"not-an-email"}]`
	_, err = svc.Submit(ctx, "author-1", form, &multipart.FileHeader{Size: 1})
	assert.ErrorIs(t, err, ErrInvalidAuthors)

	form = validForm()
	form.Authors = `[{"name":"A","email":"a@x.com"},{"name":"B","email":"b@x.com"},{"name":"C","email":"c@x.com"},{"name":"D","email":"d@x.com"},{"name":"E","email":"e@x.com"},{"name":"F","email":"f@x.com"},{"name":"G","email":"g@x.com"}]`
	_, err = svc.Submit(ctx, "author-1", form, &multipart.FileHeader{Size: 1})
	assert.ErrorIs(t, err, ErrAuthorCount)
}

func TestResubmit(t *testing.T) {
	repo := newFakePaperRepo()
	svc := NewService(repo, &fakeFileStore{})
	ctx := context.Background()

	p, err := svc.Submit(ctx, "author-1", validForm(), &multipart.FileHeader{Size: 1})
	require.NoError(t, err)

	// not awaiting revision yet
	_, err = svc.Resubmit(ctx, p.ID, &multipart.FileHeader{Size: 1})
	assert.ErrorIs(t, err, ErrNotResubmittable)

	repo.papers[p.ID].Status = domain.PaperRevisionRequested
	repo.papers[p.ID].AdminNotes = "tighten the related work section"
	score := 12.5
	repo.papers[p.ID].PlagiarismScore = &score

	got, err := svc.Resubmit(ctx, p.ID, &multipart.FileHeader{Size: 1})
	require.NoError(t, err)
	assert.Equal(t, domain.PaperSubmitted, got.Status)
	assert.Empty(t, got.AdminNotes)
	assert.Nil(t, got.PlagiarismScore)
	assert.Equal(t, int64(2), got.Version)
}
