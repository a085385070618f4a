package paper

import (
	"time"

	"pubdesk/internal/domain"
)

// SubmitPaperForm carries the multipart fields of a submission. The
// manuscript file itself travels alongside as form file "file".
type SubmitPaperForm struct {
	Title           string `form:"title" binding:"required,min=5"`
	Abstract        string `form:"abstract" binding:"required,min=20"`
	Keywords        string `form:"keywords"`
	Domain          string `form:"domain" binding:"required"`
	PublicationType string `form:"publication_type" binding:"required"`
	Authors         string `form:"authors" binding:"required"` // JSON array
}

type PaperResponse struct {
	ID               string               `json:"id"`
	Title            string               `json:"title"`
	Abstract         string               `json:"abstract"`
	Keywords         []string             `json:"keywords"`
	Domain           string               `json:"domain"`
	PublicationType  string               `json:"publication_type"`
	Status           string               `json:"status"`
	Authors          []domain.PaperAuthor `json:"authors"`
	FileURL          string               `json:"file_url,omitempty"`
	PlagiarismScore  *float64             `json:"plagiarism_score,omitempty"`
	AdminNotes       string               `json:"admin_notes,omitempty"`
	RevisionDeadline *time.Time           `json:"revision_deadline,omitempty"`
	SubmittedAt      time.Time            `json:"submitted_at"`
	ReviewedAt       *time.Time           `json:"reviewed_at,omitempty"`
	ApprovedAt       *time.Time           `json:"approved_at,omitempty"`
	PublishedAt      *time.Time           `json:"published_at,omitempty"`
	Version          int64                `json:"version"`
}
