package catalog

import (
	"time"

	"pubdesk/internal/domain"
)

type CreateConferenceRequest struct {
	Title              string    `json:"title" binding:"required,min=3"`
	Description        string    `json:"description"`
	Venue              string    `json:"venue" binding:"required"`
	Domains            []string  `json:"domains"`
	StartDate          time.Time `json:"start_date" binding:"required"`
	EndDate            time.Time `json:"end_date" binding:"required"`
	SubmissionDeadline time.Time `json:"submission_deadline" binding:"required"`
	RegistrationFee    int64     `json:"registration_fee"`
}

type CreateStandardRequest struct {
	Title       string `json:"title" binding:"required,min=3"`
	Category    string `json:"category" binding:"required"`
	Description string `json:"description"`
}

// PublicationResponse is the public face of a published paper. No
// manuscript link, no review trail.
type PublicationResponse struct {
	ID              string               `json:"id"`
	Title           string               `json:"title"`
	Abstract        string               `json:"abstract"`
	Keywords        []string             `json:"keywords"`
	Domain          string               `json:"domain"`
	PublicationType string               `json:"publication_type"`
	Authors         []domain.PaperAuthor `json:"authors"`
	PublishedAt     *time.Time           `json:"published_at,omitempty"`
}
