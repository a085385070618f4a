package certificate

import (
	"time"

	"pubdesk/internal/domain"
)

type IssueRequest struct {
	PaperID string `json:"paper_id" binding:"required"`
}

type SetValidityRequest struct {
	IsValid *bool `json:"is_valid" binding:"required"`
}

type CertificateResponse struct {
	ID                string    `json:"id"`
	PaperID           string    `json:"paper_id"`
	CertificateNumber string    `json:"certificate_number"`
	QRCodeData        string    `json:"qr_code_data"`
	PDFURL            string    `json:"pdf_url,omitempty"`
	IsValid           bool      `json:"is_valid"`
	IssuedAt          time.Time `json:"issued_at"`
}

// VerificationResponse is the public verification payload. A revoked
// certificate still resolves, flagged invalid, so forged and revoked
// numbers are distinguishable.
type VerificationResponse struct {
	CertificateNumber string               `json:"certificate_number"`
	IsValid           bool                 `json:"is_valid"`
	IssuedAt          time.Time            `json:"issued_at"`
	PaperTitle        string               `json:"paper_title,omitempty"`
	Authors           []domain.PaperAuthor `json:"authors,omitempty"`
	Domain            string               `json:"domain,omitempty"`
	PublicationType   string               `json:"publication_type,omitempty"`
	PublishedAt       *time.Time           `json:"published_at,omitempty"`
}
