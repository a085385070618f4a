package domain

import "time"

// Certificate is issued at most once per paper; the unique index on
// PaperID is the transactional backstop for the issuance flow.
type Certificate struct {
	ID                string    `json:"id" gorm:"primaryKey"`
	PaperID           string    `json:"paper_id" gorm:"uniqueIndex"`
	CertificateNumber string    `json:"certificate_number" gorm:"uniqueIndex"`
	QRCodeData        string    `json:"qr_code_data"`
	PDFPath           string    `json:"pdf_path,omitempty"`
	IsValid           bool      `json:"is_valid"`
	IssuedAt          time.Time `json:"issued_at"`
	CreatedAt         time.Time `json:"created_at"`
}
