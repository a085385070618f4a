package payment

import (
	"time"

	"pubdesk/internal/domain"
)

type CreatePaymentRequest struct {
	WantsHardcopy   bool   `json:"wants_hardcopy"`
	ShippingAddress string `json:"shipping_address"`
}

type SubmitProofForm struct {
	TransactionID string `form:"transaction_id" binding:"required,min=4"`
}

type QuoteResponse struct {
	PaperID     string              `json:"paper_id"`
	AuthorCount int                 `json:"author_count"`
	Fee         domain.FeeBreakdown `json:"fee"`
	Currency    string              `json:"currency"`
}

type PaymentResponse struct {
	ID              string     `json:"id"`
	PaperID         string     `json:"paper_id"`
	BaseAmount      int64      `json:"base_amount"`
	ExtraAuthorFee  int64      `json:"extra_author_fee"`
	HardcopyFee     int64      `json:"hardcopy_fee"`
	TotalAmount     int64      `json:"total_amount"`
	Status          string     `json:"status"`
	WantsHardcopy   bool       `json:"wants_hardcopy"`
	ShippingAddress string     `json:"shipping_address,omitempty"`
	TransactionID   string     `json:"transaction_id,omitempty"`
	ProofURL        string     `json:"proof_url,omitempty"`
	PaidAt          *time.Time `json:"paid_at,omitempty"`
	VerifiedAt      *time.Time `json:"verified_at,omitempty"`
	Version         int64      `json:"version"`
	CreatedAt       time.Time  `json:"created_at"`
}
