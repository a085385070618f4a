package domain

import "time"

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentSubmitted PaymentStatus = "submitted"
	PaymentVerified  PaymentStatus = "verified"
	PaymentRejected  PaymentStatus = "rejected"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentSubmitted, PaymentVerified, PaymentRejected:
		return true
	}
	return false
}

// Publication fee schedule, amounts in INR.
const (
	BasePublicationFee = 1000
	PerExtraAuthorFee  = 200
	IncludedAuthors    = 4
	HardcopyFee        = 500
)

type FeeBreakdown struct {
	BaseAmount     int64 `json:"base_amount"`
	ExtraAuthorFee int64 `json:"extra_author_fee"`
	HardcopyFee    int64 `json:"hardcopy_fee"`
	TotalAmount    int64 `json:"total_amount"`
}

func ExtraAuthorFeeFor(authorCount int) int64 {
	extra := authorCount - IncludedAuthors
	if extra < 0 {
		extra = 0
	}
	return int64(extra) * PerExtraAuthorFee
}

// ComputeFee derives the full publication fee from the paper's author
// count and the hardcopy flag. total = base + extra + hardcopy always
// holds.
func ComputeFee(authorCount int, wantsHardcopy bool) FeeBreakdown {
	f := FeeBreakdown{
		BaseAmount:     BasePublicationFee,
		ExtraAuthorFee: ExtraAuthorFeeFor(authorCount),
	}
	if wantsHardcopy {
		f.HardcopyFee = HardcopyFee
	}
	f.TotalAmount = f.BaseAmount + f.ExtraAuthorFee + f.HardcopyFee
	return f
}

type Payment struct {
	ID              string        `json:"id" gorm:"primaryKey"`
	PaperID         string        `json:"paper_id" gorm:"index"`
	AuthorID        string        `json:"author_id" gorm:"index"`
	BaseAmount      int64         `json:"base_amount"`
	ExtraAuthorFee  int64         `json:"extra_author_fee"`
	HardcopyFee     int64         `json:"hardcopy_fee"`
	TotalAmount     int64         `json:"total_amount"`
	Status          PaymentStatus `json:"status"`
	WantsHardcopy   bool          `json:"wants_hardcopy"`
	ShippingAddress string        `json:"shipping_address,omitempty" gorm:"type:text"`
	TransactionID   string        `json:"transaction_id,omitempty"`
	ProofPath       string        `json:"payment_proof_path,omitempty"`
	PaidAt          *time.Time    `json:"paid_at,omitempty"`
	VerifiedAt      *time.Time    `json:"verified_at,omitempty"`
	Version         int64         `json:"version"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}
