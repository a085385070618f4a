package payment

import "errors"

var (
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrPaperNotFound    = errors.New("paper not found")
	ErrPaperNotPayable  = errors.New("paper is not approved for payment")
	ErrPaymentExists    = errors.New("an active payment already exists for this paper")
	ErrShippingRequired = errors.New("shipping address is required for hardcopy orders")
	ErrNotAwaitingProof = errors.New("payment is not awaiting proof")
	ErrVersionConflict  = errors.New("payment was modified concurrently")
)
