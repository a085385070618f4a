package admin

import "errors"

var (
	ErrPaperNotFound        = errors.New("paper not found")
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrInvalidStatus        = errors.New("unknown status")
	ErrInvalidTransition    = errors.New("status transition not allowed")
	ErrPlagiarismRequired   = errors.New("a plagiarism score is required before approval")
	ErrPlagiarismTooHigh    = errors.New("plagiarism score exceeds the configured maximum")
	ErrPaymentNotReviewable = errors.New("payment has no submitted proof to review")
	ErrVersionConflict      = errors.New("record was modified concurrently")
)
