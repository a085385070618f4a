package certificate

import "errors"

var (
	ErrCertificateNotFound = errors.New("certificate not found")
	ErrPaperNotFound       = errors.New("paper not found")
	ErrPaperNotApproved    = errors.New("paper is not approved")
	ErrPaymentNotVerified  = errors.New("no verified payment for this paper")
	ErrAlreadyIssued       = errors.New("certificate already issued for this paper")
	ErrIssueConflict       = errors.New("issuance lost a concurrent update, retry")
)
