package admin

import "time"

type ReviewPaperRequest struct {
	Status             string     `json:"status" binding:"required"`
	AdminNotes         string     `json:"admin_notes"`
	PlagiarismScore    *float64   `json:"plagiarism_score"`
	RevisionDeadline   *time.Time `json:"revision_deadline"`
	OverridePlagiarism bool       `json:"override_plagiarism"`
	Version            int64      `json:"version" binding:"required"`
}

type ReviewPaymentRequest struct {
	Status  string `json:"status" binding:"required,oneof=verified rejected"`
	Notes   string `json:"notes"`
	Version int64  `json:"version" binding:"required"`
}

type DashboardStats struct {
	TotalPapers         int64            `json:"total_papers"`
	PapersByStatus      map[string]int64 `json:"papers_by_status"`
	VerifiedRevenue     int64            `json:"verified_revenue"`
	CertificatesIssued  int64            `json:"certificates_issued"`
	RegisteredAuthors   int              `json:"registered_authors"`
	PendingVerification int64            `json:"pending_verification"`
}
