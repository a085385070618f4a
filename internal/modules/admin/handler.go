package admin

import (
	"errors"
	"net/http"
	"strconv"

	"pubdesk/internal/pkg/response"
	"pubdesk/internal/repository"

	"github.com/gin-gonic/gin"
)

// Handler manages all HTTP interactions of the editorial desk
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	admin.GET("/papers", h.ListPapers)
	admin.PATCH("/papers/:id/status", h.ReviewPaper)
	admin.GET("/payments", h.ListPayments)
	admin.PATCH("/payments/:id/status", h.ReviewPayment)
	admin.GET("/stats", h.Stats)
	admin.GET("/users", h.ListUsers)
	admin.GET("/audit-logs", h.ListAuditLogs)
}

func (h *Handler) ListPapers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	filters := repository.PaperFilters{
		Status: c.Query("status"),
		Domain: c.Query("domain"),
		Query:  c.Query("q"),
	}

	papers, total, err := h.service.ListPapers(c.Request.Context(), filters, page, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Could not load papers")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"papers": papers, "total": total, "page": page})
}

func (h *Handler) ReviewPaper(c *gin.Context) {
	var req ReviewPaperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "status and version are required")
		return
	}

	p, err := h.service.ReviewPaper(c.Request.Context(), c.GetString("user_id"), c.ClientIP(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrPaperNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Paper not found")
		case errors.Is(err, ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Unknown paper status")
		case errors.Is(err, ErrInvalidTransition):
			response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "This status change is not allowed")
		case errors.Is(err, ErrPlagiarismRequired):
			response.Error(c, http.StatusConflict, "PLAGIARISM_REQUIRED", "Record a plagiarism score before approving")
		case errors.Is(err, ErrPlagiarismTooHigh):
			response.Error(c, http.StatusConflict, "PLAGIARISM_TOO_HIGH", "Plagiarism score exceeds the maximum, use override to approve anyway")
		case errors.Is(err, ErrVersionConflict):
			response.Error(c, http.StatusConflict, "VERSION_CONFLICT", "Paper was modified concurrently, reload and retry")
		default:
			response.Error(c, http.StatusInternalServerError, "REVIEW_FAILED", "Could not apply the decision")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"paper": p})
}

func (h *Handler) ListPayments(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	filters := repository.PaymentFilters{
		Status:        c.Query("status"),
		TransactionID: c.Query("transaction_id"),
	}

	payments, total, err := h.service.ListPayments(c.Request.Context(), filters, page, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Could not load payments")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"payments": payments, "total": total, "page": page})
}

func (h *Handler) ReviewPayment(c *gin.Context) {
	var req ReviewPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "status must be verified or rejected, version is required")
		return
	}

	pay, err := h.service.ReviewPayment(c.Request.Context(), c.GetString("user_id"), c.ClientIP(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrPaymentNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Payment not found")
		case errors.Is(err, ErrPaymentNotReviewable):
			response.Error(c, http.StatusConflict, "NOT_REVIEWABLE", "Payment has no submitted proof to review")
		case errors.Is(err, ErrVersionConflict):
			response.Error(c, http.StatusConflict, "VERSION_CONFLICT", "Payment was modified concurrently, reload and retry")
		default:
			response.Error(c, http.StatusInternalServerError, "REVIEW_FAILED", "Could not apply the decision")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"payment": pay})
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STATS_FAILED", "Could not compute dashboard stats")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"stats": stats})
}

func (h *Handler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	users, total, err := h.service.ListUsers(c.Request.Context(), c.Query("role"), page, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Could not load users")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"users": users, "total": total, "page": page})
}

func (h *Handler) ListAuditLogs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	logs, total, err := h.service.ListAuditLogs(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Could not load audit logs")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"audit_logs": logs, "total": total, "page": page})
}
