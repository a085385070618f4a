package certificate

import (
	"errors"
	"net/http"
	"strconv"

	"pubdesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler manages all HTTP interactions for certificates
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes exposes certificate verification without auth so
// the QR code on a printed certificate resolves for anyone.
func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	v1.GET("/verify/:number", h.Verify)
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.GET("/certificates", h.MyCertificates)
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	certs := admin.Group("/certificates")
	{
		certs.GET("", h.List)
		certs.POST("", h.Issue)
		certs.PATCH("/:id/validity", h.SetValidity)
	}
}

func (h *Handler) Issue(c *gin.Context) {
	var req IssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "paper_id is required")
		return
	}

	cert, err := h.service.Issue(c.Request.Context(), req.PaperID)
	if err != nil {
		switch {
		case errors.Is(err, ErrPaperNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Paper not found")
		case errors.Is(err, ErrPaperNotApproved):
			response.Error(c, http.StatusConflict, "PAPER_NOT_APPROVED", "Certificates are issued for approved papers only")
		case errors.Is(err, ErrPaymentNotVerified):
			response.Error(c, http.StatusConflict, "PAYMENT_NOT_VERIFIED", "The publication fee has not been verified")
		case errors.Is(err, ErrAlreadyIssued):
			response.Error(c, http.StatusConflict, "ALREADY_ISSUED", "This paper already has a certificate")
		case errors.Is(err, ErrIssueConflict):
			response.Error(c, http.StatusConflict, "VERSION_CONFLICT", "Paper was modified concurrently, retry")
		default:
			response.Error(c, http.StatusInternalServerError, "ISSUE_FAILED", "Could not issue certificate")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"certificate": h.service.ToResponse(cert)})
}

func (h *Handler) Verify(c *gin.Context) {
	result, err := h.service.Verify(c.Request.Context(), c.Param("number"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "No certificate with this number exists")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"verification": result})
}

func (h *Handler) SetValidity(c *gin.Context) {
	var req SetValidityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsValid == nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "is_valid is required")
		return
	}

	cert, err := h.service.SetValidity(c.Request.Context(), c.Param("id"), *req.IsValid)
	if err != nil {
		if errors.Is(err, ErrCertificateNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Certificate not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Could not update certificate")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"certificate": h.service.ToResponse(cert)})
}

func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	certs, total, err := h.service.List(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Could not load certificates")
		return
	}

	out := make([]CertificateResponse, 0, len(certs))
	for i := range certs {
		out = append(out, h.service.ToResponse(&certs[i]))
	}
	response.Success(c, http.StatusOK, gin.H{"certificates": out, "total": total})
}

func (h *Handler) MyCertificates(c *gin.Context) {
	certs, err := h.service.ListByAuthor(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Could not load certificates")
		return
	}

	out := make([]CertificateResponse, 0, len(certs))
	for i := range certs {
		out = append(out, h.service.ToResponse(&certs[i]))
	}
	response.Success(c, http.StatusOK, gin.H{"certificates": out, "total": len(out)})
}
