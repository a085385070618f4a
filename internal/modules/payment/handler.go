package payment

import (
	"errors"
	"net/http"

	"pubdesk/internal/pkg/response"
	"pubdesk/internal/storage"

	"github.com/gin-gonic/gin"
)

// Handler manages all HTTP interactions for publication fees
type Handler struct {
	service            *Service
	checkPaperAccess   gin.HandlerFunc
	checkPaymentAccess gin.HandlerFunc
}

func NewHandler(service *Service, checkPaperAccess, checkPaymentAccess gin.HandlerFunc) *Handler {
	return &Handler{
		service:            service,
		checkPaperAccess:   checkPaperAccess,
		checkPaymentAccess: checkPaymentAccess,
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.GET("/papers/:id/payment/quote", h.checkPaperAccess, h.Quote)
	protected.POST("/papers/:id/payment", h.checkPaperAccess, h.Create)

	payments := protected.Group("/payments")
	{
		payments.GET("", h.MyPayments)
		payments.GET("/:id", h.checkPaymentAccess, h.GetByID)
		payments.POST("/:id/proof", h.checkPaymentAccess, h.SubmitProof)
	}
}

func (h *Handler) Quote(c *gin.Context) {
	wantsHardcopy := c.Query("hardcopy") == "true"

	quote, err := h.service.Quote(c.Request.Context(), c.Param("id"), wantsHardcopy)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Paper not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"quote": quote})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	pay, err := h.service.Create(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrPaperNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Paper not found")
		case errors.Is(err, ErrPaperNotPayable):
			response.Error(c, http.StatusConflict, "PAPER_NOT_PAYABLE", "Payment is only possible after approval")
		case errors.Is(err, ErrPaymentExists):
			response.Error(c, http.StatusConflict, "PAYMENT_EXISTS", "An active payment already exists for this paper")
		case errors.Is(err, ErrShippingRequired):
			response.Error(c, http.StatusBadRequest, "SHIPPING_REQUIRED", "Shipping address is required for hardcopy orders")
		default:
			response.Error(c, http.StatusInternalServerError, "PAYMENT_FAILED", "Could not create payment")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"payment": h.service.ToResponse(pay)})
}

func (h *Handler) SubmitProof(c *gin.Context) {
	var form SubmitProofForm
	if err := c.ShouldBind(&form); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Transaction reference is required")
		return
	}

	proof, err := c.FormFile("proof")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "FILE_REQUIRED", "Payment proof file is required")
		return
	}

	pay, err := h.service.SubmitProof(c.Request.Context(), c.Param("id"), form.TransactionID, proof)
	if err != nil {
		switch {
		case errors.Is(err, ErrPaymentNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Payment not found")
		case errors.Is(err, ErrNotAwaitingProof):
			response.Error(c, http.StatusConflict, "NOT_AWAITING_PROOF", "Payment is not awaiting proof")
		case errors.Is(err, ErrVersionConflict):
			response.Error(c, http.StatusConflict, "VERSION_CONFLICT", "Payment was modified concurrently, retry")
		case errors.Is(err, storage.ErrInvalidMimeType):
			response.Error(c, http.StatusBadRequest, "INVALID_FILE_TYPE", "Proof must be a PDF or an image")
		case errors.Is(err, storage.ErrFileTooLarge):
			response.Error(c, http.StatusBadRequest, "FILE_TOO_LARGE", "Proof must be 10MB or smaller")
		case errors.Is(err, storage.ErrEmptyFile):
			response.Error(c, http.StatusBadRequest, "EMPTY_FILE", "Uploaded file is empty")
		default:
			response.Error(c, http.StatusInternalServerError, "PROOF_FAILED", "Could not store payment proof")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"payment": h.service.ToResponse(pay)})
}

func (h *Handler) GetByID(c *gin.Context) {
	pay, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Payment not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"payment": h.service.ToResponse(pay)})
}

func (h *Handler) MyPayments(c *gin.Context) {
	payments, err := h.service.ListByAuthor(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Could not load payments")
		return
	}

	out := make([]PaymentResponse, 0, len(payments))
	for i := range payments {
		out = append(out, h.service.ToResponse(&payments[i]))
	}
	response.Success(c, http.StatusOK, gin.H{"payments": out, "total": len(out)})
}
