package middleware

import (
	"net/http"

	"pubdesk/internal/repository"

	"github.com/gin-gonic/gin"
)

// OwnershipChecker provides middleware to verify resource ownership
type OwnershipChecker struct {
	paperRepo   *repository.PaperRepository
	paymentRepo *repository.PaymentRepository
}

// NewOwnershipChecker creates a new ownership checker
func NewOwnershipChecker(
	paperRepo *repository.PaperRepository,
	paymentRepo *repository.PaymentRepository,
) *OwnershipChecker {
	return &OwnershipChecker{
		paperRepo:   paperRepo,
		paymentRepo: paymentRepo,
	}
}

// CheckPaperOwnership verifies the user owns the paper. Admins pass.
// Expects paper ID in URL param "id"
func (oc *OwnershipChecker) CheckPaperOwnership() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "Authentication required"},
			})
			return
		}

		paper, err := oc.paperRepo.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   gin.H{"code": "NOT_FOUND", "message": "Paper not found"},
			})
			return
		}

		if paper.AuthorID != userID && c.GetString("role") != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   gin.H{"code": "FORBIDDEN", "message": "You don't own this paper"},
			})
			return
		}

		c.Next()
	}
}

// CheckPaymentOwnership verifies the user owns the payment record.
// Expects payment ID in URL param "id"
func (oc *OwnershipChecker) CheckPaymentOwnership() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "Authentication required"},
			})
			return
		}

		payment, err := oc.paymentRepo.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   gin.H{"code": "NOT_FOUND", "message": "Payment not found"},
			})
			return
		}

		if payment.AuthorID != userID && c.GetString("role") != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   gin.H{"code": "FORBIDDEN", "message": "You don't own this payment"},
			})
			return
		}

		c.Next()
	}
}
