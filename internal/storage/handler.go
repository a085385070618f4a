package storage

import (
	"net/http"
	"strings"

	"pubdesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(v1 *gin.RouterGroup) {
	v1.GET("/files/:bucket/*path", h.Download)
}

// Download serves a bucket object. Private buckets require the exp/sig
// query pair issued by SignedURL.
func (h *Handler) Download(c *gin.Context) {
	bucket := c.Param("bucket")
	objectPath := strings.TrimPrefix(c.Param("path"), "/")

	if err := h.service.Authorize(bucket, objectPath, c.Query("exp"), c.Query("sig")); err != nil {
		switch err {
		case ErrUnknownBucket:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Unknown bucket")
		default:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Invalid or expired file link")
		}
		return
	}

	abs, err := h.service.AbsPath(bucket, objectPath)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "File not found")
		return
	}

	c.File(abs)
}
