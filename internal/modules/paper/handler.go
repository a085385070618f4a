package paper

import (
	"errors"
	"net/http"

	"pubdesk/internal/pkg/response"
	"pubdesk/internal/storage"

	"github.com/gin-gonic/gin"
)

// Handler manages all HTTP interactions for manuscripts
type Handler struct {
	service        *Service
	checkOwnership gin.HandlerFunc
}

func NewHandler(service *Service, checkOwnership gin.HandlerFunc) *Handler {
	return &Handler{service: service, checkOwnership: checkOwnership}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	papers := protected.Group("/papers")
	{
		papers.POST("", h.Submit)
		papers.GET("", h.MyPapers)
		papers.GET("/:id", h.checkOwnership, h.GetByID)
		papers.POST("/:id/resubmit", h.checkOwnership, h.Resubmit)
	}
}

func (h *Handler) Submit(c *gin.Context) {
	var form SubmitPaperForm
	if err := c.ShouldBind(&form); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid submission form")
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "FILE_REQUIRED", "Manuscript file is required")
		return
	}

	authorID := c.GetString("user_id")
	p, err := h.service.Submit(c.Request.Context(), authorID, form, file)
	if err != nil {
		h.writeSubmitError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"paper": h.service.ToResponse(p, true)})
}

func (h *Handler) MyPapers(c *gin.Context) {
	authorID := c.GetString("user_id")

	papers, err := h.service.ListByAuthor(c.Request.Context(), authorID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Could not load papers")
		return
	}

	out := make([]PaperResponse, 0, len(papers))
	for i := range papers {
		out = append(out, h.service.ToResponse(&papers[i], true))
	}
	response.Success(c, http.StatusOK, gin.H{"papers": out, "total": len(out)})
}

func (h *Handler) GetByID(c *gin.Context) {
	p, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Paper not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"paper": h.service.ToResponse(p, true)})
}

func (h *Handler) Resubmit(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "FILE_REQUIRED", "Revised manuscript file is required")
		return
	}

	p, err := h.service.Resubmit(c.Request.Context(), c.Param("id"), file)
	if err != nil {
		switch {
		case errors.Is(err, ErrPaperNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Paper not found")
		case errors.Is(err, ErrNotResubmittable):
			response.Error(c, http.StatusConflict, "NOT_RESUBMITTABLE", "Paper is not awaiting revision")
		case errors.Is(err, ErrVersionConflict):
			response.Error(c, http.StatusConflict, "VERSION_CONFLICT", "Paper was modified concurrently, retry")
		default:
			h.writeSubmitError(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"paper": h.service.ToResponse(p, true)})
}

func (h *Handler) writeSubmitError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidDomain), errors.Is(err, ErrInvalidType),
		errors.Is(err, ErrAuthorCount), errors.Is(err, ErrInvalidAuthors):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, storage.ErrInvalidMimeType):
		response.Error(c, http.StatusBadRequest, "INVALID_FILE_TYPE", "Only PDF manuscripts are accepted")
	case errors.Is(err, storage.ErrFileTooLarge):
		response.Error(c, http.StatusBadRequest, "FILE_TOO_LARGE", "Manuscript must be 10MB or smaller")
	case errors.Is(err, storage.ErrEmptyFile):
		response.Error(c, http.StatusBadRequest, "EMPTY_FILE", "Uploaded file is empty")
	default:
		response.Error(c, http.StatusInternalServerError, "SUBMIT_FAILED", "Could not store the submission")
	}
}
