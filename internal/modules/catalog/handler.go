package catalog

import (
	"net/http"
	"strconv"

	"pubdesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler manages the public catalog endpoints
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	v1.GET("/publications", h.Publications)
	v1.GET("/conferences", h.Conferences)
	v1.GET("/standards", h.Standards)
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	admin.POST("/conferences", h.CreateConference)
	admin.POST("/standards", h.CreateStandard)
}

func (h *Handler) Publications(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	pubs, total, err := h.service.Publications(c.Request.Context(), c.Query("domain"), c.Query("q"), page, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Could not load publications")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"publications": pubs, "total": total, "page": page})
}

func (h *Handler) Conferences(c *gin.Context) {
	confs, err := h.service.Conferences(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Could not load conferences")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"conferences": confs, "total": len(confs)})
}

func (h *Handler) Standards(c *gin.Context) {
	standards, err := h.service.Standards(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Could not load standards")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"standards": standards, "total": len(standards)})
}

func (h *Handler) CreateConference(c *gin.Context) {
	var req CreateConferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid conference payload")
		return
	}

	conf, err := h.service.CreateConference(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Could not create conference")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"conference": conf})
}

func (h *Handler) CreateStandard(c *gin.Context) {
	var req CreateStandardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid standard payload")
		return
	}

	std, err := h.service.CreateStandard(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Could not create standard")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"standard": std})
}
