package catalog

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"aiconsult/internal/pkg/response"
	"aiconsult/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/prompts", h.ListPrompts)

	rg.GET("/tools", h.ListTools)
	rg.POST("/tools", h.CreateTool)
	rg.PUT("/tools/:id", h.UpdateTool)
	rg.DELETE("/tools/:id", h.DeleteTool)

	rg.GET("/blueprints", h.ListBlueprints)
	rg.POST("/blueprints/:id/download", h.DownloadBlueprint)
}

// ListPrompts handles GET /api/v1/prompts
func (h *Handler) ListPrompts(c *gin.Context) {
	prompts, err := h.service.ListPrompts(c.Request.Context(), c.Query("category"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load prompts")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"prompts": prompts})
}

// ListTools handles GET /api/v1/tools with optional filters
func (h *Handler) ListTools(c *gin.Context) {
	f := repository.ToolFilters{
		Category: c.Query("category"),
		Featured: c.Query("featured") == "true",
	}

	tools, err := h.service.ListTools(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load tools")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"tools": tools})
}

// CreateTool handles POST /api/v1/tools
func (h *Handler) CreateTool(c *gin.Context) {
	var req CreateToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	tool, err := h.service.CreateTool(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create tool")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"tool": tool})
}

// UpdateTool handles PUT /api/v1/tools/:id
func (h *Handler) UpdateTool(c *gin.Context) {
	var req UpdateToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	tool, err := h.service.UpdateTool(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Tool not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update tool")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"tool": tool})
}

// DeleteTool handles DELETE /api/v1/tools/:id
func (h *Handler) DeleteTool(c *gin.Context) {
	if err := h.service.DeleteTool(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Tool not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete tool")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// ListBlueprints handles GET /api/v1/blueprints
func (h *Handler) ListBlueprints(c *gin.Context) {
	blueprints, err := h.service.ListBlueprints(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load blueprints")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"blueprints": blueprints})
}

// DownloadBlueprint handles POST /api/v1/blueprints/:id/download
func (h *Handler) DownloadBlueprint(c *gin.Context) {
	url, err := h.service.DownloadBlueprint(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Blueprint not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to resolve download")
		return
	}
	response.Success(c, http.StatusOK, DownloadResponse{URL: url})
}
