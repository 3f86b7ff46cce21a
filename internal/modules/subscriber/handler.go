package subscriber

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"aiconsult/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/subscribers", h.Subscribe)
}

// Subscribe handles POST /api/v1/subscribers
func (h *Handler) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "A valid email address is required")
		return
	}

	sub, err := h.service.Subscribe(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrAlreadySubscribed) {
			response.Info(c, http.StatusOK, "ALREADY_SUBSCRIBED",
				"This email is already in our system. Check your inbox for access details.")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to save your signup")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"subscriber": gin.H{
			"id":    sub.ID,
			"email": sub.Email,
		},
	})
}
