package mailer

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/send-lead-email", h.SendLeadEmail)
}

// SendLeadEmail handles POST /send-lead-email. The response shape
// matches what the submission client expects: 2xx with any body on
// success, any other status with an error message on failure.
func (h *Handler) SendLeadEmail(c *gin.Context) {
	var p LeadEmailPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload: a valid email is required"})
		return
	}

	if err := h.service.SendLeadEmails(p); err != nil {
		log.Printf("send-lead-email failed email=%s service_type=%s err=%v", p.Email, p.ServiceType, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
