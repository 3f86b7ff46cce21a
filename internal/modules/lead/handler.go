package lead

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"aiconsult/internal/domain"
	"aiconsult/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/consultations", h.SubmitConsultation)
}

// SubmitConsultation handles POST /api/v1/consultations: the lead form
// posts the full submission here, and the persist-then-notify pipeline
// runs server-side.
func (h *Handler) SubmitConsultation(c *gin.Context) {
	var req SubmitConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	modalType := domain.ModalType(req.ModalType)
	if !modalType.Valid() {
		response.Error(c, http.StatusBadRequest, "UNKNOWN_MODAL_TYPE", "Unknown form variant")
		return
	}

	token := req.SubmissionToken
	if token == "" {
		token = uuid.NewString()
	}
	modal := ModalState{
		IsOpen:          true,
		ModalType:       modalType,
		Source:          req.Source,
		SubmissionToken: token,
	}

	form := NewForm(modal)
	values := req.fieldValues()
	for _, fd := range form.Config().Fields {
		if v := strings.TrimSpace(values[fd.Name]); v != "" {
			// fields are always settable here: no pre-filled email
			_ = form.Set(fd.Name, v)
		}
	}

	record, err := h.service.Submit(c.Request.Context(), form, modal)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.ErrorWithDetails(c, http.StatusUnprocessableEntity,
				"VALIDATION_ERROR", "Required fields are missing or malformed", form.Validate())
			return

		case errors.Is(err, ErrAlreadySubmitted):
			response.Info(c, http.StatusOK, "ALREADY_SUBMITTED",
				"This submission was already received. We'll be in touch soon.")
			return

		case errors.Is(err, ErrNotification):
			// the record is persisted; only the email failed
			response.Error(c, http.StatusBadGateway, "NOTIFICATION_ERROR",
				"Your request was saved but the confirmation email could not be sent")
			return

		default:
			response.Error(c, http.StatusInternalServerError, "PERSISTENCE_ERROR",
				"Failed to save your request. Please try again later.")
			return
		}
	}

	response.Success(c, http.StatusCreated, gin.H{
		"request": gin.H{
			"id":     record.ID,
			"status": record.Status,
		},
	})
}
