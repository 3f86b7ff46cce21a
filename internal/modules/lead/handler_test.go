package lead

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"aiconsult/internal/database"
	"aiconsult/internal/repository"
)

type stubNotifier struct {
	err   error
	calls int
	last  Payload
}

func (s *stubNotifier) SendLeadEmail(_ context.Context, p Payload) error {
	s.calls++
	s.last = p
	return s.err
}

type submitResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Request struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"request"`
	} `json:"data"`
	Info struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"info"`
	Error struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func setupRouter(t *testing.T, notifier Notifier) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))

	store := repository.NewConsultationRepository(db)
	handler := NewHandler(NewService(store, notifier))

	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return router, db
}

func postConsultation(router *gin.Engine, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(body)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/consultations", &buf)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func decode(t *testing.T, resp *httptest.ResponseRecorder) submitResponse {
	t.Helper()
	var payload submitResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return payload
}

func countRequests(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Table("consultation_requests").Count(&n).Error)
	return n
}

func TestSubmitConsultationCreated(t *testing.T) {
	notifier := &stubNotifier{}
	router, db := setupRouter(t, notifier)

	resp := postConsultation(router, SubmitConsultationRequest{
		ModalType: "quick_contact",
		Source:    "hero",
		Name:      "Dana",
		Email:     "dana@co.com",
		Message:   "help us automate invoicing",
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	payload := decode(t, resp)
	require.True(t, payload.Success)
	require.NotEmpty(t, payload.Data.Request.ID)
	require.Equal(t, "new", payload.Data.Request.Status)
	require.Equal(t, 1, notifier.calls)
	require.Equal(t, "dana@co.com", notifier.last.Email)

	var notified bool
	require.NoError(t, db.Table("consultation_requests").
		Where("id = ?", payload.Data.Request.ID).
		Select("notified").Scan(&notified).Error)
	require.True(t, notified)
}

func TestSubmitConsultationValidation(t *testing.T) {
	notifier := &stubNotifier{}
	router, db := setupRouter(t, notifier)

	resp := postConsultation(router, SubmitConsultationRequest{
		ModalType: "quick_contact",
		Source:    "hero",
		Name:      "Dana",
		Email:     "not-an-email",
		Message:   "hello",
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)

	payload := decode(t, resp)
	require.Equal(t, "VALIDATION_ERROR", payload.Error.Code)
	require.Equal(t, "email", payload.Error.Details["email"])
	require.Equal(t, 0, notifier.calls)
	require.EqualValues(t, 0, countRequests(t, db))
}

func TestSubmitConsultationUnknownModalType(t *testing.T) {
	router, _ := setupRouter(t, &stubNotifier{})

	resp := postConsultation(router, SubmitConsultationRequest{
		ModalType: "walk_in",
		Email:     "dana@co.com",
	})
	require.Equal(t, http.StatusBadRequest, resp.Code)
	require.Equal(t, "UNKNOWN_MODAL_TYPE", decode(t, resp).Error.Code)
}

func TestSubmitConsultationNotifyFailureKeepsRecord(t *testing.T) {
	notifier := &stubNotifier{err: errors.New("relay down")}
	router, db := setupRouter(t, notifier)

	resp := postConsultation(router, SubmitConsultationRequest{
		ModalType: "newsletter",
		Source:    "footer",
		Email:     "a@b.com",
	})
	require.Equal(t, http.StatusBadGateway, resp.Code)

	payload := decode(t, resp)
	require.Equal(t, "NOTIFICATION_ERROR", payload.Error.Code)
	require.EqualValues(t, 1, countRequests(t, db))

	var notified bool
	require.NoError(t, db.Table("consultation_requests").
		Select("notified").Scan(&notified).Error)
	require.False(t, notified)
}

func TestSubmitConsultationTokenReplay(t *testing.T) {
	notifier := &stubNotifier{}
	router, db := setupRouter(t, notifier)

	body := SubmitConsultationRequest{
		ModalType:       "quick_contact",
		Source:          "hero",
		SubmissionToken: "tok-replay",
		Name:            "Dana",
		Email:           "dana@co.com",
		Message:         "hello",
	}

	resp := postConsultation(router, body)
	require.Equal(t, http.StatusCreated, resp.Code)

	// the retry lands on the unique token index, not a second record
	resp = postConsultation(router, body)
	require.Equal(t, http.StatusOK, resp.Code)
	require.Equal(t, "ALREADY_SUBMITTED", decode(t, resp).Info.Code)
	require.EqualValues(t, 1, countRequests(t, db))
	require.Equal(t, 1, notifier.calls)
}

func TestSubmitConsultationMissingTokenIsNotDeduped(t *testing.T) {
	router, db := setupRouter(t, &stubNotifier{})

	body := SubmitConsultationRequest{
		ModalType: "quick_contact",
		Source:    "hero",
		Name:      "Dana",
		Email:     "dana@co.com",
		Message:   "hello",
	}

	require.Equal(t, http.StatusCreated, postConsultation(router, body).Code)
	require.Equal(t, http.StatusCreated, postConsultation(router, body).Code)
	require.EqualValues(t, 2, countRequests(t, db))
}

func TestSubmitConsultationInvalidJSON(t *testing.T) {
	router, _ := setupRouter(t, &stubNotifier{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/consultations",
		bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusBadRequest, resp.Code)
	require.Equal(t, "INVALID_JSON", decode(t, resp).Error.Code)
}
