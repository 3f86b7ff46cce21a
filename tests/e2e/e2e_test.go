package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"aiconsult/internal/config"
	"aiconsult/internal/database"
	"aiconsult/internal/domain"
	"aiconsult/internal/middleware"
	"aiconsult/internal/modules/catalog"
	"aiconsult/internal/modules/lead"
	"aiconsult/internal/modules/mailer"
	"aiconsult/internal/modules/subscriber"
	"aiconsult/internal/repository"
	"aiconsult/internal/storage"
)

type testResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Info    *infoDetail            `json:"info,omitempty"`
	Error   *errorDetail           `json:"error,omitempty"`
}

type infoDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

type testSuite struct {
	router *gin.Engine
	db     *gorm.DB
	notify *httptest.Server
}

// setupSuite wires the full site API against an in-memory database and
// a real HTTP notification function, so a submission exercises the
// whole persist-then-notify pipeline over the wire.
func setupSuite(t *testing.T) *testSuite {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))

	// notification function, email delivery disabled
	mailerHandler := mailer.NewHandler(mailer.NewService(&config.EmailConfig{
		Enabled:    false,
		FromName:   "Acme Automation",
		AdminEmail: "leads@acme.com",
	}))
	notifyRouter := gin.New()
	mailerHandler.RegisterRoutes(notifyRouter)
	notify := httptest.NewServer(notifyRouter)
	t.Cleanup(notify.Close)

	consultationRepo := repository.NewConsultationRepository(db)
	leadHandler := lead.NewHandler(lead.NewService(
		consultationRepo,
		lead.NewHTTPNotifier(notify.URL+"/send-lead-email"),
	))

	catalogHandler := catalog.NewHandler(catalog.NewService(
		repository.NewPromptRepository(db),
		repository.NewToolRepository(db),
		repository.NewBlueprintRepository(db),
		storage.NewPublicBucket("https://files.example.com/storage/v1/object/public", "blueprints"),
	))

	subscriberHandler := subscriber.NewHandler(subscriber.NewService(
		repository.NewSubscriberRepository(db),
	))

	router := gin.New()
	router.Use(middleware.CORS(nil))
	router.Use(middleware.ErrorLogger())

	api := router.Group("/api/v1")
	leadHandler.RegisterRoutes(api)
	catalogHandler.RegisterRoutes(api)
	subscriberHandler.RegisterRoutes(api)

	return &testSuite{router: router, db: db, notify: notify}
}

func (s *testSuite) request(t *testing.T, method, path string, body interface{}) (*httptest.ResponseRecorder, testResponse) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	s.router.ServeHTTP(resp, req)

	var payload testResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return resp, payload
}

func TestNewsletterSignupFlow(t *testing.T) {
	s := setupSuite(t)

	resp, payload := s.request(t, http.MethodPost, "/api/v1/consultations", map[string]interface{}{
		"modal_type": "newsletter",
		"source":     "footer",
		"email":      "a@b.com",
	})
	require.Equal(t, http.StatusCreated, resp.Code)
	require.True(t, payload.Success)

	request := payload.Data["request"].(map[string]interface{})
	assert.NotEmpty(t, request["id"])
	assert.Equal(t, "new", request["status"])

	// the notify call went through, so the flag is set
	var notified bool
	require.NoError(t, s.db.Table("consultation_requests").
		Select("notified").Scan(&notified).Error)
	assert.True(t, notified)
}

func TestDetailedConsultationFlow(t *testing.T) {
	s := setupSuite(t)

	resp, payload := s.request(t, http.MethodPost, "/api/v1/consultations", map[string]interface{}{
		"modal_type":          "detailed_consultation",
		"source":              "services",
		"name":                "Dana",
		"email":               "dana@co.com",
		"company":             "Co",
		"project_description": "automate invoicing",
		"budget_range":        "5k-10k",
	})
	require.Equal(t, http.StatusCreated, resp.Code)
	require.True(t, payload.Success)

	var serviceType, budget string
	row := s.db.Table("consultation_requests").
		Select("service_type", "budget_range").Row()
	require.NoError(t, row.Scan(&serviceType, &budget))
	assert.Equal(t, "detailed_consultation", serviceType)
	assert.Equal(t, "5k-10k", budget)
}

func TestConsultationValidationOverTheWire(t *testing.T) {
	s := setupSuite(t)

	resp, payload := s.request(t, http.MethodPost, "/api/v1/consultations", map[string]interface{}{
		"modal_type": "detailed_consultation",
		"name":       "Dana",
		"email":      "dana@co.com",
		// project_description missing
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	require.NotNil(t, payload.Error)
	assert.Equal(t, "VALIDATION_ERROR", payload.Error.Code)

	details := payload.Error.Details.(map[string]interface{})
	assert.Equal(t, "required", details["project_description"])
}

func TestSubmissionTokenReplay(t *testing.T) {
	s := setupSuite(t)

	body := map[string]interface{}{
		"modal_type":       "quick_contact",
		"source":           "hero",
		"submission_token": "tok-e2e",
		"name":             "Dana",
		"email":            "dana@co.com",
		"message":          "hello",
	}

	resp, _ := s.request(t, http.MethodPost, "/api/v1/consultations", body)
	require.Equal(t, http.StatusCreated, resp.Code)

	resp, payload := s.request(t, http.MethodPost, "/api/v1/consultations", body)
	require.Equal(t, http.StatusOK, resp.Code)
	require.NotNil(t, payload.Info)
	assert.Equal(t, "ALREADY_SUBMITTED", payload.Info.Code)

	var n int64
	require.NoError(t, s.db.Table("consultation_requests").Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestNotifyOutageSurfacesButPersists(t *testing.T) {
	s := setupSuite(t)
	s.notify.Close() // notification function down

	resp, payload := s.request(t, http.MethodPost, "/api/v1/consultations", map[string]interface{}{
		"modal_type": "quick_contact",
		"source":     "hero",
		"name":       "Dana",
		"email":      "dana@co.com",
		"message":    "hello",
	})
	require.Equal(t, http.StatusBadGateway, resp.Code)
	require.NotNil(t, payload.Error)
	assert.Equal(t, "NOTIFICATION_ERROR", payload.Error.Code)

	// the record outlives the failed notify
	var n int64
	require.NoError(t, s.db.Table("consultation_requests").Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestBlueprintDownloadFlow(t *testing.T) {
	s := setupSuite(t)

	b := &domain.Blueprint{
		Title:        "Automatic Email from Transcript",
		Description:  "Turn call transcripts into follow-up emails.",
		JSONFilePath: "email-from-transcript.json",
	}
	require.NoError(t, repository.NewBlueprintRepository(s.db).Create(context.Background(), b))

	resp, payload := s.request(t, http.MethodPost, "/api/v1/blueprints/"+b.ID+"/download", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t,
		"https://files.example.com/storage/v1/object/public/blueprints/email-from-transcript.json",
		payload.Data["url"])
}

func TestSubscriberDuplicateFlow(t *testing.T) {
	s := setupSuite(t)

	resp, _ := s.request(t, http.MethodPost, "/api/v1/subscribers", map[string]interface{}{
		"email":  "reader@example.com",
		"source": "blueprints",
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	resp, payload := s.request(t, http.MethodPost, "/api/v1/subscribers", map[string]interface{}{
		"email": "reader@example.com",
	})
	require.Equal(t, http.StatusOK, resp.Code)
	require.NotNil(t, payload.Info)
	assert.Equal(t, "ALREADY_SUBSCRIBED", payload.Info.Code)
}
