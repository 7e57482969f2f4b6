package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"study-helper/internal/config"
	"study-helper/internal/domain"
	"study-helper/internal/handler"
	"study-helper/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLookup struct {
	info domain.TopicInfo
	err  error
}

func (s stubLookup) Fetch(ctx context.Context, topic string) (domain.TopicInfo, error) {
	return s.info, s.err
}

func newTestApp(t *testing.T, lookup domain.TopicLookup, origins ...string) *fiber.App {
	t.Helper()
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	cfg := &config.Config{
		Env:    "test",
		Server: config.ServerConfig{Port: 5000},
		CORS:   config.CORSConfig{AllowedOrigins: origins},
	}
	svc := service.NewStudyService(lookup, service.NewContentGenerator(nil, 0))
	return New(cfg, handler.NewStudyHandler(svc), handler.NewHealthHandler(cfg.Env))
}

func TestServer_Timeouts(t *testing.T) {
	cfg := &config.Config{
		Env: "test",
		Server: config.ServerConfig{
			Port:         5000,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 20 * time.Second,
			IdleTimeout:  90 * time.Second,
		},
		CORS: config.CORSConfig{AllowedOrigins: []string{"*"}},
	}
	svc := service.NewStudyService(stubLookup{}, service.NewContentGenerator(nil, 0))
	app := New(cfg, handler.NewStudyHandler(svc), handler.NewHealthHandler(cfg.Env))

	assert.Equal(t, 10*time.Second, app.Config().ReadTimeout)
	assert.Equal(t, 20*time.Second, app.Config().WriteTimeout)
	assert.Equal(t, 90*time.Second, app.Config().IdleTimeout)
}

func TestServer_StudyMockOnly(t *testing.T) {
	app := newTestApp(t, stubLookup{info: domain.TopicInfo{
		Title:   "Photosynthesis",
		Extract: "Plants turn light into sugar.",
		URL:     "https://en.wikipedia.org/wiki/Photosynthesis",
	}})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/study?topic=photosynthesis", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "mock", resp.Header.Get(handler.HeaderContentSource))
	_, err = ulid.Parse(resp.Header.Get(fiber.HeaderXRequestID))
	assert.NoError(t, err)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Topic   string           `json:"topic"`
			Summary []string         `json:"summary"`
			Quiz    []map[string]any `json:"quiz"`
			Mode    string           `json:"mode"`
			Source  *string          `json:"source"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, "Photosynthesis", body.Data.Topic)
	assert.Equal(t, "regular", body.Data.Mode)
	assert.Len(t, body.Data.Summary, 3)
	require.Len(t, body.Data.Quiz, 3)
	for _, q := range body.Data.Quiz {
		assert.Len(t, q["options"], 4)
	}
	require.NotNil(t, body.Data.Source)
}

func TestServer_LookupFailureStillSucceeds(t *testing.T) {
	app := newTestApp(t, stubLookup{err: domain.NewTopicNotFoundError("xyzzy123")})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/study?topic=xyzzy123&mode=math", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	data := body["data"].(map[string]any)
	assert.Equal(t, "xyzzy123", data["topic"])
	assert.Equal(t, "math", data["mode"])
	assert.Len(t, data["quiz"], 1)
	assert.Nil(t, data["source"])
}

func TestServer_Errors(t *testing.T) {
	app := newTestApp(t, stubLookup{})

	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
		wantError  string
	}{
		{"missing topic", http.MethodGet, "/study", fiber.StatusBadRequest, "Topic parameter is required"},
		{"blank topic", http.MethodGet, "/study?topic=%20%20", fiber.StatusBadRequest, "Topic parameter is required"},
		{"unknown route", http.MethodGet, "/api/quiz", fiber.StatusNotFound, "Endpoint not found"},
		{"wrong method", http.MethodPost, "/study", fiber.StatusNotFound, "Endpoint not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(tt.method, tt.target, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var body map[string]any
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, map[string]any{"success": false, "error": tt.wantError}, body)
		})
	}
}

func TestServer_Health(t *testing.T) {
	app := newTestApp(t, stubLookup{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "test", body["environment"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestServer_CORS(t *testing.T) {
	t.Run("wildcard", func(t *testing.T) {
		app := newTestApp(t, stubLookup{})
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set(fiber.HeaderOrigin, "http://localhost:5173")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, "*", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
	})

	t.Run("allow list", func(t *testing.T) {
		app := newTestApp(t, stubLookup{}, "http://localhost:5173", "https://study.example.com")

		allowed := httptest.NewRequest(http.MethodGet, "/health", nil)
		allowed.Header.Set(fiber.HeaderOrigin, "https://study.example.com")
		resp, err := app.Test(allowed)
		require.NoError(t, err)
		assert.Equal(t, "https://study.example.com", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
		assert.Equal(t, "true", resp.Header.Get(fiber.HeaderAccessControlAllowCredentials))

		denied := httptest.NewRequest(http.MethodGet, "/health", nil)
		denied.Header.Set(fiber.HeaderOrigin, "https://evil.example.com")
		resp, err = app.Test(denied)
		require.NoError(t, err)
		assert.Empty(t, resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
	})
}
