package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Brendon2203/techsolutions/internal/config"
	"github.com/Brendon2203/techsolutions/internal/database"
	"github.com/Brendon2203/techsolutions/internal/domain"
	"github.com/Brendon2203/techsolutions/internal/services"
)

const anaBody = `{"name":"Ana","email":"ana@x.com","phone":"123","services":["design","seo"],"message":"hi"}`

type recordingNotifier struct {
	subs   []*domain.QuoteSubmission
	result services.NotifyResult
}

func (n *recordingNotifier) Notify(_ context.Context, sub *domain.QuoteSubmission) services.NotifyResult {
	n.subs = append(n.subs, sub)
	return n.result
}

type testApp struct {
	handler  http.Handler
	store    *database.Store
	notifier *recordingNotifier
}

func newTestApp(t *testing.T, siteDir string) *testApp {
	t.Helper()

	store, err := database.New(config.DatabaseConfig{URL: "sqlite:///" + filepath.Join(t.TempDir(), "quotes.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.Initialize(context.Background()))

	cfg := &config.Config{
		App: config.AppConfig{
			Name:                "TechSolutions API",
			SiteDir:             siteDir,
			ExposeStorageErrors: true,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"https://techsolutions.dev"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"*"},
			MaxAge:         600,
		},
	}
	notifier := &recordingNotifier{result: services.NotifyResult{Status: services.NotifySent}}

	return &testApp{
		handler:  newHandler(cfg, store, notifier),
		store:    store,
		notifier: notifier,
	}
}

func (a *testApp) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) rows(t *testing.T) []domain.QuoteRequest {
	t.Helper()
	var rows []domain.QuoteRequest
	require.NoError(t, a.store.DB().Order("id").Find(&rows).Error)
	return rows
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func writeSiteDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "static"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>TechSolutions</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "static", "app.js"), []byte("// app"), 0o644))
	return dir
}

func TestSubmitQuoteRequest(t *testing.T) {
	for _, path := range []string{"/api/quote-request", "/api/orcamento"} {
		t.Run(path, func(t *testing.T) {
			app := newTestApp(t, writeSiteDir(t))

			rec := app.do(http.MethodPost, path, anaBody)

			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Equal(t, map[string]any{"message": "Quote request created successfully!"}, decodeBody(t, rec))

			rows := app.rows(t)
			require.Len(t, rows, 1)
			assert.Equal(t, "Ana", rows[0].Name)
			assert.Equal(t, "ana@x.com", rows[0].Email)
			assert.Equal(t, "123", rows[0].Phone)
			assert.Nil(t, rows[0].Company)
			assert.Equal(t, "design, seo", rows[0].Services)
			assert.Equal(t, "hi", rows[0].Message)
			assert.False(t, rows[0].CreatedAt.IsZero())

			require.Len(t, app.notifier.subs, 1)
			assert.Equal(t, "Ana", app.notifier.subs[0].Name)
		})
	}
}

func TestSubmitQuoteRequest_NotificationFailureStillSucceeds(t *testing.T) {
	app := newTestApp(t, writeSiteDir(t))
	app.notifier.result = services.NotifyResult{Status: services.NotifyFailed, Err: errors.New("smtp down")}

	rec := app.do(http.MethodPost, "/api/quote-request", anaBody)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, app.rows(t), 1)
}

func TestSubmitQuoteRequest_InvalidPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "missing message", body: `{"name":"Ana","email":"ana@x.com","phone":"123","services":["design"]}`, want: "message"},
		{name: "services not a list", body: `{"name":"Ana","email":"ana@x.com","phone":"123","services":"design","message":"hi"}`},
		{name: "empty services", body: `{"name":"Ana","email":"ana@x.com","phone":"123","services":[],"message":"hi"}`, want: "services"},
		{name: "empty name", body: `{"name":"","email":"ana@x.com","phone":"123","services":["design"],"message":"hi"}`, want: "name"},
		{name: "malformed json", body: `{"name":`},
		{name: "empty body"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := newTestApp(t, writeSiteDir(t))

			rec := app.do(http.MethodPost, "/api/quote-request", tc.body)

			require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
			body := decodeBody(t, rec)
			require.Contains(t, body, "error")
			if tc.want != "" {
				assert.Contains(t, body["error"], tc.want)
			}
			assert.Empty(t, app.rows(t))
			assert.Empty(t, app.notifier.subs)
		})
	}
}

func TestSubmitQuoteRequest_StorageFailure(t *testing.T) {
	app := newTestApp(t, writeSiteDir(t))
	require.Equal(t, http.StatusOK, app.do(http.MethodPost, "/api/quote-request", anaBody).Code)

	fault := errors.New("disk I/O error")
	require.NoError(t, app.store.DB().Callback().Create().After("gorm:create").Register("test:fault", func(tx *gorm.DB) {
		_ = tx.AddError(fault)
	}))

	rec := app.do(http.MethodPost, "/api/quote-request", anaBody)

	require.NoError(t, app.store.DB().Callback().Create().Remove("test:fault"))
	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	assert.Equal(t, map[string]any{"error": "disk I/O error"}, decodeBody(t, rec))
	assert.Len(t, app.rows(t), 1)
	assert.Len(t, app.notifier.subs, 1)
}

func TestLandingPage(t *testing.T) {
	app := newTestApp(t, writeSiteDir(t))

	rec := app.do(http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "TechSolutions")
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))

	rec = app.do(http.MethodGet, "/static/app.js", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "// app", rec.Body.String())
}

func TestLandingPage_MissingIndex(t *testing.T) {
	app := newTestApp(t, t.TempDir())

	rec := app.do(http.MethodGet, "/", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, map[string]any{"error": "failed to load page"}, decodeBody(t, rec))
}

func TestHealth(t *testing.T) {
	app := newTestApp(t, writeSiteDir(t))

	rec := app.do(http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{
		"status":   "healthy",
		"service":  "TechSolutions API",
		"database": "ok",
	}, decodeBody(t, rec))

	require.NoError(t, app.store.Close())
	rec = app.do(http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "degraded", decodeBody(t, rec)["status"])
}

func TestMetricsEndpoint(t *testing.T) {
	app := newTestApp(t, writeSiteDir(t))
	require.Equal(t, http.StatusOK, app.do(http.MethodPost, "/api/quote-request", anaBody).Code)

	rec := app.do(http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `quote_requests_total{status="stored"}`)
}

func TestCORS(t *testing.T) {
	app := newTestApp(t, writeSiteDir(t))

	req := httptest.NewRequest(http.MethodOptions, "/api/quote-request", nil)
	req.Header.Set("Origin", "https://techsolutions.dev")
	rec := httptest.NewRecorder()
	app.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://techsolutions.dev", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/api/quote-request", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	app.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
