package metrics

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMiddlewareRecordsStatus(t *testing.T) {
	h := PrometheusMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":"name is required"}`))
	}))

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("POST", "/api/quote-request", "422"))

	req := httptest.NewRequest(http.MethodPost, "/api/quote-request", strings.NewReader(`{}`))
	h.ServeHTTP(httptest.NewRecorder(), req)

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("POST", "/api/quote-request", "422"))
	assert.Equal(t, before+1, after)
}

func TestPrometheusMiddlewareSkipsMetricsPath(t *testing.T) {
	called := false
	h := PrometheusMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/metrics", "200"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.True(t, called)
	assert.Equal(t, before, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/metrics", "200")))
}

func TestEndpointLabel(t *testing.T) {
	tests := map[string]string{
		"/static/css/site.css": "/static/*",
		"/":                    "/",
		"/health":              "/health",
		"/api/quote-request":   "/api/quote-request",
		"/api/orcamento":       "/api/orcamento",
		"/wp-admin/setup.php":  "other",
		"/api/quote-request/1": "other",
	}
	for path, want := range tests {
		assert.Equal(t, want, endpointLabel(path), path)
	}
}

func TestPrometheusMiddlewareBoundsUnknownPaths(t *testing.T) {
	h := PrometheusMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	// warm up so the "other" series exists before counting
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/wp-admin/0.php", nil))
	before := testutil.CollectAndCount(httpRequestsTotal)

	for i := 1; i <= 200; i++ {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, fmt.Sprintf("/wp-admin/%d.php", i), nil))
	}

	assert.Equal(t, before, testutil.CollectAndCount(httpRequestsTotal))
	assert.Equal(t, before, testutil.CollectAndCount(httpRequestDuration))
}

func TestBusinessCounters(t *testing.T) {
	stored := testutil.ToFloat64(quoteRequestsTotal.WithLabelValues("stored"))
	RecordQuoteRequest("stored")
	assert.Equal(t, stored+1, testutil.ToFloat64(quoteRequestsTotal.WithLabelValues("stored")))

	skipped := testutil.ToFloat64(quoteNotificationsTotal.WithLabelValues("skipped"))
	RecordNotification("skipped")
	assert.Equal(t, skipped+1, testutil.ToFloat64(quoteNotificationsTotal.WithLabelValues("skipped")))

	failed := testutil.ToFloat64(dbQueriesTotal.WithLabelValues("insert_quote_request", "error"))
	RecordDBQuery("insert_quote_request", time.Millisecond, errors.New("locked"))
	assert.Equal(t, failed+1, testutil.ToFloat64(dbQueriesTotal.WithLabelValues("insert_quote_request", "error")))

	UpdateDBConnections(3, 2)
	assert.Equal(t, float64(3), testutil.ToFloat64(dbConnectionsActive))
	assert.Equal(t, float64(2), testutil.ToFloat64(dbConnectionsIdle))
}
