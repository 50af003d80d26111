package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketscore/internal/config"
	"marketscore/internal/monitoring"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.New()
	cfg.RateLimitPerMin = 0 // no throttling in tests
	return New(cfg, monitoring.NewMetrics())
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode(t, w)["status"])
}

// Every scoring endpoint must return is_verified=true and a non-empty
// algorithm string, including on degenerate input. This is the invariant that
// separates the engine from model-based scoring.
func TestAllScoringEndpointsAreVerified(t *testing.T) {
	r := newTestRouter(t)

	calls := []struct {
		name string
		path string
		body any
	}{
		{
			name: "engagement",
			path: "/v1/engagement/score",
			body: map[string]any{"impressions": 1000, "clicks": 40},
		},
		{
			name: "engagement all zero",
			path: "/v1/engagement/score",
			body: map[string]any{},
		},
		{
			name: "brand voice",
			path: "/v1/brand-voice/analyze",
			body: map[string]any{"content": "Short and clear. Always on message."},
		},
		{
			name: "brand voice empty content",
			path: "/v1/brand-voice/analyze",
			body: map[string]any{"content": ""},
		},
		{
			name: "ai likelihood",
			path: "/v1/ai-likelihood/score",
			body: map[string]any{"content": "One sentence here. Another follows it. A third closes."},
		},
		{
			name: "trend score",
			path: "/v1/trends/score",
			body: map[string]any{
				"topic":   "edge computing",
				"sources": map[string]any{"google_trends": map[string]any{"current_interest": 100, "avg_interest": 50}},
			},
		},
		{
			name: "trend score empty bundle",
			path: "/v1/trends/score",
			body: map[string]any{"topic": "nothing", "sources": map[string]any{}},
		},
		{
			name: "momentum",
			path: "/v1/trends/momentum",
			body: map[string]any{"current_score": 60, "previous_score": 50, "days": 30},
		},
		{
			name: "momentum zero previous",
			path: "/v1/trends/momentum",
			body: map[string]any{"current_score": 60, "previous_score": 0, "days": 30},
		},
		{
			name: "seo",
			path: "/v1/seo/score",
			body: map[string]any{"content": "<h1>Hello</h1><p>Body text for the page.</p>"},
		},
		{
			name: "ab test",
			path: "/v1/ab-tests/analyze",
			body: map[string]any{"control_conversions": 150, "control_visitors": 5000, "variant_conversions": 195, "variant_visitors": 5000},
		},
		{
			name: "ab test all zero",
			path: "/v1/ab-tests/analyze",
			body: map[string]any{},
		},
		{
			name: "attribution",
			path: "/v1/attribution/linear",
			body: map[string]any{
				"touchpoints":      []map[string]any{{"channel": "search", "timestamp": "2026-03-01T12:00:00Z"}},
				"conversion_value": 1000,
			},
		},
		{
			name: "routing",
			path: "/v1/routing/info",
			body: map[string]any{"task_type": "content creation", "context": "healthcare provider"},
		},
	}

	for _, call := range calls {
		t.Run(call.name, func(t *testing.T) {
			w := postJSON(t, r, call.path, call.body)

			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			res := decode(t, w)
			assert.Equal(t, true, res["is_verified"])
			assert.NotEmpty(t, res["algorithm"])
		})
	}
}

func TestEngagementEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := postJSON(t, r, "/v1/engagement/score", map[string]any{
		"impressions": 10000, "clicks": 500, "shares": 200, "comments": 100, "conversions": 200,
	})

	res := decode(t, w)
	assert.Equal(t, 100.0, res["score"])
	assert.Equal(t, "A", res["grade"])
}

func TestTrendEndpointSingleSource(t *testing.T) {
	r := newTestRouter(t)

	w := postJSON(t, r, "/v1/trends/score", map[string]any{
		"topic": "X",
		"sources": map[string]any{
			"google_trends": map[string]any{"current_interest": 100, "avg_interest": 50},
		},
	})

	res := decode(t, w)
	assert.Equal(t, 100.0, res["trend_score"])
	assert.Equal(t, "low", res["confidence"])
}

func TestAttributionEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := postJSON(t, r, "/v1/attribution/first_touch", map[string]any{
		"touchpoints": []map[string]any{
			{"channel": "search", "timestamp": "2026-03-01T12:00:00Z"},
			{"channel": "email", "timestamp": "2026-03-05T12:00:00Z"},
		},
		"conversion_value": 1000,
	})

	res := decode(t, w)
	attribution, ok := res["attribution"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 1000.0, attribution["search"])
}

func TestAttributionUnknownModel(t *testing.T) {
	r := newTestRouter(t)

	w := postJSON(t, r, "/v1/attribution/psychic", map[string]any{
		"touchpoints":      []map[string]any{{"channel": "search", "timestamp": "2026-03-01T12:00:00Z"}},
		"conversion_value": 100,
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMalformedJSONIsBadRequest(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/engagement/score", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRoutingEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := postJSON(t, r, "/v1/routing/info", map[string]any{
		"task_type": "Content Creation",
		"context":   "clinical software for hospital networks",
	})

	res := decode(t, w)
	assert.Equal(t, "regulated", res["industry"])
	assert.Equal(t, "static lookup, no inference", res["algorithm"])
}
