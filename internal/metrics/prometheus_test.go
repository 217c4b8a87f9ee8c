package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hearthly-api/internal/apperror"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveStage_CountsFailuresByKind(t *testing.T) {
	m := NewMetrics()

	m.ObserveStage("transcribe", time.Now(), nil)
	m.ObserveStage("transcribe", time.Now(), apperror.Upstream("transcription", 500, "x"))
	m.ObserveStage("transcribe", time.Now(), errors.New("plain"))

	if got := testutil.ToFloat64(m.StageFailures.WithLabelValues("transcribe", "upstream_error")); got != 1 {
		t.Fatalf("upstream failures=%v", got)
	}
	if got := testutil.ToFloat64(m.StageFailures.WithLabelValues("transcribe", "internal")); got != 1 {
		t.Fatalf("internal failures=%v", got)
	}
	if got := testutil.CollectAndCount(m.StageDuration); got != 1 {
		t.Fatalf("duration series=%d", got)
	}
}

func TestNilMetrics_NoPanic(t *testing.T) {
	var m *Metrics
	m.ObserveStage("x", time.Now(), errors.New("e"))
	m.ObserveSpeech(time.Second)
	m.ObserveInput(10)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("status=%d", w.Code)
	}
}

func TestMiddlewareAndHandler(t *testing.T) {
	m := NewMetrics()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/health", func(c *gin.Context) { c.String(http.StatusOK, "OK") })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))
	m.ObserveSpeech(2500 * time.Millisecond)

	if got := testutil.ToFloat64(m.HTTPRequests.WithLabelValues("/health", "200")); got != 1 {
		t.Fatalf("health requests=%v", got)
	}
	if got := testutil.ToFloat64(m.HTTPRequests.WithLabelValues("unmatched", "404")); got != 1 {
		t.Fatalf("unmatched requests=%v", got)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, _ := io.ReadAll(w.Body)
	for _, want := range []string{"hearthly_http_requests_total", "hearthly_speech_seconds_count 1", "go_goroutines"} {
		if !strings.Contains(string(body), want) {
			t.Fatalf("exposition missing %q", want)
		}
	}
}
