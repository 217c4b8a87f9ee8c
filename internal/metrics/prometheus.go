package metrics

import (
	"net/http"
	"strconv"
	"time"

	"hearthly-api/internal/apperror"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics contains all Prometheus metrics for the pipeline service.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP API metrics
	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Pipeline stage metrics
	StageDuration *prometheus.HistogramVec
	StageFailures *prometheus.CounterVec

	// Audio metrics
	SpeechSeconds prometheus.Histogram
	InputBytes    prometheus.Histogram
}

// NewMetrics creates all metrics on a private registry, together with the
// Go runtime and process collectors.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,

		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "hearthly_http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		}, []string{"route", "status"}),
		HTTPRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hearthly_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12), // 10ms to ~20s
		}, []string{"route"}),

		StageDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hearthly_stage_duration_seconds",
			Help:    "Time spent in each pipeline stage",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms to ~10s
		}, []string{"stage"}),
		StageFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "hearthly_stage_failures_total",
			Help: "Pipeline stage failures by failure kind",
		}, []string{"stage", "kind"}),

		SpeechSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "hearthly_speech_seconds",
			Help:    "Play time of synthesized replies",
			Buckets: prometheus.LinearBuckets(1, 3, 10), // 1s to 28s
		}),
		InputBytes: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "hearthly_voice_input_bytes",
			Help:    "Size of decoded voice uploads",
			Buckets: prometheus.ExponentialBuckets(4096, 2, 12), // 4KB to ~8MB
		}),
	}
}

// ObserveStage records one stage run. err decides whether a failure is
// counted.
func (m *Metrics) ObserveStage(stage string, start time.Time, err error) {
	if m == nil {
		return
	}
	m.StageDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
	if err != nil {
		kind := string(apperror.KindOf(err))
		if kind == "" {
			kind = "internal"
		}
		m.StageFailures.WithLabelValues(stage, kind).Inc()
	}
}

func (m *Metrics) ObserveSpeech(d time.Duration) {
	if m == nil {
		return
	}
	m.SpeechSeconds.Observe(d.Seconds())
}

func (m *Metrics) ObserveInput(n int) {
	if m == nil {
		return
	}
	m.InputBytes.Observe(float64(n))
}

// Middleware counts requests by matched route.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.HTTPRequests.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPRequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
