package api

import (
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"thread-translator/internal/service"
)

// SetupRouter configures HTTP routes
func SetupRouter(handler *Handler, logger *zap.Logger) *mux.Router {
	router := mux.NewRouter()

	// Apply logging middleware
	router.Use(func(next http.Handler) http.Handler {
		return LoggingMiddleware(logger, next)
	})

	// Health check
	router.HandleFunc("/health", handler.HealthHandler).Methods("GET")

	// Translation pipeline
	router.HandleFunc("/translate", handler.TranslateHandler).Methods("POST")

	// Cache introspection
	router.HandleFunc("/cache/stats", handler.CacheStatsHandler).Methods("GET")

	// Metrics endpoint
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	registerMetrics()
	service.RegisterMetrics()

	return router
}

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	registerOnce sync.Once
)

func registerMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(httpRequestsTotal)
		prometheus.MustRegister(httpRequestDuration)
	})
}
