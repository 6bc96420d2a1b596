package service

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	translationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "translations_total",
			Help: "Total number of translation requests by outcome",
		},
		[]string{"outcome"},
	)

	redactionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redactions_total",
			Help: "Total number of redacted spans by type",
		},
		[]string{"type"},
	)

	metricsOnce sync.Once
)

// ------------------------------------------------------------------------------------------------------
// RegisterMetrics registers the pipeline metrics. Safe to call more than once.
func RegisterMetrics() {
	metricsOnce.Do(func() {
		prometheus.MustRegister(translationsTotal)
		prometheus.MustRegister(redactionsTotal)
	})
}

// ------------------------------------------------------------------------------------------------------
func observeTranslation(outcome string) {
	translationsTotal.WithLabelValues(outcome).Inc()
}

// ------------------------------------------------------------------------------------------------------
func observeRedactions(class string, n int) {
	redactionsTotal.WithLabelValues(class).Add(float64(n))
}
