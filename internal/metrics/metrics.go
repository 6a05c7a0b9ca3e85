// Package metrics exposes Prometheus collectors for the combo pricing service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, route and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, route and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// ComboQuotesTotal counts priced combos by discount type and outcome.
	ComboQuotesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "combo_quotes_total",
			Help: "Total number of combo price quotes",
		},
		[]string{"discount_type", "status"},
	)

	// ComboQuoteDuration tracks quote latency, catalog lookups included.
	ComboQuoteDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "combo_quote_duration_seconds",
			Help:    "Combo quote duration in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
	)

	// DiscountAdjustmentsTotal counts discount setter calls and whether input was clamped.
	DiscountAdjustmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "combo_discount_adjustments_total",
			Help: "Total number of discount kind/value adjustments",
		},
		[]string{"operation", "discount_type", "clamped"},
	)

	// PriceChecksTotal counts price checks by result (changed, unchanged, error).
	PriceChecksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "combo_price_checks_total",
			Help: "Total number of stored combo price checks",
		},
		[]string{"result"},
	)

	// CacheOperationsTotal tracks menu cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "menu_cache_operations_total",
			Help: "Total number of menu cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "menu_cache_size",
			Help: "Current number of cached menu items",
		},
	)

	// CacheCapacity tracks cache capacity.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "menu_cache_capacity",
			Help: "Menu cache capacity",
		},
	)

	// CircuitBreakerState is 0 closed, 1 half-open, 2 open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 half-open, 2 open)",
		},
		[]string{"name"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		// route template keeps label cardinality bounded
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(time.Since(start).Seconds())
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordQuote records metrics for a combo quote.
func RecordQuote(duration time.Duration, discountType, status string) {
	ComboQuoteDuration.Observe(duration.Seconds())
	ComboQuotesTotal.WithLabelValues(discountType, status).Inc()
}

// RecordDiscountAdjustment records a discount kind or value change.
func RecordDiscountAdjustment(operation, discountType string, clamped bool) {
	DiscountAdjustmentsTotal.WithLabelValues(operation, discountType, strconv.FormatBool(clamped)).Inc()
}

// RecordPriceCheck records the outcome of a price check.
func RecordPriceCheck(result string) {
	PriceChecksTotal.WithLabelValues(result).Inc()
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(size, capacity int) {
	CacheSize.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
}

// SetCircuitBreakerState publishes the numeric state of the named breaker.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
