package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus metrics for the service
type Metrics struct {
	RequestCounter  *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	AutomationsSubmitted prometheus.Counter
	AutomationDecisions  *prometheus.CounterVec
	RedemptionsRequested prometheus.Counter
	RedemptionDecisions  *prometheus.CounterVec
	CreditsAwarded       prometheus.Counter
	CreditsSpent         prometheus.Counter
}

// New creates and registers the service metrics
func New() *Metrics {
	return &Metrics{
		RequestCounter: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "timebank",
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "timebank",
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		AutomationsSubmitted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "timebank",
			Name:      "automations_submitted_total",
			Help:      "Total number of automation submissions",
		}),
		AutomationDecisions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "timebank",
				Name:      "automation_decisions_total",
				Help:      "Automation review decisions by outcome",
			},
			[]string{"decision"},
		),
		RedemptionsRequested: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "timebank",
			Name:      "redemptions_requested_total",
			Help:      "Total number of reward redemption requests",
		}),
		RedemptionDecisions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "timebank",
				Name:      "redemption_decisions_total",
				Help:      "Redemption decisions by outcome",
			},
			[]string{"decision"},
		),
		CreditsAwarded: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "timebank",
			Name:      "credits_awarded_total",
			Help:      "Total credits awarded for approved automations",
		}),
		CreditsSpent: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "timebank",
			Name:      "credits_spent_total",
			Help:      "Total credits spent on redemptions",
		}),
	}
}

// GinMiddleware records request counts and latencies per route
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.RequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
		m.RequestCounter.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
