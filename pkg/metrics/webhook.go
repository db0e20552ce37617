package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	WebhookOutcomesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "membersync",
			Subsystem: "webhook",
			Name:      "outcomes_total",
			Help:      "Webhook invocations by terminal outcome",
		},
		[]string{"outcome"},
	)

	OutboundRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "membersync",
			Subsystem: "outbound",
			Name:      "request_duration_seconds",
			Help:      "Latency of calls to upstream APIs in seconds",
			Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"api", "operation", "status_code"},
	)
)

func init() {
	Registry.MustRegister(WebhookOutcomesTotal, OutboundRequestDuration)
}

// ObserveOutbound records one upstream API call. Clients call it right after
// the response (or transport error) comes back, with "error" as the status
// code when no response was received.
func ObserveOutbound(api, operation, statusCode string, start time.Time) {
	OutboundRequestDuration.WithLabelValues(api, operation, statusCode).Observe(time.Since(start).Seconds())
}
