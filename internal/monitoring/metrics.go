package monitoring

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.05, 0.1, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)
)

var (
	VerificationsCompleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "verifications_completed_total",
			Help: "Clients moved to verified",
		},
	)

	BookingsSubmitted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookings_submitted_total",
			Help: "Booking requests accepted, by initial status",
		},
		[]string{"status"},
	)

	EmailsSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "emails_sent_total",
			Help: "Outbound emails by result",
		},
		[]string{"result"},
	)
)

var once sync.Once

// Init registers the collectors with the default registry. Safe to call
// more than once.
func Init() {
	once.Do(func() {
		prometheus.MustRegister(
			RequestsTotal,
			RequestDuration,
			VerificationsCompleted,
			BookingsSubmitted,
			EmailsSent,
		)
	})
}

func Handler() http.Handler {
	return promhttp.Handler()
}
