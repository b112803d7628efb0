// Package metrics описывает Prometheus-метрики ассистента.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "assistant"

// Значения метки result.
const (
	ResultOK      = "ok"
	ResultEmpty   = "empty"
	ResultError   = "error"
	ResultInvalid = "invalid"
)

// Metrics хранит все счётчики и гистограммы сервиса.
type Metrics struct {
	HTTPRequests       *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec
	TicketDraws        *prometheus.CounterVec
	RemindersPublished *prometheus.CounterVec
	RemindersSent      *prometheus.CounterVec
}

// New регистрирует метрики в reg. Если reg равен nil, используется prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &Metrics{
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Number of HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		TicketDraws: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticket_draws_total",
			Help:      "Number of ticket draws by result.",
		}, []string{"result"}),
		RemindersPublished: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "birthday_reminders_published_total",
			Help:      "Number of birthday reminders published to the broker.",
		}, []string{"result"}),
		RemindersSent: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "birthday_reminders_sent_total",
			Help:      "Number of birthday reminder emails sent.",
		}, []string{"result"}),
	}
}
