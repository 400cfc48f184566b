package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "doglive"

const (
	ReservationReserved    = "reserved"
	ReservationUnavailable = "unavailable"

	RolloverCreated = "created"
	RolloverNoop    = "noop"
	RolloverFailed  = "failed"

	UpdateMessage  = "message"
	UpdateCallback = "callback"
)

// Metrics is nil-safe: every method on a nil *Metrics is a no-op.
type Metrics struct {
	ReservationsTotal     *prometheus.CounterVec
	RolloversTotal        *prometheus.CounterVec
	UpdatesProcessed      *prometheus.CounterVec
	UpdateProcessingTime  prometheus.Histogram
	NavigationErrorsTotal prometheus.Counter
	ErrorsTotal           prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		ReservationsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reservations_total",
			Help:      "Slot reservation attempts by result",
		}, []string{"result"}),

		RolloversTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "schedule_rollovers_total",
			Help:      "Weekly schedule rollover runs by result",
		}, []string{"result"}),

		UpdatesProcessed: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "telegram_updates_processed_total",
			Help:      "Telegram updates processed by kind",
		}, []string{"kind"}),

		UpdateProcessingTime: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "telegram_update_processing_seconds",
			Help:      "Time spent processing a single update",
			Buckets:   prometheus.DefBuckets,
		}),

		NavigationErrorsTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "navigation_errors_total",
			Help:      "Back navigation requests without a recorded command",
		}),

		ErrorsTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "Total number of handler errors",
		}),
	}
}

func (m *Metrics) ObserveReservation(result string) {
	if m == nil {
		return
	}
	m.ReservationsTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveRollover(result string) {
	if m == nil {
		return
	}
	m.RolloversTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveUpdate(kind string, started time.Time) {
	if m == nil {
		return
	}
	m.UpdatesProcessed.WithLabelValues(kind).Inc()
	m.UpdateProcessingTime.Observe(time.Since(started).Seconds())
}

func (m *Metrics) IncNavigationError() {
	if m == nil {
		return
	}
	m.NavigationErrorsTotal.Inc()
}

func (m *Metrics) IncError() {
	if m == nil {
		return
	}
	m.ErrorsTotal.Inc()
}
