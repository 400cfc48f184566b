//go:build unit

package metrics_test

import (
	"testing"
	"time"

	"doglivebot/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	t.Run("counters are labelled by result", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		m := metrics.New(reg)

		m.ObserveReservation(metrics.ReservationReserved)
		m.ObserveReservation(metrics.ReservationUnavailable)
		m.ObserveReservation(metrics.ReservationUnavailable)
		m.ObserveRollover(metrics.RolloverCreated)
		m.ObserveUpdate(metrics.UpdateCallback, time.Now())
		m.IncNavigationError()

		assert.InDelta(t, 1, testutil.ToFloat64(m.ReservationsTotal.WithLabelValues(metrics.ReservationReserved)), 0)
		assert.InDelta(t, 2, testutil.ToFloat64(m.ReservationsTotal.WithLabelValues(metrics.ReservationUnavailable)), 0)
		assert.InDelta(t, 1, testutil.ToFloat64(m.RolloversTotal.WithLabelValues(metrics.RolloverCreated)), 0)
		assert.InDelta(t, 1, testutil.ToFloat64(m.UpdatesProcessed.WithLabelValues(metrics.UpdateCallback)), 0)
		assert.InDelta(t, 1, testutil.ToFloat64(m.NavigationErrorsTotal), 0)
	})

	t.Run("separate registries do not collide", func(t *testing.T) {
		require.NotPanics(t, func() {
			metrics.New(prometheus.NewRegistry())
			metrics.New(prometheus.NewRegistry())
		})
	})

	t.Run("nil metrics is a no-op", func(t *testing.T) {
		var m *metrics.Metrics
		require.NotPanics(t, func() {
			m.ObserveReservation(metrics.ReservationReserved)
			m.ObserveRollover(metrics.RolloverFailed)
			m.ObserveUpdate(metrics.UpdateMessage, time.Now())
			m.IncNavigationError()
			m.IncError()
		})
	})
}
