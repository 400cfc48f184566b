//go:build unit || e2e

package testutil

import (
	"io"
	"log/slog"

	"doglivebot/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewMetrics registers on a private registry so tests never collide on metric names.
func NewMetrics() *metrics.Metrics {
	return metrics.New(prometheus.NewRegistry())
}
