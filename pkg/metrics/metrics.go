// Package metrics holds shared metric configuration and the OpenTelemetry
// meter provider wiring used across the application.
package metrics

import (
	"fmt"

	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// DefaultBuckets is a common set of latency histogram buckets in seconds,
// reused wherever durations are recorded.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// NewMeterProvider builds a meter provider that exports all recorded metrics
// through the default Prometheus registry, so they show up on the same
// scrape endpoint as the process metrics.
func NewMeterProvider() (*sdkmetric.MeterProvider, error) {
	exporter, err := otelprom.New()
	if err != nil {
		return nil, fmt.Errorf("could not create prometheus exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter)), nil
}
