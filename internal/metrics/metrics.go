package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// MeterName is the instrumentation scope of every instrument in this package.
const MeterName = "github.com/neexbeast/quietseason"

// Metrics holds the venue pipeline instruments. A nil *Metrics records nothing.
type Metrics struct {
	providerFallbacks metric.Int64Counter
	panelFailures     metric.Int64Counter
	snapshotDuration  metric.Float64Histogram
}

// New creates the instruments on meter.
func New(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}
	var err error

	m.providerFallbacks, err = meter.Int64Counter(
		"provider_fallbacks_total",
		metric.WithDescription("Venue fetches served by synthetic venues, by reason"),
		metric.WithUnit("{fetch}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating provider_fallbacks_total: %w", err)
	}

	m.panelFailures, err = meter.Int64Counter(
		"panel_city_failures_total",
		metric.WithDescription("Panel cities dropped because their snapshot failed"),
		metric.WithUnit("{city}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating panel_city_failures_total: %w", err)
	}

	m.snapshotDuration, err = meter.Float64Histogram(
		"city_snapshot_duration_seconds",
		metric.WithDescription("Time to build one city snapshot"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating city_snapshot_duration_seconds: %w", err)
	}

	return m, nil
}

// ProviderFallback counts a fetch served by synthetic venues.
func (m *Metrics) ProviderFallback(ctx context.Context, reason string) {
	if m == nil {
		return
	}
	m.providerFallbacks.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
}

// PanelCityFailure counts a city dropped from the panel.
func (m *Metrics) PanelCityFailure(ctx context.Context) {
	if m == nil {
		return
	}
	m.panelFailures.Add(ctx, 1)
}

// SnapshotDuration records how long one city snapshot took.
func (m *Metrics) SnapshotDuration(ctx context.Context, d time.Duration) {
	if m == nil {
		return
	}
	m.snapshotDuration.Record(ctx, d.Seconds())
}

// NewPrometheusProvider returns a MeterProvider exported through a dedicated
// Prometheus registry, and the handler that serves that registry.
func NewPrometheusProvider() (*sdkmetric.MeterProvider, http.Handler, error) {
	reg := prometheus.NewRegistry()

	exporter, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, nil, fmt.Errorf("creating prometheus exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
	return mp, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), nil
}
