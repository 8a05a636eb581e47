package instrumentation

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric names
const (
	MetricAuthorizationStarted = "emma.authorization.started"
	MetricCodeExchanged        = "emma.code.exchanged"
	MetricProviderDuration     = "emma.provider.duration"
	MetricRateLimitExceeded    = "emma.rate_limit.exceeded"
	MetricHTTPRequestsTotal    = "emma.http.requests.total"
)

// Attribute keys
const (
	AttrOutcome    = "outcome"
	AttrStatusCode = "http.status_code"
	AttrEndpoint   = "http.endpoint"
	AttrMethod     = "http.method"
)

// Metrics holds the metric instruments of the service
type Metrics struct {
	AuthorizationStarted metric.Int64Counter
	CodeExchanged        metric.Int64Counter
	ProviderDuration     metric.Float64Histogram
	RateLimitExceeded    metric.Int64Counter
	HTTPRequestsTotal    metric.Int64Counter
}

func newMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}
	var err error

	m.AuthorizationStarted, err = meter.Int64Counter(
		MetricAuthorizationStarted,
		metric.WithDescription("Number of authorization redirects issued"),
		metric.WithUnit("{flow}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s counter: %w", MetricAuthorizationStarted, err)
	}

	m.CodeExchanged, err = meter.Int64Counter(
		MetricCodeExchanged,
		metric.WithDescription("Number of callbacks handled, by outcome"),
		metric.WithUnit("{exchange}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s counter: %w", MetricCodeExchanged, err)
	}

	m.ProviderDuration, err = meter.Float64Histogram(
		MetricProviderDuration,
		metric.WithDescription("Token endpoint call duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s histogram: %w", MetricProviderDuration, err)
	}

	m.RateLimitExceeded, err = meter.Int64Counter(
		MetricRateLimitExceeded,
		metric.WithDescription("Number of requests rejected by the rate limiter"),
		metric.WithUnit("{violation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s counter: %w", MetricRateLimitExceeded, err)
	}

	m.HTTPRequestsTotal, err = meter.Int64Counter(
		MetricHTTPRequestsTotal,
		metric.WithDescription("Total number of HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s counter: %w", MetricHTTPRequestsTotal, err)
	}

	return m, nil
}

// RecordAuthorizationStarted counts an authorization redirect (nil-safe)
func (m *Metrics) RecordAuthorizationStarted(ctx context.Context) {
	if m == nil {
		return
	}
	m.AuthorizationStarted.Add(ctx, 1)
}

// RecordCodeExchanged counts a handled callback and, when the provider was
// called, its duration (nil-safe)
func (m *Metrics) RecordCodeExchanged(ctx context.Context, outcome string, providerCalled bool, durationMs float64) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String(AttrOutcome, outcome))
	m.CodeExchanged.Add(ctx, 1, attrs)
	if providerCalled {
		m.ProviderDuration.Record(ctx, durationMs, attrs)
	}
}

// RecordRateLimitExceeded counts a rejected request (nil-safe)
func (m *Metrics) RecordRateLimitExceeded(ctx context.Context) {
	if m == nil {
		return
	}
	m.RateLimitExceeded.Add(ctx, 1)
}

// RecordHTTPRequest counts a served HTTP request (nil-safe)
func (m *Metrics) RecordHTTPRequest(ctx context.Context, method, endpoint string, statusCode int) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrMethod, method),
		attribute.String(AttrEndpoint, endpoint),
		attribute.Int(AttrStatusCode, statusCode),
	))
}
