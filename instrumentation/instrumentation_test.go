package instrumentation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newTestInstrumentation(t *testing.T) (*Instrumentation, *sdkmetric.ManualReader, *tracetest.SpanRecorder) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	recorder := tracetest.NewSpanRecorder()

	inst, err := New(Config{
		Enabled:       true,
		MetricReader:  reader,
		SpanProcessor: recorder,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = inst.Shutdown(context.Background()) })

	return inst, reader, recorder
}

// sumByAttr collects an int64 counter and returns its value per attribute value.
func sumByAttr(t *testing.T, reader *sdkmetric.ManualReader, name, key string) map[string]int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := make(map[string]int64)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, "metric %s is not an int64 sum", name)
			for _, dp := range sum.DataPoints {
				k := ""
				if v, ok := dp.Attributes.Value(attribute.Key(key)); ok {
					k = v.Emit()
				}
				out[k] += dp.Value
			}
		}
	}
	return out
}

func TestNew_Defaults(t *testing.T) {
	inst, err := New(Config{})
	require.NoError(t, err)
	assert.Equal(t, DefaultServiceName, inst.config.ServiceName)
	assert.Equal(t, DefaultServiceVersion, inst.config.ServiceVersion)
	assert.NotNil(t, inst.Metrics())

	// No-op providers accept recordings without a reader
	assert.NotPanics(t, func() {
		inst.Metrics().RecordAuthorizationStarted(context.Background())
		inst.Metrics().RecordCodeExchanged(context.Background(), "succeeded", true, 12)
	})
	assert.NoError(t, inst.Shutdown(context.Background()))
}

func TestMetrics_RecordCodeExchanged(t *testing.T) {
	inst, reader, _ := newTestInstrumentation(t)
	ctx := context.Background()
	m := inst.Metrics()

	m.RecordCodeExchanged(ctx, "succeeded", true, 10)
	m.RecordCodeExchanged(ctx, "succeeded", true, 20)
	m.RecordCodeExchanged(ctx, "timed_out", true, 50)
	m.RecordCodeExchanged(ctx, "state_mismatch", false, 0)

	assert.Equal(t, map[string]int64{
		"succeeded":      2,
		"timed_out":      1,
		"state_mismatch": 1,
	}, sumByAttr(t, reader, MetricCodeExchanged, AttrOutcome))
}

func TestMetrics_Counters(t *testing.T) {
	inst, reader, _ := newTestInstrumentation(t)
	ctx := context.Background()
	m := inst.Metrics()

	m.RecordAuthorizationStarted(ctx)
	m.RecordAuthorizationStarted(ctx)
	m.RecordRateLimitExceeded(ctx)
	m.RecordHTTPRequest(ctx, "GET", "/callback", 200)

	assert.Equal(t, int64(2), sumByAttr(t, reader, MetricAuthorizationStarted, AttrOutcome)[""])
	assert.Equal(t, int64(1), sumByAttr(t, reader, MetricRateLimitExceeded, AttrOutcome)[""])
	assert.Equal(t, int64(1), sumByAttr(t, reader, MetricHTTPRequestsTotal, AttrEndpoint)["/callback"])
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordAuthorizationStarted(context.Background())
		m.RecordCodeExchanged(context.Background(), "succeeded", true, 1)
		m.RecordRateLimitExceeded(context.Background())
		m.RecordHTTPRequest(context.Background(), "GET", "/", 302)
	})
}

func TestTracing_Helpers(t *testing.T) {
	inst, _, recorder := newTestInstrumentation(t)

	_, span := inst.Tracer("service").Start(context.Background(), SpanExchangeCode)
	SetOutcome(span, "http_error", 401)
	RecordError(span, errors.New("token request failed"))
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, SpanExchangeCode, spans[0].Name())
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Contains(t, spans[0].Attributes(), attribute.String(AttrOutcome, "http_error"))
	assert.Contains(t, spans[0].Attributes(), attribute.Int(AttrStatusCode, 401))
}

func TestShutdown_Once(t *testing.T) {
	inst, err := New(Config{Enabled: true})
	require.NoError(t, err)

	require.NoError(t, inst.Shutdown(context.Background()))
	assert.NoError(t, inst.Shutdown(context.Background()))
}

func TestCollect(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		inst, err := New(Config{})
		require.NoError(t, err)

		_, err = inst.Collect(context.Background())
		assert.ErrorIs(t, err, ErrDisabled)
	})

	t.Run("default reader", func(t *testing.T) {
		inst, err := New(Config{Enabled: true})
		require.NoError(t, err)
		t.Cleanup(func() { _ = inst.Shutdown(context.Background()) })

		inst.Metrics().RecordAuthorizationStarted(context.Background())

		rm, err := inst.Collect(context.Background())
		require.NoError(t, err)

		var names []string
		for _, sm := range rm.ScopeMetrics {
			for _, m := range sm.Metrics {
				names = append(names, m.Name)
			}
		}
		assert.Contains(t, names, MetricAuthorizationStarted)
	})
}

func TestNew_TraceEndpoint(t *testing.T) {
	// The exporter connects lazily, so no collector is needed here.
	inst, err := New(Config{Enabled: true, TraceEndpoint: "http://127.0.0.1:4318/v1/traces"})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, inst.Shutdown(ctx))
}

func TestSnapshot(t *testing.T) {
	inst, _, _ := newTestInstrumentation(t)
	ctx := context.Background()

	inst.Metrics().RecordCodeExchanged(ctx, "succeeded", true, 40)
	inst.Metrics().RecordCodeExchanged(ctx, "succeeded", true, 60)
	inst.Metrics().RecordCodeExchanged(ctx, "state_mismatch", false, 0)

	points, err := inst.Snapshot(ctx)
	require.NoError(t, err)

	exchanged := map[string]float64{}
	var duration MetricPoint
	for _, p := range points {
		switch p.Name {
		case MetricCodeExchanged:
			exchanged[p.Attributes[AttrOutcome]] = p.Value
		case MetricProviderDuration:
			duration = p
		}
	}
	assert.Equal(t, 2.0, exchanged["succeeded"])
	assert.Equal(t, 1.0, exchanged["state_mismatch"])
	assert.Equal(t, uint64(2), duration.Count)
	assert.Equal(t, 100.0, duration.Value)
}
