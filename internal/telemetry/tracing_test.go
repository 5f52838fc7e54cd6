package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"adsmarket/internal/config/configs"
)

func TestSetupNoopWhenInactive(t *testing.T) {
	before := otel.GetTracerProvider()

	for _, cfg := range []configs.Tracing{
		{Enabled: true},
		{Enabled: false, Endpoint: "http://192.0.2.1:4318"},
	} {
		shutdown, err := Setup(context.Background(), cfg)
		require.NoError(t, err)
		require.NoError(t, shutdown(context.Background()))
	}
	assert.Same(t, before, otel.GetTracerProvider())
}

func TestSetupRegistersProvider(t *testing.T) {
	before := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(before) })

	shutdown, err := Setup(context.Background(), configs.Tracing{
		Enabled:     true,
		Endpoint:    "http://192.0.2.1:4318",
		ServiceName: "adsmarket-test",
		SampleRatio: 1,
	})
	require.NoError(t, err)
	assert.IsType(t, &sdktrace.TracerProvider{}, otel.GetTracerProvider())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// Nothing was recorded, so the flush has no work to do.
	_ = shutdown(ctx)
}

func TestNewProviderSampling(t *testing.T) {
	tests := []struct {
		ratio float64
		spans int
	}{
		{ratio: 1, spans: 1},
		{ratio: 5, spans: 1},
		{ratio: 0, spans: 0},
		{ratio: -1, spans: 0},
	}
	for _, tt := range tests {
		recorder := tracetest.NewSpanRecorder()
		tp, err := NewProvider(context.Background(),
			configs.Tracing{ServiceName: "adsmarket-test", SampleRatio: tt.ratio},
			sdktrace.WithSpanProcessor(recorder))
		require.NoError(t, err)

		_, span := tp.Tracer("test").Start(context.Background(), "op")
		span.End()
		require.NoError(t, tp.Shutdown(context.Background()))

		assert.Len(t, recorder.Ended(), tt.spans, "ratio %v", tt.ratio)
	}
}

func TestNewProviderResource(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp, err := NewProvider(context.Background(),
		configs.Tracing{ServiceName: "adsmarket-test", SampleRatio: 1},
		sdktrace.WithSpanProcessor(recorder))
	require.NoError(t, err)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	_, span := tp.Tracer("test").Start(context.Background(), "op")
	span.End()

	require.Len(t, recorder.Ended(), 1)
	var name string
	for _, kv := range recorder.Ended()[0].Resource().Attributes() {
		if kv.Key == "service.name" {
			name = kv.Value.AsString()
		}
	}
	assert.Equal(t, "adsmarket-test", name)
}
