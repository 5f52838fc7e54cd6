package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"adsmarket/internal/core/domain"
)

func TestCommandSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	before := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(before)
		_ = tp.Shutdown(context.Background())
	})

	f := newFixture(t)
	c := f.activeCampaign(t, "1000")

	_, err := f.svc.ApplySpend(context.Background(), f.advertiser, c.ID, dec("1500"))
	require.ErrorIs(t, err, domain.ErrOverBudget)
	_, err = f.svc.ApplySpend(context.Background(), f.advertiser, c.ID, dec("100"))
	require.NoError(t, err)

	var spends []sdktrace.ReadOnlySpan
	for _, s := range recorder.Ended() {
		if s.Name() == "Marketplace.ApplySpend" {
			spends = append(spends, s)
		}
	}
	require.Len(t, spends, 2)

	rejected := spends[0]
	assert.Equal(t, codes.Error, rejected.Status().Code)
	assert.Equal(t, string(domain.KindOverBudget), rejected.Status().Description)
	require.NotEmpty(t, rejected.Events())
	assert.Equal(t, "exception", rejected.Events()[0].Name)

	attrs := map[string]string{}
	for _, kv := range spends[1].Attributes() {
		attrs[string(kv.Key)] = kv.Value.AsString()
	}
	assert.Equal(t, codes.Unset, spends[1].Status().Code)
	assert.Equal(t, c.ID.String(), attrs["campaign.id"])
	assert.Equal(t, "100", attrs["amount"])
	assert.Equal(t, f.advertiser.ID.String(), attrs["principal.id"])
}
