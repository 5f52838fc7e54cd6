package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adsmarket/internal/config/configs"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, configs.DriverPostgres, cfg.Store.DriverName())
	assert.Equal(t, 5*time.Second, cfg.Store.TxTimeout)
	assert.Equal(t, int32(10), cfg.Psql.MaxConns)
	assert.False(t, cfg.SeedDemo)
	assert.Equal(t, "adsmarket", cfg.Tracing.ServiceName)
	assert.False(t, cfg.Tracing.Active())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("STORE_DRIVER", "Memory")
	t.Setenv("STORE_TX_TIMEOUT", "250ms")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("SEED_DEMO", "true")
	t.Setenv("PSQL_ADDRESS", "postgres://u:p@db:5432/ads?sslmode=disable")
	t.Setenv("OTEL_ENDPOINT", "http://collector:4318")
	t.Setenv("OTEL_SAMPLE_RATIO", "0.25")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, configs.DriverMemory, cfg.Store.DriverName())
	assert.Equal(t, 250*time.Millisecond, cfg.Store.TxTimeout)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	assert.Equal(t, "json", cfg.Log.SlogFormat())
	assert.True(t, cfg.SeedDemo)
	assert.Equal(t, "db:5432", cfg.Psql.Addr.Host)
	assert.True(t, cfg.Tracing.Active())
	assert.InDelta(t, 0.25, cfg.Tracing.SampleRatio, 1e-9)
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	t.Setenv("STORE_TX_TIMEOUT", "soon")
	_, err := Load()
	assert.Error(t, err)
}
