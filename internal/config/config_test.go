package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"
	"utilbox/internal/config"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults_WhenFileMissing(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, "/metrics", cfg.HTTP.MetricsPath)
	require.Equal(t, 5*time.Second, cfg.HTTP.RequestTimeout)
	require.Equal(t, int64(65536), cfg.HTTP.MaxBodyBytes)
	require.Equal(t, "$", cfg.Tip.CurrencySymbol)
	require.Empty(t, cfg.Auth.PublicKey)
	require.Equal(t, 10*time.Second, cfg.GracefulShutdownTimeout)
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
environment: production
http:
  addr: ":9090"
  requestTimeout: 2s
tip:
  currencySymbol: "£"
`), 0o600))

	t.Setenv("HTTP_METRICS_PATH", "/prom")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, ":9090", cfg.HTTP.Addr)
	require.Equal(t, 2*time.Second, cfg.HTTP.RequestTimeout)
	require.Equal(t, "£", cfg.Tip.CurrencySymbol)
	require.Equal(t, "/prom", cfg.HTTP.MetricsPath)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("http: [not, a, map"), 0o600))

	_, err := config.Load(path)
	require.Error(t, err)
}
