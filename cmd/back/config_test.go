package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"rizoma/internal/record"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := loadConfig("missing.yaml")
	require.NoError(t, err)
	assert.Equal(t, "sqlite3", cfg.Driver)
	assert.Equal(t, ":50051", cfg.HostGRPC)
	assert.Equal(t, record.DefaultRent, cfg.Rent)
	assert.Equal(t, uint64(5_000_000_000), cfg.FaucetLamports)
}

func TestLoadConfig_YAMLAndEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	path := filepath.Join(dir, "config.yaml")
	yaml := `
dsn: postgres://rizoma:rizoma@db:5432/rizoma?sslmode=disable
driver: postgres
host_grpc: ":6000"
cache_ttl: 1h
faucet_max_lamports: 0
rent:
  lamports_per_byte_year: 1000
  exemption_threshold: 1.5
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	t.Setenv("RIZOMA_HOST_GRPC", ":7000")
	t.Setenv("RIZOMA_RENT_LAMPORTS_PER_BYTE_YEAR", "2000")

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Driver)
	assert.Equal(t, ":7000", cfg.HostGRPC)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
	assert.Zero(t, cfg.FaucetLamports)
	assert.Equal(t, uint64(2000), cfg.Rent.LamportsPerByteYear)
	assert.Equal(t, 1.5, cfg.Rent.ExemptionThreshold)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("RIZOMA_LOG_FILE=/tmp/rizoma.log\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("RIZOMA_LOG_FILE") })

	cfg, err := loadConfig("missing.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/rizoma.log", cfg.LogFile)
}

func TestLoadConfig_Invalid(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("driver: mysql\n"), 0o600))
	_, err := loadConfig(bad)
	assert.ErrorContains(t, err, "driver")

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("dsn: [unterminated"), 0o600))
	_, err = loadConfig(broken)
	assert.Error(t, err)
}
