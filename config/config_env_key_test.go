package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"auth": map[string]any{
			"tokenTTL":   "1h",
			"bcryptCost": 10,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "AUTH_TOKENTTL", want: "auth.tokenTTL"},
		{envKey: "AUTH_BCRYPTCOST", want: "auth.bcryptCost"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestNew_AppliesDefaultsAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`env:
  serviceName: staffhub
  log:
    level: info
http:
  port: 3000
postgres:
  sslMode: disable
secretKey:
  access: from-file
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o600))
	t.Chdir(dir)
	t.Setenv("SECRETKEY_ACCESS", "from-env")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.SecretKey.Access)
	assert.Equal(t, 3000, cfg.HTTP.Port)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	require.NotNil(t, cfg.Database)
	assert.False(t, cfg.Database.Migrate)
	assert.Equal(t, defaultPoolMonitorEvery, cfg.Database.PoolMonitor.Interval)
	assert.Equal(t, defaultPoolWaitWarn, cfg.Database.PoolMonitor.WarnThreshold)
}

func TestNew_ReadsDatabaseSection(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`postgres:
  sslMode: disable
database:
  migrate: true
  poolMonitor:
    interval: 30s
    warnThreshold: 200ms
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o600))
	t.Chdir(dir)

	cfg, err := New()
	require.NoError(t, err)

	require.NotNil(t, cfg.Database)
	assert.True(t, cfg.Database.Migrate)
	assert.Equal(t, 30*time.Second, cfg.Database.PoolMonitor.Interval)
	assert.Equal(t, 200*time.Millisecond, cfg.Database.PoolMonitor.WarnThreshold)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.yaml not found")
}
