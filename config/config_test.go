package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
env:
  env: test
  serviceName: cofoundr
  debug: true
  log:
    pretty: true
    level: debug
http:
  port: 8080
postgres:
  host: localhost
  port: 5432
  username: cofoundr
  password: secret
  dbName: cofoundr
  sslMode: disable
jwt:
  secret: test-secret
  accessTTL: 15m
auth:
  bcryptCost: 6
`

func writeTestConfig(t *testing.T) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testConfigYAML), 0o600))
	t.Chdir(dir)
}

func TestNew_LoadsYAML(t *testing.T) {
	writeTestConfig(t)

	cfg, err := New()

	require.NoError(t, err)
	assert.Equal(t, "test", cfg.Env.Env)
	assert.Equal(t, "cofoundr", cfg.Env.ServiceName)
	assert.True(t, cfg.Env.Debug)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	require.NotNil(t, cfg.Postgres)
	assert.Equal(t, "localhost", cfg.Postgres.Host)
	require.NotNil(t, cfg.JWT)
	assert.Equal(t, "test-secret", cfg.JWT.Secret)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTTL)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 6, cfg.Auth.BcryptCost)
}

func TestNew_EnvOverridesFile(t *testing.T) {
	writeTestConfig(t)
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("POSTGRES_HOST", "db.internal")

	cfg, err := New()

	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.JWT.Secret)
	assert.Equal(t, "db.internal", cfg.Postgres.Host)
}

func TestNew_AppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	minimal := `
env:
  env: test
jwt:
  secret: test-secret
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(minimal), 0o600))
	t.Chdir(dir)

	cfg, err := New()

	require.NoError(t, err)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultAccessTokenTTL, cfg.JWT.AccessTTL)
}

func TestNew_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := New()

	assert.Error(t, err)
}

func TestPostgresConfig_DSN(t *testing.T) {
	cfg := &PostgresConfig{
		Host:     "localhost",
		Port:     5432,
		Username: "cofoundr",
		Password: "secret",
		DBName:   "cofoundr",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=cofoundr password=secret dbname=cofoundr sslmode=disable",
		cfg.DSN())
}

func TestPostgresConfig_DSN_DefaultsToRequireSSL(t *testing.T) {
	cfg := &PostgresConfig{
		Host:     "localhost",
		Port:     5432,
		Username: "cofoundr",
		Password: "secret",
		DBName:   "cofoundr",
	}

	assert.Contains(t, cfg.DSN(), "sslmode=require")
}
