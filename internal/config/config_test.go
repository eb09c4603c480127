package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CONFIG_FILE", "VERSION", "HTTP_ADDR", "HTTP_READ_HEADER_TIMEOUT", "REQUEST_TIMEOUT",
		"SHUTDOWN_TIMEOUT", "MONGODB_URI", "MONGODB_DATABASE", "MONGODB_COLLECTION",
		"MONGODB_CONNECT_TIMEOUT", "MONGODB_MAX_POOL_SIZE", "PAGINATION_DEFAULT_LIMIT",
		"PAGINATION_MAX_LIMIT", "CORS_ALLOWED_ORIGINS", "CORS_MAX_AGE", "LOG_LEVEL",
		"LOG_FORMAT", "TRACING_ENABLED", "TRACING_SAMPLE_RATIO",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.HTTP.Addr)
	assert.Equal(t, DefaultMongoURI, cfg.Mongo.URI)
	assert.Equal(t, "articles", cfg.Mongo.Database)
	assert.Equal(t, "articles", cfg.Mongo.Collection)
	assert.Equal(t, 10, cfg.Pagination.DefaultLimit)
	assert.Equal(t, 50, cfg.Pagination.MaxLimit)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, time.Duration(0), cfg.HTTP.RequestTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Tracing.Enabled)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_ADDR", ":8080")
	t.Setenv("MONGODB_URI", "mongodb://db.internal:27017")
	t.Setenv("MONGODB_DATABASE", "content")
	t.Setenv("REQUEST_TIMEOUT", "5s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://meetvoice.example,https://admin.meetvoice.example")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("TRACING_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "mongodb://db.internal:27017", cfg.Mongo.URI)
	assert.Equal(t, "content", cfg.Mongo.Database)
	assert.Equal(t, 5*time.Second, cfg.HTTP.RequestTimeout)
	assert.Equal(t, []string{"https://meetvoice.example", "https://admin.meetvoice.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Tracing.Enabled)
}

func TestLoad_YAMLFileThenEnvironment(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
version: "1.2.3"
http:
  addr: ":9000"
  shutdown_timeout: 30s
mongodb:
  database: fromfile
  collection: posts
pagination:
  default_limit: 5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("MONGODB_COLLECTION", "articles_v2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "1.2.3", cfg.Version)
	assert.Equal(t, ":9000", cfg.HTTP.Addr)
	assert.Equal(t, 30*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "fromfile", cfg.Mongo.Database)
	assert.Equal(t, "articles_v2", cfg.Mongo.Collection, "environment wins over file")
	assert.Equal(t, 5, cfg.Pagination.DefaultLimit)
	assert.Equal(t, 50, cfg.Pagination.MaxLimit, "keys absent from the file keep defaults")
	assert.Equal(t, DefaultMongoURI, cfg.Mongo.URI)
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_RejectsRaisedLimitCeiling(t *testing.T) {
	clearEnv(t)
	t.Setenv("PAGINATION_MAX_LIMIT", "500")

	cfg, err := Load()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "pagination max_limit must be between 1 and 50")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "empty addr", mutate: func(c *Config) { c.HTTP.Addr = "" }, wantErr: "http addr is required"},
		{name: "bad uri scheme", mutate: func(c *Config) { c.Mongo.URI = "postgres://x" }, wantErr: "mongodb uri must use"},
		{name: "srv uri", mutate: func(c *Config) { c.Mongo.URI = "mongodb+srv://cluster.example" }},
		{name: "empty collection", mutate: func(c *Config) { c.Mongo.Collection = "" }, wantErr: "mongodb collection is required"},
		{name: "max limit above ceiling", mutate: func(c *Config) { c.Pagination.MaxLimit = 500 }, wantErr: "pagination max_limit must be between 1 and 50"},
		{name: "zero max limit", mutate: func(c *Config) { c.Pagination.MaxLimit = 0 }, wantErr: "pagination max_limit"},
		{name: "lowered max limit", mutate: func(c *Config) { c.Pagination.MaxLimit = 20 }},
		{name: "default above max", mutate: func(c *Config) { c.Pagination.DefaultLimit = 60 }, wantErr: "pagination default_limit"},
		{name: "negative request timeout", mutate: func(c *Config) { c.HTTP.RequestTimeout = -time.Second }, wantErr: "request_timeout"},
		{name: "unknown log level", mutate: func(c *Config) { c.Log.Level = "trace" }, wantErr: "log level"},
		{name: "sample ratio above one", mutate: func(c *Config) { c.Tracing.SampleRatio = 1.5 }, wantErr: "sample_ratio"},
		{name: "no cors origins", mutate: func(c *Config) { c.CORS.AllowedOrigins = nil }, wantErr: "allowed_origins"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
