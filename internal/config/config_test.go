package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, int32(3000), cfg.Port)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "/api", cfg.APIPrefix)
	assert.Equal(t, EnvironmentDevelopment, cfg.Environment)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, 5, cfg.ShutdownTimeoutInSeconds)
	assert.Equal(t, DefaultDatabasePath, cfg.Database.Path)
	assert.True(t, cfg.UI.Enabled)
	assert.Equal(t, 24*time.Hour, cfg.Session.Lifetime)
	assert.False(t, cfg.Demo.Enabled)
	assert.Equal(t, "*/15 * * * *", cfg.Demo.ResetSchedule)
	assert.Equal(t, 1, cfg.Tasks.Workers)
}

func TestNewConfig_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("API_PREFIX", "v1/")
	t.Setenv("APP_ENV", "production")
	t.Setenv("DATABASE_PATH", "/tmp/books.db")
	t.Setenv("DEMO_MODE", "true")
	t.Setenv("SESSION_LIFETIME", "2h")

	cfg := NewConfig()

	assert.Equal(t, int32(8080), cfg.Port)
	assert.Equal(t, "/v1", cfg.APIPrefix)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "/tmp/books.db", cfg.Database.Path)
	assert.True(t, cfg.Demo.Enabled)
	assert.Equal(t, 2*time.Hour, cfg.Session.Lifetime)
}

func TestLoadEnvFile(t *testing.T) {
	t.Run("missing file is ignored", func(t *testing.T) {
		assert.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), ".env")))
	})

	t.Run("does not override existing variables", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("CATALOG_TEST_FROM_FILE=file\nCATALOG_TEST_SET=file\n"), 0o600))
		t.Setenv("CATALOG_TEST_SET", "env")
		t.Cleanup(func() { os.Unsetenv("CATALOG_TEST_FROM_FILE") })

		require.NoError(t, LoadEnvFile(path))

		assert.Equal(t, "file", os.Getenv("CATALOG_TEST_FROM_FILE"))
		assert.Equal(t, "env", os.Getenv("CATALOG_TEST_SET"))
	})
}

func TestNormalizePrefix(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/api", "/api"},
		{"api", "/api"},
		{"/api/", "/api"},
		{"", ""},
		{"/", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizePrefix(tt.in), "prefix %q", tt.in)
	}
}
