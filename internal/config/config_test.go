package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("applies defaults when the file is missing", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "env-secret")

		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "no-such.yaml"))
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, "studentportal", cfg.Database.DBName)
		assert.Equal(t, "1h", cfg.JWT.AccessTokenExpiration)
		assert.Equal(t, 16, cfg.Upload.MaxUploadSizeMB)
		assert.Contains(t, cfg.Upload.AllowedExtensions, "pdf")
	})

	t.Run("file values override defaults", func(t *testing.T) {
		path := writeConfigFile(t, `
server:
  port: "9090"
jwt:
  secret: file-secret
upload:
  max_upload_size_mb: 4
  allowed_extensions: [pdf, docx]
`)
		cfg, err := LoadConfig(path)
		require.NoError(t, err)

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, "file-secret", cfg.JWT.Secret)
		assert.Equal(t, []string{"pdf", "docx"}, cfg.Upload.AllowedExtensions)
		assert.Equal(t, int64(4<<20), cfg.MaxUploadSizeBytes())
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		path := writeConfigFile(t, `
jwt:
  secret: file-secret
database:
  host: db.internal
`)
		t.Setenv("DB_HOST", "env-host")
		t.Setenv("JWT_SECRET", "env-secret")

		cfg, err := LoadConfig(path)
		require.NoError(t, err)

		assert.Equal(t, "env-host", cfg.Database.Host)
		assert.Equal(t, "env-secret", cfg.JWT.Secret)
	})

	t.Run("rejects a missing JWT secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")

		_, err := LoadConfig(filepath.Join(t.TempDir(), "no-such.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret")
	})

	t.Run("rejects malformed durations", func(t *testing.T) {
		path := writeConfigFile(t, `
jwt:
  secret: s
  access_token_expiration: soon
`)
		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)
	cfg.Database.Password = "pw"

	assert.Equal(t,
		"postgres://postgres:pw@localhost:5432/studentportal?sslmode=disable",
		cfg.GetPostgresConnectionString())
}
