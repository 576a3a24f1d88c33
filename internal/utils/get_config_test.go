package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "./cocktails.db", cfg.DBPath)
	assert.Equal(t, "./public/uploads", cfg.UploadDir)
	assert.Equal(t, "local", cfg.StorageDriver)
	assert.True(t, cfg.SeedData)
	assert.Equal(t, 50, cfg.RateLimit)
	assert.Equal(t, "http://127.0.0.1:3000", cfg.APIBaseURL)
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
PORT: "8080"
DB_DRIVER: postgres
DB_HOST: db.internal
DB_NAME: cocktails
SEED_SAMPLE_DATA: false
STORAGE_DRIVER: s3
AWS_S3_BUCKET: from-file
`), 0o600))

	t.Setenv("AWS_S3_BUCKET", "from-env")
	t.Setenv("RATE_LIMIT", "5")
	t.Setenv("DB_PORT", "")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.False(t, cfg.SeedData)
	assert.Equal(t, "from-env", cfg.AWSS3Bucket)
	assert.Equal(t, 5, cfg.RateLimit)
	assert.Empty(t, cfg.DBPort)
	assert.Equal(t, "http://127.0.0.1:8080", cfg.APIBaseURL)
}

func TestLoadConfigErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("PORT: [unclosed"), 0o600))
	_, err := LoadConfig(path)
	assert.Error(t, err)

	t.Setenv("RATE_LIMIT", "fast")
	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "RATE_LIMIT")
}
