package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.App.Port)
	assert.Equal(t, StorageDriverCloudinary, cfg.Storage.Driver)
	assert.Equal(t, "portfolio/resumes", cfg.Storage.ResumeFolder)
	assert.Equal(t, int64(5<<20), cfg.Upload.MaxResumeBytes)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenLifespan)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte("app:\n  port: \"9090\"\nstorage:\n  driver: minio\n  resume_folder: cv\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o600))

	t.Setenv("STORAGE_RESUME_FOLDER", "resumes-env")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, StorageDriverMinIO, cfg.Storage.Driver)
	assert.Equal(t, "resumes-env", cfg.Storage.ResumeFolder)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
}
