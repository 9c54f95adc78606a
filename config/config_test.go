package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads so the host environment cannot leak in
func clearEnv(t *testing.T) {
	for _, name := range []string{
		"PORT", "LOG_LEVEL", "CATALOG_SOURCE", "GOOGLE_APPLICATION_CREDENTIALS", "DRIVE_FOLDER_ID",
		"IMAGE_CACHE_DIR", "PREFETCH_WORKERS", "PREFETCH_QUEUE_SIZE", "FETCH_TIMEOUT_SECONDS",
	} {
		t.Setenv(name, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, 15*time.Second, cfg.Prefetch.Timeout())
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
port: "9090"
log_level: debug
catalog:
  source: drive
  credentials_path: /secrets/sa.json
  drive_folder_id: folder123
prefetch:
  cache_dir: /tmp/warm
  workers: 8
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, SourceDrive, cfg.Catalog.Source)
	assert.Equal(t, "folder123", cfg.Catalog.DriveFolderID)
	assert.Equal(t, "/tmp/warm", cfg.Prefetch.CacheDir)
	assert.Equal(t, 8, cfg.Prefetch.Workers)
	assert.Equal(t, 64, cfg.Prefetch.QueueSize, "unset keys keep their default")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "prefetch:\n  workers: 8\n")
	t.Setenv("PREFETCH_WORKERS", "2")
	t.Setenv("PORT", ":7000")
	t.Setenv("LOG_LEVEL", "WARN")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Prefetch.Workers)
	assert.Equal(t, "7000", cfg.Port)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		file string
	}{
		{"missing file", nil, ""},
		{"bad yaml", nil, "prefetch: [unclosed"},
		{"bad int", map[string]string{"PREFETCH_WORKERS": "many"}, "{}"},
		{"bad log level", map[string]string{"LOG_LEVEL": "loud"}, "{}"},
		{"bad source", map[string]string{"CATALOG_SOURCE": "ftp"}, "{}"},
		{"drive without folder", map[string]string{"CATALOG_SOURCE": "drive", "GOOGLE_APPLICATION_CREDENTIALS": "/sa.json"}, "{}"},
		{"zero workers", nil, "prefetch:\n  workers: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := filepath.Join(t.TempDir(), "does-not-exist.yaml")
			if tt.file != "" {
				path = writeConfig(t, tt.file)
			}

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}
