package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("FILEGEN_MAX_PARALLEL", "")
	t.Setenv("FILEGEN_FALLBACK_DIR", "")
	t.Setenv("FILEGEN_LOG_LEVEL", "")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Generation.MaxParallelOps)
	assert.Equal(t, ".txt", cfg.Generation.DefaultExtension)
	assert.Contains(t, cfg.Generation.AllowedExtensions, "PDF")
	assert.Equal(t, filepath.Join(os.TempDir(), "_generated files"), cfg.FallbackDir)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigFile(t *testing.T) {
	t.Setenv("FILEGEN_MAX_PARALLEL", "")
	t.Setenv("FILEGEN_FALLBACK_DIR", "")
	t.Setenv("FILEGEN_LOG_LEVEL", "")

	path := filepath.Join(t.TempDir(), "filegen.yaml")
	data := `
generation:
  max_parallel_ops: 4
  allowed_extensions: [bin, dat]
fallback_directory: /var/tmp/gen
log_level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Generation.MaxParallelOps)
	assert.Equal(t, []string{"bin", "dat"}, cfg.Generation.AllowedExtensions)
	assert.Equal(t, "/var/tmp/gen", cfg.FallbackDir)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("FILEGEN_MAX_PARALLEL", "7")
	t.Setenv("FILEGEN_FALLBACK_DIR", "/srv/out")
	t.Setenv("FILEGEN_LOG_LEVEL", "warn")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Generation.MaxParallelOps)
	assert.Equal(t, "/srv/out", cfg.FallbackDir)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfigBadEnv(t *testing.T) {
	t.Setenv("FILEGEN_MAX_PARALLEL", "many")
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigBadYAML(t *testing.T) {
	t.Setenv("FILEGEN_MAX_PARALLEL", "")
	path := filepath.Join(t.TempDir(), "filegen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("generation: [oops"), 0644))
	_, err := LoadConfig(path)
	assert.Error(t, err)
}
