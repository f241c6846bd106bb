package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

const DefaultPath = "filegen.yaml"

type Config struct {
	Generation struct {
		MaxParallelOps    int      `yaml:"max_parallel_ops"`
		DefaultExtension  string   `yaml:"default_extension"`
		AllowedExtensions []string `yaml:"allowed_extensions"`
	} `yaml:"generation"`

	FallbackDir string `yaml:"fallback_directory"`
	LogLevel    string `yaml:"log_level"`
}

// LoadConfig reads the YAML file at path and applies environment overrides
// (FILEGEN_MAX_PARALLEL, FILEGEN_FALLBACK_DIR, FILEGEN_LOG_LEVEL), loading
// .env files first if present. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load(".env", ".env.local")

	var cfg Config
	f, err := os.Open(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		defer f.Close()
		dec := yaml.NewDecoder(f)
		if err := dec.Decode(&cfg); err != nil {
			return nil, err
		}
	}

	if v := os.Getenv("FILEGEN_MAX_PARALLEL"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.New("FILEGEN_MAX_PARALLEL must be an integer")
		}
		cfg.Generation.MaxParallelOps = n
	}
	cfg.FallbackDir = getenv("FILEGEN_FALLBACK_DIR", cfg.FallbackDir)
	cfg.LogLevel = getenv("FILEGEN_LOG_LEVEL", cfg.LogLevel)

	if cfg.Generation.MaxParallelOps < 1 {
		cfg.Generation.MaxParallelOps = 20
	}
	if cfg.Generation.DefaultExtension == "" {
		cfg.Generation.DefaultExtension = ".txt"
	}
	if len(cfg.Generation.AllowedExtensions) == 0 {
		cfg.Generation.AllowedExtensions = []string{"txt", "TXT", "jpg", "JPG", "gif", "GIF", "doc", "DOC", "pdf", "PDF"}
	}
	if cfg.FallbackDir == "" {
		cfg.FallbackDir = filepath.Join(os.TempDir(), "_generated files")
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return &cfg, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
