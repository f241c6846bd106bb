package outdir

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Prepare creates dir. If that fails it creates fallback instead and reports
// fellBack=true. An error is returned only when neither can be created.
func Prepare(dir, fallback string, logger zerolog.Logger) (used string, fellBack bool, err error) {
	if dir != "" {
		mkErr := ensureDir(dir)
		if mkErr == nil {
			return dir, false, nil
		}
		logger.Warn().Err(mkErr).Str("path", dir).Str("fallback", fallback).
			Msg("unable to create directory, using fallback")
	}
	if err := ensureDir(fallback); err != nil {
		return "", true, fmt.Errorf("create fallback directory %s: %w", fallback, err)
	}
	return fallback, true, nil
}

func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	return nil
}

type Inventory struct {
	Files      []string
	TotalBytes int64
}

// Scan lists the regular files in dir whose extension matches ext exactly.
func Scan(dir, ext string) (*Inventory, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	inv := &Inventory{}
	for _, entry := range entries {
		if !entry.Type().IsRegular() || filepath.Ext(entry.Name()) != ext {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		inv.Files = append(inv.Files, filepath.Join(dir, entry.Name()))
		inv.TotalBytes += info.Size()
	}
	return inv, nil
}
