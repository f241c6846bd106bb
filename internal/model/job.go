package model

import (
	"fmt"
	"strings"
	"time"
)

// Job describes one generation batch. It is built once before the engine runs
// and is never mutated afterwards.
type Job struct {
	Dir       string `json:"dir"`
	MinSizeMB int    `json:"min_size_mb"`
	MaxSizeMB int    `json:"max_size_mb"`
	Count     int    `json:"count"`
	Extension string `json:"extension"`
}

// Validate reports whether the job satisfies the engine preconditions.
func (j Job) Validate() error {
	if j.Dir == "" {
		return ErrNoDirectory
	}
	if j.Count < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidCount, j.Count)
	}
	if j.MinSizeMB < 1 || j.MaxSizeMB < j.MinSizeMB {
		return fmt.Errorf("%w: min=%d max=%d", ErrInvalidSize, j.MinSizeMB, j.MaxSizeMB)
	}
	if !strings.HasPrefix(j.Extension, ".") || len(j.Extension) < 2 {
		return fmt.Errorf("%w: %q", ErrInvalidExtension, j.Extension)
	}
	return nil
}

// FixedSize is true when every file in the batch has the same size.
func (j Job) FixedSize() bool {
	return j.MinSizeMB == j.MaxSizeMB
}

type Result struct {
	Path    string `json:"path"`
	SizeMB  int    `json:"size_mb"`
	Success bool   `json:"success"`
	Reason  string `json:"reason,omitempty"`
	Err     error  `json:"-"`
}

// Report is the aggregate outcome of one engine run.
type Report struct {
	ID           string        `json:"id"`
	Requested    int           `json:"requested"`
	Succeeded    int           `json:"succeeded"`
	Failures     []Result      `json:"failures,omitempty"`
	BytesWritten int64         `json:"bytes_written"`
	StartedAt    time.Time     `json:"started_at"`
	Duration     time.Duration `json:"duration"`
}

func (r *Report) FailureCount() int {
	return len(r.Failures)
}

// Completed is the number of units that reported, successfully or not.
func (r *Report) Completed() int {
	return r.Succeeded + len(r.Failures)
}

var (
	ErrNoDirectory      = fmt.Errorf("destination directory is empty")
	ErrInvalidCount     = fmt.Errorf("file count must be at least 1")
	ErrInvalidSize      = fmt.Errorf("size range must satisfy 1 <= min <= max")
	ErrInvalidExtension = fmt.Errorf("extension must start with a dot")
)
