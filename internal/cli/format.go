package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/yokitheyo/filegen/internal/model"
	"github.com/yokitheyo/filegen/internal/outdir"
)

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// FormatPlan describes the batch about to run.
func FormatPlan(job model.Job) string {
	size := fmt.Sprintf("of size %d MB", job.MinSizeMB)
	if !job.FixedSize() {
		size = fmt.Sprintf("varying from %d MB to %d MB", job.MinSizeMB, job.MaxSizeMB)
	}
	return fmt.Sprintf("Generating %d %s file%s %s in the following directory: %s",
		job.Count, job.Extension, plural(job.Count), size, job.Dir)
}

// FormatSummary reports the outcome of a run. inv may be nil.
func FormatSummary(report *model.Report, inv *outdir.Inventory) string {
	var b strings.Builder
	b.WriteString("File generation complete\n")
	fmt.Fprintf(&b, "Generated %d of %d file%s (%.0f MB) in %s\n",
		report.Succeeded, report.Requested, plural(report.Requested),
		float64(report.BytesWritten)/(1024*1024), FormatDurationShort(report.Duration))
	if inv != nil {
		fmt.Fprintf(&b, "Directory now holds %d matching file%s (%.0f MB)\n",
			len(inv.Files), plural(len(inv.Files)), float64(inv.TotalBytes)/(1024*1024))
	}
	if n := report.FailureCount(); n > 0 {
		fmt.Fprintf(&b, "Errors were encountered during file generation. Failed to generate %d file%s\n", n, plural(n))
	}
	return b.String()
}

// FormatDurationShort formats a duration in a short format (M:SS or H:MM:SS).
func FormatDurationShort(d time.Duration) string {
	totalSeconds := int(d.Seconds())
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}
