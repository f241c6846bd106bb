package cli

import (
	"regexp"
	"strings"

	"github.com/yokitheyo/filegen/internal/model"
)

// Normalizer corrects raw answers into a job the engine accepts.
type Normalizer struct {
	extPattern *regexp.Regexp
	defaultExt string
}

// NewNormalizer accepts extensions given with or without the leading dot.
func NewNormalizer(allowed []string, defaultExt string) *Normalizer {
	quoted := make([]string, 0, len(allowed))
	for _, ext := range allowed {
		quoted = append(quoted, regexp.QuoteMeta(strings.TrimPrefix(ext, ".")))
	}
	if !strings.HasPrefix(defaultExt, ".") {
		defaultExt = "." + defaultExt
	}
	return &Normalizer{
		extPattern: regexp.MustCompile(`^\.(` + strings.Join(quoted, "|") + `)$`),
		defaultExt: defaultExt,
	}
}

// Extension prepends a dot if needed and falls back to the default extension
// when the result is not allowed. ok is false on fallback.
func (n *Normalizer) Extension(ext string) (string, bool) {
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	if !n.extPattern.MatchString(ext) {
		return n.defaultExt, false
	}
	return ext, true
}

// Job builds a validated job from v. Each correction applied is described in
// notes, in the order it was made.
func (n *Normalizer) Job(v Values) (model.Job, []string) {
	var notes []string

	ext, ok := n.Extension(v.Extension)
	if !ok {
		notes = append(notes, "File extension is invalid. Files will be generated as "+n.defaultExt+" files")
	}

	minMB, maxMB, sizeNotes := NormalizeSizes(v.MinSizeMB, v.MaxSizeMB)
	notes = append(notes, sizeNotes...)

	return model.Job{
		Dir:       v.Dir,
		MinSizeMB: minMB,
		MaxSizeMB: maxMB,
		Count:     v.Count,
		Extension: ext,
	}, notes
}

// NormalizeSizes raises values below 1 to 1 and swaps the bounds when max is
// below min.
func NormalizeSizes(minMB, maxMB int) (int, int, []string) {
	var notes []string
	if minMB < 1 {
		notes = append(notes, "Min file size less than 1. Setting at 1.")
		minMB = 1
	}
	if maxMB < 1 {
		notes = append(notes, "Max file size less than 1. Setting at 1.")
		maxMB = 1
	}
	if maxMB < minMB {
		notes = append(notes, "Max file size less than min. Inverting values.")
		minMB, maxMB = maxMB, minMB
	}
	return minMB, maxMB, notes
}
