package generator

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Sink creates the output for a single unit. The returned path is the one
// actually used, which may differ from dir/stem+ext on a name collision.
type Sink interface {
	Create(dir, stem, ext string) (io.WriteCloser, string, error)
}

// FileSink writes units as regular files.
type FileSink struct {
	Perm os.FileMode
}

func NewFileSink() *FileSink {
	return &FileSink{Perm: 0644}
}

// Create opens dir/stem+ext exclusively. If the name is already taken, for
// example by a unit started in the same millisecond, a short random suffix is
// appended to the stem.
func (s *FileSink) Create(dir, stem, ext string) (io.WriteCloser, string, error) {
	path := filepath.Join(dir, stem+ext)
	f, err := s.open(path)
	if errors.Is(err, fs.ErrExist) {
		path = filepath.Join(dir, stem+"-"+uuid.New().String()[:8]+ext)
		f, err = s.open(path)
	}
	if err != nil {
		return nil, path, err
	}
	return f, path, nil
}

func (s *FileSink) open(path string) (*os.File, error) {
	perm := s.Perm
	if perm == 0 {
		perm = 0644
	}
	return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
}

// FileStem formats t in UTC with millisecond precision, e.g.
// "2024-05-01 13-04-05-123".
func FileStem(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("%s-%03d", t.Format("2006-01-02 15-04-05"), t.Nanosecond()/int(time.Millisecond))
}
