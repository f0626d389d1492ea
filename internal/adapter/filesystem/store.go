// Package filesystem handles local output files.
package filesystem

import (
	"io"
	"os"
	"path/filepath"

	"github.com/feedgrab/feedgrab/internal/domain"
	"github.com/feedgrab/feedgrab/internal/port"
)

// Store opens destination files under a single output directory. The
// directory is created lazily on the first write so a fully filtered run
// leaves the filesystem untouched.
type Store struct {
	dir string
}

// Ensure Store implements port.FileStore
var _ port.FileStore = (*Store)(nil)

// New creates a Store rooted at dir.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the output directory.
func (s *Store) Dir() string {
	return s.dir
}

// Create ensures the output directory exists, then opens dir/filename for
// writing, creating it if absent and truncating it if present. The caller
// must close the returned handle on every exit path.
func (s *Store) Create(filename string) (io.WriteCloser, string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return nil, "", &domain.DirectoryCreateError{Dir: s.dir, Err: err}
	}

	path := filepath.Join(s.dir, filename)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, "", &domain.FileOpenError{Path: path, Err: err}
	}

	return f, path, nil
}
