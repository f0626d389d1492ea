package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/feedgrab/feedgrab/internal/domain"
)

func TestCreate_MakesMissingDirectories(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "a", "b", "episodes")

	s := New(dir)
	f, path, err := s.Create("episode.mp3")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	defer f.Close()

	if want := filepath.Join(dir, "episode.mp3"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("created file not on disk: %v", err)
	}
}

func TestCreate_ExistingDirectoryIsNotAnError(t *testing.T) {
	dir := t.TempDir()

	s := New(dir)
	f, _, err := s.Create("episode.mp3")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	f.Close()
}

func TestCreate_TruncatesExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "episode.mp3")
	if err := os.WriteFile(path, []byte("old content that is long"), 0644); err != nil {
		t.Fatal(err)
	}

	s := New(dir)
	f, _, err := s.Create("episode.mp3")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := f.Write([]byte("new")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "new" {
		t.Errorf("file content = %q, want %q", data, "new")
	}
}

func TestCreate_DirectoryCreateError(t *testing.T) {
	root := t.TempDir()
	// A regular file where the directory should go
	blocker := filepath.Join(root, "blocked")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	s := New(filepath.Join(blocker, "episodes"))
	_, _, err := s.Create("episode.mp3")

	var dirErr *domain.DirectoryCreateError
	if !errors.As(err, &dirErr) {
		t.Fatalf("Create() error = %v, want DirectoryCreateError", err)
	}
}

func TestCreate_FileOpenError(t *testing.T) {
	dir := t.TempDir()
	// A directory where the file should go
	if err := os.Mkdir(filepath.Join(dir, "episode.mp3"), 0755); err != nil {
		t.Fatal(err)
	}

	s := New(dir)
	_, _, err := s.Create("episode.mp3")

	var openErr *domain.FileOpenError
	if !errors.As(err, &openErr) {
		t.Fatalf("Create() error = %v, want FileOpenError", err)
	}
}

func TestDir(t *testing.T) {
	s := New("episodes")
	if got := s.Dir(); got != "episodes" {
		t.Errorf("Dir() = %q, want %q", got, "episodes")
	}
}
