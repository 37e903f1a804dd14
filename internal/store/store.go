// Package store owns the on-disk layout of meal plan files: one
// directory per week under the storage root, holding the markdown and
// JSON pair plus the calendar export.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
)

// ErrNotFound reports a read of a file that does not exist.
var ErrNotFound = errors.New("file not found")

const (
	markdownFile = "mealplan.md"
	jsonFile     = "mealplan.json"
	icalFile     = "mealplan.ics"
)

// Store reads and writes plan files through an afero filesystem, so
// tests run against an in-memory fs.
type Store struct {
	fs   afero.Fs
	root string
}

func New(fs afero.Fs, root string) *Store {
	return &Store{fs: fs, root: root}
}

// Root returns the storage root directory.
func (s *Store) Root() string { return s.root }

// WeekDir returns the directory for the week starting at weekStart.
func (s *Store) WeekDir(weekStart time.Time) string {
	return filepath.Join(s.root, weekStart.Format("2006-01-02"))
}

func (s *Store) MarkdownPath(weekStart time.Time) string {
	return filepath.Join(s.WeekDir(weekStart), markdownFile)
}

func (s *Store) JSONPath(weekStart time.Time) string {
	return filepath.Join(s.WeekDir(weekStart), jsonFile)
}

func (s *Store) ICalPath(weekStart time.Time) string {
	return filepath.Join(s.WeekDir(weekStart), icalFile)
}

func (s *Store) Exists(path string) (bool, error) {
	return afero.Exists(s.fs, path)
}

func (s *Store) Read(path string) ([]byte, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

func (s *Store) Write(path string, data []byte) error {
	if err := s.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := afero.WriteFile(s.fs, path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func (s *Store) ModTime(path string) (time.Time, error) {
	info, err := s.fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return time.Time{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return time.Time{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return info.ModTime(), nil
}
