// Package filestore implements the service.Service interface with one file
// per list under a base directory.
package filestore

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"taskcli/internal/config"
	"taskcli/internal/service"
)

// Extension is appended to a list name to form its filename.
const Extension = ".txt"

// Ensure Store implements service.Service.
var _ service.Service = (*Store)(nil)

// Store implements service.Service on a directory.
// It keeps no state between calls besides its configuration.
type Store struct {
	dir    string
	logger *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for operation debug logs.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a Store rooted at dir. The directory is not created.
func New(dir string, opts ...Option) *Store {
	s := &Store{dir: dir, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open creates the configured lists directory and returns a Store on it.
func Open(cfg *config.Config, opts ...Option) (*Store, error) {
	if err := cfg.EnsureListsDir(); err != nil {
		return nil, err
	}
	return New(cfg.ListsDir, opts...), nil
}

// Dir returns the base directory.
func (s *Store) Dir() string { return s.dir }

// Path returns the file path for a list name.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name+Extension)
}

// ListLists returns list names in filename order.
func (s *Store) ListLists(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, service.IOError("enumerate", "", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name, ok := strings.CutSuffix(e.Name(), Extension)
		if !ok || name == "" {
			continue
		}
		if !s.isListFile(e) {
			continue
		}
		names = append(names, name)
	}

	s.logger.Debug("enumerated lists", zap.String("dir", s.dir), zap.Int("count", len(names)))
	return names, nil
}

// isListFile reports whether e is a regular file or a symlink to one.
func (s *Store) isListFile(e fs.DirEntry) bool {
	if e.Type().IsRegular() {
		return true
	}
	if e.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(s.dir, e.Name()))
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// CreateList creates an empty list file.
// Uses an exclusive create, so concurrent creators cannot both succeed.
func (s *Store) CreateList(ctx context.Context, name string) (service.List, error) {
	if err := validateName(name); err != nil {
		return service.List{}, service.IOError("create", name, err)
	}

	path := s.Path(name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return service.List{}, service.AlreadyExists("create", name)
		}
		return service.List{}, service.IOError("create", name, err)
	}
	if err := f.Close(); err != nil {
		return service.List{}, service.IOError("create", name, err)
	}

	s.logger.Debug("created list", zap.String("name", name), zap.String("path", path))
	return service.List{Name: name, Path: path}, nil
}

// RenameList renames from to to.
// The existence checks are not atomic with the rename itself.
func (s *Store) RenameList(ctx context.Context, from, to string) error {
	if err := validateName(from); err != nil {
		return service.IOError("rename", from, err)
	}
	if err := validateName(to); err != nil {
		return service.IOError("rename", to, err)
	}

	src, dst := s.Path(from), s.Path(to)
	if err := s.statList(src); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return service.NotFound("rename", from)
		}
		return service.IOError("rename", from, err)
	}
	if _, err := os.Lstat(dst); err == nil {
		return service.AlreadyExists("rename", to)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return service.IOError("rename", to, err)
	}

	if err := os.Rename(src, dst); err != nil {
		return service.IOError("rename", from, err)
	}

	s.logger.Debug("renamed list", zap.String("from", from), zap.String("to", to))
	return nil
}

// DeleteList removes a list file.
func (s *Store) DeleteList(ctx context.Context, name string) error {
	if err := validateName(name); err != nil {
		return service.IOError("delete", name, err)
	}

	path := s.Path(name)
	if err := s.statList(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return service.NotFound("delete", name)
		}
		return service.IOError("delete", name, err)
	}
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return service.NotFound("delete", name)
		}
		return service.IOError("delete", name, err)
	}

	s.logger.Debug("deleted list", zap.String("name", name))
	return nil
}

// statList returns fs.ErrNotExist when path is missing or is a directory.
func (s *Store) statList(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fs.ErrNotExist
	}
	return nil
}

// validateName rejects names that cannot map to a single file in the directory.
func validateName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return service.ErrInvalidName
	case strings.ContainsRune(name, '/'), strings.ContainsRune(name, filepath.Separator):
		return service.ErrInvalidName
	case strings.ContainsRune(name, 0):
		return service.ErrInvalidName
	}
	return nil
}
