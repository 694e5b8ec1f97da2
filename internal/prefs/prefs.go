// Package prefs persists storefront user preferences: the favorite product ids
// and the light/dark theme. Values live as string entries in a small TOML file,
// ~/.config/storefront/storage.toml by default:
//
//	[entries]
//	favorites = "[1,3]"
//	theme = "dark"
package prefs

import (
	"maps"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-faster/errors"
	toml "github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"

	"github.com/five82/storefront/internal/paths"
)

const defaultStoragePath = "~/.config/storefront/storage.toml"

// Storage is a string-keyed store of preference entries.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// DefaultPath returns the default storage file path.
func DefaultPath() string {
	return defaultStoragePath
}

type storageFile struct {
	Entries map[string]string `toml:"entries"`
}

// FileStorage keeps entries in memory and rewrites the whole file on every Set.
type FileStorage struct {
	mu      sync.Mutex
	path    string
	entries map[string]string
}

// Ensure FileStorage implements Storage at compile time.
var _ Storage = (*FileStorage)(nil)

// OpenFile loads entries from path, falling back to an empty store if the file
// is missing or unreadable. Only an unresolvable path is an error.
func OpenFile(path string, logger *zap.Logger) (*FileStorage, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	resolved, err := paths.ExpandOr(path, defaultStoragePath)
	if err != nil {
		return nil, errors.Wrap(err, "resolve storage path")
	}
	s := &FileStorage{path: resolved, entries: map[string]string{}}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Debug("Storage unreadable, starting empty", zap.String("path", resolved), zap.Error(err))
		}
		return s, nil
	}
	var file storageFile
	if err := toml.Unmarshal(data, &file); err != nil {
		logger.Debug("Storage malformed, starting empty", zap.String("path", resolved), zap.Error(err))
		return s, nil
	}
	if file.Entries != nil {
		s.entries = file.Entries
	}
	return s, nil
}

// Path returns the resolved file path.
func (s *FileStorage) Path() string { return s.path }

func (s *FileStorage) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.entries[key]
	return v, ok
}

// Set stores value under key and writes the file, creating directories as
// needed. The in-memory value is kept even if the write fails.
func (s *FileStorage) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Wrap(err, "create storage dir")
	}
	data, err := toml.Marshal(storageFile{Entries: s.entries})
	if err != nil {
		return errors.Wrap(err, "marshal storage")
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return errors.Wrap(err, "write storage")
	}
	return nil
}

// MemoryStorage is a Storage that never touches disk.
type MemoryStorage struct {
	mu      sync.Mutex
	entries map[string]string
	err     error
}

// NewMemoryStorage returns a MemoryStorage seeded with entries.
func NewMemoryStorage(entries map[string]string) *MemoryStorage {
	m := &MemoryStorage{entries: map[string]string{}}
	maps.Copy(m.entries, entries)
	return m
}

// FailWrites makes every following Set return err. A nil err clears it.
func (m *MemoryStorage) FailWrites(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func (m *MemoryStorage) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.entries[key]
	return v, ok
}

func (m *MemoryStorage) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.entries[key] = value
	return nil
}
