// Package storage provides the durable key-value persistence used by the
// ledger. The ledger hands it opaque serialized blobs keyed by a fixed
// namespace; this package decides where they live on disk.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Store is a durable key-value blob store. Load reports absence through its
// second return value rather than an error, so first runs are not failures.
type Store interface {
	Load(key string) ([]byte, bool, error)
	Save(key string, blob []byte) error
}

// FileStore persists each key as <key>.json under a data directory.
type FileStore struct {
	Dir string
}

// NewFileStore creates a store rooted at dir. The directory is created
// lazily on first save.
func NewFileStore(dir string) *FileStore {
	return &FileStore{Dir: dir}
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.Dir, key+".json")
}

// Load reads the blob for key. A missing file is not an error.
func (s *FileStore) Load(key string) ([]byte, bool, error) {
	path := s.path(key)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField("file", path).Debug("No stored data found, starting fresh")
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("error reading data file %s: %w", path, err)
	}
	log.WithField("file", path).Debug("Loaded stored data")
	return data, true, nil
}

// Save writes the blob for key, creating the data directory if needed.
func (s *FileStore) Save(key string, blob []byte) error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("error creating data directory: %w", err)
	}
	path := s.path(key)
	if err := os.WriteFile(path, blob, 0644); err != nil {
		return fmt.Errorf("error writing data file %s: %w", path, err)
	}
	log.WithField("file", path).Debug("Saved data")
	return nil
}

// MemoryStore is an in-memory Store for tests and ephemeral sessions.
type MemoryStore struct {
	blobs map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

// Load returns the blob for key if present.
func (s *MemoryStore) Load(key string) ([]byte, bool, error) {
	blob, ok := s.blobs[key]
	return blob, ok, nil
}

// Save stores a copy of the blob for key.
func (s *MemoryStore) Save(key string, blob []byte) error {
	cp := make([]byte, len(blob))
	copy(cp, blob)
	s.blobs[key] = cp
	return nil
}
