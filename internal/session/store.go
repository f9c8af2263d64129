package session

import (
	"os"
	"path/filepath"
)

// Store persists the three session records (cart, favorites, dark mode)
// independently of each other. Load returns (nil, nil) when a record does
// not exist yet.
type Store interface {
	Load(record string) ([]byte, error)
	Save(record string, data []byte) error
	Clear(record string) error
}

const (
	recordCart      = "cart"
	recordFavorites = "favorites"
	recordDarkMode  = "dark_mode"
)

// FileStore keeps one JSON file per record under a session directory.
// Single-writer, last-write-wins: concurrent browsing contexts sharing a
// session id may overwrite each other, same as the browser original.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(record string) string {
	return filepath.Join(s.dir, record+".json")
}

func (s *FileStore) Load(record string) ([]byte, error) {
	data, err := os.ReadFile(s.path(record))
	if os.IsNotExist(err) {
		return nil, nil
	}
	return data, err
}

func (s *FileStore) Save(record string, data []byte) error {
	return os.WriteFile(s.path(record), data, 0o644)
}

func (s *FileStore) Clear(record string) error {
	err := os.Remove(s.path(record))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
