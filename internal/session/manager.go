package session

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"gallery-app/internal/domain/catalog"
)

// CatalogSource lists the full artwork catalog. The manager re-fetches the
// whole list on every change signal rather than applying diffs.
type CatalogSource interface {
	ListArtworks(ctx context.Context) ([]catalog.Artwork, error)
}

// Manager owns one Container per visitor session and the shared catalog
// snapshot pushed into every container.
type Manager struct {
	mu         sync.Mutex
	dir        string
	source     CatalogSource
	containers map[string]*Container
	snapshot   []catalog.Artwork
}

func NewManager(dir string, source CatalogSource) *Manager {
	return &Manager{
		dir:        dir,
		source:     source,
		containers: make(map[string]*Container),
	}
}

// IsValidID reports whether id has the exact shape this package issues:
// 32 lowercase hex characters. The id names a directory under the session
// root, so anything else — in particular path separators or dots smuggled
// into the cookie — must never reach the filesystem.
func IsValidID(id string) bool {
	if len(id) != 32 {
		return false
	}
	for _, r := range id {
		if ('0' <= r && r <= '9') || ('a' <= r && r <= 'f') {
			continue
		}
		return false
	}
	return true
}

// Get returns the container for a session id, creating and loading it on
// first use. A store that cannot be created degrades to in-memory state
// rather than failing the request, and so does an id that fails IsValidID.
func (m *Manager) Get(sessionID string) *Container {
	m.mu.Lock()
	defer m.mu.Unlock()

	if c, ok := m.containers[sessionID]; ok {
		return c
	}

	var store Store
	if !IsValidID(sessionID) {
		store = noopStore{}
	} else if fs, err := NewFileStore(filepath.Join(m.dir, sessionID)); err != nil {
		fmt.Println("⚠️ session store unavailable, state will not persist:", err)
		store = noopStore{}
	} else {
		store = fs
	}

	c := NewContainer(store)
	c.SetArtworks(m.snapshot)
	m.containers[sessionID] = c
	return c
}

// RefreshCatalog fetches the full artwork list and swaps it into every
// container. Fetch failures are returned to the caller; there is no retry.
// Concurrent refreshes race and the last response wins.
func (m *Manager) RefreshCatalog(ctx context.Context) error {
	list, err := m.source.ListArtworks(ctx)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshot = list
	for _, c := range m.containers {
		c.SetArtworks(list)
	}
	return nil
}

// CatalogChanged implements the notify listener: any catalog mutation
// triggers a full re-fetch.
func (m *Manager) CatalogChanged() {
	if err := m.RefreshCatalog(context.Background()); err != nil {
		fmt.Println("⚠️ catalog refresh failed:", err)
	}
}

type noopStore struct{}

func (noopStore) Load(string) ([]byte, error) { return nil, nil }
func (noopStore) Save(string, []byte) error   { return nil }
func (noopStore) Clear(string) error          { return nil }
