package session_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gallery-app/internal/domain/catalog"
	"gallery-app/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	list []catalog.Artwork
	err  error
}

func (s *fakeSource) ListArtworks(ctx context.Context) ([]catalog.Artwork, error) {
	return s.list, s.err
}

func TestManager(t *testing.T) {

	t.Run("SameSessionSameContainer", func(t *testing.T) {
		m := session.NewManager(t.TempDir(), &fakeSource{})

		a := m.Get("visitor-1")
		b := m.Get("visitor-1")
		assert.Same(t, a, b)

		other := m.Get("visitor-2")
		assert.NotSame(t, a, other)
	})

	t.Run("SessionsAreIsolated", func(t *testing.T) {
		m := session.NewManager(t.TempDir(), &fakeSource{})

		m.Get("visitor-1").AddToCart(artwork("a1", 100))

		assert.Empty(t, m.Get("visitor-2").Cart())
		assert.Len(t, m.Get("visitor-1").Cart(), 1)
	})

	t.Run("RefreshPushesSnapshotToAllContainers", func(t *testing.T) {
		src := &fakeSource{list: []catalog.Artwork{artwork("a1", 10)}}
		m := session.NewManager(t.TempDir(), src)

		a := m.Get("visitor-1")
		b := m.Get("visitor-2")

		require.NoError(t, m.RefreshCatalog(context.Background()))
		assert.Len(t, a.Artworks(), 1)
		assert.Len(t, b.Artworks(), 1)

		src.list = []catalog.Artwork{artwork("a1", 10), artwork("a2", 20)}
		require.NoError(t, m.RefreshCatalog(context.Background()))
		assert.Len(t, a.Artworks(), 2)
		assert.Len(t, b.Artworks(), 2)
	})

	t.Run("NewContainerSeededWithCurrentSnapshot", func(t *testing.T) {
		src := &fakeSource{list: []catalog.Artwork{artwork("a1", 10)}}
		m := session.NewManager(t.TempDir(), src)

		require.NoError(t, m.RefreshCatalog(context.Background()))

		c := m.Get("late-visitor")
		assert.Len(t, c.Artworks(), 1)
	})

	t.Run("TraversalIdNeverEscapesSessionDir", func(t *testing.T) {
		base := t.TempDir()
		dir := filepath.Join(base, "sessions")
		m := session.NewManager(dir, &fakeSource{})

		c := m.Get("../escaped")
		c.AddToFavorites("x")
		c.AddToCart(artwork("a1", 10))

		// No directory or record may appear outside the session root.
		_, err := os.Stat(filepath.Join(base, "escaped"))
		assert.True(t, os.IsNotExist(err))

		entries, err := os.ReadDir(base)
		require.NoError(t, err)
		for _, e := range entries {
			assert.Equal(t, "sessions", e.Name())
		}

		// The container still works, just without persistence.
		assert.True(t, c.IsInFavorites("x"))
		assert.True(t, c.IsInCart("a1"))
	})

	t.Run("ValidIdStoresUnderSessionDir", func(t *testing.T) {
		dir := t.TempDir()
		m := session.NewManager(dir, &fakeSource{})

		id := strings.Repeat("ab", 16)
		m.Get(id).AddToFavorites("x")

		_, err := os.Stat(filepath.Join(dir, id, "favorites.json"))
		assert.NoError(t, err)
	})

	t.Run("RefreshErrorKeepsOldSnapshot", func(t *testing.T) {
		src := &fakeSource{list: []catalog.Artwork{artwork("a1", 10)}}
		m := session.NewManager(t.TempDir(), src)

		c := m.Get("visitor-1")
		require.NoError(t, m.RefreshCatalog(context.Background()))

		src.err = errors.New("connection refused")
		err := m.RefreshCatalog(context.Background())
		require.Error(t, err)

		// Failed fetch is surfaced, never half-applied.
		assert.Len(t, c.Artworks(), 1)
	})
}

func TestIsValidID(t *testing.T) {
	assert.True(t, session.IsValidID("0123456789abcdef0123456789abcdef"))

	assert.False(t, session.IsValidID(""))
	assert.False(t, session.IsValidID("../escaped"))
	assert.False(t, session.IsValidID("..%2f..%2fescaped"))
	assert.False(t, session.IsValidID("0123456789abcdef0123456789abcde"), "too short")
	assert.False(t, session.IsValidID("0123456789abcdef0123456789abcdef0"), "too long")
	assert.False(t, session.IsValidID("0123456789ABCDEF0123456789ABCDEF"), "uppercase")
	assert.False(t, session.IsValidID("0123456789abcdeg0123456789abcdef"), "non-hex")
	assert.False(t, session.IsValidID("0123456789abcde/0123456789abcdef"), "separator")
}
