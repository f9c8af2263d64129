package session_test

import (
	"os"
	"path/filepath"
	"testing"

	"gallery-app/internal/domain/catalog"
	"gallery-app/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContainer(t *testing.T) (*session.Container, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := session.NewFileStore(dir)
	require.NoError(t, err)
	return session.NewContainer(store), dir
}

func artwork(id string, price float64) catalog.Artwork {
	return catalog.Artwork{ID: id, Title: "Untitled " + id, Artist: "Test Artist", Price: price}
}

func TestCart(t *testing.T) {

	t.Run("AddNewEntry", func(t *testing.T) {
		c, _ := newTestContainer(t)

		c.AddToCart(artwork("a1", 100))

		cart := c.Cart()
		require.Len(t, cart, 1)
		assert.Equal(t, "a1", cart[0].Artwork.ID)
		assert.Equal(t, 1, cart[0].Quantity)
		assert.Equal(t, 100.0, c.CartTotal())
	})

	t.Run("AddSameArtworkIncrementsQuantity", func(t *testing.T) {
		c, _ := newTestContainer(t)

		c.AddToCart(artwork("a1", 100))
		c.AddToCart(artwork("a1", 100))

		cart := c.Cart()
		require.Len(t, cart, 1)
		assert.Equal(t, 2, cart[0].Quantity)
		assert.Equal(t, 200.0, c.CartTotal())
	})

	t.Run("QuantityEqualsCallCount", func(t *testing.T) {
		c, _ := newTestContainer(t)

		for i := 0; i < 5; i++ {
			c.AddToCart(artwork("a1", 40))
		}

		cart := c.Cart()
		require.Len(t, cart, 1)
		assert.Equal(t, 5, cart[0].Quantity)
		assert.Equal(t, 200.0, c.CartTotal())
	})

	t.Run("TotalMatchesRecompute", func(t *testing.T) {
		c, _ := newTestContainer(t)

		c.AddToCart(artwork("a1", 100))
		c.AddToCart(artwork("a2", 250))
		c.AddToCart(artwork("a2", 250))
		c.UpdateCartItemQuantity("a1", 3)
		c.RemoveFromCart("a2")
		c.AddToCart(artwork("a3", 19.99))

		var want float64
		for _, item := range c.Cart() {
			q := item.Quantity
			if q == 0 {
				q = 1
			}
			want += item.Artwork.Price * float64(q)
		}
		assert.Equal(t, want, c.CartTotal())
	})

	t.Run("RemoveFromCart", func(t *testing.T) {
		c, _ := newTestContainer(t)

		c.AddToCart(artwork("a1", 100))
		c.RemoveFromCart("a1")

		assert.Empty(t, c.Cart())
		assert.False(t, c.IsInCart("a1"))
		assert.Equal(t, 0.0, c.CartTotal())
	})

	t.Run("RemoveNonexistentIsNoop", func(t *testing.T) {
		c, _ := newTestContainer(t)

		c.RemoveFromCart("nonexistent")
		assert.Empty(t, c.Cart())

		c.AddToCart(artwork("a1", 100))
		c.RemoveFromCart("nonexistent")
		assert.Len(t, c.Cart(), 1)
	})

	t.Run("UpdateQuantityVerbatim", func(t *testing.T) {
		c, _ := newTestContainer(t)

		c.AddToCart(artwork("a1", 50))
		c.UpdateCartItemQuantity("a1", 7)

		cart := c.Cart()
		require.Len(t, cart, 1)
		assert.Equal(t, 7, cart[0].Quantity)
		assert.Equal(t, 350.0, c.CartTotal())
	})

	t.Run("UpdateAbsentIdIsNoop", func(t *testing.T) {
		c, _ := newTestContainer(t)

		c.AddToCart(artwork("a1", 50))
		c.UpdateCartItemQuantity("other", 9)

		cart := c.Cart()
		require.Len(t, cart, 1)
		assert.Equal(t, 1, cart[0].Quantity)
	})

	t.Run("ZeroQuantityCountsAsOneInTotal", func(t *testing.T) {
		c, _ := newTestContainer(t)

		c.AddToCart(artwork("a1", 80))
		c.UpdateCartItemQuantity("a1", 0)

		assert.Equal(t, 80.0, c.CartTotal())
	})

	t.Run("IsInCart", func(t *testing.T) {
		c, _ := newTestContainer(t)

		assert.False(t, c.IsInCart("a1"))
		c.AddToCart(artwork("a1", 10))
		assert.True(t, c.IsInCart("a1"))
	})
}

func TestFavorites(t *testing.T) {

	t.Run("AddAndMembership", func(t *testing.T) {
		c, _ := newTestContainer(t)

		c.AddToFavorites("x")
		assert.True(t, c.IsInFavorites("x"))
		assert.False(t, c.IsInFavorites("y"))
	})

	t.Run("AddTwiceYieldsSingleMembership", func(t *testing.T) {
		c, _ := newTestContainer(t)

		c.AddToFavorites("x")
		c.AddToFavorites("x")

		assert.Equal(t, []string{"x"}, c.Favorites())
	})

	t.Run("InsertionOrderPreserved", func(t *testing.T) {
		c, _ := newTestContainer(t)

		c.AddToFavorites("b")
		c.AddToFavorites("a")
		c.AddToFavorites("c")

		assert.Equal(t, []string{"b", "a", "c"}, c.Favorites())
	})

	t.Run("Remove", func(t *testing.T) {
		c, _ := newTestContainer(t)

		c.AddToFavorites("a")
		c.AddToFavorites("b")
		c.RemoveFromFavorites("a")

		assert.Equal(t, []string{"b"}, c.Favorites())
		assert.False(t, c.IsInFavorites("a"))
	})

	t.Run("RemoveNonexistentIsNoop", func(t *testing.T) {
		c, _ := newTestContainer(t)

		c.RemoveFromFavorites("nope")
		assert.Empty(t, c.Favorites())
	})
}

func TestDarkMode(t *testing.T) {
	c, _ := newTestContainer(t)

	assert.False(t, c.DarkMode())
	assert.True(t, c.ToggleDarkMode())
	assert.True(t, c.DarkMode())
	assert.False(t, c.ToggleDarkMode())
}

func TestPersistenceRoundTrip(t *testing.T) {
	dir := t.TempDir()

	store, err := session.NewFileStore(dir)
	require.NoError(t, err)

	c := session.NewContainer(store)
	c.AddToCart(artwork("a1", 100))
	c.AddToCart(artwork("a1", 100))
	c.AddToCart(artwork("a2", 35.5))
	c.AddToFavorites("f1")
	c.AddToFavorites("f2")
	c.ToggleDarkMode()

	// Fresh container over the same store reads everything back verbatim.
	reloaded := session.NewContainer(store)

	assert.Equal(t, c.Cart(), reloaded.Cart())
	assert.Equal(t, c.CartTotal(), reloaded.CartTotal())
	assert.Equal(t, []string{"f1", "f2"}, reloaded.Favorites())
	assert.True(t, reloaded.DarkMode())
}

func TestCorruptRecordIsolation(t *testing.T) {
	dir := t.TempDir()

	store, err := session.NewFileStore(dir)
	require.NoError(t, err)

	c := session.NewContainer(store)
	c.AddToCart(artwork("a1", 100))
	c.AddToFavorites("f1")
	c.ToggleDarkMode()

	// Corrupt only the favorites record.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "favorites.json"), []byte("{not json"), 0o644))

	reloaded := session.NewContainer(store)

	assert.Empty(t, reloaded.Favorites(), "corrupt slice resets to default")
	assert.Len(t, reloaded.Cart(), 1, "cart unaffected")
	assert.True(t, reloaded.DarkMode(), "preference unaffected")

	// The corrupt record was cleared.
	_, statErr := os.Stat(filepath.Join(dir, "favorites.json"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestCatalogSnapshot(t *testing.T) {
	c, _ := newTestContainer(t)

	list := []catalog.Artwork{artwork("a1", 10), artwork("a2", 20)}
	c.SetArtworks(list)

	got := c.Artworks()
	require.Len(t, got, 2)

	// Mutating the input after the swap must not leak into the snapshot.
	list[0].Title = "mutated"
	assert.Equal(t, "Untitled a1", c.Artworks()[0].Title)
}
