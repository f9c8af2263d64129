package session

import (
	"encoding/json"
	"sync"

	"gallery-app/internal/domain/catalog"
)

// CartItem is an artwork snapshot paired with a purchase quantity.
// Each artwork id appears at most once in a cart.
type CartItem struct {
	Artwork  catalog.Artwork `json:"artwork"`
	Quantity int             `json:"quantity"`
}

// Container is the single source of truth for one visitor's cart,
// favorites and dark-mode preference, plus the most recently fetched
// catalog snapshot. Every mutation persists the affected record and
// computes its result from the current state under the lock, never from
// a snapshot captured earlier.
type Container struct {
	mu    sync.Mutex
	store Store

	darkMode  bool
	cart      []CartItem
	favorites []string
	artworks  []catalog.Artwork
}

// NewContainer loads the persisted records from store. A corrupt record
// resets that slice to its empty default and clears the record; the other
// records are unaffected.
func NewContainer(store Store) *Container {
	c := &Container{store: store}

	if raw, err := store.Load(recordDarkMode); err == nil && raw != nil {
		var v bool
		if json.Unmarshal(raw, &v) != nil {
			_ = store.Clear(recordDarkMode)
		} else {
			c.darkMode = v
		}
	}

	if raw, err := store.Load(recordCart); err == nil && raw != nil {
		var v []CartItem
		if json.Unmarshal(raw, &v) != nil {
			_ = store.Clear(recordCart)
		} else {
			c.cart = v
		}
	}

	if raw, err := store.Load(recordFavorites); err == nil && raw != nil {
		var v []string
		if json.Unmarshal(raw, &v) != nil {
			_ = store.Clear(recordFavorites)
		} else {
			c.favorites = v
		}
	}

	return c
}

func (c *Container) persist(record string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = c.store.Save(record, data)
}

// ToggleDarkMode flips the preference and persists the new value.
func (c *Container) ToggleDarkMode() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.darkMode = !c.darkMode
	c.persist(recordDarkMode, c.darkMode)
	return c.darkMode
}

func (c *Container) DarkMode() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.darkMode
}

// AddToCart increments the quantity of an existing entry for the same
// artwork id, or appends a new entry with quantity 1. Each call adds
// exactly one unit.
func (c *Container) AddToCart(a catalog.Artwork) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.cart {
		if c.cart[i].Artwork.ID == a.ID {
			q := c.cart[i].Quantity
			if q == 0 {
				q = 1
			}
			c.cart[i].Quantity = q + 1
			c.persist(recordCart, c.cart)
			return
		}
	}

	c.cart = append(c.cart, CartItem{Artwork: a, Quantity: 1})
	c.persist(recordCart, c.cart)
}

// RemoveFromCart removes the entry with the given artwork id.
// Removing an absent id is a no-op, not an error.
func (c *Container) RemoveFromCart(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.cart[:0]
	for _, item := range c.cart {
		if item.Artwork.ID != id {
			kept = append(kept, item)
		}
	}
	c.cart = kept
	c.persist(recordCart, c.cart)
}

// UpdateCartItemQuantity sets the entry's quantity verbatim. Callers are
// expected to enforce a minimum of 1; the container does not clamp.
// No-op when the id is absent.
func (c *Container) UpdateCartItemQuantity(id string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.cart {
		if c.cart[i].Artwork.ID == id {
			c.cart[i].Quantity = quantity
			c.persist(recordCart, c.cart)
			return
		}
	}
}

func (c *Container) IsInCart(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range c.cart {
		if item.Artwork.ID == id {
			return true
		}
	}
	return false
}

// CartTotal is always recomputed from the current entries: Σ price×quantity,
// an unset quantity counting as 1.
func (c *Container) CartTotal() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, item := range c.cart {
		q := item.Quantity
		if q == 0 {
			q = 1
		}
		total += item.Artwork.Price * float64(q)
	}
	return total
}

func (c *Container) Cart() []CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]CartItem, len(c.cart))
	copy(out, c.cart)
	return out
}

// AddToFavorites inserts the id, preserving insertion order.
// Adding an id already present is a no-op.
func (c *Container) AddToFavorites(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, f := range c.favorites {
		if f == id {
			return
		}
	}
	c.favorites = append(c.favorites, id)
	c.persist(recordFavorites, c.favorites)
}

func (c *Container) RemoveFromFavorites(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.favorites[:0]
	for _, f := range c.favorites {
		if f != id {
			kept = append(kept, f)
		}
	}
	c.favorites = kept
	c.persist(recordFavorites, c.favorites)
}

func (c *Container) IsInFavorites(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, f := range c.favorites {
		if f == id {
			return true
		}
	}
	return false
}

func (c *Container) Favorites() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.favorites))
	copy(out, c.favorites)
	return out
}

// SetArtworks atomically replaces the cached catalog snapshot.
// Readers never observe a partially updated list.
func (c *Container) SetArtworks(list []catalog.Artwork) {
	snapshot := make([]catalog.Artwork, len(list))
	copy(snapshot, list)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.artworks = snapshot
}

func (c *Container) Artworks() []catalog.Artwork {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]catalog.Artwork, len(c.artworks))
	copy(out, c.artworks)
	return out
}
