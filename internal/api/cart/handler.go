package cart

import (
	"net/http"

	"gallery-app/database"
	"gallery-app/internal/domain/catalog"
	"gallery-app/internal/session"

	"github.com/gin-gonic/gin"
)

// Sessions is assigned once at startup, the same way database.DB is.
var Sessions *session.Manager

func container(c *gin.Context) *session.Container {
	return Sessions.Get(c.GetString("session_id"))
}

type stateResponse struct {
	Cart      []session.CartItem `json:"cart"`
	CartTotal float64            `json:"cart_total"`
	Favorites []string           `json:"favorites"`
	DarkMode  bool               `json:"dark_mode"`
}

// GET /cart
func GetCart(c *gin.Context) {
	ctr := container(c)
	c.JSON(http.StatusOK, stateResponse{
		Cart:      ctr.Cart(),
		CartTotal: ctr.CartTotal(),
		Favorites: ctr.Favorites(),
		DarkMode:  ctr.DarkMode(),
	})
}

// POST /cart/items  {"artwork_id": "..."}
// Adds one unit; a repeated id increments the existing entry.
func AddCartItem(c *gin.Context) {
	var body struct {
		ArtworkID string `json:"artwork_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid artwork_id"})
		return
	}

	var artwork catalog.Artwork
	if err := database.DB.Where("id = ?", body.ArtworkID).First(&artwork).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}

	ctr := container(c)
	ctr.AddToCart(artwork)

	c.JSON(http.StatusOK, gin.H{
		"cart":       ctr.Cart(),
		"cart_total": ctr.CartTotal(),
	})
}

// DELETE /cart/items/:id
// Removing an id that is not in the cart is a no-op.
func RemoveCartItem(c *gin.Context) {
	ctr := container(c)
	ctr.RemoveFromCart(c.Param("id"))

	c.JSON(http.StatusOK, gin.H{
		"cart":       ctr.Cart(),
		"cart_total": ctr.CartTotal(),
	})
}

// PUT /cart/items/:id  {"quantity": N}
// Quantity is clamped to >= 1 here; the container stores it verbatim.
func UpdateCartItem(c *gin.Context) {
	var body struct {
		Quantity int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid quantity"})
		return
	}

	quantity := body.Quantity
	if quantity < 1 {
		quantity = 1
	}

	ctr := container(c)
	ctr.UpdateCartItemQuantity(c.Param("id"), quantity)

	c.JSON(http.StatusOK, gin.H{
		"cart":       ctr.Cart(),
		"cart_total": ctr.CartTotal(),
	})
}

// GET /favorites
func GetFavorites(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"favorites": container(c).Favorites()})
}

// POST /favorites/:id — duplicate adds are silent no-ops.
func AddFavorite(c *gin.Context) {
	ctr := container(c)
	ctr.AddToFavorites(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"favorites": ctr.Favorites()})
}

// DELETE /favorites/:id
func RemoveFavorite(c *gin.Context) {
	ctr := container(c)
	ctr.RemoveFromFavorites(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"favorites": ctr.Favorites()})
}

// GET /preferences
func GetPreferences(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"dark_mode": container(c).DarkMode()})
}

// POST /preferences/dark-mode
func ToggleDarkMode(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"dark_mode": container(c).ToggleDarkMode()})
}
