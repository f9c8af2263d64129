package admin

import (
	"net/http"

	"gallery-app/database"
	"gallery-app/internal/domain/catalog"

	"github.com/gin-gonic/gin"
)

type artworkInput struct {
	Title       string  `json:"title" binding:"required"`
	Artist      string  `json:"artist" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
	Dimensions  string  `json:"dimensions"`
	Medium      string  `json:"medium"`
	Year        string  `json:"year"`
	Type        string  `json:"type"`
	Featured    bool    `json:"featured"`
	Quantity    *int    `json:"quantity"`
}

// POST /admin/artworks
func CreateArtwork(c *gin.Context) {
	var input artworkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must not be negative"})
		return
	}

	quantity := 1
	if input.Quantity != nil && *input.Quantity >= 0 {
		quantity = *input.Quantity
	}

	artwork := catalog.Artwork{
		Title:       input.Title,
		Artist:      input.Artist,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		Dimensions:  input.Dimensions,
		Medium:      input.Medium,
		Year:        input.Year,
		Type:        input.Type,
		Featured:    input.Featured,
		Quantity:    quantity,
	}

	if err := database.DB.Create(&artwork).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create artwork", "details": err.Error()})
		return
	}

	notifyCatalogChanged()
	c.JSON(http.StatusOK, artwork)
}

// PUT /admin/artworks/:id
func UpdateArtwork(c *gin.Context) {
	id := c.Param("id")

	var artwork catalog.Artwork
	if err := database.DB.Where("id = ?", id).First(&artwork).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}

	var input artworkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must not be negative"})
		return
	}

	artwork.Title = input.Title
	artwork.Artist = input.Artist
	artwork.Description = input.Description
	artwork.Price = input.Price
	artwork.ImageURL = input.ImageURL
	artwork.Dimensions = input.Dimensions
	artwork.Medium = input.Medium
	artwork.Year = input.Year
	artwork.Type = input.Type
	artwork.Featured = input.Featured
	if input.Quantity != nil && *input.Quantity >= 0 {
		artwork.Quantity = *input.Quantity
	}

	if err := database.DB.Save(&artwork).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update artwork", "details": err.Error()})
		return
	}

	notifyCatalogChanged()
	c.JSON(http.StatusOK, artwork)
}

// DELETE /admin/artworks/:id
func DeleteArtwork(c *gin.Context) {
	id := c.Param("id")

	res := database.DB.Where("id = ?", id).Delete(&catalog.Artwork{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete artwork"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}

	notifyCatalogChanged()
	c.JSON(http.StatusOK, gin.H{"message": "Artwork deleted"})
}
