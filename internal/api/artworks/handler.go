package artworks

import (
	"net/http"
	"strconv"

	"gallery-app/database"
	siteapi "gallery-app/internal/api/site"
	"gallery-app/internal/domain/catalog"

	"github.com/gin-gonic/gin"
)

// GET /artworks?type=painting
// Full catalog, newest first, optionally filtered by type.
func ListArtworks(c *gin.Context) {
	q := database.DB.Order("created_at DESC")
	if t := c.Query("type"); t != "" {
		q = q.Where("type = ?", t)
	}

	var rows []catalog.Artwork
	if err := q.Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artworks"})
		return
	}

	c.JSON(http.StatusOK, BuildArtworkDTOs(rows))
}

// GET /artworks/featured?limit=N
// Featured rows for the home page, limit defaulting to the site setting.
func ListFeaturedArtworks(c *gin.Context) {
	limit := siteapi.CurrentSettings().FeaturedArtworksCount
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	var rows []catalog.Artwork
	err := database.DB.
		Where("featured = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load featured artworks"})
		return
	}

	c.JSON(http.StatusOK, BuildArtworkDTOs(rows))
}

// GET /artworks/:id
func GetArtworkByID(c *gin.Context) {
	id := c.Param("id")

	var row catalog.Artwork
	if err := database.DB.Where("id = ?", id).First(&row).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}

	c.JSON(http.StatusOK, BuildArtworkDTO(row))
}

// GET /categories
func ListCategories(c *gin.Context) {
	var rows []catalog.Category
	if err := database.DB.Order("name ASC").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load categories"})
		return
	}
	c.JSON(http.StatusOK, rows)
}
