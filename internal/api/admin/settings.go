package admin

import (
	"net/http"

	"gallery-app/database"
	"gallery-app/internal/domain/site"

	"github.com/gin-gonic/gin"
)

// GET /admin/settings
func GetSettings(c *gin.Context) {
	var s site.Settings
	if err := database.DB.First(&s).Error; err != nil {
		c.JSON(http.StatusOK, site.DefaultSettings())
		return
	}
	c.JSON(http.StatusOK, s)
}

// PUT /admin/settings
// Upserts the single settings row.
func UpdateSettings(c *gin.Context) {
	var input struct {
		SiteName               string `json:"site_name" binding:"required"`
		SiteDescription        string `json:"site_description"`
		ContactEmail           string `json:"contact_email"`
		FeaturedArtworksCount  int    `json:"featured_artworks_count"`
		EnableSales            *bool  `json:"enable_sales"`
		EnableUserRegistration *bool  `json:"enable_user_registration"`
		MaintenanceMode        *bool  `json:"maintenance_mode"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.FeaturedArtworksCount <= 0 {
		input.FeaturedArtworksCount = site.DefaultSettings().FeaturedArtworksCount
	}

	var s site.Settings
	if err := database.DB.First(&s).Error; err != nil {
		s = site.DefaultSettings()
	}

	s.SiteName = input.SiteName
	s.SiteDescription = input.SiteDescription
	s.ContactEmail = input.ContactEmail
	s.FeaturedArtworksCount = input.FeaturedArtworksCount
	if input.EnableSales != nil {
		s.EnableSales = *input.EnableSales
	}
	if input.EnableUserRegistration != nil {
		s.EnableUserRegistration = *input.EnableUserRegistration
	}
	if input.MaintenanceMode != nil {
		s.MaintenanceMode = *input.MaintenanceMode
	}

	if err := database.DB.Save(&s).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, s)
}
