package site

import (
	"net/http"

	"gallery-app/database"
	"gallery-app/internal/domain/site"

	"github.com/gin-gonic/gin"
)

// CurrentSettings returns the single settings row, or the defaults when no
// row has been saved yet.
func CurrentSettings() site.Settings {
	var s site.Settings
	if err := database.DB.First(&s).Error; err != nil {
		return site.DefaultSettings()
	}
	return s
}

// PublicSettingsResponse is the safe subset exposed without auth.
type PublicSettingsResponse struct {
	SiteName              string `json:"site_name"`
	SiteDescription       string `json:"site_description"`
	FeaturedArtworksCount int    `json:"featured_artworks_count"`
	EnableSales           bool   `json:"enable_sales"`
	MaintenanceMode       bool   `json:"maintenance_mode"`
}

// GET /site/settings
func GetPublicSettings(c *gin.Context) {
	s := CurrentSettings()
	c.JSON(http.StatusOK, PublicSettingsResponse{
		SiteName:              s.SiteName,
		SiteDescription:       s.SiteDescription,
		FeaturedArtworksCount: s.FeaturedArtworksCount,
		EnableSales:           s.EnableSales,
		MaintenanceMode:       s.MaintenanceMode,
	})
}
