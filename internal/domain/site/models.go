package site

import "time"

// Settings is a single-row table. DefaultSettings is served (and seeded)
// until an admin saves the first row.
type Settings struct {
	ID                     uint   `gorm:"primaryKey" json:"-"`
	SiteName               string `gorm:"not null" json:"site_name"`
	SiteDescription        string `json:"site_description"`
	ContactEmail           string `json:"contact_email"`
	FeaturedArtworksCount  int    `gorm:"not null;default:6" json:"featured_artworks_count"`
	EnableSales            bool   `gorm:"not null;default:true" json:"enable_sales"`
	EnableUserRegistration bool   `gorm:"not null;default:true" json:"enable_user_registration"`
	MaintenanceMode        bool   `gorm:"not null;default:false" json:"maintenance_mode"`

	UpdatedAt time.Time `json:"updated_at"`
}

func DefaultSettings() Settings {
	return Settings{
		SiteName:               "Art Gallery",
		SiteDescription:        "Online art gallery and marketplace",
		ContactEmail:           "contact@example.com",
		FeaturedArtworksCount:  6,
		EnableSales:            true,
		EnableUserRegistration: true,
		MaintenanceMode:        false,
	}
}
