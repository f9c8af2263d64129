package catalog

import "time"

// PlaceholderImageURL is substituted at response-mapping time when an
// artwork has no stored image. It is never written to the database.
const PlaceholderImageURL = "https://via.placeholder.com/300x300?text=No+Image"

type Artwork struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Title       string `gorm:"not null" json:"title"`
	Artist      string `gorm:"not null" json:"artist"`
	Description string `json:"description"`

	Price    float64 `gorm:"not null;default:0" json:"price"`
	ImageURL string  `gorm:"column:image_url" json:"image_url,omitempty"`

	Dimensions string `json:"dimensions,omitempty"`
	Medium     string `json:"medium,omitempty"`
	Year       string `json:"year,omitempty"`
	Type       string `gorm:"index" json:"type,omitempty"`

	Featured bool `gorm:"not null;default:false;index" json:"featured"`
	Quantity int  `gorm:"not null;default:1" json:"quantity"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ImageOrPlaceholder returns the stored image URL, falling back to the
// shared placeholder for artworks without one.
func (a Artwork) ImageOrPlaceholder() string {
	if a.ImageURL == "" {
		return PlaceholderImageURL
	}
	return a.ImageURL
}
