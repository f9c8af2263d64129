package artworks

import "gallery-app/internal/domain/catalog"

// ArtworkDTO is the catalog row as the storefront consumes it. ImageURL is
// always populated: artworks without a stored image get the placeholder.
type ArtworkDTO struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Artist      string  `json:"artist"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	Dimensions  string  `json:"dimensions,omitempty"`
	Medium      string  `json:"medium,omitempty"`
	Year        string  `json:"year,omitempty"`
	Type        string  `json:"type,omitempty"`
	Featured    bool    `json:"featured"`
	Quantity    int     `json:"quantity"`
}

func BuildArtworkDTO(a catalog.Artwork) ArtworkDTO {
	return ArtworkDTO{
		ID:          a.ID,
		Title:       a.Title,
		Artist:      a.Artist,
		Description: a.Description,
		Price:       a.Price,
		ImageURL:    a.ImageOrPlaceholder(),
		Dimensions:  a.Dimensions,
		Medium:      a.Medium,
		Year:        a.Year,
		Type:        a.Type,
		Featured:    a.Featured,
		Quantity:    a.Quantity,
	}
}

func BuildArtworkDTOs(rows []catalog.Artwork) []ArtworkDTO {
	out := make([]ArtworkDTO, 0, len(rows))
	for _, a := range rows {
		out = append(out, BuildArtworkDTO(a))
	}
	return out
}
