package artworks_test

import (
	"testing"

	"gallery-app/internal/api/artworks"
	"gallery-app/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
)

func TestBuildArtworkDTO(t *testing.T) {

	t.Run("MissingImageFallsBackToPlaceholder", func(t *testing.T) {
		dto := artworks.BuildArtworkDTO(catalog.Artwork{ID: "a1", Title: "Untitled"})
		assert.Equal(t, catalog.PlaceholderImageURL, dto.ImageURL)
	})

	t.Run("StoredImageKept", func(t *testing.T) {
		dto := artworks.BuildArtworkDTO(catalog.Artwork{
			ID:       "a1",
			ImageURL: "https://cdn.example.com/a1.jpg",
		})
		assert.Equal(t, "https://cdn.example.com/a1.jpg", dto.ImageURL)
	})

	t.Run("FieldsCarriedOver", func(t *testing.T) {
		dto := artworks.BuildArtworkDTO(catalog.Artwork{
			ID:       "a1",
			Title:    "Sunset",
			Artist:   "A. Painter",
			Price:    149.99,
			Type:     "painting",
			Featured: true,
			Quantity: 3,
		})

		assert.Equal(t, "Sunset", dto.Title)
		assert.Equal(t, 149.99, dto.Price)
		assert.Equal(t, "painting", dto.Type)
		assert.True(t, dto.Featured)
		assert.Equal(t, 3, dto.Quantity)
	})
}

func TestBuildArtworkDTOs(t *testing.T) {
	out := artworks.BuildArtworkDTOs(nil)
	assert.NotNil(t, out, "empty catalog serializes as [] not null")
	assert.Empty(t, out)
}
