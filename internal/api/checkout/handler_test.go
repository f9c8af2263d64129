package checkout_test

import (
	"testing"

	"gallery-app/internal/api/checkout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLineItems(t *testing.T) {

	t.Run("PriceConvertedToCents", func(t *testing.T) {
		items := checkout.BuildLineItems([]checkout.CheckoutItem{
			{Title: "Sunset", Artist: "A. Painter", Price: 149.99, Quantity: 2},
		})

		require.Len(t, items, 1)
		assert.Equal(t, int64(14999), *items[0].PriceData.UnitAmount)
		assert.Equal(t, int64(2), *items[0].Quantity)
		assert.Equal(t, "usd", *items[0].PriceData.Currency)
		assert.Equal(t, "Sunset", *items[0].PriceData.ProductData.Name)
	})

	t.Run("FractionalCentsRounded", func(t *testing.T) {
		items := checkout.BuildLineItems([]checkout.CheckoutItem{
			{Title: "Study", Artist: "A. Painter", Price: 10.555, Quantity: 1},
		})

		require.Len(t, items, 1)
		assert.Equal(t, int64(1056), *items[0].PriceData.UnitAmount)
	})

	t.Run("ZeroQuantityDefaultsToOne", func(t *testing.T) {
		items := checkout.BuildLineItems([]checkout.CheckoutItem{
			{Title: "Sketch", Artist: "A. Painter", Price: 20},
		})

		require.Len(t, items, 1)
		assert.Equal(t, int64(1), *items[0].Quantity)
	})

	t.Run("AbsoluteImageURLAttached", func(t *testing.T) {
		items := checkout.BuildLineItems([]checkout.CheckoutItem{
			{Title: "A", Artist: "X", Price: 1, ImageURL: "https://cdn.example.com/a.jpg"},
			{Title: "B", Artist: "X", Price: 1, ImageURL: "http://cdn.example.com/b.jpg"},
		})

		require.Len(t, items, 2)
		require.Len(t, items[0].PriceData.ProductData.Images, 1)
		assert.Equal(t, "https://cdn.example.com/a.jpg", *items[0].PriceData.ProductData.Images[0])
		require.Len(t, items[1].PriceData.ProductData.Images, 1)
	})

	t.Run("RelativeOrMissingImageURLSkipped", func(t *testing.T) {
		items := checkout.BuildLineItems([]checkout.CheckoutItem{
			{Title: "A", Artist: "X", Price: 1, ImageURL: "/uploads/a.jpg"},
			{Title: "B", Artist: "X", Price: 1},
		})

		require.Len(t, items, 2)
		assert.Nil(t, items[0].PriceData.ProductData.Images)
		assert.Nil(t, items[1].PriceData.ProductData.Images)
	})
}

func TestItemDescription(t *testing.T) {
	assert.Equal(t, "A. Painter - 50x70cm", checkout.ItemDescription(checkout.CheckoutItem{
		Artist: "A. Painter", Dimensions: "50x70cm",
	}))
	assert.Equal(t, "A. Painter", checkout.ItemDescription(checkout.CheckoutItem{
		Artist: "A. Painter",
	}))
}
