package checkout

import (
	"fmt"
	"math"
	"net/http"
	"strings"

	"gallery-app/config"
	siteapi "gallery-app/internal/api/site"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	checkoutsession "github.com/stripe/stripe-go/v75/checkout/session"
)

// CheckoutItem is one cart entry as submitted by the frontend.
type CheckoutItem struct {
	Title      string  `json:"title"`
	Artist     string  `json:"artist"`
	Dimensions string  `json:"dimensions"`
	ImageURL   string  `json:"imageUrl"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

// POST /api/create-checkout-session
// Returns {"url": ...} to the hosted payment page, or {"error": ...}.
// The visitor's cart state is never touched here: on failure the cart is
// left intact so checkout can be retried.
func CreateCheckoutSession(c *gin.Context) {
	if !siteapi.CurrentSettings().EnableSales {
		c.JSON(http.StatusForbidden, gin.H{"error": "Sales are currently disabled"})
		return
	}

	var body struct {
		Cart []CheckoutItem `json:"cart"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || len(body.Cart) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart data"})
		return
	}

	stripe.Key = config.STRIPE_SECRET_KEY
	if stripe.Key == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stripe configuration error. Please check server logs."})
		return
	}

	appURL := config.APP_URL

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          BuildLineItems(body.Cart),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(appURL + "/cart?success=true"),
		CancelURL:          stripe.String(appURL + "/cart?canceled=true"),
	}

	s, err := checkoutsession.New(params)
	if err != nil {
		fmt.Println("❌ Stripe API error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create checkout session", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": s.URL})
}

// BuildLineItems converts cart entries to Stripe line items: prices in
// minor units, quantity defaulting to 1, and an image attached only when
// the URL is absolute http(s).
func BuildLineItems(items []CheckoutItem) []*stripe.CheckoutSessionLineItemParams {
	out := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))

	for _, item := range items {
		product := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name:        stripe.String(item.Title),
			Description: stripe.String(ItemDescription(item)),
		}

		if strings.HasPrefix(item.ImageURL, "http://") || strings.HasPrefix(item.ImageURL, "https://") {
			product.Images = stripe.StringSlice([]string{item.ImageURL})
		}

		quantity := item.Quantity
		if quantity == 0 {
			quantity = 1
		}

		out = append(out, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String("usd"),
				ProductData: product,
				UnitAmount:  stripe.Int64(int64(math.Round(item.Price * 100))),
			},
			Quantity: stripe.Int64(int64(quantity)),
		})
	}

	return out
}

// ItemDescription is "artist - dimensions", or just the artist when the
// artwork has no dimensions.
func ItemDescription(item CheckoutItem) string {
	if item.Dimensions == "" {
		return item.Artist
	}
	return item.Artist + " - " + item.Dimensions
}
