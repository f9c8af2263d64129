package stripewebhooks

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"gallery-app/config"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/webhook"
)

func StripeWebhook(c *gin.Context) {
	// Stripe key is required for the follow-up session fetch.
	stripe.Key = config.STRIPE_SECRET_KEY
	if stripe.Key == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "STRIPE_SECRET_KEY not configured"})
		return
	}

	endpointSecret := config.STRIPE_WEBHOOK_SECRET
	if endpointSecret == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "STRIPE_WEBHOOK_SECRET not configured"})
		return
	}

	payload, err := readStripeBody(c, 65536)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Error reading request body"})
		return
	}

	event, err := webhook.ConstructEventWithOptions(
		payload,
		c.GetHeader("Stripe-Signature"),
		endpointSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true},
	)
	if err != nil {
		fmt.Println("❌ Stripe signature verification failed:", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Signature verification failed"})
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse session"})
			return
		}
		if err := handleCheckoutSessionCompleted(&session); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "received"})
		return

	default:
		// Acknowledge unknown events to avoid retries
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}
}

func readStripeBody(c *gin.Context, maxBytes int64) ([]byte, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
	return io.ReadAll(c.Request.Body)
}
