package stripewebhooks

import (
	"errors"
	"fmt"

	"gallery-app/database"
	"gallery-app/internal/domain/orders"

	"github.com/stripe/stripe-go/v75"
	checkoutsession "github.com/stripe/stripe-go/v75/checkout/session"
)

// handleCheckoutSessionCompleted records a paid order for the admin ledger.
// The session id is a unique index, so Stripe retries of the same event
// insert nothing new.
func handleCheckoutSessionCompleted(session *stripe.CheckoutSession) error {
	// Fetch the full session with line items expanded
	fullSession, err := checkoutsession.Get(session.ID, &stripe.CheckoutSessionParams{
		Params: stripe.Params{
			Expand: []*string{
				stripe.String("line_items"),
				stripe.String("customer_details"),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to fetch expanded checkout session: %w", err)
	}

	if fullSession.PaymentStatus != stripe.CheckoutSessionPaymentStatusPaid {
		return errors.New("checkout session not paid")
	}

	var existing orders.Order
	if err := database.DB.Where("stripe_session_id = ?", fullSession.ID).First(&existing).Error; err == nil {
		// Already recorded; acknowledge the retry.
		return nil
	}

	order := orders.Order{
		StripeSessionID: fullSession.ID,
		AmountUSD:       float64(fullSession.AmountTotal) / 100,
		Currency:        string(fullSession.Currency),
		Status:          "paid",
	}
	if fullSession.CustomerDetails != nil {
		order.CustomerEmail = fullSession.CustomerDetails.Email
	}

	if fullSession.LineItems != nil {
		for _, li := range fullSession.LineItems.Data {
			item := orders.OrderItem{
				Title:    li.Description,
				Quantity: int(li.Quantity),
			}
			if li.Price != nil {
				item.UnitUSD = float64(li.Price.UnitAmount) / 100
			}
			order.Items = append(order.Items, item)
		}
	}

	if err := database.DB.Create(&order).Error; err != nil {
		return fmt.Errorf("failed to record order: %w", err)
	}

	return nil
}
