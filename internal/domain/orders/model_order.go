package orders

import "time"

// Order is written by the Stripe webhook once a checkout session completes.
// The storefront itself never mutates orders.
type Order struct {
	ID              uint   `gorm:"primaryKey"`
	StripeSessionID string `gorm:"uniqueIndex"`
	CustomerEmail   string
	AmountUSD       float64
	Currency        string
	Status          string

	Items []OrderItem `gorm:"constraint:OnDelete:CASCADE;"`

	CreatedAt time.Time
}

type OrderItem struct {
	ID       uint `gorm:"primaryKey"`
	OrderID  uint `gorm:"index"`
	Title    string
	Artist   string
	UnitUSD  float64
	Quantity int
}
