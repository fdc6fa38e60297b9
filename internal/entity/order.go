package entity

import "time"

// Order status values. There is no cancelled state; Delivered is terminal.
const (
	StatusProcessing = "Processing"
	StatusShipped    = "Shipped"
	StatusDelivered  = "Delivered"
)

type ShippingInfo struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	PinCode int    `json:"pinCode"`
}

// OrderItem snapshots the product's name, photo and price at purchase time,
// so later product edits do not rewrite order history.
type OrderItem struct {
	ProductID int     `json:"productId"`
	Name      string  `json:"name"`
	Photo     string  `json:"photo"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type Order struct {
	ID              int          `json:"_id"`
	ShippingInfo    ShippingInfo `json:"shippingInfo"`
	UserID          string       `json:"user"`
	Subtotal        float64      `json:"subtotal"`
	Tax             float64      `json:"tax"`
	ShippingCharges float64      `json:"shippingCharges"`
	Discount        float64      `json:"discount"`
	Total           float64      `json:"total"`
	Status          string       `json:"status"`
	Items           []OrderItem  `json:"orderItems"`
	CreatedAt       time.Time    `json:"createdAt"`
}

// NextStatus advances an order one step: Processing to Shipped, Shipped to
// Delivered. Anything else, Delivered included, clamps to Delivered.
func NextStatus(status string) string {
	switch status {
	case StatusProcessing:
		return StatusShipped
	case StatusShipped:
		return StatusDelivered
	default:
		return StatusDelivered
	}
}

// OrderSample is the slim projection the chart queries fetch: just enough to
// bucket an order by month and sum its money fields.
type OrderSample struct {
	CreatedAt time.Time
	Total     float64
	Discount  float64
}
