package order

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shop/storefront/internal/domain/shared/valueobject"
)

// Status represents the lifecycle state of an order.
// Transitions are owned by the backend; the storefront only requests them.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusProcessing Status = "PROCESSING"
	StatusShipped    Status = "SHIPPED"
	StatusDelivered  Status = "DELIVERED"
	StatusCancelled  Status = "CANCELLED"
)

// Valid reports whether the status is one the backend accepts
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Item is one product line within a placed order
type Item struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// Order is a cash-on-delivery order as reported by the backend
type Order struct {
	ID             string          `json:"id"`
	UserID         string          `json:"userId"`
	Items          []Item          `json:"items"`
	Address        string          `json:"address"`
	PhoneNumber    string          `json:"phoneNumber"`
	Notes          string          `json:"notes,omitempty"`
	Status         Status          `json:"status"`
	TrackingNumber string          `json:"trackingNumber,omitempty"`
	Total          decimal.Decimal `json:"total"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// TotalMoney returns the order total as a Money value
func (o *Order) TotalMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(o.Total)
}
