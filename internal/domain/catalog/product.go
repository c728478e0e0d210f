package catalog

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shop/storefront/internal/domain/shared/valueobject"
)

// Product is a read-only snapshot of a catalog product as served by the
// backend. The storefront never mutates catalog data in place; admin
// operations go through the API and return fresh snapshots.
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	Image         string          `json:"image"`
	CategoryID    string          `json:"categoryId"`
	SubcategoryID string          `json:"subcategoryId"`
	Stock         int             `json:"stock"`
	Rating        float64         `json:"rating"`
	ReviewCount   int             `json:"reviewCount"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// PriceMoney returns the product price as a Money value
func (p *Product) PriceMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(p.Price)
}

// InStock returns true if the product has stock available.
// This reflects the snapshot taken at hydration time; checkout-time stock
// validation is the backend's responsibility.
func (p *Product) InStock() bool {
	return p.Stock > 0
}
