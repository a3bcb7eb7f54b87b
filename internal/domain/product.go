package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	CategoryID  string          `json:"category_id"`
	Color       string          `json:"color,omitempty"`
	Size        string          `json:"size,omitempty"`
	ImageURL    string          `json:"image_url,omitempty"`
	SellerID    string          `json:"seller_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

type Availability string

const (
	AvailabilityInStock    Availability = "in_stock"
	AvailabilityLowStock   Availability = "low_stock"
	AvailabilityOutOfStock Availability = "out_of_stock"
)

// Availability mirrors the listing badges: fewer than 5 units is low stock.
func (p Product) Availability() Availability {
	switch {
	case p.Stock == 0:
		return AvailabilityOutOfStock
	case p.Stock < 5:
		return AvailabilityLowStock
	default:
		return AvailabilityInStock
	}
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
