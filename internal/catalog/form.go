package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/vestia-market/vestia-cli/internal/domain"
)

// ProductForm is the statically typed create/update form. Validation runs
// before any network call; a failing form blocks the call entirely.
type ProductForm struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  string          `json:"category_id"`
	Stock       int             `json:"stock"`
	Color       string          `json:"color,omitempty"`
	Size        string          `json:"size,omitempty"`
	ImageURL    string          `json:"image_url,omitempty"`
}

func (f ProductForm) Validate() error {
	if f.Name == "" {
		return &domain.ValidationError{Field: "name", Message: "is required"}
	}
	if f.Description == "" {
		return &domain.ValidationError{Field: "description", Message: "is required"}
	}
	if f.CategoryID == "" {
		return &domain.ValidationError{Field: "category_id", Message: "is required"}
	}
	if !f.Price.IsPositive() {
		return &domain.ValidationError{Field: "price", Message: "must be greater than zero"}
	}
	if f.Stock < 0 {
		return &domain.ValidationError{Field: "stock", Message: "must not be negative"}
	}
	return nil
}
