package catalog

import (
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vestia-market/vestia-cli/internal/domain"
)

// Filter is the optional-criteria record behind the product listing. Every
// field defaults to empty. Search is deliberately absent from Query: the
// API never sees it, the match runs locally over whatever the server
// returned.
type Filter struct {
	Search     string
	CategoryID string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Color      string
	Size       string
}

// Query serializes every populated field except Search into query
// parameters.
func (f Filter) Query() url.Values {
	q := url.Values{}
	if f.CategoryID != "" {
		q.Set("category_id", f.CategoryID)
	}
	if f.MinPrice != nil {
		q.Set("min_price", f.MinPrice.String())
	}
	if f.MaxPrice != nil {
		q.Set("max_price", f.MaxPrice.String())
	}
	if f.Color != "" {
		q.Set("color", f.Color)
	}
	if f.Size != "" {
		q.Set("size", f.Size)
	}
	return q
}

// Narrow applies the local search term: case-insensitive substring match on
// the product name. An empty term passes everything through.
func (f Filter) Narrow(products []domain.Product) []domain.Product {
	if f.Search == "" {
		return products
	}
	term := strings.ToLower(f.Search)
	matched := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), term) {
			matched = append(matched, p)
		}
	}
	return matched
}

// Clear resets every field to empty.
func (f *Filter) Clear() {
	*f = Filter{}
}
