package domain

import "github.com/shopspring/decimal"

// OrderRecord is an order enriched with the product (and, for a buyer's
// view, the seller) resolved by follow-up fetches. When either fetch fails
// the record degrades to the bare order and Product stays nil. Records are
// computed per fetch, never persisted.
type OrderRecord struct {
	Order
	Product *Product
}

// Detailed reports whether the follow-up fetches resolved for this record.
func (r OrderRecord) Detailed() bool {
	return r.Product != nil
}

// Total is the line total shown next to a record: price times quantity,
// zero when the product did not resolve.
func (r OrderRecord) Total() decimal.Decimal {
	if r.Product == nil {
		return decimal.Zero
	}
	return r.Product.Price.Mul(decimal.NewFromInt(int64(r.Quantity)))
}

type SalesStatistics struct {
	Total     int             `json:"total"`
	Pending   int             `json:"pending"`
	Completed int             `json:"completed"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// ComputeSalesStatistics folds a record list into the seller dashboard
// numbers. Revenue sums price times quantity over every record, cancelled
// orders included: the remote dashboard counts them too, so the client
// reproduces that rather than filtering by status.
func ComputeSalesStatistics(records []OrderRecord) SalesStatistics {
	stats := SalesStatistics{Revenue: decimal.Zero}
	for _, r := range records {
		stats.Total++
		switch r.Status {
		case OrderStatusPending:
			stats.Pending++
		case OrderStatusCompleted:
			stats.Completed++
		}
		stats.Revenue = stats.Revenue.Add(r.Total())
	}
	return stats
}
