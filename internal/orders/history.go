package orders

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/vestia-market/vestia-cli/internal/domain"
)

// Role selects which side of the order history to aggregate.
type Role string

const (
	RolePurchases Role = "purchases"
	RoleSales     Role = "sales"
)

func (r Role) path() string {
	if r == RoleSales {
		return "/orders/my-sales"
	}
	return "/orders/my-purchases"
}

// fanOutLimit bounds how many per-order detail pipelines run at once.
const fanOutLimit = 8

// History fetches the order summaries for the role, then resolves each one
// into an OrderRecord: the full order first, then the referenced product.
// Items resolve concurrently against each other, but the two fetches of one
// item stay sequential because the product id only exists on the full order.
//
// Failure of either fetch degrades that item to its summary; siblings and
// the call itself are unaffected. The output always has one record per
// summary, in summary order, whatever order the fetches complete in.
func (s *Service) History(ctx context.Context, role Role) ([]domain.OrderRecord, error) {
	var summaries []domain.Order
	if err := s.client.Get(ctx, role.path(), nil, &summaries); err != nil {
		return nil, err
	}

	records := make([]domain.OrderRecord, len(summaries))

	g := new(errgroup.Group)
	g.SetLimit(fanOutLimit)
	for i, summary := range summaries {
		g.Go(func() error {
			records[i] = s.resolve(ctx, summary)
			return nil
		})
	}
	_ = g.Wait()

	s.logger.Info("order history aggregated", "role", string(role), "orders", len(records))
	return records, nil
}

// Sales is the seller view: the aggregated records plus the statistics fold.
func (s *Service) Sales(ctx context.Context) ([]domain.OrderRecord, domain.SalesStatistics, error) {
	records, err := s.History(ctx, RoleSales)
	if err != nil {
		return nil, domain.SalesStatistics{}, err
	}
	return records, domain.ComputeSalesStatistics(records), nil
}

// Purchases is the buyer view.
func (s *Service) Purchases(ctx context.Context) ([]domain.OrderRecord, error) {
	return s.History(ctx, RolePurchases)
}

func (s *Service) resolve(ctx context.Context, summary domain.Order) domain.OrderRecord {
	var full domain.Order
	if err := s.client.Get(ctx, "/orders/"+summary.ID, nil, &full); err != nil {
		s.logger.Warn("order detail fetch failed, keeping summary", "order_id", summary.ID, "error", err)
		return domain.OrderRecord{Order: summary}
	}

	var product domain.Product
	if err := s.client.Get(ctx, "/products/"+full.ProductID, nil, &product); err != nil {
		s.logger.Warn("product fetch failed, keeping summary", "order_id", summary.ID, "product_id", full.ProductID, "error", err)
		return domain.OrderRecord{Order: summary}
	}

	return domain.OrderRecord{Order: full, Product: &product}
}
