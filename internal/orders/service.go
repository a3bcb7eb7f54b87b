package orders

import (
	"context"
	"log/slog"

	"github.com/vestia-market/vestia-cli/internal/api"
	"github.com/vestia-market/vestia-cli/internal/domain"
)

// Service exposes purchasing and the order history views.
type Service struct {
	client *api.Client
	logger *slog.Logger
}

func NewService(client *api.Client, logger *slog.Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

type purchaseRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Purchase places an order for the product. The stock check is best-effort
// against the stock the client last saw; the API enforces the real limit.
// A failing check blocks the call entirely.
func (s *Service) Purchase(ctx context.Context, product *domain.Product, quantity int) (*domain.Order, error) {
	if quantity <= 0 {
		return nil, &domain.ValidationError{Field: "quantity", Message: "must be greater than zero"}
	}
	if quantity > product.Stock {
		return nil, &domain.ValidationError{Field: "quantity", Message: "not enough stock available"}
	}

	var order domain.Order
	req := purchaseRequest{ProductID: product.ID, Quantity: quantity}
	if err := s.client.Post(ctx, "/orders", req, &order); err != nil {
		return nil, err
	}

	s.logger.Info("purchase placed", "order_id", order.ID, "product_id", product.ID, "quantity", quantity)
	return &order, nil
}
