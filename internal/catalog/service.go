package catalog

import (
	"context"
	"io"
	"log/slog"

	"github.com/vestia-market/vestia-cli/internal/api"
	"github.com/vestia-market/vestia-cli/internal/domain"
)

// Service exposes the product catalog: browsing with filters, the seller's
// own listings, and product CRUD.
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

func (s *Service) Categories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := s.client.Get(ctx, "/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Search fetches products matching the server-side filter fields, then
// narrows by the local search term.
func (s *Service) Search(ctx context.Context, filter Filter) ([]domain.Product, error) {
	var products []domain.Product
	if err := s.client.Get(ctx, "/products", filter.Query(), &products); err != nil {
		return nil, err
	}

	matched := filter.Narrow(products)
	s.logger.Info("products fetched", "returned", len(products), "matched", len(matched))
	return matched, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	var product domain.Product
	if err := s.client.Get(ctx, "/products/"+id, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Mine returns the seller's own listings wrapped in a ProductList, which
// owns the two-phase delete flow.
func (s *Service) Mine(ctx context.Context) (*ProductList, error) {
	var products []domain.Product
	if err := s.client.Get(ctx, "/products/my-products", nil, &products); err != nil {
		return nil, err
	}
	return &ProductList{svc: s, products: products}, nil
}

func (s *Service) Create(ctx context.Context, form ProductForm) (*domain.Product, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	var product domain.Product
	if err := s.client.Post(ctx, "/products", form, &product); err != nil {
		return nil, err
	}
	s.logger.Info("product created", "product_id", product.ID, "name", product.Name)
	return &product, nil
}

func (s *Service) Update(ctx context.Context, id string, form ProductForm) (*domain.Product, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	var product domain.Product
	if err := s.client.Put(ctx, "/products/"+id, form, &product); err != nil {
		return nil, err
	}
	s.logger.Info("product updated", "product_id", id)
	return &product, nil
}

// UploadImage validates the file locally, uploads it and returns the image
// URL to include in a later create or update call.
func (s *Service) UploadImage(ctx context.Context, filename string, content io.Reader, size int64) (string, error) {
	if err := ValidateImage(filename, size); err != nil {
		return "", err
	}

	imageURL, err := s.client.UploadImage(ctx, filename, content)
	if err != nil {
		return "", err
	}
	s.logger.Info("image uploaded", "filename", filename, "image_url", imageURL)
	return imageURL, nil
}
