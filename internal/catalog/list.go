package catalog

import (
	"context"
	"errors"

	"github.com/vestia-market/vestia-cli/internal/domain"
)

var (
	ErrNotInList      = errors.New("product not in list")
	ErrNoStagedDelete = errors.New("no deletion staged")
)

// ProductList is the view state over a seller's fetched listings. Deletion
// is two-phase: StageDelete marks a candidate, ConfirmDelete performs the
// remote call and only then drops the item from the local list, without a
// refetch. The visible list never changes before the confirm step.
type ProductList struct {
	svc      *Service
	products []domain.Product
	staged   string
}

func (l *ProductList) Products() []domain.Product {
	return l.products
}

func (l *ProductList) Len() int {
	return len(l.products)
}

// StageDelete marks the product for deletion and returns it so the view can
// ask for confirmation.
func (l *ProductList) StageDelete(id string) (*domain.Product, error) {
	for i := range l.products {
		if l.products[i].ID == id {
			l.staged = id
			return &l.products[i], nil
		}
	}
	return nil, ErrNotInList
}

// CancelDelete abandons the staged deletion.
func (l *ProductList) CancelDelete() {
	l.staged = ""
}

// ConfirmDelete issues the remote delete for the staged product and removes
// it from the local list on success.
func (l *ProductList) ConfirmDelete(ctx context.Context) error {
	if l.staged == "" {
		return ErrNoStagedDelete
	}
	id := l.staged
	l.staged = ""

	if err := l.svc.client.Delete(ctx, "/products/"+id); err != nil {
		return err
	}

	kept := l.products[:0]
	for _, p := range l.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	l.products = kept

	l.svc.logger.Info("product deleted", "product_id", id)
	return nil
}
