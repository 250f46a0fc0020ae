package cart

import (
	"context"

	"github.com/google/uuid"
)

// CatalogItem adalah potongan data katalog yang dibutuhkan cart:
// harga diambil sekali di sini lalu dibekukan di detail.
type CatalogItem struct {
	ID     uuid.UUID
	Title  string
	Price  int64
	Status string
}

//go:generate mockgen -source=cart_catalog.go -destination=../mock/cart/cart_catalog_mock.go -package=mock
type CatalogReader interface {
	// FindByID returns ErrItemNotFound when the item does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (CatalogItem, error)
}
