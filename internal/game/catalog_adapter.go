package game

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/sudono1/gamesucks-api/internal/cart"
)

// catalogAdapter menyajikan data game ke cart lewat cache-nya.
type catalogAdapter struct {
	repo  Repository
	cache Cache
}

func NewCatalogAdapter(repo Repository, c Cache) cart.CatalogReader {
	return &catalogAdapter{repo: repo, cache: c}
}

func (a *catalogAdapter) FindByID(ctx context.Context, id uuid.UUID) (cart.CatalogItem, error) {
	if g, ok := a.cache.Get(ctx, id); ok {
		return toCatalogItem(g), nil
	}

	g, err := a.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return cart.CatalogItem{}, cart.ErrItemNotFound
		}
		return cart.CatalogItem{}, err
	}

	a.cache.Set(ctx, g)
	return toCatalogItem(g), nil
}

func toCatalogItem(g Game) cart.CatalogItem {
	return cart.CatalogItem{
		ID:     g.ID,
		Title:  g.Title,
		Price:  g.Price,
		Status: g.Status,
	}
}
