package category

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sudono1/gamesucks-api/internal/shared/database/dbx"
)

type Category struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

//go:generate mockgen -source=category_repo.go -destination=../mock/category/category_repo_mock.go -package=mock
type Repository interface {
	List(ctx context.Context) ([]Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (Category, error)
	GetByName(ctx context.Context, name string) (Category, error)
	Create(ctx context.Context, name string) (Category, error)
	UpdateName(ctx context.Context, id uuid.UUID, name string) (Category, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type repository struct {
	db dbx.DBTX
}

func NewRepository(db dbx.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]Category, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, created_at, updated_at FROM categories ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (Category, error) {
	var c Category
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, created_at, updated_at FROM categories WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *repository) GetByName(ctx context.Context, name string) (Category, error) {
	var c Category
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, created_at, updated_at FROM categories WHERE name = $1`, name).
		Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *repository) Create(ctx context.Context, name string) (Category, error) {
	var c Category
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO categories (name) VALUES ($1)
		RETURNING id, name, created_at, updated_at`, name).
		Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *repository) UpdateName(ctx context.Context, id uuid.UUID, name string) (Category, error) {
	var c Category
	err := r.db.QueryRowContext(ctx, `
		UPDATE categories SET name = $2, updated_at = now()
		WHERE id = $1
		RETURNING id, name, created_at, updated_at`, id, name).
		Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
