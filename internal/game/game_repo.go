package game

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/sudono1/gamesucks-api/internal/shared/database/dbx"
	"github.com/sudono1/gamesucks-api/internal/shared/database/helper"
)

const (
	StatusShow   = "show"
	StatusHidden = "hidden"
)

type Game struct {
	ID           uuid.UUID
	Title        string
	Studio       string
	CategoryID   uuid.UUID
	CategoryName string
	Price        int64
	Stock        int32
	PictureURL   string
	Status       string
	Description  string
	PelapakID    uuid.UUID
	PelapakName  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CreateGameParams struct {
	Title       string
	Studio      string
	CategoryID  uuid.UUID
	Price       int64
	Stock       int32
	PictureURL  string
	Status      string
	Description string
	PelapakID   uuid.UUID
}

type UpdateGameParams struct {
	ID          uuid.UUID
	PelapakID   uuid.UUID
	Title       *string
	Studio      *string
	CategoryID  *uuid.UUID
	Price       *int64
	Stock       *int32
	PictureURL  *string
	Status      *string
	Description *string
}

type ListPublicParams struct {
	ID       *uuid.UUID
	Title    string
	Studio   string
	Category string
	Price    *int64
	Stock    *int32
	OrderBy  string
	Sort     string
	Limit    int
	Offset   int
}

//go:generate mockgen -source=game_repo.go -destination=../mock/game/game_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, arg CreateGameParams) (Game, error)
	GetByID(ctx context.Context, id uuid.UUID) (Game, error)
	GetByIDForPelapak(ctx context.Context, pelapakID, id uuid.UUID) (Game, error)
	ListByPelapak(ctx context.Context, pelapakID uuid.UUID) ([]Game, error)
	Update(ctx context.Context, arg UpdateGameParams) (Game, error)
	Delete(ctx context.Context, pelapakID, id uuid.UUID) (int64, error)
	ListPublic(ctx context.Context, arg ListPublicParams) ([]Game, int64, error)
}

type repository struct {
	db dbx.DBTX
}

func NewRepository(db dbx.DBTX) Repository {
	return &repository{db: db}
}

// Kolom yang boleh dipakai untuk orderBy di listing publik
var orderableColumns = map[string]string{
	"id":        "g.id",
	"title":     "g.title",
	"status":    "g.status",
	"price":     "g.price",
	"stock":     "g.stock",
	"studio":    "g.studio",
	"category":  "c.name",
	"createdAt": "g.created_at",
	"updatedAt": "g.updated_at",
}

const gameColumns = `g.id, g.title, COALESCE(g.studio, ''), g.category_id, c.name,
	g.price, COALESCE(g.stock, 0), COALESCE(g.picture_url, ''), g.status,
	COALESCE(g.description, ''), g.pelapak_id, u.name, g.created_at, g.updated_at`

const gameJoins = `FROM games g
	JOIN categories c ON c.id = g.category_id
	JOIN users u ON u.id = g.pelapak_id`

func scanGame(row interface{ Scan(dest ...any) error }) (Game, error) {
	var g Game
	err := row.Scan(
		&g.ID, &g.Title, &g.Studio, &g.CategoryID, &g.CategoryName,
		&g.Price, &g.Stock, &g.PictureURL, &g.Status,
		&g.Description, &g.PelapakID, &g.PelapakName, &g.CreatedAt, &g.UpdatedAt,
	)
	return g, err
}

func (r *repository) Create(ctx context.Context, arg CreateGameParams) (Game, error) {
	var id uuid.UUID
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO games (title, studio, category_id, price, stock, picture_url, status, description, pelapak_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		arg.Title, helper.RawStringToNull(arg.Studio), arg.CategoryID, arg.Price,
		helper.RawInt32ToNull(arg.Stock), helper.RawStringToNull(arg.PictureURL),
		arg.Status, helper.RawStringToNull(arg.Description), arg.PelapakID,
	).Scan(&id)
	if err != nil {
		return Game{}, translateConstraintError(err)
	}
	return r.GetByID(ctx, id)
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (Game, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+gameColumns+` `+gameJoins+` WHERE g.id = $1`, id)
	return scanGame(row)
}

func (r *repository) GetByIDForPelapak(ctx context.Context, pelapakID, id uuid.UUID) (Game, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+gameColumns+` `+gameJoins+` WHERE g.id = $1 AND g.pelapak_id = $2`,
		id, pelapakID)
	return scanGame(row)
}

func (r *repository) ListByPelapak(ctx context.Context, pelapakID uuid.UUID) ([]Game, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+gameColumns+` `+gameJoins+` WHERE g.pelapak_id = $1 ORDER BY g.created_at DESC`,
		pelapakID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Game
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *repository) Update(ctx context.Context, arg UpdateGameParams) (Game, error) {
	var categoryID any
	if arg.CategoryID != nil {
		categoryID = *arg.CategoryID
	}

	var id uuid.UUID
	err := r.db.QueryRowContext(ctx, `
		UPDATE games SET
			title       = COALESCE($3, title),
			studio      = COALESCE($4, studio),
			category_id = COALESCE($5, category_id),
			price       = COALESCE($6, price),
			stock       = COALESCE($7, stock),
			picture_url = COALESCE($8, picture_url),
			status      = COALESCE($9, status),
			description = COALESCE($10, description),
			updated_at  = now()
		WHERE id = $1 AND pelapak_id = $2
		RETURNING id`,
		arg.ID, arg.PelapakID,
		helper.StringToNull(arg.Title), helper.StringToNull(arg.Studio), categoryID,
		arg.Price, arg.Stock,
		helper.StringToNull(arg.PictureURL), helper.StringToNull(arg.Status),
		helper.StringToNull(arg.Description),
	).Scan(&id)
	if err != nil {
		return Game{}, translateConstraintError(err)
	}
	return r.GetByID(ctx, id)
}

func (r *repository) Delete(ctx context.Context, pelapakID, id uuid.UUID) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM games WHERE id = $1 AND pelapak_id = $2`, id, pelapakID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *repository) ListPublic(ctx context.Context, arg ListPublicParams) ([]Game, int64, error) {
	where := []string{"g.status = 'show'"}
	args := []any{}

	addFilter := func(cond string, val any) {
		args = append(args, val)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}

	if arg.ID != nil {
		addFilter("g.id = $%d", *arg.ID)
	}
	if arg.Title != "" {
		addFilter("g.title = $%d", arg.Title)
	}
	if arg.Studio != "" {
		addFilter("g.studio = $%d", arg.Studio)
	}
	if arg.Category != "" {
		addFilter("c.name = $%d", arg.Category)
	}
	if arg.Price != nil {
		addFilter("g.price = $%d", *arg.Price)
	}
	if arg.Stock != nil {
		addFilter("g.stock = $%d", *arg.Stock)
	}

	whereClause := "WHERE " + strings.Join(where, " AND ")

	var total int64
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) `+gameJoins+` `+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	orderClause := "ORDER BY g.created_at DESC"
	if arg.OrderBy != "" {
		col, ok := orderableColumns[arg.OrderBy]
		if !ok {
			return nil, 0, ErrInvalidSort
		}
		dir := "ASC"
		if strings.EqualFold(arg.Sort, "desc") {
			dir = "DESC"
		}
		orderClause = fmt.Sprintf("ORDER BY %s %s", col, dir)
	}

	args = append(args, arg.Limit, arg.Offset)
	query := fmt.Sprintf(`SELECT %s %s %s %s LIMIT $%d OFFSET $%d`,
		gameColumns, gameJoins, whereClause, orderClause, len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []Game
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, g)
	}
	return out, total, rows.Err()
}

// translateConstraintError memetakan pelanggaran FK kategori ke error domain
func translateConstraintError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Name() == "foreign_key_violation" &&
		strings.Contains(pqErr.Constraint, "category") {
		return ErrCategoryNotFound
	}
	return err
}
