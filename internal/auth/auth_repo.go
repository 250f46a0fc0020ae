package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sudono1/gamesucks-api/internal/shared/database/dbx"
	"github.com/sudono1/gamesucks-api/internal/shared/database/helper"
)

type User struct {
	ID        uuid.UUID
	Name      string
	Username  string
	Email     string
	Password  string
	Phone     string
	Address   string
	Role      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateUserParams struct {
	Name     string
	Username string
	Email    string
	Password string
	Phone    string
	Address  string
	Role     string
}

//go:generate mockgen -source=auth_repo.go -destination=../mock/auth/auth_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, arg CreateUserParams) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
}

type repository struct {
	db dbx.DBTX
}

func NewRepository(db dbx.DBTX) Repository {
	return &repository{db: db}
}

const userColumns = `id, name, username, email, password,
	COALESCE(phone, ''), COALESCE(address, ''), role, created_at, updated_at`

func (r *repository) scanUser(row interface{ Scan(dest ...any) error }) (User, error) {
	var u User
	err := row.Scan(
		&u.ID, &u.Name, &u.Username, &u.Email, &u.Password,
		&u.Phone, &u.Address, &u.Role, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

func (r *repository) Create(ctx context.Context, arg CreateUserParams) (User, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO users (name, username, email, password, phone, address, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+userColumns,
		arg.Name, arg.Username, arg.Email, arg.Password,
		helper.RawStringToNull(arg.Phone), helper.RawStringToNull(arg.Address), arg.Role,
	)
	return r.scanUser(row)
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return r.scanUser(row)
}

func (r *repository) GetByUsername(ctx context.Context, username string) (User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	return r.scanUser(row)
}

func (r *repository) GetByEmail(ctx context.Context, email string) (User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return r.scanUser(row)
}
