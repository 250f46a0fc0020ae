package cart

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sudono1/gamesucks-api/internal/shared/database/dbx"
)

const (
	StatusOpen = "OPEN"
	StatusPaid = "PAID"
)

type Transaction struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	TotalPrice int64
	TotalQty   int32
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type TransactionDetail struct {
	ID            uuid.UUID
	TransactionID uuid.UUID
	GameID        uuid.UUID
	GameTitle     string
	Price         int64
	Qty           int32
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type CreateDetailParams struct {
	TransactionID uuid.UUID
	GameID        uuid.UUID
	Price         int64
	Qty           int32
}

//go:generate mockgen -source=cart_repo.go -destination=../mock/cart/cart_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx dbx.DBTX) Repository

	GetOpenCart(ctx context.Context, userID uuid.UUID) (Transaction, error)
	GetOpenCartForUpdate(ctx context.Context, userID uuid.UUID) (Transaction, error)
	CreateCart(ctx context.Context, userID uuid.UUID) (Transaction, error)
	ListPaidCarts(ctx context.Context, userID uuid.UUID) ([]Transaction, error)

	ListActiveDetails(ctx context.Context, transactionID uuid.UUID) ([]TransactionDetail, error)
	GetActiveDetail(ctx context.Context, transactionID, gameID uuid.UUID) (TransactionDetail, error)
	CreateDetail(ctx context.Context, arg CreateDetailParams) (TransactionDetail, error)
	AddDetailQty(ctx context.Context, detailID uuid.UUID, delta int32) (TransactionDetail, error)
	DeactivateDetail(ctx context.Context, detailID uuid.UUID) error

	ApplyAggregateDelta(ctx context.Context, transactionID uuid.UUID, qtyDelta int32, priceDelta int64) error
	MarkPaid(ctx context.Context, transactionID uuid.UUID) (Transaction, error)
}

type repository struct {
	db dbx.DBTX
}

func NewRepository(db dbx.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx dbx.DBTX) Repository {
	return &repository{db: tx}
}

const transactionColumns = `id, user_id, total_price, total_qty, status, created_at, updated_at`

func scanTransaction(row interface{ Scan(dest ...any) error }) (Transaction, error) {
	var t Transaction
	err := row.Scan(&t.ID, &t.UserID, &t.TotalPrice, &t.TotalQty,
		&t.Status, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func (r *repository) GetOpenCart(ctx context.Context, userID uuid.UUID) (Transaction, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+transactionColumns+` FROM transactions
		WHERE user_id = $1 AND status = $2`, userID, StatusOpen)
	return scanTransaction(row)
}

// GetOpenCartForUpdate mengunci baris cart selama transaksi SQL berjalan,
// supaya mutasi paralel untuk user yang sama diserialisasi.
func (r *repository) GetOpenCartForUpdate(ctx context.Context, userID uuid.UUID) (Transaction, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+transactionColumns+` FROM transactions
		WHERE user_id = $1 AND status = $2
		FOR UPDATE`, userID, StatusOpen)
	return scanTransaction(row)
}

func (r *repository) CreateCart(ctx context.Context, userID uuid.UUID) (Transaction, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO transactions (user_id) VALUES ($1)
		RETURNING `+transactionColumns, userID)
	return scanTransaction(row)
}

func (r *repository) ListPaidCarts(ctx context.Context, userID uuid.UUID) ([]Transaction, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+transactionColumns+` FROM transactions
		WHERE user_id = $1 AND status = $2
		ORDER BY updated_at DESC`, userID, StatusPaid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

const detailColumns = `d.id, d.transaction_id, d.game_id, g.title, d.price, d.qty,
	d.active, d.created_at, d.updated_at`

func scanDetail(row interface{ Scan(dest ...any) error }) (TransactionDetail, error) {
	var d TransactionDetail
	err := row.Scan(&d.ID, &d.TransactionID, &d.GameID, &d.GameTitle,
		&d.Price, &d.Qty, &d.Active, &d.CreatedAt, &d.UpdatedAt)
	return d, err
}

func (r *repository) ListActiveDetails(ctx context.Context, transactionID uuid.UUID) ([]TransactionDetail, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+detailColumns+`
		FROM transaction_details d
		JOIN games g ON g.id = d.game_id
		WHERE d.transaction_id = $1 AND d.active
		ORDER BY d.created_at`, transactionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TransactionDetail
	for rows.Next() {
		d, err := scanDetail(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *repository) GetActiveDetail(ctx context.Context, transactionID, gameID uuid.UUID) (TransactionDetail, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+detailColumns+`
		FROM transaction_details d
		JOIN games g ON g.id = d.game_id
		WHERE d.transaction_id = $1 AND d.game_id = $2 AND d.active`,
		transactionID, gameID)
	return scanDetail(row)
}

func (r *repository) CreateDetail(ctx context.Context, arg CreateDetailParams) (TransactionDetail, error) {
	var d TransactionDetail
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO transaction_details (transaction_id, game_id, price, qty)
		VALUES ($1, $2, $3, $4)
		RETURNING id, transaction_id, game_id, price, qty, active, created_at, updated_at`,
		arg.TransactionID, arg.GameID, arg.Price, arg.Qty).
		Scan(&d.ID, &d.TransactionID, &d.GameID, &d.Price, &d.Qty,
			&d.Active, &d.CreatedAt, &d.UpdatedAt)
	return d, err
}

func (r *repository) AddDetailQty(ctx context.Context, detailID uuid.UUID, delta int32) (TransactionDetail, error) {
	var d TransactionDetail
	err := r.db.QueryRowContext(ctx, `
		UPDATE transaction_details
		SET qty = qty + $2, updated_at = now()
		WHERE id = $1 AND active
		RETURNING id, transaction_id, game_id, price, qty, active, created_at, updated_at`,
		detailID, delta).
		Scan(&d.ID, &d.TransactionID, &d.GameID, &d.Price, &d.Qty,
			&d.Active, &d.CreatedAt, &d.UpdatedAt)
	return d, err
}

func (r *repository) DeactivateDetail(ctx context.Context, detailID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE transaction_details
		SET active = false, updated_at = now()
		WHERE id = $1`, detailID)
	return err
}

// ApplyAggregateDelta menyesuaikan total cart; selalu dipanggil dalam
// transaksi SQL yang sama dengan mutasi detailnya.
func (r *repository) ApplyAggregateDelta(ctx context.Context, transactionID uuid.UUID, qtyDelta int32, priceDelta int64) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE transactions
		SET total_qty = total_qty + $2,
		    total_price = total_price + $3,
		    updated_at = now()
		WHERE id = $1`, transactionID, qtyDelta, priceDelta)
	return err
}

func (r *repository) MarkPaid(ctx context.Context, transactionID uuid.UUID) (Transaction, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE transactions
		SET status = $2, updated_at = now()
		WHERE id = $1 AND status = $3
		RETURNING `+transactionColumns,
		transactionID, StatusPaid, StatusOpen)
	return scanTransaction(row)
}
