package cart

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	autherrors "github.com/sudono1/gamesucks-api/internal/auth/errors"
	"github.com/sudono1/gamesucks-api/internal/outbox"
)

//go:generate mockgen -source=cart_service.go -destination=../mock/cart/cart_service_mock.go -package=mock
type Service interface {
	GetOpenCart(ctx context.Context, userID string) (OpenCartResponse, error)
	GetPaidCarts(ctx context.Context, userID string) ([]PaidCartResponse, error)
	AddItem(ctx context.Context, userID, itemID string) error
	Adjust(ctx context.Context, userID, itemID, action string) error
}

type Deps struct {
	DB      *sql.DB
	Repo    Repository
	Catalog CatalogReader
	Outbox  outbox.Repository
	Logger  *zap.Logger
}

type service struct {
	db      *sql.DB
	repo    Repository
	catalog CatalogReader
	outbox  outbox.Repository
	logger  *zap.Logger
}

func NewService(deps Deps) Service {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{
		db:      deps.DB,
		repo:    deps.Repo,
		catalog: deps.Catalog,
		outbox:  deps.Outbox,
		logger:  logger,
	}
}

// ========================
// helpers
// ========================

func (s *service) parseUserID(userID string) (uuid.UUID, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, autherrors.ErrInvalidUserID
	}
	return id, nil
}

func (s *service) parseItemID(itemID string) (uuid.UUID, error) {
	id, err := uuid.Parse(itemID)
	if err != nil {
		return uuid.Nil, ErrInvalidItemID
	}
	return id, nil
}

// ========================
// reads
// ========================

func (s *service) GetOpenCart(ctx context.Context, userID string) (OpenCartResponse, error) {
	uid, err := s.parseUserID(userID)
	if err != nil {
		return OpenCartResponse{}, err
	}

	cart, err := s.repo.GetOpenCart(ctx, uid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Belum ada cart = cart kosong, bukan error
			return OpenCartResponse{Data: []CartItemResponse{}}, nil
		}
		return OpenCartResponse{}, err
	}

	details, err := s.repo.ListActiveDetails(ctx, cart.ID)
	if err != nil {
		return OpenCartResponse{}, err
	}

	return OpenCartResponse{
		TotalQty:   cart.TotalQty,
		TotalPrice: cart.TotalPrice,
		Data:       toCartItemResponses(details),
	}, nil
}

func (s *service) GetPaidCarts(ctx context.Context, userID string) ([]PaidCartResponse, error) {
	uid, err := s.parseUserID(userID)
	if err != nil {
		return nil, err
	}

	carts, err := s.repo.ListPaidCarts(ctx, uid)
	if err != nil {
		return nil, err
	}

	out := make([]PaidCartResponse, 0, len(carts))
	for _, c := range carts {
		details, err := s.repo.ListActiveDetails(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, PaidCartResponse{
			ID:         c.ID.String(),
			TotalQty:   c.TotalQty,
			TotalPrice: c.TotalPrice,
			Status:     c.Status,
			PaidAt:     c.UpdatedAt,
			Data:       toCartItemResponses(details),
		})
	}
	return out, nil
}

// ========================
// mutations
// ========================

// AddItem menaruh item ke cart OPEN milik user (dibuat kalau belum ada).
// Kalau item sudah ada sebagai detail aktif, qty bertambah satu dan total
// cart naik pakai harga BEKU milik detail itu, bukan harga katalog saat ini.
func (s *service) AddItem(ctx context.Context, userID, itemID string) error {
	uid, err := s.parseUserID(userID)
	if err != nil {
		return err
	}
	gid, err := s.parseItemID(itemID)
	if err != nil {
		return err
	}

	item, err := s.catalog.FindByID(ctx, gid)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	repo := s.repo.WithTx(tx)

	cart, err := repo.GetOpenCartForUpdate(ctx, uid)
	if errors.Is(err, sql.ErrNoRows) {
		cart, err = repo.CreateCart(ctx, uid)
	}
	if err != nil {
		return err
	}
	if cart.Status != StatusOpen {
		return ErrCartClosed
	}

	detail, err := repo.GetActiveDetail(ctx, cart.ID, gid)
	switch {
	case err == nil:
		if _, err := repo.AddDetailQty(ctx, detail.ID, 1); err != nil {
			return err
		}
		// harga beku dari detail, bukan item.Price
		if err := repo.ApplyAggregateDelta(ctx, cart.ID, 1, detail.Price); err != nil {
			return err
		}
	case errors.Is(err, sql.ErrNoRows):
		if _, err := repo.CreateDetail(ctx, CreateDetailParams{
			TransactionID: cart.ID,
			GameID:        gid,
			Price:         item.Price,
			Qty:           1,
		}); err != nil {
			return err
		}
		if err := repo.ApplyAggregateDelta(ctx, cart.ID, 1, item.Price); err != nil {
			return err
		}
	default:
		return err
	}

	return tx.Commit()
}

func (s *service) Adjust(ctx context.Context, userID, itemID, action string) error {
	switch action {
	case ActionAddQty, ActionSubQty, ActionPay, ActionDelete:
	default:
		return ErrInvalidAction
	}

	uid, err := s.parseUserID(userID)
	if err != nil {
		return err
	}
	gid, err := s.parseItemID(itemID)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	repo := s.repo.WithTx(tx)

	cart, err := repo.GetOpenCartForUpdate(ctx, uid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNoOpenCart
		}
		return err
	}
	if cart.Status != StatusOpen {
		return ErrCartClosed
	}

	switch action {
	case ActionAddQty:
		err = s.incrementItem(ctx, repo, cart, gid)
	case ActionSubQty:
		err = s.decrementItem(ctx, repo, cart, gid)
	case ActionDelete:
		err = s.removeItem(ctx, repo, cart, gid)
	case ActionPay:
		err = s.pay(ctx, tx, repo, cart)
	}
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (s *service) incrementItem(ctx context.Context, repo Repository, cart Transaction, gid uuid.UUID) error {
	detail, err := repo.GetActiveDetail(ctx, cart.ID, gid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrItemNotInCart
		}
		return err
	}

	if _, err := repo.AddDetailQty(ctx, detail.ID, 1); err != nil {
		return err
	}
	return repo.ApplyAggregateDelta(ctx, cart.ID, 1, detail.Price)
}

func (s *service) decrementItem(ctx context.Context, repo Repository, cart Transaction, gid uuid.UUID) error {
	detail, err := repo.GetActiveDetail(ctx, cart.ID, gid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrItemNotInCart
		}
		return err
	}

	// qty terakhir: soft-delete, jangan sampai qty negatif
	if detail.Qty <= 1 {
		if err := repo.DeactivateDetail(ctx, detail.ID); err != nil {
			return err
		}
	} else {
		if _, err := repo.AddDetailQty(ctx, detail.ID, -1); err != nil {
			return err
		}
	}
	return repo.ApplyAggregateDelta(ctx, cart.ID, -1, -detail.Price)
}

func (s *service) removeItem(ctx context.Context, repo Repository, cart Transaction, gid uuid.UUID) error {
	detail, err := repo.GetActiveDetail(ctx, cart.ID, gid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrItemNotInCart
		}
		return err
	}

	if err := repo.DeactivateDetail(ctx, detail.ID); err != nil {
		return err
	}
	return repo.ApplyAggregateDelta(ctx, cart.ID, -detail.Qty, -int64(detail.Qty)*detail.Price)
}

type transactionPaidEvent struct {
	TransactionID string    `json:"transaction_id"`
	UserID        string    `json:"user_id"`
	TotalQty      int32     `json:"total_qty"`
	TotalPrice    int64     `json:"total_price"`
	PaidAt        time.Time `json:"paid_at"`
}

func (s *service) pay(ctx context.Context, tx *sql.Tx, repo Repository, cart Transaction) error {
	paid, err := repo.MarkPaid(ctx, cart.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrCartClosed
		}
		return err
	}

	payload, err := json.Marshal(transactionPaidEvent{
		TransactionID: paid.ID.String(),
		UserID:        paid.UserID.String(),
		TotalQty:      paid.TotalQty,
		TotalPrice:    paid.TotalPrice,
		PaidAt:        paid.UpdatedAt,
	})
	if err != nil {
		return err
	}

	// Event ikut transaksi SQL yang sama dengan perubahan status (outbox)
	if err := s.outbox.WithTx(tx).CreateEvent(ctx, outbox.CreateEventParams{
		AggregateType: "transaction",
		AggregateID:   paid.ID,
		EventType:     "TRANSACTION_PAID",
		Payload:       payload,
	}); err != nil {
		return err
	}

	s.logger.Info("cart paid",
		zap.String("transaction_id", paid.ID.String()),
		zap.String("user_id", paid.UserID.String()),
		zap.Int32("total_qty", paid.TotalQty),
		zap.Int64("total_price", paid.TotalPrice))

	return nil
}
