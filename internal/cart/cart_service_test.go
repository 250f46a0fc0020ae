package cart_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/sudono1/gamesucks-api/internal/cart"
	mock "github.com/sudono1/gamesucks-api/internal/mock/cart"
	outboxmock "github.com/sudono1/gamesucks-api/internal/mock/outbox"
	"github.com/sudono1/gamesucks-api/internal/outbox"
)

func newCartService(t *testing.T) (
	cart.Service,
	sqlmock.Sqlmock,
	*mock.MockRepository,
	*mock.MockCatalogReader,
	*outboxmock.MockRepository,
) {
	t.Helper()

	ctrl := gomock.NewController(t)
	db, mockDB, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	t.Cleanup(func() { db.Close() })

	repo := mock.NewMockRepository(ctrl)
	catalog := mock.NewMockCatalogReader(ctrl)
	outboxRepo := outboxmock.NewMockRepository(ctrl)

	svc := cart.NewService(cart.Deps{
		DB:      db,
		Repo:    repo,
		Catalog: catalog,
		Outbox:  outboxRepo,
	})

	return svc, mockDB, repo, catalog, outboxRepo
}

func TestCartService_GetOpenCart(t *testing.T) {
	svc, _, repo, _, _ := newCartService(t)
	ctx := context.Background()

	t.Run("no_open_cart_returns_empty", func(t *testing.T) {
		userID := uuid.New()

		repo.EXPECT().GetOpenCart(ctx, userID).Return(cart.Transaction{}, sql.ErrNoRows)

		res, err := svc.GetOpenCart(ctx, userID.String())
		assert.NoError(t, err)
		assert.Equal(t, int32(0), res.TotalQty)
		assert.Equal(t, int64(0), res.TotalPrice)
		assert.Empty(t, res.Data)
	})

	t.Run("returns_totals_and_items", func(t *testing.T) {
		userID := uuid.New()
		cartID := uuid.New()
		gameID := uuid.New()

		repo.EXPECT().GetOpenCart(ctx, userID).Return(cart.Transaction{
			ID: cartID, UserID: userID, TotalQty: 3, TotalPrice: 150000, Status: cart.StatusOpen,
		}, nil)
		repo.EXPECT().ListActiveDetails(ctx, cartID).Return([]cart.TransactionDetail{
			{ID: uuid.New(), TransactionID: cartID, GameID: gameID, GameTitle: "Dead Cells", Qty: 3, Price: 50000, Active: true},
		}, nil)

		res, err := svc.GetOpenCart(ctx, userID.String())
		assert.NoError(t, err)
		assert.Equal(t, int32(3), res.TotalQty)
		assert.Equal(t, int64(150000), res.TotalPrice)
		assert.Len(t, res.Data, 1)
		assert.Equal(t, "Dead Cells", res.Data[0].Title)
	})

	t.Run("error_invalid_user_id", func(t *testing.T) {
		_, err := svc.GetOpenCart(ctx, "not-a-uuid")
		assert.Error(t, err)
	})
}

func TestCartService_GetPaidCarts(t *testing.T) {
	svc, _, repo, _, _ := newCartService(t)
	ctx := context.Background()

	t.Run("lists_paid_with_details", func(t *testing.T) {
		userID := uuid.New()
		paidID := uuid.New()

		repo.EXPECT().ListPaidCarts(ctx, userID).Return([]cart.Transaction{
			{ID: paidID, UserID: userID, TotalQty: 2, TotalPrice: 90000, Status: cart.StatusPaid},
		}, nil)
		repo.EXPECT().ListActiveDetails(ctx, paidID).Return([]cart.TransactionDetail{
			{ID: uuid.New(), TransactionID: paidID, GameID: uuid.New(), GameTitle: "Hades", Qty: 2, Price: 45000, Active: true},
		}, nil)

		res, err := svc.GetPaidCarts(ctx, userID.String())
		assert.NoError(t, err)
		assert.Len(t, res, 1)
		assert.Equal(t, cart.StatusPaid, res[0].Status)
		assert.Equal(t, int64(90000), res[0].TotalPrice)
	})

	t.Run("empty_history", func(t *testing.T) {
		userID := uuid.New()

		repo.EXPECT().ListPaidCarts(ctx, userID).Return(nil, nil)

		res, err := svc.GetPaidCarts(ctx, userID.String())
		assert.NoError(t, err)
		assert.Empty(t, res)
	})
}

func TestCartService_AddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("creates_cart_and_fresh_detail", func(t *testing.T) {
		svc, mockDB, repo, catalog, _ := newCartService(t)

		userID := uuid.New()
		cartID := uuid.New()
		gameID := uuid.New()

		mockDB.ExpectBegin()
		mockDB.ExpectCommit()

		catalog.EXPECT().FindByID(ctx, gameID).Return(cart.CatalogItem{
			ID: gameID, Title: "Celeste", Price: 75000, Status: "show",
		}, nil)
		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().GetOpenCartForUpdate(ctx, userID).Return(cart.Transaction{}, sql.ErrNoRows)
		repo.EXPECT().CreateCart(ctx, userID).Return(cart.Transaction{
			ID: cartID, UserID: userID, Status: cart.StatusOpen,
		}, nil)
		repo.EXPECT().GetActiveDetail(ctx, cartID, gameID).Return(cart.TransactionDetail{}, sql.ErrNoRows)
		repo.EXPECT().CreateDetail(ctx, cart.CreateDetailParams{
			TransactionID: cartID, GameID: gameID, Price: 75000, Qty: 1,
		}).Return(cart.TransactionDetail{ID: uuid.New(), Qty: 1, Price: 75000}, nil)
		repo.EXPECT().ApplyAggregateDelta(ctx, cartID, int32(1), int64(75000)).Return(nil)

		err := svc.AddItem(ctx, userID.String(), gameID.String())
		assert.NoError(t, err)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("existing_detail_increments_with_frozen_price", func(t *testing.T) {
		svc, mockDB, repo, catalog, _ := newCartService(t)

		userID := uuid.New()
		cartID := uuid.New()
		gameID := uuid.New()
		detailID := uuid.New()

		mockDB.ExpectBegin()
		mockDB.ExpectCommit()

		// harga katalog sudah naik, total harus tetap pakai harga beku 50000
		catalog.EXPECT().FindByID(ctx, gameID).Return(cart.CatalogItem{
			ID: gameID, Title: "Celeste", Price: 99000, Status: "show",
		}, nil)
		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().GetOpenCartForUpdate(ctx, userID).Return(cart.Transaction{
			ID: cartID, UserID: userID, Status: cart.StatusOpen, TotalQty: 1, TotalPrice: 50000,
		}, nil)
		repo.EXPECT().GetActiveDetail(ctx, cartID, gameID).Return(cart.TransactionDetail{
			ID: detailID, TransactionID: cartID, GameID: gameID, Qty: 1, Price: 50000, Active: true,
		}, nil)
		repo.EXPECT().AddDetailQty(ctx, detailID, int32(1)).Return(cart.TransactionDetail{
			ID: detailID, Qty: 2, Price: 50000,
		}, nil)
		repo.EXPECT().ApplyAggregateDelta(ctx, cartID, int32(1), int64(50000)).Return(nil)

		err := svc.AddItem(ctx, userID.String(), gameID.String())
		assert.NoError(t, err)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("item_not_in_catalog", func(t *testing.T) {
		svc, _, _, catalog, _ := newCartService(t)

		userID := uuid.New()
		gameID := uuid.New()

		catalog.EXPECT().FindByID(ctx, gameID).Return(cart.CatalogItem{}, cart.ErrItemNotFound)

		err := svc.AddItem(ctx, userID.String(), gameID.String())
		assert.ErrorIs(t, err, cart.ErrItemNotFound)
	})

	t.Run("repo_error_should_rollback", func(t *testing.T) {
		svc, mockDB, repo, catalog, _ := newCartService(t)

		userID := uuid.New()
		gameID := uuid.New()

		mockDB.ExpectBegin()
		mockDB.ExpectRollback()

		catalog.EXPECT().FindByID(ctx, gameID).Return(cart.CatalogItem{
			ID: gameID, Price: 75000,
		}, nil)
		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().GetOpenCartForUpdate(ctx, userID).Return(cart.Transaction{}, errors.New("db error"))

		err := svc.AddItem(ctx, userID.String(), gameID.String())
		assert.Error(t, err)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("error_invalid_item_id", func(t *testing.T) {
		svc, _, _, _, _ := newCartService(t)

		err := svc.AddItem(ctx, uuid.New().String(), "not-a-uuid")
		assert.ErrorIs(t, err, cart.ErrInvalidItemID)
	})
}

func TestCartService_Adjust_AddQty(t *testing.T) {
	ctx := context.Background()

	t.Run("increments_with_frozen_price", func(t *testing.T) {
		svc, mockDB, repo, _, _ := newCartService(t)

		userID := uuid.New()
		cartID := uuid.New()
		gameID := uuid.New()
		detailID := uuid.New()

		mockDB.ExpectBegin()
		mockDB.ExpectCommit()

		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().GetOpenCartForUpdate(ctx, userID).Return(cart.Transaction{
			ID: cartID, Status: cart.StatusOpen,
		}, nil)
		repo.EXPECT().GetActiveDetail(ctx, cartID, gameID).Return(cart.TransactionDetail{
			ID: detailID, Qty: 2, Price: 40000, Active: true,
		}, nil)
		repo.EXPECT().AddDetailQty(ctx, detailID, int32(1)).Return(cart.TransactionDetail{
			ID: detailID, Qty: 3, Price: 40000,
		}, nil)
		repo.EXPECT().ApplyAggregateDelta(ctx, cartID, int32(1), int64(40000)).Return(nil)

		err := svc.Adjust(ctx, userID.String(), gameID.String(), "add_qty")
		assert.NoError(t, err)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("item_not_in_cart", func(t *testing.T) {
		svc, mockDB, repo, _, _ := newCartService(t)

		userID := uuid.New()
		cartID := uuid.New()
		gameID := uuid.New()

		mockDB.ExpectBegin()
		mockDB.ExpectRollback()

		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().GetOpenCartForUpdate(ctx, userID).Return(cart.Transaction{
			ID: cartID, Status: cart.StatusOpen,
		}, nil)
		repo.EXPECT().GetActiveDetail(ctx, cartID, gameID).Return(cart.TransactionDetail{}, sql.ErrNoRows)

		err := svc.Adjust(ctx, userID.String(), gameID.String(), "add_qty")
		assert.ErrorIs(t, err, cart.ErrItemNotInCart)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestCartService_Adjust_SubstractQty(t *testing.T) {
	ctx := context.Background()

	t.Run("decrements_above_one", func(t *testing.T) {
		svc, mockDB, repo, _, _ := newCartService(t)

		userID := uuid.New()
		cartID := uuid.New()
		gameID := uuid.New()
		detailID := uuid.New()

		mockDB.ExpectBegin()
		mockDB.ExpectCommit()

		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().GetOpenCartForUpdate(ctx, userID).Return(cart.Transaction{
			ID: cartID, Status: cart.StatusOpen,
		}, nil)
		repo.EXPECT().GetActiveDetail(ctx, cartID, gameID).Return(cart.TransactionDetail{
			ID: detailID, Qty: 2, Price: 35000, Active: true,
		}, nil)
		repo.EXPECT().AddDetailQty(ctx, detailID, int32(-1)).Return(cart.TransactionDetail{
			ID: detailID, Qty: 1, Price: 35000,
		}, nil)
		repo.EXPECT().ApplyAggregateDelta(ctx, cartID, int32(-1), int64(-35000)).Return(nil)

		err := svc.Adjust(ctx, userID.String(), gameID.String(), "substract_qty")
		assert.NoError(t, err)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("last_qty_soft_deletes_detail", func(t *testing.T) {
		svc, mockDB, repo, _, _ := newCartService(t)

		userID := uuid.New()
		cartID := uuid.New()
		gameID := uuid.New()
		detailID := uuid.New()

		mockDB.ExpectBegin()
		mockDB.ExpectCommit()

		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().GetOpenCartForUpdate(ctx, userID).Return(cart.Transaction{
			ID: cartID, Status: cart.StatusOpen,
		}, nil)
		repo.EXPECT().GetActiveDetail(ctx, cartID, gameID).Return(cart.TransactionDetail{
			ID: detailID, Qty: 1, Price: 35000, Active: true,
		}, nil)
		repo.EXPECT().DeactivateDetail(ctx, detailID).Return(nil)
		repo.EXPECT().ApplyAggregateDelta(ctx, cartID, int32(-1), int64(-35000)).Return(nil)

		err := svc.Adjust(ctx, userID.String(), gameID.String(), "substract_qty")
		assert.NoError(t, err)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestCartService_Adjust_Delete(t *testing.T) {
	svc, mockDB, repo, _, _ := newCartService(t)
	ctx := context.Background()

	userID := uuid.New()
	cartID := uuid.New()
	gameID := uuid.New()
	detailID := uuid.New()

	mockDB.ExpectBegin()
	mockDB.ExpectCommit()

	repo.EXPECT().WithTx(gomock.Any()).Return(repo)
	repo.EXPECT().GetOpenCartForUpdate(ctx, userID).Return(cart.Transaction{
		ID: cartID, Status: cart.StatusOpen,
	}, nil)
	repo.EXPECT().GetActiveDetail(ctx, cartID, gameID).Return(cart.TransactionDetail{
		ID: detailID, Qty: 3, Price: 20000, Active: true,
	}, nil)
	repo.EXPECT().DeactivateDetail(ctx, detailID).Return(nil)
	// seluruh baris hilang dari total: -3 qty, -60000 harga
	repo.EXPECT().ApplyAggregateDelta(ctx, cartID, int32(-3), int64(-60000)).Return(nil)

	err := svc.Adjust(ctx, userID.String(), gameID.String(), "delete")
	assert.NoError(t, err)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestCartService_Adjust_Pay(t *testing.T) {
	ctx := context.Background()

	t.Run("marks_paid_and_writes_outbox", func(t *testing.T) {
		svc, mockDB, repo, _, outboxRepo := newCartService(t)

		userID := uuid.New()
		cartID := uuid.New()
		gameID := uuid.New()

		mockDB.ExpectBegin()
		mockDB.ExpectCommit()

		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().GetOpenCartForUpdate(ctx, userID).Return(cart.Transaction{
			ID: cartID, UserID: userID, Status: cart.StatusOpen, TotalQty: 2, TotalPrice: 100000,
		}, nil)
		repo.EXPECT().MarkPaid(ctx, cartID).Return(cart.Transaction{
			ID: cartID, UserID: userID, Status: cart.StatusPaid, TotalQty: 2, TotalPrice: 100000,
		}, nil)
		outboxRepo.EXPECT().WithTx(gomock.Any()).Return(outboxRepo)
		outboxRepo.EXPECT().CreateEvent(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, arg outbox.CreateEventParams) error {
				assert.Equal(t, "TRANSACTION_PAID", arg.EventType)
				assert.Equal(t, cartID, arg.AggregateID)
				assert.Contains(t, string(arg.Payload), cartID.String())
				return nil
			})

		err := svc.Adjust(ctx, userID.String(), gameID.String(), "pay")
		assert.NoError(t, err)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("no_open_cart", func(t *testing.T) {
		svc, mockDB, repo, _, _ := newCartService(t)

		userID := uuid.New()

		mockDB.ExpectBegin()
		mockDB.ExpectRollback()

		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().GetOpenCartForUpdate(ctx, userID).Return(cart.Transaction{}, sql.ErrNoRows)

		err := svc.Adjust(ctx, userID.String(), uuid.New().String(), "pay")
		assert.ErrorIs(t, err, cart.ErrNoOpenCart)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("already_paid_cart_is_closed", func(t *testing.T) {
		svc, mockDB, repo, _, _ := newCartService(t)

		userID := uuid.New()
		cartID := uuid.New()

		mockDB.ExpectBegin()
		mockDB.ExpectRollback()

		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().GetOpenCartForUpdate(ctx, userID).Return(cart.Transaction{
			ID: cartID, Status: cart.StatusPaid,
		}, nil)

		err := svc.Adjust(ctx, userID.String(), uuid.New().String(), "pay")
		assert.ErrorIs(t, err, cart.ErrCartClosed)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestCartService_Adjust_InvalidAction(t *testing.T) {
	svc, _, _, _, _ := newCartService(t)

	err := svc.Adjust(context.Background(), uuid.New().String(), uuid.New().String(), "explode")
	assert.ErrorIs(t, err, cart.ErrInvalidAction)
}

// Skenario jalan kaki: add A, add A lagi, kurangi A, add B, lalu pay.
// State cart disimulasikan di memori dan invariannya dicek di tiap langkah:
// total_qty dan total_price harus selalu sama dengan jumlah detail aktif.
func TestCartService_WalkingScenario(t *testing.T) {
	svc, mockDB, repo, catalog, outboxRepo := newCartService(t)
	ctx := context.Background()

	userID := uuid.New()
	cartID := uuid.New()
	itemA := uuid.New()
	itemB := uuid.New()
	detailA := uuid.New()
	detailB := uuid.New()

	const priceA = int64(50000)
	const priceB = int64(30000)

	// state in-memory yang digerakkan lewat DoAndReturn
	state := cart.Transaction{ID: cartID, UserID: userID, Status: cart.StatusOpen}
	details := map[uuid.UUID]*cart.TransactionDetail{}

	checkInvariant := func() {
		var qty int32
		var price int64
		for _, d := range details {
			if d.Active {
				qty += d.Qty
				price += int64(d.Qty) * d.Price
			}
		}
		assert.Equal(t, qty, state.TotalQty, "total_qty keluar dari jumlah detail aktif")
		assert.Equal(t, price, state.TotalPrice, "total_price keluar dari jumlah detail aktif")
	}

	repo.EXPECT().WithTx(gomock.Any()).Return(repo).AnyTimes()
	repo.EXPECT().GetOpenCartForUpdate(ctx, userID).DoAndReturn(
		func(context.Context, uuid.UUID) (cart.Transaction, error) {
			return state, nil
		}).AnyTimes()
	repo.EXPECT().GetActiveDetail(ctx, cartID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, gameID uuid.UUID) (cart.TransactionDetail, error) {
			for _, d := range details {
				if d.GameID == gameID && d.Active {
					return *d, nil
				}
			}
			return cart.TransactionDetail{}, sql.ErrNoRows
		}).AnyTimes()
	repo.EXPECT().CreateDetail(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, arg cart.CreateDetailParams) (cart.TransactionDetail, error) {
			id := detailA
			if arg.GameID == itemB {
				id = detailB
			}
			d := &cart.TransactionDetail{
				ID: id, TransactionID: arg.TransactionID, GameID: arg.GameID,
				Price: arg.Price, Qty: arg.Qty, Active: true,
			}
			details[id] = d
			return *d, nil
		}).AnyTimes()
	repo.EXPECT().AddDetailQty(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, detailID uuid.UUID, delta int32) (cart.TransactionDetail, error) {
			d := details[detailID]
			d.Qty += delta
			return *d, nil
		}).AnyTimes()
	repo.EXPECT().DeactivateDetail(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, detailID uuid.UUID) error {
			details[detailID].Active = false
			return nil
		}).AnyTimes()
	repo.EXPECT().ApplyAggregateDelta(ctx, cartID, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, qtyDelta int32, priceDelta int64) error {
			state.TotalQty += qtyDelta
			state.TotalPrice += priceDelta
			return nil
		}).AnyTimes()
	repo.EXPECT().MarkPaid(ctx, cartID).DoAndReturn(
		func(context.Context, uuid.UUID) (cart.Transaction, error) {
			state.Status = cart.StatusPaid
			return state, nil
		})
	catalog.EXPECT().FindByID(ctx, itemA).Return(cart.CatalogItem{ID: itemA, Price: priceA}, nil).AnyTimes()
	catalog.EXPECT().FindByID(ctx, itemB).Return(cart.CatalogItem{ID: itemB, Price: priceB}, nil).AnyTimes()
	outboxRepo.EXPECT().WithTx(gomock.Any()).Return(outboxRepo)
	outboxRepo.EXPECT().CreateEvent(ctx, gomock.Any()).Return(nil)

	for i := 0; i < 5; i++ {
		mockDB.ExpectBegin()
		mockDB.ExpectCommit()
	}

	// add A
	assert.NoError(t, svc.AddItem(ctx, userID.String(), itemA.String()))
	checkInvariant()
	assert.Equal(t, int32(1), state.TotalQty)

	// add A lagi
	assert.NoError(t, svc.AddItem(ctx, userID.String(), itemA.String()))
	checkInvariant()
	assert.Equal(t, int32(2), state.TotalQty)
	assert.Equal(t, 2*priceA, state.TotalPrice)

	// kurangi A
	assert.NoError(t, svc.Adjust(ctx, userID.String(), itemA.String(), "substract_qty"))
	checkInvariant()
	assert.Equal(t, int32(1), state.TotalQty)

	// add B
	assert.NoError(t, svc.AddItem(ctx, userID.String(), itemB.String()))
	checkInvariant()
	assert.Equal(t, int32(2), state.TotalQty)
	assert.Equal(t, priceA+priceB, state.TotalPrice)

	// pay
	assert.NoError(t, svc.Adjust(ctx, userID.String(), itemA.String(), "pay"))
	assert.Equal(t, cart.StatusPaid, state.Status)
	checkInvariant()

	assert.NoError(t, mockDB.ExpectationsWereMet())
}

// Remove lalu add lagi harus mulai dari qty 1, bukan melanjutkan qty lama.
func TestCartService_RemoveThenReAddStartsFresh(t *testing.T) {
	svc, mockDB, repo, catalog, _ := newCartService(t)
	ctx := context.Background()

	userID := uuid.New()
	cartID := uuid.New()
	gameID := uuid.New()
	oldDetail := uuid.New()

	// delete baris lama (qty 3)
	mockDB.ExpectBegin()
	mockDB.ExpectCommit()

	repo.EXPECT().WithTx(gomock.Any()).Return(repo).Times(2)
	repo.EXPECT().GetOpenCartForUpdate(ctx, userID).Return(cart.Transaction{
		ID: cartID, Status: cart.StatusOpen, TotalQty: 3, TotalPrice: 60000,
	}, nil).Times(2)
	repo.EXPECT().GetActiveDetail(ctx, cartID, gameID).Return(cart.TransactionDetail{
		ID: oldDetail, Qty: 3, Price: 20000, Active: true,
	}, nil)
	repo.EXPECT().DeactivateDetail(ctx, oldDetail).Return(nil)
	repo.EXPECT().ApplyAggregateDelta(ctx, cartID, int32(-3), int64(-60000)).Return(nil)

	assert.NoError(t, svc.Adjust(ctx, userID.String(), gameID.String(), "delete"))

	// add lagi: baris lama sudah nonaktif, jadi dibuat detail baru qty 1
	mockDB.ExpectBegin()
	mockDB.ExpectCommit()

	catalog.EXPECT().FindByID(ctx, gameID).Return(cart.CatalogItem{ID: gameID, Price: 20000}, nil)
	repo.EXPECT().GetActiveDetail(ctx, cartID, gameID).Return(cart.TransactionDetail{}, sql.ErrNoRows)
	repo.EXPECT().CreateDetail(ctx, cart.CreateDetailParams{
		TransactionID: cartID, GameID: gameID, Price: 20000, Qty: 1,
	}).Return(cart.TransactionDetail{ID: uuid.New(), Qty: 1, Price: 20000}, nil)
	repo.EXPECT().ApplyAggregateDelta(ctx, cartID, int32(1), int64(20000)).Return(nil)

	assert.NoError(t, svc.AddItem(ctx, userID.String(), gameID.String()))
	assert.NoError(t, mockDB.ExpectationsWereMet())
}
