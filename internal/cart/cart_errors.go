package cart

import (
	"net/http"

	"github.com/sudono1/gamesucks-api/internal/pkg/apperror"
)

var (
	// User belum punya cart OPEN
	ErrNoOpenCart = apperror.New(
		apperror.CodeNotFound,
		"Data not found !",
		http.StatusNotFound,
	)

	// Item tidak ada di katalog
	ErrItemNotFound = apperror.New(
		apperror.CodeNotFound,
		"Data not found !",
		http.StatusNotFound,
	)

	// Item tidak ada (atau sudah dihapus) di cart
	ErrItemNotInCart = apperror.New(
		apperror.CodeNotFound,
		"Item is not in your cart",
		http.StatusNotFound,
	)

	// 406 mengikuti kontrak lama untuk state conflict
	ErrCartClosed = apperror.New(
		apperror.CodeConflict,
		"Transaction has already been paid",
		http.StatusNotAcceptable,
	)

	ErrInvalidItemID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid item id",
		http.StatusBadRequest,
	)

	ErrInvalidAction = apperror.New(
		apperror.CodeInvalidInput,
		"Action must be one of add_qty, substract_qty, pay, delete",
		http.StatusBadRequest,
	)
)
