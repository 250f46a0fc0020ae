package game

import (
	"net/http"

	"github.com/sudono1/gamesucks-api/internal/pkg/apperror"
)

var (
	// Pesan 404 mengikuti kontrak lama, termasuk spasi sebelum "!"
	ErrGameNotFound = apperror.New(
		apperror.CodeNotFound,
		"Data not found !",
		http.StatusNotFound,
	)

	ErrInvalidGameID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid item id",
		http.StatusBadRequest,
	)

	ErrCategoryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Category not found",
		http.StatusNotFound,
	)

	ErrInvalidSort = apperror.New(
		apperror.CodeInvalidInput,
		"invalid orderBy or sort value",
		http.StatusBadRequest,
	)
)

func mapValidationError(err error) error {
	return apperror.New(apperror.CodeInvalidInput, err.Error(), http.StatusBadRequest)
}
