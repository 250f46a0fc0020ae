package category

import (
	"net/http"

	"github.com/sudono1/gamesucks-api/internal/pkg/apperror"
)

var (
	ErrCategoryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Data not found!",
		http.StatusNotFound,
	)

	// 406 mengikuti kontrak lama untuk duplikat
	ErrDuplicateCategory = apperror.New(
		apperror.CodeConflict,
		"System cannot have duplicate category",
		http.StatusNotAcceptable,
	)

	ErrInvalidCategoryID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid category id",
		http.StatusBadRequest,
	)

	ErrCategoryFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to process category operation",
		http.StatusInternalServerError,
	)
)
