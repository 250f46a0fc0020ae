package autherrors

import (
	"net/http"

	"github.com/sudono1/gamesucks-api/internal/pkg/apperror"
)

var (
	ErrUnauthorized = apperror.New(
		apperror.CodeUnauthorized,
		"Unauthorized access",
		http.StatusUnauthorized,
	)

	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid authentication token",
		http.StatusUnauthorized,
	)

	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"The token has expired",
		http.StatusUnauthorized,
	)

	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"FORBIDDEN",
		http.StatusForbidden,
	)

	// Pesan login gagal mengikuti kontrak lama
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Unauthorized Access",
		http.StatusUnauthorized,
	)

	// Duplikat register memakai 406, bukan 409 (kompatibilitas klien lama)
	ErrUsernameTaken = apperror.New(
		apperror.CodeConflict,
		"Username has been taken",
		http.StatusNotAcceptable,
	)

	ErrEmailTaken = apperror.New(
		apperror.CodeConflict,
		"Email has been taken",
		http.StatusNotAcceptable,
	)

	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)

	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to generate authentication token",
		http.StatusInternalServerError,
	)

	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user id",
		http.StatusBadRequest,
	)
)
