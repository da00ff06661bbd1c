package progresserrors

import (
	"net/http"

	"github.com/Ankitkumar028/rider-fleet/internal/shared/apperror"
)

var (
	ErrRiderRefRequired = apperror.New(
		apperror.CodeInvalidInput,
		"riderId is required",
		http.StatusBadRequest,
	)
	ErrInvalidRiderRef = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid rider reference",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Date must be YYYY-MM-DD or RFC 3339",
		http.StatusBadRequest,
	)
	ErrRiderNotFound = apperror.New(
		apperror.CodeNotFound,
		"Rider not found",
		http.StatusNotFound,
	)
	ErrProfileNotFound = apperror.New(
		apperror.CodeNotFound,
		"Profile not found",
		http.StatusNotFound,
	)
)
