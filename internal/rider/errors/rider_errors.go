package ridererrors

import (
	"net/http"

	"github.com/Ankitkumar028/rider-fleet/internal/shared/apperror"
)

var (
	ErrRiderNotFound = apperror.New(
		apperror.CodeNotFound,
		"Rider not found",
		http.StatusNotFound,
	)
	ErrUsernameTaken = apperror.New(
		apperror.CodeConflict,
		"Username already exists",
		http.StatusBadRequest,
	)
	ErrPhoneTaken = apperror.New(
		apperror.CodeConflict,
		"Phone number already exists",
		http.StatusBadRequest,
	)
	ErrDuplicateKey = apperror.New(
		apperror.CodeConflict,
		"Duplicate key (username or phone)",
		http.StatusBadRequest,
	)
	ErrInvalidRiderID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid rider ID",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Status must be one of Active, Inactive, On Leave",
		http.StatusBadRequest,
	)
	ErrInvalidAssignment = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid company reference",
		http.StatusBadRequest,
	)
)
