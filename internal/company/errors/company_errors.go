package companyerrors

import (
	"net/http"

	"github.com/Ankitkumar028/rider-fleet/internal/shared/apperror"
)

var (
	ErrCompanyNotFound = apperror.New(
		apperror.CodeNotFound,
		"Company not found",
		http.StatusNotFound,
	)
	ErrCompanyNameTaken = apperror.New(
		apperror.CodeConflict,
		"Company name must be unique",
		http.StatusBadRequest,
	)
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid company ID",
		http.StatusBadRequest,
	)
)
