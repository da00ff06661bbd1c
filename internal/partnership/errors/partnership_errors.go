package partnershiperrors

import (
	"net/http"

	"github.com/Ankitkumar028/rider-fleet/internal/shared/apperror"
)

var (
	ErrPartnershipNotFound = apperror.New(
		apperror.CodeNotFound,
		"Partnership not found",
		http.StatusNotFound,
	)
	ErrPartnershipNameTaken = apperror.New(
		apperror.CodeConflict,
		"Partnership name must be unique",
		http.StatusBadRequest,
	)
	ErrInvalidPartnershipID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid partnership ID",
		http.StatusBadRequest,
	)
)
