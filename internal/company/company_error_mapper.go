package company

import (
	"errors"
	"strings"

	companyerrors "github.com/Ankitkumar028/rider-fleet/internal/company/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError folds storage failures into the API taxonomy. The
// uniqueness check happens at write time, so a 23505 here is the
// check-then-insert race losing and must surface as a conflict.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return companyerrors.ErrCompanyNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return companyerrors.ErrCompanyNameTaken
	}

	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
		return companyerrors.ErrCompanyNameTaken
	}

	return err
}
