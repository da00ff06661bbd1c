package rider

import (
	"errors"
	"strings"

	ridererrors "github.com/Ankitkumar028/rider-fleet/internal/rider/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError translates storage failures into the API taxonomy.
// Username and phone uniqueness are only truly enforced here: the optimistic
// pre-check in Create can lose a race, and the 23505 from the constraint must
// come back as a conflict, never as an internal error.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ridererrors.ErrRiderNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case "uq_rider_phone":
				return ridererrors.ErrPhoneTaken
			case "uq_credential_username":
				return ridererrors.ErrUsernameTaken
			}
			return ridererrors.ErrDuplicateKey
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") {
		if strings.Contains(errMsg, "uq_rider_phone") {
			return ridererrors.ErrPhoneTaken
		}
		if strings.Contains(errMsg, "uq_credential_username") {
			return ridererrors.ErrUsernameTaken
		}
		return ridererrors.ErrDuplicateKey
	}

	return err
}
