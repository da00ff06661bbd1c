package partnership

import (
	"errors"
	"strings"

	partnershiperrors "github.com/Ankitkumar028/rider-fleet/internal/partnership/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return partnershiperrors.ErrPartnershipNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_partnership_name" {
			return partnershiperrors.ErrPartnershipNameTaken
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_partnership_name") {
		return partnershiperrors.ErrPartnershipNameTaken
	}

	return err
}
