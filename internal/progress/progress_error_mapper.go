package progress

import (
	"errors"

	progresserrors "github.com/Ankitkumar028/rider-fleet/internal/progress/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return progresserrors.ErrRiderNotFound
	}
	return err
}
