package service

import (
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/njorogedev/leathercraft-api/pkg/apperror"
)

// translateDuplicate maps a unique constraint violation onto a conflict
// error; other errors pass through unchanged.
func translateDuplicate(err error, message string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.NewConflictError(message)
	}
	return err
}

// mapTxError classifies a failure out of a unit-of-work transaction.
// Application errors carry their own status; anything else means the store
// aborted the transaction with nothing applied, so the caller may retry.
func mapTxError(err error) error {
	if err == nil {
		return nil
	}
	if apperror.IsAppError(err) {
		return err
	}
	logrus.WithError(err).Error("transaction aborted")
	return apperror.ErrOperationFailed
}
