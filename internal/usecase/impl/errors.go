package impl

import (
	domainerrors "trainbook/internal/domain/errors"
	"trainbook/internal/errors"
)

// persistenceFailed reports a store error as PERSISTENCE_FAILED with the driver message as details.
func persistenceFailed(err error, op string) error {
	return errors.Wrap(domainerrors.ErrPersistenceFailed.WithDetails(errors.RootMessage(err)), op)
}
