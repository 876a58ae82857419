package impl

import (
	domainerrors "homesec/internal/domain/errors"
	"homesec/internal/domain/repository"
	"homesec/internal/errors"
)

// toAppError translates repository sentinels into API error kinds.
// Errors that already are AppErrors, or are unknown, pass through unchanged.
func toAppError(err error, notFoundDetail string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrInvalidID):
		return domainerrors.ErrInvalidInput.WithDetails("Identificador no válido")
	case errors.IsAny(err, repository.ErrUserNotFound, repository.ErrHouseNotFound, repository.ErrSensorNotFound):
		return domainerrors.ErrNotFound.WithDetails(notFoundDetail)
	case errors.Is(err, repository.ErrDuplicateEmail):
		return domainerrors.ErrConflict
	case errors.Is(err, repository.ErrUnknownSensorType):
		return domainerrors.ErrInvalidInput.WithDetails("Tipo de sensor no válido")
	default:
		return err
	}
}
