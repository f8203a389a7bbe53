package usecase

import (
	"errors"
	"fmt"

	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
)

// Handlers map these with errors.Is; services wrap them with context.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrInvalidState = errors.New("invalid booking state")
	ErrCapacity     = errors.New("no rooms available for the selected dates")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("already exists")
)

func validateRequest(req any) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}
	return nil
}

func parseID(value, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid %s %q", ErrValidation, field, value)
	}
	return id, nil
}
