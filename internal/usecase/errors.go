package usecase

import (
	"errors"
	"fmt"
	"strings"

	"zoo-admin/internal/data/repository"
	"zoo-admin/pkg/utils"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrConflict           = errors.New("record already exists")
	ErrNotFound           = errors.New("record not found")
	ErrStorage            = errors.New("storage failure")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAlreadyCheckedIn   = errors.New("already checked in today")
)

// ValidationError reports which request fields were rejected and why.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + utils.FormatValidationErrors(e.Fields)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Message is the client-facing summary.
func (e *ValidationError) Message() string {
	if missing := utils.MissingFields(e.Fields); len(missing) > 0 {
		return "Missing required fields: " + strings.Join(missing, ", ")
	}
	return "Validation failed"
}

func validate(req any) error {
	if fields := utils.ValidateStruct(req); len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// storageErr tags a repository error with the usecase sentinel handlers
// switch on, keeping the original for logs.
func storageErr(op string, err error) error {
	switch {
	case errors.Is(err, repository.ErrDuplicate):
		return fmt.Errorf("%s: %w: %w", op, ErrConflict, err)
	case errors.Is(err, repository.ErrNotFound):
		return fmt.Errorf("%s: %w: %w", op, ErrNotFound, err)
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrValidation):
		return err
	default:
		return fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
	}
}
