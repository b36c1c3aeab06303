// Package server provides the HTTP REST API for the resume builder.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/session"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrPayloadTooLarge indicates a request body over the size limit
type ErrPayloadTooLarge struct {
	Limit int64
}

func (e *ErrPayloadTooLarge) Error() string {
	return fmt.Sprintf("request body exceeds %d bytes", e.Limit)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		sessionNotFound *session.SessionNotFoundError
		itemNotFound    *session.ItemNotFoundError
		invalidAction   *session.InvalidActionError
		schemaErr       *schemas.ValidationError
		fieldErrs       validator.ValidationErrors
		validationErr   *ErrValidation
		tooLarge        *ErrPayloadTooLarge
	)

	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &sessionNotFound), errors.As(err, &itemNotFound):
		return http.StatusNotFound
	case errors.As(err, &invalidAction):
		return http.StatusUnprocessableEntity
	case errors.As(err, &schemaErr), errors.As(err, &fieldErrs), errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}
