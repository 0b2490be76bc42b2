package http

import (
	"errors"
	"net/http"

	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// statusForError maps application and domain errors onto HTTP status codes.
// A forbidden error becomes 401 for anonymous callers so clients can tell
// "log in first" apart from "logged in but not allowed".
func statusForError(caller identity.Caller, err error) int {
	switch {
	case errors.Is(err, services.ErrForbidden):
		if caller.IsAnonymous() {
			return http.StatusUnauthorized
		}
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, commands.ErrCheckoutConflict):
		return http.StatusConflict
	case errors.Is(err, commands.ErrCartIsEmpty),
		errors.Is(err, commands.ErrInvalidAssignment),
		errors.Is(err, commands.ErrNothingToUpdate),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondError(ctx echo.Context, caller identity.Caller, err error) error {
	code := statusForError(caller, err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "internal server error"
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: message,
	})
}
