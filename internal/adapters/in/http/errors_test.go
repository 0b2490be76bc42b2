package http

import (
	"errors"
	"net/http"
	"testing"

	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusForError(t *testing.T) {
	customer, err := identity.NewCaller(kernel.NewUUID(), false, nil)
	require.NoError(t, err)

	tests := []struct {
		name   string
		caller identity.Caller
		err    error
		want   int
	}{
		{"not found", customer, errs.NewObjectNotFoundError("order", "x"), http.StatusNotFound},
		{"invalid value", customer, errs.NewValueIsInvalidError("status"), http.StatusBadRequest},
		{"required value", customer, errs.NewValueIsRequiredError("title"), http.StatusBadRequest},
		{"empty cart", customer, commands.ErrCartIsEmpty, http.StatusBadRequest},
		{"invalid assignment", customer, commands.ErrInvalidAssignment, http.StatusBadRequest},
		{"nothing to update", customer, commands.ErrNothingToUpdate, http.StatusBadRequest},
		{"checkout conflict", customer, commands.ErrCheckoutConflict, http.StatusConflict},
		{"forbidden for authenticated caller", customer, services.ErrForbidden, http.StatusForbidden},
		{"forbidden for anonymous caller", identity.AnonymousCaller(), services.ErrForbidden, http.StatusUnauthorized},
		{"unexpected error", customer, errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusForError(tt.caller, tt.err))
		})
	}
}
