package errors_test

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	apperror "gopedidos/internal/errors"
)

func TestMapToHTTPStatus(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		status   int
		category string
		code     apperror.Code
	}{
		{"validação", apperror.NewValidationError("x"), http.StatusBadRequest, "VALIDATION_ERROR", ""},
		{"transição", apperror.NewInvalidTransitionError("x"), http.StatusBadRequest, "VALIDATION_ERROR", apperror.CodeInvalidTransition},
		{"não encontrado", apperror.NewNotFoundErrorWithCode(apperror.CodeOrderNotFound, "x"), http.StatusNotFound, "NOT_FOUND", apperror.CodeOrderNotFound},
		{"conflito", apperror.NewConflictErrorWithCode(apperror.CodeAlreadyFinalized, "x"), http.StatusConflict, "CONFLICT", apperror.CodeAlreadyFinalized},
		{"credenciais", apperror.NewUnauthorizedErrorWithCode(apperror.CodeBadCredentials, "x"), http.StatusUnauthorized, "UNAUTHORIZED", apperror.CodeBadCredentials},
		{"papel", apperror.NewForbiddenError("x"), http.StatusForbidden, "FORBIDDEN", ""},
		{"estoque", apperror.NewInsufficientStockError("p", 0, 1), http.StatusUnprocessableEntity, "INSUFFICIENT_STOCK", apperror.CodeInsufficientStock},
		{"indisponível", apperror.NewUnavailableError("x", context.DeadlineExceeded), http.StatusServiceUnavailable, "STORE_UNAVAILABLE", apperror.CodeStoreUnavailable},
		{"não tipado", errors.New("boom"), http.StatusInternalServerError, "UNKNOWN_ERROR", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, category, code, _ := apperror.MapToHTTPStatus(tc.err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.category, category)
			assert.Equal(t, tc.code, code)
		})
	}
}

func TestMapToHTTPStatus_HidesInternalDetails(t *testing.T) {
	err := apperror.NewInternalError("pq: relation \"orders\" does not exist", errors.New("driver"))

	status, _, _, msg := apperror.MapToHTTPStatus(err)

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.NotContains(t, msg, "pq:")
}

func TestNewDBError_ClassifiesTransientFailures(t *testing.T) {
	assert.IsType(t, &apperror.UnavailableError{}, apperror.NewDBError("x", context.DeadlineExceeded))
	assert.IsType(t, &apperror.UnavailableError{}, apperror.NewDBError("x", driver.ErrBadConn))
	assert.IsType(t, &apperror.InternalError{}, apperror.NewDBError("x", errors.New("syntax error")))
}

func TestHasCode_WalksWrapChain(t *testing.T) {
	base := apperror.NewNotFoundErrorWithCode(apperror.CodeProductNotFound, "x")
	wrapped := fmt.Errorf("linha 2: %w", base)

	assert.True(t, apperror.HasCode(wrapped, apperror.CodeProductNotFound))
	assert.False(t, apperror.HasCode(wrapped, apperror.CodeOrderNotFound))
	assert.False(t, apperror.HasCode(nil, apperror.CodeOrderNotFound))
}
