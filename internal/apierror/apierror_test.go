package apierror

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/tidebank/tide/model"
)

func TestFromDomain(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		code   ErrorCode
		status int
	}{
		{"account not found", model.ErrAccountNotFound, ErrNotFound, http.StatusNotFound},
		{"customer not found", model.ErrCustomerNotFound, ErrNotFound, http.StatusNotFound},
		{"insufficient funds", model.ErrInsufficientFunds, ErrInsufficientFunds, http.StatusUnprocessableEntity},
		{"invalid amount", model.ErrInvalidAmount, ErrInvalidInput, http.StatusBadRequest},
		{"invalid argument", model.ErrInvalidArgument, ErrInvalidInput, http.StatusBadRequest},
		{"same account", model.ErrSameAccount, ErrInvalidInput, http.StatusBadRequest},
		{"account exists", model.ErrAccountExists, ErrConflict, http.StatusConflict},
		{"unknown", errors.New("boom"), ErrInternalServer, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := FromDomain(tt.err)
			assert.Equal(t, tt.code, apiErr.Code)
			assert.Equal(t, tt.status, MapErrorToHTTPStatus(apiErr))
		})
	}
}

func TestFromDomainUnwrapsServiceContext(t *testing.T) {
	wrapped := errors.Wrapf(model.ErrInsufficientFunds, "withdrawing from account %s", "acc_123")
	apiErr := FromDomain(wrapped)
	assert.Equal(t, ErrInsufficientFunds, apiErr.Code)
	assert.Equal(t, http.StatusUnprocessableEntity, MapErrorToHTTPStatus(apiErr))
}

func TestMapErrorToHTTPStatusNonAPIError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, MapErrorToHTTPStatus(errors.New("boom")))
}

func TestAPIErrorError(t *testing.T) {
	apiErr := NewAPIError(ErrBadRequest, "bad payload", nil)
	assert.Equal(t, "BAD_REQUEST: bad payload", apiErr.Error())
}
