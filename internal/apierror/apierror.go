package apierror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/tidebank/tide/model"
)

type ErrorCode string

const (
	ErrNotFound          ErrorCode = "NOT_FOUND"
	ErrConflict          ErrorCode = "CONFLICT"
	ErrBadRequest        ErrorCode = "BAD_REQUEST"
	ErrInvalidInput      ErrorCode = "INVALID_INPUT"
	ErrInsufficientFunds ErrorCode = "INSUFFICIENT_FUNDS"
	ErrInternalServer    ErrorCode = "INTERNAL_SERVER_ERROR"
)

type APIError struct {
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func (e APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewAPIError(code ErrorCode, message string, details interface{}) APIError {
	logrus.Error(details)
	return APIError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// FromDomain maps a ledger domain error to an APIError code.
func FromDomain(err error) APIError {
	switch {
	case errors.Is(err, model.ErrAccountNotFound), errors.Is(err, model.ErrCustomerNotFound):
		return APIError{Code: ErrNotFound, Message: err.Error()}
	case errors.Is(err, model.ErrInsufficientFunds):
		return APIError{Code: ErrInsufficientFunds, Message: err.Error()}
	case errors.Is(err, model.ErrInvalidAmount), errors.Is(err, model.ErrInvalidArgument), errors.Is(err, model.ErrSameAccount):
		return APIError{Code: ErrInvalidInput, Message: err.Error()}
	case errors.Is(err, model.ErrAccountExists):
		return APIError{Code: ErrConflict, Message: err.Error()}
	default:
		return APIError{Code: ErrInternalServer, Message: err.Error()}
	}
}

func MapErrorToHTTPStatus(err error) int {
	if apiErr, ok := err.(APIError); ok {
		switch apiErr.Code {
		case ErrNotFound:
			return http.StatusNotFound
		case ErrConflict:
			return http.StatusConflict
		case ErrInsufficientFunds:
			return http.StatusUnprocessableEntity
		case ErrInvalidInput, ErrBadRequest:
			return http.StatusBadRequest
		case ErrInternalServer:
			return http.StatusInternalServerError
		default:
			return http.StatusInternalServerError
		}
	}
	return http.StatusInternalServerError
}
