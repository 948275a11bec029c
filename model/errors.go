package model

import "errors"

// Domain errors. All are recoverable: a failed command leaves the account and
// registry state untouched.
var (
	// ErrInvalidArgument covers construction-time failures: empty identifiers,
	// an out-of-range interest rate, a negative overdraft limit or initial
	// balance, and interest applied to a non-savings account.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidAmount is returned for a non-positive deposit, withdrawal or
	// transfer amount.
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrInsufficientFunds is returned when a withdrawal would take the
	// balance below zero (savings) or below the overdraft floor (checking).
	ErrInsufficientFunds = errors.New("insufficient funds")

	ErrAccountNotFound  = errors.New("account not found")
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrSameAccount rejects a transfer where source and destination are the
	// same account.
	ErrSameAccount = errors.New("cannot transfer to the same account")

	// ErrAccountExists signals an account-number collision. IDs are
	// generator-produced so this is an internal invariant violation, never a
	// silent overwrite.
	ErrAccountExists = errors.New("account number already registered")
)
