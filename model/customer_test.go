package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewCustomerValidation(t *testing.T) {
	tests := []struct {
		name       string
		customerID string
		custName   string
		address    string
	}{
		{name: "empty customer ID", customerID: "", custName: "Alice", address: "123 Main St"},
		{name: "empty name", customerID: "cus_1", custName: "", address: "123 Main St"},
		{name: "empty address", customerID: "cus_1", custName: "Alice", address: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			customer, err := NewCustomer(tt.customerID, tt.custName, tt.address)
			assert.Nil(t, customer)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestCustomerAttachAndLookup(t *testing.T) {
	customer, err := NewCustomer("cus_1", "Alice Smith", "123 Main St, Anytown")
	assert.NoError(t, err)

	assert.ErrorIs(t, customer.AttachAccount(nil), ErrInvalidArgument)

	account := newSavingsAccount(t, 100.0, 0.01)
	assert.NoError(t, customer.AttachAccount(account))

	// A duplicate number is an invariant violation, never an overwrite.
	assert.ErrorIs(t, customer.AttachAccount(account), ErrAccountExists)

	found, err := customer.GetAccount(account.AccountID)
	assert.NoError(t, err)
	assert.Same(t, account, found)

	_, err = customer.GetAccount("acc_missing")
	assert.ErrorIs(t, err, ErrAccountNotFound)

	other, err := NewAccount("acc_other", "Alice Smith", AccountTypeChecking, decimal.Zero, decimal.Zero, decimal.Zero)
	assert.NoError(t, err)
	assert.NoError(t, customer.AttachAccount(other))

	assert.Equal(t, 2, customer.AccountCount())
	assert.Len(t, customer.AllAccounts(), 2)
}
