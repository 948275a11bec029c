package store

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tidebank/tide/model"
)

func newTestStore() *Store {
	return New("Global Bank Inc.")
}

func TestCreateCustomer(t *testing.T) {
	s := newTestStore()

	customer, err := s.CreateCustomer(gofakeit.Name(), gofakeit.Address().Address)
	assert.NoError(t, err)
	assert.Contains(t, customer.CustomerID, "cus_")

	found, err := s.GetCustomer(customer.CustomerID)
	assert.NoError(t, err)
	assert.Same(t, customer, found)
}

func TestCreateCustomerValidationPropagates(t *testing.T) {
	s := newTestStore()

	_, err := s.CreateCustomer("", gofakeit.Address().Address)
	assert.ErrorIs(t, err, model.ErrInvalidArgument)
	_, err = s.CreateCustomer(gofakeit.Name(), "")
	assert.ErrorIs(t, err, model.ErrInvalidArgument)
	assert.Empty(t, s.AllCustomers())
}

func TestCreateAccount(t *testing.T) {
	s := newTestStore()
	customer, err := s.CreateCustomer("Alice Smith", "123 Main St, Anytown")
	assert.NoError(t, err)

	account, err := s.CreateAccount(customer.CustomerID, model.AccountTypeSavings,
		decimal.NewFromFloat(1000.0), decimal.NewFromFloat(0.015), decimal.Zero)
	assert.NoError(t, err)
	assert.Contains(t, account.AccountID, "acc_")
	assert.Equal(t, "Alice Smith", account.OwnerName)

	// Customer and registry must resolve the number to the same instance.
	global, err := s.GetAccount(account.AccountID)
	assert.NoError(t, err)
	owned, err := customer.GetAccount(account.AccountID)
	assert.NoError(t, err)
	assert.Same(t, global, owned)
}

func TestCreateAccountCustomerNotFound(t *testing.T) {
	s := newTestStore()

	_, err := s.CreateAccount("cus_missing", model.AccountTypeChecking,
		decimal.NewFromFloat(100.0), decimal.Zero, decimal.NewFromFloat(200.0))
	assert.ErrorIs(t, err, model.ErrCustomerNotFound)
}

func TestCreateAccountInvalidRateRegistersNothing(t *testing.T) {
	s := newTestStore()
	customer, err := s.CreateCustomer("Alice Smith", "123 Main St, Anytown")
	assert.NoError(t, err)

	_, err = s.CreateAccount(customer.CustomerID, model.AccountTypeSavings,
		decimal.NewFromFloat(1000.0), decimal.NewFromFloat(1.5), decimal.Zero)
	assert.ErrorIs(t, err, model.ErrInvalidArgument)

	assert.Empty(t, s.AllAccounts())
	assert.Equal(t, 0, customer.AccountCount())
}

func TestLookupMissingAccount(t *testing.T) {
	s := newTestStore()

	_, err := s.GetAccount("acc_missing")
	assert.ErrorIs(t, err, model.ErrAccountNotFound)
	_, err = s.GetCustomer("cus_missing")
	assert.ErrorIs(t, err, model.ErrCustomerNotFound)
}

func TestEnumerationSnapshots(t *testing.T) {
	s := newTestStore()
	assert.Equal(t, "Global Bank Inc.", s.Name())

	for i := 0; i < 3; i++ {
		customer, err := s.CreateCustomer(gofakeit.Name(), gofakeit.Address().Address)
		assert.NoError(t, err)
		_, err = s.CreateAccount(customer.CustomerID, model.AccountTypeChecking,
			decimal.NewFromFloat(100.0), decimal.Zero, decimal.NewFromFloat(50.0))
		assert.NoError(t, err)
		_, err = s.CreateAccount(customer.CustomerID, model.AccountTypeSavings,
			decimal.NewFromFloat(100.0), decimal.NewFromFloat(0.01), decimal.Zero)
		assert.NoError(t, err)
	}

	customers := s.AllCustomers()
	accounts := s.AllAccounts()
	assert.Len(t, customers, 3)
	assert.Len(t, accounts, 6)
	for i := 1; i < len(accounts); i++ {
		assert.Less(t, accounts[i-1].AccountID, accounts[i].AccountID)
	}
}
