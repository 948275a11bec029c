package model

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// Customer is a thin aggregation layer over a set of accounts. It does not
// own the accounts: the registry does, and the customer holds references into
// the same instances so an account resolves identically through either path.
type Customer struct {
	CustomerID string    `json:"customer_id"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	CreatedAt  time.Time `json:"created_at"`

	mu       sync.Mutex
	accounts map[string]*Account
}

func NewCustomer(customerID, name, address string) (*Customer, error) {
	if customerID == "" {
		return nil, fmt.Errorf("%w: customer ID cannot be empty", ErrInvalidArgument)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: customer name cannot be empty", ErrInvalidArgument)
	}
	if address == "" {
		return nil, fmt.Errorf("%w: address cannot be empty", ErrInvalidArgument)
	}
	return &Customer{
		CustomerID: customerID,
		Name:       name,
		Address:    address,
		CreatedAt:  time.Now(),
		accounts:   make(map[string]*Account),
	}, nil
}

// AttachAccount registers an account under the customer. A duplicate account
// number is an internal invariant violation, not a silent overwrite: that
// would orphan the existing account's transaction history.
func (c *Customer) AttachAccount(account *Account) error {
	if account == nil {
		return fmt.Errorf("%w: account cannot be nil", ErrInvalidArgument)
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.accounts[account.AccountID]; exists {
		return ErrAccountExists
	}
	c.accounts[account.AccountID] = account
	return nil
}

func (c *Customer) GetAccount(number string) (*Account, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	account, ok := c.accounts[number]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return account, nil
}

// AllAccounts returns the customer's accounts ordered by account number.
func (c *Customer) AllAccounts() []*Account {
	c.mu.Lock()
	defer c.mu.Unlock()

	accounts := make([]*Account, 0, len(c.accounts))
	for _, account := range c.accounts {
		accounts = append(accounts, account)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].AccountID < accounts[j].AccountID })
	return accounts
}

// AccountCount reports how many accounts the customer holds.
func (c *Customer) AccountCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.accounts)
}
