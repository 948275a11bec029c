/*
Copyright 2026 Tide Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package store holds the ledger's in-memory registry of customers and
// accounts. The store is the single owner of both maps; customers hold
// references into the same account instances, so a lookup by owner and a
// global lookup always resolve to the same object.
package store

import (
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/tidebank/tide/model"
)

type Store struct {
	name string

	mu        sync.RWMutex
	customers map[string]*model.Customer
	accounts  map[string]*model.Account
}

func New(name string) *Store {
	return &Store{
		name:      name,
		customers: make(map[string]*model.Customer),
		accounts:  make(map[string]*model.Account),
	}
}

func (s *Store) Name() string {
	return s.name
}

// CreateCustomer constructs a customer with a freshly generated ID and
// registers it. It only fails on empty name or address.
func (s *Store) CreateCustomer(name, address string) (*model.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer, err := model.NewCustomer(model.GenerateUUIDWithSuffix("cus"), name, address)
	if err != nil {
		return nil, err
	}
	s.customers[customer.CustomerID] = customer
	return customer, nil
}

// CreateAccount constructs the requested account variant for an existing
// customer and registers it under both the customer and the global account
// map. Construction failures propagate and nothing is registered.
func (s *Store) CreateAccount(customerID string, accountType model.AccountType, initialBalance, interestRate, overdraftLimit decimal.Decimal) (*model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer, ok := s.customers[customerID]
	if !ok {
		return nil, model.ErrCustomerNotFound
	}

	account, err := model.NewAccount(model.GenerateUUIDWithSuffix("acc"), customer.Name, accountType, initialBalance, interestRate, overdraftLimit)
	if err != nil {
		return nil, err
	}

	// Generated numbers are unique; a collision means the generator invariant
	// broke, and overwriting would orphan a transaction history.
	if _, exists := s.accounts[account.AccountID]; exists {
		return nil, model.ErrAccountExists
	}
	if err := customer.AttachAccount(account); err != nil {
		return nil, err
	}
	s.accounts[account.AccountID] = account
	return account, nil
}

func (s *Store) GetCustomer(customerID string) (*model.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	customer, ok := s.customers[customerID]
	if !ok {
		return nil, model.ErrCustomerNotFound
	}
	return customer, nil
}

func (s *Store) GetAccount(number string) (*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[number]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	return account, nil
}

// AllCustomers returns a snapshot of all customers ordered by customer ID.
func (s *Store) AllCustomers() []*model.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	customers := make([]*model.Customer, 0, len(s.customers))
	for _, customer := range s.customers {
		customers = append(customers, customer)
	}
	sort.Slice(customers, func(i, j int) bool { return customers[i].CustomerID < customers[j].CustomerID })
	return customers
}

// AllAccounts returns a snapshot of all accounts ordered by account number.
func (s *Store) AllAccounts() []*model.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()

	accounts := make([]*model.Account, 0, len(s.accounts))
	for _, account := range s.accounts {
		accounts = append(accounts, account)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].AccountID < accounts[j].AccountID })
	return accounts
}
