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
package model

import (
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// AccountType tags the account variant. The only variant-dependent behavior
// is the withdrawal policy; see canWithdraw.
type AccountType string

const (
	AccountTypeSavings  AccountType = "savings"
	AccountTypeChecking AccountType = "checking"
)

var one = decimal.NewFromInt(1)

// Account owns its balance and transaction history and enforces the
// withdrawal policy for its variant. Savings accounts carry an interest rate
// in [0,1]; checking accounts carry a non-negative overdraft limit, the
// amount the balance may go negative.
//
// All mutating operations hold the account mutex, so single-account
// operations are safe under concurrent callers. Transfers across two
// accounts go through Transfer, which serializes on the pair.
type Account struct {
	AccountID      string          `json:"account_id"`
	OwnerName      string          `json:"owner_name"`
	Type           AccountType     `json:"account_type"`
	Balance        decimal.Decimal `json:"balance"`
	InterestRate   decimal.Decimal `json:"interest_rate"`
	OverdraftLimit decimal.Decimal `json:"overdraft_limit"`
	CreatedAt      time.Time       `json:"created_at"`

	mu           sync.Mutex
	transactions []*Transaction
}

// NewAccount validates and constructs an account variant. Construction
// failures surface as ErrInvalidArgument and produce no account.
func NewAccount(number, ownerName string, accountType AccountType, initialBalance, interestRate, overdraftLimit decimal.Decimal) (*Account, error) {
	if number == "" {
		return nil, fmt.Errorf("%w: account number cannot be empty", ErrInvalidArgument)
	}
	if ownerName == "" {
		return nil, fmt.Errorf("%w: owner name cannot be empty", ErrInvalidArgument)
	}
	if initialBalance.IsNegative() {
		return nil, fmt.Errorf("%w: initial balance cannot be negative", ErrInvalidArgument)
	}

	account := &Account{
		AccountID: number,
		OwnerName: ownerName,
		Type:      accountType,
		Balance:   initialBalance,
		CreatedAt: time.Now(),
	}

	switch accountType {
	case AccountTypeSavings:
		if interestRate.IsNegative() || interestRate.GreaterThan(one) {
			return nil, fmt.Errorf("%w: interest rate must be between 0 and 1", ErrInvalidArgument)
		}
		account.InterestRate = interestRate
	case AccountTypeChecking:
		if overdraftLimit.IsNegative() {
			return nil, fmt.Errorf("%w: overdraft limit cannot be negative", ErrInvalidArgument)
		}
		account.OverdraftLimit = overdraftLimit
	default:
		return nil, fmt.Errorf("%w: invalid account type %q, choose 'savings' or 'checking'", ErrInvalidArgument, accountType)
	}

	return account, nil
}

// Deposit increases the balance and appends a deposit record.
// Returns the new balance.
func (a *Account) Deposit(amount decimal.Decimal) (decimal.Decimal, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.deposit(amount)
}

// Withdraw decreases the balance and appends a withdrawal record. The policy
// is variant-dependent: a checking account may dip into its overdraft.
// Returns the new balance.
func (a *Account) Withdraw(amount decimal.Decimal) (decimal.Decimal, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.withdraw(amount)
}

// ApplyInterest credits balance * rate to a savings account and appends an
// interest record. The rate is validated at construction, so a savings
// account has no failure mode here; a non-savings account is rejected.
// Returns the interest amount and the new balance.
func (a *Account) ApplyInterest() (decimal.Decimal, decimal.Decimal, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.Type != AccountTypeSavings {
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: interest applies to savings accounts only", ErrInvalidArgument)
	}
	interest := a.Balance.Mul(a.InterestRate)
	a.Balance = a.Balance.Add(interest)
	a.record(TransactionInterestApplied, interest)
	return interest, a.Balance, nil
}

// Transactions returns a snapshot copy of the account history in append
// (chronological) order.
func (a *Account) Transactions() []Transaction {
	a.mu.Lock()
	defer a.mu.Unlock()

	history := make([]Transaction, len(a.transactions))
	for i, transaction := range a.transactions {
		history[i] = *transaction
	}
	return history
}

// AccountView is a point-in-time copy of an account's public state. Accounts
// mutate concurrently, so anything serializing an account must work from a
// view rather than the live value.
type AccountView struct {
	AccountID      string          `json:"account_id"`
	OwnerName      string          `json:"owner_name"`
	Type           AccountType     `json:"account_type"`
	Balance        decimal.Decimal `json:"balance"`
	InterestRate   decimal.Decimal `json:"interest_rate"`
	OverdraftLimit decimal.Decimal `json:"overdraft_limit"`
	CreatedAt      time.Time       `json:"created_at"`
}

// View copies the account's public state under the account mutex.
func (a *Account) View() AccountView {
	a.mu.Lock()
	defer a.mu.Unlock()
	return AccountView{
		AccountID:      a.AccountID,
		OwnerName:      a.OwnerName,
		Type:           a.Type,
		Balance:        a.Balance,
		InterestRate:   a.InterestRate,
		OverdraftLimit: a.OverdraftLimit,
		CreatedAt:      a.CreatedAt,
	}
}

// CurrentBalance reads the balance under the account mutex.
func (a *Account) CurrentBalance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.Balance
}

func (a *Account) deposit(amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.Sign() <= 0 {
		return decimal.Zero, ErrInvalidAmount
	}
	a.Balance = a.Balance.Add(amount)
	a.record(TransactionDeposit, amount)
	return a.Balance, nil
}

func (a *Account) withdraw(amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.Sign() <= 0 {
		return decimal.Zero, ErrInvalidAmount
	}
	if !a.canWithdraw(amount) {
		return decimal.Zero, ErrInsufficientFunds
	}
	a.Balance = a.Balance.Sub(amount)
	a.record(TransactionWithdrawal, amount)
	return a.Balance, nil
}

// canWithdraw is the single variant-dependent decision point in the model.
func (a *Account) canWithdraw(amount decimal.Decimal) bool {
	switch a.Type {
	case AccountTypeChecking:
		return a.Balance.Add(a.OverdraftLimit).GreaterThanOrEqual(amount)
	default:
		return a.Balance.GreaterThanOrEqual(amount)
	}
}

func (a *Account) record(kind TransactionKind, amount decimal.Decimal) {
	a.transactions = append(a.transactions, &Transaction{
		TransactionID: GenerateUUIDWithSuffix("txn"),
		Kind:          kind,
		Amount:        amount,
		NewBalance:    a.Balance,
		CreatedAt:     time.Now(),
	})
}

// TransferResult carries both resulting balances of a successful transfer.
type TransferResult struct {
	SourceBalance      decimal.Decimal `json:"source_balance"`
	DestinationBalance decimal.Decimal `json:"destination_balance"`
}

// Transfer atomically moves amount from source to destination: it locks both
// accounts in lexicographic AccountID order (so concurrent transfers on the
// same pair cannot deadlock), withdraws from the source under its variant
// policy, then deposits into the destination. If the withdrawal fails the
// destination is untouched. A deposit of a positive amount cannot fail, so
// no rollback path is needed for that step.
func Transfer(source, destination *Account, amount decimal.Decimal) (TransferResult, error) {
	if source.AccountID == destination.AccountID {
		return TransferResult{}, ErrSameAccount
	}

	first, second := source, destination
	if second.AccountID < first.AccountID {
		first, second = second, first
	}
	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()

	sourceBalance, err := source.withdraw(amount)
	if err != nil {
		return TransferResult{}, err
	}
	destinationBalance, err := destination.deposit(amount)
	if err != nil {
		return TransferResult{}, err
	}
	return TransferResult{SourceBalance: sourceBalance, DestinationBalance: destinationBalance}, nil
}
