package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind identifies the balance-affecting event a Transaction records.
type TransactionKind string

const (
	TransactionDeposit         TransactionKind = "deposit"
	TransactionWithdrawal      TransactionKind = "withdrawal"
	TransactionInterestApplied TransactionKind = "interest_applied"
)

// Transaction is an immutable, append-only record of one balance-affecting
// event on an account. NewBalance is the account balance after the event.
type Transaction struct {
	TransactionID string          `json:"transaction_id"`
	Kind          TransactionKind `json:"kind"`
	Amount        decimal.Decimal `json:"amount"`
	NewBalance    decimal.Decimal `json:"new_balance"`
	CreatedAt     time.Time       `json:"created_at"`
}

func (transaction *Transaction) ToJSON() ([]byte, error) {
	return json.Marshal(transaction)
}
