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

package tide

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tidebank/tide/model"
)

var transactionTracer = otel.Tracer("tide.transactions")

// BalanceResult reports the account balance after a single-account operation.
type BalanceResult struct {
	AccountID  string          `json:"account_id"`
	NewBalance decimal.Decimal `json:"new_balance"`
}

// InterestResult reports an interest accrual.
type InterestResult struct {
	AccountID      string          `json:"account_id"`
	InterestAmount decimal.Decimal `json:"interest_amount"`
	NewBalance     decimal.Decimal `json:"new_balance"`
}

// Deposit credits an account. A non-positive amount is rejected with no
// state change.
func (l *Tide) Deposit(ctx context.Context, number string, amount decimal.Decimal) (BalanceResult, error) {
	_, span := transactionTracer.Start(ctx, "Deposit")
	defer span.End()

	account, err := l.registry.GetAccount(number)
	if err != nil {
		span.RecordError(err)
		return BalanceResult{}, err
	}
	newBalance, err := account.Deposit(amount)
	if err != nil {
		span.RecordError(err)
		return BalanceResult{}, errors.Wrapf(err, "deposit into account %s failed", number)
	}
	span.AddEvent("Deposit applied", trace.WithAttributes(attribute.String("account.id", number)))
	logrus.WithFields(logrus.Fields{"account_id": number, "amount": amount.String()}).Info("deposit applied")
	return BalanceResult{AccountID: number, NewBalance: newBalance}, nil
}

// Withdraw debits an account under its variant policy. Invalid amounts and
// policy failures are rejected with no state change.
func (l *Tide) Withdraw(ctx context.Context, number string, amount decimal.Decimal) (BalanceResult, error) {
	_, span := transactionTracer.Start(ctx, "Withdraw")
	defer span.End()

	account, err := l.registry.GetAccount(number)
	if err != nil {
		span.RecordError(err)
		return BalanceResult{}, err
	}
	newBalance, err := account.Withdraw(amount)
	if err != nil {
		span.RecordError(err)
		return BalanceResult{}, errors.Wrapf(err, "withdrawal from account %s failed", number)
	}
	span.AddEvent("Withdrawal applied", trace.WithAttributes(attribute.String("account.id", number)))
	logrus.WithFields(logrus.Fields{"account_id": number, "amount": amount.String()}).Info("withdrawal applied")
	return BalanceResult{AccountID: number, NewBalance: newBalance}, nil
}

// ApplyInterest accrues interest on a savings account.
func (l *Tide) ApplyInterest(ctx context.Context, number string) (InterestResult, error) {
	_, span := transactionTracer.Start(ctx, "ApplyInterest")
	defer span.End()

	account, err := l.registry.GetAccount(number)
	if err != nil {
		span.RecordError(err)
		return InterestResult{}, err
	}
	interest, newBalance, err := account.ApplyInterest()
	if err != nil {
		span.RecordError(err)
		return InterestResult{}, err
	}
	span.AddEvent("Interest applied", trace.WithAttributes(attribute.String("account.id", number)))
	logrus.WithFields(logrus.Fields{"account_id": number, "interest": interest.String()}).Info("interest applied")
	return InterestResult{AccountID: number, InterestAmount: interest, NewBalance: newBalance}, nil
}

// TransferFunds atomically moves funds between two accounts. Preconditions
// are checked in order: source exists, destination exists, the accounts
// differ, the amount is positive. A withdrawal failure aborts the transfer
// and leaves the destination untouched.
func (l *Tide) TransferFunds(ctx context.Context, fromNumber, toNumber string, amount decimal.Decimal) (model.TransferResult, error) {
	_, span := transactionTracer.Start(ctx, "TransferFunds")
	defer span.End()

	source, err := l.registry.GetAccount(fromNumber)
	if err != nil {
		span.RecordError(err)
		return model.TransferResult{}, errors.Wrapf(err, "source account %s", fromNumber)
	}
	destination, err := l.registry.GetAccount(toNumber)
	if err != nil {
		span.RecordError(err)
		return model.TransferResult{}, errors.Wrapf(err, "destination account %s", toNumber)
	}
	if fromNumber == toNumber {
		span.RecordError(model.ErrSameAccount)
		return model.TransferResult{}, model.ErrSameAccount
	}
	if amount.Sign() <= 0 {
		span.RecordError(model.ErrInvalidAmount)
		return model.TransferResult{}, model.ErrInvalidAmount
	}

	result, err := model.Transfer(source, destination, amount)
	if err != nil {
		span.RecordError(err)
		return model.TransferResult{}, errors.Wrapf(err, "transfer from %s to %s failed", fromNumber, toNumber)
	}
	span.AddEvent("Transfer completed", trace.WithAttributes(
		attribute.String("account.source", fromNumber),
		attribute.String("account.destination", toNumber),
	))
	logrus.WithFields(logrus.Fields{
		"source":      fromNumber,
		"destination": toNumber,
		"amount":      amount.String(),
	}).Info("transfer completed")
	return result, nil
}
