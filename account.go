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

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tidebank/tide/model"
)

var accountTracer = otel.Tracer("tide.accounts")

// CreateAccount opens a savings or checking account for an existing customer.
// Construction failures (bad rate, negative overdraft or balance) propagate
// and nothing is registered.
func (l *Tide) CreateAccount(ctx context.Context, customerID string, accountType model.AccountType, initialBalance, interestRate, overdraftLimit decimal.Decimal) (*model.Account, error) {
	_, span := accountTracer.Start(ctx, "CreateAccount")
	defer span.End()

	account, err := l.registry.CreateAccount(customerID, accountType, initialBalance, interestRate, overdraftLimit)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.AddEvent("Account created", trace.WithAttributes(
		attribute.String("account.id", account.AccountID),
		attribute.String("account.type", string(account.Type)),
	))
	logrus.WithFields(logrus.Fields{
		"account_id":  account.AccountID,
		"customer_id": customerID,
		"type":        account.Type,
	}).Info("account created")
	return account, nil
}

func (l *Tide) GetAccount(ctx context.Context, number string) (*model.Account, error) {
	_, span := accountTracer.Start(ctx, "GetAccount")
	defer span.End()

	account, err := l.registry.GetAccount(number)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.AddEvent("Account retrieved", trace.WithAttributes(attribute.String("account.id", number)))
	return account, nil
}

func (l *Tide) GetAllAccounts(ctx context.Context) ([]*model.Account, error) {
	_, span := accountTracer.Start(ctx, "GetAllAccounts")
	defer span.End()

	accounts := l.registry.AllAccounts()
	span.AddEvent("All accounts retrieved", trace.WithAttributes(attribute.Int("account.count", len(accounts))))
	return accounts, nil
}

// GetTransactions returns the ordered history of one account.
func (l *Tide) GetTransactions(ctx context.Context, number string) ([]model.Transaction, error) {
	_, span := accountTracer.Start(ctx, "GetTransactions")
	defer span.End()

	account, err := l.registry.GetAccount(number)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	history := account.Transactions()
	span.AddEvent("Transactions retrieved", trace.WithAttributes(
		attribute.String("account.id", number),
		attribute.Int("transaction.count", len(history)),
	))
	return history, nil
}
