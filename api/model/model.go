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
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"

	"github.com/tidebank/tide/model"
)

func (c *CreateCustomer) ValidateCreateCustomer() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Name, validation.Required),
		validation.Field(&c.Address, validation.Required),
	)
}

func (a *CreateAccount) ValidateCreateAccount() error {
	return validation.ValidateStruct(a,
		validation.Field(&a.CustomerId, validation.Required),
		validation.Field(&a.AccountType, validation.Required, validation.In("savings", "checking")),
		validation.Field(&a.InitialBalance, validation.Min(0.0)),
		validation.Field(&a.InterestRate, validation.Min(0.0), validation.Max(1.0)),
		validation.Field(&a.OverdraftLimit, validation.Min(0.0)),
	)
}

func (m *MoveFunds) ValidateMoveFunds() error {
	return validation.ValidateStruct(m,
		validation.Field(&m.Amount, validation.Required, validation.Min(0.0).Exclusive()),
	)
}

func (t *TransferFunds) ValidateTransferFunds() error {
	return validation.ValidateStruct(t,
		validation.Field(&t.Source, validation.Required),
		validation.Field(&t.Destination, validation.Required),
		validation.Field(&t.Amount, validation.Required, validation.Min(0.0).Exclusive()),
	)
}

func (a *CreateAccount) Type() model.AccountType {
	return model.AccountType(a.AccountType)
}

func (a *CreateAccount) Balances() (initialBalance, interestRate, overdraftLimit decimal.Decimal) {
	return decimal.NewFromFloat(a.InitialBalance), decimal.NewFromFloat(a.InterestRate), decimal.NewFromFloat(a.OverdraftLimit)
}

func (m *MoveFunds) ToAmount() decimal.Decimal {
	return decimal.NewFromFloat(m.Amount)
}

func (t *TransferFunds) ToAmount() decimal.Decimal {
	return decimal.NewFromFloat(t.Amount)
}
