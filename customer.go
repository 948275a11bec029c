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

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tidebank/tide/model"
)

var customerTracer = otel.Tracer("tide.customers")

// CreateCustomer registers a new customer with a generated ID. Validation of
// the name and address is delegated to the customer constructor.
func (l *Tide) CreateCustomer(ctx context.Context, name, address string) (*model.Customer, error) {
	_, span := customerTracer.Start(ctx, "CreateCustomer")
	defer span.End()

	customer, err := l.registry.CreateCustomer(name, address)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.AddEvent("Customer created", trace.WithAttributes(attribute.String("customer.id", customer.CustomerID)))
	logrus.WithFields(logrus.Fields{"customer_id": customer.CustomerID, "name": customer.Name}).Info("customer created")
	return customer, nil
}

func (l *Tide) GetCustomer(ctx context.Context, id string) (*model.Customer, error) {
	_, span := customerTracer.Start(ctx, "GetCustomer")
	defer span.End()

	customer, err := l.registry.GetCustomer(id)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.AddEvent("Customer retrieved", trace.WithAttributes(attribute.String("customer.id", id)))
	return customer, nil
}

func (l *Tide) GetAllCustomers(ctx context.Context) ([]*model.Customer, error) {
	_, span := customerTracer.Start(ctx, "GetAllCustomers")
	defer span.End()

	customers := l.registry.AllCustomers()
	span.AddEvent("All customers retrieved", trace.WithAttributes(attribute.Int("customer.count", len(customers))))
	return customers, nil
}
