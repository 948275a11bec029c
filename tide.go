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
	"github.com/tidebank/tide/config"
	"github.com/tidebank/tide/store"
)

// Tide represents the main struct for the Tide ledger: it dispatches
// customer, account and transfer commands to the registry and the accounts
// it owns.
type Tide struct {
	registry *store.Store
}

// NewTide initializes a new instance of Tide with a fresh in-memory registry
// named after the configured project.
//
// Returns:
// - *Tide: A pointer to the newly created Tide instance.
// - error: An error if the configuration has not been loaded.
func NewTide() (*Tide, error) {
	configuration, err := config.Fetch()
	if err != nil {
		return nil, err
	}
	newTide := &Tide{registry: store.New(configuration.ProjectName)}
	return newTide, nil
}

// Name returns the ledger's configured display name.
func (l *Tide) Name() string {
	return l.registry.Name()
}
