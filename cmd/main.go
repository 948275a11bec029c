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

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tidebank/tide"
	"github.com/tidebank/tide/config"
)

// Tide represents the CLI application, encapsulating the root Cobra command.
type Tide struct {
	cmd *cobra.Command
}

// tideInstance holds the ledger service and its configuration for the
// lifetime of a CLI invocation.
type tideInstance struct {
	tide *tide.Tide
	cnf  *config.Configuration
}

// recoverPanic handles any panics during program execution and logs the error using Logrus.
func recoverPanic() {
	if rec := recover(); rec != nil {
		logrus.Error(rec)
		os.Exit(1)
	}
}

// preRun sets up the configuration and initializes the ledger before running
// any command. The config path is read through a pointer because the flag is
// only populated once the command line has been parsed.
func preRun(app *tideInstance, configFile *string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := config.InitConfig(*configFile)
		if err != nil {
			log.Fatal("error loading config", err)
		}

		cnf, err := config.Fetch()
		if err != nil {
			return err
		}

		newTide, err := tide.NewTide()
		if err != nil {
			log.Fatal(err)
		}

		app.tide = newTide
		app.cnf = cnf

		return nil
	}
}

// NewCLI creates the command-line interface (CLI) for the Tide ledger.
func NewCLI() *Tide {
	var configFile string
	b := &tideInstance{}

	var rootCmd = &cobra.Command{
		Use:   "tide",
		Short: "In-memory retail bank ledger",
		Run:   func(cmd *cobra.Command, args []string) {},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "tide.json", "Configuration file for the ledger")

	rootCmd.PersistentPreRunE = preRun(b, &configFile)

	rootCmd.AddCommand(serverCommands(b))

	return &Tide{cmd: rootCmd}
}

// executeCLI runs the root command, handling any errors that occur during execution.
func (w Tide) executeCLI() {
	if err := w.cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	defer recoverPanic()

	cli := NewCLI()
	cli.executeCLI()
}
