// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"

	"github.com/consensys/stark-vrf/pkg/config"
	"github.com/consensys/stark-vrf/pkg/util/field/felt"
	"github.com/consensys/stark-vrf/pkg/util/termio"
	"github.com/consensys/stark-vrf/pkg/vrf"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string, or panic if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned integer, or panic if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint64 {
	r, err := cmd.Flags().GetUint64(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Load the configuration visible to a given command, which combines its flags,
// the environment and any config file given.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	v, err := config.New(cmd.Flags(), GetString(cmd, "config"))
	if err != nil {
		return nil, err
	}
	//
	return config.Load(v)
}

// Load the secret key visible to a given command.
func loadSecretKey(cmd *cobra.Command) (vrf.SecretKey, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return vrf.SecretKey{}, err
	}
	//
	return cfg.Key()
}

// Parse the input of the function from a given set of command-line arguments,
// each of which is a field element.
func parseInput(args []string) ([]felt.Element, error) {
	input := make([]felt.Element, len(args))
	//
	for i, arg := range args {
		var err error
		//
		if input[i], err = felt.Parse(arg); err != nil {
			return nil, fmt.Errorf("input %d: %w", i, err)
		}
	}
	//
	return input, nil
}

// Write the outcome of a command, or report its error and exit.
func writeRecord(cmd *cobra.Command, record *termio.Record, err error) {
	if err == nil {
		err = record.Write(cmd.OutOrStdout(), GetFlag(cmd, "json"))
	}
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
}
