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
	"github.com/consensys/stark-vrf/pkg/config"
	"github.com/consensys/stark-vrf/pkg/util/termio"
	"github.com/consensys/stark-vrf/pkg/vrf"
	"github.com/spf13/cobra"
)

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate a fresh key pair.",
	Long:  `Generate a fresh secret key, sampled uniformly from the scalar field, and its public key.`,
	Run: func(cmd *cobra.Command, args []string) {
		sk, err := vrf.GenerateKey()
		//
		writeRecord(cmd, keyRecord(sk, true), err)
	},
}

var pubkeyCmd = &cobra.Command{
	Use:   "pubkey [flags]",
	Short: "Derive the public key of a secret key.",
	Long: `Derive the public key of a secret key.  The secret key is given either
	via --secret-key, the SECRET_KEY environment variable, or a config file.`,
	Run: func(cmd *cobra.Command, args []string) {
		sk, err := loadSecretKey(cmd)
		//
		writeRecord(cmd, keyRecord(sk, false), err)
	},
}

// Construct the output record for a given key pair.
func keyRecord(sk vrf.SecretKey, secret bool) *termio.Record {
	var (
		record = termio.NewRecord()
		pk     = sk.PublicKey()
	)
	//
	if secret {
		record.Add("secret_key", sk.Scalar().String())
	}
	//
	return record.Add("public_key_x", pk.X().String()).Add("public_key_y", pk.Y().String())
}

//nolint:errcheck
func init() {
	pubkeyCmd.Flags().String(config.FlagName(config.SecretKey), "", "secret key (decimal or 0x-prefixed hex)")
	rootCmd.AddCommand(keygenCmd)
	rootCmd.AddCommand(pubkeyCmd)
}
