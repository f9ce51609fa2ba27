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
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/consensys/stark-vrf/pkg/config"
	"github.com/consensys/stark-vrf/pkg/curve"
	"github.com/consensys/stark-vrf/pkg/util"
	"github.com/consensys/stark-vrf/pkg/util/termio"
	"github.com/consensys/stark-vrf/pkg/vrf"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var proveCmd = &cobra.Command{
	Use:   "prove [flags] input...",
	Short: "Construct a proof for a given input.",
	Long: `Construct a proof for a given input, which is a sequence of field elements.
	The secret key is given either via --secret-key, the SECRET_KEY environment
	variable, or a config file.`,
	Run: func(cmd *cobra.Command, args []string) {
		var record *termio.Record
		//
		sk, err := loadSecretKey(cmd)
		if err == nil {
			record, err = prove(sk, args)
		}
		//
		writeRecord(cmd, record, err)
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify [flags] input...",
	Short: "Verify a proof for a given input.",
	Long: `Verify a proof for a given input against a given public key.  The proof is
	given either in its hex encoding (--proof) or as decimal components (--gamma-x,
	--gamma-y, --c and --s).  Exits with status 1 if the proof is invalid.`,
	Run: func(cmd *cobra.Command, args []string) {
		record, ok, err := verify(GetString(cmd, "public-key-x"), GetString(cmd, "public-key-y"),
			getProofFlags(cmd), args)
		//
		writeRecord(cmd, record, err)
		//
		if !ok {
			os.Exit(1)
		}
	},
}

var betaCmd = &cobra.Command{
	Use:   "beta [flags]",
	Short: "Extract the output from a proof.",
	Long: `Extract the output from a proof, given either in its hex encoding or as
	decimal components.  This does not check the proof is valid.`,
	Run: func(cmd *cobra.Command, args []string) {
		record, err := beta(getProofFlags(cmd))
		//
		writeRecord(cmd, record, err)
	},
}

var hintCmd = &cobra.Command{
	Use:   "hint [flags] input...",
	Short: "Compute the square root ratio hint for a given input.",
	Long: `Compute the square root ratio hint for a given input, which allows a verifier
	to map the input onto the curve without computing square roots.`,
	Run: func(cmd *cobra.Command, args []string) {
		record, err := hint(args)
		//
		writeRecord(cmd, record, err)
	},
}

// Construct a proof for the given input arguments.
func prove(sk vrf.SecretKey, args []string) (*termio.Record, error) {
	input, err := parseInput(args)
	if err != nil {
		return nil, err
	}
	//
	engine, err := vrf.New(sk.PublicKey())
	if err != nil {
		return nil, err
	}
	//
	stats := util.NewPerfStats()
	log.WithField("input", len(input)).Debug("proving")
	//
	proof, err := engine.Prove(sk, input)
	if err != nil {
		return nil, err
	}
	//
	stats.Log("proving")
	//
	output, err := engine.ProofToHash(proof)
	if err != nil {
		return nil, err
	}
	//
	witness, attempt, err := engine.HashToSqrtRatioHint(input)
	if err != nil {
		return nil, err
	}
	//
	return termio.NewRecord().
		Add("public_key_x", engine.PublicKey().X().String()).
		Add("public_key_y", engine.PublicKey().Y().String()).
		Add("proof_gamma_x", proof.Gamma.X().String()).
		Add("proof_gamma_y", proof.Gamma.Y().String()).
		Add("proof_c", proof.C.String()).
		Add("proof_s", proof.S.String()).
		Add("proof", hex.EncodeToString(proof.Bytes())).
		Add("proof_verify_hint", witness.String()).
		Add("proof_verify_hint_attempt", strconv.FormatUint(attempt, 10)).
		Add("beta", output.String()), nil
}

// Verify a proof for the given input arguments.
func verify(x, y string, flags proofFlags, args []string) (*termio.Record, bool, error) {
	var (
		pk    curve.Point
		proof vrf.Proof
		err   error
	)
	//
	input, err := parseInput(args)
	if err != nil {
		return nil, false, err
	} else if pk, err = vrf.ParsePublicKey(x, y); err != nil {
		return nil, false, err
	} else if proof, err = flags.parse(); err != nil {
		return nil, false, err
	}
	//
	ok, err := vrf.Verify(pk, input, proof)
	if err != nil {
		return nil, false, err
	}
	//
	record := termio.NewRecord().Add("valid", strconv.FormatBool(ok))
	//
	if ok {
		output, err := vrf.ProofToHash(proof)
		if err != nil {
			return nil, false, err
		}
		//
		record.Add("beta", output.String())
	}
	//
	return record, ok, nil
}

// Extract the output of an encoded proof.
func beta(flags proofFlags) (*termio.Record, error) {
	proof, err := flags.parse()
	if err != nil {
		return nil, err
	}
	//
	output, err := vrf.ProofToHash(proof)
	if err != nil {
		return nil, err
	}
	//
	return termio.NewRecord().Add("beta", output.String()), nil
}

// Compute the hint for the given input arguments.
func hint(args []string) (*termio.Record, error) {
	input, err := parseInput(args)
	if err != nil {
		return nil, err
	}
	// The hint does not depend on the public key, hence any valid key will do.
	engine, err := vrf.New(curve.Generator())
	if err != nil {
		return nil, err
	}
	//
	witness, attempt, err := engine.HashToSqrtRatioHint(input)
	if err != nil {
		return nil, err
	}
	// Sanity check the witness recovers the mapped point.
	h, err := engine.CheckSqrtRatioHint(input, attempt, witness)
	if err != nil {
		return nil, err
	}
	//
	return termio.NewRecord().
		Add("x", h.X().String()).
		Add("proof_verify_hint", witness.String()).
		Add("attempt", strconv.FormatUint(attempt, 10)), nil
}

// A proof as given on the command line, either hex encoded or as the decimal
// (or "0x" prefixed hex) representation of its components.
type proofFlags struct {
	encoded        string
	gammaX, gammaY string
	c, s           string
}

func getProofFlags(cmd *cobra.Command) proofFlags {
	return proofFlags{
		encoded: GetString(cmd, "proof"),
		gammaX:  GetString(cmd, "gamma-x"),
		gammaY:  GetString(cmd, "gamma-y"),
		c:       GetString(cmd, "c"),
		s:       GetString(cmd, "s"),
	}
}

func (p proofFlags) parse() (vrf.Proof, error) {
	components := p.gammaX != "" || p.gammaY != "" || p.c != "" || p.s != ""
	//
	switch {
	case p.encoded != "" && components:
		return vrf.Proof{}, errors.New("proof given both encoded and as components")
	case components:
		if p.gammaX == "" || p.gammaY == "" || p.c == "" || p.s == "" {
			return vrf.Proof{}, errors.New("proof components require all of --gamma-x, --gamma-y, --c and --s")
		}
		//
		return vrf.ParseProofText(p.gammaX, p.gammaY, p.c, p.s)
	default:
		return decodeProof(p.encoded)
	}
}

// Decode a proof from its hex encoding, with or without a "0x" prefix.
func decodeProof(encoded string) (vrf.Proof, error) {
	encoded = strings.TrimPrefix(strings.TrimPrefix(encoded, "0x"), "0X")
	//
	bytes, err := hex.DecodeString(encoded)
	if err != nil {
		return vrf.Proof{}, fmt.Errorf("invalid proof encoding: %w", err)
	}
	//
	return vrf.ParseProof(bytes)
}

//nolint:errcheck
func init() {
	proveCmd.Flags().String(config.FlagName(config.SecretKey), "", "secret key (decimal or 0x-prefixed hex)")
	verifyCmd.Flags().String("public-key-x", "", "x-coordinate of the public key")
	verifyCmd.Flags().String("public-key-y", "", "y-coordinate of the public key")
	verifyCmd.MarkFlagRequired("public-key-x")
	verifyCmd.MarkFlagRequired("public-key-y")
	//
	for _, c := range []*cobra.Command{verifyCmd, betaCmd} {
		c.Flags().String("proof", "", "hex encoded proof")
		c.Flags().String("gamma-x", "", "x-coordinate of the proof's gamma")
		c.Flags().String("gamma-y", "", "y-coordinate of the proof's gamma")
		c.Flags().String("c", "", "challenge of the proof")
		c.Flags().String("s", "", "response of the proof")
	}
	//
	rootCmd.AddCommand(proveCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(betaCmd)
	rootCmd.AddCommand(hintCmd)
}
