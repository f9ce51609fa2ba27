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
package main

import (
	"crypto/sha256"
	"fmt"
	"math/big"
	"os"
	"os/exec"
	"slices"
	"strings"

	"github.com/consensys/bavard"
)

const copyrightHolder = "Consensys Software Inc."

// Hades parameters of the Starknet Poseidon instance.
const (
	width         = 3
	fullRounds    = 8
	partialRounds = 83
	seed          = "Hades"
	// modulus of the STARK base field, 2²⁵¹ + 17·2¹⁹² + 1
	modulus = "3618502788666131213697322783095070105623107215331596699973092056135872020481"
)

//go:generate go run main.go
func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2025, "stark-vrf")
	//
	cfg, err := newPoseidonConfig()
	assertNoError(err, "for poseidon constants")
	//
	assertNoError(bgen.Generate(cfg, "poseidon", "templates",
		bavard.Entry{
			File:      "../../pkg/poseidon/constants.go",
			Templates: []string{"constants.go.tmpl"},
		},
	), "for poseidon constants")
	// run gofmt on generated file
	runCmd("gofmt", "-w", "../../pkg/poseidon/constants.go")
}

func runCmd(name string, arg ...string) {
	fmt.Println(name, strings.Join(arg, " "))
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	assertNoError(cmd.Run(), "")
}

type poseidonConfig struct {
	Width         int
	FullRounds    int
	PartialRounds int
	// Round constants in Montgomery form, as little-endian 64bit limbs.
	RoundConstants [][][4]uint64
}

// Each round constant is sha256(seed ‖ i) reduced modulo p, with i numbering
// constants consecutively across rounds.
func newPoseidonConfig() (*poseidonConfig, error) {
	var (
		p, ok   = new(big.Int).SetString(modulus, 10)
		rounds  = fullRounds + partialRounds
		montR   = new(big.Int).Lsh(big.NewInt(1), 256)
		mask    = new(big.Int).SetUint64(^uint64(0))
		configs = make([][][4]uint64, rounds)
	)
	//
	if !ok {
		return nil, fmt.Errorf("invalid modulus")
	}
	//
	for r := 0; r < rounds; r++ {
		configs[r] = make([][4]uint64, width)
		//
		for j := 0; j < width; j++ {
			var (
				digest = sha256.Sum256(fmt.Appendf(nil, "%s%d", seed, r*width+j))
				c      = new(big.Int).SetBytes(digest[:])
			)
			// Reduce and convert into Montgomery form
			c.Mod(c, p)
			c.Mul(c, montR).Mod(c, p)
			//
			for k := 0; k < 4; k++ {
				limb := new(big.Int).Rsh(c, uint(64*k))
				configs[r][j][k] = limb.And(limb, mask).Uint64()
			}
		}
	}
	//
	return &poseidonConfig{width, fullRounds, partialRounds, configs}, nil
}

func assertNoError(err error, contextAndArgs ...any) {
	if err != nil {
		msg := err.Error()

		if len(contextAndArgs) > 0 {
			allArgs := append(slices.Clone(contextAndArgs[1:]), err)
			msg = fmt.Sprintf(contextAndArgs[0].(string)+": %v", allArgs...)
		}

		fmt.Println(msg)
		os.Exit(1)
	}
}
