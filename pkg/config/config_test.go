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
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/consensys/stark-vrf/pkg/vrf"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Defaults(t *testing.T) {
	clearEnv(t)
	//
	config := load(t, newFlags(t), "")
	assert.Equal(t, "", config.SecretKey)
	assert.Equal(t, DefaultSeedStart, config.SeedStart)
	assert.Equal(t, DefaultListenAddr, config.ListenAddr)
	assert.False(t, config.Metrics)
	//
	_, err := config.Key()
	assert.Error(t, err)
}

func Test_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv("SECRET_KEY", "7")
	t.Setenv("SEED_START", "100")
	t.Setenv("METRICS", "true")
	//
	config := load(t, newFlags(t), "")
	assert.Equal(t, "7", config.SecretKey)
	assert.Equal(t, uint64(100), config.SeedStart)
	assert.True(t, config.Metrics)
	//
	sk, err := config.Key()
	require.NoError(t, err)
	assert.Equal(t, "7", sk.Scalar().String())
}

func Test_FlagsOverrideEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("SECRET_KEY", "7")
	t.Setenv("LISTEN_ADDR", ":1234")
	//
	config := load(t, newFlags(t, "--secret-key", "8", "--seed-start", "5"), "")
	assert.Equal(t, "8", config.SecretKey)
	assert.Equal(t, uint64(5), config.SeedStart)
	assert.Equal(t, ":1234", config.ListenAddr)
}

func Test_DotEnvFile(t *testing.T) {
	clearEnv(t)
	//
	file := filepath.Join(t.TempDir(), "vrf")
	contents := "SECRET_KEY=123456789\nSEED_START=7\n"
	require.NoError(t, os.WriteFile(file, []byte(contents), 0644))
	//
	config := load(t, newFlags(t), file)
	assert.Equal(t, "123456789", config.SecretKey)
	assert.Equal(t, uint64(7), config.SeedStart)
	// Environment takes precedence over the file
	t.Setenv("SEED_START", "9")
	config = load(t, newFlags(t), file)
	assert.Equal(t, uint64(9), config.SeedStart)
}

func Test_MissingFile(t *testing.T) {
	_, err := New(newFlags(t), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func Test_Invalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("SEED_START", "forty-two")
	//
	v, err := New(newFlags(t), "")
	require.NoError(t, err)
	_, err = Load(v)
	assert.Error(t, err)
	//
	config := Config{SecretKey: "0"}
	_, err = config.Key()
	assert.ErrorIs(t, err, vrf.ErrInvalidSecretKey)
}

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(flags)
	require.NoError(t, flags.Parse(args))
	//
	return flags
}

func load(t *testing.T, flags *pflag.FlagSet, file string) *Config {
	v, err := New(flags, file)
	require.NoError(t, err)
	config, err := Load(v)
	require.NoError(t, err)
	//
	return config
}

// clearEnv ensures the ambient environment does not leak into a test.
func clearEnv(t *testing.T) {
	for _, key := range []string{"SECRET_KEY", "SEED_START", "LISTEN_ADDR", "METRICS"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}
