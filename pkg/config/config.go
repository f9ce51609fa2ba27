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
	"path/filepath"
	"strconv"
	"strings"

	"github.com/consensys/stark-vrf/pkg/vrf"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Configuration keys.  Each is read from the environment under its uppercase
// name (e.g. SECRET_KEY), and from the command line under its hyphenated name
// (e.g. --secret-key).
const (
	SecretKey  = "secret_key"
	SeedStart  = "seed_start"
	ListenAddr = "listen_addr"
	Metrics    = "metrics"
)

// Defaults for optional settings.
const (
	DefaultSeedStart  uint64 = 42
	DefaultListenAddr        = ":8080"
)

// Config captures the settings of a running service.
type Config struct {
	// Decimal (or "0x" prefixed hexadecimal) secret key.
	SecretKey string
	// First seed handed out by the service.
	SeedStart uint64
	// Address on which the service listens.
	ListenAddr string
	// Whether or not prometheus metrics are exposed.
	Metrics bool
}

// RegisterFlags adds the command line flags corresponding to each
// configuration key to the given flag set.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String(FlagName(SecretKey), "", "secret key used for proving")
	flags.Uint64(FlagName(SeedStart), DefaultSeedStart, "first seed issued")
	flags.String(FlagName(ListenAddr), DefaultListenAddr, "address to listen on")
	flags.Bool(FlagName(Metrics), false, "expose prometheus metrics on /metrics")
}

// New constructs a viper instance reading settings from the given flags (when
// set explicitly), the environment, the given file (if non-empty) and finally
// built-in defaults, in that order of precedence.  Files without an extension
// are read as dotenv files.
func New(flags *pflag.FlagSet, file string) (*viper.Viper, error) {
	v := viper.New()
	//
	v.SetDefault(SeedStart, DefaultSeedStart)
	v.SetDefault(ListenAddr, DefaultListenAddr)
	v.SetDefault(Metrics, false)
	v.AutomaticEnv()
	//
	if flags != nil {
		for _, key := range []string{SecretKey, SeedStart, ListenAddr, Metrics} {
			if flag := flags.Lookup(FlagName(key)); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, errors.Wrapf(err, "binding flag %s", flag.Name)
				}
			}
		}
	}
	//
	if file != "" {
		v.SetConfigFile(file)
		//
		if filepath.Ext(file) == "" {
			v.SetConfigType("env")
		}
		//
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config file %s", file)
		}
	}
	//
	return v, nil
}

// Load extracts the configuration from a given viper instance.
func Load(v *viper.Viper) (*Config, error) {
	var (
		config Config
		err    error
	)
	//
	config.SecretKey = strings.TrimSpace(v.GetString(SecretKey))
	config.ListenAddr = v.GetString(ListenAddr)
	config.Metrics = v.GetBool(Metrics)
	// Parsed by hand so malformed values are rejected rather than read as zero.
	seed := strings.TrimSpace(v.GetString(SeedStart))
	if config.SeedStart, err = strconv.ParseUint(seed, 10, 64); err != nil {
		return nil, errors.Wrapf(err, "invalid %s %q", strings.ToUpper(SeedStart), seed)
	}
	//
	return &config, nil
}

// Key parses the configured secret key.
func (c *Config) Key() (vrf.SecretKey, error) {
	if c.SecretKey == "" {
		return vrf.SecretKey{}, errors.Errorf("%s must be set", strings.ToUpper(SecretKey))
	}
	//
	sk, err := vrf.ParseSecretKey(c.SecretKey)
	//
	return sk, errors.Wrapf(err, "invalid %s", strings.ToUpper(SecretKey))
}

// FlagName returns the command line flag corresponding to a given key.
func FlagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}
