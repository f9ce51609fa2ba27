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
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/consensys/stark-vrf/pkg/config"
	"github.com/consensys/stark-vrf/pkg/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/atomic"
)

var serveCmd = &cobra.Command{
	Use:   "serve [flags]",
	Short: "Serve proofs over HTTP.",
	Long: `Serve proofs over HTTP.  Each request to "/" or "/api/vrf" is answered with a
	proof for the next seed, which starts from --seed-start and increments by one
	for each request.  Settings may also be given via the environment (e.g.
	SECRET_KEY) or a config file.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		//
		if err := serve(ctx, cfg); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
	},
}

// Serve proofs until the given context is cancelled.
func serve(ctx context.Context, cfg *config.Config) error {
	var registry *prometheus.Registry
	//
	sk, err := cfg.Key()
	if err != nil {
		return err
	}
	//
	if cfg.Metrics {
		registry = prometheus.NewRegistry()
		registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}
	//
	srv, err := server.New(sk, atomic.NewUint64(cfg.SeedStart), registry)
	if err != nil {
		return err
	}
	//
	log.WithFields(log.Fields{
		"public_key": sk.PublicKey().String(),
		"seed":       cfg.SeedStart,
		"metrics":    cfg.Metrics,
	}).Info("serving proofs")
	//
	return server.ListenAndServe(ctx, cfg.ListenAddr, srv)
}

//nolint:errcheck
func init() {
	config.RegisterFlags(serveCmd.Flags())
	rootCmd.AddCommand(serveCmd)
}
