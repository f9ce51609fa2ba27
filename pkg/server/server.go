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
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/consensys/stark-vrf/pkg/util/field/felt"
	"github.com/consensys/stark-vrf/pkg/vrf"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.uber.org/atomic"
)

// DefaultSeed is the first seed issued when no counter is supplied.
const DefaultSeed uint64 = 42

// Paths on which proofs are served.
var paths = []string{"/", "/api/vrf"}

// Response is the body returned for every proof request.  All field elements
// are rendered in decimal.
type Response struct {
	PublicKey       string `json:"public_key"`
	Seed            string `json:"seed"`
	ProofGammaX     string `json:"proof_gamma_x"`
	ProofGammaY     string `json:"proof_gamma_y"`
	ProofC          string `json:"proof_c"`
	ProofS          string `json:"proof_s"`
	ProofVerifyHint string `json:"proof_verify_hint"`
	Beta            string `json:"beta"`
}

// Server issues a fresh proof for each request, using successive values of a
// shared seed counter as the input.
type Server struct {
	key     vrf.SecretKey
	engine  *vrf.ECVRF
	seed    *atomic.Uint64
	metrics *metrics
	handler http.Handler
}

// New constructs a server proving with the given key.  The seed counter holds
// the next seed to be issued, and may be shared with other servers (when nil,
// a private counter starting from DefaultSeed is used).  Metrics
// are registered with, and exposed from, the given registry when it is
// non-nil.
func New(key vrf.SecretKey, seed *atomic.Uint64, registry *prometheus.Registry) (*Server, error) {
	if key.IsZero() {
		return nil, errors.Wrap(vrf.ErrInvalidSecretKey, "zero secret key")
	}
	//
	engine, err := vrf.New(key.PublicKey())
	if err != nil {
		return nil, errors.Wrap(err, "constructing engine")
	}
	//
	if seed == nil {
		seed = atomic.NewUint64(DefaultSeed)
	}
	//
	s := &Server{key: key, engine: engine, seed: seed}
	router := mux.NewRouter()
	//
	if registry != nil {
		if s.metrics, err = newMetrics(registry); err != nil {
			return nil, err
		}
		//
		router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}
	//
	for _, path := range paths {
		router.HandleFunc(path, s.serveProof).Methods(http.MethodGet, http.MethodPost)
		router.HandleFunc(path, s.serveOptions).Methods(http.MethodOptions)
	}
	//
	recovery := handlers.RecoveryHandler(handlers.RecoveryLogger(log.StandardLogger()))
	s.handler = recovery(router)
	//
	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// Prove constructs the response for a given seed.
func (s *Server) Prove(seed uint64) (*Response, error) {
	input := []felt.Element{felt.New(seed)}
	//
	proof, err := s.engine.Prove(s.key, input)
	if err != nil {
		return nil, errors.Wrapf(err, "proving seed %d", seed)
	}
	//
	beta, err := s.engine.ProofToHash(proof)
	if err != nil {
		return nil, errors.Wrapf(err, "hashing proof for seed %d", seed)
	}
	//
	hint, _, err := s.engine.HashToSqrtRatioHint(input)
	if err != nil {
		return nil, errors.Wrapf(err, "computing hint for seed %d", seed)
	}
	//
	return &Response{
		PublicKey:       s.engine.PublicKey().String(),
		Seed:            felt.New(seed).String(),
		ProofGammaX:     proof.Gamma.X().String(),
		ProofGammaY:     proof.Gamma.Y().String(),
		ProofC:          proof.C.String(),
		ProofS:          proof.S.String(),
		ProofVerifyHint: hint.String(),
		Beta:            beta.String(),
	}, nil
}

func (s *Server) serveProof(w http.ResponseWriter, r *http.Request) {
	var (
		start = time.Now()
		// Fetch and increment
		seed = s.seed.Inc() - 1
	)
	//
	response, err := s.Prove(seed)
	elapsed := time.Since(start)
	logger := log.WithFields(log.Fields{
		"method":  r.Method,
		"path":    r.URL.Path,
		"seed":    seed,
		"elapsed": elapsed,
	})
	//
	if err != nil {
		logger.WithError(err).Error("proof generation failed")
		s.metrics.observe(http.StatusInternalServerError, elapsed)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		//
		return
	}
	//
	logger.WithField("beta", response.Beta).Debug("proof issued")
	s.metrics.observe(http.StatusOK, elapsed)
	writeJSON(w, http.StatusOK, response)
}

func (s *Server) serveOptions(w http.ResponseWriter, r *http.Request) {
	setCorsHeaders(w)
	w.WriteHeader(http.StatusOK)
}

func setCorsHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	bytes, err := json.Marshal(body)
	if err != nil {
		// Only possible for unsupported types
		panic(err)
	}
	//
	setCorsHeaders(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//
	if _, err := w.Write(bytes); err != nil {
		log.WithError(err).Debug("writing response")
	}
}

// ListenAndServe serves the given handler on the given address until the
// context is cancelled, at which point the server is shut down gracefully.
func ListenAndServe(ctx context.Context, addr string, handler http.Handler) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	//
	errs := make(chan error, 1)
	//
	go func() {
		errs <- server.ListenAndServe()
	}()
	//
	log.WithField("addr", addr).Info("listening")
	//
	select {
	case err := <-errs:
		return errors.Wrapf(err, "serving on %s", addr)
	case <-ctx.Done():
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		//
		if err := server.Shutdown(shutdown); err != nil {
			return errors.Wrap(err, "shutting down")
		}
		//
		return nil
	}
}
