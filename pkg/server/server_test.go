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
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/consensys/stark-vrf/pkg/util/field/felt"
	"github.com/consensys/stark-vrf/pkg/vrf"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
)

const (
	publicKeySeven = "E([3285470181182513595299391888669018264373825695633626141263541088056464172983," +
		"407217118062758744964593760322705378299439026911040607736478266570367095223])"
	hy42     = "1370423606037616038806867413215722312186658174101130344531309950069803237306"
	gammaX42 = "211581782854282878101217515312732598097467150564389044856665258829546344989"
	beta42   = "2970881600327748750815186596790059734693284657791464166909195042488106600783"
)

func Test_Response(t *testing.T) {
	srv := newServer(t, nil)
	//
	for _, path := range []string{"/", "/api/vrf"} {
		for _, method := range []string{http.MethodGet, http.MethodPost} {
			rec := request(srv, method, path)
			require.Equal(t, http.StatusOK, rec.Code, "%s %s", method, path)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assertCorsHeaders(t, rec)
			// Exactly the expected keys
			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Len(t, body, 8)
			//
			for _, key := range []string{"public_key", "seed", "proof_gamma_x", "proof_gamma_y", "proof_c",
				"proof_s", "proof_verify_hint", "beta"} {
				assert.Contains(t, body, key)
			}
		}
	}
}

func Test_KnownAnswer(t *testing.T) {
	srv := newServer(t, atomic.NewUint64(42))
	//
	response := decode(t, request(srv, http.MethodGet, "/"))
	assert.Equal(t, publicKeySeven, response.PublicKey)
	assert.Equal(t, "42", response.Seed)
	assert.Equal(t, gammaX42, response.ProofGammaX)
	assert.Equal(t, beta42, response.Beta)
	// Response verifies
	proof, err := vrf.ParseProofText(response.ProofGammaX, response.ProofGammaY, response.ProofC, response.ProofS)
	require.NoError(t, err)
	ok, err := vrf.Verify(srv.engine.PublicKey(), []felt.Element{felt.New(42)}, proof)
	require.NoError(t, err)
	assert.True(t, ok)
	//
	// Hint is the y-coordinate of the mapped point
	assert.Equal(t, hy42, response.ProofVerifyHint)
	hint, err := felt.Parse(response.ProofVerifyHint)
	require.NoError(t, err)
	h, err := srv.engine.CheckSqrtRatioHint([]felt.Element{felt.New(42)}, 0, hint)
	require.NoError(t, err)
	assert.Equal(t, hy42, h.Y().String())
}

func Test_VerifyHint(t *testing.T) {
	srv := newServer(t, atomic.NewUint64(0))
	//
	for i := uint64(0); i < 30; i++ {
		response := decode(t, request(srv, http.MethodGet, "/"))
		require.Equal(t, felt.New(i).String(), response.Seed)
		//
		h, err := srv.engine.HashToCurve([]felt.Element{felt.New(i)})
		require.NoError(t, err)
		assert.Equal(t, h.Y().String(), response.ProofVerifyHint, "seed %d", i)
	}
}

func Test_SeedCounter(t *testing.T) {
	counter := atomic.NewUint64(100)
	srv := newServer(t, counter)
	//
	assert.Equal(t, "100", decode(t, request(srv, http.MethodGet, "/")).Seed)
	assert.Equal(t, "101", decode(t, request(srv, http.MethodPost, "/api/vrf")).Seed)
	assert.Equal(t, uint64(102), counter.Load())
	// Default counter
	srv = newServer(t, nil)
	assert.Equal(t, "42", decode(t, request(srv, http.MethodGet, "/")).Seed)
}

func Test_ConcurrentSeeds(t *testing.T) {
	var (
		counter = atomic.NewUint64(0)
		srv     = newServer(t, counter)
		seeds   = make([]string, 16)
		wg      sync.WaitGroup
	)
	//
	for i := range seeds {
		wg.Add(1)
		//
		go func(i int) {
			defer wg.Done()
			//
			var response Response
			//
			rec := request(srv, http.MethodGet, "/")
			if json.Unmarshal(rec.Body.Bytes(), &response) == nil {
				seeds[i] = response.Seed
			}
		}(i)
	}
	//
	wg.Wait()
	// Every seed is issued exactly once
	seen := make(map[string]bool)
	for _, seed := range seeds {
		assert.NotEmpty(t, seed)
		assert.False(t, seen[seed], "seed %s issued twice", seed)
		seen[seed] = true
	}
	//
	assert.Equal(t, uint64(len(seeds)), counter.Load())
}

func Test_Options(t *testing.T) {
	srv := newServer(t, nil)
	// Plain
	rec := request(srv, http.MethodOptions, "/api/vrf")
	assert.Equal(t, http.StatusOK, rec.Code)
	assertCorsHeaders(t, rec)
	// Preflight
	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assertCorsHeaders(t, rec)
	// Cross origin request
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://example.com")
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assertCorsHeaders(t, rec)
	// No proof issued for options
	assert.Equal(t, uint64(DefaultSeed+1), srv.seed.Load())
}

func Test_NotFound(t *testing.T) {
	srv := newServer(t, nil)
	//
	assert.Equal(t, http.StatusNotFound, request(srv, http.MethodGet, "/api/other").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, request(srv, http.MethodDelete, "/").Code)
	// Metrics disabled
	assert.Equal(t, http.StatusNotFound, request(srv, http.MethodGet, "/metrics").Code)
}

func Test_Metrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	sk, err := vrf.ParseSecretKey("7")
	require.NoError(t, err)
	srv, err := New(sk, nil, registry)
	require.NoError(t, err)
	//
	request(srv, http.MethodGet, "/")
	request(srv, http.MethodGet, "/")
	//
	rec := request(srv, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `stark_vrf_requests_total{code="200"} 2`)
	assert.Contains(t, body, "stark_vrf_prove_duration_seconds_count 2")
	// Registering twice fails
	_, err = New(sk, nil, registry)
	assert.Error(t, err)
}

func Test_InvalidKey(t *testing.T) {
	_, err := New(vrf.SecretKey{}, nil, nil)
	assert.ErrorIs(t, err, vrf.ErrInvalidSecretKey)
}

func Test_ListenAndServe(t *testing.T) {
	srv := newServer(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	//
	go func() {
		done <- ListenAndServe(ctx, "127.0.0.1:0", srv)
	}()
	//
	time.Sleep(50 * time.Millisecond)
	cancel()
	//
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
	// Invalid address
	err := ListenAndServe(context.Background(), "256.0.0.1:-1", srv)
	assert.Error(t, err)
}

func newServer(t *testing.T, counter *atomic.Uint64) *Server {
	sk, err := vrf.ParseSecretKey("7")
	require.NoError(t, err)
	srv, err := New(sk, counter, nil)
	require.NoError(t, err)
	//
	return srv
}

func request(srv *Server, method string, path string) *httptest.ResponseRecorder {
	var body io.Reader
	//
	if method == http.MethodPost {
		body = strings.NewReader("{}")
	}
	//
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(method, path, body))
	//
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	var response Response
	//
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	//
	return response
}

func assertCorsHeaders(t *testing.T, rec *httptest.ResponseRecorder) {
	assert.Len(t, rec.Header().Values("Access-Control-Allow-Origin"), 1)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", rec.Header().Get("Access-Control-Allow-Headers"))
}
