// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func newTestServer(limit rate.Limit, burst int) *Server {
	cfg := NewConfig()
	cfg.RateLimit = limit
	cfg.RateLimitBurst = burst
	return &Server{
		config:      cfg,
		rateLimiter: rate.NewLimiter(limit, burst),
	}
}

func record(h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestRequestIDMiddleware(t *testing.T) {
	valid := uuid.New().String()

	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "missing id is generated", incoming: ""},
		{name: "valid id is kept", incoming: valid, keep: true},
		{name: "invalid id is replaced", incoming: "not-a-uuid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(100, 200)

			var seen string
			h := s.requestIDMiddleware(func(w http.ResponseWriter, r *http.Request) {
				seen = RequestID(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/v1/facts", nil)
			if tt.incoming != "" {
				req.Header.Set("X-Request-Id", tt.incoming)
			}
			rec := record(h, req)

			_, err := uuid.Parse(seen)
			require.NoError(t, err, "request id %q", seen)
			assert.Equal(t, seen, rec.Header().Get("X-Request-Id"))
			if tt.keep {
				assert.Equal(t, tt.incoming, seen)
			} else {
				assert.NotEqual(t, tt.incoming, seen)
			}
		})
	}
}

func TestVersionMiddleware(t *testing.T) {
	tests := []struct {
		accept string
		want   string
	}{
		{accept: "", want: DefaultAPIVersion},
		{accept: "application/json", want: DefaultAPIVersion},
		{accept: "application/vnd.nvidia.nodefacts.v1+json", want: "v1"},
		{accept: "application/vnd.nvidia.nodefacts.v9+json", want: DefaultAPIVersion},
	}

	for _, tt := range tests {
		t.Run(tt.accept, func(t *testing.T) {
			s := newTestServer(100, 200)

			var stored any
			h := s.versionMiddleware(func(w http.ResponseWriter, r *http.Request) {
				stored = r.Context().Value(contextKeyAPIVersion)
			})

			req := httptest.NewRequest(http.MethodGet, "/v1/facts", nil)
			req.Header.Set("Accept", tt.accept)
			rec := record(h, req)

			assert.Equal(t, tt.want, rec.Header().Get("X-API-Version"))
			assert.Equal(t, tt.want, stored)
		})
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	s := newTestServer(1, 2)
	h := s.rateLimitMiddleware(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for i := 0; i < 2; i++ {
		rec := record(h, httptest.NewRequest(http.MethodGet, "/v1/facts", nil))
		require.Equal(t, http.StatusOK, rec.Code, "request %d", i)
		assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Limit"))
		assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Reset"))
	}

	rec := record(h, httptest.NewRequest(http.MethodGet, "/v1/facts", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "RATE_LIMIT_EXCEEDED")
}

func TestPanicRecoveryMiddleware(t *testing.T) {
	s := newTestServer(100, 200)

	t.Run("panic becomes 500", func(t *testing.T) {
		h := s.panicRecoveryMiddleware(func(http.ResponseWriter, *http.Request) {
			panic("uname exploded")
		})
		rec := record(h, httptest.NewRequest(http.MethodGet, "/v1/facts", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "INTERNAL")
		assert.NotContains(t, rec.Body.String(), "uname exploded")
	})

	t.Run("normal requests pass through", func(t *testing.T) {
		h := s.panicRecoveryMiddleware(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusAccepted)
		})
		rec := record(h, httptest.NewRequest(http.MethodGet, "/v1/facts", nil))

		assert.Equal(t, http.StatusAccepted, rec.Code)
	})
}

func TestLoggingAndMetricsMiddleware_PreserveStatus(t *testing.T) {
	s := newTestServer(100, 200)

	for _, status := range []int{http.StatusOK, http.StatusNotFound, http.StatusGatewayTimeout} {
		h := s.metricsMiddleware(s.loggingMiddleware(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(status)
		}))
		rec := record(h, httptest.NewRequest(http.MethodGet, "/v1/facts", nil))

		assert.Equal(t, status, rec.Code)
	}
}

func TestWithMiddleware_FullChain(t *testing.T) {
	s := newTestServer(100, 200)

	var id string
	h := s.withMiddleware(func(w http.ResponseWriter, r *http.Request) {
		id = RequestID(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	rec := record(h, httptest.NewRequest(http.MethodGet, "/v1/facts", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, id)
	for _, header := range []string{"X-Request-Id", "X-API-Version", "X-RateLimit-Limit", "X-RateLimit-Remaining"} {
		assert.NotEmpty(t, rec.Header().Get(header), header)
	}
}
