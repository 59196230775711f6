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

// Package server provides the HTTP server used by nodefactsd.
//
// API routes registered with WithHandler run behind a middleware chain:
//
//	metrics -> version negotiation -> request id -> panic recovery -> rate limit -> logging -> handler
//
// System routes are served without rate limiting:
//
//	GET /health   liveness
//	GET /ready    readiness; 503 until the listener is up and during shutdown
//	GET /metrics  Prometheus metrics
//
// Errors are written as ErrorResponse JSON. WriteErrorFromErr maps a
// pkg/errors StructuredError code to the HTTP status and retryable flag.
//
// Configuration comes from NewConfig, which honours the PORT and
// SHUTDOWN_TIMEOUT_SECONDS environment variables:
//
//	s := server.New(
//	    server.WithName("nodefactsd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{"/v1/facts": h}),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Run blocks until ctx is canceled or SIGINT/SIGTERM arrives and then shuts
// down within Config.ShutdownTimeout.
package server
