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

// Package api wires the nodefactsd HTTP API.
//
// Serve configures structured logging, registers the fact routes on a
// pkg/server Server and blocks until shutdown:
//
//	if err := api.Serve(); err != nil {
//	    log.Fatalf("server error: %v", err)
//	}
//
// # Endpoints
//
//   - GET /v1/facts?name=os&name=kernel&format=yaml  resolve facts on every request
//   - GET /health, GET /ready, GET /metrics           served by pkg/server
//
// Unknown fact names are rejected with 400 INVALID_REQUEST; the error
// details carry the available names and a suggestion when one is close.
package api
