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

package api

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/NVIDIA/nodefacts/pkg/collector"
	"github.com/NVIDIA/nodefacts/pkg/defaults"
	apperrors "github.com/NVIDIA/nodefacts/pkg/errors"
	"github.com/NVIDIA/nodefacts/pkg/facts"
	"github.com/NVIDIA/nodefacts/pkg/header"
	"github.com/NVIDIA/nodefacts/pkg/measurement"
	"github.com/NVIDIA/nodefacts/pkg/serializer"
	"github.com/NVIDIA/nodefacts/pkg/server"
)

// FactsResponse is the body of GET /v1/facts.
type FactsResponse struct {
	header.Header `json:",inline" yaml:",inline"`

	Measurement *measurement.Measurement `json:"measurement" yaml:"measurement"`
}

// FactsHandler serves the node's facts. Every request runs a fresh collection.
type FactsHandler struct {
	Factory collector.Factory
	Version string

	// Timeout defaults to defaults.FactsHandlerTimeout.
	Timeout time.Duration
}

// HandleFacts handles GET /v1/facts.
//
// Query parameters:
//   - name: fact to include, repeatable or comma separated; default all
//   - format: json (default) or yaml
func (h *FactsHandler) HandleFacts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		server.WriteError(w, r, http.StatusMethodNotAllowed, apperrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{"method": r.Method})
		return
	}

	query := r.URL.Query()

	format := serializer.FormatJSON
	if f := query.Get("format"); f != "" {
		format = serializer.Format(f)
		if format != serializer.FormatJSON && format != serializer.FormatYAML {
			server.WriteError(w, r, http.StatusBadRequest, apperrors.ErrCodeInvalidRequest,
				"unsupported format", false, map[string]any{"format": f, "supported": []string{"json", "yaml"}})
			return
		}
	}

	names := facts.SplitNames(query["name"]...)
	if err := facts.ValidateNames(names); err != nil {
		server.WriteErrorFromErr(w, r, err, "invalid fact name", nil)
		return
	}

	timeout := h.Timeout
	if timeout <= 0 {
		timeout = defaults.FactsHandlerTimeout
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	m, err := h.Factory.CreateFactsCollector(names...).Collect(ctx)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "fact collection failed", nil)
		return
	}

	resp := FactsResponse{Measurement: m}
	resp.Init(header.KindFacts, h.Version)
	if id := server.RequestID(r.Context()); id != "" {
		resp.Metadata["request-id"] = id
	}

	if format == serializer.FormatYAML {
		var buf bytes.Buffer
		if err := serializer.NewWriter(format, &buf).Serialize(ctx, resp); err != nil {
			server.WriteErrorFromErr(w, r, err, "failed to serialize facts", nil)
			return
		}
		w.Header().Set("Content-Type", "application/yaml")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(buf.Bytes())
		return
	}

	serializer.RespondJSON(w, http.StatusOK, resp)
}
