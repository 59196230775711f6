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
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/nodefacts/pkg/collector"
	apperrors "github.com/NVIDIA/nodefacts/pkg/errors"
	"github.com/NVIDIA/nodefacts/pkg/facts"
	"github.com/NVIDIA/nodefacts/pkg/header"
	"github.com/NVIDIA/nodefacts/pkg/measurement"
	"github.com/NVIDIA/nodefacts/pkg/server"
)

type staticOS facts.OperatingSystemData

func (s staticOS) CollectData(_ *facts.Collection) facts.OperatingSystemData {
	return facts.OperatingSystemData(s)
}

// countingFactory builds collectors over fixed resolvers and counts calls.
type countingFactory struct {
	mu    sync.Mutex
	calls int
	names [][]string
	err   error
}

func (f *countingFactory) CreateFactsCollector(names ...string) collector.Collector {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.names = append(f.names, names)
	if f.err != nil {
		return failingCollector{err: f.err}
	}
	return &collector.FactsCollector{
		Resolvers: []facts.Resolver{
			facts.Kernel(staticKernel{Name: "Linux", Release: "6.8.0"}),
			facts.OperatingSystem(staticOS{Family: "Linux", Hardware: "x86_64", Architecture: "x86_64"}),
		},
		Names: names,
	}
}

type staticKernel facts.KernelData

func (s staticKernel) CollectData(_ *facts.Collection) facts.KernelData {
	return facts.KernelData(s)
}

type failingCollector struct {
	err error
}

func (c failingCollector) Collect(context.Context) (*measurement.Measurement, error) {
	return nil, c.err
}

func TestConstants(t *testing.T) {
	assert.Equal(t, "nodefactsd", name)
	assert.Equal(t, "dev", versionDefault)
	assert.NotEmpty(t, version)
	assert.NotEmpty(t, commit)
	assert.NotEmpty(t, date)
}

func TestRoutes(t *testing.T) {
	routes := Routes(&countingFactory{})

	h, ok := routes["/v1/facts"]
	require.True(t, ok)
	assert.NotNil(t, h)
	assert.Len(t, routes, 1)
}

func TestHandleFacts_All(t *testing.T) {
	f := &countingFactory{}
	h := &FactsHandler{Factory: f, Version: "v1.0.0"}

	w := httptest.NewRecorder()
	h.HandleFacts(w, httptest.NewRequest(http.MethodGet, "/v1/facts", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp FactsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, header.KindFacts, resp.Kind)
	assert.Equal(t, "v1.0.0", resp.Metadata[header.MetadataVersion])
	require.NotNil(t, resp.Measurement)
	assert.Equal(t, []string{"kernel", "os"}, resp.Measurement.SubtypeNames())

	arch, err := resp.Measurement.GetSubtype("os").GetString(measurement.KeyArchitecture)
	require.NoError(t, err)
	assert.Equal(t, "x86_64", arch)
}

func TestHandleFacts_NameFilter(t *testing.T) {
	f := &countingFactory{}
	h := &FactsHandler{Factory: f}

	w := httptest.NewRecorder()
	h.HandleFacts(w, httptest.NewRequest(http.MethodGet, "/v1/facts?name=os", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, [][]string{{"os"}}, f.names)

	var resp FactsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"os"}, resp.Measurement.SubtypeNames())
}

func TestHandleFacts_UnknownName(t *testing.T) {
	f := &countingFactory{}
	h := &FactsHandler{Factory: f}

	w := httptest.NewRecorder()
	h.HandleFacts(w, httptest.NewRequest(http.MethodGet, "/v1/facts?name=kernal", nil))

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, f.calls, "no collection for invalid input")

	var resp server.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(apperrors.ErrCodeInvalidRequest), resp.Code)
	assert.Equal(t, "kernel", resp.Details["suggestion"])
	assert.False(t, resp.Retryable)
}

func TestHandleFacts_YAML(t *testing.T) {
	h := &FactsHandler{Factory: &countingFactory{}}

	w := httptest.NewRecorder()
	h.HandleFacts(w, httptest.NewRequest(http.MethodGet, "/v1/facts?format=yaml&name=kernel", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/yaml", w.Header().Get("Content-Type"))

	var resp FactsResponse
	require.NoError(t, yaml.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, header.KindFacts, resp.Kind)
	assert.Equal(t, []string{"kernel"}, resp.Measurement.SubtypeNames())
}

func TestHandleFacts_BadFormat(t *testing.T) {
	h := &FactsHandler{Factory: &countingFactory{}}

	w := httptest.NewRecorder()
	h.HandleFacts(w, httptest.NewRequest(http.MethodGet, "/v1/facts?format=table", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleFacts_MethodNotAllowed(t *testing.T) {
	h := &FactsHandler{Factory: &countingFactory{}}

	w := httptest.NewRecorder()
	h.HandleFacts(w, httptest.NewRequest(http.MethodPost, "/v1/facts", strings.NewReader("{}")))

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, http.MethodGet, w.Header().Get("Allow"))
}

func TestHandleFacts_CollectionError(t *testing.T) {
	f := &countingFactory{err: apperrors.Wrap(apperrors.ErrCodeTimeout, "fact collection interrupted", context.DeadlineExceeded)}
	h := &FactsHandler{Factory: f, Timeout: time.Second}

	w := httptest.NewRecorder()
	h.HandleFacts(w, httptest.NewRequest(http.MethodGet, "/v1/facts", nil))

	assert.Equal(t, http.StatusGatewayTimeout, w.Code)

	f.err = errors.New("boom")
	w = httptest.NewRecorder()
	h.HandleFacts(w, httptest.NewRequest(http.MethodGet, "/v1/facts", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandleFacts_FreshCollectionPerRequest(t *testing.T) {
	f := &countingFactory{}
	s := server.New(server.WithHandler(Routes(f)))

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/facts", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var resp FactsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Metadata["request-id"], "middleware assigns a request id")
	}

	assert.Equal(t, 3, f.calls)
}
