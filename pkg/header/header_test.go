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

package header

import (
	"testing"
	"time"
)

func TestKind_IsValid(t *testing.T) {
	tests := []struct {
		kind Kind
		want bool
	}{
		{KindSnapshot, true},
		{KindFacts, true},
		{Kind("Recipe"), false},
		{Kind(""), false},
	}
	for _, tt := range tests {
		if got := tt.kind.IsValid(); got != tt.want {
			t.Errorf("Kind(%q).IsValid() = %v, want %v", tt.kind, got, tt.want)
		}
	}
}

func TestNew(t *testing.T) {
	h := New(WithKind(KindFacts), WithMetadata(MetadataNode, "node-1"))

	if h.Kind != KindFacts {
		t.Errorf("Kind = %v, want %v", h.Kind, KindFacts)
	}
	if h.APIVersion != APIVersion {
		t.Errorf("APIVersion = %v, want %v", h.APIVersion, APIVersion)
	}
	if h.Metadata[MetadataNode] != "node-1" {
		t.Errorf("Metadata[node] = %q, want node-1", h.Metadata[MetadataNode])
	}
}

func TestInit(t *testing.T) {
	var h Header
	h.Metadata = map[string]string{"stale": "x"}

	h.init(KindSnapshot, "v1.2.3", time.Date(2025, 1, 15, 10, 30, 0, 0, time.FixedZone("CET", 3600)))

	if h.Kind != KindSnapshot {
		t.Errorf("Kind = %v, want %v", h.Kind, KindSnapshot)
	}
	if got := h.Metadata[MetadataTimestamp]; got != "2025-01-15T09:30:00Z" {
		t.Errorf("timestamp = %q, want UTC RFC3339", got)
	}
	if got := h.Metadata[MetadataVersion]; got != "v1.2.3" {
		t.Errorf("version = %q, want v1.2.3", got)
	}
	if _, ok := h.Metadata["stale"]; ok {
		t.Error("Init should reset metadata")
	}
}

func TestInit_NoVersion(t *testing.T) {
	var h Header
	h.Init(KindFacts, "")

	if _, ok := h.Metadata[MetadataVersion]; ok {
		t.Error("version should be omitted when empty")
	}
	if _, err := time.Parse(time.RFC3339, h.Metadata[MetadataTimestamp]); err != nil {
		t.Errorf("timestamp not RFC3339: %v", err)
	}
}
