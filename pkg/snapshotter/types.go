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

package snapshotter

import (
	"context"

	"github.com/NVIDIA/nodefacts/pkg/header"
	"github.com/NVIDIA/nodefacts/pkg/measurement"
)

// Metadata keys set on every snapshot in addition to the header defaults.
const (
	MetadataSnapshotID = "snapshot-id"
	MetadataHostname   = "hostname"
	MetadataHostID     = "host-id"
)

// Snapshotter captures and writes a snapshot of the node's facts.
type Snapshotter interface {
	Measure(ctx context.Context) error
}

// NewSnapshot creates a new Snapshot instance with an initialized Measurements slice.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Measurements: make([]*measurement.Measurement, 0),
	}
}

// Snapshot is a point-in-time record of a node's facts.
type Snapshot struct {
	header.Header `json:",inline" yaml:",inline"`

	Measurements []*measurement.Measurement `json:"measurements" yaml:"measurements"`
}
