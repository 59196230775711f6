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

// Package snapshotter captures point-in-time snapshots of a node's facts.
//
// NodeSnapshotter runs two collectors in parallel with errgroup: host
// metadata from gopsutil, and the facts collector from pkg/collector. The
// result carries a header with a fresh snapshot id:
//
//	kind: Snapshot
//	apiVersion: nodefacts.nvidia.com/v1alpha1
//	metadata:
//	  snapshot-id: 6f1c...
//	  hostname: gpu-node-1
//	  timestamp: "2025-01-15T10:30:00Z"
//	measurements:
//	  - type: OS
//	    subtypes: [...]
//
// Usage:
//
//	s := &snapshotter.NodeSnapshotter{
//	    Version:    version,
//	    Serializer: serializer.NewFileWriterOrStdout(serializer.FormatYAML, path),
//	}
//	if err := s.Measure(ctx); err != nil {
//	    return err
//	}
package snapshotter
