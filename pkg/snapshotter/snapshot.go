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
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shirou/gopsutil/v3/host"
	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/nodefacts/pkg/collector"
	"github.com/NVIDIA/nodefacts/pkg/header"
	"github.com/NVIDIA/nodefacts/pkg/measurement"
	"github.com/NVIDIA/nodefacts/pkg/serializer"
)

// HostInfoFunc returns host identification for snapshot metadata.
type HostInfoFunc func(ctx context.Context) (*host.InfoStat, error)

// NodeSnapshotter collects the facts of the current node together with host
// metadata and serializes the resulting snapshot.
type NodeSnapshotter struct {
	// Version is recorded in the snapshot header.
	Version string

	// Names limits the collected facts. Empty means all.
	Names []string

	// Factory defaults to collector.NewDefaultFactory.
	Factory collector.Factory

	// Serializer defaults to JSON on stdout.
	Serializer serializer.Serializer

	// HostInfo defaults to gopsutil host.InfoWithContext.
	HostInfo HostInfoFunc
}

// Measure captures a snapshot and serializes it.
func (n *NodeSnapshotter) Measure(ctx context.Context) error {
	snap, err := n.Snapshot(ctx)
	if err != nil {
		return err
	}

	if n.Serializer == nil {
		n.Serializer = serializer.NewStdoutWriter(serializer.FormatJSON)
	}

	if err := n.Serializer.Serialize(ctx, snap); err != nil {
		slog.Error("failed to serialize", slog.String("error", err.Error()))
		return fmt.Errorf("failed to serialize: %w", err)
	}

	return nil
}

// Snapshot runs the metadata and facts collectors in parallel and returns
// the combined snapshot. Missing host metadata is not an error; a failed
// facts collection is.
func (n *NodeSnapshotter) Snapshot(ctx context.Context) (*Snapshot, error) {
	if n.Factory == nil {
		n.Factory = collector.NewDefaultFactory(collector.WithVersion(n.Version))
	}

	slog.Debug("starting node snapshot")

	start := time.Now()
	defer func() {
		snapshotCollectionDuration.Observe(time.Since(start).Seconds())
	}()

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)

	snap := NewSnapshot()
	snap.Init(header.KindSnapshot, n.Version)
	snap.Metadata[MetadataSnapshotID] = uuid.NewString()

	g.Go(func() error {
		defer observeCollector("metadata", time.Now())

		info, err := n.hostInfo()(gctx)
		if err != nil || info == nil {
			slog.Debug("host metadata unavailable", slog.Any("error", err))
			return nil
		}

		mu.Lock()
		snap.Metadata[MetadataHostname] = info.Hostname
		if info.HostID != "" {
			snap.Metadata[MetadataHostID] = info.HostID
		}
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		defer observeCollector("facts", time.Now())

		m, err := n.Factory.CreateFactsCollector(n.Names...).Collect(gctx)
		if err != nil {
			slog.Error("failed to collect facts", slog.String("error", err.Error()))
			return fmt.Errorf("failed to collect facts: %w", err)
		}

		mu.Lock()
		snap.Measurements = append(snap.Measurements, m)
		mu.Unlock()
		return nil
	})

	if err := g.Wait(); err != nil {
		snapshotCollectionTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	snapshotCollectionTotal.WithLabelValues("success").Inc()
	slog.Debug("snapshot collection complete",
		slog.String("id", snap.Metadata[MetadataSnapshotID]),
		slog.Int("measurements", len(snap.Measurements)))

	return snap, nil
}

func (n *NodeSnapshotter) hostInfo() HostInfoFunc {
	if n.HostInfo != nil {
		return n.HostInfo
	}
	return host.InfoWithContext
}

func observeCollector(name string, start time.Time) {
	snapshotCollectorDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
}

// Measurement returns the first measurement of the given type, or nil.
func (s *Snapshot) Measurement(t measurement.Type) *measurement.Measurement {
	for _, m := range s.Measurements {
		if m != nil && m.Type == t {
			return m
		}
	}
	return nil
}
