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

package collector

import (
	"context"
	"fmt"
	"log/slog"

	apperrors "github.com/NVIDIA/nodefacts/pkg/errors"
	"github.com/NVIDIA/nodefacts/pkg/facts"
	"github.com/NVIDIA/nodefacts/pkg/measurement"
)

// FactsCollector resolves facts into a fresh collection on every call and
// converts the requested ones to an OS measurement, one subtype per fact.
type FactsCollector struct {
	// Resolvers run in order; later resolvers may read earlier facts.
	Resolvers []facts.Resolver

	// Names limits the output to these facts. Empty means all.
	Names []string

	// Version is recorded in each subtype's context when set.
	Version string
}

// Collect resolves all facts and returns the requested ones.
func (c *FactsCollector) Collect(ctx context.Context) (*measurement.Measurement, error) {
	slog.Debug("collecting facts", slog.Any("names", c.Names))

	col := facts.NewCollection(c.Resolvers...)
	if err := col.Resolve(ctx); err != nil {
		return nil, err
	}

	return ToMeasurement(col, c.Version, c.Names...)
}

// ToMeasurement converts the named facts of col, or all of them when names is
// empty, into an OS measurement. An unknown name is a NOT_FOUND error.
func ToMeasurement(col *facts.Collection, version string, names ...string) (*measurement.Measurement, error) {
	if len(names) == 0 {
		names = col.Names()
	}

	m := measurement.NewMeasurement(measurement.TypeOS)
	for _, name := range names {
		value, err := col.Lookup(name)
		if err != nil {
			return nil, err
		}

		b, err := subtypeOf(name, value)
		if err != nil {
			return nil, err
		}
		if version != "" {
			b.SetContext("version", version)
		}
		m.WithSubtypeBuilder(b)
	}

	return m.Build(), nil
}

func subtypeOf(name string, value any) (*measurement.SubtypeBuilder, error) {
	b := measurement.NewSubtypeBuilder(name)

	switch v := value.(type) {
	case facts.OperatingSystemData:
		b.SetString(measurement.KeyName, v.Name).
			SetString(measurement.KeyFamily, v.Family).
			SetString(measurement.KeyRelease, v.Release.Full).
			SetString(measurement.KeyReleaseMajor, v.Release.Major).
			SetString(measurement.KeyReleaseMinor, v.Release.Minor).
			SetString(measurement.KeyHardware, v.Hardware).
			SetString(measurement.KeyArchitecture, v.Architecture)
	case facts.KernelData:
		b.SetString(measurement.KeyKernelName, v.Name).
			SetString(measurement.KeyKernelRelease, v.Release).
			SetString(measurement.KeyKernelVersion, v.Version)
	default:
		return nil, apperrors.NewWithContext(apperrors.ErrCodeInternal,
			fmt.Sprintf("fact %q has unsupported type %T", name, value),
			map[string]any{"fact": name})
	}

	return b, nil
}
