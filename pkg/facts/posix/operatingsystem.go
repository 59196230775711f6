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

package posix

import (
	"log/slog"

	"github.com/NVIDIA/nodefacts/pkg/facts"
	"github.com/NVIDIA/nodefacts/pkg/facts/resolvers"
)

// OperatingSystemResolver is the POSIX operating system resolver. It
// delegates to a base resolver for the seed record and overrides Hardware
// with the machine reported by uname(2).
type OperatingSystemResolver struct {
	// Base supplies the seed record. Defaults to resolvers.OperatingSystemResolver.
	Base facts.OperatingSystemResolver

	// Uname defaults to the native uname(2) call.
	Uname UnameFunc

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// CollectData returns the base record with Hardware taken from uname(2) and
// Architecture mirroring Hardware. A failed uname leaves Hardware at the
// base value and is only logged at debug level.
func (r *OperatingSystemResolver) CollectData(c *facts.Collection) facts.OperatingSystemData {
	result := r.base().CollectData(c)

	name, err := r.uname()()
	if err != nil {
		nativeQueryFailures.WithLabelValues(facts.FactOperatingSystem).Inc()
		r.logger().Debug("uname failed: OS hardware is unavailable",
			slog.String("error", err.Error()),
			slog.Int("errno", errnoOf(err)),
		)
	} else {
		result.Hardware = name.Machine
	}

	// By default, the architecture is the same as the hardware model
	result.Architecture = result.Hardware
	return result
}

func (r *OperatingSystemResolver) base() facts.OperatingSystemResolver {
	if r.Base == nil {
		return &resolvers.OperatingSystemResolver{Logger: r.Logger}
	}
	return r.Base
}

func (r *OperatingSystemResolver) uname() UnameFunc {
	if r.Uname == nil {
		return uname
	}
	return r.Uname
}

func (r *OperatingSystemResolver) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.Default()
	}
	return r.Logger
}
