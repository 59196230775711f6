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

// KernelResolver is the POSIX kernel resolver. It overrides the base
// record's name, release and version with the uname(2) report.
type KernelResolver struct {
	// Base supplies the seed record. Defaults to resolvers.KernelResolver.
	Base facts.KernelResolver

	// Uname defaults to the native uname(2) call.
	Uname UnameFunc

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// CollectData returns the kernel record. A failed uname keeps the base record.
func (r *KernelResolver) CollectData(c *facts.Collection) facts.KernelData {
	base := r.Base
	if base == nil {
		base = &resolvers.KernelResolver{Logger: r.Logger}
	}
	result := base.CollectData(c)

	query := r.Uname
	if query == nil {
		query = uname
	}

	name, err := query()
	if err != nil {
		nativeQueryFailures.WithLabelValues(facts.FactKernel).Inc()
		logger := r.Logger
		if logger == nil {
			logger = slog.Default()
		}
		logger.Debug("uname failed: kernel facts are unavailable",
			slog.String("error", err.Error()),
			slog.Int("errno", errnoOf(err)),
		)
		return result
	}

	result.Name = name.Sysname
	result.Release = name.Release
	result.Version = name.Version
	return result
}
