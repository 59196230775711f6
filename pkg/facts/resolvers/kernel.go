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

package resolvers

import (
	"log/slog"

	"github.com/shirou/gopsutil/v3/host"

	"github.com/NVIDIA/nodefacts/pkg/facts"
)

// KernelVersionFunc returns the running kernel release.
type KernelVersionFunc func() (string, error)

// KernelResolver is the generic kernel resolver. The name comes from the
// Go target OS; the release from gopsutil.
type KernelResolver struct {
	// KernelVersion defaults to gopsutil host.KernelVersion.
	KernelVersion KernelVersionFunc

	// GOOS defaults to runtime.GOOS.
	GOOS string

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// CollectData returns the generic kernel record.
func (r *KernelResolver) CollectData(_ *facts.Collection) facts.KernelData {
	data := facts.KernelData{
		Name: kernelName(goosOrDefault(r.GOOS)),
	}

	kv := r.KernelVersion
	if kv == nil {
		kv = host.KernelVersion
	}

	release, err := kv()
	if err != nil {
		loggerOrDefault(r.Logger).Debug("kernel version unavailable", slog.String("error", err.Error()))
		return data
	}
	data.Release = release

	return data
}
