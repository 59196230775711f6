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

	"github.com/NVIDIA/nodefacts/pkg/collector/file"
	"github.com/NVIDIA/nodefacts/pkg/facts"
	"github.com/NVIDIA/nodefacts/pkg/version"
)

var (
	filePathReleasePrimary  = "/etc/os-release"
	filePathReleaseFallback = "/usr/lib/os-release"
)

// PlatformInfoFunc returns the platform name, platform family and platform
// version of the running host.
type PlatformInfoFunc func() (platform, family, version string, err error)

// ReleaseReader returns the os-release key/value pairs of the running host.
type ReleaseReader func() (map[string]string, error)

// OperatingSystemResolver is the generic operating system resolver. It fills
// Name, Family and Release from portable sources and leaves Hardware and
// Architecture empty; platform resolvers override those.
type OperatingSystemResolver struct {
	// PlatformInfo defaults to gopsutil host.PlatformInformation.
	PlatformInfo PlatformInfoFunc

	// Release defaults to parsing /etc/os-release (or /usr/lib/os-release).
	Release ReleaseReader

	// GOOS defaults to runtime.GOOS.
	GOOS string

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// CollectData returns the generic operating system record. Sources that fail
// are logged at debug level and skipped.
func (r *OperatingSystemResolver) CollectData(c *facts.Collection) facts.OperatingSystemData {
	logger := loggerOrDefault(r.Logger)

	var data facts.OperatingSystemData

	// family comes from the kernel fact when it has been resolved already
	if k, ok := facts.KernelOf(c); ok && k.Name != "" {
		data.Family = k.Name
	} else {
		data.Family = kernelName(goosOrDefault(r.GOOS))
	}

	release, err := r.readRelease()
	if err != nil {
		logger.Debug("os-release unavailable", slog.String("error", err.Error()))
	}
	data.Name = release["NAME"]
	data.Release.Full = release["VERSION_ID"]

	if data.Name == "" || data.Release.Full == "" {
		platform, _, platformVersion, err := r.platformInfo()
		if err != nil {
			logger.Debug("platform information unavailable", slog.String("error", err.Error()))
		}
		if data.Name == "" && platform != "" {
			data.Name = titleCase(platform)
		}
		if data.Release.Full == "" {
			data.Release.Full = platformVersion
		}
	}

	if data.Name == "" {
		data.Name = data.Family
	}

	if data.Release.Full != "" {
		v, err := version.ParseVersion(data.Release.Full)
		if err != nil {
			logger.Debug("release is not numeric",
				slog.String("release", data.Release.Full),
				slog.String("error", err.Error()))
		} else {
			data.Release.Major = v.MajorString()
			data.Release.Minor = v.MinorString()
		}
	}

	return data
}

func (r *OperatingSystemResolver) platformInfo() (string, string, string, error) {
	if r.PlatformInfo != nil {
		return r.PlatformInfo()
	}
	return host.PlatformInformation()
}

func (r *OperatingSystemResolver) readRelease() (map[string]string, error) {
	if r.Release != nil {
		return r.Release()
	}
	return ReadOSRelease(filePathReleasePrimary, filePathReleaseFallback)
}

// ReadOSRelease parses the first existing os-release file among paths.
//
//	NAME="Ubuntu"
//	VERSION_ID="22.04"
func ReadOSRelease(paths ...string) (map[string]string, error) {
	parser := file.NewParser(
		file.WithVTrimChars(`"'`),
		file.WithSkipComments(true),
		file.WithSkipEmptyValues(true),
	)
	return parser.GetMap(file.FirstExisting(paths...))
}
