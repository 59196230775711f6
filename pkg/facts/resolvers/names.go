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
	"runtime"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// kernelNames maps GOOS values whose kernel name is not plain title case.
var kernelNames = map[string]string{
	"aix":       "AIX",
	"dragonfly": "DragonFly",
	"freebsd":   "FreeBSD",
	"illumos":   "SunOS",
	"netbsd":    "NetBSD",
	"openbsd":   "OpenBSD",
	"solaris":   "SunOS",
	"windows":   "windows",
}

// kernelName returns the kernel name for a GOOS value, e.g. linux -> Linux.
func kernelName(goos string) string {
	if name, ok := kernelNames[goos]; ok {
		return name
	}
	return titleCase(goos)
}

func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

func goosOrDefault(goos string) string {
	if goos == "" {
		return runtime.GOOS
	}
	return goos
}

func loggerOrDefault(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.Default()
	}
	return l
}
