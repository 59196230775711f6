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

// Package file parses line-oriented key/value files.
//
// The base operating system resolver uses it to read os-release:
//
//	p := file.NewParser(
//	    file.WithVTrimChars(`"'`),
//	    file.WithSkipEmptyValues(true),
//	)
//	release, err := p.GetMap(file.FirstExisting("/etc/os-release", "/usr/lib/os-release"))
//
// ParseMap and ParseLines accept an io.Reader so content can be parsed
// without touching the filesystem.
package file
