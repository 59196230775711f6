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

// Package cli implements the nodefacts command-line interface.
//
// # Commands
//
// facts - Resolve and print facts:
//
//	nodefacts facts [name...] [--format yaml|json|table] [--output file]
//
// Resolves the requested facts (all when none are given) and prints them
// wrapped in a Facts header. Unknown names fail with a suggestion for the
// closest known fact:
//
//	$ nodefacts facts oss
//	[INVALID_REQUEST] unknown fact "oss", did you mean "os"?
//
// snapshot - Capture a node snapshot:
//
//	nodefacts snapshot [--fact name]... [--format yaml|json|table] [--output file]
//
// Collects host metadata and facts in parallel and writes a Snapshot
// document with a unique id.
//
// # Global Flags
//
//	--log-level    Log level: debug, info, warn, error (default: info)
//	--debug        Shorthand for --log-level debug
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Environment Variables
//
//	NODEFACTS_LOG_LEVEL, LOG_LEVEL  Logging verbosity
//	NODEFACTS_DEBUG                 Enable debug logging
//	NODEFACTS_OUTPUT                Default output path
//	NODEFACTS_FORMAT                Default output format
//	NODEFACTS_TIMEOUT               Collection timeout (default: 1m)
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, collection failure)
//	2  Interrupted or timed out
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/nodefacts/pkg/cli.version=1.0.0'"
package cli
