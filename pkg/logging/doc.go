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

// Package logging configures log/slog for the nodefacts binaries.
//
// Records are JSON on stderr and always carry the module and version
// attributes. Debug level also records the source location.
//
//	{"time":"...","level":"DEBUG","source":{...},"msg":"uname failed: OS hardware is unavailable",
//	 "module":"nodefacts","version":"v0.1.0","error":"operation not permitted","errno":1}
//
// Binaries install the default logger once at startup:
//
//	logging.SetDefaultStructuredLogger("nodefactsd", version)              // honors LOG_LEVEL
//	logging.SetDefaultStructuredLoggerWithLevel("nodefacts", version, lvl) // from --log-level
//
// Level names are case-insensitive: debug, info, warn (or warning), error.
// Anything else is treated as info.
//
// Resolvers never log above debug; a host where uname is unavailable stays
// quiet at the default level.
package logging
