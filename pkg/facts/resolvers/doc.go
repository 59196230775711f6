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

// Package resolvers provides the generic, platform-independent fact resolvers.
//
// They are used as-is on platforms without a specialized implementation and
// as the seed that platform resolvers (pkg/facts/posix) delegate to.
//
// OperatingSystemResolver fills:
//   - Family: the kernel fact's name when resolved earlier, otherwise derived from GOOS
//   - Name, Release: os-release NAME and VERSION_ID, falling back to gopsutil
//     platform information
//
// Hardware and Architecture are left empty.
//
// All sources are injectable so tests do not depend on the host.
package resolvers
