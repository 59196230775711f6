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

// Package facts defines fact records, resolver interfaces and the Collection
// that stores the records of one collection run.
//
// # Resolvers
//
// A resolver produces the record for one fact category. Typed resolvers
// (OperatingSystemResolver, KernelResolver) are adapted for the driver with
// OperatingSystem and Kernel:
//
//	c := facts.NewCollection(
//	    facts.Kernel(&posix.KernelResolver{}),
//	    facts.OperatingSystem(&posix.OperatingSystemResolver{}),
//	)
//	if err := c.Resolve(ctx); err != nil {
//	    return err
//	}
//	osData, _ := facts.OperatingSystemOf(c)
//
// Resolvers return a new record and never store it themselves; the
// Collection stores it under the resolver's name. Resolvers may read facts
// stored by resolvers registered before them.
//
// Platform resolvers delegate to a generic base resolver and only override
// the fields they can determine natively (see pkg/facts/posix).
//
// # Concurrency
//
// A Collection is safe for concurrent use. Each collection run should use its
// own Collection; resolvers hold no state between calls.
package facts
