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

// Package collector turns resolved facts into measurements.
//
// A FactsCollector builds a fresh facts.Collection on every Collect call,
// runs its resolvers in order and converts the result into a measurement of
// type OS with one subtype per fact:
//
//	type: OS
//	subtypes:
//	  - subtype: kernel
//	    data: {name: Linux, release: 6.8.0-45-generic, version: "#45-Ubuntu SMP ..."}
//	  - subtype: os
//	    data: {name: Ubuntu, family: Linux, release: "22.04", hardware: x86_64, architecture: x86_64, ...}
//
// DefaultFactory wires PlatformResolvers, which selects the POSIX resolvers
// on platforms with uname(2) and the generic ones elsewhere:
//
//	c := collector.NewDefaultFactory(collector.WithVersion(version)).CreateFactsCollector("os")
//	m, err := c.Collect(ctx)
package collector
