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

// Package posix provides fact resolvers for POSIX systems.
//
// Each resolver delegates to the generic resolver in pkg/facts/resolvers and
// augments its record with data from uname(2):
//
//	r := &posix.OperatingSystemResolver{}
//	data := r.CollectData(collection)
//	// data.Hardware == data.Architecture == "x86_64" on a typical PC
//
// A failed uname is not an error. It is logged at debug level with the
// error text and errno, counted in nodefacts_native_query_failures_total,
// and the base values are kept. Architecture always mirrors Hardware.
//
// Base, Uname and Logger are injectable, so tests can substitute a fake
// base resolver, a failing uname and a capturing slog handler.
package posix
