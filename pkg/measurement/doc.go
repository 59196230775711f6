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

// Package measurement defines the wire shape of collected facts.
//
// A Measurement has a Type and one Subtype per resolved fact. Each Subtype
// holds its values as Readings, a runtime interface over a small set of
// scalar types that marshals to the bare value in JSON and YAML:
//
//	m := measurement.NewMeasurement(measurement.TypeOS).
//	    WithSubtypeBuilder(measurement.NewSubtypeBuilder("os").
//	        SetString(measurement.KeyHardware, "x86_64").
//	        SetString(measurement.KeyArchitecture, "x86_64")).
//	    Build()
//
//	arch, err := m.GetSubtype("os").GetString(measurement.KeyArchitecture)
//
// Empty string readings are preserved; an unknown hardware model is reported
// as "" rather than omitted.
package measurement
