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

// Package serializer writes nodefacts documents as JSON, YAML or a
// flattened FIELD/VALUE table.
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.Close()
//	if err := w.Serialize(ctx, snapshot); err != nil {
//		return err
//	}
//
// The table format flattens nested objects using their JSON field names:
//
//	FIELD                                VALUE
//	-----                                -----
//	measurements.[0].subtypes.[0].data.architecture  x86_64
//
// RespondJSON writes buffered JSON HTTP responses for the API server.
package serializer
