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

package facts

import (
	"fmt"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"

	apperrors "github.com/NVIDIA/nodefacts/pkg/errors"
)

// suggestThreshold is the largest edit distance still worth suggesting.
const suggestThreshold = 3

// Suggest returns the known name closest to name, or "" when none is within
// an edit distance of three.
func Suggest(name string, known []string) string {
	best := ""
	bestDistance := suggestThreshold + 1

	for _, candidate := range known {
		if d := levenshtein.ComputeDistance(strings.ToLower(name), candidate); d < bestDistance {
			bestDistance = d
			best = candidate
		}
	}

	return best
}

// ValidateNames returns an INVALID_REQUEST error for the first name that is
// not a known fact category. The error context carries the available names
// and, when one is close, a suggestion.
func ValidateNames(names []string) error {
	for _, name := range names {
		if slices.Contains(Names, name) {
			continue
		}

		ctx := map[string]any{
			"fact":      name,
			"available": Names,
		}
		msg := fmt.Sprintf("unknown fact %q", name)
		if s := Suggest(name, Names); s != "" {
			ctx["suggestion"] = s
			msg = fmt.Sprintf("%s, did you mean %q?", msg, s)
		}

		return apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest, msg, ctx)
	}
	return nil
}

// SplitNames flattens comma separated values into a de-duplicated list of
// trimmed, non-empty names, preserving first-seen order.
func SplitNames(values ...string) []string {
	var out []string
	for _, v := range values {
		for _, name := range strings.Split(v, ",") {
			name = strings.TrimSpace(name)
			if name == "" || slices.Contains(out, name) {
				continue
			}
			out = append(out, name)
		}
	}
	return out
}
