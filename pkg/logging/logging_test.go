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

package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{" info ", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLogLevel(tt.input); got != tt.want {
				t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestStructuredLogger_Attributes(t *testing.T) {
	var buf bytes.Buffer
	logger := newStructuredLogger(&buf, "nodefacts", "v1.2.3", slog.LevelInfo)

	logger.Info("collected", "fact", "os")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
	}

	if rec["module"] != "nodefacts" {
		t.Errorf("expected module nodefacts, got %v", rec["module"])
	}
	if rec["version"] != "v1.2.3" {
		t.Errorf("expected version v1.2.3, got %v", rec["version"])
	}
	if rec["fact"] != "os" {
		t.Errorf("expected fact os, got %v", rec["fact"])
	}
	if _, ok := rec["source"]; ok {
		t.Error("info level logger should not include source")
	}
}

func TestStructuredLogger_DebugAddsSource(t *testing.T) {
	var buf bytes.Buffer
	logger := newStructuredLogger(&buf, "nodefacts", "dev", slog.LevelDebug)

	logger.Debug("uname failed")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
	}
	if _, ok := rec["source"]; !ok {
		t.Error("debug level logger should include source")
	}
}

func TestStructuredLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newStructuredLogger(&buf, "nodefacts", "dev", slog.LevelWarn)

	logger.Info("hidden")
	logger.Debug("hidden")

	if buf.Len() != 0 {
		t.Errorf("expected no output below warn, got %q", buf.String())
	}
}

func TestSetDefaultStructuredLoggerWithLevel(t *testing.T) {
	old := slog.Default()
	defer slog.SetDefault(old)

	SetDefaultStructuredLoggerWithLevel("nodefacts", "dev", "error")

	if slog.Default().Enabled(context.Background(), slog.LevelWarn) {
		t.Error("expected warn to be disabled at error level")
	}
	if !slog.Default().Enabled(context.Background(), slog.LevelError) {
		t.Error("expected error to be enabled at error level")
	}
}

func TestNewLogLogger(t *testing.T) {
	if NewLogLogger(slog.LevelInfo, false) == nil {
		t.Fatal("expected non-nil logger")
	}
}
