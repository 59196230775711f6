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

package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/urfave/cli/v3"
)

func hasName(flag cli.Flag, name string) bool {
	if flag == nil {
		return false
	}
	names := flag.Names()
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func assertFlags(t *testing.T, cmd *cli.Command, required ...string) {
	t.Helper()
	for _, flagName := range required {
		found := false
		for _, flag := range cmd.Flags {
			if hasName(flag, flagName) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("required flag %q not found", flagName)
		}
	}
}

func TestRootCmd_CommandStructure(t *testing.T) {
	cmd := newRootCmd()

	if cmd.Name != name {
		t.Errorf("Name = %v, want %v", cmd.Name, name)
	}

	if cmd.Version == "" {
		t.Error("Version should not be empty")
	}

	if cmd.Before == nil {
		t.Error("Before should not be nil")
	}

	assertFlags(t, cmd, "log-level", "debug")

	want := []string{"facts", "snapshot"}
	if len(cmd.Commands) != len(want) {
		t.Fatalf("got %d commands, want %d", len(cmd.Commands), len(want))
	}
	for i, c := range cmd.Commands {
		if c.Name != want[i] {
			t.Errorf("Commands[%d] = %q, want %q", i, c.Name, want[i])
		}
	}
}

func TestCommandLister(t *testing.T) {
	commandLister(context.Background(), nil)

	var buf bytes.Buffer
	rootCmd := &cli.Command{
		Name:   "root",
		Writer: &buf,
		Commands: []*cli.Command{
			{Name: "visible1", Hidden: false},
			{Name: "hidden", Hidden: true},
			{Name: "visible2", Hidden: false},
		},
	}
	commandLister(context.Background(), rootCmd)

	if got := buf.String(); got != "visible1\nvisible2\n" {
		t.Errorf("commandLister() wrote %q", got)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{errors.New("boom"), 1},
		{context.Canceled, 2},
		{fmt.Errorf("collect: %w", context.DeadlineExceeded), 2},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
