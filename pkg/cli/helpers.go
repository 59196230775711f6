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
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/nodefacts/pkg/defaults"
	"github.com/NVIDIA/nodefacts/pkg/serializer"
)

var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
		Sources: cli.EnvVars("NODEFACTS_OUTPUT"),
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   fmt.Sprintf("output format (%s)", strings.Join(serializer.SupportedFormats(), ", ")),
		Sources: cli.EnvVars("NODEFACTS_FORMAT"),
	}

	timeoutFlag = &cli.DurationFlag{
		Name:    "timeout",
		Usage:   "maximum time to spend collecting facts",
		Value:   defaults.CLISnapshotTimeout,
		Sources: cli.EnvVars("NODEFACTS_TIMEOUT"),
	}
)

// parseOutputFormat extracts and validates the output format from CLI flags.
// Returns the validated format or an error if the format is unknown.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, valid formats are: %s",
			outFormat, strings.Join(serializer.SupportedFormats(), ", "))
	}
	return outFormat, nil
}

// withTimeout bounds ctx by the --timeout flag.
func withTimeout(ctx context.Context, cmd *cli.Command) (context.Context, context.CancelFunc) {
	timeout := cmd.Duration("timeout")
	if timeout <= 0 {
		timeout = defaults.CLISnapshotTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

// closeWriter releases the output file, if any.
func closeWriter(w serializer.Serializer) {
	c, ok := w.(serializer.Closer)
	if !ok {
		return
	}
	if err := c.Close(); err != nil {
		slog.Warn("failed to close output", slog.String("error", err.Error()))
	}
}

// elapsed logs how long a command took at debug level.
func elapsed(command string, start time.Time) {
	slog.Debug("command completed",
		slog.String("command", command),
		slog.Duration("duration", time.Since(start)))
}
