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
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/nodefacts/pkg/facts"
	"github.com/NVIDIA/nodefacts/pkg/header"
	"github.com/NVIDIA/nodefacts/pkg/measurement"
	"github.com/NVIDIA/nodefacts/pkg/serializer"
)

// factsDocument is what the facts command writes.
type factsDocument struct {
	header.Header `json:",inline" yaml:",inline"`

	Measurement *measurement.Measurement `json:"measurement" yaml:"measurement"`
}

func factsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "facts",
		EnableShellCompletion: true,
		Usage:                 "Resolve and print facts of the current node",
		ArgsUsage:             "[name...]",
		Description: fmt.Sprintf(`Resolve facts of the current node and print them.

Available facts: %s

With no arguments every fact is printed. Names may be given as separate
arguments or comma separated.

# Examples

Print all facts as YAML:
  nodefacts facts

Print only the operating system fact as JSON:
  nodefacts facts os --format json

Write facts to a file:
  nodefacts facts --output facts.yaml`, strings.Join(facts.Names, ", ")),
		ShellComplete: factNameLister,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
			timeoutFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			defer elapsed(cmd.Name, time.Now())

			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			names := facts.SplitNames(cmd.Args().Slice()...)
			if err := facts.ValidateNames(names); err != nil {
				return err
			}

			ctx, cancel := withTimeout(ctx, cmd)
			defer cancel()

			m, err := newFactory().CreateFactsCollector(names...).Collect(ctx)
			if err != nil {
				return fmt.Errorf("failed to collect facts: %w", err)
			}

			doc := factsDocument{Measurement: m}
			doc.Init(header.KindFacts, version)

			w := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer closeWriter(w)

			if err := w.Serialize(ctx, doc); err != nil {
				return fmt.Errorf("failed to serialize facts: %w", err)
			}
			return nil
		},
	}
}

// factNameLister completes fact names.
func factNameLister(_ context.Context, cmd *cli.Command) {
	if cmd == nil || cmd.Writer == nil {
		return
	}
	for _, n := range facts.Names {
		fmt.Fprintln(cmd.Writer, n)
	}
}
