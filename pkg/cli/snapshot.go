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
	"github.com/NVIDIA/nodefacts/pkg/serializer"
	"github.com/NVIDIA/nodefacts/pkg/snapshotter"
)

func snapshotCmd() *cli.Command {
	return &cli.Command{
		Name:                  "snapshot",
		EnableShellCompletion: true,
		Usage:                 "Capture a node facts snapshot",
		Description: `Capture a snapshot of the current node including:
  - host metadata (hostname, host id)
  - the operating system fact
  - the kernel fact

Each snapshot carries a unique id and a timestamp in its header.
The snapshot can be output in JSON, YAML, or table format.

# Examples

Capture a snapshot to a file:
  nodefacts snapshot --output node.yaml

Capture only the operating system fact as JSON:
  nodefacts snapshot --fact os --format json`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "fact",
				Aliases: []string{"f"},
				Usage:   fmt.Sprintf("fact to include, can be repeated (%s)", strings.Join(facts.Names, ", ")),
			},
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

			names := facts.SplitNames(cmd.StringSlice("fact")...)
			if err := facts.ValidateNames(names); err != nil {
				return err
			}

			ctx, cancel := withTimeout(ctx, cmd)
			defer cancel()

			w := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer closeWriter(w)

			ns := snapshotter.NodeSnapshotter{
				Version:    version,
				Names:      names,
				Factory:    newFactory(),
				Serializer: w,
			}

			return ns.Measure(ctx)
		},
	}
}
