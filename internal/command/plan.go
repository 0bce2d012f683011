// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/brixgo/brix/internal/log"
	"github.com/brixgo/brix/internal/meta"
	"github.com/brixgo/brix/internal/output"
)

// planCommandAction is the action handler for the "plan" subcommand. It
// resolves a config exactly like run and prints the command list.
func planCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %s %v", cmd.Name, cmd.Args().Slice())

	args, err := requireArgs(cmd, 1, "CONFIG [key=value...]")
	if err != nil {
		return err
	}

	cliCtx, err := cliContext(cmd, args[1:], nil)
	if err != nil {
		return err
	}

	list, raw, err := buildPlan(m, args[0], cliCtx)
	if err != nil {
		return err
	}

	opts := outputOptions(cmd)
	if cmd.Bool("titles") {
		opts.Header = fmt.Sprintf("Plan for %s:", raw.Path)
	}
	return output.WritePlan(m.Stdout, list, opts)
}

func planCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "plan",
		Usage:     "show the resolved commands of a brix config",
		UsageText: "brix plan [options] CONFIG [key=value...]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags:  append(NewOutputFlags("plan", meta.Config.Source), NewEnvFileFlag()),
		Action: planCommandAction,
	}
}
