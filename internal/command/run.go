// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/brixgo/brix/internal/log"
	"github.com/brixgo/brix/internal/meta"
)

// runCommandAction is the action handler for the "run" subcommand. It loads
// the config named by the first argument, resolves it with the remaining
// key=value arguments and executes the result.
func runCommandAction(ctx context.Context, cmd *cli.Command) error {
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

	return runPlan(ctx, cmd, m, raw, list, false)
}

func runCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "run a brix config",
		UsageText: "brix run [options] CONFIG [key=value...]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags:  NewRunFlags("run", meta.Config.Source),
		Action: runCommandAction,
	}
}
