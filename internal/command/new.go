// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/brixgo/brix/internal/catalog"
	"github.com/brixgo/brix/internal/log"
	"github.com/brixgo/brix/internal/meta"
)

// newCommandAction is the action handler for the "new" subcommand. It finds
// LANGUAGE/CONFIG_NAME in the catalog and runs it with language, config_name,
// project and module added to the context.
func newCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %s %v", cmd.Name, cmd.Args().Slice())

	args, err := requireArgs(cmd, 4, "LANGUAGE CONFIG_NAME PROJECT MODULE [key=value...]")
	if err != nil {
		return err
	}

	dir := cmd.String("config-dir")
	if dir == "" {
		if dir, err = catalog.DefaultDir(); err != nil {
			return err
		}
	}

	path, err := catalog.Find(m.Fs, dir, args[0], args[1])
	if err != nil {
		return err
	}
	log.Infof("using %s", path)

	cliCtx, err := cliContext(cmd, args[4:], map[string]string{
		"language":    args[0],
		"config_name": args[1],
		"project":     args[2],
		"module":      args[3],
	})
	if err != nil {
		return err
	}

	list, raw, err := buildPlan(m, path, cliCtx)
	if err != nil {
		return err
	}

	return runPlan(ctx, cmd, m, raw, list, true)
}

func newCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "new",
		Usage:     "scaffold a project from a catalog config",
		UsageText: "brix new [options] LANGUAGE CONFIG_NAME PROJECT MODULE [key=value...]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags:  append(NewRunFlags("new", meta.Config.Source), NewConfigDirFlag("new", meta.Config.Source)),
		Action: newCommandAction,
	}
}
