// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/brixgo/brix/internal/catalog"
	"github.com/brixgo/brix/internal/meta"
	"github.com/brixgo/brix/internal/output"
	"github.com/brixgo/brix/internal/registry"
)

func listCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)

	dir := cmd.String("config-dir")
	if dir == "" {
		var err error
		if dir, err = catalog.DefaultDir(); err != nil {
			return err
		}
	}

	entries, err := catalog.List(m.Fs, dir)
	if err != nil {
		return err
	}
	return output.WriteCatalog(m.Stdout, entries, outputOptions(cmd))
}

func listCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "list",
		Usage:     "list the configs in the catalog",
		UsageText: "brix list [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags:  append(NewOutputFlags("list", meta.Config.Source), NewConfigDirFlag("list", meta.Config.Source)),
		Action: listCommandAction,
	}
}

func kindsCommandAction(ctx context.Context, cmd *cli.Command) error {
	return output.WriteKinds(GetMeta(cmd).Stdout, registry.Default, outputOptions(cmd))
}

func kindsCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "kinds",
		Usage:     "list the supported command kinds and their fields",
		UsageText: "brix kinds [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags:  NewOutputFlags("kinds", meta.Config.Source),
		Action: kindsCommandAction,
	}
}
