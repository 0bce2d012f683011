// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/brixgo/brix/internal/ctxmap"
	"github.com/brixgo/brix/internal/executor"
	"github.com/brixgo/brix/internal/loader"
	"github.com/brixgo/brix/internal/log"
	"github.com/brixgo/brix/internal/meta"
	"github.com/brixgo/brix/internal/ops"
	"github.com/brixgo/brix/internal/output"
	"github.com/brixgo/brix/internal/processor"
	"github.com/brixgo/brix/internal/prompt"
	"github.com/brixgo/brix/internal/util"
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// cliContext builds the lowest context layer. The --env-file values sit
// beneath extra, and explicit key=value arguments win over both.
func cliContext(cmd *cli.Command, args []string, extra map[string]string) (map[string]string, error) {
	var fromFile map[string]string
	if path := cmd.String("env-file"); path != "" {
		vals, err := ctxmap.LoadEnvFile(GetMeta(cmd).Fs, path)
		if err != nil {
			return nil, err
		}
		fromFile = vals
	}

	explicit, err := ctxmap.ParseArgs(args)
	if err != nil {
		return nil, err
	}

	return ctxmap.Overlay(fromFile, extra, explicit), nil
}

// buildPlan loads the config at path from m.Fs and resolves it into a command list.
func buildPlan(m meta.Meta, path string, cliCtx map[string]string) (processor.CommandList, *loader.RawConfig, error) {
	raw, err := loader.Load(m.Fs, path)
	if err != nil {
		return nil, nil, err
	}

	list, err := processor.New(processor.Options{CLIContext: cliCtx}).Process(raw)
	if err != nil {
		return nil, nil, err
	}

	log.Debugf("resolved %d commands from %s", len(list), raw.Path)
	return list, raw, nil
}

// buildEnv resolves the working directory and picks the prompter from
// --yes/--no or the terminal.
func buildEnv(cmd *cli.Command, m meta.Meta, create bool) (*ops.Env, error) {
	yes, no := cmd.Bool("yes"), cmd.Bool("no")
	if yes && no {
		return nil, errors.New("--yes and --no are mutually exclusive")
	}

	dir := cmd.String("workdir")
	if dir == "" {
		dir = m.StartingDir
	}
	wd, err := util.ParseWorkDir(m.Fs, dir, create)
	if err != nil {
		return nil, fmt.Errorf("invalid workdir (%s): %w", dir, err)
	}

	var p prompt.Prompter
	switch {
	case yes:
		p = prompt.Fixed(true)
	case no:
		p = prompt.Fixed(false)
	case m.Stdin != nil:
		p = prompt.New(m.Stdin, m.Stdout)
	}

	return &ops.Env{Fs: m.Fs, Prompter: p, WorkDir: wd}, nil
}

// runPlan prints list for --dry-run, otherwise executes it.
func runPlan(ctx context.Context, cmd *cli.Command, m meta.Meta, raw *loader.RawConfig, list processor.CommandList, create bool) error {
	if cmd.Bool("dry-run") {
		return output.WritePlan(m.Stdout, list, output.Options{
			Titles:  true,
			Padding: 2,
			Header:  fmt.Sprintf("Plan for %s:", raw.Path),
			Footer:  fmt.Sprintf("%d commands, nothing written", len(list)),
		})
	}

	env, err := buildEnv(cmd, m, create)
	if err != nil {
		return err
	}
	log.Debugf("running %d commands in %s", len(list), env.WorkDir)
	return executor.Run(ctx, list, env)
}

// outputOptions collects the output flags.
func outputOptions(cmd *cli.Command) output.Options {
	return output.Options{
		Format:  cmd.String("output"),
		Titles:  cmd.Bool("titles"),
		Color:   cmd.Bool("color"),
		Filter:  cmd.String("filter"),
		Query:   cmd.String("query"),
		Sort:    cmd.String("sort"),
		Padding: cmd.Int("padding"),
	}
}

// requireArgs checks the positional argument count.
func requireArgs(cmd *cli.Command, n int, usage string) ([]string, error) {
	args := cmd.Args().Slice()
	if len(args) < n {
		return nil, fmt.Errorf("expected %s", usage)
	}
	return args, nil
}
