// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

// NewEnvFileFlag constructs the --env-file flag.
func NewEnvFileFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "env-file",
		Usage: "dotenv file with context values, beneath key=value arguments",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("BRIX_ENV_FILE"),
		),
	}
}

// NewOutputFlags returns the flags that control how results are printed,
// namespaced to a command and settings file.
func NewOutputFlags(params ...string) (flags []cli.Flag) {
	output := &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output format",
		Value:   "text",
		Validator: func(value string) error {
			return FlagValidators(value, OutputValidator)
		},
	}
	filter := &cli.StringFlag{
		Name:    "filter",
		Aliases: []string{"f"},
		Usage:   "comma-separated list of filter expressions, e.g. kind=template",
	}
	sort := &cli.StringFlag{
		Name:    "sort",
		Aliases: []string{"s"},
		Usage:   "comma-separated list of columns to sort the results by",
	}
	padding := &cli.IntFlag{
		Name:    "padding",
		Aliases: []string{"p"},
		Usage:   "spaces between text columns",
		Value:   2,
	}
	titles := &cli.BoolFlag{
		Name:    "titles",
		Aliases: []string{"t"},
		Usage:   "show titles with text output",
		Value:   false,
	}
	color := &cli.BoolFlag{
		Name:    "color",
		Aliases: []string{"c"},
		Usage:   "enable colored text output",
		Value:   false,
	}

	if len(params) == 2 {
		output = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], output)
		filter = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], filter)
		sort = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], sort)
		titles.Sources.Chain = append(titles.Sources.Chain, configSources(params[0], titles.Name, params[1])...)
		color.Sources.Chain = append(color.Sources.Chain, configSources(params[0], color.Name, params[1])...)
	}

	flags = []cli.Flag{
		color,
		filter,
		output,
		padding,
		&cli.StringFlag{
			Name:    "query",
			Aliases: []string{"q"},
			Usage:   "gjson path applied to json or yaml output",
		},
		sort,
		titles,
	}

	return
}

// NewRunFlags returns the flags shared by commands that execute a config.
func NewRunFlags(params ...string) (flags []cli.Flag) {
	workdir := &cli.StringFlag{
		Name:    "workdir",
		Aliases: []string{"w"},
		Usage:   "directory destination paths are relative to (default: current directory)",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("BRIX_WORKDIR"),
		),
	}
	yes := &cli.BoolFlag{
		Name:        "yes",
		Aliases:     []string{"y"},
		Usage:       "overwrite existing files without asking",
		HideDefault: true,
	}
	no := &cli.BoolFlag{
		Name:        "no",
		Aliases:     []string{"n"},
		Usage:       "keep existing files without asking",
		HideDefault: true,
	}

	if len(params) == 2 {
		workdir = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], workdir)
		yes.Sources.Chain = append(yes.Sources.Chain, configSources(params[0], yes.Name, params[1])...)
		no.Sources.Chain = append(no.Sources.Chain, configSources(params[0], no.Name, params[1])...)
	}

	dryRun := &cli.BoolFlag{
		Name:        "dry-run",
		Usage:       "print the resolved commands instead of running them",
		HideDefault: true,
	}

	return []cli.Flag{dryRun, NewEnvFileFlag(), no, workdir, yes}
}

// NewConfigDirFlag constructs the flag naming the config catalog directory,
// optionally namespaced to a command and settings file.
func NewConfigDirFlag(params ...string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:  "config-dir",
		Usage: "catalog directory holding <language>/<name>.brix.* configs",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("BRIX_CONFIG_DIR"),
		),
	}

	if len(params) == 2 {
		flag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], flag)
	}

	return
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global settings
// file sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	flag.Sources.Chain = append(flag.Sources.Chain, configSources(ns, flag.Name, path)...)
	return flag
}

// configSources returns the settings file lookups for a flag, the namespaced
// key first. An empty path yields none.
func configSources(ns string, name string, path string) []cli.ValueSource {
	if path == "" {
		return nil
	}

	return []cli.ValueSource{
		yaml.YAML(ns+"."+name, altsrc.StringSourcer(path)),
		yaml.YAML(name, altsrc.StringSourcer(path)),
	}
}
