// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// docsgen writes markdown reference pages for every brix subcommand and every
// config command kind into the directory named by its first argument.
package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"

	"github.com/brixgo/brix/internal/command"
	"github.com/brixgo/brix/internal/config"
	"github.com/brixgo/brix/internal/meta"
	"github.com/brixgo/brix/internal/registry"
	"github.com/brixgo/brix/internal/version"
)

type Flag struct {
	Syntax      string
	Description string
	Default     string
	Env         string
}

type Subcommand struct {
	ID          string
	Short       string
	Description string
	Usage       string
	Flags       []Flag
}

type Kind struct {
	ID       string
	Summary  string
	Required []string
	Optional []string
}

type TemplateData struct {
	Date    string
	Version string
	IDUpper string
	Command *Subcommand
	Kind    *Kind
}

const commandTemplate = `# brix {{ .Command.ID }}

{{ .Command.Short }}

## Usage

    {{ .Command.Usage }}
{{ with .Command.Description }}
{{ . }}
{{ end }}{{ if .Command.Flags }}
## Flags

| Flag | Description | Default | Env |
| ---- | ----------- | ------- | --- |
{{ range .Command.Flags }}| ` + "`{{ .Syntax }}`" + ` | {{ .Description }} | {{ .Default }} | {{ .Env }} |
{{ end }}{{ end }}
_{{ .IDUpper }} generated {{ .Date }} for brix {{ .Version }}._
`

const kindTemplate = `# {{ .Kind.ID }}

{{ .Kind.Summary }}

## Fields
{{ range .Kind.Required }}
- ` + "`{{ . }}`" + ` (required){{ end }}{{ range .Kind.Optional }}
- ` + "`{{ . }}`" + `{{ end }}

_{{ .IDUpper }} generated {{ .Date }} for brix {{ .Version }}._
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: docsgen DOCS_DIR")
		os.Exit(1)
	}

	m := meta.New(context.Background(), []string{"brix"}, config.Type{}, ".")
	if err := generate(afero.NewOsFs(), os.Args[1], command.NewApp(m), registry.Default, time.Now()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// generate writes commands/<name>.md and kinds/<kind>.md under docs.
func generate(fsys afero.Fs, docs string, app *cli.Command, reg *registry.Registry, now time.Time) error {
	cmdTmpl := template.Must(template.New("command").Parse(commandTemplate))
	kindTmpl := template.Must(template.New("kind").Parse(kindTemplate))

	base := TemplateData{
		Date:    now.Format("January 2, 2006"),
		Version: version.String(),
	}

	for _, c := range app.Commands {
		if c.Hidden {
			continue
		}
		sub := subcommandFor(c)
		data := base
		data.Command = &sub
		data.IDUpper = strings.ToUpper(sub.ID)
		path := filepath.Join(docs, "commands", sub.ID+".md")
		if err := writeTemplate(fsys, path, cmdTmpl, data); err != nil {
			return err
		}
	}

	for _, name := range reg.Kinds() {
		cmd, err := reg.Resolve(name)
		if err != nil {
			return err
		}
		u := cmd.Usage()
		data := base
		data.Kind = &Kind{ID: name, Summary: u.Summary, Required: u.Required, Optional: u.Optional}
		data.IDUpper = strings.ToUpper(name)
		path := filepath.Join(docs, "kinds", name+".md")
		if err := writeTemplate(fsys, path, kindTmpl, data); err != nil {
			return err
		}
	}

	return nil
}

func subcommandFor(c *cli.Command) Subcommand {
	sub := Subcommand{
		ID:          c.Name,
		Short:       c.Usage,
		Description: c.Description,
		Usage:       c.UsageText,
	}
	if sub.Usage == "" {
		sub.Usage = strings.TrimSpace("brix " + c.Name + " " + c.ArgsUsage)
	}

	for _, f := range c.Flags {
		sub.Flags = append(sub.Flags, flagFor(f))
	}
	sort.Slice(sub.Flags, func(i, j int) bool {
		return sub.Flags[i].Syntax < sub.Flags[j].Syntax
	})

	return sub
}

func flagFor(f cli.Flag) Flag {
	names := f.Names()
	syntax := make([]string, len(names))
	for i, n := range names {
		if len(n) == 1 {
			syntax[i] = "-" + n
		} else {
			syntax[i] = "--" + n
		}
	}

	out := Flag{Syntax: strings.Join(syntax, ", ")}
	if d, ok := f.(cli.DocGenerationFlag); ok {
		out.Description = d.GetUsage()
		if d.TakesValue() && d.IsDefaultVisible() {
			out.Default = d.GetValue()
		}
		out.Env = strings.Join(d.GetEnvVars(), ", ")
	}
	return out
}

func writeTemplate(fsys afero.Fs, path string, tmpl *template.Template, data TemplateData) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", path, err)
	}

	if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}

	fmt.Println("Generating", path)
	return afero.WriteFile(fsys, path, buf.Bytes(), 0o644)
}
