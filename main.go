// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/brixgo/brix/internal/command"
	"github.com/brixgo/brix/internal/config"
	"github.com/brixgo/brix/internal/log"
	"github.com/brixgo/brix/internal/version"
)

var ctx = context.Background()

// boolFlags never take a separate value argument.
var boolFlags = map[string]bool{
	"--color":   true,
	"-c":        true,
	"--dry-run": true,
	"--help":    true,
	"-h":        true,
	"--no":      true,
	"-n":        true,
	"--titles":  true,
	"-t":        true,
	"--yes":     true,
	"-y":        true,
}

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.String())
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// processSets replaces each @set argument with the entries of the settings
// key <subcommand>.<set>, so "brix run cfg.yaml @go" can pull in a stored
// list of key=value arguments and flags.
func processSets(args []string) []string {
	if len(args) < 3 {
		return args
	}

	out := append([]string{}, args[:2]...)
	for _, a := range args[2:] {
		if !strings.HasPrefix(a, "@") || len(a) == 1 {
			out = append(out, a)
			continue
		}

		key := args[1] + "." + a[1:]
		entries, err := config.GetStringSlice(key)
		if err != nil {
			log.Warnf("ignoring %s: %v", a, err)
			continue
		}
		out = injectSet(out, len(out), entries)
	}
	return out
}

// injectSet splits entries into arguments and inserts them at idx.
func injectSet(args []string, idx int, entries []string) []string {
	if len(entries) == 0 {
		return args
	}

	var expanded []string
	for _, entry := range entries {
		expanded = append(expanded, splitFields(entry)...)
	}

	return append(args[:idx], append(expanded, args[idx:]...)...)
}

// splitFields splits s on whitespace. Single or double quotes group words,
// so author='Jane Doe' is one field.
func splitFields(s string) []string {
	var (
		result []string
		field  strings.Builder
		quote  rune
		inWord bool
	)

	for _, r := range s {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				field.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote, inWord = r, true
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			if inWord {
				result = append(result, field.String())
				field.Reset()
				inWord = false
			}
		default:
			field.WriteRune(r)
			inWord = true
		}
	}

	if inWord {
		result = append(result, field.String())
	}

	return result
}

// deduplicateFlags drops earlier occurrences of a repeated flag so the last
// one wins, which lets explicit flags override those injected from a set.
// Flags are compared by their literal name, so -o and --output are distinct.
func deduplicateFlags(args []string) []string {
	if len(args) <= 2 {
		return args
	}

	type unit struct {
		key    string
		tokens []string
	}

	var units []unit
	for i := 2; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			units = append(units, unit{tokens: args[i:]})
			break
		}
		if !strings.HasPrefix(a, "-") || a == "-" {
			units = append(units, unit{tokens: []string{a}})
			continue
		}

		name, _, hasValue := strings.Cut(a, "=")
		u := unit{key: name, tokens: []string{a}}
		if !hasValue && !boolFlags[name] && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			u.tokens = append(u.tokens, args[i+1])
			i++
		}
		units = append(units, u)
	}

	last := map[string]int{}
	for i, u := range units {
		if u.key != "" {
			last[u.key] = i
		}
	}

	result := append([]string{}, args[:2]...)
	for i, u := range units {
		if u.key != "" && last[u.key] != i {
			continue
		}
		result = append(result, u.tokens...)
	}
	return result
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	args = handleNakedCommand(args)

	// If --help appears anywhere, skip argument processing and let the CLI
	// handle it.
	helpFound := false
	for _, a := range args {
		if a == "--help" || a == "-h" {
			helpFound = true
			break
		}
	}

	if !helpFound && args[1] != "completion" {
		args = deduplicateFlags(processSets(args))
		log.Debugf("args after set processing: args=%v", args)
	}

	return initAndRunApp(args)
}
