// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/brixgo/brix/internal/meta"
)

const bashCompletionScript = `# bash completion for brix
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_brix()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "run new plan list kinds completion --help --log-level --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local output="--color -c --filter -f --output -o --padding -p --query -q --sort -s --titles -t"
    local run="--dry-run --env-file --no -n --workdir -w --yes -y"

    case "$cmd" in
        run)
            local opts="$run"
            ;;
        new)
            local opts="$run --config-dir"
            ;;
        plan)
            local opts="$output --env-file"
            ;;
        list)
            local opts="$output --config-dir"
            ;;
        kinds)
            local opts="$output"
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
            return 0
            ;;
        *)
            local opts=""
            ;;
    esac

    case "$prev" in
        --output|-o)
            COMPREPLY=( $(compgen -W "text json yaml" -- "$cur") )
            return 0
            ;;
        --workdir|-w|--config-dir)
            COMPREPLY=( $(compgen -o dirnames -- "$cur") )
            return 0
            ;;
        --env-file)
            COMPREPLY=( $(compgen -f -- "$cur") )
            return 0
            ;;
    esac

    if [[ "$cur" == -* ]]; then
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
        return 0
    fi

    # Otherwise complete the CONFIG file for run and plan.
    if [[ "$cmd" == "run" || "$cmd" == "plan" ]]; then
        COMPREPLY=( $(compgen -f -- "$cur") )
    fi
    return 0
}

complete -F _brix brix
`

const zshCompletionScript = `#compdef brix

_brix() {
  local -a cmds
  cmds=(
    'run:run a brix config'
    'new:scaffold a project from a catalog config'
    'plan:show the resolved commands of a brix config'
    'list:list the configs in the catalog'
    'kinds:list the supported command kinds'
    'completion:generate shell completion script'
  )

  local -a output
  output=(
  '(-c --color)'{-c,--color}'[enable colored text]'
  '(-o --output)'{-o,--output}'[output format]:format:(text json yaml)'
  '(-p --padding)'{-p,--padding}'[column padding]:padding'
  '(-f --filter)'{-f,--filter}'[filter expressions]:filters'
  '(-q --query)'{-q,--query}'[gjson query]:query'
  '(-s --sort)'{-s,--sort}'[sort columns]:columns'
  '(-t --titles)'{-t,--titles}'[show titles]'
  )

  local -a run
  run=(
  '--dry-run[print the resolved commands]'
  '--env-file[dotenv context file]:file:_files'
  '(-n --no -y --yes)'{-n,--no}'[keep existing files]'
  '(-y --yes -n --no)'{-y,--yes}'[overwrite existing files]'
  '(-w --workdir)'{-w,--workdir}'[working directory]:dir:_directories'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'brix commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    run)
      _arguments -C $run ':CONFIG:_files' '*:key=value'
      ;;
    new)
      _arguments -C $run '--config-dir[catalog directory]:dir:_directories' \
        ':LANGUAGE' ':CONFIG_NAME' ':PROJECT' ':MODULE' '*:key=value'
      ;;
    plan)
      _arguments -C $output '--env-file[dotenv context file]:file:_files' ':CONFIG:_files' '*:key=value'
      ;;
    list)
      _arguments -C $output '--config-dir[catalog directory]:dir:_directories'
      ;;
    kinds)
      _arguments -C $output
      ;;
    completion)
      _arguments '1:shell:(bash zsh)'
      ;;
  esac
}

compdef _brix brix
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	w := GetMeta(cmd).Stdout
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(w, bashCompletionScript)
	case "zsh":
		fmt.Fprint(w, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			fmt.Fprint(w, zshCompletionScript)
		case strings.HasSuffix(sh, "bash"):
			fmt.Fprint(w, bashCompletionScript)
		default:
			fmt.Fprintln(GetMeta(cmd).Stderr, "usage: brix completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "brix completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
