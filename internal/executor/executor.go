// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package executor runs a processed command list, one step at a time.
package executor

import (
	"context"
	"fmt"
	"time"

	"github.com/brixgo/brix/internal/log"
	"github.com/brixgo/brix/internal/ops"
	"github.com/brixgo/brix/internal/processor"
)

// Run executes list in order against env and stops at the first failure.
// ctx is checked between steps, never during one.
func Run(ctx context.Context, list processor.CommandList, env *ops.Env) error {
	start := time.Now()

	for _, step := range list {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("run cancelled before command #%d: %w", step.Index+1, err)
		}

		log.Debugf("executing command #%d (%s)", step.Index+1, step.Kind)
		if err := step.Command.Execute(ctx, step.Params, env); err != nil {
			return &processor.EntryError{Index: step.Index, Line: step.Line, Kind: step.Kind, Err: err}
		}
	}

	log.Infof("completed %d commands in %s", len(list), time.Since(start).Round(time.Millisecond))
	return nil
}
