// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"slices"

	"github.com/brixgo/brix/internal/log"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

func OutputValidator(value any) error {
	var validOutputFlagValues = []string{"text", "json", "yaml"}
	if s, ok := value.(string); !ok || !slices.Contains(validOutputFlagValues, s) {
		return fmt.Errorf("must be one of %v", validOutputFlagValues)
	}
	return nil
}

func LogLevelValidator(value any) error {
	var validLevels = []string{"trace", "debug", "info", "warn", "error", "fatal"}
	if s, ok := value.(string); !ok || !slices.Contains(validLevels, s) {
		return fmt.Errorf("must be one of %v", validLevels)
	}
	return nil
}

// applyLogLevel validates and sets the log level named by --log-level.
func applyLogLevel(value string) error {
	if err := FlagValidators(value, LogLevelValidator); err != nil {
		return err
	}
	return log.SetLevel(value)
}
