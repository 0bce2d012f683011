// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package ops

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/afero"

	"github.com/brixgo/brix/internal/log"
)

// writeFile writes data to dst, applying the overwrite flow when dst exists.
// It reports whether the file was written.
func writeFile(ctx context.Context, env *Env, dst string, data []byte, mode os.FileMode, overwrite *bool) (bool, error) {
	fs := env.fs()

	existing, err := afero.ReadFile(fs, dst)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return false, fmt.Errorf("failed to read destination %s: %w", dst, err)
	default:
		ok, err := confirmOverwrite(ctx, env, dst, existing, data, overwrite)
		if err != nil {
			return false, err
		}
		if !ok {
			log.Infof("skipped %s", dst)
			return false, nil
		}
	}

	if err := fs.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return false, fmt.Errorf("failed to create directory for %s: %w", dst, err)
	}
	if err := afero.WriteFile(fs, dst, data, mode); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", dst, err)
	}
	if err := fs.Chmod(dst, mode); err != nil {
		return false, fmt.Errorf("failed to set mode on %s: %w", dst, err)
	}

	log.Infof("wrote %s (%s)", dst, humanize.Bytes(uint64(len(data))))
	return true, nil
}

func confirmOverwrite(ctx context.Context, env *Env, dst string, existing, data []byte, overwrite *bool) (bool, error) {
	if overwrite != nil {
		log.Debugf("%s exists, overwrite=%t", dst, *overwrite)
		return *overwrite, nil
	}

	if env.Prompter == nil {
		return false, fmt.Errorf("%s already exists and overwrite is not set", dst)
	}

	ok, err := env.Prompter.Confirm(ctx, fmt.Sprintf("%s already exists. Overwrite?", dst), DiffSummary(existing, data))
	if err != nil {
		return false, fmt.Errorf("failed to confirm overwrite of %s: %w", dst, err)
	}
	return ok, nil
}

// DiffSummary describes how new differs from old in one line.
func DiffSummary(old, new []byte) string {
	if isBinary(old) || isBinary(new) {
		return fmt.Sprintf("binary content, %s -> %s",
			humanize.Bytes(uint64(len(old))), humanize.Bytes(uint64(len(new))))
	}
	if bytes.Equal(old, new) {
		return "contents are identical"
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(string(old), string(new))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var added, removed int
	for _, d := range diffs {
		n := countLines(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			added += n
		case diffmatchpatch.DiffDelete:
			removed += n
		}
	}
	return fmt.Sprintf("%d %s added, %d removed", added, plural(added, "line"), removed)
}

func countLines(s string) int {
	if s == "" {
		return 0
	}
	n := strings.Count(s, "\n")
	if !strings.HasSuffix(s, "\n") {
		n++
	}
	return n
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

func isBinary(data []byte) bool {
	head := data
	if len(head) > 8000 {
		head = head[:8000]
	}
	return bytes.IndexByte(head, 0) >= 0
}
