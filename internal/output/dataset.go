// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/brixgo/brix/internal/catalog"
	"github.com/brixgo/brix/internal/processor"
	"github.com/brixgo/brix/internal/registry"
)

var (
	planColumns    = []string{"index", "kind", "source", "destination", "overwrite", "search", "replace"}
	kindColumns    = []string{"kind", "required", "optional", "summary"}
	catalogColumns = []string{"language", "name", "path"}
)

// PlanDataset flattens a command list into rows. index is one-based, like
// the positions in error messages.
func PlanDataset(list processor.CommandList) ([]map[string]any, error) {
	dataset := make([]map[string]any, 0, len(list))
	for _, step := range list {
		raw, err := json.Marshal(step.Params)
		if err != nil {
			return nil, fmt.Errorf("failed to encode command #%d: %w", step.Index+1, err)
		}

		row := map[string]any{}
		if err := json.Unmarshal(raw, &row); err != nil {
			return nil, fmt.Errorf("failed to decode command #%d: %w", step.Index+1, err)
		}
		row["index"] = step.Index + 1
		row["kind"] = step.Kind
		if step.Line > 0 {
			row["line"] = step.Line
		}
		dataset = append(dataset, row)
	}
	return dataset, nil
}

// WritePlan emits the resolved command list.
func WritePlan(w io.Writer, list processor.CommandList, opts Options) error {
	dataset, err := PlanDataset(list)
	if err != nil {
		return err
	}
	return Write(w, dataset, planColumns, opts)
}

// WriteKinds emits every kind in reg with its fields.
func WriteKinds(w io.Writer, reg *registry.Registry, opts Options) error {
	var dataset []map[string]any
	for _, kind := range reg.Kinds() {
		cmd, err := reg.Resolve(kind)
		if err != nil {
			return err
		}
		usage := cmd.Usage()
		dataset = append(dataset, map[string]any{
			"kind":     kind,
			"required": usage.Required,
			"optional": usage.Optional,
			"summary":  usage.Summary,
		})
	}
	return Write(w, dataset, kindColumns, opts)
}

// WriteCatalog emits catalog entries.
func WriteCatalog(w io.Writer, entries []catalog.Entry, opts Options) error {
	dataset := make([]map[string]any, 0, len(entries))
	for _, e := range entries {
		dataset = append(dataset, map[string]any{
			"language": e.Language,
			"name":     e.Name,
			"path":     e.Path,
		})
	}
	return Write(w, dataset, catalogColumns, opts)
}
