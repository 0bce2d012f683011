// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v2"

	"github.com/brixgo/brix/internal/config"
	"github.com/brixgo/brix/internal/filters"
	"github.com/brixgo/brix/internal/log"
)

// Options control how a dataset is emitted.
type Options struct {
	// Format is text (the default), json or yaml.
	Format string
	Titles bool
	Color  bool
	// Filter is a filters expression applied before sorting.
	Filter string
	// Query is a gjson path applied to json and yaml output.
	Query   string
	Sort    string
	Padding int
	Header  string
	Footer  string
}

// CellString converts a dataset value to its display form. A custom empty
// value may be provided.
func CellString(value any, emptyValue ...string) string {
	if len(emptyValue) == 0 {
		emptyValue = []string{""}
	}

	if value == nil || reflect.ValueOf(value).IsZero() {
		return emptyValue[0]
	}

	switch value := value.(type) {
	case string:
		return value
	case int:
		return strconv.Itoa(value)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	case []string:
		return strings.Join(value, ",")
	default:
		jsonBytes, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(jsonBytes)
	}
}

// Write sorts dataset and emits it in the requested format. columns selects
// and orders the table columns; json and yaml output carry every key.
func Write(w io.Writer, dataset []map[string]any, columns []string, opts Options) error {
	if w == nil {
		w = os.Stdout
	}
	if dataset == nil {
		dataset = []map[string]any{}
	}

	dataset, err := filters.FilterDataset(dataset, opts.Filter)
	if err != nil {
		return err
	}

	SortDataset(dataset, opts.Sort)

	switch opts.Format {
	case "json", "yaml":
		return writeDocument(w, dataset, opts)
	case "", "text":
		if opts.Query != "" {
			log.Warnf("--query is ignored for text output")
		}
		TableWriter(w, dataset, columns, opts)
		return nil
	default:
		return fmt.Errorf("unsupported output format %q", opts.Format)
	}
}

func writeDocument(w io.Writer, dataset []map[string]any, opts Options) error {
	jsonOutput, err := json.Marshal(dataset)
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	var doc any = dataset
	if opts.Query != "" {
		result := gjson.GetBytes(jsonOutput, opts.Query)
		if !result.Exists() {
			log.Debugf("query %q matched nothing", opts.Query)
		}
		jsonOutput = []byte(result.Raw)
		doc = result.Value()
	}

	if opts.Format == "json" {
		_, err = fmt.Fprintln(w, string(jsonOutput))
		return err
	}

	yamlOutput, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = w.Write(yamlOutput)
	return err
}

// TableWriter renders the dataset as a table honoring color, titles and
// padding options. Columns that are empty in every row are left out.
func TableWriter(w io.Writer, dataset []map[string]any, columns []string, opts Options) {
	if w == nil {
		w = os.Stdout
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if opts.Color {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Foreground(headerColor)
		evenRowStyle = evenRowStyle.Foreground(evenColor)
		oddRowStyle = oddRowStyle.Foreground(oddColor)
	}

	if opts.Header != "" {
		fmt.Fprintln(w, headerStyle.Render(opts.Header))
	}

	if len(dataset) > 0 {
		columns = populated(dataset, columns)

		var rows [][]string
		for _, result := range dataset {
			row := make([]string, 0, len(columns))
			for _, col := range columns {
				row = append(row, CellString(result[col], "-"))
			}
			rows = append(rows, row)
		}

		pad := opts.Padding
		t := table.New().
			BorderBottom(false).
			BorderTop(false).
			BorderLeft(false).
			BorderRight(false).
			Border(lipgloss.HiddenBorder()).
			StyleFunc(func(row, col int) lipgloss.Style {
				var style lipgloss.Style
				switch {
				case row == table.HeaderRow:
					style = headerStyle
				case row%2 == 0:
					style = evenRowStyle
				default:
					style = oddRowStyle
				}

				if col > 0 {
					style = style.PaddingLeft(pad)
				}

				return style
			}).
			Headers().
			Rows(rows...)

		if opts.Titles {
			// https://github.com/charmbracelet/lipgloss/issues/261
			t = t.Headers(columns...).BorderHeader(false)
		}
		fmt.Fprintln(w, t)
	}

	if opts.Footer != "" {
		fmt.Fprintln(w, headerStyle.Render(opts.Footer))
	}
}

// populated returns the columns that hold a value in at least one row.
func populated(dataset []map[string]any, columns []string) []string {
	var out []string
	for _, col := range columns {
		for _, row := range dataset {
			if CellString(row[col]) != "" {
				out = append(out, col)
				break
			}
		}
	}
	return out
}

// getColors returns configured color values for table rendering. Without
// configured colors the defaults follow the terminal background.
func getColors(key string) (header, even, odd color.Color) {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	resolveColor := func(key string, light string, dark string) color.Color {
		colorCfg, err := config.GetString(key)
		if err == nil && colorCfg != "" {
			return lipgloss.Color(colorCfg)
		}

		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	header = resolveColor(key+".title", "#b08800", "#f6be00")
	even = resolveColor(key+".even", "#333333", "#ffffff")
	odd = resolveColor(key+".odd", "#0088a0", "#00c8f0")

	return
}
