// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/brixgo/brix/internal/log"
)

// filterRegex splits an expression into key, optional (negated) operator and
// target. "kind" is key only, "kind=" is key and operator with an empty target.
var filterRegex = regexp.MustCompile(`^([^!=^~<>@/]*)(!?[=^~<>@/])?(.*)$`)

// segmentRegex matches one dot path segment with an optional [n] or [*].
var segmentRegex = regexp.MustCompile(`^([a-zA-Z0-9_-]+)(\[(\d+|\*)?\])?$`)

// Filter is a single parsed expression.
type Filter struct {
	Key     string `yaml:"key" json:"key"`
	Negate  bool   `yaml:"negate" json:"negate"`
	Operand string `yaml:"operand" json:"operand"`
	Value   string `yaml:"value" json:"value"`
}

// BuildFilters parses spec into filters. Entries with an empty key are logged
// and skipped.
func BuildFilters(spec string) []Filter {
	//nolint:prealloc
	var filters []Filter

	if spec == "" {
		return filters
	}

	// Allow an override for values that contain commas.
	delim := ","
	if d, ok := os.LookupEnv("BRIX_FILTER_DELIM"); ok && d != "" {
		delim = d
	}

	for _, filterSpec := range strings.Split(spec, delim) {
		filterSpec = strings.TrimSpace(filterSpec)
		if filterSpec == "" {
			continue
		}

		parts := filterRegex.FindStringSubmatch(filterSpec)
		if parts == nil {
			log.Errorf("invalid filter: %s", filterSpec)
			continue
		}

		key := strings.TrimSpace(parts[1])
		if key == "" {
			log.Errorf("invalid filter: empty key in %s", filterSpec)
			continue
		}

		operand := parts[2]
		negate := strings.HasPrefix(operand, "!")
		operand = strings.TrimPrefix(operand, "!")

		filters = append(filters, Filter{
			Key:     key,
			Negate:  negate,
			Operand: operand,
			Value:   parts[3],
		})
	}

	return filters
}

// FilterDataset returns the rows of dataset that match every filter in spec.
// Rows are returned as-is, not copied.
func FilterDataset(dataset []map[string]any, spec string) ([]map[string]any, error) {
	filters := BuildFilters(spec)
	if len(filters) == 0 {
		return dataset, nil
	}

	for _, f := range filters {
		if f.Operand == "/" {
			if _, err := regexp.Compile(f.Value); err != nil {
				return nil, fmt.Errorf("invalid filter %s/%s: %w", f.Key, f.Value, err)
			}
		}
	}

	result := make([]map[string]any, 0, len(dataset))
	for _, row := range dataset {
		raw, err := json.Marshal(row)
		if err != nil {
			return nil, fmt.Errorf("failed to encode row: %w", err)
		}
		if applyFilters(string(raw), filters) {
			result = append(result, row)
		}
	}

	return result, nil
}

// applyFilters reports whether the JSON row matches all filters.
func applyFilters(row string, filters []Filter) bool {
	for _, filter := range filters {
		value := Drill(row, filter.Key).Value()

		if filter.Operand == "" {
			if isEmpty(value) == !filter.Negate {
				return false
			}
			continue
		}

		// A missing key only satisfies a negated filter.
		if value == nil {
			if !filter.Negate {
				return false
			}
			continue
		}

		var ok bool
		switch v := value.(type) {
		case string:
			ok = checkStringOperand(v, filter)
		case bool:
			ok = checkStringOperand(strconv.FormatBool(v), filter)
		case float64:
			ok = checkNumericOperand(v, filter)
		default:
			ok = checkContainsOperand(value, filter)
		}

		if !ok {
			return false
		}
	}

	return true
}

// Drill navigates row with a dot path. A segment may carry [n] to select a
// list element; a single-element list is unwrapped without one.
func Drill(row string, path string) gjson.Result {
	current := gjson.Parse(row)

	for _, p := range strings.Split(path, ".") {
		matches := segmentRegex.FindStringSubmatch(p)
		if matches == nil {
			return gjson.Result{}
		}

		index := -1
		if matches[3] != "" && matches[3] != "*" {
			i, err := strconv.Atoi(matches[3])
			if err != nil {
				return gjson.Result{}
			}
			index = i
		}

		val := current.Get(gjson.Escape(matches[1]))
		if val.IsArray() {
			arr := val.Array()
			switch {
			case index == -1:
				if len(arr) == 1 && matches[2] == "" {
					val = arr[0]
				}
			case index < len(arr):
				val = arr[index]
			default:
				return gjson.Result{}
			}
		}

		current = val
	}

	return current
}

// checkContainsOperand evaluates '@' against list and map values. Other
// operands never match a composite value.
func checkContainsOperand(value any, filter Filter) bool {
	if filter.Operand != "@" {
		return filter.Negate
	}

	switch val := value.(type) {
	case []any:
		for _, item := range val {
			if fmt.Sprint(item) == filter.Value {
				return !filter.Negate
			}
		}
		return filter.Negate
	case map[string]any:
		_, found := val[filter.Value]
		return found == !filter.Negate
	default:
		log.Errorf("unsupported type for contains filtering: %T", value)
		return false
	}
}

// checkNumericOperand compares numerically when the target parses as a
// number and falls back to string comparison otherwise.
func checkNumericOperand(value float64, filter Filter) bool {
	tgt, err := strconv.ParseFloat(strings.TrimSpace(filter.Value), 64)
	if err != nil {
		return checkStringOperand(strconv.FormatFloat(value, 'f', -1, 64), filter)
	}

	switch filter.Operand {
	case "=":
		return (value == tgt) == !filter.Negate
	case ">":
		return (value > tgt) == !filter.Negate
	case "<":
		return (value < tgt) == !filter.Negate
	default:
		return checkStringOperand(strconv.FormatFloat(value, 'f', -1, 64), filter)
	}
}

// checkStringOperand evaluates a string comparison.
func checkStringOperand(value string, filter Filter) bool {
	switch filter.Operand {
	case "=":
		return (value == filter.Value) == !filter.Negate
	case "~":
		return strings.EqualFold(value, filter.Value) == !filter.Negate
	case "^":
		return strings.HasPrefix(value, filter.Value) == !filter.Negate
	case ">":
		return (value > filter.Value) == !filter.Negate
	case "<":
		return (value < filter.Value) == !filter.Negate
	case "@":
		return strings.Contains(value, filter.Value) == !filter.Negate
	case "/":
		// Patterns are validated in FilterDataset.
		matched, _ := regexp.MatchString(filter.Value, value)
		return matched == !filter.Negate
	default:
		log.Errorf("unsupported filtering operand: %s", filter.Operand)
		return false
	}
}

func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	case []any:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	default:
		return false
	}
}
