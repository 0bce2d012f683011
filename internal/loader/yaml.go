// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package loader

import (
	"fmt"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"
)

var yamlLineRe = regexp.MustCompile(`line (\d+)`)

// parseYAML walks the node tree rather than unmarshaling into structs so that
// entry order, the one-key rule and error locations are all under our control.
func parseYAML(data []byte, path string) (*RawConfig, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		perr := &ParseError{Path: path, Msg: err.Error(), Err: err}
		if m := yamlLineRe.FindStringSubmatch(err.Error()); m != nil {
			perr.Line, _ = strconv.Atoi(m[1])
		}
		return nil, perr
	}

	cfg := &RawConfig{Path: path}
	if len(doc.Content) == 0 {
		return cfg, nil
	}

	root := deref(doc.Content[0])
	if isNull(root) {
		return cfg, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, nodeError(path, root, nil, "top level must be a mapping with commands and context")
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		switch key.Value {
		case "commands":
			cmds, err := yamlCommands(path, val)
			if err != nil {
				return nil, err
			}
			cfg.Commands = cmds
		case "context":
			ctx, err := yamlStringMap(path, val, "context")
			if err != nil {
				return nil, err
			}
			cfg.Context = ctx
		default:
			return nil, nodeError(path, key, nil, "unknown top-level key %q", key.Value)
		}
	}

	return cfg, nil
}

func yamlCommands(path string, seq *yaml.Node) ([]CommandEntry, error) {
	seq = deref(seq)
	if isNull(seq) {
		return nil, nil
	}
	if seq.Kind != yaml.SequenceNode {
		return nil, nodeError(path, seq, nil, "commands must be a list")
	}

	entries := make([]CommandEntry, 0, len(seq.Content))
	for i, item := range seq.Content {
		item = deref(item)
		if item.Kind != yaml.MappingNode {
			return nil, nodeError(path, item, nil, "command #%d must be a mapping of kind to parameters", i+1)
		}
		if n := len(item.Content) / 2; n != 1 {
			return nil, nodeError(path, item, nil, "command #%d must have exactly one key, found %d", i+1, n)
		}

		kindNode, paramsNode := deref(item.Content[0]), deref(item.Content[1])
		entry := CommandEntry{Kind: kindNode.Value, Line: kindNode.Line, Column: kindNode.Column}

		if !isNull(paramsNode) {
			if paramsNode.Kind != yaml.MappingNode {
				return nil, nodeError(path, paramsNode, nil, "parameters of %q must be a mapping", entry.Kind)
			}
			for j := 0; j+1 < len(paramsNode.Content); j += 2 {
				if k := paramsNode.Content[j]; !paramKeys[k.Value] {
					return nil, nodeError(path, k, nil, "unknown parameter %q for %q", k.Value, entry.Kind)
				}
			}
			if err := paramsNode.Decode(&entry.Params); err != nil {
				return nil, nodeError(path, paramsNode, err, "parameters of %q: %v", entry.Kind, err)
			}
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

func yamlStringMap(path string, node *yaml.Node, what string) (map[string]string, error) {
	node = deref(node)
	if isNull(node) {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, nodeError(path, node, nil, "%s must be a mapping of strings", what)
	}

	var out map[string]string
	if err := node.Decode(&out); err != nil {
		return nil, nodeError(path, node, err, "%s: %v", what, err)
	}
	return out, nil
}

// deref follows an alias to its anchored node.
func deref(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n == nil || (n.Kind == yaml.ScalarNode && n.Tag == "!!null")
}

func nodeError(path string, n *yaml.Node, err error, format string, args ...any) *ParseError {
	return &ParseError{
		Path:   path,
		Line:   n.Line,
		Column: n.Column,
		Msg:    fmt.Sprintf(format, args...),
		Err:    err,
	}
}
