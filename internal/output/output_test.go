// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package output

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v2"

	"github.com/brixgo/brix/internal/catalog"
	"github.com/brixgo/brix/internal/ops"
	"github.com/brixgo/brix/internal/processor"
	"github.com/brixgo/brix/internal/registry"
)

func ptr[T any](v T) *T { return &v }

func testPlan() processor.CommandList {
	return processor.CommandList{
		{Index: 0, Line: 2, Kind: "copy", Command: ops.NewCopy(), Params: ops.CopyParams{Source: "/cfg/skel", Destination: "app"}},
		{Index: 1, Line: 5, Kind: "search_replace", Command: ops.NewSearchReplace(), Params: ops.SearchReplaceParams{
			Destination: "app/go.mod",
			Search:      regexp.MustCompile("MODULE"),
			Pattern:     "MODULE",
			Replace:     "example.com/app",
		}},
		{Index: 2, Kind: "template", Command: ops.NewTemplate(), Params: ops.TemplateParams{
			Source:      "/cfg/README.md",
			Destination: "app/README.md",
			Overwrite:   ptr(true),
			Context:     map[string]string{"name": "app"},
			Vars:        map[string]string{"name": "app", "secret": "hidden"},
		}},
	}
}

func TestSortDataset(t *testing.T) {
	testData := []map[string]any{
		{"name": "zebra", "count": 3, "type": "copy"},
		{"name": "Alpha", "count": 1.0, "type": "template"},
		{"name": "beta", "count": 2, "type": "copy"},
	}

	tests := []struct {
		name      string
		spec      string
		wantOrder []string
	}{
		{name: "ascending by name", spec: "name", wantOrder: []string{"Alpha", "beta", "zebra"}},
		{name: "descending by name", spec: "-name", wantOrder: []string{"zebra", "beta", "Alpha"}},
		{name: "ascending by count", spec: "count", wantOrder: []string{"Alpha", "beta", "zebra"}},
		{name: "descending by count", spec: "-count", wantOrder: []string{"zebra", "beta", "Alpha"}},
		{name: "case sensitive", spec: "!name", wantOrder: []string{"Alpha", "beta", "zebra"}},
		{name: "case sensitive descending", spec: "-!name", wantOrder: []string{"zebra", "beta", "Alpha"}},
		{name: "multiple fields", spec: "type,-count", wantOrder: []string{"zebra", "beta", "Alpha"}},
		{name: "empty spec", spec: "", wantOrder: []string{"zebra", "Alpha", "beta"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := make([]map[string]any, len(testData))
			copy(data, testData)
			SortDataset(data, tt.spec)
			for i, expectedName := range tt.wantOrder {
				assert.Equal(t, expectedName, data[i]["name"], "at index %d", i)
			}
		})
	}
}

func TestCellString(t *testing.T) {
	tests := []struct {
		name  string
		value any
		empty []string
		want  string
	}{
		{name: "nil", value: nil, want: ""},
		{name: "nil custom empty", value: nil, empty: []string{"-"}, want: "-"},
		{name: "empty string", value: "", empty: []string{"-"}, want: "-"},
		{name: "string", value: "app", want: "app"},
		{name: "int", value: 3, want: "3"},
		{name: "float", value: 2.5, want: "2.5"},
		{name: "whole float", value: 4.0, want: "4"},
		{name: "true", value: true, want: "true"},
		{name: "false is empty", value: false, empty: []string{"-"}, want: "-"},
		{name: "strings", value: []string{"source", "destination"}, want: "source,destination"},
		{name: "map", value: map[string]any{"a": "b"}, want: `{"a":"b"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CellString(tt.value, tt.empty...))
		})
	}
}

func TestPlanDataset(t *testing.T) {
	dataset, err := PlanDataset(testPlan())
	require.NoError(t, err)
	require.Len(t, dataset, 3)

	assert.Equal(t, map[string]any{
		"index": 1, "line": 2, "kind": "copy", "source": "/cfg/skel", "destination": "app",
	}, dataset[0])
	assert.Equal(t, "MODULE", dataset[1]["search"])
	assert.Equal(t, true, dataset[2]["overwrite"])
	assert.Equal(t, map[string]any{"name": "app"}, dataset[2]["context"])
	assert.NotContains(t, dataset[2], "vars")
	assert.NotContains(t, dataset[2], "line")
}

func TestWritePlan_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePlan(&buf, testPlan(), Options{Format: "json"}))

	doc := gjson.Parse(buf.String())
	assert.Equal(t, int64(3), doc.Get("#").Int())
	assert.Equal(t, "search_replace", doc.Get("1.kind").String())
	assert.Equal(t, "app/README.md", doc.Get("2.destination").String())
	assert.NotContains(t, buf.String(), "hidden")
}

func TestWritePlan_Query(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePlan(&buf, testPlan(), Options{Format: "json", Query: "#.destination"}))
	assert.Equal(t, `["app","app/go.mod","app/README.md"]`, strings.TrimSpace(buf.String()))

	buf.Reset()
	require.NoError(t, WritePlan(&buf, testPlan(), Options{Format: "yaml", Query: `#(kind=="copy").source`}))
	assert.Equal(t, "/cfg/skel", strings.TrimSpace(buf.String()))
}

func TestWritePlan_Filter(t *testing.T) {
	tests := []struct {
		filter string
		want   string
	}{
		{"kind=copy", `["app"]`},
		{"destination^app/", `["app/go.mod","app/README.md"]`},
		{"context.name=app", `["app/README.md"]`},
		{"overwrite", `["app/README.md"]`},
		{"kind=nope", `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WritePlan(&buf, testPlan(), Options{Format: "json", Filter: tt.filter, Query: "#.destination"}))
			assert.JSONEq(t, tt.want, buf.String())
		})
	}
}

func TestWritePlan_BadFilter(t *testing.T) {
	err := WritePlan(&bytes.Buffer{}, testPlan(), Options{Format: "json", Filter: "source/("})
	assert.ErrorContains(t, err, "invalid filter")
}

func TestWritePlan_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePlan(&buf, testPlan(), Options{Format: "yaml", Sort: "-index"}))

	var rows []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 3)
	assert.Equal(t, "template", rows[0]["kind"])
	assert.Equal(t, "copy", rows[2]["kind"])
}

func TestWritePlan_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePlan(&buf, testPlan(), Options{Titles: true, Padding: 2, Header: "plan", Footer: "3 commands"}))

	out := buf.String()
	for _, want := range []string{"plan", "index", "destination", "search_replace", "app/go.mod", "example.com/app", "3 commands"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "hidden")
}

func TestWrite_UnsupportedFormat(t *testing.T) {
	err := WritePlan(&bytes.Buffer{}, testPlan(), Options{Format: "xml"})
	assert.EqualError(t, err, `unsupported output format "xml"`)
}

func TestWrite_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePlan(&buf, nil, Options{Format: "json"}))
	assert.Equal(t, "[]\n", buf.String())

	buf.Reset()
	require.NoError(t, WritePlan(&buf, nil, Options{Titles: true}))
	assert.Empty(t, buf.String())
}

func TestPopulated(t *testing.T) {
	dataset := []map[string]any{{"a": "1", "b": ""}, {"a": "", "c": "3"}}
	assert.Equal(t, []string{"a", "c"}, populated(dataset, []string{"a", "b", "c", "d"}))
}

func TestWriteKinds(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteKinds(&buf, registry.Default, Options{Format: "json"}))

	doc := gjson.Parse(buf.String())
	assert.Equal(t, []string{"copy", "search_replace", "template"}, []string{
		doc.Get("0.kind").String(), doc.Get("1.kind").String(), doc.Get("2.kind").String(),
	})
	assert.Equal(t, `["destination","search","replace"]`, doc.Get("1.required").Raw)

	buf.Reset()
	require.NoError(t, WriteKinds(&buf, registry.Default, Options{}))
	assert.Contains(t, buf.String(), "source,destination")
}

func TestWriteCatalog(t *testing.T) {
	entries := []catalog.Entry{
		{Language: "rust", Name: "crate", Path: "/brix/rust/crate.brix.yaml"},
		{Language: "go", Name: "cli", Path: "/brix/go/cli.brix.yaml"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCatalog(&buf, entries, Options{Format: "json", Sort: "language"}))
	assert.Equal(t, "go", gjson.Get(buf.String(), "0.language").String())

	buf.Reset()
	require.NoError(t, WriteCatalog(&buf, entries, Options{Titles: true}))
	assert.Contains(t, buf.String(), "/brix/go/cli.brix.yaml")
	assert.Contains(t, buf.String(), "language")
}

func TestGetColors(t *testing.T) {
	header, even, odd := getColors("colors")

	assert.NotNil(t, header)
	assert.NotNil(t, even)
	assert.NotNil(t, odd)
}
