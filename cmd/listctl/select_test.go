package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/listkit/pkg/selection"
)

func TestSelectCommand(t *testing.T) {
	const withDefaults = fruitsDoc + "selected: [banana]\n"

	tests := []struct {
		name  string
		doc   string
		ops   []string
		run   selectRun
		want  []string // output lines, in order
		wantE string
	}{
		{
			name: "multiple toggles",
			ops:  []string{"select:apple", "select:banana", "select:apple"},
			run:  selectRun{mode: selection.ModeMultiple},
			want: []string{"selection: {apple}", "selection: {apple,banana}", "selection: {banana}", "selected: banana"},
		},
		{
			name: "single deselects sole selection",
			ops:  []string{"select:apple", "select:apple"},
			run:  selectRun{mode: selection.ModeSingle},
			want: []string{"selection: {apple}", "selection: {}", "selected: "},
		},
		{
			name: "extend skips sections and disabled items",
			ops:  []string{"focus:apple", "extend:carrot"},
			run:  selectRun{mode: selection.ModeMultiple},
			want: []string{"selection: {apple,banana,carrot}", "selected: apple banana carrot", "focused: apple"},
		},
		{
			name: "select all skips disabled keys",
			ops:  []string{"all"},
			run:  selectRun{mode: selection.ModeMultiple, disabled: []string{"bread"}},
			want: []string{"selection: {apple,banana,carrot}", "selected: apple banana carrot"},
		},
		{
			name: "keep all stores the sentinel",
			ops:  []string{"all"},
			run:  selectRun{mode: selection.ModeMultiple, keepAll: true},
			want: []string{"selection: all", "selected: apple banana carrot bread"},
		},
		{
			name: "disallow empty keeps the last key",
			ops:  []string{"select:apple", "clear", "select:apple"},
			run:  selectRun{mode: selection.ModeMultiple, disallowEmpty: true},
			want: []string{"selection: {apple}", "selected: apple"},
		},
		{
			name: "document defaults",
			doc:  withDefaults,
			ops:  []string{"select:apple"},
			run:  selectRun{mode: selection.ModeMultiple},
			want: []string{"selection: {apple,banana}", "selected: apple banana"},
		},
		{
			name: "flag defaults override the document",
			doc:  withDefaults,
			run:  selectRun{mode: selection.ModeMultiple, defaults: []string{"carrot"}},
			want: []string{"selected: carrot"},
		},
		{
			name: "filter hides keys and drops focus",
			ops:  []string{"focus:apple", "filter:carr", "select:apple", "select:carrot"},
			run:  selectRun{mode: selection.ModeMultiple},
			want: []string{"selection: {carrot}", "selected: carrot"},
		},
		{
			name: "mode none ignores everything",
			ops:  []string{"select:apple", "all"},
			run:  selectRun{mode: selection.ModeNone},
			want: []string{"selected: "},
		},
		{
			name:  "bad operation",
			ops:   []string{"select:apple", "jump"},
			run:   selectRun{mode: selection.ModeMultiple},
			wantE: "unknown operation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			doc := tt.doc
			if doc == "" {
				doc = fruitsDoc
			}

			var out bytes.Buffer
			err := runSelect(&out, writeDoc(t, doc), tt.ops, tt.run)
			if tt.wantE != "" {
				require.ErrorContains(t, err, tt.wantE)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n"))
		})
	}
}

func TestSelectCommand_JSON(t *testing.T) {
	resetFlags(t)
	jsonOut = true

	var out bytes.Buffer
	err := runSelect(&out, writeDoc(t, fruitsDoc), []string{"focus:banana", "all", "select:apple"}, selectRun{mode: selection.ModeMultiple, keepAll: true})
	require.NoError(t, err)

	var res selectResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	require.Equal(t, [][]string{{"*"}, {"banana", "bread", "carrot"}}, res.Changes)
	require.Equal(t, []string{"banana", "carrot", "bread"}, res.Selected)
	require.Equal(t, "banana", res.Focused)
}
