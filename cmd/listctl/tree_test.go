package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTreeCommand(t *testing.T) {
	tests := []struct {
		name           string
		filter         string
		fuzzy          bool
		wantContain    []string
		wantNotContain []string
	}{
		{
			name:        "full tree",
			wantContain: []string{"fruits/ \"Fruits\"", "  apple [0]", "  cherry [2] (disabled)", "veg/", "  carrot [3]", "bread [4]"},
		},
		{
			name:           "text filter keeps sections of matches",
			filter:         "carr",
			wantContain:    []string{"veg/", "  carrot [0]"},
			wantNotContain: []string{"fruits", "bread"},
		},
		{
			name:           "fuzzy filter",
			filter:         "bnna",
			fuzzy:          true,
			wantContain:    []string{"fruits/", "  banana [0]"},
			wantNotContain: []string{"apple", "veg"},
		},
	}

	path := writeDoc(t, fruitsDoc)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			var out bytes.Buffer
			require.NoError(t, runTree(&out, path, tt.filter, tt.fuzzy))

			for _, s := range tt.wantContain {
				require.Contains(t, out.String(), s)
			}
			for _, s := range tt.wantNotContain {
				require.NotContains(t, out.String(), s)
			}
		})
	}
}

func TestTreeCommand_JSON(t *testing.T) {
	resetFlags(t)
	jsonOut = true

	var out bytes.Buffer
	require.NoError(t, runTree(&out, writeDoc(t, fruitsDoc), "", false))

	var nodes []nodeJSON
	require.NoError(t, json.Unmarshal(out.Bytes(), &nodes))
	require.Len(t, nodes, 7)

	require.Equal(t, "fruits", nodes[0].Key)
	require.Equal(t, "section", nodes[0].Type)
	require.Nil(t, nodes[0].Index)

	require.Equal(t, "apple", nodes[1].Key)
	require.Equal(t, "fruits", nodes[1].Parent)
	require.NotNil(t, nodes[1].Index)
	require.Equal(t, 0, *nodes[1].Index)
}

func TestTreeCommand_Errors(t *testing.T) {
	resetFlags(t)
	var out bytes.Buffer

	require.Error(t, runTree(&out, "does-not-exist.yaml", "", false))
	require.ErrorContains(t, runTree(&out, writeDoc(t, "items:\n  - key: a\n  - key: a\n"), "", false), "duplicate key")
}
