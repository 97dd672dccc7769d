package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/listkit/pkg/collection"
	"github.com/joshuapare/listkit/pkg/types"
)

const fruitsYAML = `
items:
  - key: fruits
    text: Fruits
    items:
      - key: apple
        text: Apple
      - key: banana
        disabled: true
  - key: empty
    section: true
  - key: bread
selected: [apple]
disabled: [bread]
`

func TestParse_YAML(t *testing.T) {
	doc, err := Parse(strings.NewReader(fruitsYAML))
	require.NoError(t, err)

	require.Len(t, doc.Items, 3)
	require.Equal(t, []string{"apple"}, doc.Selected)
	require.Equal(t, []string{"bread"}, doc.Disabled)
	require.True(t, doc.Items[0].IsSection())
	require.True(t, doc.Items[1].IsSection())
	require.False(t, doc.Items[2].IsSection())
	require.True(t, doc.Items[0].Items[1].Disabled)
}

func TestParse_JSON(t *testing.T) {
	doc, err := Parse(strings.NewReader(`{"items":[{"key":"a"},{"key":"g","items":[{"key":"b"}]}]}`))
	require.NoError(t, err)
	require.Len(t, doc.Items, 2)
	require.Equal(t, "b", doc.Items[1].Items[0].Key)
}

func TestParse_Empty(t *testing.T) {
	doc, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, doc.Items)
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	_, err := Parse(strings.NewReader("items:\n  - key: a\n    colour: red\n"))
	require.Error(t, err)

	kind, ok := types.KindOf(err)
	require.True(t, ok)
	require.Equal(t, types.ErrKindSource, kind)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fruitsYAML), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)
	require.Len(t, doc.Items, 3)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestElements_BuildCollection(t *testing.T) {
	doc, err := Parse(strings.NewReader(fruitsYAML))
	require.NoError(t, err)

	c, err := collection.Build(doc.Elements(), MapItem, MapSection, nil)
	require.NoError(t, err)
	require.Equal(t, []string{"fruits", "apple", "banana", "empty", "bread"}, c.Keys())

	apple, ok := c.Item("apple")
	require.True(t, ok)
	require.Equal(t, types.NodeItem, apple.Type)
	require.Equal(t, 1, apple.Level)
	require.Equal(t, "fruits", apple.ParentKey)
	require.Equal(t, "Apple", apple.Text())
	require.Equal(t, "Apple", apple.Value.Text)

	banana, _ := c.Item("banana")
	require.True(t, banana.Disabled)

	empty, _ := c.Item("empty")
	require.Equal(t, types.NodeSection, empty.Type)
	require.Empty(t, c.Children("empty"))

	bread, ok := c.ItemAt(2)
	require.True(t, ok)
	require.Equal(t, "bread", bread.Key)
}
