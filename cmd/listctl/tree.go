package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/listkit/internal/source"
	"github.com/joshuapare/listkit/pkg/collection"
	"github.com/joshuapare/listkit/pkg/types"
)

var (
	treeFilter string
	treeFuzzy  bool
)

func init() {
	cmd := newTreeCmd()
	cmd.Flags().StringVar(&treeFilter, "filter", "", "Keep items matching the query, plus their sections")
	cmd.Flags().BoolVar(&treeFuzzy, "fuzzy", false, "Use fuzzy matching for --filter")
	rootCmd.AddCommand(cmd)
}

func newTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree <file>",
		Short: "Print the flattened collection",
		Long: `The tree command builds the collection for a data source and prints every
node in traversal order with its level, item index and parent.

Example:
  listctl tree fruits.yaml
  listctl tree fruits.yaml --filter ban
  listctl tree fruits.yaml --filter bnna --fuzzy --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fuzzy := treeFuzzy || (!cmd.Flags().Changed("fuzzy") && cfg.Fuzzy())
			return runTree(cmd.OutOrStdout(), args[0], treeFilter, fuzzy)
		},
	}
}

// nodeJSON is the JSON form of one node.
type nodeJSON struct {
	Key      string `json:"key"`
	Type     string `json:"type"`
	Level    int    `json:"level"`
	Index    *int   `json:"index,omitempty"`
	Parent   string `json:"parent,omitempty"`
	Text     string `json:"text,omitempty"`
	Disabled bool   `json:"disabled,omitempty"`
}

func runTree(w io.Writer, path, query string, fuzzy bool) error {
	doc, err := source.Load(path)
	if err != nil {
		return err
	}
	printVerbose(w, "Loaded %s: %d top-level entries\n", path, len(doc.Items))

	c, err := collection.Build(doc.Elements(), source.MapItem, source.MapSection, filterFor(query, fuzzy))
	if err != nil {
		return fmt.Errorf("build collection: %w", err)
	}

	if jsonOut {
		out := make([]nodeJSON, 0, c.Size())
		for pos := 0; pos < c.Size(); pos++ {
			n, _ := c.At(pos)
			out = append(out, toNodeJSON(n))
		}
		return printJSON(w, out)
	}

	for pos := 0; pos < c.Size(); pos++ {
		n, _ := c.At(pos)
		fmt.Fprintln(w, formatNode(n))
	}
	return nil
}

func toNodeJSON(n types.Node[source.Entry]) nodeJSON {
	j := nodeJSON{
		Key:      n.Key,
		Type:     n.Type.String(),
		Level:    n.Level,
		Parent:   n.ParentKey,
		Text:     n.TextValue,
		Disabled: n.Disabled,
	}
	if n.Index != types.NoIndex {
		idx := n.Index
		j.Index = &idx
	}
	return j
}

// formatNode renders one line of tree output: sections end in "/", items
// carry their index.
func formatNode(n types.Node[source.Entry]) string {
	var b strings.Builder
	b.WriteString(strings.Repeat("  ", n.Level))
	if n.IsSection() {
		b.WriteString(n.Key + "/")
	} else {
		fmt.Fprintf(&b, "%s [%d]", n.Key, n.Index)
	}
	if n.TextValue != "" {
		fmt.Fprintf(&b, " %q", n.TextValue)
	}
	if n.Disabled {
		b.WriteString(" (disabled)")
	}
	return b.String()
}

// filterFor returns the configured filter for query, or nil for no query.
func filterFor(query string, fuzzy bool) collection.Filter[source.Entry] {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	if fuzzy {
		return collection.FuzzyFilter[source.Entry](query)
	}
	return collection.TextFilter[source.Entry](query)
}
