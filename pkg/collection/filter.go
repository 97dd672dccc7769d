package collection

import (
	"strings"
	"unicode"

	"github.com/sahilm/fuzzy"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/joshuapare/listkit/pkg/types"
)

// Filter narrows a flattened node sequence before it is linked into a
// Collection. Filters must preserve source order and must not invent keys.
type Filter[T any] func([]types.Node[T]) []types.Node[T]

// Compose applies filters left to right. Nil filters are skipped.
func Compose[T any](filters ...Filter[T]) Filter[T] {
	return func(nodes []types.Node[T]) []types.Node[T] {
		for _, f := range filters {
			if f != nil {
				nodes = f(nodes)
			}
		}
		return nodes
	}
}

// TextFilter keeps items whose text contains query, ignoring case and
// diacritics, plus every ancestor section of a kept item. An empty query
// keeps everything.
func TextFilter[T any](query string) Filter[T] {
	return func(nodes []types.Node[T]) []types.Node[T] {
		if strings.TrimSpace(query) == "" {
			return nodes
		}
		needle := foldText(query)
		return keepWithAncestors(nodes, func(n types.Node[T]) bool {
			return strings.Contains(foldText(n.Text()), needle)
		})
	}
}

// FuzzyFilter keeps items whose text fuzzily matches query, plus every
// ancestor section of a kept item. Matches stay in source order, not score
// order. An empty query keeps everything.
func FuzzyFilter[T any](query string) Filter[T] {
	return func(nodes []types.Node[T]) []types.Node[T] {
		if strings.TrimSpace(query) == "" {
			return nodes
		}

		src := make(itemTexts, 0, len(nodes))
		for i := range nodes {
			if nodes[i].IsItem() {
				src = append(src, itemText{key: nodes[i].Key, text: nodes[i].Text()})
			}
		}

		matched := make(map[string]bool)
		for _, m := range fuzzy.FindFrom(query, src) {
			matched[src[m.Index].key] = true
		}

		return keepWithAncestors(nodes, func(n types.Node[T]) bool {
			return matched[n.Key]
		})
	}
}

// keepWithAncestors returns the items for which match is true together with
// all of their ancestor sections, in the original order.
func keepWithAncestors[T any](nodes []types.Node[T], match func(types.Node[T]) bool) []types.Node[T] {
	parentOf := make(map[string]string, len(nodes))
	for i := range nodes {
		parentOf[nodes[i].Key] = nodes[i].ParentKey
	}

	keep := make(map[string]bool)
	for i := range nodes {
		if !nodes[i].IsItem() || !match(nodes[i]) {
			continue
		}
		keep[nodes[i].Key] = true
		for parent := nodes[i].ParentKey; parent != "" && !keep[parent]; parent = parentOf[parent] {
			keep[parent] = true
		}
	}

	filtered := make([]types.Node[T], 0, len(keep))
	for i := range nodes {
		if keep[nodes[i].Key] {
			filtered = append(filtered, nodes[i])
		}
	}
	return filtered
}

// foldText normalizes s for matching: decomposes, strips combining marks and
// applies Unicode case folding.
func foldText(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), cases.Fold(), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

type itemText struct {
	key  string
	text string
}

// itemTexts adapts item texts to fuzzy.Source.
type itemTexts []itemText

func (s itemTexts) String(i int) string { return s[i].text }
func (s itemTexts) Len() int            { return len(s) }
