// Package collection turns an application data source into a flat,
// key-addressable, immutable snapshot.
//
// A source is a slice of types.Element values, each explicitly tagged as an
// item or a section. Sections carry nested elements, to any depth.
//
// # Building
//
// BuildNodes walks the source depth-first in source order and maps every
// element through the caller's ItemMapper or SectionMapper. A section emits
// one node followed immediately by its descendants, one level deeper. The
// result is the flat node sequence; no sorting takes place.
//
// New links a node sequence into a Collection in one linear pass: it records
// the previous and next key of every node, numbers items 0..n-1 (sections do
// not take an index), and remembers the first and last key.
//
// Build is the usual entry point and chains the two with an optional Filter
// between them:
//
//	c, err := collection.Build(source, mapItem, mapSection, collection.TextFilter[Fruit]("app"))
//	if err != nil {
//		return err
//	}
//	for key := c.FirstKey(); key != ""; key = c.KeyAfter(key) {
//		node, _ := c.Item(key)
//		fmt.Println(strings.Repeat("  ", node.Level), node.Text())
//	}
//
// # Immutability
//
// A Collection is never mutated after New returns. When the source changes,
// build a new one and replace the old value wholesale. Queries copy nodes out,
// so callers cannot corrupt the snapshot.
//
// # Errors
//
// Query methods never fail: unknown keys and out-of-range positions yield
// zero values and false. Build errors are typed (see package types); errors
// returned by the caller's mappers are passed through unchanged.
package collection
