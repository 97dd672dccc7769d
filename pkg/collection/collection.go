package collection

import (
	"fmt"
	"time"

	"github.com/joshuapare/listkit/internal/logger"
	"github.com/joshuapare/listkit/pkg/types"
)

// Collection is an immutable, queryable snapshot of one build.
//
// Nodes are stored in traversal order. byKey and items are parallel indexes
// built once in New, so lookups by key, position and item index are O(1).
type Collection[T any] struct {
	nodes    []types.Node[T]  // traversal order
	byKey    map[string]int   // key -> position in nodes
	items    []int            // item index -> position in nodes
	children map[string][]int // parent key ("" for top level) -> positions
}

// New links nodes into a Collection in a single pass: every node is keyed,
// linked to its neighbours, and items are numbered in order. The input slice
// is copied and not modified.
//
// Empty keys and duplicate keys are rejected.
func New[T any](nodes []types.Node[T]) (*Collection[T], error) {
	c := &Collection[T]{
		nodes:    make([]types.Node[T], len(nodes)),
		byKey:    make(map[string]int, len(nodes)),
		children: make(map[string][]int),
	}

	itemIndex := 0
	for pos, n := range nodes {
		if n.Key == "" {
			return nil, fmt.Errorf("%w: node at position %d", types.ErrEmptyKey, pos)
		}
		if prev, dup := c.byKey[n.Key]; dup {
			return nil, fmt.Errorf("%w: %q at positions %d and %d", types.ErrDuplicateKey, n.Key, prev, pos)
		}

		n.PrevKey = ""
		n.NextKey = ""
		if pos > 0 {
			n.PrevKey = nodes[pos-1].Key
			c.nodes[pos-1].NextKey = n.Key
		}

		if n.Type == types.NodeItem {
			n.Index = itemIndex
			itemIndex++
			c.items = append(c.items, pos)
		} else {
			n.Index = types.NoIndex
		}

		c.nodes[pos] = n
		c.byKey[n.Key] = pos
		c.children[n.ParentKey] = append(c.children[n.ParentKey], pos)
	}

	return c, nil
}

// Build flattens source, applies filter (if non-nil) and links the result.
// It is a pure function of its inputs: building the same source twice yields
// identical collections.
func Build[I, S, T any](
	source []types.Element[I, S],
	mapItem ItemMapper[I, T],
	mapSection SectionMapper[S, T],
	filter Filter[T],
	opts ...BuildOption,
) (*Collection[T], error) {
	start := time.Now()

	nodes, err := BuildNodes(source, mapItem, mapSection, opts...)
	if err != nil {
		return nil, err
	}
	built := len(nodes)

	if filter != nil {
		nodes = filter(nodes)
	}

	c, err := New(nodes)
	if err != nil {
		return nil, err
	}

	logger.Debug("collection built",
		"nodes", built,
		"kept", c.Size(),
		"items", c.ItemCount(),
		"filtered", filter != nil,
		"duration", time.Since(start),
	)
	return c, nil
}

// Size returns the number of nodes, items and sections alike.
func (c *Collection[T]) Size() int {
	if c == nil {
		return 0
	}
	return len(c.nodes)
}

// ItemCount returns the number of item nodes.
func (c *Collection[T]) ItemCount() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// Item returns the node with the given key.
func (c *Collection[T]) Item(key string) (types.Node[T], bool) {
	pos, ok := c.Position(key)
	if !ok {
		return types.Node[T]{}, false
	}
	return c.nodes[pos], true
}

// Contains reports whether key names a node in the collection.
func (c *Collection[T]) Contains(key string) bool {
	_, ok := c.Position(key)
	return ok
}

// Position returns the traversal position of key.
func (c *Collection[T]) Position(key string) (int, bool) {
	if c == nil {
		return 0, false
	}
	pos, ok := c.byKey[key]
	return pos, ok
}

// KeyBefore returns the key preceding key in traversal order, or "".
func (c *Collection[T]) KeyBefore(key string) string {
	n, _ := c.Item(key)
	return n.PrevKey
}

// KeyAfter returns the key following key in traversal order, or "".
func (c *Collection[T]) KeyAfter(key string) string {
	n, _ := c.Item(key)
	return n.NextKey
}

// FirstKey returns the key of the first node, or "" when empty.
func (c *Collection[T]) FirstKey() string {
	if c.Size() == 0 {
		return ""
	}
	return c.nodes[0].Key
}

// LastKey returns the key of the last node, or "" when empty.
func (c *Collection[T]) LastKey() string {
	if c.Size() == 0 {
		return ""
	}
	return c.nodes[len(c.nodes)-1].Key
}

// At returns the node at traversal position pos (sections included).
func (c *Collection[T]) At(pos int) (types.Node[T], bool) {
	if pos < 0 || pos >= c.Size() {
		return types.Node[T]{}, false
	}
	return c.nodes[pos], true
}

// ItemAt returns the item whose Index is index.
func (c *Collection[T]) ItemAt(index int) (types.Node[T], bool) {
	if index < 0 || index >= c.ItemCount() {
		return types.Node[T]{}, false
	}
	return c.nodes[c.items[index]], true
}

// Keys returns every key in traversal order.
func (c *Collection[T]) Keys() []string {
	keys := make([]string, 0, c.Size())
	if c == nil {
		return keys
	}
	for i := range c.nodes {
		keys = append(keys, c.nodes[i].Key)
	}
	return keys
}

// Children returns the direct children of the section with the given key, in
// order. Children("") returns the top-level nodes.
func (c *Collection[T]) Children(key string) []types.Node[T] {
	if c == nil {
		return nil
	}
	positions := c.children[key]
	out := make([]types.Node[T], 0, len(positions))
	for _, pos := range positions {
		out = append(out, c.nodes[pos])
	}
	return out
}
