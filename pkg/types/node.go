package types

import "fmt"

// NoIndex is the Index of nodes that do not take an item slot (sections).
const NoIndex = -1

// NodeType distinguishes leaf items from section groupings.
type NodeType uint8

const (
	NodeUnknown NodeType = iota
	NodeItem
	NodeSection
)

func (t NodeType) String() string {
	switch t {
	case NodeItem:
		return "item"
	case NodeSection:
		return "section"
	case NodeUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("NodeType(%d)", uint8(t))
	}
}

// Item is one selectable leaf as produced by an item mapper.
type Item[T any] struct {
	Key       string
	Value     T
	TextValue string // "" when the item has no text representation
	Disabled  bool
}

// Section is a named grouping as produced by a section mapper. Its children
// come from the source Element that carried it.
type Section[T any] struct {
	Key       string
	Value     T
	TextValue string
}

// Node is the flattened representation of an item or a section.
//
// Empty key strings (ParentKey, PrevKey, NextKey) mean "none". Index is
// NoIndex for sections; items are numbered 0..n-1 in traversal order.
type Node[T any] struct {
	Type      NodeType
	Key       string
	Value     T
	Level     int
	TextValue string
	Index     int
	ParentKey string
	PrevKey   string
	NextKey   string
	Disabled  bool
}

// IsItem reports whether n is a selectable leaf.
func (n Node[T]) IsItem() bool { return n.Type == NodeItem }

// IsSection reports whether n is a section.
func (n Node[T]) IsSection() bool { return n.Type == NodeSection }

// Text returns the node's text value, falling back to its key.
func (n Node[T]) Text() string {
	if n.TextValue != "" {
		return n.TextValue
	}
	return n.Key
}

// Element is one entry of a data source. Kind is an explicit tag; Children
// is only read for sections.
type Element[I, S any] struct {
	Kind     NodeType
	Item     I
	Section  S
	Children []Element[I, S]
}

// ItemElement tags v as a leaf item source.
func ItemElement[I, S any](v I) Element[I, S] {
	return Element[I, S]{Kind: NodeItem, Item: v}
}

// SectionElement tags v as a section source with the given children.
func SectionElement[I, S any](v S, children ...Element[I, S]) Element[I, S] {
	return Element[I, S]{Kind: NodeSection, Section: v, Children: children}
}
