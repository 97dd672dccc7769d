package types

// ============================================================================
// Build Limits Constants
// ============================================================================
// A data source is caller-supplied and may be generated; these bounds keep a
// runaway or self-referencing source from producing an unbounded build.

const (
	// MaxDepthDefault is the default maximum section nesting depth.
	// Real menus and listboxes rarely nest more than a few levels.
	MaxDepthDefault = 64

	// MaxDepthDeep allows very deep trees (outline views, file trees).
	MaxDepthDeep = 1024

	// MaxDepthShallow is a conservative depth for flat list components.
	MaxDepthShallow = 8

	// MaxNodesDefault is the default maximum number of nodes in one build.
	MaxNodesDefault = 1 << 20 // 1,048,576 nodes

	// MaxNodesLarge allows very large collections (virtualized lists).
	MaxNodesLarge = 1 << 24 // 16,777,216 nodes

	// MaxNodesSmall is a conservative bound for eagerly rendered lists.
	MaxNodesSmall = 1 << 14 // 16,384 nodes
)

// Limits bounds the size and shape of one collection build.
// A zero field means "no limit" for that dimension.
type Limits struct {
	// MaxDepth is the deepest Level a node may have. Top-level nodes are
	// level 0.
	MaxDepth int

	// MaxNodes is the maximum number of nodes (items and sections) produced.
	MaxNodes int
}

// DefaultLimits returns the limits used when the caller does not set any.
func DefaultLimits() Limits {
	return Limits{
		MaxDepth: MaxDepthDefault,
		MaxNodes: MaxNodesDefault,
	}
}

// RelaxedLimits returns permissive limits for large generated sources.
func RelaxedLimits() Limits {
	return Limits{
		MaxDepth: MaxDepthDeep,
		MaxNodes: MaxNodesLarge,
	}
}

// StrictLimits returns conservative limits for small, eagerly rendered lists.
func StrictLimits() Limits {
	return Limits{
		MaxDepth: MaxDepthShallow,
		MaxNodes: MaxNodesSmall,
	}
}

// Unlimited returns limits that never reject a build.
func Unlimited() Limits {
	return Limits{}
}

// DepthOK reports whether level is within l.
func (l Limits) DepthOK(level int) bool {
	return l.MaxDepth <= 0 || level <= l.MaxDepth
}

// CountOK reports whether n nodes is within l.
func (l Limits) CountOK(n int) bool {
	return l.MaxNodes <= 0 || n <= l.MaxNodes
}
