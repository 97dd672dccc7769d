package collection

import (
	"fmt"

	"github.com/joshuapare/listkit/pkg/types"
)

// ItemMapper converts an application item source into an Item record.
type ItemMapper[I, T any] func(I) (types.Item[T], error)

// SectionMapper converts an application section source into a Section record.
type SectionMapper[S, T any] func(S) (types.Section[T], error)

// BuildOption customises BuildNodes behaviour.
type BuildOption func(*buildOptions)

type buildOptions struct {
	startLevel int
	parentKey  string
	limits     types.Limits
}

// WithStartLevel sets the level assigned to top-level source elements.
func WithStartLevel(level int) BuildOption {
	return func(opts *buildOptions) {
		if level >= 0 {
			opts.startLevel = level
		}
	}
}

// WithParentKey sets the ParentKey assigned to top-level source elements,
// for building a subtree that hangs off an existing section.
func WithParentKey(key string) BuildOption {
	return func(opts *buildOptions) {
		opts.parentKey = key
	}
}

// WithLimits overrides types.DefaultLimits for this build.
func WithLimits(l types.Limits) BuildOption {
	return func(opts *buildOptions) {
		opts.limits = l
	}
}

func newBuildOptions(opts []BuildOption) buildOptions {
	config := buildOptions{limits: types.DefaultLimits()}
	for _, opt := range opts {
		opt(&config)
	}
	return config
}

// builder accumulates nodes during one depth-first walk.
type builder[I, S, T any] struct {
	mapItem    ItemMapper[I, T]
	mapSection SectionMapper[S, T]
	limits     types.Limits
	nodes      []types.Node[T]
}

// BuildNodes flattens source into nodes in depth-first pre-order.
//
// Each section element emits one Section node at the current level, then its
// children at level+1 with ParentKey set to the section's key. Each item
// element emits one Item node. Index, PrevKey and NextKey are left for New to
// assign.
//
// Errors from mapItem or mapSection are returned as-is. A nil mapper is only
// an error if an element of that kind is encountered.
func BuildNodes[I, S, T any](
	source []types.Element[I, S],
	mapItem ItemMapper[I, T],
	mapSection SectionMapper[S, T],
	opts ...BuildOption,
) ([]types.Node[T], error) {
	config := newBuildOptions(opts)
	b := &builder[I, S, T]{
		mapItem:    mapItem,
		mapSection: mapSection,
		limits:     config.limits,
		nodes:      make([]types.Node[T], 0, len(source)),
	}
	if err := b.walk(source, config.startLevel, config.parentKey); err != nil {
		return nil, err
	}
	return b.nodes, nil
}

func (b *builder[I, S, T]) walk(source []types.Element[I, S], level int, parentKey string) error {
	if len(source) > 0 && !b.limits.DepthOK(level) {
		return fmt.Errorf("%w: level %d exceeds max depth %d", types.ErrLimit, level, b.limits.MaxDepth)
	}

	for i := range source {
		elem := &source[i]
		switch elem.Kind {
		case types.NodeSection:
			if b.mapSection == nil {
				return fmt.Errorf("%w: section at level %d", types.ErrMissingMapper, level)
			}
			sec, err := b.mapSection(elem.Section)
			if err != nil {
				return err
			}
			if err := b.emit(types.Node[T]{
				Type:      types.NodeSection,
				Key:       sec.Key,
				Value:     sec.Value,
				TextValue: sec.TextValue,
				Level:     level,
				Index:     types.NoIndex,
				ParentKey: parentKey,
			}); err != nil {
				return err
			}
			if err := b.walk(elem.Children, level+1, sec.Key); err != nil {
				return err
			}

		case types.NodeItem:
			if b.mapItem == nil {
				return fmt.Errorf("%w: item at level %d", types.ErrMissingMapper, level)
			}
			item, err := b.mapItem(elem.Item)
			if err != nil {
				return err
			}
			if err := b.emit(types.Node[T]{
				Type:      types.NodeItem,
				Key:       item.Key,
				Value:     item.Value,
				TextValue: item.TextValue,
				Level:     level,
				Index:     types.NoIndex,
				ParentKey: parentKey,
				Disabled:  item.Disabled,
			}); err != nil {
				return err
			}

		default:
			return fmt.Errorf("%w: kind %s at level %d position %d", types.ErrUnknownElement, elem.Kind, level, i)
		}
	}
	return nil
}

func (b *builder[I, S, T]) emit(n types.Node[T]) error {
	if n.Key == "" {
		return fmt.Errorf("%w: %s at level %d", types.ErrEmptyKey, n.Type, n.Level)
	}
	if !b.limits.CountOK(len(b.nodes) + 1) {
		return fmt.Errorf("%w: more than %d nodes", types.ErrLimit, b.limits.MaxNodes)
	}
	b.nodes = append(b.nodes, n)
	return nil
}
