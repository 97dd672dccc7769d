// Package list binds a data source, its mappers and a filter to a collection
// and a selection manager, rebuilding the collection whenever an input
// changes.
//
// A rebuild runs in two sequenced steps. First the new collection is built
// and swapped in whole; a failed build leaves the previous snapshot in place.
// Then the focused key is reconciled against the new snapshot. Reading
// selection state never triggers a rebuild.
package list

import (
	"time"

	"github.com/joshuapare/listkit/internal/logger"
	"github.com/joshuapare/listkit/pkg/collection"
	"github.com/joshuapare/listkit/pkg/selection"
	"github.com/joshuapare/listkit/pkg/types"
)

// Options are the inputs of one list instance.
type Options[I, S, T any] struct {
	Source     []types.Element[I, S]
	MapItem    collection.ItemMapper[I, T]
	MapSection collection.SectionMapper[S, T]

	// Filter is applied to the flattened nodes before linking. Nil keeps all.
	Filter collection.Filter[T]

	DisabledKeys []string

	// Selection configures mode, the non-empty rule and how the selected and
	// focused keys are held (Controlled or Uncontrolled).
	Selection selection.StateOptions

	BuildOptions []collection.BuildOption
}

// List owns the inputs and outputs of one list. It is not safe for concurrent
// use; drive it from one goroutine the way a UI event loop would.
type List[I, S, T any] struct {
	source       []types.Element[I, S]
	mapItem      collection.ItemMapper[I, T]
	mapSection   collection.SectionMapper[S, T]
	filter       collection.Filter[T]
	disabledKeys []string
	buildOpts    []collection.BuildOption

	state    *selection.State
	coll     *collection.Collection[T]
	disabled map[string]struct{}
	manager  *selection.Manager[T]

	bus     *Bus[T]
	version uint64
}

// New builds the initial collection. Mapper and filter errors are returned
// unchanged.
func New[I, S, T any](opts Options[I, S, T]) (*List[I, S, T], error) {
	l := &List[I, S, T]{
		source:       opts.Source,
		mapItem:      opts.MapItem,
		mapSection:   opts.MapSection,
		filter:       opts.Filter,
		disabledKeys: opts.DisabledKeys,
		buildOpts:    opts.BuildOptions,
		state:        selection.NewState(opts.Selection),
		bus:          NewBus[T](),
	}
	if err := l.rebuild(); err != nil {
		return nil, err
	}
	return l, nil
}

// Collection returns the current snapshot.
func (l *List[I, S, T]) Collection() *collection.Collection[T] { return l.coll }

// DisabledKeys returns the disabled keys as a set. Nodes marked disabled by
// their mapper are not included; Manager().IsDisabled covers both.
func (l *List[I, S, T]) DisabledKeys() map[string]struct{} {
	out := make(map[string]struct{}, len(l.disabled))
	for k := range l.disabled {
		out[k] = struct{}{}
	}
	return out
}

// Manager returns the selection manager bound to the current snapshot. A
// manager obtained before a rebuild keeps operating on the old snapshot.
func (l *List[I, S, T]) Manager() *selection.Manager[T] { return l.manager }

// State returns the selection state shared by every manager of this list.
func (l *List[I, S, T]) State() *selection.State { return l.state }

// Version returns the version of the current snapshot.
func (l *List[I, S, T]) Version() uint64 { return l.version }

// Bus returns the bus on which every new snapshot is published.
func (l *List[I, S, T]) Bus() *Bus[T] { return l.bus }

// SetSource replaces the data source and rebuilds.
func (l *List[I, S, T]) SetSource(source []types.Element[I, S]) error {
	prev := l.source
	l.source = source
	if err := l.rebuild(); err != nil {
		l.source = prev
		return err
	}
	return nil
}

// SetFilter replaces the filter and rebuilds. Nil removes filtering.
func (l *List[I, S, T]) SetFilter(filter collection.Filter[T]) error {
	prev := l.filter
	l.filter = filter
	if err := l.rebuild(); err != nil {
		l.filter = prev
		return err
	}
	return nil
}

// SetDisabledKeys replaces the disabled keys and rebuilds.
func (l *List[I, S, T]) SetDisabledKeys(keys []string) error {
	prev := l.disabledKeys
	l.disabledKeys = keys
	if err := l.rebuild(); err != nil {
		l.disabledKeys = prev
		return err
	}
	return nil
}

// SetSelectionMode changes the selection mode. The collection is unchanged.
func (l *List[I, S, T]) SetSelectionMode(m selection.Mode) {
	l.state.SetMode(m)
}

// Close closes the bus.
func (l *List[I, S, T]) Close() {
	l.bus.Close()
}

func (l *List[I, S, T]) rebuild() error {
	start := time.Now()

	coll, err := collection.Build(l.source, l.mapItem, l.mapSection, l.filter, l.buildOpts...)
	if err != nil {
		logger.Debug("rebuild failed, keeping previous snapshot", "version", l.version, "error", err)
		return err
	}

	// Step 1: publish.
	l.coll = coll
	l.disabled = toSet(l.disabledKeys)
	l.manager = selection.NewManager(coll, l.state, l.disabled)
	l.version++
	l.bus.Publish(coll, l.version)

	// Step 2: reconcile focus against what was just published.
	l.state.ReconcileFocus(coll.Contains)

	logger.Debug("list rebuilt",
		"version", l.version,
		"nodes", coll.Size(),
		"disabled", len(l.disabled),
		"duration", time.Since(start),
	)
	return nil
}

func toSet(keys []string) map[string]struct{} {
	if len(keys) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}
