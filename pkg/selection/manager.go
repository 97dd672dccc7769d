package selection

import (
	"github.com/joshuapare/listkit/internal/logger"
	"github.com/joshuapare/listkit/pkg/collection"
)

// SelectOption customises Select behaviour.
type SelectOption func(*selectOptions)

type selectOptions struct {
	replace bool
}

// WithReplace makes Select in multiple mode clear the selection and select
// only the given key, instead of toggling it.
func WithReplace() SelectOption {
	return func(opts *selectOptions) {
		opts.replace = true
	}
}

// Manager is the operation surface over a Collection and a State. It is the
// only writer of the selected keys and enforces the selection mode, disabled
// keys and the non-empty rule, so UI code never edits a key set directly.
//
// Operations that cannot apply (unknown key, section key, disabled key, wrong
// mode, would empty a non-empty-only selection) are no-ops. Every call that
// changes the selected keys writes the state exactly once, which notifies the
// consumer synchronously with the new value.
type Manager[T any] struct {
	coll     *collection.Collection[T]
	state    *State
	disabled map[string]struct{}
}

// NewManager returns a Manager over c and s. disabledKeys may be nil.
func NewManager[T any](c *collection.Collection[T], s *State, disabledKeys map[string]struct{}) *Manager[T] {
	return &Manager[T]{coll: c, state: s, disabled: disabledKeys}
}

// Collection returns the collection the manager operates on.
func (m *Manager[T]) Collection() *collection.Collection[T] { return m.coll }

// SelectionMode returns the current selection mode.
func (m *Manager[T]) SelectionMode() Mode { return m.state.Mode() }

// DisallowEmptySelection reports whether an empty selection is forbidden.
func (m *Manager[T]) DisallowEmptySelection() bool { return m.state.DisallowEmpty() }

// IsFocused reports whether the list has focus.
func (m *Manager[T]) IsFocused() bool { return m.state.IsFocused() }

// FocusedKey returns the focused key, or "".
func (m *Manager[T]) FocusedKey() string { return m.state.FocusedKey() }

// SetFocused sets the focus flag without changing the focused key.
func (m *Manager[T]) SetFocused(focused bool) { m.state.setFocused(focused) }

// SetFocusedKey focuses key. "" clears focus and marks the list not focused.
// Unknown keys are ignored.
func (m *Manager[T]) SetFocusedKey(key string) {
	if key != "" && !m.coll.Contains(key) {
		return
	}
	m.state.setFocusedKey(key)
}

// IsDisabled reports whether key is in the disabled keys or its node is
// marked disabled.
func (m *Manager[T]) IsDisabled(key string) bool {
	if _, ok := m.disabled[key]; ok {
		return true
	}
	n, ok := m.coll.Item(key)
	return ok && n.Disabled
}

// CanSelect reports whether key names an enabled item and the mode allows
// selection at all.
func (m *Manager[T]) CanSelect(key string) bool {
	if m.state.Mode() == ModeNone {
		return false
	}
	n, ok := m.coll.Item(key)
	return ok && n.IsItem() && !m.IsDisabled(key)
}

// IsSelected reports whether key is selected. Disabled keys are never
// selected, and All covers exactly the selectable keys.
func (m *Manager[T]) IsSelected(key string) bool {
	if m.state.Mode() == ModeNone {
		return false
	}
	sel := m.state.SelectedKeys()
	if sel.IsAll() {
		return m.CanSelect(key)
	}
	return sel.Has(key) && !m.IsDisabled(key)
}

// RawSelection returns the selected-keys value as stored, which may be All.
func (m *Manager[T]) RawSelection() Set { return m.state.SelectedKeys() }

// SelectedKeys returns the selected keys present in the collection, in
// collection order. All is resolved against the collection.
func (m *Manager[T]) SelectedKeys() []string {
	var out []string
	for i := 0; i < m.coll.ItemCount(); i++ {
		n, _ := m.coll.ItemAt(i)
		if m.IsSelected(n.Key) {
			out = append(out, n.Key)
		}
	}
	return out
}

// FirstSelectedKey returns the first selected key in collection order, or "".
func (m *Manager[T]) FirstSelectedKey() string {
	for i := 0; i < m.coll.ItemCount(); i++ {
		n, _ := m.coll.ItemAt(i)
		if m.IsSelected(n.Key) {
			return n.Key
		}
	}
	return ""
}

// LastSelectedKey returns the last selected key in collection order, or "".
func (m *Manager[T]) LastSelectedKey() string {
	for i := m.coll.ItemCount() - 1; i >= 0; i-- {
		n, _ := m.coll.ItemAt(i)
		if m.IsSelected(n.Key) {
			return n.Key
		}
	}
	return ""
}

// IsEmpty reports whether no key is selected.
func (m *Manager[T]) IsEmpty() bool {
	return m.FirstSelectedKey() == ""
}

// IsSelectAll reports whether every selectable key is selected. It is false
// when nothing is selectable.
func (m *Manager[T]) IsSelectAll() bool {
	if m.state.Mode() != ModeMultiple {
		return false
	}
	selectable := m.selectableKeys()
	if len(selectable) == 0 {
		return false
	}
	if m.state.SelectedKeys().IsAll() {
		return true
	}
	for _, key := range selectable {
		if !m.IsSelected(key) {
			return false
		}
	}
	return true
}

// Select applies the mode's select gesture to key.
//
// Single mode replaces the selection with key, or deselects key if it is
// already the sole selection. Multiple mode toggles key, or with WithReplace
// selects only key.
func (m *Manager[T]) Select(key string, opts ...SelectOption) {
	var o selectOptions
	for _, opt := range opts {
		opt(&o)
	}

	if !m.CanSelect(key) {
		logger.Debug("select ignored", "key", key, "mode", m.state.Mode())
		return
	}

	switch m.state.Mode() {
	case ModeSingle:
		if m.isSoleSelection(key) {
			m.write(Empty())
			return
		}
		m.write(NewSet(key))
	case ModeMultiple:
		if o.replace {
			m.write(NewSet(key))
			return
		}
		m.toggle(key)
	}
}

// ExtendSelection selects the contiguous run of selectable keys between the
// focused key (the anchor) and key, replacing the current selection. Without
// a usable anchor it falls back to Select(key). Multiple mode only.
func (m *Manager[T]) ExtendSelection(key string) {
	if m.state.Mode() != ModeMultiple || !m.CanSelect(key) {
		return
	}

	anchor := m.state.FocusedKey()
	if anchor == "" || !m.coll.Contains(anchor) {
		m.Select(key)
		return
	}

	from, to := anchor, key
	fromPos, _ := m.coll.Position(from)
	toPos, _ := m.coll.Position(to)
	if toPos < fromPos {
		from, to = to, from
	}

	var run []string
	for k := from; k != ""; k = m.coll.KeyAfter(k) {
		if m.CanSelect(k) {
			run = append(run, k)
		}
		if k == to {
			break
		}
	}
	m.write(NewSet(run...))
}

// SelectAll selects every selectable key. Multiple mode only.
func (m *Manager[T]) SelectAll() {
	if m.state.Mode() != ModeMultiple {
		return
	}
	if m.state.KeepAll() {
		m.write(All())
		return
	}
	m.write(NewSet(m.selectableKeys()...))
}

// ClearSelection deselects everything unless an empty selection is
// forbidden.
func (m *Manager[T]) ClearSelection() {
	m.write(Empty())
}

// ToggleSelectAll clears a complete selection, otherwise selects all.
func (m *Manager[T]) ToggleSelectAll() {
	if m.IsSelectAll() {
		m.ClearSelection()
		return
	}
	m.SelectAll()
}

// SetSelectedKeys replaces the selection with keys, dropping unknown and
// disabled keys. Single mode keeps the first remaining key.
func (m *Manager[T]) SetSelectedKeys(keys []string) {
	mode := m.state.Mode()
	if mode == ModeNone {
		return
	}

	var next []string
	for _, k := range keys {
		if m.CanSelect(k) {
			next = append(next, k)
		}
	}
	if mode == ModeSingle && len(next) > 1 {
		next = next[:1]
	}
	m.write(NewSet(next...))
}

func (m *Manager[T]) toggle(key string) {
	current := m.explicitSelection()
	if m.IsSelected(key) {
		m.write(current.Without(key))
		return
	}
	m.write(current.With(key))
}

// isSoleSelection reports whether key is the only selected key.
func (m *Manager[T]) isSoleSelection(key string) bool {
	keys := m.SelectedKeys()
	return len(keys) == 1 && keys[0] == key
}

// explicitSelection returns the selection with All expanded to the current
// selectable keys.
func (m *Manager[T]) explicitSelection() Set {
	sel := m.state.SelectedKeys()
	if sel.IsAll() {
		return NewSet(m.selectableKeys()...)
	}
	return sel
}

// selectableKeys returns every selectable item key in collection order.
func (m *Manager[T]) selectableKeys() []string {
	var keys []string
	for i := 0; i < m.coll.ItemCount(); i++ {
		n, _ := m.coll.ItemAt(i)
		if m.CanSelect(n.Key) {
			keys = append(keys, n.Key)
		}
	}
	return keys
}

// write stores next if it differs from the current value and does not break
// the non-empty rule. It is the single point where selection changes.
func (m *Manager[T]) write(next Set) {
	current := m.state.SelectedKeys()
	if next.Equal(current) {
		return
	}
	if m.state.DisallowEmpty() && m.emptyIn(next) {
		logger.Debug("selection change rejected: would be empty", "current", current.String())
		return
	}
	m.state.setSelectedKeys(next)
}

// emptyIn reports whether s selects nothing in the current collection.
func (m *Manager[T]) emptyIn(s Set) bool {
	if s.IsAll() {
		return len(m.selectableKeys()) == 0
	}
	for _, k := range s.Keys() {
		if m.CanSelect(k) {
			return false
		}
	}
	return true
}
