package selection

import (
	"fmt"
	"strings"

	"github.com/joshuapare/listkit/internal/logger"
)

// Mode governs which selection operations are legal.
type Mode uint8

const (
	ModeNone Mode = iota
	ModeSingle
	ModeMultiple
)

func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeSingle:
		return "single"
	case ModeMultiple:
		return "multiple"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// ParseMode converts "none", "single" or "multiple" (any case) to a Mode.
// An empty string is ModeNone.
func ParseMode(raw string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "none":
		return ModeNone, nil
	case "single":
		return ModeSingle, nil
	case "multiple", "multi":
		return ModeMultiple, nil
	default:
		return ModeNone, fmt.Errorf("selection: unknown mode %q", raw)
	}
}

// StateOptions configures a State.
type StateOptions struct {
	Mode Mode

	// DisallowEmpty forbids any operation that would leave nothing selected.
	DisallowEmpty bool

	// KeepAll lets the All sentinel reach the selected-keys value. When false,
	// SelectAll writes the explicit set of selectable keys instead.
	KeepAll bool

	// Selected holds the selected keys. Nil means Uncontrolled(Empty(), nil).
	Selected Controllable[Set]

	// FocusedKey holds the focused key ("" for none). Nil means
	// Uncontrolled("", nil).
	FocusedKey Controllable[string]
}

// State is the selection state of one list instance: mode, selected keys and
// focus. It is read by anyone but written only by a Manager and by focus
// reconciliation after a rebuild.
type State struct {
	mode          Mode
	disallowEmpty bool
	keepAll       bool

	selected   Controllable[Set]
	focusedKey Controllable[string]
	focused    bool
}

// NewState creates a State from opts.
func NewState(opts StateOptions) *State {
	s := &State{
		mode:          opts.Mode,
		disallowEmpty: opts.DisallowEmpty,
		keepAll:       opts.KeepAll,
		selected:      opts.Selected,
		focusedKey:    opts.FocusedKey,
	}
	if s.selected == nil {
		s.selected = Uncontrolled(Empty(), nil)
	}
	if s.focusedKey == nil {
		s.focusedKey = Uncontrolled("", nil)
	}
	s.focused = s.focusedKey.Get() != ""
	return s
}

// Mode returns the selection mode.
func (s *State) Mode() Mode { return s.mode }

// SetMode changes the selection mode. The selected keys are left untouched.
func (s *State) SetMode(m Mode) { s.mode = m }

// DisallowEmpty reports whether an empty selection is forbidden.
func (s *State) DisallowEmpty() bool { return s.disallowEmpty }

// KeepAll reports whether the All sentinel may be written.
func (s *State) KeepAll() bool { return s.keepAll }

// SelectedKeys returns the raw selected-keys value.
func (s *State) SelectedKeys() Set { return s.selected.Get() }

// FocusedKey returns the focused key, or "".
func (s *State) FocusedKey() string { return s.focusedKey.Get() }

// IsFocused reports whether the list has focus.
func (s *State) IsFocused() bool { return s.focused }

// ReconcileFocus clears the focused key when has reports it no longer exists.
// It returns true if the key was cleared. Call it after publishing a new
// collection, never while building one.
func (s *State) ReconcileFocus(has func(key string) bool) bool {
	key := s.FocusedKey()
	if key == "" || has(key) {
		return false
	}
	logger.Debug("focused key dropped by rebuild", "key", key)
	s.setFocusedKey("")
	return true
}

func (s *State) setSelectedKeys(next Set) {
	s.selected.Set(next)
}

// setFocusedKey writes key and updates the focus flag: "" means not focused.
func (s *State) setFocusedKey(key string) {
	s.focused = key != ""
	if s.focusedKey.Get() == key {
		return
	}
	s.focusedKey.Set(key)
}

func (s *State) setFocused(focused bool) {
	s.focused = focused
}
