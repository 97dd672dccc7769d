// Package selection manages selection mode, selected keys, disabled keys and
// focus over a collection.Collection.
//
// # Values
//
// Set is the selected-keys value, a tagged union of an explicit key set and
// the All sentinel. Controllable holds a value that is either Owned by the
// engine (Uncontrolled) or Delegated to the consumer (Controlled):
//
//	// engine-owned, seeded from defaults, consumer notified on change
//	sel := selection.Uncontrolled(selection.NewSet("1", "2"), func(s selection.Set) {
//		fmt.Println("selected:", s)
//	})
//
//	// consumer-owned: reads go to the consumer, writes go to its callback
//	sel := selection.Controlled(func() selection.Set { return app.sel }, app.onSelect)
//
// # Operations
//
// A Manager pairs one Collection snapshot with a State and is the only
// writer of the selected keys. It enforces:
//
//   - ModeNone ignores every select gesture.
//   - ModeSingle replaces the selection; selecting the sole selected key again
//     deselects it.
//   - ModeMultiple toggles by default; WithReplace selects only the key;
//     ExtendSelection selects the run between the focused key and the target.
//   - Disabled keys, sections and unknown keys are never selected.
//   - With DisallowEmpty, an operation that would select nothing is dropped.
//
// Each operation that changes the selection writes the State once; the write
// notifies the consumer synchronously before the call returns.
//
// # Focus
//
// The focused key doubles as the anchor for range selection. After a rebuild,
// State.ReconcileFocus clears a focused key the new collection no longer
// contains.
package selection
