package selection

// Controllable is a value that is either owned by the engine or delegated to
// the consumer. It is the explicit form of the controlled/uncontrolled
// pattern: callers pick the variant when building state instead of the
// engine guessing from which options happen to be set.
type Controllable[V any] interface {
	Get() V
	Set(V)
}

// Owned holds its own value. Set stores the value and then notifies
// onChange.
type Owned[V any] struct {
	value    V
	onChange func(V)
}

// Uncontrolled returns an Owned value seeded from initial. onChange may be nil.
func Uncontrolled[V any](initial V, onChange func(V)) *Owned[V] {
	return &Owned[V]{value: initial, onChange: onChange}
}

func (o *Owned[V]) Get() V { return o.value }

func (o *Owned[V]) Set(v V) {
	o.value = v
	if o.onChange != nil {
		o.onChange(v)
	}
}

// Delegated reads from and writes to the consumer. The engine keeps no copy:
// Get always calls get, and Set only calls set. Until the consumer feeds the
// new value back through get, reads observe the old value.
type Delegated[V any] struct {
	get func() V
	set func(V)
}

// Controlled returns a Delegated value. A nil set makes the value read-only:
// writes are dropped.
func Controlled[V any](get func() V, set func(V)) *Delegated[V] {
	return &Delegated[V]{get: get, set: set}
}

func (d *Delegated[V]) Get() V { return d.get() }

func (d *Delegated[V]) Set(v V) {
	if d.set != nil {
		d.set(v)
	}
}
