package selection

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		raw     string
		want    Mode
		wantErr bool
	}{
		{raw: "", want: ModeNone},
		{raw: "none", want: ModeNone},
		{raw: "Single", want: ModeSingle},
		{raw: " MULTIPLE ", want: ModeMultiple},
		{raw: "multi", want: ModeMultiple},
		{raw: "many", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseMode(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	require.Equal(t, "multiple", ModeMultiple.String())
	require.Equal(t, "Mode(9)", Mode(9).String())
}

func TestNewState_Defaults(t *testing.T) {
	s := NewState(StateOptions{Mode: ModeSingle})
	require.Equal(t, ModeSingle, s.Mode())
	require.True(t, s.SelectedKeys().IsEmpty())
	require.Empty(t, s.FocusedKey())
	require.False(t, s.IsFocused())
	require.False(t, s.DisallowEmpty())
	require.False(t, s.KeepAll())
}

func TestNewState_SeededFocus(t *testing.T) {
	s := NewState(StateOptions{FocusedKey: Uncontrolled("x", nil)})
	require.Equal(t, "x", s.FocusedKey())
	require.True(t, s.IsFocused())
}

func TestUncontrolled_WritesAndNotifies(t *testing.T) {
	var got []Set
	v := Uncontrolled(NewSet("1"), func(s Set) { got = append(got, s) })

	v.Set(NewSet("2"))
	require.True(t, v.Get().Equal(NewSet("2")))
	require.Len(t, got, 1)
	require.True(t, got[0].Equal(NewSet("2")))
}

func TestControlled_DelegatesBothWays(t *testing.T) {
	external := NewSet("1")
	var writes []Set
	v := Controlled(func() Set { return external }, func(s Set) { writes = append(writes, s) })

	v.Set(NewSet("2"))
	require.Len(t, writes, 1)
	// The consumer has not fed the value back yet.
	require.True(t, v.Get().Equal(NewSet("1")))

	external = writes[0]
	require.True(t, v.Get().Equal(NewSet("2")))
}

func TestControlled_ReadOnly(t *testing.T) {
	v := Controlled(func() string { return "fixed" }, nil)
	v.Set("other")
	require.Equal(t, "fixed", v.Get())
}

func TestReconcileFocus(t *testing.T) {
	var changes []string
	s := NewState(StateOptions{FocusedKey: Uncontrolled("x", func(k string) { changes = append(changes, k) })})

	present := map[string]bool{"x": true}
	require.False(t, s.ReconcileFocus(func(k string) bool { return present[k] }))
	require.Equal(t, "x", s.FocusedKey())
	require.Empty(t, changes)

	delete(present, "x")
	require.True(t, s.ReconcileFocus(func(k string) bool { return present[k] }))
	require.Empty(t, s.FocusedKey())
	require.False(t, s.IsFocused())
	require.Equal(t, []string{""}, changes)

	// Nothing focused: nothing to reconcile.
	require.False(t, s.ReconcileFocus(func(string) bool { return false }))
	require.Len(t, changes, 1)
}
