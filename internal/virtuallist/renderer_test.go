package virtuallist

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

type stringRows []string

func (s stringRows) Len() int { return len(s) }

func (s stringRows) Row(pos int, cursor bool, _ int) string {
	if cursor {
		return "> " + s[pos]
	}
	return "  " + s[pos]
}

func numbered(n int) stringRows {
	rows := make(stringRows, n)
	for i := 0; i < n; i++ {
		rows[i] = fmt.Sprintf("row%03d", i)
	}
	return rows
}

func TestRenderer_Empty(t *testing.T) {
	r := New(stringRows{})
	r.SetSize(40, 10)
	require.Equal(t, EmptyText, r.View())

	r.SetCursor(5)
	require.Equal(t, 0, r.Cursor())
}

func TestRenderer_ShortListShowsEverything(t *testing.T) {
	r := New(numbered(3))
	r.SetSize(40, 10)
	r.SetCursor(1)

	view := r.View()
	require.Contains(t, view, "  row000")
	require.Contains(t, view, "> row001")
	require.Contains(t, view, "  row002")
}

func TestRenderer_RendersOnlyWindow(t *testing.T) {
	r := New(numbered(100))
	r.SetSize(40, 10)

	view := r.View()
	require.Contains(t, view, "row000")
	require.Contains(t, view, "row009")
	require.NotContains(t, view, "row010")
	require.NotContains(t, view, "row099")
}

func TestRenderer_ScrollFollowsCursor(t *testing.T) {
	r := New(numbered(50))
	r.SetSize(40, 10)

	r.SetCursor(15)
	start, end := r.Window()
	require.Equal(t, 6, start)
	require.Equal(t, 16, end)
	require.Contains(t, r.View(), "> row015")

	r.SetCursor(2)
	start, _ = r.Window()
	require.Equal(t, 2, start)
}

func TestRenderer_ClampsAtBottom(t *testing.T) {
	r := New(numbered(25))
	r.SetSize(40, 10)

	r.SetCursor(100)
	require.Equal(t, 24, r.Cursor())
	require.Equal(t, 15, r.Offset())

	view := r.View()
	require.Equal(t, 10, strings.Count(view, "row"))
	require.Contains(t, view, "> row024")
}

func TestRenderer_SetRowsClampsCursor(t *testing.T) {
	r := New(numbered(30))
	r.SetSize(40, 10)
	r.SetCursor(29)

	r.SetRows(numbered(5))
	require.Equal(t, 4, r.Cursor())
	require.Equal(t, 0, r.Offset())
	require.Contains(t, r.View(), "> row004")
}

func TestRenderer_UpdateIgnoresKeys(t *testing.T) {
	r := New(numbered(30))
	r.SetSize(40, 10)

	r.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, 0, r.Cursor())
	require.Equal(t, 0, r.Offset())
}
