// Package virtuallist renders the visible window of a position-addressable
// list into a bubbles viewport. Only rows inside the window are rendered, so
// the cost of a frame depends on the terminal height, not the list length.
package virtuallist

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Rows is a list the renderer can window over.
type Rows interface {
	// Len returns the number of rows.
	Len() int

	// Row renders the row at pos. cursor is true for the row under the
	// cursor.
	Row(pos int, cursor bool, width int) string
}

// EmptyText is shown when the list has no rows.
const EmptyText = "(empty)"

// fallbackHeight is used before the first size message arrives.
const fallbackHeight = 20

// Renderer keeps a cursor and a scroll offset over Rows.
type Renderer struct {
	rows     Rows
	viewport viewport.Model
	cursor   int
	width    int
	height   int
	offset   int // first visible row
}

// New creates a renderer over rows.
func New(rows Rows) *Renderer {
	return &Renderer{
		rows:     rows,
		viewport: viewport.New(0, 0),
	}
}

// SetRows swaps the underlying rows, e.g. after a rebuild, and clamps the
// cursor into the new range.
func (r *Renderer) SetRows(rows Rows) {
	r.rows = rows
	r.SetCursor(r.cursor)
}

// SetSize updates the window size.
func (r *Renderer) SetSize(width, height int) {
	r.width = width
	r.height = height
	r.viewport.Width = width
	r.viewport.Height = height
	r.scrollToCursor()
}

// SetCursor moves the cursor to pos, clamped to the rows, and scrolls so it
// stays visible.
func (r *Renderer) SetCursor(pos int) {
	n := r.rows.Len()
	switch {
	case n == 0:
		pos = 0
	case pos >= n:
		pos = n - 1
	case pos < 0:
		pos = 0
	}
	r.cursor = pos
	r.scrollToCursor()
}

// Cursor returns the cursor position.
func (r *Renderer) Cursor() int { return r.cursor }

// Offset returns the first visible position.
func (r *Renderer) Offset() int { return r.offset }

// Update forwards window size changes to the viewport. Key handling stays
// with the caller, which moves the cursor through SetCursor; forwarding keys
// here would scroll the viewport a second time.
func (r *Renderer) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.WindowSizeMsg); !ok {
		return nil
	}
	var cmd tea.Cmd
	r.viewport, cmd = r.viewport.Update(msg)
	return cmd
}

// Window returns the half-open range of visible positions.
func (r *Renderer) Window() (start, end int) {
	n := r.rows.Len()
	h := r.visibleHeight()

	start = r.offset
	end = min(start+h, n)
	// Keep the window full at the bottom of the list.
	if end == n && end-start < h {
		start = max(end-h, 0)
	}
	return start, end
}

// View renders the visible rows.
func (r *Renderer) View() string {
	if r.rows.Len() == 0 {
		return EmptyText
	}

	start, end := r.Window()
	r.offset = start

	var b strings.Builder
	for pos := start; pos < end; pos++ {
		b.WriteString(r.rows.Row(pos, pos == r.cursor, r.width))
		if pos < end-1 {
			b.WriteByte('\n')
		}
	}

	// The content is already windowed, so the viewport never scrolls.
	r.viewport.SetContent(b.String())
	r.viewport.YOffset = 0
	return r.viewport.View()
}

func (r *Renderer) visibleHeight() int {
	if r.height <= 0 {
		return fallbackHeight
	}
	return r.height
}

func (r *Renderer) scrollToCursor() {
	if r.height <= 0 {
		return
	}
	if r.cursor < r.offset {
		r.offset = r.cursor
	}
	if r.cursor >= r.offset+r.height {
		r.offset = r.cursor - r.height + 1
	}
	maxOffset := max(r.rows.Len()-r.height, 0)
	r.offset = min(max(r.offset, 0), maxOffset)
}
