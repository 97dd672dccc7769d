package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/joshuapare/listkit/internal/logger"
	"github.com/joshuapare/listkit/internal/source"
	"github.com/joshuapare/listkit/internal/virtuallist"
	"github.com/joshuapare/listkit/pkg/collection"
	"github.com/joshuapare/listkit/pkg/list"
	"github.com/joshuapare/listkit/pkg/selection"
)

func init() {
	rootCmd.AddCommand(newBrowseCmd())
}

func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse <file>",
		Short: "Browse and select interactively",
		Long: `The browse command opens the data source as an interactive list.

Keys:
  ↑/↓ k/j         move focus
  shift+↑/↓ K/J   extend the selection from where it started
  space           select or toggle the focused item
  a               toggle select all
  esc             clear the selection (or the filter while typing one)
  /               filter
  y               copy the selected keys
  q               quit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(args[0])
		},
	}
}

func runBrowse(path string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("browse requires a terminal")
	}

	doc, err := source.Load(path)
	if err != nil {
		return err
	}

	m, err := newBrowseModel(doc, cfg.SelectionMode(), cfg.Selection.DisallowEmpty, cfg.Selection.KeepAll, cfg.Fuzzy())
	if err != nil {
		return err
	}
	defer m.list.Close()

	logger.Info("starting browse", "path", path, "nodes", m.list.Collection().Size())

	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run browse: %w", err)
	}

	if fm, ok := final.(*browseModel); ok {
		fmt.Println(strings.Join(fm.list.Manager().SelectedKeys(), "\n"))
	}
	return nil
}

// snapshotMsg carries a published collection into the update loop.
type snapshotMsg list.Snapshot[source.Entry]

type clearStatusMsg struct{}

// browseModel is the bubbletea model of the browse command.
type browseModel struct {
	list      *entryList
	snapshots <-chan list.Snapshot[source.Entry]
	renderer  *virtuallist.Renderer
	keys      KeyMap
	fuzzy     bool

	filtering bool
	query     string

	// anchor is where a shift-extended range started. It resets on any
	// plain move.
	anchor string

	status string
	width  int
	height int
}

func newBrowseModel(doc *source.Document, mode selection.Mode, disallowEmpty, keepAll, fuzzy bool) (*browseModel, error) {
	l, err := list.New(list.Options[source.Entry, source.Entry, source.Entry]{
		Source:       doc.Elements(),
		MapItem:      source.MapItem,
		MapSection:   source.MapSection,
		DisabledKeys: doc.Disabled,
		Selection: selection.StateOptions{
			Mode:          mode,
			DisallowEmpty: disallowEmpty,
			KeepAll:       keepAll,
			Selected:      selection.Uncontrolled(selection.NewSet(doc.Selected...), nil),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("build collection: %w", err)
	}

	m := &browseModel{
		list:      l,
		snapshots: l.Bus().Subscribe(),
		keys:      DefaultKeyMap(),
		fuzzy:     fuzzy,
	}
	m.renderer = virtuallist.New(m.rows())
	m.focusAt(0)
	return m, nil
}

func (m *browseModel) rows() virtuallist.Rows {
	return collectionRows{c: m.list.Collection(), mgr: m.list.Manager()}
}

func (m *browseModel) Init() tea.Cmd {
	return m.waitForSnapshot()
}

// waitForSnapshot blocks on the bus until the next rebuild is published.
func (m *browseModel) waitForSnapshot() tea.Cmd {
	ch := m.snapshots
	return func() tea.Msg {
		snap, ok := <-ch
		if !ok {
			return nil
		}
		return snapshotMsg(snap)
	}
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		// header and status line
		m.renderer.SetSize(msg.Width, max(msg.Height-2, 1))
		return m, m.renderer.Update(msg)

	case snapshotMsg:
		// A cancelled snapshot was superseded and the newer one may have been
		// dropped on a full channel, so always render the list's current one.
		if msg.Ctx.Err() != nil {
			logger.Debug("stale snapshot", "version", msg.Version, "current", m.list.Version())
		}
		m.renderer.SetRows(m.rows())
		m.syncCursor()
		return m, m.waitForSnapshot()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m, m.handleFilterKey(msg)
		}
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *browseModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	mgr := m.list.Manager()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.anchor = ""
		m.focusAt(m.renderer.Cursor() - 1)
	case key.Matches(msg, m.keys.Down):
		m.anchor = ""
		m.focusAt(m.renderer.Cursor() + 1)
	case key.Matches(msg, m.keys.ExtendUp):
		m.extendTo(m.renderer.Cursor() - 1)
	case key.Matches(msg, m.keys.ExtendDown):
		m.extendTo(m.renderer.Cursor() + 1)
	case key.Matches(msg, m.keys.Select):
		m.anchor = ""
		mgr.Select(mgr.FocusedKey())
	case key.Matches(msg, m.keys.ToggleAll):
		mgr.ToggleSelectAll()
	case key.Matches(msg, m.keys.Clear):
		mgr.ClearSelection()
	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
	case key.Matches(msg, m.keys.Copy):
		return m.copySelection()
	}
	return nil
}

func (m *browseModel) handleFilterKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		m.filtering = false
		return nil
	case tea.KeyEsc:
		m.filtering = false
		m.query = ""
	case tea.KeyBackspace:
		if m.query == "" {
			return nil
		}
		r := []rune(m.query)
		m.query = string(r[:len(r)-1])
	case tea.KeyRunes, tea.KeySpace:
		m.query += string(msg.Runes)
	default:
		return nil
	}

	if err := m.list.SetFilter(filterFor(m.query, m.fuzzy)); err != nil {
		m.status = "filter failed: " + err.Error()
	}
	return nil
}

// focusAt moves the cursor to pos and focuses the node under it.
func (m *browseModel) focusAt(pos int) {
	m.renderer.SetCursor(pos)
	if n, ok := m.list.Collection().At(m.renderer.Cursor()); ok {
		m.list.Manager().SetFocusedKey(n.Key)
	}
}

// extendTo selects the range from the anchor to pos and focuses pos.
func (m *browseModel) extendTo(pos int) {
	mgr := m.list.Manager()
	if m.anchor == "" {
		m.anchor = mgr.FocusedKey()
	}

	m.renderer.SetCursor(pos)
	n, ok := m.list.Collection().At(m.renderer.Cursor())
	if !ok {
		return
	}

	// ExtendSelection ranges from the focused key, so focus the anchor first.
	mgr.SetFocusedKey(m.anchor)
	mgr.ExtendSelection(n.Key)
	mgr.SetFocusedKey(n.Key)
}

// syncCursor puts the cursor back on the focused key after a rebuild, or on
// the first row if it was filtered out.
func (m *browseModel) syncCursor() {
	c := m.list.Collection()
	if pos, ok := c.Position(m.list.Manager().FocusedKey()); ok {
		m.renderer.SetCursor(pos)
		return
	}
	m.anchor = ""
	m.focusAt(0)
}

func (m *browseModel) copySelection() tea.Cmd {
	keys := m.list.Manager().SelectedKeys()
	if len(keys) == 0 {
		m.status = "Nothing selected"
	} else if err := clipboard.WriteAll(strings.Join(keys, "\n")); err != nil {
		logger.Warn("clipboard write failed", "error", err)
		m.status = "Failed to copy selection"
	} else {
		m.status = fmt.Sprintf("Copied %d key(s)", len(keys))
	}
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m *browseModel) View() string {
	var b strings.Builder

	mgr := m.list.Manager()
	header := fmt.Sprintf("listctl  %s  %d selected", mgr.SelectionMode(), len(mgr.SelectedKeys()))
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")
	b.WriteString(m.renderer.View())
	b.WriteString("\n")

	status := m.status
	switch {
	case m.filtering:
		status = "/" + m.query
	case status == "" && m.query != "":
		status = "filter: " + m.query
	}
	b.WriteString(statusStyle.Render(status))
	return b.String()
}

// collectionRows renders a collection snapshot for the virtual list.
type collectionRows struct {
	c   *collection.Collection[source.Entry]
	mgr *selection.Manager[source.Entry]
}

func (r collectionRows) Len() int { return r.c.Size() }

func (r collectionRows) Row(pos int, cursor bool, width int) string {
	n, ok := r.c.At(pos)
	if !ok {
		return ""
	}

	indent := strings.Repeat("  ", n.Level)
	var line string
	switch {
	case n.IsSection():
		line = indent + sectionStyle.Render(n.Text())
	case r.mgr.IsDisabled(n.Key):
		line = indent + "[ ] " + disabledStyle.Render(n.Text())
	case r.mgr.IsSelected(n.Key):
		line = indent + selectedMarkStyle.Render("[x]") + " " + n.Text()
	default:
		line = indent + "[ ] " + n.Text()
	}

	if cursor {
		return cursorStyle.Width(max(width, 0)).Render(line)
	}
	return line
}
