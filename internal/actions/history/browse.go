package history

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/footprint-tools/parsedcmd/internal/dispatchers"
	"github.com/footprint-tools/parsedcmd/internal/domain"
	"github.com/footprint-tools/parsedcmd/internal/format"
	"github.com/footprint-tools/parsedcmd/internal/ui/splitpanel"
	"github.com/footprint-tools/parsedcmd/internal/ui/style"
)

// browseLimit caps how many entries the browser loads.
const browseLimit = 1000

var errNotTerminal = errors.New("browse requires an interactive terminal")

// Browse opens a full-screen history browser.
func Browse(deps Deps) *dispatchers.Handler {
	return dispatchers.Command(dispatchers.CommandSpec{
		Name:    "browse",
		Summary: "Browse the history interactively",
		Doc: `Browse the history interactively.
The left panel filters by outcome, the right one lists the lines.
tab switches panels, enter shows the details of a line, q leaves.`,
		Category: dispatchers.CategorySession,
		Action: func(_ *dispatchers.Shell, _ *dispatchers.Call) error {
			return browse(deps)
		},
	})
}

func browse(deps Deps) error {
	if !deps.IsTerminal() {
		return errNotTerminal
	}

	entries, err := deps.List(domain.HistoryFilter{Limit: browseLimit})
	if err != nil {
		return fmt.Errorf("browse: %w", err)
	}

	return deps.RunProgram(newBrowserModel(entries, deps.Now()))
}

type filterItem struct {
	label   string
	outcome domain.Outcome // "" matches every entry
	count   int
}

// browserModel is the Bubble Tea model of the history browser.
type browserModel struct {
	entries []domain.HistoryEntry // newest first
	filters []filterItem
	now     time.Time

	filterIdx    int
	cursor       int
	scrollPos    int
	focusSidebar bool
	drawerOpen   bool

	width  int
	height int

	colors style.ColorConfig
}

func newBrowserModel(entries []domain.HistoryEntry, now time.Time) browserModel {
	filters := []filterItem{{label: "all", count: len(entries)}}
	for _, o := range domain.Outcomes() {
		item := filterItem{label: o.String(), outcome: o}
		for _, e := range entries {
			if e.Outcome == o {
				item.count++
			}
		}
		filters = append(filters, item)
	}

	return browserModel{
		entries:      entries,
		filters:      filters,
		now:          now,
		focusSidebar: true,
		colors:       style.GetColors(),
	}
}

// Init implements tea.Model
func (m browserModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureVisible()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m browserModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "esc":
		if m.drawerOpen {
			m.drawerOpen = false
			return m, nil
		}
		return m, tea.Quit

	case "tab":
		m.focusSidebar = !m.focusSidebar
		if m.focusSidebar {
			m.drawerOpen = false
		}

	case "up", "k":
		m.move(-1)

	case "down", "j":
		m.move(1)

	case "enter":
		if m.focusSidebar {
			m.focusSidebar = false
		} else if len(m.visible()) > 0 {
			m.drawerOpen = !m.drawerOpen
		}
	}
	return m, nil
}

func (m *browserModel) move(delta int) {
	if m.focusSidebar {
		m.filterIdx = clamp(m.filterIdx+delta, 0, len(m.filters)-1)
		m.cursor = 0
		m.scrollPos = 0
		return
	}
	m.cursor = clamp(m.cursor+delta, 0, len(m.visible())-1)
	m.ensureVisible()
}

func (m *browserModel) ensureVisible() {
	h := m.listHeight()
	if m.cursor < m.scrollPos {
		m.scrollPos = m.cursor
	}
	if h > 0 && m.cursor >= m.scrollPos+h {
		m.scrollPos = m.cursor - h + 1
	}
}

// listHeight is the number of entries shown: the screen minus the
// footer and the panel borders.
func (m browserModel) listHeight() int {
	return max(m.height-3, 1)
}

func (m browserModel) visible() []domain.HistoryEntry {
	want := m.filters[m.filterIdx].outcome
	if want == "" {
		return m.entries
	}
	var out []domain.HistoryEntry
	for _, e := range m.entries {
		if e.Outcome == want {
			out = append(out, e)
		}
	}
	return out
}

func (m browserModel) selected() (domain.HistoryEntry, bool) {
	v := m.visible()
	if m.cursor < 0 || m.cursor >= len(v) {
		return domain.HistoryEntry{}, false
	}
	return v[m.cursor], true
}

// View implements tea.Model
func (m browserModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	layout := splitpanel.NewLayout(m.width, splitpanel.Config{
		SidebarWidthPercent: 0.2,
		SidebarMinWidth:     22,
		SidebarMaxWidth:     30,
		HasDrawer:           true,
		DrawerWidthPercent:  0.35,
	}, m.colors)
	layout.SetFocus(m.focusSidebar)
	layout.SetDrawerOpen(m.drawerOpen)

	panelHeight := m.height - 1

	var drawer *splitpanel.Panel
	if e, ok := m.selected(); ok && m.drawerOpen {
		drawer = &splitpanel.Panel{Lines: m.detailLines(e)}
	}

	return layout.RenderWithDrawer(m.sidebarPanel(), m.contentPanel(), drawer, panelHeight) +
		"\n" + style.Muted(" tab focus · ↑/↓ move · enter details · q quit")
}

func (m browserModel) sidebarPanel() splitpanel.Panel {
	lines := []string{style.Header("Outcome"), ""}
	for i, f := range m.filters {
		marker := "  "
		label := fmt.Sprintf("%-13s%3d", f.label, f.count)
		if i == m.filterIdx {
			marker = "> "
			label = style.Info(label)
		} else if f.outcome != "" {
			label = style.Outcome(f.outcome, label)
		}
		lines = append(lines, marker+label)
	}
	return splitpanel.Panel{Lines: lines}
}

func (m browserModel) contentPanel() splitpanel.Panel {
	v := m.visible()
	if len(v) == 0 {
		return splitpanel.Panel{Lines: []string{style.Muted("No history entries")}}
	}

	end := min(m.scrollPos+m.listHeight(), len(v))
	lines := make([]string, 0, end-m.scrollPos)
	for i := m.scrollPos; i < end; i++ {
		e := v[i]
		marker := "  "
		if i == m.cursor && !m.focusSidebar {
			marker = "> "
		}
		lines = append(lines, fmt.Sprintf("%s%s  %s",
			marker,
			style.Muted(fmt.Sprintf("%-14s", format.Stamp(e.CreatedAt, m.now))),
			style.Outcome(e.Outcome, displayLine(e.Line)),
		))
	}
	return splitpanel.Panel{Lines: lines, ScrollPos: m.scrollPos, TotalItems: len(v)}
}

func (m browserModel) detailLines(e domain.HistoryEntry) []string {
	lines := []string{
		style.Header("Line"),
		displayLine(e.Line),
		"",
		style.Header("Command"),
		e.Command,
		"",
		style.Header("Outcome"),
		style.Outcome(e.Outcome, e.Outcome.String()),
	}
	if e.Reason != "" {
		lines = append(lines, "", style.Header("Reason"), e.Reason)
	}
	return append(lines,
		"",
		style.Header("When"),
		format.Full(e.CreatedAt.In(m.now.Location())),
		style.Muted(format.Ago(e.CreatedAt, m.now)),
		"",
		style.Header("Session"),
		e.SessionID.String(),
	)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
