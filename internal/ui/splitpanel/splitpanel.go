// Package splitpanel lays out bordered side-by-side panels for the
// full-screen views of the shell.
package splitpanel

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/footprint-tools/parsedcmd/internal/ui/style"
)

// chrome is the width taken by border(2), padding(2) and scrollbar(2).
const chrome = 6

// Panel is the content of one box.
type Panel struct {
	Lines      []string // already scrolled to the visible window
	ScrollPos  int
	TotalItems int // 0 means len(Lines)
}

// Config holds the width rules of a layout.
type Config struct {
	SidebarWidthPercent float64
	SidebarMinWidth     int
	SidebarMaxWidth     int
	HasDrawer           bool
	DrawerWidthPercent  float64
}

// Layout holds computed dimensions and renders the panels.
type Layout struct {
	Width        int
	Height       int
	SidebarWidth int
	ContentWidth int
	DrawerWidth  int
	FocusSidebar bool
	DrawerOpen   bool

	active lipgloss.Color
	dim    lipgloss.Color
	config Config
}

// NewLayout computes the sidebar and content widths for width. Focused
// borders use the theme's info color and unfocused ones its muted color.
func NewLayout(width int, cfg Config, colors style.ColorConfig) *Layout {
	sidebarWidth := int(float64(width) * cfg.SidebarWidthPercent)
	sidebarWidth = max(sidebarWidth, cfg.SidebarMinWidth)
	if cfg.SidebarMaxWidth > 0 {
		sidebarWidth = min(sidebarWidth, cfg.SidebarMaxWidth)
	}

	return &Layout{
		Width:        width,
		SidebarWidth: sidebarWidth,
		ContentWidth: width - sidebarWidth,
		FocusSidebar: true,
		active:       lipgloss.Color(colors.Info),
		dim:          lipgloss.Color(colors.Muted),
		config:       cfg,
	}
}

// SetFocus sets which panel is focused.
func (l *Layout) SetFocus(focusSidebar bool) {
	l.FocusSidebar = focusSidebar
}

// SetDrawerOpen opens or closes the drawer and recomputes the content width.
func (l *Layout) SetDrawerOpen(open bool) {
	l.DrawerOpen = open

	if open && l.config.HasDrawer {
		l.DrawerWidth = int(float64(l.Width) * l.config.DrawerWidthPercent)
		l.ContentWidth = l.Width - l.SidebarWidth - l.DrawerWidth
		return
	}
	l.DrawerWidth = 0
	l.ContentWidth = l.Width - l.SidebarWidth
}

// Render renders sidebar and content side by side.
func (l *Layout) Render(sidebar, content Panel, height int) string {
	return l.RenderWithDrawer(sidebar, content, nil, height)
}

// RenderWithDrawer renders the panels plus drawer when it is open. The
// drawer takes the focus from the content panel.
func (l *Layout) RenderWithDrawer(sidebar, content Panel, drawer *Panel, height int) string {
	l.Height = height

	sidebarStr := l.buildPanel(sidebar, l.SidebarWidth, height, l.FocusSidebar)
	contentStr := l.buildPanel(content, l.ContentWidth, height, !l.FocusSidebar && !l.DrawerOpen)

	if drawer != nil && l.DrawerOpen && l.DrawerWidth > 0 {
		drawerStr := l.buildPanel(*drawer, l.DrawerWidth, height, true)
		return lipgloss.JoinHorizontal(lipgloss.Top, sidebarStr, contentStr, drawerStr)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, sidebarStr, contentStr)
}

func (l *Layout) buildPanel(panel Panel, width, height int, focused bool) string {
	contentWidth := max(width-chrome, 1)
	visibleHeight := max(height-2, 1)

	lines := panel.Lines
	if len(lines) > visibleHeight {
		lines = lines[:visibleHeight]
	}

	totalItems := panel.TotalItems
	if totalItems == 0 {
		totalItems = len(panel.Lines)
	}
	scrollbar := BuildScrollbar(visibleHeight, totalItems, panel.ScrollPos, l.active, l.dim, focused)

	result := make([]string, visibleHeight)
	for i := range visibleHeight {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		result[i] = fit(line, contentWidth) + " " + scrollbar[i]
	}

	border := l.dim
	if focused {
		border = l.active
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Render(strings.Join(result, "\n"))
}

// fit pads or truncates line to exactly width cells.
func fit(line string, width int) string {
	w := lipgloss.Width(line)
	switch {
	case w > width:
		return truncateString(line, width)
	case w < width:
		return line + strings.Repeat(" ", width-w)
	}
	return line
}

// truncateString cuts s to maxWidth cells ending in "...". ANSI sequences
// inside the cut part may be broken.
func truncateString(s string, maxWidth int) string {
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	runes := []rune(s)
	for i := len(runes); i > 0; i-- {
		candidate := string(runes[:i])
		if lipgloss.Width(candidate) <= maxWidth-3 {
			return candidate + "..."
		}
	}
	return "..."
}

// SidebarContentWidth returns usable width for sidebar content.
func (l *Layout) SidebarContentWidth() int {
	return l.SidebarWidth - chrome
}

// MainContentWidth returns usable width for main content.
func (l *Layout) MainContentWidth() int {
	return l.ContentWidth - chrome
}

// DrawerContentWidth returns usable width for drawer content.
func (l *Layout) DrawerContentWidth() int {
	if l.DrawerWidth == 0 {
		return 0
	}
	return l.DrawerWidth - chrome
}

// VisibleHeight returns the number of lines a panel shows.
func (l *Layout) VisibleHeight() int {
	return l.Height - 2
}
