package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// title is the canvas title: the configured one, else the source's.
func (m Model) title() string {
	if m.cfg.Title != "" {
		return m.cfg.Title
	}
	return m.sourceTitle
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	l := m.layout()

	// Header
	header := titleStyle.Render(" brailleplot ─ braille charts in the terminal ")
	header = lipgloss.NewStyle().Width(l.contentW).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
	}

	var mapView string
	switch {
	case m.showStats:
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 2
		}
		maxW := min(l.mapW, colW+4)
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(l.mapH-2, len(m.tbl.Rows())+2))
		box := boxStyle.Width(maxW).Render(m.tbl.View())
		mapView = lipgloss.Place(l.mapW, l.mapH, lipgloss.Center, lipgloss.Center, box)
	case m.pasteMode:
		m.ta.SetWidth(l.mapW)
		m.ta.SetHeight(min(l.mapH, 12))
		mapView = lipgloss.NewStyle().Width(l.mapW).Height(l.mapH).Render(m.ta.View())
	default:
		var frame string
		if m.chart != nil {
			cfg := m.cfg
			cfg.Title = m.title()
			frame = cfg.Render(m.chart.Canvas)
		}
		mapView = lipgloss.NewStyle().Width(l.mapW).Height(l.mapH).Render(frame)
	}

	body := mapView
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	}

	// Footer: status and help on the left, hovered data coordinate on the right
	status := dimStyle.Render(" " + m.status + " ")
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, m.renderHelp())
	coords := ""
	if m.hoverHasData {
		coords = accentStyle.Render(fmt.Sprintf("  x=%.5g y=%.5g  ", m.hover.X, m.hover.Y))
	}
	spacerW := max(0, l.contentW-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	footer := lipgloss.NewStyle().Width(l.contentW).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(l.contentW).Height(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"Tab sidebar",
		"Enter open",
		"p paste",
		"s stats",
		"b blend",
		"c color",
		"r border",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
