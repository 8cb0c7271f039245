package tui

import (
	"fmt"
	"log/slog"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"brailleplot/internal/braille"
	"brailleplot/internal/geom"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		slog.Debug("resize", "width", m.width, "height", m.height)
		m.resizeSidebar()
		m.redraw()
	case tickMsg:
		if m.scene == nil || !m.scene.Animated {
			m.ticking = false
			return m, nil
		}
		m.frame++
		m.redraw()
		return m, tick()
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			return m.updatePaste(msg)
		}
		var cmd tea.Cmd
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.resizeSidebar()
			}
			m.redraw()
		case "enter":
			if m.showSidebar {
				if e, ok := m.l.SelectedItem().(entry); ok {
					cmd = m.open(e)
				}
			}
		case "p":
			m.pasteMode = true
			m.ta.SetValue("")
			m.status = "paste mode"
			return m, m.ta.Focus()
		case "s":
			m.showStats = !m.showStats
			m.refreshStats()
		case "b":
			if m.blend == braille.Overwrite {
				m.blend = braille.KeepFirst
			} else {
				m.blend = braille.Overwrite
			}
			m.redraw()
			m.status = "blend: " + m.blend.String()
		case "c":
			m.cfg.Color = !m.cfg.Color
			m.status = fmt.Sprintf("color: %v", m.cfg.Color)
		case "r":
			m.cfg.Border = !m.cfg.Border
			m.redraw()
			m.status = fmt.Sprintf("border: %v", m.cfg.Border)
		case "h":
			m.helpVisible = !m.helpVisible
		}
		if m.showSidebar && cmd == nil {
			m.l, cmd = m.l.Update(msg)
		}
		return m, cmd
	case tea.MouseMsg:
		l := m.layout()
		m.hoverHasData = false
		if p, ok := m.cellToData(msg.X-l.canvasX, msg.Y-l.canvasY); ok {
			m.hoverHasData = true
			m.hover = p
		}
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

// updatePaste handles keys while the WKT textarea is focused.
func (m Model) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pasteMode = false
		m.ta.Blur()
		m.status = "view mode"
		return m, nil
	case "enter":
		w := strings.TrimSpace(m.ta.Value())
		if w == "" {
			m.status = "paste: empty"
			return m, nil
		}
		d, err := geom.ParseWKT(w)
		if err != nil {
			m.status = "wkt error: " + err.Error()
			return m, nil
		}
		m.pasteMode = false
		m.ta.Blur()
		m.selPath = ""
		m.setData(d, "pasted WKT")
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

func (m *Model) resizeSidebar() {
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, m.layout().contentH-2)
	}
}
