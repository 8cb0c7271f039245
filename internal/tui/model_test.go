package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brailleplot/internal/braille"
	"brailleplot/internal/config"
	"brailleplot/internal/gallery"
)

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m, cmd
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func sized(t *testing.T) Model {
	t.Helper()
	m, _ := send(t, New(config.Default()), tea.WindowSizeMsg{Width: 120, Height: 30})
	return m
}

func TestNewShowsFirstScene(t *testing.T) {
	m := New(config.Default())
	require.NotNil(t, m.scene)
	assert.Equal(t, gallery.Names()[0], m.scene.Name)
	assert.NotNil(t, m.chart)
	assert.Equal(t, "", m.View(), "nothing before the first size message")
	assert.GreaterOrEqual(t, len(m.items), len(gallery.Names()))
}

func TestResizeRebuildsChart(t *testing.T) {
	m := sized(t)
	// 120x30 minus header/footer, title row and border.
	assert.Equal(t, 118, m.chart.Canvas.Width())
	assert.Equal(t, 24, m.chart.Canvas.Height())

	m, _ = send(t, m, key("r"))
	assert.False(t, m.cfg.Border)
	assert.Equal(t, 120, m.chart.Canvas.Width())
	assert.Equal(t, 26, m.chart.Canvas.Height())

	m, _ = send(t, m, key("tab"))
	assert.True(t, m.showSidebar)
	assert.Equal(t, 120-sidebarWidth-1, m.chart.Canvas.Width())
}

func TestView(t *testing.T) {
	m := sized(t)
	v := m.View()
	assert.Contains(t, v, "┌")
	assert.Contains(t, v, "Color bars")
	assert.Contains(t, v, "q quit")

	m, _ = send(t, m, key("h"), key("s"))
	v = m.View()
	assert.NotContains(t, v, "q quit")
	assert.Contains(t, v, "canvas")
}

func TestPasteWKT(t *testing.T) {
	m := sized(t)
	m, _ = send(t, m, key("p"))
	require.True(t, m.pasteMode)

	m.ta.SetValue("MULTIPOINT (0 0, 10 10)")
	m, _ = send(t, m, key("enter"))
	assert.False(t, m.pasteMode)
	assert.Nil(t, m.scene)
	assert.Len(t, m.data.Points, 2)
	assert.Contains(t, m.status, "pasted WKT")

	rows := m.statsRows()
	require.Len(t, rows, 4)
	assert.Equal(t, "points", rows[0][0])
	assert.Equal(t, "2", rows[0][1])
	assert.Equal(t, "0 .. 10", rows[0][3])
	assert.Equal(t, "canvas", rows[3][0])

	m, _ = send(t, m, key("p"))
	m.ta.SetValue("CIRCLE (1 1)")
	m, _ = send(t, m, key("enter"))
	assert.True(t, m.pasteMode)
	assert.Contains(t, m.status, "wkt error")

	m, _ = send(t, m, key("esc"))
	assert.False(t, m.pasteMode)
	assert.Len(t, m.data.Points, 2, "failed paste keeps the previous data")
}

func TestToggles(t *testing.T) {
	m := sized(t)
	require.Equal(t, braille.Overwrite, m.blend)
	m, _ = send(t, m, key("b"))
	assert.Equal(t, braille.KeepFirst, m.blend)
	assert.Equal(t, braille.KeepFirst, m.chart.Canvas.Blend)

	m, _ = send(t, m, key("c"))
	assert.False(t, m.cfg.Color)
	assert.NotContains(t, m.View(), "\x1b[3", "no chart colors once color is off")

	_, cmd := send(t, m, key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestAnimation(t *testing.T) {
	m := sized(t)
	s, ok := gallery.Lookup("dual")
	require.True(t, ok)
	cmd := m.openScene(s)
	require.NotNil(t, cmd)
	assert.True(t, m.ticking)
	assert.NotNil(t, m.Init())

	m, cmd = send(t, m, tickMsg(time.Now()))
	assert.Equal(t, 1, m.frame)
	assert.NotNil(t, cmd)

	bars, _ := gallery.Lookup("bars")
	m.openScene(bars)
	m, cmd = send(t, m, tickMsg(time.Now()))
	assert.Nil(t, cmd)
	assert.False(t, m.ticking)
	assert.Equal(t, 0, m.frame)
}

func TestHover(t *testing.T) {
	m := sized(t)
	m, _ = send(t, m, key("p"))
	m.ta.SetValue("MULTIPOINT (0 0, 10 10)")
	m, _ = send(t, m, key("enter"))

	l := m.layout()
	bottomLeft, ok := m.cellToData(0, l.rows-1)
	require.True(t, ok)
	topRight, ok := m.cellToData(l.cols-1, 0)
	require.True(t, ok)
	assert.Less(t, bottomLeft.X, topRight.X)
	assert.Less(t, bottomLeft.Y, topRight.Y)
	assert.InDelta(t, -0.5, bottomLeft.X, 0.2)
	assert.InDelta(t, 10.5, topRight.Y, 0.2)

	_, ok = m.cellToData(l.cols, 0)
	assert.False(t, ok)

	m, _ = send(t, m, tea.MouseMsg{X: l.canvasX + 1, Y: l.canvasY + 1, Action: tea.MouseActionMotion})
	assert.True(t, m.hoverHasData)
	assert.True(t, strings.Contains(m.View(), "x="))

	m, _ = send(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion})
	assert.False(t, m.hoverHasData)
}

func TestSidebarOpen(t *testing.T) {
	m := sized(t)
	m, _ = send(t, m, key("tab"))
	m.l.Select(1)
	m, _ = send(t, m, key("enter"))
	require.NotNil(t, m.scene)
	assert.Equal(t, gallery.Names()[1], m.scene.Name)
}
