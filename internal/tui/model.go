package tui

import (
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"brailleplot/internal/braille"
	"brailleplot/internal/chart"
	"brailleplot/internal/config"
	"brailleplot/internal/gallery"
	"brailleplot/internal/geom"
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	status string

	cfg     config.Config
	blend   braille.BlendMode
	palette []braille.Color

	// Sidebar: gallery scenes, then supported files in cwd
	cwd   string
	l     list.Model
	items []list.Item

	// Source: a scene or a dataset, never both
	scene       *gallery.Scene
	data        geom.Data
	selPath     string
	sourceName  string
	sourceTitle string

	// animation
	frame   int
	ticking bool

	chart *chart.Chart

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// hover state
	hoverHasData bool
	hover        chart.Point

	// stats table
	showStats bool
	tbl       table.Model
}

// New returns a viewer using cfg, showing the first gallery scene.
func New(cfg config.Config) Model {
	m := Model{
		helpVisible: true,
		status:      "brailleplot ready",
		cfg:         cfg,
	}
	m.blend, _ = cfg.BlendMode()
	m.palette, _ = cfg.Colors()
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Scenes & files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste WKT here (POINT, LINESTRING, POLYGON, MULTI*). Press Enter to plot; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	m.tbl = table.New(table.WithColumns(statsColumns), table.WithFocused(true))
	m.tbl.SetHeight(8)
	m.refreshDir()
	if s := gallery.Scenes(); len(s) > 0 {
		m.openScene(s[0])
	}
	return m
}

// NewWithPath preloads a dataset, or a scene when path names one.
func NewWithPath(cfg config.Config, path string) Model {
	m := New(cfg)
	if s, ok := gallery.Lookup(path); ok {
		m.openScene(s)
		return m
	}
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd {
	if m.ticking {
		return tick()
	}
	return nil
}
