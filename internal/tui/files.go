package tui

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"brailleplot/internal/gallery"
	"brailleplot/internal/geom"
)

// entry is a sidebar row: a gallery scene or a dataset file.
type entry struct {
	title, desc string
	path        string
	scene       string
}

func (e entry) Title() string       { return e.title }
func (e entry) Description() string { return e.desc }
func (e entry) FilterValue() string { return e.title }

func (m *Model) refreshDir() {
	var items []list.Item
	for _, s := range gallery.Scenes() {
		items = append(items, entry{title: "◆ " + s.Name, desc: s.Title, scene: s.Name})
	}
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
	}
	var files []list.Item
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !geom.Supported(name) {
			continue
		}
		files = append(files, entry{title: name, desc: strings.ToLower(filepath.Ext(name)), path: filepath.Join(m.cwd, name)})
	}
	sort.SliceStable(files, func(i, j int) bool { return files[i].(entry).title < files[j].(entry).title })
	m.items = append(items, files...)
	m.l.SetItems(m.items)
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// openScene shows s from its first frame. The returned command starts the
// animation tick when s is animated and no tick is running yet.
func (m *Model) openScene(s gallery.Scene) tea.Cmd {
	m.scene = &s
	m.data = geom.Data{}
	m.selPath = ""
	m.sourceName = s.Name
	m.sourceTitle = s.Title
	m.frame = 0
	m.blend = s.Blend
	m.redraw()
	m.status = "scene: " + s.Name
	slog.Debug("open scene", "name", s.Name)
	if s.Animated && !m.ticking {
		m.ticking = true
		return tick()
	}
	return nil
}

// setData shows d under the given name.
func (m *Model) setData(d geom.Data, name string) {
	m.scene = nil
	m.data = d
	m.sourceName = name
	m.sourceTitle = name
	m.frame = 0
	m.blend, _ = m.cfg.BlendMode()
	m.redraw()
	m.status = fmt.Sprintf("loaded: %s  counts: pts=%d ls=%d poly=%d", name, len(d.Points), len(d.Lines), len(d.Polygons))
}

// loadPath loads a supported dataset file into the model.
func (m *Model) loadPath(p string) {
	d, err := geom.Load(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		slog.Debug("load failed", "path", p, "err", err)
		return
	}
	m.selPath = p
	m.setData(d, filepath.Base(p))
	slog.Debug("loaded", "path", p, "vertices", d.Vertices())
}

// open acts on the selected sidebar entry.
func (m *Model) open(e entry) tea.Cmd {
	if e.scene != "" {
		if s, ok := gallery.Lookup(e.scene); ok {
			return m.openScene(s)
		}
		return nil
	}
	m.loadPath(e.path)
	return nil
}
