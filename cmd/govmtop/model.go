package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/prateekvishnu/goscript/vm/heap"
)

// Pane identifies which of govmtop's two viewports is focused.
type Pane int

const (
	DisasmPane Pane = iota
	StatsPane
)

// Model is govmtop's top-level bubbletea model: a disassembly viewport
// and a heap-statistics viewport for the artifact it was launched
// against, already run to completion by the time the model exists
// (there's no live-attach story for a scheduler whose run already
// returned, unlike hiveexplorer's incremental hive reads).
type Model struct {
	keys KeyMap

	disasm viewport.Model
	stats  viewport.Model

	focused Pane
	width   int
	height  int

	showHelp     bool
	statusMsg    string
	clipboardErr error
}

// NewModel builds govmtop's model from a disassembly listing and a
// final heap-stats snapshot.
func NewModel(disasmText string, stats heap.Stats) Model {
	d := viewport.New(0, 0)
	d.SetContent(disasmText)

	s := viewport.New(0, 0)
	s.SetContent(formatStats(stats))

	return Model{
		keys:    DefaultKeyMap(),
		disasm:  d,
		stats:   s,
		focused: DisasmPane,
	}
}

func formatStats(s heap.Stats) string {
	return fmt.Sprintf(
		"retains:       %d\nreleases:      %d\nfrees:         %d\ncycles freed:  %d\ncollect runs:  %d\nlive estimate: %d\n",
		s.Retains, s.Releases, s.Frees, s.CyclesFreed, s.CollectRuns, s.LiveEstimate,
	)
}

func (m Model) Init() tea.Cmd {
	return nil
}
