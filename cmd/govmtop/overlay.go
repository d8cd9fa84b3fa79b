package main

import tea "github.com/charmbracelet/bubbletea"

// helpModel is the minimal tea.Model bubbletea-overlay needs for its
// foreground argument: a fixed block of help text with no input
// handling of its own (Update is a no-op; govmtop's own Update
// intercepts "?" before this model ever sees a message).
type helpModel struct {
	body string
}

func (h helpModel) Init() tea.Cmd                       { return nil }
func (h helpModel) Update(tea.Msg) (tea.Model, tea.Cmd) { return h, nil }
func (h helpModel) View() string                        { return paneStyle.Render(h.body) }

// backgroundModel adapts an already-rendered string to tea.Model, for
// bubbletea-overlay's background argument.
type backgroundModel struct {
	body string
}

func (b backgroundModel) Init() tea.Cmd                       { return nil }
func (b backgroundModel) Update(tea.Msg) (tea.Model, tea.Cmd) { return b, nil }
func (b backgroundModel) View() string                        { return b.body }
