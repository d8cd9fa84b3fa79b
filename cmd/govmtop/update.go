package main

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		paneHeight := msg.Height - 4
		paneWidth := msg.Width - 4
		m.disasm.Width = paneWidth
		m.disasm.Height = paneHeight
		m.stats.Width = paneWidth
		m.stats.Height = paneHeight
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.Tab):
			if m.focused == DisasmPane {
				m.focused = StatsPane
			} else {
				m.focused = DisasmPane
			}
			return m, nil

		case key.Matches(msg, m.keys.Copy):
			text := m.disasm.View()
			if m.focused == StatsPane {
				text = m.stats.View()
			}
			m.clipboardErr = clipboard.WriteAll(text)
			if m.clipboardErr == nil {
				m.statusMsg = "copied pane to clipboard"
			} else {
				m.statusMsg = "clipboard unavailable: " + m.clipboardErr.Error()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.focused == DisasmPane {
		m.disasm, cmd = m.disasm.Update(msg)
	} else {
		m.stats, cmd = m.stats.Update(msg)
	}
	return m, cmd
}
