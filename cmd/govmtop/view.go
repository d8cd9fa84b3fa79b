package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

const helpText = `govmtop

↑/k ↓/j    scroll the focused pane
pgup/pgdn  page the focused pane
tab        switch between disassembly and heap-stats panes
c          copy the focused pane's text to the clipboard
?          toggle this help
q          quit
`

func (m Model) View() string {
	header := headerStyle.Render("govmtop — fiber & heap inspector")
	content := m.renderContent()
	status := statusStyle.Render(m.renderStatus())

	background := lipgloss.JoinVertical(lipgloss.Left, header, content, status)

	if m.showHelp {
		ov := overlay.New(
			helpModel{body: helpText},
			backgroundModel{body: background},
			overlay.Center,
			overlay.Center,
			0,
			0,
		)
		return ov.View()
	}

	return background
}

func (m Model) renderContent() string {
	disasmLabel := "disassembly"
	statsLabel := "heap stats"
	if m.focused == DisasmPane {
		disasmLabel += " (focused)"
	} else {
		statsLabel += " (focused)"
	}

	left := paneStyle.Render(fmt.Sprintf("%s\n%s", disasmLabel, m.disasm.View()))
	right := paneStyle.Render(fmt.Sprintf("%s\n%s", statsLabel, m.stats.View()))
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (m Model) renderStatus() string {
	if m.statusMsg != "" {
		return m.statusMsg
	}
	return "? for help · tab to switch panes · q to quit"
}
