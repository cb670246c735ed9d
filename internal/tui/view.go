// internal/tui/view.go
//
// Rendering: the tile grid, status line, and key help.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordle-tui/internal/session"
)

var (
	clrGreen  = lipgloss.Color("#538d4e")
	clrYellow = lipgloss.Color("#b59f3b")
	clrGrey   = lipgloss.Color("#3a3a3c")
	clrInk    = lipgloss.Color("#d7dadc")
	clrWarn   = lipgloss.Color("#f0c862")
	clrSubtle = lipgloss.Color("#8b949e")

	styleTitle  = lipgloss.NewStyle().Foreground(clrInk).Bold(true)
	styleStatus = lipgloss.NewStyle().Foreground(clrInk)
	styleWarn   = lipgloss.NewStyle().Foreground(clrWarn)
	styleHelp   = lipgloss.NewStyle().Foreground(clrSubtle)

	tileBase = lipgloss.NewStyle().Bold(true).Padding(0, 1)

	tileGreen  = tileBase.Copy().Background(clrGreen).Foreground(clrInk)
	tileYellow = tileBase.Copy().Background(clrYellow).Foreground(clrInk)
	tileGrey   = tileBase.Copy().Background(clrGrey).Foreground(clrInk)
	tileWhite  = tileBase.Copy().Foreground(clrInk).Faint(true)
)

func tileStyle(st session.Status) lipgloss.Style {
	switch st {
	case session.StatusGreen:
		return tileGreen
	case session.StatusYellow:
		return tileYellow
	case session.StatusGrey:
		return tileGrey
	default:
		return tileWhite
	}
}

func renderTile(t session.Tile) string {
	letter := " "
	if t.Letter != 0 {
		letter = string(t.Letter)
	}
	return tileStyle(t.Status).Render(letter)
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("WORD OF THE DAY"))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(m.spin.View())
		b.WriteString(" fetching today's word…\n")
		return b.String()
	}

	for row := 0; row < m.cfg.MaxTries; row++ {
		tiles := m.sess.Row(row)
		parts := make([]string, len(tiles))
		for i, t := range tiles {
			parts[i] = renderTile(t)
		}
		b.WriteString(strings.Join(parts, " "))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		if m.warn {
			b.WriteString(styleWarn.Render(m.status))
		} else {
			b.WriteString(styleStatus.Render(m.status))
		}
		b.WriteString("\n")
	}

	help := "type to guess · enter submit · backspace delete · ctrl+w reveal · ctrl+r reset · esc quit"
	if m.sess.State() != session.StatePlaying {
		help = "ctrl+r play again · esc quit"
	}
	b.WriteString(styleHelp.Render(help))
	b.WriteString("\n")
	return b.String()
}
