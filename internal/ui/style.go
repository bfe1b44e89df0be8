package ui

import "github.com/charmbracelet/lipgloss"

var borderASCII = lipgloss.Border{
	Top:         "-",
	Bottom:      "-",
	Left:        "|",
	Right:       "|",
	TopLeft:     "+",
	TopRight:    "+",
	BottomLeft:  "+",
	BottomRight: "+",
}

var (
	panelStyle = lipgloss.NewStyle().Border(borderASCII).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Bold(true)
)

// Tone selects a panel border color.
type Tone int

const (
	ToneInfo Tone = iota
	ToneSuccess
	ToneWarn
	ToneError
)

var toneColors = map[Tone]lipgloss.Color{
	ToneInfo:    lipgloss.Color("6"),
	ToneSuccess: lipgloss.Color("2"),
	ToneWarn:    lipgloss.Color("3"),
	ToneError:   lipgloss.Color("1"),
}

// Panel renders a bordered box with a bold title line above the body.
// When styled is false the output is plain text with the same layout.
func Panel(title, body string, tone Tone, styled bool) string {
	if !styled {
		content := title
		if body != "" {
			content += "\n\n" + body
		}
		return panelStyle.Render(content)
	}

	content := titleStyle.Render(title)
	if body != "" {
		content += "\n\n" + body
	}
	return panelStyle.BorderForeground(toneColors[tone]).Render(content)
}
