package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PopupRenderer draws in-terminal fallbacks for content normally shown in the pager
type PopupRenderer struct {
	styles *Styles
	box    lipgloss.Style
	more   lipgloss.Style
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	if styles == nil {
		styles = NewStyles()
	}
	return &PopupRenderer{
		styles: styles,
		box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("99")),
		more: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// Render centers the popup in a width x height screen. Content taller than the
// screen is cut with a marker line.
func (pr *PopupRenderer) Render(content string, width, height int) string {
	if width <= 0 || height <= 0 {
		return pr.box.Render(content)
	}

	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")

	// border and padding take four rows, the footer one more
	visible := height - pr.box.GetVerticalFrameSize() - 1
	if visible < 3 {
		visible = 3
	}
	if len(lines) > visible {
		lines = append(lines[:visible-1], pr.more.Render("↓ (more below)"))
	}

	body := strings.Join(lines, "\n") + "\n" + pr.styles.Help.Render("esc to close")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, pr.box.Render(body))
}
