package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Box           lipgloss.Style
	BoxDragging   lipgloss.Style
	Item          lipgloss.Style
	ItemAlt       lipgloss.Style
	Separator     lipgloss.Style
	Empty         lipgloss.Style
	Status        lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	StateDriving  lipgloss.Style
	StateDragging lipgloss.Style
	StatePaused   lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim: lipgloss.NewStyle().Faint(true),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			BorderForeground(lipgloss.Color("241")),
		BoxDragging: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			BorderForeground(lipgloss.Color("214")),
		Item:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ItemAlt:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Separator: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Empty:     lipgloss.NewStyle().Faint(true).Italic(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		StateDriving:  lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		StateDragging: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		StatePaused:   lipgloss.NewStyle().Foreground(lipgloss.Color("51")),  // cyan
	}
}

// BoxFrameWidth is the horizontal space the strip box takes around its content
func (s *Styles) BoxFrameWidth() int {
	return s.Box.GetHorizontalFrameSize()
}
