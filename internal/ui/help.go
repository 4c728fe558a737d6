package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"marquee/internal/items"
	"marquee/internal/scroll"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderHelpContent generates help content with colors for the pager
func (r *HelpRenderer) RenderHelpContent(opts scroll.Options) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder
	line := func(k, desc string) {
		help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(k), descStyle.Render(desc)))
	}

	help.WriteString(titleStyle.Render("Marquee Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Scrolling"))
	help.WriteString("\n")
	line("←/→, h/l", "Nudge the strip")
	line("PgUp/PgDn", "Move by one window")
	line("Home/End", "Jump to start/end")
	line("drag", "Hold the left button and move")
	line("wheel", "Nudge the strip")
	line("Esc", "Cancel the current drag")
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Auto-scroll"))
	help.WriteString("\n")
	line("direction", opts.Direction.String())
	line("cycle", opts.CycleDuration.String())
	line("at the end", opts.EndBehavior.String())
	if opts.UserScrollEnabled {
		line("resume", fmt.Sprintf("%s after the last drag", opts.ResumeDelay))
	} else {
		line("resume", "manual scrolling disabled")
	}
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	line("L", "List items")
	line("?", "Show this help")
	help.WriteString(fmt.Sprintf("  %s %s", keyStyle.Render("q"), descStyle.Render("Quit")))

	return help.String()
}

// RenderItemList lists the strip items one per line, numbered
func (r *HelpRenderer) RenderItemList(slots []items.Slot) string {
	numStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var list strings.Builder
	n := 0
	for _, slot := range slots {
		if slot.Kind != items.SlotItem {
			continue
		}
		n++
		list.WriteString(fmt.Sprintf("%s %s\n", numStyle.Render(fmt.Sprintf("%4d", n)), slot.Content))
	}
	if n == 0 {
		list.WriteString("(no items)\n")
	}
	return list.String()
}

// PagerOps shows content in the ov pager
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps(program *tea.Program) *PagerOps {
	return &PagerOps{
		program: program,
	}
}

// Show shows content using ov pager
func (p *PagerOps) Show(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
