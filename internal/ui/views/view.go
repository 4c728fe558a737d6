package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"marquee/internal/domain"
	"marquee/internal/scroll"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Strip         Strip
	Cell          int // left edge of the visible window
	ViewWidth     int
	Snapshot      scroll.Snapshot
	Now           time.Time
	SourceName    string
	StatusMessage string
	StatusIsError bool
	Popup         string // pager fallback shown over the strip
	ShowProgress  bool
	Progress      progress.Model
	HelpModel     help.Model
	Keys          help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(styles *Styles) *Renderer {
	if styles == nil {
		styles = NewStyles()
	}
	return &Renderer{
		styles:      styles,
		popupRender: NewPopupRenderer(styles),
	}
}

// Styles returns the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if state.Popup != "" {
		return r.popupRender.Render(state.Popup, state.Width, state.Height)
	}

	content := &strings.Builder{}

	title := r.styles.Title.Render("marquee")
	if state.SourceName != "" {
		title = lipgloss.JoinHorizontal(lipgloss.Top, title, r.styles.Dim.Render("  "+state.SourceName))
	}
	content.WriteString(title)
	content.WriteString("\n")

	content.WriteString(r.renderStrip(state))
	content.WriteString("\n")

	if state.ShowProgress {
		content.WriteString(state.Progress.ViewAs(state.Snapshot.Progress))
		content.WriteString("\n")
	}

	content.WriteString(r.renderStatus(state))
	content.WriteString("\n")

	if state.Keys != nil {
		content.WriteString(r.styles.Help.Render(state.HelpModel.View(state.Keys)))
	}

	return r.styles.Main.Render(content.String())
}

func (r *Renderer) renderStrip(state ViewState) string {
	box := r.styles.Box
	if state.Snapshot.State != domain.Driving {
		box = r.styles.BoxDragging
	}

	var inner string
	if state.Strip.Items() == 0 {
		inner = r.styles.Empty.Render(padRight("no items", state.ViewWidth))
	} else {
		inner = state.Strip.Window(state.Cell, state.ViewWidth)
	}
	return box.Render(inner)
}

func (r *Renderer) renderStatus(state ViewState) string {
	snap := state.Snapshot
	parts := []string{r.renderState(snap, state.Now)}

	if snap.MaxExtent > 0 {
		arrow := "←"
		if snap.SweepingForward {
			arrow = "→"
		}
		parts = append(parts, fmt.Sprintf("%s %.0f/%.0f", arrow, snap.Offset, snap.MaxExtent))
	} else {
		parts = append(parts, "fits")
	}
	parts = append(parts, fmt.Sprintf("%d items", state.Strip.Items()))

	line := r.styles.Status.Render(strings.Join(parts, "  ·  "))
	if state.StatusMessage != "" {
		style := r.styles.StatusSuccess
		if state.StatusIsError {
			style = r.styles.StatusError
		}
		line = lipgloss.JoinVertical(lipgloss.Left, line, style.Render(state.StatusMessage))
	}
	return line
}

func (r *Renderer) renderState(snap scroll.Snapshot, now time.Time) string {
	switch snap.State {
	case domain.Dragging:
		return r.styles.StateDragging.Render("✋ dragging")
	case domain.PausedPendingResume:
		label := "⏸ paused"
		if !snap.ResumeAt.IsZero() {
			remaining := snap.ResumeAt.Sub(now)
			if remaining < 0 {
				remaining = 0
			}
			label = fmt.Sprintf("⏸ resuming in %.1fs", remaining.Seconds())
		}
		return r.styles.StatePaused.Render(label)
	default:
		return r.styles.StateDriving.Render("▶ driving")
	}
}

func padRight(s string, width int) string {
	if n := width - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
