package views

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"marquee/internal/items"
)

// Strip is the scroll region pre-rendered as one styled line
type Strip struct {
	line  string
	width int
	count int
}

// ComposeStrip renders slots left to right. Items alternate colours so
// neighbours stay distinguishable without separators.
func (s *Styles) ComposeStrip(slots []items.Slot) Strip {
	var b strings.Builder
	for _, slot := range slots {
		switch slot.Kind {
		case items.SlotSeparator:
			b.WriteString(s.Separator.Render(slot.Content))
		default:
			style := s.Item
			if slot.Index%2 == 1 {
				style = s.ItemAlt
			}
			b.WriteString(style.Render(slot.Content))
		}
	}
	line := b.String()
	return Strip{
		line:  line,
		width: ansi.StringWidth(line),
		count: items.ItemCount(slots),
	}
}

// Width returns the strip length in terminal cells
func (st Strip) Width() int {
	return st.width
}

// Items returns the number of item slots in the strip
func (st Strip) Items() int {
	return st.count
}

// Window returns the cells [offset, offset+width) of the strip, padded to width
func (st Strip) Window(offset, width int) string {
	if width <= 0 {
		return ""
	}
	if offset < 0 {
		offset = 0
	}
	visible := ansi.Cut(st.line, offset, offset+width)
	if pad := width - ansi.StringWidth(visible); pad > 0 {
		visible += strings.Repeat(" ", pad)
	}
	return visible
}
