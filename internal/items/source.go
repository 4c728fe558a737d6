// Package items turns an item source into the ordered slots of a strip.
package items

import (
	"fmt"
	"strings"

	"marquee/internal/domain"
)

// Builder maps an index in [0, count) to rendered content
type Builder func(index int) string

// Source describes the strip content in one of three shapes:
//   - fixed: Items
//   - counted: Count + ItemBuilder
//   - counted with separators: Count + ItemBuilder + SeparatorBuilder
type Source struct {
	Items            []string
	Count            int
	ItemBuilder      Builder
	SeparatorBuilder Builder
}

// Mode identifies which shape a source uses
type Mode int

const (
	ModeFixed Mode = iota
	ModeCounted
	ModeSeparated
)

func (m Mode) String() string {
	switch m {
	case ModeFixed:
		return "fixed"
	case ModeCounted:
		return "counted"
	case ModeSeparated:
		return "separated"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Fixed creates a source over a fixed ordered list
func Fixed(items []string) Source {
	if items == nil {
		items = []string{}
	}
	return Source{Items: items}
}

// Counted creates a source that builds count items lazily
func Counted(count int, item Builder) Source {
	return Source{Count: count, ItemBuilder: item}
}

// Separated creates a counted source with a separator between items
func Separated(count int, item, separator Builder) Source {
	return Source{Count: count, ItemBuilder: item, SeparatorBuilder: separator}
}

// Validate checks that exactly one shape is selected
func (s Source) Validate() error {
	fixed := s.Items != nil
	counted := s.ItemBuilder != nil

	switch {
	case fixed && counted:
		return fmt.Errorf("%w: both items and an item builder are set", domain.ErrInvalidSource)
	case !fixed && !counted:
		if s.SeparatorBuilder != nil {
			return fmt.Errorf("%w: separator builder requires an item builder", domain.ErrInvalidSource)
		}
		return fmt.Errorf("%w: no items and no item builder", domain.ErrInvalidSource)
	case fixed && s.SeparatorBuilder != nil:
		return fmt.Errorf("%w: separator builder cannot be used with fixed items", domain.ErrInvalidSource)
	case fixed && s.Count != 0:
		return fmt.Errorf("%w: count cannot be used with fixed items", domain.ErrInvalidSource)
	case counted && s.Count < 0:
		return fmt.Errorf("%w: negative item count %d", domain.ErrInvalidSource, s.Count)
	}
	return nil
}

// Mode returns the shape of a valid source
func (s Source) Mode() Mode {
	switch {
	case s.Items != nil:
		return ModeFixed
	case s.SeparatorBuilder != nil:
		return ModeSeparated
	default:
		return ModeCounted
	}
}

// Len returns the number of items (separators not included)
func (s Source) Len() int {
	if s.Items != nil {
		return len(s.Items)
	}
	return s.Count
}

// Item returns the content of item i
func (s Source) Item(i int) string {
	if s.Items != nil {
		return s.Items[i]
	}
	return s.ItemBuilder(i)
}

// FromLines builds a fixed source, or a separated one when separator is non-empty
func FromLines(lines []string, separator string) Source {
	if separator == "" {
		return Fixed(lines)
	}
	snapshot := append([]string(nil), lines...)
	return Separated(len(snapshot),
		func(i int) string { return snapshot[i] },
		func(int) string { return separator },
	)
}

// FromPattern builds a counted source from a fmt pattern taking the 1-based item number
func FromPattern(count int, pattern, separator string) Source {
	if pattern == "" {
		pattern = "Item %d"
	}
	item := func(i int) string {
		if strings.Contains(pattern, "%") {
			return fmt.Sprintf(pattern, i+1)
		}
		return pattern
	}
	if separator == "" {
		return Counted(count, item)
	}
	return Separated(count, item, func(int) string { return separator })
}
