package items

// SlotKind distinguishes items from separators in a region
type SlotKind int

const (
	SlotItem SlotKind = iota
	SlotSeparator
)

func (k SlotKind) String() string {
	if k == SlotSeparator {
		return "separator"
	}
	return "item"
}

// Slot is one renderable position in the strip
type Slot struct {
	Kind    SlotKind
	Index   int // item index, or the index of the item before a separator
	Content string
}

// Build materializes the slots of a source in order.
// Separators go strictly between consecutive items.
func Build(src Source) ([]Slot, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}

	n := src.Len()
	capacity := n
	if src.SeparatorBuilder != nil && n > 1 {
		capacity += n - 1
	}

	slots := make([]Slot, 0, capacity)
	for i := 0; i < n; i++ {
		if i > 0 && src.SeparatorBuilder != nil {
			slots = append(slots, Slot{Kind: SlotSeparator, Index: i - 1, Content: src.SeparatorBuilder(i - 1)})
		}
		slots = append(slots, Slot{Kind: SlotItem, Index: i, Content: src.Item(i)})
	}
	return slots, nil
}

// ItemCount counts item slots
func ItemCount(slots []Slot) int {
	n := 0
	for _, s := range slots {
		if s.Kind == SlotItem {
			n++
		}
	}
	return n
}
