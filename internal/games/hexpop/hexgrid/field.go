package hexgrid

import "sort"

// Lookup finds the bubble occupying a cell, or nil.
type Lookup interface {
	At(c Cell) *Bubble
}

// Field is a sparse index of active bubbles keyed by cell.
// It holds at most one bubble per cell.
type Field struct {
	cells map[Cell]*Bubble
}

// NewField indexes the active bubbles of the given slice. When two active
// bubbles claim the same cell the first one wins.
func NewField(bubbles []*Bubble) *Field {
	f := &Field{cells: make(map[Cell]*Bubble, len(bubbles))}
	for _, b := range bubbles {
		f.Put(b)
	}
	return f
}

// At returns the active bubble at c, or nil.
func (f *Field) At(c Cell) *Bubble {
	b := f.cells[c]
	if b == nil || !b.Active {
		return nil
	}
	return b
}

// Occupied reports whether an active bubble sits at c.
func (f *Field) Occupied(c Cell) bool {
	return f.At(c) != nil
}

// Put indexes b at its cell. It returns false if b is nil or inactive, or if
// another active bubble already holds the cell.
func (f *Field) Put(b *Bubble) bool {
	if b == nil || !b.Active {
		return false
	}
	if cur := f.At(b.Cell()); cur != nil && cur != b {
		return false
	}
	f.cells[b.Cell()] = b
	return true
}

// Remove drops whatever sits at c from the index and returns it.
func (f *Field) Remove(c Cell) *Bubble {
	b := f.cells[c]
	delete(f.cells, c)
	return b
}

// Len returns the number of active bubbles in the index.
func (f *Field) Len() int {
	n := 0
	for _, b := range f.cells {
		if b.Active {
			n++
		}
	}
	return n
}

// Empty reports whether no active bubble remains.
func (f *Field) Empty() bool {
	return f.Len() == 0
}

// Bubbles returns the active bubbles ordered by row, then column.
func (f *Field) Bubbles() []*Bubble {
	out := make([]*Bubble, 0, len(f.cells))
	for _, b := range f.cells {
		if b.Active {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}
