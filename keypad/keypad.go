// Package keypad provides the immutable keypad layouts used by the chain
// solver. A layout is a rectangular grid of single-character keys with one
// gap cell that is never enterable.
package keypad

import (
	"fmt"
	"strings"
)

// Numeric is the 4×3 door keypad with its gap in the bottom-left corner.
var Numeric = mustLayout(NumericID, "numeric", []string{
	"789",
	"456",
	"123",
	"_0A",
})

// Directional is the 2×3 robot keypad with its gap in the top-left corner.
var Directional = mustLayout(DirectionalID, "directional", []string{
	"_^A",
	"<v>",
})

var registry = map[string]*Layout{
	Numeric.name:     Numeric,
	Directional.name: Directional,
}

// Lookup returns the registered layout with the given name.
// Returns ErrUnknownLayout for any other name.
func Lookup(name string) (*Layout, error) {
	l, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLayout, name)
	}
	return l, nil
}

// NewLayout builds a layout from row strings, one byte per cell, where
// GapMarker marks the single gap. Rows are listed top to bottom.
// Returns ErrEmptyLayout, ErrNonRectangular, ErrGapCount or ErrDuplicateKey
// for malformed input.
// Complexity: O(R×C) time and memory.
func NewLayout(id ID, name string, rows []string) (*Layout, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyLayout
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	l := &Layout{
		id:    id,
		name:  name,
		rows:  h,
		cols:  w,
		pos:   make(map[Key]Coord, h*w),
		cells: make([][]Key, h),
		order: make([]Key, 0, h*w-1),
	}
	gaps := 0
	for r, row := range rows {
		l.cells[r] = make([]Key, w)
		for c := 0; c < w; c++ {
			ch := row[c]
			if ch == GapMarker {
				gaps++
				l.gap = Coord{Row: r, Col: c}
				continue
			}
			k := Key(ch)
			if _, dup := l.pos[k]; dup {
				return nil, fmt.Errorf("%w: %q in layout %s", ErrDuplicateKey, k.String(), name)
			}
			l.pos[k] = Coord{Row: r, Col: c}
			l.cells[r][c] = k
			l.order = append(l.order, k)
		}
	}
	if gaps != 1 {
		return nil, fmt.Errorf("%w: layout %s has %d", ErrGapCount, name, gaps)
	}

	return l, nil
}

func mustLayout(id ID, name string, rows []string) *Layout {
	l, err := NewLayout(id, name, rows)
	if err != nil {
		panic(err)
	}
	return l
}

// ID returns the layout identifier.
func (l *Layout) ID() ID { return l.id }

// Name returns the registry name of the layout.
func (l *Layout) Name() string { return l.name }

// Rows returns the grid height.
func (l *Layout) Rows() int { return l.rows }

// Cols returns the grid width.
func (l *Layout) Cols() int { return l.cols }

// Gap returns the coordinate of the gap cell.
func (l *Layout) Gap() Coord { return l.gap }

// Position returns the coordinate of key k.
// Returns ErrKeyNotFound if k is not on this layout.
// Complexity: O(1).
func (l *Layout) Position(k Key) (Coord, error) {
	c, ok := l.pos[k]
	if !ok {
		return Coord{}, fmt.Errorf("%w: %q on %s", ErrKeyNotFound, k.String(), l.name)
	}
	return c, nil
}

// Has reports whether k is a key of this layout.
func (l *Layout) Has(k Key) bool {
	_, ok := l.pos[k]
	return ok
}

// KeyAt returns the key at c; ok is false for the gap or out-of-bounds cells.
func (l *Layout) KeyAt(c Coord) (k Key, ok bool) {
	if !l.Enterable(c) {
		return 0, false
	}
	return l.cells[c.Row][c.Col], true
}

// InBounds reports whether c lies inside the grid, gap included.
// Complexity: O(1).
func (l *Layout) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < l.rows && c.Col >= 0 && c.Col < l.cols
}

// Enterable reports whether a pointer may rest on c.
func (l *Layout) Enterable(c Coord) bool {
	return l.InBounds(c) && c != l.gap
}

// Keys returns all keys in row-major order. The slice is a copy.
func (l *Layout) Keys() []Key {
	out := make([]Key, len(l.order))
	copy(out, l.order)
	return out
}

// String draws the layout one row per line with '_' on the gap.
func (l *Layout) String() string {
	var b strings.Builder
	for r := 0; r < l.rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < l.cols; c++ {
			if (Coord{Row: r, Col: c}) == l.gap {
				b.WriteByte(GapMarker)
				continue
			}
			b.WriteByte(byte(l.cells[r][c]))
		}
	}
	return b.String()
}

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|.
func Manhattan(a, b Coord) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
