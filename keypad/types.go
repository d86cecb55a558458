package keypad

import "errors"

// Sentinel errors for layout construction and lookup.
var (
	// ErrKeyNotFound indicates a key is not present on the layout.
	ErrKeyNotFound = errors.New("keypad: key not found on layout")
	// ErrUnknownLayout indicates Lookup was asked for an unregistered layout.
	ErrUnknownLayout = errors.New("keypad: unknown layout")
	// ErrEmptyLayout indicates the layout has no rows or no columns.
	ErrEmptyLayout = errors.New("keypad: layout must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("keypad: all rows must have the same length")
	// ErrGapCount indicates the layout does not have exactly one gap cell.
	ErrGapCount = errors.New("keypad: layout must have exactly one gap")
	// ErrDuplicateKey indicates a key appears on more than one cell.
	ErrDuplicateKey = errors.New("keypad: duplicate key")
)

// Key is a single button symbol.
type Key byte

// Keys shared by both layouts and the directional moves.
const (
	Activate Key = 'A'
	Up       Key = '^'
	Down     Key = 'v'
	Left     Key = '<'
	Right    Key = '>'
)

// GapMarker marks the gap cell in the row strings given to NewLayout.
const GapMarker = '_'

// String renders the key as its one-character label.
func (k Key) String() string { return string(rune(k)) }

// IsMove reports whether k is one of the four directional moves.
func (k Key) IsMove() bool {
	return k == Up || k == Down || k == Left || k == Right
}

// Coord is a (Row, Col) cell position; row 0 is the top row.
type Coord struct {
	Row, Col int
}

// Add returns c shifted by the unit step of a move key.
// Non-move keys leave c unchanged.
func (c Coord) Add(k Key) Coord {
	switch k {
	case Up:
		c.Row--
	case Down:
		c.Row++
	case Left:
		c.Col--
	case Right:
		c.Col++
	}
	return c
}

// ID identifies a layout inside composite memo keys.
type ID uint8

const (
	// NumericID identifies the numeric door pad.
	NumericID ID = iota + 1
	// DirectionalID identifies the directional robot pad.
	DirectionalID
)

// Layout is an immutable key→coordinate map with one gap cell.
// rows×cols bounds every coordinate; cells[r][c] holds the key at (r,c)
// and is zero on the gap.
type Layout struct {
	id    ID
	name  string
	rows  int
	cols  int
	gap   Coord
	pos   map[Key]Coord
	cells [][]Key
	order []Key
}
