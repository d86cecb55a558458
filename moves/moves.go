package moves

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/keypadchain/keypad"
)

// ErrUnreachable indicates no gap-free shortest ordering exists between two cells.
var ErrUnreachable = errors.New("moves: no legal ordering between keys")

// Sequence is a run of directional moves terminated by keypad.Activate.
type Sequence []keypad.Key

// String renders the sequence as its key labels, e.g. "<^^A".
func (s Sequence) String() string {
	var b strings.Builder
	b.Grow(len(s))
	for _, k := range s {
		b.WriteByte(byte(k))
	}
	return b.String()
}

// Moves returns the sequence without its trailing Activate.
func (s Sequence) Moves() []keypad.Key {
	if len(s) == 0 {
		return nil
	}
	return s[:len(s)-1]
}

// Candidates returns the gap-free shortest orderings that move the pointer
// from key `from` to key `to` on layout l and press it.
// Returns keypad.ErrKeyNotFound for keys off the layout and ErrUnreachable
// when both orderings cross the gap.
func Candidates(l *keypad.Layout, from, to keypad.Key) ([]Sequence, error) {
	a, err := l.Position(from)
	if err != nil {
		return nil, err
	}
	b, err := l.Position(to)
	if err != nil {
		return nil, err
	}
	seqs, err := Between(l, a, b)
	if err != nil {
		return nil, fmt.Errorf("%w: %s→%s on %s", err, from, to, l.Name())
	}
	return seqs, nil
}

// Between is the coordinate-level form of Candidates. The columns-first
// ordering, when legal, comes first. Endpoints that are off the grid or on
// the gap yield ErrUnreachable.
// Complexity: O(R+C).
func Between(l *keypad.Layout, a, b keypad.Coord) ([]Sequence, error) {
	if !l.Enterable(a) || !l.Enterable(b) {
		return nil, ErrUnreachable
	}
	if a == b {
		return []Sequence{{keypad.Activate}}, nil
	}
	vert, horiz := runs(a, b)

	out := make([]Sequence, 0, 2)
	for _, order := range [2][2][]keypad.Key{{horiz, vert}, {vert, horiz}} {
		seq := make(Sequence, 0, len(vert)+len(horiz)+1)
		seq = append(seq, order[0]...)
		seq = append(seq, order[1]...)
		seq = append(seq, keypad.Activate)
		if !legal(l, a, seq.Moves()) {
			continue
		}
		if len(out) == 1 && out[0].String() == seq.String() {
			continue // straight line: both orderings are the same walk
		}
		out = append(out, seq)
	}
	if len(out) == 0 {
		return nil, ErrUnreachable
	}
	return out, nil
}

// runs returns the vertical and horizontal move runs from a to b.
func runs(a, b keypad.Coord) (vert, horiz []keypad.Key) {
	dr, dc := b.Row-a.Row, b.Col-a.Col
	vk, hk := keypad.Down, keypad.Right
	if dr < 0 {
		vk, dr = keypad.Up, -dr
	}
	if dc < 0 {
		hk, dc = keypad.Left, -dc
	}
	vert = make([]keypad.Key, dr)
	for i := range vert {
		vert[i] = vk
	}
	horiz = make([]keypad.Key, dc)
	for i := range horiz {
		horiz[i] = hk
	}
	return vert, horiz
}

// legal walks moves from start and reports whether every visited cell is enterable.
func legal(l *keypad.Layout, start keypad.Coord, moves []keypad.Key) bool {
	cur := start
	for _, m := range moves {
		cur = cur.Add(m)
		if !l.Enterable(cur) {
			return false
		}
	}
	return true
}
