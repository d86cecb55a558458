package cost

import (
	"fmt"
	"math"

	"github.com/katalvlaran/keypadchain/keypad"
	"github.com/katalvlaran/keypadchain/moves"
)

// Cost returns the minimal number of human presses that move the pointer on
// layout l from key `from` to key `to` and press it, with `depth` directional
// layers remaining (depth 1 is the human's own pad).
//
// Preconditions (in order):
//  1. m is non-nil (ErrNilMemo).
//  2. l is non-nil (ErrNilLayout).
//  3. depth ≥ 1 (ErrBadDepth).
//  4. from and to are keys of l (keypad.ErrKeyNotFound).
//
// Complexity: amortized O(1) on a warm memo; O(depth) transitions on a cold one.
func Cost(m *Memo, l *keypad.Layout, from, to keypad.Key, depth int) (int64, error) {
	if m == nil {
		return 0, ErrNilMemo
	}
	if l == nil {
		return 0, ErrNilLayout
	}
	if depth < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrBadDepth, depth)
	}

	key := Transition{Layout: l.ID(), From: from, To: to, Depth: depth}
	if v, ok := m.fetch(key); ok {
		return v, nil
	}

	seqs, err := moves.Candidates(l, from, to)
	if err != nil {
		return 0, err
	}
	best := int64(math.MaxInt64)
	for _, s := range seqs {
		c, err := typeCost(m, s, depth)
		if err != nil {
			return 0, err
		}
		if c < best {
			best = c
		}
	}
	m.store(key, best)

	return best, nil
}

// SequenceCost returns the presses needed to type seq on the DIRECTIONAL pad
// at the given depth, starting from its Activate key.
func SequenceCost(m *Memo, seq moves.Sequence, depth int) (int64, error) {
	var (
		total int64
		cur   = keypad.Activate
	)
	for _, k := range seq {
		c, err := Cost(m, keypad.Directional, cur, k, depth)
		if err != nil {
			return 0, err
		}
		if total, err = add(total, c); err != nil {
			return 0, fmt.Errorf("%w at depth %d", err, depth)
		}
		cur = k
	}
	return total, nil
}

// typeCost prices one candidate sequence chosen at `depth`.
func typeCost(m *Memo, s moves.Sequence, depth int) (int64, error) {
	if depth == 1 {
		return int64(len(s)), nil
	}
	return SequenceCost(m, s, depth-1)
}

func add(a, b int64) (int64, error) {
	if a > math.MaxInt64-b {
		return 0, ErrCostOverflow
	}
	return a + b, nil
}
