package cost

import (
	"fmt"

	"github.com/katalvlaran/keypadchain/keypad"
	"github.com/katalvlaran/keypadchain/moves"
)

// DefaultExpandLimit caps Expand output at one million presses.
const DefaultExpandLimit = 1 << 20

// Expand reconstructs one optimal human-level press sequence for the
// transition from→to on l at the given depth. Its length always equals
// Cost(m, l, from, to, depth). When several candidates tie, the first one
// returned by moves.Candidates is used.
// Returns ErrExpansionTooLarge if the cost exceeds limit (limit ≤ 0 means
// DefaultExpandLimit).
func Expand(m *Memo, l *keypad.Layout, from, to keypad.Key, depth int, limit int64) (moves.Sequence, error) {
	if limit <= 0 {
		limit = DefaultExpandLimit
	}
	total, err := Cost(m, l, from, to, depth)
	if err != nil {
		return nil, err
	}
	if total > limit {
		return nil, fmt.Errorf("%w: %d presses > %d", ErrExpansionTooLarge, total, limit)
	}

	out := make(moves.Sequence, 0, total)
	return expandInto(m, l, from, to, depth, out)
}

func expandInto(m *Memo, l *keypad.Layout, from, to keypad.Key, depth int, out moves.Sequence) (moves.Sequence, error) {
	seqs, err := moves.Candidates(l, from, to)
	if err != nil {
		return nil, err
	}
	if depth == 1 {
		return append(out, seqs[0]...), nil
	}

	want, err := Cost(m, l, from, to, depth)
	if err != nil {
		return nil, err
	}
	for _, s := range seqs {
		c, err := SequenceCost(m, s, depth-1)
		if err != nil {
			return nil, err
		}
		if c != want {
			continue
		}
		cur := keypad.Activate
		for _, k := range s {
			if out, err = expandInto(m, keypad.Directional, cur, k, depth-1, out); err != nil {
				return nil, err
			}
			cur = k
		}
		return out, nil
	}
	// Cost picked one of these candidates, so a match always exists.
	return nil, fmt.Errorf("%w: no candidate matches cost %d for %s→%s", moves.ErrUnreachable, want, from, to)
}
