// Package cost answers the central question of a keypad chain: how many
// presses must the human make so that the pointer on some layout moves from
// key A to key B and presses it, given `depth` directional layers of
// indirection (the current one included).
//
// Overview:
//
//   - Depth 1 is the human's own pad. The cost is the length of the move
//     sequence, i.e. Manhattan(A, B) + 1; both orderings tie.
//   - Depth d > 1: each candidate move sequence from package moves must be
//     typed on the DIRECTIONAL pad one level up. That pad's pointer starts on
//     its Activate key (every press sequence ends there), so the sequence
//     costs the sum of the DIRECTIONAL transitions A→s[0], s[0]→s[1], ... at
//     depth d-1. The cheapest candidate wins.
//   - Results are memoized on the explicit composite key Transition
//     {layout, from, to, depth}. Every layer below returns to Activate after
//     each press, so a transition's cost never depends on history.
//
// The memo is an explicit *Memo value threaded through every call. It is
// owned by one caller (normally one chain.Solver) and is not safe for
// concurrent use; give each goroutine its own Memo.
//
// Complexity:
//
//   - At most |keys|² × depth distinct transitions per layout: 121 per level
//     on the numeric pad, 25 per level on the directional pad.
//   - Each miss does O(1) work besides the recursive lookups, so a warm memo
//     answers any code in O(len(code)) and a cold one in O(depth).
//
// Errors:
//
//   - ErrNilMemo, ErrNilLayout: missing collaborators.
//   - ErrBadDepth: depth < 1.
//   - ErrCostOverflow: the cost no longer fits in int64 (very deep chains).
//   - ErrExpansionTooLarge: Expand was asked for a sequence above its limit.
//   - keypad.ErrKeyNotFound, moves.ErrUnreachable are passed through.
package cost
