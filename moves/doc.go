// Package moves generates the candidate move sequences that carry a keypad
// pointer from one key to another and press it.
//
// What:
//
//   - Candidates(layout, from, to) returns one or two Sequences, each made of
//     single-step cardinal moves followed by a single Activate.
//   - Every candidate has exactly Manhattan(from, to) moves; detours are never
//     produced because each extra move costs more at every layer above.
//   - Only two orderings exist: all column moves then all row moves, and all
//     row moves then all column moves. An ordering whose walk touches the gap
//     is dropped; identical orderings (straight lines) collapse into one.
//
// Why only two orderings:
//
//	The layer above pays per direction change, not per move. Grouping equal
//	moves minimizes the changes, so interleaved orderings never win. The
//	cost memo keys on (from, to, depth) alone and depends on this.
//
// Complexity:
//
//   - Candidates, Between: O(R+C) time and memory per call.
//
// Errors:
//
//   - keypad.ErrKeyNotFound: from or to is not on the layout.
//   - ErrUnreachable: both orderings cross the gap. This never happens for
//     the fixed layouts and signals an internal logic error.
package moves
