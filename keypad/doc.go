// Package keypad is the registry of the two fixed keypad layouts driven by
// a keypad chain: the NUMERIC door pad and the DIRECTIONAL robot pad.
//
// What:
//
//   - Layout maps every Key to an integer (Row, Col) coordinate.
//   - Each layout has exactly one gap cell that no pointer may ever enter.
//   - Numeric and Directional are built once at package init and never change.
//
// Layouts (row 0 at the top, '_' marks the gap):
//
//	NUMERIC (4×3)      DIRECTIONAL (2×3)
//	+---+---+---+      +---+---+---+
//	| 7 | 8 | 9 |      | _ | ^ | A |
//	+---+---+---+      +---+---+---+
//	| 4 | 5 | 6 |      | < | v | > |
//	+---+---+---+      +---+---+---+
//	| 1 | 2 | 3 |
//	+---+---+---+
//	| _ | 0 | A |
//	+---+---+---+
//
// Complexity:
//
//   - Position, KeyAt, InBounds, Enterable: O(1).
//   - NewLayout: O(R×C).
//
// Errors:
//
//   - ErrKeyNotFound: the requested key is absent from the layout (fatal configuration error).
//   - ErrUnknownLayout: Lookup was given a name that is not registered.
//   - ErrEmptyLayout: NewLayout got no rows or an empty row.
//   - ErrNonRectangular: NewLayout rows have differing lengths.
//   - ErrGapCount: NewLayout did not find exactly one gap marker.
//   - ErrDuplicateKey: NewLayout found the same key twice.
package keypad
