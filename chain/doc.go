// Package chain solves whole door codes through a keypad chain and
// aggregates the weighted batch total.
//
// Overview:
//
//   - A chain of depth N has N robot-operated directional pads between the
//     human and the robot at the numeric door pad. The human's own pad is the
//     outermost layer, so each numeric key transition is priced by
//     cost.Cost at layer depth N+1.
//   - Solve walks a code from the numeric Activate key, one transition per
//     character, and sums their costs. Identical (code, depth) pairs always
//     give identical answers.
//   - Complexity multiplies the press count by the code's leading numeric
//     value ("029A" → 29); SolveBatch sums it across all codes.
//
// Memo ownership:
//
//   - Every Solver owns one cost.Memo for its lifetime and reuses it for all
//     codes it solves. A Solver is therefore not safe for concurrent use.
//   - SolveBatch with WithWorkers(n > 1) gives each worker its own Solver, so
//     no memo is ever shared between goroutines.
//
// Errors:
//
//   - ErrMalformedCode: empty code or a symbol outside the numeric pad.
//     Codes are rejected before any memo access.
//   - ErrBadDepth: negative chain depth.
//   - ErrOptionViolation: an invalid option (e.g. zero workers).
//   - cost.ErrCostOverflow: the press count or total no longer fits in int64.
package chain
