// Package simulate executes human key presses through a keypad chain one
// press at a time and searches the chain's state space for the shortest
// press sequence that types a code.
//
// It shares no memoization or path-ordering assumptions with package cost,
// which makes it an independent oracle for small chains.
//
// Machine model:
//
//   - A chain of N robots has N directional pads and one numeric pad, each
//     with a pointer that starts on its Activate key.
//   - A move pressed at level i moves the pointer of pad i; pad N is the
//     numeric pad. Entering a gap or leaving a pad is illegal.
//   - Activate pressed at level i presses the key under pad i's pointer at
//     level i+1, or emits that numeric key when i == N.
//
// Search:
//
//	Shortest runs a breadth-first search over (pointers, typed prefix) states.
//	Each human press is one edge, so the first state with the whole code typed
//	is reached by a minimal number of presses.
//
// Complexity:
//
//   - Replay: O(len(presses) × N).
//   - Shortest: O(5^N × 11 × len(code)) states, each with 5 successors.
//     Practical only for small N.
//
// Errors:
//
//   - ErrGapEntered: a pointer moved onto a gap.
//   - ErrOffPad: a pointer moved outside its pad.
//   - ErrWrongKey: Replay saw a press that is not a directional key.
//   - ErrSearchExhausted: Shortest hit its state cap or ran out of states.
//   - ErrOptionViolation: an invalid Option was supplied.
package simulate
