// Package keypadchain computes how few buttons a human has to press when a
// door code can only be typed through a chain of robots, each robot steering
// the keypad of the next one.
//
// 🚪 What is keypadchain?
//
//	A small, dependency-light engine that brings together:
//		• Keypad layouts: the numeric door pad and the directional robot pad
//		• Move generation: the two shortest gap-free orderings between keys
//		• Layer costs: memoized recursion over any number of robot layers
//		• Chain solving: per-code press counts and weighted batch totals
//		• Simulation: press-by-press replay and exhaustive search as an oracle
//
// Quick ASCII picture of a depth-2 chain:
//
//	human ─▶ [^A<v>] ─▶ robot ─▶ [^A<v>] ─▶ robot ─▶ [^A<v>] ─▶ robot ─▶ [789/456/123/0A]
//	          layer 3             layer 2             layer 1             door
//
// Packages:
//
//	keypad/    immutable layouts, key coordinates and the gap cell
//	moves/     candidate move sequences between two keys
//	cost/      explicit memo and the recursive layer cost
//	chain/     code parsing, Solver, SolveBatch
//	simulate/  chain machine, Replay and breadth-first Shortest
//
// The CLI lives in cmd/keypadchain:
//
//	go install github.com/katalvlaran/keypadchain/cmd/keypadchain@latest
//	keypadchain solve --depth 25 codes.txt
package keypadchain
