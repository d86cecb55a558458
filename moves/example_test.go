package moves_test

import (
	"fmt"

	"github.com/katalvlaran/keypadchain/keypad"
	"github.com/katalvlaran/keypadchain/moves"
)

// ExampleCandidates lists the orderings from the numeric Activate key to '7'.
// Going left first would cross the gap, so only the up-first walk survives.
func ExampleCandidates() {
	seqs, err := moves.Candidates(keypad.Numeric, keypad.Activate, '7')
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, s := range seqs {
		fmt.Println(s)
	}

	seqs, _ = moves.Candidates(keypad.Numeric, '2', '9')
	fmt.Println(seqs)

	// Output:
	// ^^^<<A
	// [>^^A ^^>A]
}
