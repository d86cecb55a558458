package simulate_test

import (
	"fmt"

	"github.com/katalvlaran/keypadchain/simulate"
)

// ExampleReplay types "029A" by steering the door robot through one
// intermediate robot.
func ExampleReplay() {
	typed, err := simulate.Replay("v<<A>>^A<A>AvA<^AA>A<vAAA>^A", 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(typed)

	// Output:
	// 029A
}

// ExampleShortest finds the minimal press count by exhaustive search.
func ExampleShortest() {
	n, err := simulate.Shortest("029A", 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(n)

	// Output:
	// 68
}
