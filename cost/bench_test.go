package cost_test

import (
	"testing"

	"github.com/katalvlaran/keypadchain/cost"
	"github.com/katalvlaran/keypadchain/keypad"
)

// BenchmarkCost_Cold measures a fresh memo for one deep numeric transition.
// Complexity: O(depth)
func BenchmarkCost_Cold(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := cost.Cost(cost.NewMemo(), keypad.Numeric, 'A', '7', 25); err != nil {
			b.Fatalf("Cost failed: %v", err)
		}
	}
}

// BenchmarkCost_Warm measures lookups served entirely from the memo.
func BenchmarkCost_Warm(b *testing.B) {
	m := cost.NewMemo()
	if _, err := cost.Cost(m, keypad.Numeric, 'A', '7', 25); err != nil {
		b.Fatalf("setup failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = cost.Cost(m, keypad.Numeric, 'A', '7', 25)
	}
}
