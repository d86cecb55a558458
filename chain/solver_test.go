package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keypadchain/chain"
	"github.com/katalvlaran/keypadchain/cost"
	"github.com/katalvlaran/keypadchain/simulate"
)

var exampleCodes = []chain.Code{"029A", "980A", "179A", "456A", "379A"}

func TestNewSolver_Validation(t *testing.T) {
	_, err := chain.NewSolver(-1)
	require.ErrorIs(t, err, chain.ErrBadDepth)

	_, err = chain.NewSolver(2, chain.WithWorkers(0))
	require.ErrorIs(t, err, chain.ErrOptionViolation)

	_, err = chain.NewSolver(2, chain.WithExpandLimit(-5))
	require.ErrorIs(t, err, chain.ErrOptionViolation)

	s, err := chain.NewSolver(2, chain.WithLogger(nil), chain.WithObserver(nil))
	require.NoError(t, err)
	assert.Equal(t, 2, s.Depth())
}

// TestSolve_TwoRobots pins the reference values for a depth-2 chain.
func TestSolve_TwoRobots(t *testing.T) {
	want := []int64{68, 60, 68, 64, 64}
	s, err := chain.NewSolver(2)
	require.NoError(t, err)
	for i, c := range exampleCodes {
		got, err := s.Solve(c)
		require.NoError(t, err)
		assert.Equal(t, want[i], got, "code %s", c)
	}
}

func TestSolve_TwentyFiveRobots(t *testing.T) {
	want := []int64{82050061710, 72242026390, 81251039228, 80786362258, 77985628636}
	s, err := chain.NewSolver(25)
	require.NoError(t, err)
	for i, c := range exampleCodes {
		got, err := s.Solve(c)
		require.NoError(t, err)
		assert.Equal(t, want[i], got, "code %s", c)
	}
}

// TestSolve_MatchesExhaustiveSearch cross-checks the recursive solver against
// a state-space search that shares none of its shortcuts.
func TestSolve_MatchesExhaustiveSearch(t *testing.T) {
	codes := append([]chain.Code{"A", "0A", "7A", "1590A", "3A7A"}, exampleCodes...)
	for depth := 0; depth <= 2; depth++ {
		s, err := chain.NewSolver(depth)
		require.NoError(t, err)
		for _, c := range codes {
			got, err := s.Solve(c)
			require.NoError(t, err)
			want, err := simulate.Shortest(string(c), depth)
			require.NoError(t, err)
			require.Equal(t, int64(want), got, "code %s depth %d", c, depth)
		}
	}
}

func TestSolve_DeterministicAndMemoized(t *testing.T) {
	s, err := chain.NewSolver(25)
	require.NoError(t, err)

	first, err := s.Solve("029A")
	require.NoError(t, err)
	warm := s.Stats()

	second, err := s.Solve("029A")
	require.NoError(t, err)
	after := s.Stats()

	assert.Equal(t, first, second)
	assert.Equal(t, warm.Misses, after.Misses, "repeat solve must not recompute")
	assert.Equal(t, warm.Entries, after.Entries)
	assert.Equal(t, warm.Hits+4, after.Hits, "one hit per character")

	fresh, err := chain.NewSolver(25)
	require.NoError(t, err)
	third, err := fresh.Solve("029A")
	require.NoError(t, err)
	assert.Equal(t, first, third)
}

func TestSolve_MalformedLeavesMemoUntouched(t *testing.T) {
	s, err := chain.NewSolver(2)
	require.NoError(t, err)
	_, err = s.Solve("02#A")
	require.ErrorIs(t, err, chain.ErrMalformedCode)
	_, err = s.Solve("")
	require.ErrorIs(t, err, chain.ErrMalformedCode)
	assert.Equal(t, cost.Stats{}, s.Stats())
}

func TestSolve_Overflow(t *testing.T) {
	s, err := chain.NewSolver(120)
	require.NoError(t, err)
	_, err = s.Solve("7A")
	require.ErrorIs(t, err, cost.ErrCostOverflow)
}

func TestComplexity(t *testing.T) {
	s, err := chain.NewSolver(2)
	require.NoError(t, err)
	r, err := s.Complexity("029A")
	require.NoError(t, err)
	assert.Equal(t, chain.Result{Code: "029A", Presses: 68, Value: 29, Complexity: 68 * 29}, r)
}

// TestPresses_ReplaysToCode checks the reconstructed press string types the
// code and is exactly as long as the solved cost.
func TestPresses_ReplaysToCode(t *testing.T) {
	for depth := 0; depth <= 4; depth++ {
		s, err := chain.NewSolver(depth)
		require.NoError(t, err)
		for _, c := range exampleCodes {
			presses, err := s.Presses(c)
			require.NoError(t, err)
			n, err := s.Solve(c)
			require.NoError(t, err)
			require.Len(t, presses, int(n), "code %s depth %d", c, depth)

			typed, err := simulate.Replay(presses, depth)
			require.NoError(t, err)
			require.Equal(t, string(c), typed, "depth %d", depth)
		}
	}
}

func TestPresses_Limit(t *testing.T) {
	s, err := chain.NewSolver(10, chain.WithExpandLimit(100))
	require.NoError(t, err)
	_, err = s.Presses("029A")
	require.ErrorIs(t, err, cost.ErrExpansionTooLarge)
}
