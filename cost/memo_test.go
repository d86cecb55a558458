package cost_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keypadchain/cost"
	"github.com/katalvlaran/keypadchain/keypad"
)

type countingObserver struct {
	hits, misses map[int]int
}

func newCountingObserver() *countingObserver {
	return &countingObserver{hits: map[int]int{}, misses: map[int]int{}}
}

func (o *countingObserver) MemoHit(t cost.Transition)  { o.hits[t.Depth]++ }
func (o *countingObserver) MemoMiss(t cost.Transition) { o.misses[t.Depth]++ }

// TestMemo_SecondCallIsServedFromMemo verifies determinism and that the
// repeated call is a single hit with no new entries.
func TestMemo_SecondCallIsServedFromMemo(t *testing.T) {
	obs := newCountingObserver()
	m := cost.NewMemo(cost.WithObserver(obs))

	first, err := cost.Cost(m, keypad.Numeric, '0', '9', 8)
	require.NoError(t, err)
	before := m.Stats()
	require.Positive(t, before.Misses)
	require.Equal(t, m.Len(), before.Entries)

	second, err := cost.Cost(m, keypad.Numeric, '0', '9', 8)
	require.NoError(t, err)
	after := m.Stats()

	assert.Equal(t, first, second)
	assert.Equal(t, before.Hits+1, after.Hits)
	assert.Equal(t, before.Misses, after.Misses)
	assert.Equal(t, before.Entries, after.Entries)
	assert.Equal(t, 1, obs.misses[8], "top transition computed once")
	assert.Equal(t, 1, obs.hits[8], "top transition served once from memo")
}

func TestMemo_LookupDoesNotCount(t *testing.T) {
	m := cost.NewMemo()
	_, err := cost.Cost(m, keypad.Directional, keypad.Activate, keypad.Left, 3)
	require.NoError(t, err)
	s := m.Stats()

	v, ok := m.Lookup(cost.Transition{Layout: keypad.DirectionalID, From: keypad.Activate, To: keypad.Left, Depth: 3})
	require.True(t, ok)
	assert.Equal(t, int64(26), v)
	_, ok = m.Lookup(cost.Transition{Layout: keypad.NumericID, From: keypad.Activate, To: keypad.Left, Depth: 3})
	assert.False(t, ok, "layouts must not share entries")
	assert.Equal(t, s, m.Stats())
}

// TestMemo_BoundedEntries checks the memo stays within |keys|² per level.
func TestMemo_BoundedEntries(t *testing.T) {
	m := cost.NewMemo()
	const depth = 25
	for _, a := range keypad.Numeric.Keys() {
		for _, b := range keypad.Numeric.Keys() {
			_, err := cost.Cost(m, keypad.Numeric, a, b, depth)
			require.NoError(t, err)
		}
	}
	assert.LessOrEqual(t, m.Len(), 121+25*(depth-1))
}

func TestWithObserver_NilIgnored(t *testing.T) {
	m := cost.NewMemo(cost.WithObserver(nil))
	_, err := cost.Cost(m, keypad.Numeric, 'A', '1', 3)
	require.NoError(t, err)
}
