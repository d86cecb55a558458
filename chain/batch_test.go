package chain_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/keypadchain/chain"
)

func TestSolveBatch_ReferenceTotals(t *testing.T) {
	cases := []struct {
		depth int
		total int64
	}{
		{2, 126384},
		{25, 154115708116294},
	}
	for _, tc := range cases {
		rep, err := chain.SolveBatch(context.Background(), exampleCodes, tc.depth)
		require.NoError(t, err)
		assert.Equal(t, tc.total, rep.Total, "depth %d", tc.depth)
		assert.Equal(t, tc.depth, rep.Depth)
		require.Len(t, rep.Results, len(exampleCodes))
		for i, r := range rep.Results {
			assert.Equal(t, exampleCodes[i], r.Code, "results keep input order")
		}
	}
}

// TestSolveBatch_WorkersAgree checks parallel batches give the same report as
// a sequential one; run with -race to confirm memos are never shared.
func TestSolveBatch_WorkersAgree(t *testing.T) {
	codes := append(append([]chain.Code{}, exampleCodes...), "123A", "000A", "964A", "7A")
	seq, err := chain.SolveBatch(context.Background(), codes, 25)
	require.NoError(t, err)
	for _, w := range []int{2, 3, 16} {
		par, err := chain.SolveBatch(context.Background(), codes, 25, chain.WithWorkers(w))
		require.NoError(t, err)
		assert.Equal(t, seq.Results, par.Results, "workers=%d", w)
		assert.Equal(t, seq.Total, par.Total, "workers=%d", w)
	}
}

func TestSolveBatch_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := chain.SolveBatch(ctx, exampleCodes, -1)
	require.ErrorIs(t, err, chain.ErrBadDepth)

	_, err = chain.SolveBatch(ctx, []chain.Code{"029A", "9x8A"}, 2)
	require.ErrorIs(t, err, chain.ErrMalformedCode)
	assert.Contains(t, err.Error(), "code 2")

	_, err = chain.SolveBatch(ctx, exampleCodes, 2, chain.WithWorkers(-2))
	require.ErrorIs(t, err, chain.ErrOptionViolation)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = chain.SolveBatch(cancelled, exampleCodes, 2)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSolveBatch_Empty(t *testing.T) {
	rep, err := chain.SolveBatch(context.Background(), nil, 2, chain.WithWorkers(4))
	require.NoError(t, err)
	assert.Zero(t, rep.Total)
	assert.Empty(t, rep.Results)
}

func TestSolveBatch_Logs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	_, err := chain.SolveBatch(context.Background(), exampleCodes[:2], 2, chain.WithLogger(zap.New(core)))
	require.NoError(t, err)

	assert.Equal(t, 2, logs.FilterMessage("code solved").Len())
	batch := logs.FilterMessage("batch solved").All()
	require.Len(t, batch, 1)
	assert.Equal(t, int64(68*29+60*980), batch[0].ContextMap()["total"])
}
