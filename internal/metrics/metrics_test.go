package metrics

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keypadchain/chain"
	"github.com/katalvlaran/keypadchain/cost"
	"github.com/katalvlaran/keypadchain/keypad"
)

func TestRecorder_CountsMemoActivity(t *testing.T) {
	r := New("test")
	m := cost.NewMemo(cost.WithObserver(r))

	_, err := cost.Cost(m, keypad.Numeric, keypad.Activate, '0', 3)
	require.NoError(t, err)
	_, err = cost.Cost(m, keypad.Numeric, keypad.Activate, '0', 3)
	require.NoError(t, err)

	st := m.Stats()
	hits := testutil.ToFloat64(r.memoHits.WithLabelValues("numeric")) +
		testutil.ToFloat64(r.memoHits.WithLabelValues("directional"))
	misses := testutil.ToFloat64(r.memoMisses.WithLabelValues("numeric")) +
		testutil.ToFloat64(r.memoMisses.WithLabelValues("directional"))
	assert.Equal(t, float64(st.Hits), hits)
	assert.Equal(t, float64(st.Misses), misses)
	assert.Equal(t, float64(1), testutil.ToFloat64(r.memoHits.WithLabelValues("numeric")))
	assert.Equal(t, float64(1), testutil.ToFloat64(r.memoMisses.WithLabelValues("numeric")))
}

func TestRecorder_ObserveReportAndTextfile(t *testing.T) {
	r := New("keypadchain")
	codes := []chain.Code{"029A", "980A"}
	rep, err := chain.SolveBatch(context.Background(), codes, 2, chain.WithObserver(r), chain.WithWorkers(2))
	require.NoError(t, err)
	r.ObserveReport(rep)

	assert.Equal(t, float64(2), testutil.ToFloat64(r.codes))
	assert.Equal(t, float64(rep.Total), testutil.ToFloat64(r.total))
	assert.Equal(t, float64(rep.Stats.Entries), testutil.ToFloat64(r.entries))

	path := filepath.Join(t.TempDir(), "keypadchain.prom")
	require.NoError(t, r.WriteTextfile(path))
	body, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(body)
	assert.True(t, strings.Contains(text, "keypadchain_codes_solved_total 2"), text)
	assert.Contains(t, text, `keypadchain_memo_misses_total{layout="directional"}`)
}

func TestLayoutLabel(t *testing.T) {
	assert.Equal(t, "numeric", layoutLabel(keypad.NumericID))
	assert.Equal(t, "directional", layoutLabel(keypad.DirectionalID))
	assert.Equal(t, "7", layoutLabel(7))
}
