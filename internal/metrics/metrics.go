// Package metrics exposes solver activity as Prometheus collectors and
// writes them to a node-exporter style text file.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/keypadchain/chain"
	"github.com/katalvlaran/keypadchain/cost"
	"github.com/katalvlaran/keypadchain/keypad"
)

// Recorder implements cost.Observer. Its collectors are safe for concurrent
// use, so one Recorder may observe every worker's memo.
type Recorder struct {
	registry   *prometheus.Registry
	memoHits   *prometheus.CounterVec
	memoMisses *prometheus.CounterVec
	codes      prometheus.Counter
	presses    prometheus.Histogram
	total      prometheus.Gauge
	entries    prometheus.Gauge
}

var _ cost.Observer = (*Recorder)(nil)

// New creates a Recorder with its own registry under namespace.
func New(namespace string) *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		memoHits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "memo_hits_total",
				Help:      "Transition cost lookups served from the memo",
			},
			[]string{"layout"},
		),
		memoMisses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "memo_misses_total",
				Help:      "Transition costs computed and stored in the memo",
			},
			[]string{"layout"},
		),
		codes: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "codes_solved_total",
				Help:      "Door codes solved",
			},
		),
		presses: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "code_presses",
				Help:      "Minimal human presses per code",
				Buckets:   prometheus.ExponentialBuckets(10, 10, 12),
			},
		),
		total: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "batch_complexity_total",
				Help:      "Weighted sum of the last batch",
			},
		),
		entries: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "memo_entries",
				Help:      "Distinct transitions stored across worker memos in the last batch",
			},
		),
	}
	r.registry.MustRegister(r.memoHits, r.memoMisses, r.codes, r.presses, r.total, r.entries)
	return r
}

// MemoHit implements cost.Observer.
func (r *Recorder) MemoHit(t cost.Transition) {
	r.memoHits.WithLabelValues(layoutLabel(t.Layout)).Inc()
}

// MemoMiss implements cost.Observer.
func (r *Recorder) MemoMiss(t cost.Transition) {
	r.memoMisses.WithLabelValues(layoutLabel(t.Layout)).Inc()
}

// ObserveReport records the per-code and batch figures of rep.
func (r *Recorder) ObserveReport(rep *chain.Report) {
	for _, res := range rep.Results {
		r.codes.Inc()
		r.presses.Observe(float64(res.Presses))
	}
	r.total.Set(float64(rep.Total))
	r.entries.Set(float64(rep.Stats.Entries))
}

// Registry returns the registry holding all collectors.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// WriteTextfile writes the current metrics to path atomically.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}

func layoutLabel(id keypad.ID) string {
	switch id {
	case keypad.NumericID:
		return keypad.Numeric.Name()
	case keypad.DirectionalID:
		return keypad.Directional.Name()
	default:
		return strconv.Itoa(int(id))
	}
}
