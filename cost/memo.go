package cost

// Memo maps each Transition to its minimal cost. It only ever grows.
// A Memo is not safe for concurrent use.
type Memo struct {
	table    map[Transition]int64
	hits     uint64
	misses   uint64
	observer Observer
}

// NewMemo returns an empty memo.
func NewMemo(opts ...MemoOption) *Memo {
	m := &Memo{table: make(map[Transition]int64, 256)}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Lookup returns the stored cost for t without touching the hit counters.
func (m *Memo) Lookup(t Transition) (int64, bool) {
	v, ok := m.table[t]
	return v, ok
}

// Len returns the number of stored transitions.
func (m *Memo) Len() int { return len(m.table) }

// Stats returns a snapshot of hits, misses and size.
func (m *Memo) Stats() Stats {
	return Stats{Hits: m.hits, Misses: m.misses, Entries: len(m.table)}
}

// fetch is Lookup plus accounting.
func (m *Memo) fetch(t Transition) (int64, bool) {
	v, ok := m.table[t]
	if ok {
		m.hits++
		if m.observer != nil {
			m.observer.MemoHit(t)
		}
		return v, true
	}
	m.misses++
	if m.observer != nil {
		m.observer.MemoMiss(t)
	}
	return 0, false
}

func (m *Memo) store(t Transition, v int64) {
	m.table[t] = v
}
