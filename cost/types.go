package cost

import (
	"errors"

	"github.com/katalvlaran/keypadchain/keypad"
)

// Sentinel errors for cost evaluation.
var (
	// ErrNilMemo indicates a nil *Memo was passed.
	ErrNilMemo = errors.New("cost: memo is nil")
	// ErrNilLayout indicates a nil *keypad.Layout was passed.
	ErrNilLayout = errors.New("cost: layout is nil")
	// ErrBadDepth indicates a layer depth below 1.
	ErrBadDepth = errors.New("cost: depth must be at least 1")
	// ErrCostOverflow indicates a cost that does not fit in int64.
	ErrCostOverflow = errors.New("cost: press count overflows int64")
	// ErrExpansionTooLarge indicates Expand would build a sequence above its limit.
	ErrExpansionTooLarge = errors.New("cost: expansion exceeds limit")
)

// Transition is the memo key: one key-to-key move on one layout at one depth.
type Transition struct {
	Layout   keypad.ID
	From, To keypad.Key
	Depth    int
}

// Observer is notified of memo lookups. Implementations must be cheap and,
// if shared between memos, safe for concurrent use.
type Observer interface {
	MemoHit(t Transition)
	MemoMiss(t Transition)
}

// Stats is a snapshot of memo activity.
type Stats struct {
	Hits    uint64 // lookups served from the table
	Misses  uint64 // lookups that had to be computed
	Entries int    // distinct transitions stored
}

// MemoOption configures a Memo.
type MemoOption func(*Memo)

// WithObserver attaches an Observer; nil is ignored.
func WithObserver(o Observer) MemoOption {
	return func(m *Memo) {
		if o != nil {
			m.observer = o
		}
	}
}
