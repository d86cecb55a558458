package simulate

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for chain simulation.
var (
	// ErrGapEntered is returned when a pointer moves onto a gap cell.
	ErrGapEntered = errors.New("simulate: pointer entered gap")
	// ErrOffPad is returned when a pointer moves outside its pad.
	ErrOffPad = errors.New("simulate: pointer left pad")
	// ErrWrongKey is returned when a press is not a directional-pad key.
	ErrWrongKey = errors.New("simulate: not a directional key")
	// ErrSearchExhausted is returned when Shortest cannot reach the goal.
	ErrSearchExhausted = errors.New("simulate: search exhausted")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("simulate: invalid option supplied")
)

// DefaultMaxStates bounds the number of states Shortest may visit.
const DefaultMaxStates = 1 << 22

// Options configures Shortest.
type Options struct {
	// Ctx allows cancellation.
	Ctx context.Context
	// MaxStates caps visited states; the search fails with ErrSearchExhausted beyond it.
	MaxStates int
	// OnVisit is called for each dequeued state with its press count.
	OnVisit func(presses int)

	err error
}

// Option configures Shortest via functional arguments.
type Option func(*Options)

// DefaultOptions returns background context, DefaultMaxStates and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		MaxStates: DefaultMaxStates,
		OnVisit:   func(int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxStates caps visited states; n < 1 records ErrOptionViolation.
func WithMaxStates(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxStates must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxStates = n
	}
}

// WithOnVisit registers a callback run on every dequeued state.
func WithOnVisit(fn func(presses int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
