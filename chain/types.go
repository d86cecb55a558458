package chain

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/keypadchain/cost"
)

// Sentinel errors for chain solving.
var (
	// ErrMalformedCode indicates a code that is empty or has a non-numeric-pad symbol.
	ErrMalformedCode = errors.New("chain: malformed code")
	// ErrBadDepth indicates a negative chain depth.
	ErrBadDepth = errors.New("chain: depth must be non-negative")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("chain: invalid option supplied")
)

// Options holds solver and batch settings.
type Options struct {
	// Logger receives debug events per code and one info event per batch.
	Logger *zap.Logger
	// Observer is attached to every memo created with these options.
	Observer cost.Observer
	// Workers is the number of goroutines SolveBatch may use (≥ 1).
	Workers int
	// ExpandLimit caps the length of strings built by Presses.
	ExpandLimit int64

	err error
}

// Option configures a Solver or SolveBatch.
type Option func(*Options)

// DefaultOptions returns:
//   - a no-op logger,
//   - no observer,
//   - one worker,
//   - cost.DefaultExpandLimit.
func DefaultOptions() Options {
	return Options{
		Logger:      zap.NewNop(),
		Workers:     1,
		ExpandLimit: cost.DefaultExpandLimit,
	}
}

// WithLogger sets the logger; nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObserver attaches a memo observer, e.g. metrics counters.
func WithObserver(obs cost.Observer) Option {
	return func(o *Options) {
		o.Observer = obs
	}
}

// WithWorkers sets the batch parallelism.
//
//	n ≥ 1: up to n goroutines, each with its own memo
//	n < 1: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithExpandLimit caps Presses output length; n ≤ 0 is an ErrOptionViolation.
func WithExpandLimit(n int64) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: expand limit must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.ExpandLimit = n
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// Result is the outcome for one code.
type Result struct {
	Code       Code  `json:"code"`
	Presses    int64 `json:"presses"`
	Value      int64 `json:"value"`
	Complexity int64 `json:"complexity"`
}

// Report is the outcome of a batch; Results follow input order.
type Report struct {
	Depth   int        `json:"depth"`
	Results []Result   `json:"results"`
	Total   int64      `json:"total"`
	Stats   cost.Stats `json:"-"`
}
