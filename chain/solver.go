package chain

import (
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/keypadchain/cost"
	"github.com/katalvlaran/keypadchain/keypad"
)

// Solver prices codes for one fixed chain depth and owns the memo shared by
// all of them.
type Solver struct {
	depth       int
	memo        *cost.Memo
	log         *zap.Logger
	expandLimit int64
}

// NewSolver returns a Solver for a chain of `depth` robot-operated
// directional pads (depth 0: the human steers the door robot directly).
// Returns ErrBadDepth for negative depth and ErrOptionViolation for bad options.
func NewSolver(depth int, opts ...Option) (*Solver, error) {
	if depth < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadDepth, depth)
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	return newSolver(depth, o), nil
}

func newSolver(depth int, o Options) *Solver {
	var memoOpts []cost.MemoOption
	if o.Observer != nil {
		memoOpts = append(memoOpts, cost.WithObserver(o.Observer))
	}
	return &Solver{
		depth:       depth,
		memo:        cost.NewMemo(memoOpts...),
		log:         o.Logger,
		expandLimit: o.ExpandLimit,
	}
}

// Depth returns the configured chain depth.
func (s *Solver) Depth() int { return s.depth }

// Stats returns a snapshot of the solver's memo.
func (s *Solver) Stats() cost.Stats { return s.memo.Stats() }

// Solve returns the minimal number of human presses that type code on the
// numeric pad. The pointer starts on the numeric Activate key.
// Complexity: O(len(code)) on a warm memo.
func (s *Solver) Solve(code Code) (int64, error) {
	if err := code.Validate(); err != nil {
		return 0, err
	}
	var (
		total int64
		cur   = keypad.Activate
	)
	for i := 0; i < len(code); i++ {
		next := keypad.Key(code[i])
		c, err := cost.Cost(s.memo, keypad.Numeric, cur, next, s.depth+1)
		if err != nil {
			return 0, fmt.Errorf("chain: code %q: %w", string(code), err)
		}
		if total > math.MaxInt64-c {
			return 0, fmt.Errorf("chain: code %q: %w", string(code), cost.ErrCostOverflow)
		}
		total += c
		cur = next
	}
	s.log.Debug("code solved",
		zap.String("code", string(code)),
		zap.Int("depth", s.depth),
		zap.Int64("presses", total),
		zap.Int("memo_entries", s.memo.Len()),
	)
	return total, nil
}

// Complexity solves code and weights it by its leading numeric value.
func (s *Solver) Complexity(code Code) (Result, error) {
	presses, err := s.Solve(code)
	if err != nil {
		return Result{}, err
	}
	value, err := code.Value()
	if err != nil {
		return Result{}, err
	}
	r := Result{Code: code, Presses: presses, Value: value}
	if value != 0 && presses > math.MaxInt64/value {
		return Result{}, fmt.Errorf("chain: code %q: %w", string(code), cost.ErrCostOverflow)
	}
	r.Complexity = presses * value
	return r, nil
}

// Presses returns one optimal human press string for code; its length equals
// Solve(code). Fails with cost.ErrExpansionTooLarge above the expand limit.
func (s *Solver) Presses(code Code) (string, error) {
	total, err := s.Solve(code)
	if err != nil {
		return "", err
	}
	if total > s.expandLimit {
		return "", fmt.Errorf("%w: %d presses > %d", cost.ErrExpansionTooLarge, total, s.expandLimit)
	}

	var b strings.Builder
	b.Grow(int(total))
	cur := keypad.Activate
	for i := 0; i < len(code); i++ {
		next := keypad.Key(code[i])
		seq, err := cost.Expand(s.memo, keypad.Numeric, cur, next, s.depth+1, s.expandLimit)
		if err != nil {
			return "", fmt.Errorf("chain: code %q: %w", string(code), err)
		}
		b.WriteString(seq.String())
		cur = next
	}
	return b.String(), nil
}
