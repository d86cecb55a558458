package simulate

import (
	"fmt"

	"github.com/katalvlaran/keypadchain/keypad"
)

// humanKeys are the five buttons on the human's pad, in a fixed order.
var humanKeys = keypad.Directional.Keys()

// state is one search vertex: pointer snapshot plus typed prefix length.
type state struct {
	ptrs  string
	typed int
}

// queueItem pairs a state with its press count.
type queueItem struct {
	st      state
	presses int
}

// walker encapsulates mutable search state.
type walker struct {
	opts    Options
	code    string
	chain   *Chain
	queue   []queueItem
	visited map[state]bool
}

// Shortest returns the minimal number of human presses that make a chain of
// `robots` directional pads type code on the numeric pad.
// Returns keypad.ErrKeyNotFound for symbols off the numeric pad,
// ErrOptionViolation for bad options, ErrSearchExhausted when MaxStates is
// hit, or the context error on cancellation.
func Shortest(code string, robots int, opts ...Option) (int, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, o.err
	}
	for i := 0; i < len(code); i++ {
		if !keypad.Numeric.Has(keypad.Key(code[i])) {
			return 0, fmt.Errorf("%w: %q in code %q", keypad.ErrKeyNotFound, code[i], code)
		}
	}

	w := &walker{
		opts:    o,
		code:    code,
		chain:   NewChain(robots),
		visited: make(map[state]bool, 1024),
	}
	w.enqueue(state{ptrs: w.chain.snapshot()}, 0)
	return w.loop()
}

func (w *walker) enqueue(st state, presses int) {
	w.visited[st] = true
	w.queue = append(w.queue, queueItem{st: st, presses: presses})
}

// loop processes the queue until the goal, exhaustion or cancellation.
func (w *walker) loop() (int, error) {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return 0, w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.opts.OnVisit(item.presses)
		if item.st.typed == len(w.code) {
			return item.presses, nil
		}
		if err := w.expand(item); err != nil {
			return 0, err
		}
	}
	return 0, fmt.Errorf("%w: %q unreachable", ErrSearchExhausted, w.code)
}

// expand enqueues every legal, unseen successor of item.
func (w *walker) expand(item queueItem) error {
	for _, k := range humanKeys {
		w.chain.restore(item.st.ptrs)
		out, emitted, err := w.chain.Press(k)
		if err != nil {
			continue // illegal move: no edge
		}
		next := state{ptrs: w.chain.snapshot(), typed: item.st.typed}
		if emitted {
			if byte(out) != w.code[next.typed] {
				continue // wrong door key: the code is ruined
			}
			next.typed++
		}
		if w.visited[next] {
			continue
		}
		if len(w.visited) >= w.opts.MaxStates {
			return fmt.Errorf("%w: more than %d states", ErrSearchExhausted, w.opts.MaxStates)
		}
		w.enqueue(next, item.presses+1)
	}
	return nil
}
