package simulate

import (
	"fmt"

	"github.com/katalvlaran/keypadchain/keypad"
)

// Chain is the mutable pointer state of a chain of robots. Pointer i < N
// rests on a directional pad; pointer N rests on the numeric pad.
type Chain struct {
	ptrs []keypad.Coord
}

// NewChain returns a chain of `robots` directional pads in front of the
// numeric pad, all pointers on Activate. robots < 0 is treated as 0.
func NewChain(robots int) *Chain {
	if robots < 0 {
		robots = 0
	}
	c := &Chain{ptrs: make([]keypad.Coord, robots+1)}
	dirA, _ := keypad.Directional.Position(keypad.Activate)
	numA, _ := keypad.Numeric.Position(keypad.Activate)
	for i := 0; i < robots; i++ {
		c.ptrs[i] = dirA
	}
	c.ptrs[robots] = numA
	return c
}

// Robots returns the number of directional pads between human and door.
func (c *Chain) Robots() int { return len(c.ptrs) - 1 }

func (c *Chain) layout(level int) *keypad.Layout {
	if level == len(c.ptrs)-1 {
		return keypad.Numeric
	}
	return keypad.Directional
}

// Press applies one human press. It returns the numeric key emitted at the
// door, if any. On error the chain is left unchanged.
func (c *Chain) Press(k keypad.Key) (out keypad.Key, emitted bool, err error) {
	if !keypad.Directional.Has(k) {
		return 0, false, fmt.Errorf("%w: %q", ErrWrongKey, k.String())
	}
	for level := 0; level < len(c.ptrs); level++ {
		l := c.layout(level)
		if k.IsMove() {
			next := c.ptrs[level].Add(k)
			switch {
			case !l.InBounds(next):
				return 0, false, fmt.Errorf("%w: level %d", ErrOffPad, level)
			case next == l.Gap():
				return 0, false, fmt.Errorf("%w: level %d", ErrGapEntered, level)
			}
			c.ptrs[level] = next
			return 0, false, nil
		}
		// Activate: press whatever the pointer rests on, one level down.
		k, _ = l.KeyAt(c.ptrs[level])
	}
	return k, true, nil
}

// Replay runs presses through a fresh chain and returns the door keys typed.
func Replay(presses string, robots int) (string, error) {
	c := NewChain(robots)
	out := make([]byte, 0, 8)
	for i := 0; i < len(presses); i++ {
		k, ok, err := c.Press(keypad.Key(presses[i]))
		if err != nil {
			return string(out), fmt.Errorf("press %d: %w", i, err)
		}
		if ok {
			out = append(out, byte(k))
		}
	}
	return string(out), nil
}

// snapshot encodes the pointers as one comparable string of key labels.
func (c *Chain) snapshot() string {
	b := make([]byte, len(c.ptrs))
	for i, p := range c.ptrs {
		k, _ := c.layout(i).KeyAt(p)
		b[i] = byte(k)
	}
	return string(b)
}

// restore is the inverse of snapshot.
func (c *Chain) restore(s string) {
	for i := 0; i < len(s); i++ {
		c.ptrs[i], _ = c.layout(i).Position(keypad.Key(s[i]))
	}
}
