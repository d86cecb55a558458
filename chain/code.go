package chain

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/keypadchain/keypad"
)

// Code is a door code: a string of numeric-pad keys, e.g. "029A".
type Code string

// ParseCode trims surrounding whitespace and validates s.
// Returns ErrMalformedCode for an empty code or a symbol not on the numeric pad.
func ParseCode(s string) (Code, error) {
	c := Code(strings.TrimSpace(s))
	if err := c.Validate(); err != nil {
		return "", err
	}
	return c, nil
}

// Validate reports ErrMalformedCode unless every symbol is a numeric-pad key.
func (c Code) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("%w: empty", ErrMalformedCode)
	}
	for i := 0; i < len(c); i++ {
		if !keypad.Numeric.Has(keypad.Key(c[i])) {
			return fmt.Errorf("%w: %q has %q at %d", ErrMalformedCode, string(c), c[i], i)
		}
	}
	return nil
}

// Value returns the code's leading numeric value: the run of digits before
// the Activate marker, leading zeros ignored ("029A" → 29). A code that
// starts with Activate has value 0.
func (c Code) Value() (int64, error) {
	end := 0
	for end < len(c) && c[end] >= '0' && c[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, nil
	}
	v, err := strconv.ParseInt(string(c[:end]), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: value of %q: %v", ErrMalformedCode, string(c), err)
	}
	return v, nil
}

// ParseCodes reads one code per line, skipping blank lines. The first
// malformed line fails the whole read with its 1-based line number.
func ParseCodes(r io.Reader) ([]Code, error) {
	var codes []Code
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		c, err := ParseCode(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		codes = append(codes, c)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("chain: reading codes: %w", err)
	}
	return codes, nil
}
