package asm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rv32i-tools/rv32i-asm/isa"
)

// ParseIntImmediate recognizes decimal, 0x hex, 0b binary, and leading-0
// octal literals and returns a signed integer. The bare literal "0" is
// decimal zero, not octal (spec.md's note on the original's octal-prefix
// bug: a leading "0" with no following digits must not dispatch to base 8).
func ParseIntImmediate(s string) (int64, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("%w: empty immediate", isa.ErrMalformedOperand)
	}

	neg := false
	body := s
	if strings.HasPrefix(body, "-") {
		neg = true
		body = body[1:]
	} else if strings.HasPrefix(body, "+") {
		body = body[1:]
	}

	var v int64
	var err error
	switch {
	case strings.HasPrefix(body, "0x"):
		v, err = strconv.ParseInt(body[2:], 16, 64)
	case strings.HasPrefix(body, "0b"):
		v, err = strconv.ParseInt(body[2:], 2, 64)
	case body != "0" && strings.HasPrefix(body, "0"):
		v, err = strconv.ParseInt(body, 8, 64)
	default:
		v, err = strconv.ParseInt(body, 10, 64)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", isa.ErrMalformedOperand, s, err)
	}
	if neg {
		v = -v
	}
	return v, nil
}

// CheckImm succeeds iff -2^(n-1) <= v < 2^(n-1).
func CheckImm(v int64, n int) error {
	lo := -(int64(1) << uint(n-1))
	hi := int64(1) << uint(n-1)
	if v < lo || v >= hi {
		return fmt.Errorf("%w: %d does not fit in %d bits", isa.ErrImmediateRange, v, n)
	}
	return nil
}
