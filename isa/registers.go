// Package isa holds the static register and instruction-format tables for
// the base 32-bit integer instruction set: register aliases, mnemonic to
// format-class routing, and the opcode/funct3/funct7 assignments shared by
// the encoder and decoder.
package isa

import "fmt"

// Register is a validated register number in [0, 31].
type Register uint8

// registerNames lists, per register number, every accepted spelling: the
// xN form first, then ABI aliases. x8/s0/fp all resolve to the same number.
var registerNames = [32][]string{
	{"x0", "zero"},
	{"x1", "ra"},
	{"x2", "sp"},
	{"x3", "gp"},
	{"x4", "tp"},
	{"x5", "t0"},
	{"x6", "t1"},
	{"x7", "t2"},
	{"x8", "s0", "fp"},
	{"x9", "s1"},
	{"x10", "a0"},
	{"x11", "a1"},
	{"x12", "a2"},
	{"x13", "a3"},
	{"x14", "a4"},
	{"x15", "a5"},
	{"x16", "a6"},
	{"x17", "a7"},
	{"x18", "s2"},
	{"x19", "s3"},
	{"x20", "s4"},
	{"x21", "s5"},
	{"x22", "s6"},
	{"x23", "s7"},
	{"x24", "s8"},
	{"x25", "s9"},
	{"x26", "s10"},
	{"x27", "s11"},
	{"x28", "t3"},
	{"x29", "t4"},
	{"x30", "t5"},
	{"x31", "t6"},
}

var nameToRegister = func() map[string]Register {
	m := make(map[string]Register, 64)
	for i, names := range registerNames {
		for _, n := range names {
			m[n] = Register(i)
		}
	}
	return m
}()

// ParseRegister resolves any accepted spelling (xN or ABI alias) to a
// register number. Returns ErrUnknownRegister if reg is not recognized.
func ParseRegister(reg string) (Register, error) {
	if r, ok := nameToRegister[reg]; ok {
		return r, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRegister, reg)
}

// RegisterName returns the canonical xN spelling for a register number.
func RegisterName(r Register) string {
	return registerNames[r][0]
}
