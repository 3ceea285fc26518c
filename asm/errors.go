// Package asm implements the two-pass assembler driver: line parsing,
// pseudo-instruction expansion, and the label table. The bit-exact
// encoding itself lives in package encoder, and the memory-image /
// source-map writers in package assemble; asm only decides what to
// encode and at what address.
package asm

import (
	"fmt"
)

// Position locates a line in the original source for diagnostics.
type Position struct {
	Filename string
	Line     int // 1-based physical line number
	SubIndex int // 0 for the line itself; 1, 2, ... for pseudo-expansion products
}

func (p Position) String() string {
	if p.SubIndex == 0 {
		return fmt.Sprintf("%s:%d", p.Filename, p.Line)
	}
	return fmt.Sprintf("%s:%d.%d", p.Filename, p.Line, p.SubIndex)
}

// LineError wraps an isa error kind with the source position, mnemonic,
// and original line text, matching spec.md's "LineErrors annotated with
// the source line number, mnemonic, and original text" propagation rule.
type LineError struct {
	Pos      Position
	Mnemonic string
	Original string
	Kind     error // an isa.Err* sentinel, or an error wrapping one
	Detail   string
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s: %s: %s (in %q)", e.Pos, e.Kind, e.Detail, e.Original)
}

func (e *LineError) Unwrap() error { return e.Kind }

func newLineError(pos Position, mnemonic, original string, kind error, detail string) *LineError {
	return &LineError{Pos: pos, Mnemonic: mnemonic, Original: original, Kind: kind, Detail: detail}
}
