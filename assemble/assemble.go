// Package assemble orchestrates the parse -> encode -> emit pipeline
// spec.md §4.7 describes as AssemblyProgram's "emit" responsibility. It
// is a separate package, rather than a method on asm.Program, because
// package encoder already imports asm for ParsedLine/LabelTable; an
// Emit method living on asm.Program would need to import encoder right
// back, an import cycle. This package sits above both.
package assemble

import (
	"io"

	"github.com/rv32i-tools/rv32i-asm/asm"
	"github.com/rv32i-tools/rv32i-asm/encoder"
)

// Result is the fully-encoded form of a Program: one word per entry in
// Program.ParsedLines, in the same order, at addresses 0, 4, 8, ...
type Result struct {
	Words []uint32
}

// Assemble reads source from r, appends the trailing halt, and encodes
// every parsed line in address order. It aborts on the first encoder
// failure (spec.md §4.7's write-all-or-nothing rule starts here: nothing
// is written until every line has successfully encoded), returning the
// partially-built Program for diagnostics alongside the error.
func Assemble(r io.Reader, filename string) (*asm.Program, *Result, error) {
	prog := asm.NewProgram(filename)
	if err := prog.ReadSource(r); err != nil {
		return prog, nil, err
	}
	prog.AppendHalt()

	words := make([]uint32, len(prog.ParsedLines))
	var address uint32
	for i, line := range prog.ParsedLines {
		word, err := encoder.Encode(line, prog.Labels, address)
		if err != nil {
			return prog, nil, &asm.LineError{
				Pos:      line.Position(filename),
				Mnemonic: line.Instruction,
				Original: line.Original,
				Kind:     err,
				Detail:   err.Error(),
			}
		}
		words[i] = word
		address += 4
	}
	return prog, &Result{Words: words}, nil
}
