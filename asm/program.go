package asm

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rv32i-tools/rv32i-asm/isa"
)

// Program is the two-pass assembly driver (spec.md §3's AssemblyProgram):
// it owns the current address, the label table, and the ordered list of
// expanded parsed lines. Encoding itself is the caller's job (package
// encoder); Program only decides what gets emitted and where.
type Program struct {
	Address     uint32
	LineNumber  int
	Labels      *LabelTable
	ParsedLines []*ParsedLine
	Filename    string

	Warnings []string
}

// NewProgram returns an empty program starting at address 0.
func NewProgram(filename string) *Program {
	return &Program{
		Labels:   NewLabelTable(),
		Filename: filename,
	}
}

// ReadSource parses every line of r in order, advancing the program's
// address and line counter. It never returns a parse-phase error for a
// malformed or blank line (those are skipped silently; only directives
// are recorded in Warnings); it returns an error only if a
// pseudo-instruction expander raises, tagged with the offending source line.
func (p *Program) ReadSource(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := p.parseLine(scanner.Text()); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// parseLine implements spec.md §4.3 in full: comment stripping, label
// extraction, directive recognition, pseudo expansion, and address
// bookkeeping.
func (p *Program) parseLine(raw string) error {
	p.LineNumber++

	label, mnemonic, args, ok := parseRawLine(raw)
	if !ok {
		return nil // blank or unrecognized line: silently skipped
	}

	if label != "" {
		p.Labels.Define(label, p.Address)
	}
	if mnemonic == "" {
		return nil // label-only line
	}
	if label == "" {
		// A label from a preceding label-only line annotates this instruction.
		for _, name := range p.Labels.Names() {
			if addr, _ := p.Labels.Lookup(name); addr == p.Address {
				label = name
				break
			}
		}
	}

	parsed := &ParsedLine{
		Original:    strings.TrimRight(raw, "\r\n"),
		LineNumber:  p.LineNumber,
		Label:       label,
		Instruction: mnemonic,
		Args:        args,
	}

	if parsed.IsDirective() {
		p.Warnings = append(p.Warnings, fmt.Sprintf("line %d: directive %q recognized and skipped", p.LineNumber, mnemonic))
		return nil
	}

	if parsed.IsPseudo() {
		expanded, err := pseudoTable[mnemonic](args)
		if err != nil {
			return newLineError(parsed.Position(p.Filename), mnemonic, parsed.Original, isa.ErrMalformedOperand, err.Error())
		}
		for i, e := range expanded {
			line := &ParsedLine{
				Original:    parsed.Original,
				LineNumber:  p.LineNumber,
				SubIndex:    i + 1,
				Instruction: e.mnemonic,
				Args:        e.args,
			}
			if i == 0 {
				line.Label = label // label attaches only to the first expanded instruction
			}
			p.appendLine(line)
		}
		return nil
	}

	p.appendLine(parsed)
	return nil
}

func (p *Program) appendLine(line *ParsedLine) {
	p.ParsedLines = append(p.ParsedLines, line)
	p.Address += 4
}

// AppendHalt appends the trailing all-zero halt record spec.md §3/§4.7
// requires after parsing completes. Call exactly once per program.
func (p *Program) AppendHalt() {
	p.appendLine(&ParsedLine{Instruction: "halt"})
}
