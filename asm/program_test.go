package asm

import (
	"strings"
	"testing"
)

func mustRead(t *testing.T, src string) *Program {
	t.Helper()
	p := NewProgram("test.s")
	if err := p.ReadSource(strings.NewReader(src)); err != nil {
		t.Fatalf("ReadSource: %v", err)
	}
	return p
}

func TestReadSourceAssignsAddressesSequentially(t *testing.T) {
	p := mustRead(t, "addi x1, x0, 1\naddi x2, x0, 2\n")
	if len(p.ParsedLines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(p.ParsedLines))
	}
	if p.Address != 8 {
		t.Errorf("expected address 8 after 2 instructions, got %d", p.Address)
	}
}

func TestReadSourceSkipsBlankAndCommentOnlyLines(t *testing.T) {
	p := mustRead(t, "\n# just a comment\n   \naddi x1, x0, 1\n")
	if len(p.ParsedLines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(p.ParsedLines))
	}
}

func TestReadSourceDefinesLabelAtCurrentAddress(t *testing.T) {
	p := mustRead(t, "addi x1, x0, 1\nloop:\n  addi x2, x0, 2\n")
	addr, ok := p.Labels.Lookup("loop")
	if !ok {
		t.Fatal("expected loop to be defined")
	}
	if addr != 4 {
		t.Errorf("expected loop at address 4, got %d", addr)
	}
}

func TestReadSourceLabelOnlyLineDefinesNoInstruction(t *testing.T) {
	p := mustRead(t, "start:\n")
	if len(p.ParsedLines) != 0 {
		t.Fatalf("expected 0 instruction lines, got %d", len(p.ParsedLines))
	}
	if _, ok := p.Labels.Lookup("start"); !ok {
		t.Fatal("expected start to still be defined")
	}
}

func TestReadSourceDirectiveRecordsWarningAndIsSkipped(t *testing.T) {
	p := mustRead(t, ".text\naddi x1, x0, 1\n")
	if len(p.ParsedLines) != 1 {
		t.Fatalf("expected directive to be skipped, got %d lines", len(p.ParsedLines))
	}
	if len(p.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(p.Warnings))
	}
}

func TestReadSourceExpandsPseudoToMultipleLinesSharingLineNumber(t *testing.T) {
	p := mustRead(t, "li x1, 100000\n")
	if len(p.ParsedLines) != 2 {
		t.Fatalf("expected li to expand to 2 lines, got %d", len(p.ParsedLines))
	}
	if p.ParsedLines[0].Instruction != "lui" || p.ParsedLines[1].Instruction != "addi" {
		t.Errorf("unexpected expansion: %+v / %+v", p.ParsedLines[0], p.ParsedLines[1])
	}
	if p.ParsedLines[0].LineNumber != p.ParsedLines[1].LineNumber {
		t.Errorf("expected shared line number, got %d / %d", p.ParsedLines[0].LineNumber, p.ParsedLines[1].LineNumber)
	}
	if p.ParsedLines[0].SubIndex != 1 || p.ParsedLines[1].SubIndex != 2 {
		t.Errorf("expected sub-indices 1/2, got %d/%d", p.ParsedLines[0].SubIndex, p.ParsedLines[1].SubIndex)
	}
}

func TestReadSourceLabelAttachesToFirstExpandedInstruction(t *testing.T) {
	p := mustRead(t, "target: li x1, 100000\n")
	if p.ParsedLines[0].Label != "target" {
		t.Errorf("expected label on first expanded instruction, got %q", p.ParsedLines[0].Label)
	}
	if p.ParsedLines[1].Label != "" {
		t.Errorf("expected no label on second expanded instruction, got %q", p.ParsedLines[1].Label)
	}
}

func TestReadSourcePseudoArityErrorReturnsLineError(t *testing.T) {
	p := NewProgram("test.s")
	err := p.ReadSource(strings.NewReader("mv x1\n"))
	if err == nil {
		t.Fatal("expected an arity error")
	}
	var lineErr *LineError
	if !asLineError(err, &lineErr) {
		t.Fatalf("expected *LineError, got %T: %v", err, err)
	}
}

func asLineError(err error, out **LineError) bool {
	le, ok := err.(*LineError)
	if ok {
		*out = le
	}
	return ok
}

func TestAppendHaltAddsTrailingSyntheticLine(t *testing.T) {
	p := mustRead(t, "addi x1, x0, 1\n")
	p.AppendHalt()
	last := p.ParsedLines[len(p.ParsedLines)-1]
	if last.Instruction != "halt" {
		t.Fatalf("expected trailing halt, got %q", last.Instruction)
	}
	if last.LineNumber != 0 {
		t.Errorf("expected synthetic halt to carry no line number, got %d", last.LineNumber)
	}
}
