package asm

import "testing"

func TestParseRawLineLabelAndInstruction(t *testing.T) {
	label, mnemonic, args, ok := parseRawLine("loop: addi x1, x0, 1")
	if !ok {
		t.Fatal("expected ok")
	}
	if label != "loop" || mnemonic != "addi" {
		t.Errorf("got label=%q mnemonic=%q", label, mnemonic)
	}
	want := []string{"x1", "x0", "1"}
	for i, a := range want {
		if args[i] != a {
			t.Errorf("arg %d = %q, want %q", i, args[i], a)
		}
	}
}

func TestParseRawLineStripsTrailingComment(t *testing.T) {
	_, mnemonic, args, ok := parseRawLine("addi x1, x0, 1 # load one")
	if !ok || mnemonic != "addi" || len(args) != 3 {
		t.Fatalf("unexpected parse: mnemonic=%q args=%v ok=%v", mnemonic, args, ok)
	}
}

func TestParseRawLineBlankIsSkipped(t *testing.T) {
	_, _, _, ok := parseRawLine("   ")
	if ok {
		t.Error("expected blank line to not be ok")
	}
}

func TestParseRawLineCommentOnlyIsSkipped(t *testing.T) {
	_, _, _, ok := parseRawLine("# nothing here")
	if ok {
		t.Error("expected comment-only line to not be ok")
	}
}

func TestParseRawLineLabelOnly(t *testing.T) {
	label, mnemonic, _, ok := parseRawLine("start:")
	if !ok {
		t.Fatal("expected label-only line to be ok")
	}
	if label != "start" || mnemonic != "" {
		t.Errorf("got label=%q mnemonic=%q", label, mnemonic)
	}
}

func TestParsedLineIsDirective(t *testing.T) {
	p := &ParsedLine{Instruction: ".text"}
	if !p.IsDirective() {
		t.Error("expected .text to be a directive")
	}
	p2 := &ParsedLine{Instruction: "addi"}
	if p2.IsDirective() {
		t.Error("expected addi to not be a directive")
	}
}

func TestParsedLinePositionFormatsSubIndex(t *testing.T) {
	p := &ParsedLine{LineNumber: 3, SubIndex: 2}
	if got := p.Position("f.s").String(); got != "f.s:3.2" {
		t.Errorf("Position string = %q, want f.s:3.2", got)
	}
	p2 := &ParsedLine{LineNumber: 3}
	if got := p2.Position("f.s").String(); got != "f.s:3" {
		t.Errorf("Position string = %q, want f.s:3", got)
	}
}
