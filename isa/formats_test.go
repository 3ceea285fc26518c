package isa

import "testing"

func TestFormatOf(t *testing.T) {
	cases := map[string]Format{
		"add": FormatR, "sub": FormatR,
		"addi": FormatI, "jalr": FormatI,
		"lw": FormatL, "sw": FormatS,
		"beq": FormatB, "lui": FormatU, "jal": FormatJ,
		"halt": FormatHalt,
		"frobnicate": FormatUnknown,
	}
	for mnemonic, want := range cases {
		if got := FormatOf(mnemonic); got != want {
			t.Errorf("FormatOf(%q) = %v, want %v", mnemonic, got, want)
		}
	}
}

func TestFunct7SubSra(t *testing.T) {
	if Funct7("sub") != 0b0100000 {
		t.Error("sub should carry funct7 0100000")
	}
	if Funct7("sra") != 0b0100000 {
		t.Error("sra should carry funct7 0100000")
	}
	if Funct7("add") != 0 {
		t.Error("add should carry funct7 0000000")
	}
}

func TestReverseTablesRoundTrip(t *testing.T) {
	for mnemonic := range funct3 {
		if FormatOf(mnemonic) != FormatR {
			continue
		}
		f3, ok := Funct3(mnemonic)
		if !ok {
			t.Fatalf("missing funct3 for %q", mnemonic)
		}
		if mnemonic == "add" || mnemonic == "sub" || mnemonic == "srl" || mnemonic == "sra" {
			continue // disambiguated by funct7, not by the reverse table
		}
		got, ok := RTypeMnemonic(f3)
		if !ok || got != mnemonic {
			t.Errorf("RTypeMnemonic(%03b) = %q, %v, want %q", f3, got, ok, mnemonic)
		}
	}
}
