package asm

import "testing"

func TestParseIntImmediateDecimal(t *testing.T) {
	v, err := ParseIntImmediate("42")
	if err != nil || v != 42 {
		t.Fatalf("got %d, %v; want 42, nil", v, err)
	}
}

func TestParseIntImmediateNegativeDecimal(t *testing.T) {
	v, err := ParseIntImmediate("-5")
	if err != nil || v != -5 {
		t.Fatalf("got %d, %v; want -5, nil", v, err)
	}
}

func TestParseIntImmediateHex(t *testing.T) {
	v, err := ParseIntImmediate("0xFF")
	if err != nil || v != 255 {
		t.Fatalf("got %d, %v; want 255, nil", v, err)
	}
}

func TestParseIntImmediateBinary(t *testing.T) {
	v, err := ParseIntImmediate("0b101")
	if err != nil || v != 5 {
		t.Fatalf("got %d, %v; want 5, nil", v, err)
	}
}

func TestParseIntImmediateBareZeroIsDecimalNotOctal(t *testing.T) {
	v, err := ParseIntImmediate("0")
	if err != nil || v != 0 {
		t.Fatalf("got %d, %v; want 0, nil", v, err)
	}
}

func TestParseIntImmediateLeadingZeroIsOctal(t *testing.T) {
	v, err := ParseIntImmediate("010")
	if err != nil || v != 8 {
		t.Fatalf("got %d, %v; want 8 (octal), nil", v, err)
	}
}

func TestParseIntImmediateRejectsMalformed(t *testing.T) {
	if _, err := ParseIntImmediate("not-a-number"); err == nil {
		t.Fatal("expected an error for malformed immediate")
	}
}

func TestCheckImmRange(t *testing.T) {
	if err := CheckImm(2047, 12); err != nil {
		t.Errorf("2047 should fit in 12 bits: %v", err)
	}
	if err := CheckImm(-2048, 12); err != nil {
		t.Errorf("-2048 should fit in 12 bits: %v", err)
	}
	if err := CheckImm(2048, 12); err == nil {
		t.Error("2048 should not fit in 12 bits")
	}
	if err := CheckImm(-2049, 12); err == nil {
		t.Error("-2049 should not fit in 12 bits")
	}
}
