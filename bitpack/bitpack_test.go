package bitpack

import "testing"

func TestFromSignedRange(t *testing.T) {
	if _, err := FromSigned(-2048, 12); err != nil {
		t.Errorf("unexpected error for -2048/12: %v", err)
	}
	if _, err := FromSigned(2047, 12); err != nil {
		t.Errorf("unexpected error for 2047/12: %v", err)
	}
	if _, err := FromSigned(2048, 12); err == nil {
		t.Error("expected error for 2048/12 (out of range)")
	}
	if _, err := FromSigned(-2049, 12); err == nil {
		t.Error("expected error for -2049/12 (out of range)")
	}
}

func TestConcatLength(t *testing.T) {
	a, _ := FromUnsigned(0b101, 3)
	b, _ := FromUnsigned(0b11, 2)
	c := a.Concat(b)
	if c.Len() != 5 {
		t.Fatalf("expected length 5, got %d", c.Len())
	}
	if c.Bin() != "10111" {
		t.Errorf("expected 10111, got %s", c.Bin())
	}
}

func TestSliceMSBIndexed(t *testing.T) {
	v, _ := FromBinaryString("11001010")
	// bit 0 (MSB) .. bit 3
	top := v.Slice(0, 3)
	if top.Bin() != "1100" {
		t.Errorf("Slice(0,3) = %s, want 1100", top.Bin())
	}
	bottom := v.Slice(4, 7)
	if bottom.Bin() != "1010" {
		t.Errorf("Slice(4,7) = %s, want 1010", bottom.Bin())
	}
}

func TestUint32PostCondition(t *testing.T) {
	v, _ := FromUnsigned(0xDEADBEEF, 32)
	if v.Uint32() != 0xDEADBEEF {
		t.Errorf("Uint32() = %#x, want 0xDEADBEEF", v.Uint32())
	}
}

func TestHexRendering(t *testing.T) {
	v, _ := FromUnsigned(0x00500093, 32)
	if v.Hex() != "00500093" {
		t.Errorf("Hex() = %s, want 00500093", v.Hex())
	}
}

func TestInt64SignExtension(t *testing.T) {
	v, _ := FromSigned(-1, 12)
	if v.Int64() != -1 {
		t.Errorf("Int64() = %d, want -1", v.Int64())
	}
}
