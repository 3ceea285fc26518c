package decoder

import (
	"fmt"

	"github.com/rv32i-tools/rv32i-asm/bitpack"
	"github.com/rv32i-tools/rv32i-asm/isa"
)

// decodeI inverts encodeI's layout: imm12(12) | rs1(5) | funct3(3) | rd(5) | opcode(7).
// Shift forms (slli/srli/srai) carry a funct7 in the high 7 bits of imm12
// and a 5-bit unsigned shift amount in the low 5, rather than a signed
// 12-bit immediate (spec.md §4.6). isJalr selects jalr over the ambiguous
// funct3==0 addi encoding, since the two share an opcode-independent
// reverse table otherwise.
func decodeI(bits bitpack.BitPack, isJalr bool) (string, error) {
	rs1 := bits.Slice(12, 16)
	funct3 := bits.Slice(17, 19).Uint64()
	rd := bits.Slice(20, 24)

	if isJalr {
		imm := bits.Slice(0, 11).Int64()
		return fmt.Sprintf("jalr %s, %s, %d", regName(rd), regName(rs1), imm), nil
	}

	if funct3 == 0b001 || funct3 == 0b101 {
		funct7 := bits.Slice(0, 6).Uint64()
		shamt := bits.Slice(7, 11).Uint64()
		var mnemonic string
		switch {
		case funct3 == 0b001:
			mnemonic = "slli"
		case funct7 == 0b0100000:
			mnemonic = "srai"
		default:
			mnemonic = "srli"
		}
		return fmt.Sprintf("%s %s, %s, %d", mnemonic, regName(rd), regName(rs1), shamt), nil
	}

	mnemonic, ok := isa.ITypeMnemonic(uint32(funct3))
	if !ok {
		return "", fmt.Errorf("%w: I-type funct3 %03b has no mnemonic", isa.ErrDecode, funct3)
	}
	imm := bits.Slice(0, 11).Int64()
	return fmt.Sprintf("%s %s, %s, %d", mnemonic, regName(rd), regName(rs1), imm), nil
}
