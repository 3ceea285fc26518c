package decoder

import (
	"fmt"

	"github.com/rv32i-tools/rv32i-asm/bitpack"
	"github.com/rv32i-tools/rv32i-asm/isa"
)

// decodeR inverts encodeR's layout: funct7(7) | rs2(5) | rs1(5) | funct3(3) | rd(5) | opcode(7).
func decodeR(bits bitpack.BitPack) (string, error) {
	funct7 := bits.Slice(0, 6).Uint64()
	rs2 := bits.Slice(7, 11)
	rs1 := bits.Slice(12, 16)
	funct3 := bits.Slice(17, 19).Uint64()
	rd := bits.Slice(20, 24)

	var mnemonic string
	switch {
	case funct3 == 0b000 && funct7 == 0b0100000:
		mnemonic = "sub"
	case funct3 == 0b000:
		mnemonic = "add"
	case funct3 == 0b101 && funct7 == 0b0100000:
		mnemonic = "sra"
	case funct3 == 0b101:
		mnemonic = "srl"
	default:
		m, ok := isa.RTypeMnemonic(uint32(funct3))
		if !ok {
			return "", fmt.Errorf("%w: R-type funct3 %03b has no mnemonic", isa.ErrDecode, funct3)
		}
		mnemonic = m
	}

	return fmt.Sprintf("%s %s, %s, %s", mnemonic, regName(rd), regName(rs1), regName(rs2)), nil
}
