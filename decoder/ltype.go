package decoder

import (
	"fmt"

	"github.com/rv32i-tools/rv32i-asm/bitpack"
	"github.com/rv32i-tools/rv32i-asm/isa"
)

// decodeL inverts encodeL, which shares I-type's layout: imm12(12) | rs1(5) | funct3(3) | rd(5) | opcode(7).
func decodeL(bits bitpack.BitPack) (string, error) {
	rs1 := bits.Slice(12, 16)
	funct3 := bits.Slice(17, 19).Uint64()
	rd := bits.Slice(20, 24)

	mnemonic, ok := isa.LTypeMnemonic(uint32(funct3))
	if !ok {
		return "", fmt.Errorf("%w: L-type funct3 %03b has no mnemonic", isa.ErrDecode, funct3)
	}
	imm := bits.Slice(0, 11).Int64()
	return fmt.Sprintf("%s %s, %d(%s)", mnemonic, regName(rd), imm, regName(rs1)), nil
}
