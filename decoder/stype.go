package decoder

import (
	"fmt"

	"github.com/rv32i-tools/rv32i-asm/bitpack"
	"github.com/rv32i-tools/rv32i-asm/isa"
)

// decodeS inverts encodeS's layout: imm[11:5](7) | rs2(5) | rs1(5) | funct3(3) | imm[4:0](5) | opcode(7),
// reassembling the split immediate the same way encodeS split it.
func decodeS(bits bitpack.BitPack) (string, error) {
	hi := bits.Slice(0, 6)
	rs2 := bits.Slice(7, 11)
	rs1 := bits.Slice(12, 16)
	funct3 := bits.Slice(17, 19).Uint64()
	lo := bits.Slice(20, 24)

	mnemonic, ok := isa.STypeMnemonic(uint32(funct3))
	if !ok {
		return "", fmt.Errorf("%w: S-type funct3 %03b has no mnemonic", isa.ErrDecode, funct3)
	}
	imm := hi.Concat(lo).Int64()
	return fmt.Sprintf("%s %s, %d(%s)", mnemonic, regName(rs2), imm, regName(rs1)), nil
}
