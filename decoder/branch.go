package decoder

import (
	"fmt"

	"github.com/rv32i-tools/rv32i-asm/asm"
	"github.com/rv32i-tools/rv32i-asm/bitpack"
	"github.com/rv32i-tools/rv32i-asm/isa"
)

// decodeB inverts encodeB's scrambled immediate layout:
// imm[12] | imm[10:5] | rs2 | rs1 | funct3 | imm[4:1] | imm[11] | opcode.
func decodeB(bits bitpack.BitPack, address uint32, labels *asm.LabelTable) (string, error) {
	b12 := bits.Slice(0, 0)
	b10_5 := bits.Slice(1, 6)
	rs2 := bits.Slice(7, 11)
	rs1 := bits.Slice(12, 16)
	funct3 := bits.Slice(17, 19).Uint64()
	b4_1 := bits.Slice(20, 23)
	b11 := bits.Slice(24, 24)

	mnemonic, ok := isa.BTypeMnemonic(uint32(funct3))
	if !ok {
		return "", fmt.Errorf("%w: B-type funct3 %03b has no mnemonic", isa.ErrDecode, funct3)
	}

	imm12 := b12.Concat(b11).Concat(b10_5).Concat(b4_1)

	// With no label table, the original's bits_to_line prints the raw
	// unsigned imm12 bits rather than resolving an address (original_source
	// rv32i.py's b-type branch renders `address.uint`, the same imm12 bits
	// reinterpreted as unsigned).
	if labels == nil {
		return fmt.Sprintf("%s %s, %s, %d", mnemonic, regName(rs1), regName(rs2), imm12.Uint64()), nil
	}

	offsetHalf := imm12.Int64()
	target := uint32(int64(address) + offsetHalf*2)
	return fmt.Sprintf("%s %s, %s, %s", mnemonic, regName(rs1), regName(rs2), targetText(target, labels)), nil
}
