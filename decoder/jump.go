package decoder

import (
	"fmt"

	"github.com/rv32i-tools/rv32i-asm/asm"
	"github.com/rv32i-tools/rv32i-asm/bitpack"
	"github.com/rv32i-tools/rv32i-asm/isa"
)

// decodeJ inverts encodeJ's scrambled immediate layout:
// imm[20] | imm[10:1] | imm[11] | imm[19:12] | rd | opcode.
//
// A reconstructed byte offset that is not a multiple of 4 is a DecodeError
// (spec.md §4.6): every instruction in this system is one word wide, so a
// jump target not word-aligned cannot have been produced by this encoder.
func decodeJ(bits bitpack.BitPack, address uint32, labels *asm.LabelTable) (string, error) {
	c20 := bits.Slice(0, 0)
	c10_1 := bits.Slice(1, 10)
	c11 := bits.Slice(11, 11)
	c19_12 := bits.Slice(12, 19)
	rd := bits.Slice(20, 24)

	imm := c20.Concat(c19_12).Concat(c11).Concat(c10_1)
	offsetHalf := imm.Int64()
	if offsetHalf%2 != 0 {
		return "", fmt.Errorf("%w: misaligned jump offset %d", isa.ErrDecode, offsetHalf*2)
	}

	// With no label table, the original's bits_to_line prints the raw
	// signed byte offset (imm20.int * 2) rather than resolving an address
	// (original_source rv32i.py's jal branch: "jal {rd}, {address}").
	if labels == nil {
		return fmt.Sprintf("jal %s, %d", regName(rd), offsetHalf*2), nil
	}

	target := uint32(int64(address) + offsetHalf*2)
	return fmt.Sprintf("jal %s, %s", regName(rd), targetText(target, labels)), nil
}
