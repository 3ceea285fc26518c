package encoder

import (
	"fmt"

	"github.com/rv32i-tools/rv32i-asm/asm"
	"github.com/rv32i-tools/rv32i-asm/bitpack"
	"github.com/rv32i-tools/rv32i-asm/isa"
)

// encodeB packs beq/bne/blt/bge/bltu/bgeu: rs1, rs2, label.
//
// The ISA encodes only bits [12:1] of the byte offset (bit 0 is always 0
// for an aligned branch target) scrambled into five separate slices of
// the 32-bit word — this is the single trickiest piece of logic in the
// system (spec.md §9), isolated here behind plain bitpack.Slice calls so
// the scramble order is visible in one place and independently testable.
//
// Layout (high to low):
//
//	imm[12] | imm[10:5] | rs2 | rs1 | funct3 | imm[4:1] | imm[11] | opcode(1100011)
func encodeB(mnemonic string, args []string, labels *asm.LabelTable, address uint32) (uint32, error) {
	if len(args) != 3 {
		return 0, fmt.Errorf("%w: %s requires 3 operands, got %d", isa.ErrMalformedOperand, mnemonic, len(args))
	}
	rs1, err := regField(args[0])
	if err != nil {
		return 0, err
	}
	rs2, err := regField(args[1])
	if err != nil {
		return 0, err
	}
	label := args[2]
	target, ok := labels.Lookup(label)
	if !ok {
		return 0, fmt.Errorf("%w: %q", isa.ErrUnknownLabel, label)
	}
	offsetBytes := int64(int32(target) - int32(address))
	offsetHalf := offsetBytes >> 1
	if err := asm.CheckImm(offsetHalf, 12); err != nil {
		return 0, err
	}
	imm12, _ := bitpack.FromSigned(offsetHalf, 12)

	funct3, err := funct3Field(mnemonic)
	if err != nil {
		return 0, err
	}
	opcode, err := opcodeField(mnemonic)
	if err != nil {
		return 0, err
	}

	return buildWord(
		imm12.Slice(0, 0),  // imm[12]
		imm12.Slice(2, 7),  // imm[10:5]
		rs2,
		rs1,
		funct3,
		imm12.Slice(8, 11), // imm[4:1]
		imm12.Slice(1, 1),  // imm[11]
		opcode,
	)
}
