package encoder

import (
	"fmt"

	"github.com/rv32i-tools/rv32i-asm/asm"
	"github.com/rv32i-tools/rv32i-asm/bitpack"
	"github.com/rv32i-tools/rv32i-asm/isa"
)

// encodeJ packs jal: rd, label.
//
// Layout of the 20 immediate bits (high to low):
//
//	imm[20] | imm[10:1] | imm[11] | imm[19:12] | rd(5) | opcode(1101111)
func encodeJ(mnemonic string, args []string, labels *asm.LabelTable, address uint32) (uint32, error) {
	if len(args) != 2 {
		return 0, fmt.Errorf("%w: %s requires 2 operands, got %d", isa.ErrMalformedOperand, mnemonic, len(args))
	}
	rd, err := regField(args[0])
	if err != nil {
		return 0, err
	}
	label := args[1]
	target, ok := labels.Lookup(label)
	if !ok {
		return 0, fmt.Errorf("%w: %q", isa.ErrUnknownLabel, label)
	}
	offsetBytes := int64(int32(target) - int32(address))
	offsetHalf := offsetBytes >> 1
	if err := asm.CheckImm(offsetHalf, 20); err != nil {
		return 0, err
	}
	imm, _ := bitpack.FromSigned(offsetHalf, 20)

	opcode, err := opcodeField(mnemonic)
	if err != nil {
		return 0, err
	}

	return buildWord(
		imm.Slice(0, 0),   // imm[20]
		imm.Slice(10, 19), // imm[10:1]
		imm.Slice(9, 9),   // imm[11]
		imm.Slice(1, 8),   // imm[19:12]
		rd,
		opcode,
	)
}
