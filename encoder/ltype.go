package encoder

import (
	"fmt"

	"github.com/rv32i-tools/rv32i-asm/asm"
	"github.com/rv32i-tools/rv32i-asm/bitpack"
	"github.com/rv32i-tools/rv32i-asm/isa"
)

// encodeL packs lb/lh/lw/lbu/lhu: rd, imm(rs1). Encoded identically to
// I-type with opcode 0000011 (spec.md §4.5).
func encodeL(mnemonic string, args []string) (uint32, error) {
	if len(args) != 2 {
		return 0, fmt.Errorf("%w: %s requires 2 operands, got %d", isa.ErrMalformedOperand, mnemonic, len(args))
	}
	rd, err := regField(args[0])
	if err != nil {
		return 0, err
	}
	imm, regName, err := parseImmReg(args[1])
	if err != nil {
		return 0, err
	}
	if err := asm.CheckImm(imm, 12); err != nil {
		return 0, err
	}
	rs1, err := regField(regName)
	if err != nil {
		return 0, err
	}
	funct3, err := funct3Field(mnemonic)
	if err != nil {
		return 0, err
	}
	opcode, err := opcodeField(mnemonic)
	if err != nil {
		return 0, err
	}
	imm12, _ := bitpack.FromSigned(imm, 12)
	return buildWord(imm12, rs1, funct3, rd, opcode)
}
