package encoder

import (
	"fmt"

	"github.com/rv32i-tools/rv32i-asm/asm"
	"github.com/rv32i-tools/rv32i-asm/bitpack"
	"github.com/rv32i-tools/rv32i-asm/isa"
)

// encodeS packs sb/sh/sw: rs2, imm(rs1).
//
// Layout (high to low): imm[11:5](7) | rs2(5) | rs1(5) | funct3(3) | imm[4:0](5) | opcode(7)
func encodeS(mnemonic string, args []string) (uint32, error) {
	if len(args) != 2 {
		return 0, fmt.Errorf("%w: %s requires 2 operands, got %d", isa.ErrMalformedOperand, mnemonic, len(args))
	}
	rs2, err := regField(args[0])
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
	hi := imm12.Slice(0, 6)  // imm[11:5]
	lo := imm12.Slice(7, 11) // imm[4:0]
	return buildWord(hi, rs2, rs1, funct3, lo, opcode)
}
