package encoder

import (
	"fmt"

	"github.com/rv32i-tools/rv32i-asm/asm"
	"github.com/rv32i-tools/rv32i-asm/bitpack"
	"github.com/rv32i-tools/rv32i-asm/isa"
)

// encodeI packs addi/xori/ori/andi/slli/srli/srai/slti/sltiu/jalr:
// rd, rs1, imm12.
//
// Layout (high to low): imm12(12) | rs1(5) | funct3(3) | rd(5) | opcode(7)
//
// slli/srli/srai are shift forms: spec.md §9 flags the original's bug of
// overwriting the high 7 bits of imm12 with funct7 only inside the L-type
// branch (which never fires for shifts, since shifts are I-type); the
// correct fix — applied here — sets funct7 in the I-type branch itself
// and restricts the shift amount to 5 bits.
func encodeI(mnemonic string, args []string) (uint32, error) {
	if len(args) != 3 {
		return 0, fmt.Errorf("%w: %s requires 3 operands, got %d", isa.ErrMalformedOperand, mnemonic, len(args))
	}
	rd, err := regField(args[0])
	if err != nil {
		return 0, err
	}
	rs1, err := regField(args[1])
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

	if isa.IsPseudoTargetShift(mnemonic) {
		shamt, err := asm.ParseIntImmediate(args[2])
		if err != nil {
			return 0, err
		}
		if shamt < 0 || shamt > 31 {
			return 0, fmt.Errorf("%w: shift amount %d does not fit in 5 bits", isa.ErrImmediateRange, shamt)
		}
		shamtField, err := bitpack.FromUnsigned(uint64(shamt), 5)
		if err != nil {
			return 0, fmt.Errorf("%w: shift amount %d does not fit in 5 bits", isa.ErrImmediateRange, shamt)
		}
		funct7, _ := bitpack.FromUnsigned(uint64(shiftFunct7(mnemonic)), 7)
		imm12 := funct7.Concat(shamtField)
		return buildWord(imm12, rs1, funct3, rd, opcode)
	}

	imm, err := asm.ParseIntImmediate(args[2])
	if err != nil {
		return 0, err
	}
	if err := asm.CheckImm(imm, 12); err != nil {
		return 0, err
	}
	imm12, _ := bitpack.FromSigned(imm, 12)
	return buildWord(imm12, rs1, funct3, rd, opcode)
}

func shiftFunct7(mnemonic string) uint32 {
	if mnemonic == "srai" {
		return 0b0100000
	}
	return 0
}
