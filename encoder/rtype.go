package encoder

import (
	"errors"
	"fmt"

	"github.com/rv32i-tools/rv32i-asm/bitpack"
	"github.com/rv32i-tools/rv32i-asm/isa"
)

// encodeR packs add/sub/xor/or/and/sll/srl/sra/slt/sltu: rd, rs1, rs2.
//
// Layout (high to low): funct7(7) | rs2(5) | rs1(5) | funct3(3) | rd(5) | opcode(7)
//
// If a register name fails to resolve, this retries once with the
// mnemonic suffixed by "i" — the common source error of a GCC-style
// immediate form missing its "i" (spec.md §4.5/§9). The retry fires only
// for ErrUnknownRegister, never for a wrong-arity MalformedOperand.
func encodeR(mnemonic string, args []string) (uint32, error) {
	if len(args) != 3 {
		return 0, fmt.Errorf("%w: %s requires 3 operands, got %d", isa.ErrMalformedOperand, mnemonic, len(args))
	}

	rd, err := regField(args[0])
	if err == nil {
		var rs1, rs2 bitpack.BitPack
		rs1, err = regField(args[1])
		if err == nil {
			rs2, err = regField(args[2])
			if err == nil {
				return buildRWord(mnemonic, rd, rs1, rs2)
			}
		}
	}

	if errors.Is(err, isa.ErrUnknownRegister) {
		iMnemonic := mnemonic + "i"
		if isa.FormatOf(iMnemonic) == isa.FormatI {
			return encodeI(iMnemonic, args)
		}
	}
	return 0, err
}

func buildRWord(mnemonic string, rd, rs1, rs2 bitpack.BitPack) (uint32, error) {
	funct7, _ := bitpack.FromUnsigned(uint64(isa.Funct7(mnemonic)), 7)
	funct3, err := funct3Field(mnemonic)
	if err != nil {
		return 0, err
	}
	opcode, err := opcodeField(mnemonic)
	if err != nil {
		return 0, err
	}
	return buildWord(funct7, rs2, rs1, funct3, rd, opcode)
}
