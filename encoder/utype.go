package encoder

import (
	"fmt"

	"github.com/rv32i-tools/rv32i-asm/asm"
	"github.com/rv32i-tools/rv32i-asm/bitpack"
	"github.com/rv32i-tools/rv32i-asm/isa"
)

// encodeU packs lui/auipc: rd, upimm.
//
// Layout (high to low): upimm(20) | rd(5) | opcode(7)
func encodeU(mnemonic string, args []string) (uint32, error) {
	if len(args) != 2 {
		return 0, fmt.Errorf("%w: %s requires 2 operands, got %d", isa.ErrMalformedOperand, mnemonic, len(args))
	}
	rd, err := regField(args[0])
	if err != nil {
		return 0, err
	}
	imm, err := asm.ParseIntImmediate(args[1])
	if err != nil {
		return 0, err
	}
	if err := asm.CheckImm(imm, 20); err != nil {
		return 0, err
	}
	opcode, err := opcodeField(mnemonic)
	if err != nil {
		return 0, err
	}
	upimm, _ := bitpack.FromSigned(imm, 20)
	return buildWord(upimm, rd, opcode)
}
