// Package encoder packs a parsed assembly line into a bit-exact 32-bit
// machine word. Every format's layout lives in its own file
// (rtype.go, itype.go, ltype.go, stype.go, branch.go, jump.go, utype.go);
// this file only dispatches on format class.
package encoder

import (
	"fmt"

	"github.com/rv32i-tools/rv32i-asm/asm"
	"github.com/rv32i-tools/rv32i-asm/bitpack"
	"github.com/rv32i-tools/rv32i-asm/isa"
)

// Encode produces the 32-bit word for line, given the final label table
// and the line's own byte address (needed for PC-relative branch/jump
// offsets). It is a pure function: no state is mutated or retained
// between calls.
func Encode(line *asm.ParsedLine, labels *asm.LabelTable, address uint32) (uint32, error) {
	mnemonic := line.Instruction

	if mnemonic == "halt" {
		return encodeHalt()
	}

	switch isa.FormatOf(mnemonic) {
	case isa.FormatR:
		return encodeR(mnemonic, line.Args)
	case isa.FormatI:
		return encodeI(mnemonic, line.Args)
	case isa.FormatL:
		return encodeL(mnemonic, line.Args)
	case isa.FormatS:
		return encodeS(mnemonic, line.Args)
	case isa.FormatB:
		return encodeB(mnemonic, line.Args, labels, address)
	case isa.FormatU:
		return encodeU(mnemonic, line.Args)
	case isa.FormatJ:
		return encodeJ(mnemonic, line.Args, labels, address)
	default:
		return 0, fmt.Errorf("%w: %q", isa.ErrUnknownMnemonic, mnemonic)
	}
}

func encodeHalt() (uint32, error) {
	return buildWord(bitpack.Zero(32))
}

// buildWord concatenates fields high-to-low and asserts the spec.md §4.5
// post-condition that every emitted word is exactly 32 bits — a violation
// would be an encoder bug, never a user-facing input error.
func buildWord(fields ...bitpack.BitPack) (uint32, error) {
	acc := bitpack.Zero(0)
	for _, f := range fields {
		acc = acc.Concat(f)
	}
	if acc.Len() != 32 {
		return 0, fmt.Errorf("%w: built %d bits instead of 32", isa.ErrInternalWidth, acc.Len())
	}
	return acc.Uint32(), nil
}

func regField(name string) (bitpack.BitPack, error) {
	reg, err := isa.ParseRegister(name)
	if err != nil {
		return bitpack.BitPack{}, err
	}
	bp, _ := bitpack.FromUnsigned(uint64(reg), 5)
	return bp, nil
}

func opcodeField(mnemonic string) (bitpack.BitPack, error) {
	op, ok := isa.Opcode(mnemonic)
	if !ok {
		return bitpack.BitPack{}, fmt.Errorf("%w: %q", isa.ErrUnknownMnemonic, mnemonic)
	}
	bp, _ := bitpack.FromUnsigned(uint64(op), 7)
	return bp, nil
}

func funct3Field(mnemonic string) (bitpack.BitPack, error) {
	f3, ok := isa.Funct3(mnemonic)
	if !ok {
		return bitpack.BitPack{}, fmt.Errorf("%w: %q has no funct3", isa.ErrUnknownMnemonic, mnemonic)
	}
	bp, _ := bitpack.FromUnsigned(uint64(f3), 3)
	return bp, nil
}
