// Package decoder turns a 32-bit machine word back into assembly text.
// Each format's reconstruction lives in its own file (rtype.go, itype.go,
// ltype.go, stype.go, branch.go, jump.go, utype.go), mirroring the
// encoder package it inverts; this file only dispatches on opcode.
package decoder

import (
	"fmt"

	"github.com/rv32i-tools/rv32i-asm/asm"
	"github.com/rv32i-tools/rv32i-asm/bitpack"
	"github.com/rv32i-tools/rv32i-asm/isa"
)

// Decode renders word (fetched from address) as assembly text. labels is
// optional: when nil, branch and jump targets are printed as their raw
// encoded values (the unsigned 12-bit branch immediate, the signed jump
// byte offset), not as addresses; when supplied, a target with no existing
// entry is recorded
// under a synthetic LABEL_<N> name (spec.md §4.6).
func Decode(word uint32, address uint32, labels *asm.LabelTable) (string, error) {
	if word == 0 {
		return "halt", nil
	}

	bits, err := bitpack.FromUnsigned(uint64(word), 32)
	if err != nil {
		return "", fmt.Errorf("%w: %v", isa.ErrDecode, err)
	}
	opcode := bits.Slice(25, 31).Uint64()

	switch uint32(opcode) {
	case isa.OpcodeR:
		return decodeR(bits)
	case isa.OpcodeI:
		return decodeI(bits, false)
	case isa.OpcodeJALR:
		return decodeI(bits, true)
	case isa.OpcodeL:
		return decodeL(bits)
	case isa.OpcodeS:
		return decodeS(bits)
	case isa.OpcodeB:
		return decodeB(bits, address, labels)
	case isa.OpcodeLUI, isa.OpcodeAUIPC:
		return decodeU(bits, opcode)
	case isa.OpcodeJAL:
		return decodeJ(bits, address, labels)
	default:
		return "", fmt.Errorf("%w: unrecognised opcode %07b", isa.ErrDecode, opcode)
	}
}

func regName(field bitpack.BitPack) string {
	return isa.RegisterName(isa.Register(field.Uint64()))
}
