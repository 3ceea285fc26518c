package decoder

import (
	"fmt"

	"github.com/rv32i-tools/rv32i-asm/bitpack"
	"github.com/rv32i-tools/rv32i-asm/isa"
)

// decodeU inverts encodeU's layout: upimm(20) | rd(5) | opcode(7).
func decodeU(bits bitpack.BitPack, opcode uint64) (string, error) {
	upimm := bits.Slice(0, 19).Int64()
	rd := bits.Slice(20, 24)

	var mnemonic string
	switch uint32(opcode) {
	case isa.OpcodeLUI:
		mnemonic = "lui"
	case isa.OpcodeAUIPC:
		mnemonic = "auipc"
	}
	return fmt.Sprintf("%s %s, %d", mnemonic, regName(rd), upimm), nil
}
