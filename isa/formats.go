package isa

// Format is the instruction-format class a mnemonic belongs to.
type Format int

const (
	FormatUnknown Format = iota
	FormatR
	FormatI
	FormatL
	FormatS
	FormatB
	FormatU
	FormatJ
	FormatHalt
)

func (f Format) String() string {
	switch f {
	case FormatR:
		return "R"
	case FormatI:
		return "I"
	case FormatL:
		return "L"
	case FormatS:
		return "S"
	case FormatB:
		return "B"
	case FormatU:
		return "U"
	case FormatJ:
		return "J"
	case FormatHalt:
		return "halt"
	default:
		return "unknown"
	}
}

var rTypes = []string{"add", "sub", "xor", "or", "and", "sll", "srl", "sra", "slt", "sltu"}
var iTypes = []string{"addi", "xori", "ori", "andi", "slli", "srli", "srai", "slti", "sltiu", "jalr"}
var lTypes = []string{"lb", "lh", "lw", "lbu", "lhu"}
var sTypes = []string{"sb", "sh", "sw"}
var bTypes = []string{"beq", "bne", "blt", "bge", "bltu", "bgeu"}
var uTypes = []string{"lui", "auipc"}
var jTypes = []string{"jal"}

// mnemonicFormat maps every real (non-pseudo, non-directive) mnemonic to
// its format class, built once from the per-class lists above.
var mnemonicFormat = func() map[string]Format {
	m := make(map[string]Format)
	add := func(names []string, f Format) {
		for _, n := range names {
			m[n] = f
		}
	}
	add(rTypes, FormatR)
	add(iTypes, FormatI)
	add(lTypes, FormatL)
	add(sTypes, FormatS)
	add(bTypes, FormatB)
	add(uTypes, FormatU)
	add(jTypes, FormatJ)
	m["halt"] = FormatHalt
	return m
}()

// FormatOf returns the format class for mnemonic, or FormatUnknown if it
// is not a real instruction (it may still be a pseudo or a directive).
func FormatOf(mnemonic string) Format {
	if f, ok := mnemonicFormat[mnemonic]; ok {
		return f
	}
	return FormatUnknown
}

// Shared 7-bit opcodes, keyed by mnemonic.
var opcodes = map[string]uint32{
	"add": 0b0110011, "sub": 0b0110011, "xor": 0b0110011, "or": 0b0110011, "and": 0b0110011,
	"sll": 0b0110011, "srl": 0b0110011, "sra": 0b0110011, "slt": 0b0110011, "sltu": 0b0110011,

	"addi": 0b0010011, "xori": 0b0010011, "ori": 0b0010011, "andi": 0b0010011,
	"slli": 0b0010011, "srli": 0b0010011, "srai": 0b0010011, "slti": 0b0010011, "sltiu": 0b0010011,
	"jalr": 0b1100111,

	"lb": 0b0000011, "lh": 0b0000011, "lw": 0b0000011, "lbu": 0b0000011, "lhu": 0b0000011,

	"sb": 0b0100011, "sh": 0b0100011, "sw": 0b0100011,

	"beq": 0b1100011, "bne": 0b1100011, "blt": 0b1100011, "bge": 0b1100011, "bltu": 0b1100011, "bgeu": 0b1100011,

	"lui": 0b0110111, "auipc": 0b0010111,

	"jal": 0b1101111,
}

// Opcode returns the 7-bit opcode for a real mnemonic.
func Opcode(mnemonic string) (uint32, bool) {
	v, ok := opcodes[mnemonic]
	return v, ok
}

// funct3 assignments, keyed by mnemonic (formats that carry a funct3 field).
var funct3 = map[string]uint32{
	"add": 0b000, "sub": 0b000, "addi": 0b000, "lb": 0b000, "sb": 0b000, "beq": 0b000, "jalr": 0b000,
	"sll": 0b001, "slli": 0b001, "lh": 0b001, "sh": 0b001, "bne": 0b001,
	"slt": 0b010, "slti": 0b010, "lw": 0b010, "sw": 0b010,
	"sltu": 0b011, "sltiu": 0b011,
	"xor": 0b100, "xori": 0b100, "lbu": 0b100, "blt": 0b100,
	"srl": 0b101, "sra": 0b101, "srli": 0b101, "srai": 0b101, "lhu": 0b101, "bge": 0b101,
	"or": 0b110, "ori": 0b110, "bltu": 0b110,
	"and": 0b111, "andi": 0b111, "bgeu": 0b111,
}

// Funct3 returns the 3-bit funct3 for a mnemonic that carries one.
func Funct3(mnemonic string) (uint32, bool) {
	v, ok := funct3[mnemonic]
	return v, ok
}

// Funct7 returns the 7-bit funct7 for R-type mnemonics; 0 except for
// sub/sra which use 0b0100000.
func Funct7(mnemonic string) uint32 {
	switch mnemonic {
	case "sub", "sra":
		return 0b0100000
	default:
		return 0
	}
}

// reverse tables, one per format class that needs one, keyed by funct3,
// used by the decoder.
var rTypeByFunct3 = map[uint32]string{
	0b001: "sll", 0b010: "slt", 0b011: "sltu", 0b100: "xor", 0b110: "or", 0b111: "and",
}
var iTypeByFunct3 = map[uint32]string{
	0b000: "addi", 0b001: "slli", 0b010: "slti", 0b011: "sltiu", 0b100: "xori", 0b110: "ori", 0b111: "andi",
}
var lTypeByFunct3 = map[uint32]string{
	0b000: "lb", 0b001: "lh", 0b010: "lw", 0b100: "lbu", 0b101: "lhu",
}
var sTypeByFunct3 = map[uint32]string{
	0b000: "sb", 0b001: "sh", 0b010: "sw",
}
var bTypeByFunct3 = map[uint32]string{
	0b000: "beq", 0b001: "bne", 0b100: "blt", 0b101: "bge", 0b110: "bltu", 0b111: "bgeu",
}

// RTypeMnemonic resolves an R-type opcode by funct3, excluding the
// add/sub and srl/sra pairs which the decoder must disambiguate by funct7.
func RTypeMnemonic(f3 uint32) (string, bool) {
	m, ok := rTypeByFunct3[f3]
	return m, ok
}

// ITypeMnemonic resolves a non-shift I-type mnemonic by funct3 (shift
// forms are disambiguated by funct7 by the caller).
func ITypeMnemonic(f3 uint32) (string, bool) {
	m, ok := iTypeByFunct3[f3]
	return m, ok
}

// LTypeMnemonic resolves an L-type mnemonic by funct3.
func LTypeMnemonic(f3 uint32) (string, bool) {
	m, ok := lTypeByFunct3[f3]
	return m, ok
}

// STypeMnemonic resolves an S-type mnemonic by funct3.
func STypeMnemonic(f3 uint32) (string, bool) {
	m, ok := sTypeByFunct3[f3]
	return m, ok
}

// BTypeMnemonic resolves a B-type mnemonic by funct3.
func BTypeMnemonic(f3 uint32) (string, bool) {
	m, ok := bTypeByFunct3[f3]
	return m, ok
}

// Opcode field values used directly by the decoder's top-level dispatch.
const (
	OpcodeR    uint32 = 0b0110011
	OpcodeI    uint32 = 0b0010011
	OpcodeL    uint32 = 0b0000011
	OpcodeS    uint32 = 0b0100011
	OpcodeB    uint32 = 0b1100011
	OpcodeJALR uint32 = 0b1100111
	OpcodeLUI  uint32 = 0b0110111
	OpcodeAUIPC uint32 = 0b0010111
	OpcodeJAL  uint32 = 0b1101111
)

// IsPseudoTargetShift reports whether mnemonic is one of the I-type shift
// forms whose immediate is a 5-bit shift amount rather than a 12-bit
// signed value, and whose high bits carry a funct7 instead of sign bits.
func IsPseudoTargetShift(mnemonic string) bool {
	switch mnemonic {
	case "slli", "srli", "srai":
		return true
	default:
		return false
	}
}
