package asm

import "fmt"

// expansion is one real (mnemonic, args) instruction a pseudo-instruction
// expands into.
type expansion struct {
	mnemonic string
	args     []string
}

// pseudoExpander is a pure function of a pseudo's textual arguments,
// returning the one-or-more real instructions it stands for. Modeled as a
// closed dispatch table rather than a dynamic lookup chain, per spec.md
// §9's design note: the table is static and every arm is a small pure
// function.
type pseudoExpander func(args []string) ([]expansion, error)

func arity(name string, args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("%s requires %d operands, got %d", name, n, len(args))
	}
	return nil
}

var pseudoTable map[string]pseudoExpander

func init() {
	pseudoTable = map[string]pseudoExpander{
		"nop": func(a []string) ([]expansion, error) {
			if err := arity("nop", a, 0); err != nil {
				return nil, err
			}
			return one("addi", "zero", "zero", "0"), nil
		},
		"mv": func(a []string) ([]expansion, error) {
			if err := arity("mv", a, 2); err != nil {
				return nil, err
			}
			return one("addi", a[0], a[1], "0"), nil
		},
		"not": func(a []string) ([]expansion, error) {
			if err := arity("not", a, 2); err != nil {
				return nil, err
			}
			return one("xori", a[0], a[1], "-1"), nil
		},
		"neg": func(a []string) ([]expansion, error) {
			if err := arity("neg", a, 2); err != nil {
				return nil, err
			}
			return one("sub", a[0], "zero", a[1]), nil
		},
		"seqz": func(a []string) ([]expansion, error) {
			if err := arity("seqz", a, 2); err != nil {
				return nil, err
			}
			return one("sltiu", a[0], a[1], "1"), nil
		},
		"snez": func(a []string) ([]expansion, error) {
			if err := arity("snez", a, 2); err != nil {
				return nil, err
			}
			return one("sltu", a[0], "zero", a[1]), nil
		},
		"sltz": func(a []string) ([]expansion, error) {
			if err := arity("sltz", a, 2); err != nil {
				return nil, err
			}
			return one("slt", a[0], a[1], "zero"), nil
		},
		"sgtz": func(a []string) ([]expansion, error) {
			if err := arity("sgtz", a, 2); err != nil {
				return nil, err
			}
			return one("slt", a[0], "zero", a[1]), nil
		},
		"beqz": func(a []string) ([]expansion, error) {
			if err := arity("beqz", a, 2); err != nil {
				return nil, err
			}
			return one("beq", a[0], "zero", a[1]), nil
		},
		"bnez": func(a []string) ([]expansion, error) {
			if err := arity("bnez", a, 2); err != nil {
				return nil, err
			}
			return one("bne", a[0], "zero", a[1]), nil
		},
		"blez": func(a []string) ([]expansion, error) {
			if err := arity("blez", a, 2); err != nil {
				return nil, err
			}
			return one("bge", "zero", a[0], a[1]), nil
		},
		"bgez": func(a []string) ([]expansion, error) {
			if err := arity("bgez", a, 2); err != nil {
				return nil, err
			}
			return one("bge", a[0], "zero", a[1]), nil
		},
		"bltz": func(a []string) ([]expansion, error) {
			if err := arity("bltz", a, 2); err != nil {
				return nil, err
			}
			return one("blt", a[0], "zero", a[1]), nil
		},
		"bgtz": func(a []string) ([]expansion, error) {
			if err := arity("bgtz", a, 2); err != nil {
				return nil, err
			}
			return one("blt", "zero", a[0], a[1]), nil
		},
		"bgt": func(a []string) ([]expansion, error) {
			if err := arity("bgt", a, 3); err != nil {
				return nil, err
			}
			return one("blt", a[1], a[0], a[2]), nil
		},
		"ble": func(a []string) ([]expansion, error) {
			if err := arity("ble", a, 3); err != nil {
				return nil, err
			}
			return one("bge", a[1], a[0], a[2]), nil
		},
		"bgtu": func(a []string) ([]expansion, error) {
			if err := arity("bgtu", a, 3); err != nil {
				return nil, err
			}
			return one("bltu", a[1], a[0], a[2]), nil
		},
		"bleu": func(a []string) ([]expansion, error) {
			if err := arity("bleu", a, 3); err != nil {
				return nil, err
			}
			return one("bltu", a[1], a[0], a[2]), nil
		},
		"j": func(a []string) ([]expansion, error) {
			if err := arity("j", a, 1); err != nil {
				return nil, err
			}
			return one("jal", "zero", a[0]), nil
		},
		"jr": func(a []string) ([]expansion, error) {
			if err := arity("jr", a, 1); err != nil {
				return nil, err
			}
			return one("jalr", "zero", a[0], "0"), nil
		},
		"ret": func(a []string) ([]expansion, error) {
			if err := arity("ret", a, 0); err != nil {
				return nil, err
			}
			return one("jalr", "zero", "ra", "0"), nil
		},
		"call": func(a []string) ([]expansion, error) {
			if err := arity("call", a, 1); err != nil {
				return nil, err
			}
			return one("jal", "ra", a[0]), nil
		},
		"li": expandLi,
		// la is deliberately absent: the Open Question on la resolves to
		// "raises UnknownMnemonic" (DESIGN.md), so la must fall through to
		// the encoder's ordinary unrecognised-mnemonic path rather than be
		// recognized here as a pseudo that always errors.
	}
}

func one(mnemonic string, args ...string) []expansion {
	return []expansion{{mnemonic: mnemonic, args: args}}
}

// expandLi implements spec.md §4.4's li table entry: for |expr| < 2^11 a
// single addi; otherwise a lui+addi pair, compensating for addi's sign
// extension of its 12-bit immediate the way the original assembler does
// (spec.md §4.4, credited there to the "upimm += 1" trick).
func expandLi(a []string) ([]expansion, error) {
	if err := arity("li", a, 2); err != nil {
		return nil, err
	}
	rd, expr := a[0], a[1]
	imm, err := ParseIntImmediate(expr)
	if err != nil {
		return nil, err
	}
	if err := CheckImm(imm, 12); err == nil {
		return one("addi", rd, "zero", expr), nil
	}
	imm12 := imm & 0xFFF
	upimm := imm >> 12
	imm12Signed := imm12
	if imm12 >= 0x800 {
		imm12Signed = -1
		upimm++
	}
	return []expansion{
		{mnemonic: "lui", args: []string{rd, fmt.Sprintf("%d", upimm)}},
		{mnemonic: "addi", args: []string{rd, rd, fmt.Sprintf("%d", imm12Signed)}},
	}, nil
}
