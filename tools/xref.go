package tools

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rv32i-tools/rv32i-asm/asm"
)

// ReferenceType indicates how a symbol is used.
type ReferenceType int

const (
	RefDefinition ReferenceType = iota // Symbol defined here
	RefBranch                          // Conditional branch target
	RefJump                            // Unconditional jal target
)

func (r ReferenceType) String() string {
	switch r {
	case RefDefinition:
		return "definition"
	case RefBranch:
		return "branch"
	case RefJump:
		return "jump"
	default:
		return "unknown"
	}
}

// Reference represents a single reference to a symbol.
type Reference struct {
	Type ReferenceType
	Line int
}

// Symbol represents a label and all its references.
type Symbol struct {
	Name       string
	Definition *Reference
	References []*Reference
	IsFunction bool // true if referenced by "call" (jal ra, label)
}

// XRefGenerator builds a cross-reference table over an *asm.Program,
// adapted from the teacher's parser-driven xref.go (spec.md §4.10).
type XRefGenerator struct {
	program *asm.Program
	symbols map[string]*Symbol
}

// NewXRefGenerator creates a new cross-reference generator.
func NewXRefGenerator() *XRefGenerator {
	return &XRefGenerator{symbols: make(map[string]*Symbol)}
}

// Generate builds the cross-reference table for prog.
func (x *XRefGenerator) Generate(prog *asm.Program) map[string]*Symbol {
	x.program = prog
	x.symbols = make(map[string]*Symbol)

	x.collectDefinitions()
	x.collectReferences()
	return x.symbols
}

func (x *XRefGenerator) symbol(name string) *Symbol {
	sym, ok := x.symbols[name]
	if !ok {
		sym = &Symbol{Name: name}
		x.symbols[name] = sym
	}
	return sym
}

func (x *XRefGenerator) collectDefinitions() {
	var address uint32
	for _, line := range x.program.ParsedLines {
		if line.Label != "" {
			x.symbol(line.Label).Definition = &Reference{Type: RefDefinition, Line: line.LineNumber}
		}
		_ = address
		address += 4
	}
}

func (x *XRefGenerator) collectReferences() {
	for _, line := range x.program.ParsedLines {
		if target, ok := labelOperand(line); ok {
			refType := RefJump
			if branchMnemonics[line.Instruction] {
				refType = RefBranch
			}
			sym := x.symbol(target)
			sym.References = append(sym.References, &Reference{Type: refType, Line: line.LineNumber})
			if line.Instruction == "jal" && len(line.Args) == 2 && line.Args[0] == "ra" {
				sym.IsFunction = true
			}
		}
	}
}

// XRefReport renders a cross-reference table as text.
type XRefReport struct {
	symbols []*Symbol
}

// NewXRefReport creates a report from a symbol table, sorted by name.
func NewXRefReport(symbols map[string]*Symbol) *XRefReport {
	sorted := make([]*Symbol, 0, len(symbols))
	for _, sym := range symbols {
		sorted = append(sorted, sym)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	return &XRefReport{symbols: sorted}
}

// String renders the report.
func (r *XRefReport) String() string {
	var sb strings.Builder
	sb.WriteString("Symbol Cross-Reference\n")
	sb.WriteString("======================\n\n")

	for _, sym := range r.symbols {
		sb.WriteString(fmt.Sprintf("%-30s", sym.Name))
		if sym.IsFunction {
			sb.WriteString(" [function]")
		} else {
			sb.WriteString(" [label]")
		}
		sb.WriteString("\n")

		if sym.Definition != nil {
			sb.WriteString(fmt.Sprintf("  Defined:     line %d\n", sym.Definition.Line))
		} else {
			sb.WriteString("  Defined:     (undefined)\n")
		}

		if len(sym.References) == 0 {
			sb.WriteString("  Referenced:  (never)\n")
		} else {
			sb.WriteString(fmt.Sprintf("  Referenced:  %d time(s)\n", len(sym.References)))
			lines := make([]string, len(sym.References))
			for i, ref := range sym.References {
				lines[i] = fmt.Sprintf("%d", ref.Line)
			}
			sb.WriteString(fmt.Sprintf("    line(s) %s\n", strings.Join(lines, ", ")))
		}
		sb.WriteString("\n")
	}

	total, defined, undefined, unused, functions := len(r.symbols), 0, 0, 0, 0
	for _, sym := range r.symbols {
		if sym.Definition != nil {
			defined++
		} else {
			undefined++
		}
		if len(sym.References) == 0 {
			unused++
		}
		if sym.IsFunction {
			functions++
		}
	}
	sb.WriteString("Summary\n")
	sb.WriteString("=======\n")
	sb.WriteString(fmt.Sprintf("Total symbols:     %d\n", total))
	sb.WriteString(fmt.Sprintf("Defined:           %d\n", defined))
	sb.WriteString(fmt.Sprintf("Undefined:         %d\n", undefined))
	sb.WriteString(fmt.Sprintf("Unused:            %d\n", unused))
	sb.WriteString(fmt.Sprintf("Functions:         %d\n", functions))

	return sb.String()
}

// GenerateXRef is a convenience function producing a formatted report
// directly from a parsed program.
func GenerateXRef(prog *asm.Program) string {
	gen := NewXRefGenerator()
	symbols := gen.Generate(prog)
	return NewXRefReport(symbols).String()
}
