package assemble

import (
	"fmt"
	"io"
	"strings"

	"github.com/rv32i-tools/rv32i-asm/asm"
)

// WriteImage writes the memory image: one word per line, either as 8
// lowercase hex digits or 32 binary digits, optionally annotated with
// the originating PC, line number, and source text (spec.md §6).
// outputPath selecting a name containing "memb" is this program's one
// signal to switch to binary rendering (spec.md §4.7).
func WriteImage(w io.Writer, prog *asm.Program, result *Result, outputPath string, annotate bool) error {
	binary := strings.Contains(outputPath, "memb")
	var address uint32
	for i, word := range result.Words {
		line := prog.ParsedLines[i]
		var rendered string
		if binary {
			rendered = fmt.Sprintf("%032b", word)
		} else {
			rendered = fmt.Sprintf("%08x", word)
		}
		if annotate {
			rendered += fmt.Sprintf(" // PC=0x%x line=%s: %s", address, subLineText(line), line.Original)
		}
		if _, err := fmt.Fprintln(w, rendered); err != nil {
			return err
		}
		address += 4
	}
	return nil
}

// WriteSourceMap writes the ADDRESS LINE: NEAREST_LABEL table, one row
// per emitted instruction, in the HHHHHHHH L: NAME format spec.md §6
// specifies (uppercase 8-digit hex address).
func WriteSourceMap(w io.Writer, prog *asm.Program) error {
	var address uint32
	for _, line := range prog.ParsedLines {
		name := prog.Labels.Nearest(address)
		if _, err := fmt.Fprintf(w, "%08X %s: %s\n", address, subLineText(line), name); err != nil {
			return err
		}
		address += 4
	}
	return nil
}

func subLineText(line *asm.ParsedLine) string {
	if line.SubIndex == 0 {
		return fmt.Sprintf("%d", line.LineNumber)
	}
	return fmt.Sprintf("%d.%d", line.LineNumber, line.SubIndex)
}
