package tools

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/rv32i-tools/rv32i-asm/asm"
)

// FormatOptions controls column widths and spacing for the source
// formatter (spec.md §4.11).
type FormatOptions struct {
	LabelWidth    int // minimum column width reserved for "label:"
	MnemonicWidth int // minimum column width reserved for the mnemonic
	CommentColumn int // column at which a trailing comment starts
}

// DefaultFormatOptions returns the teacher-style defaults: an 8-column
// label field, an 8-column mnemonic field, comments aligned at column 40.
func DefaultFormatOptions() *FormatOptions {
	return &FormatOptions{
		LabelWidth:    8,
		MnemonicWidth: 8,
		CommentColumn: 40,
	}
}

var trailingCommentRegex = regexp.MustCompile(`#.*$`)

// Formatter re-emits a parsed program's source lines with label, mnemonic,
// operand, and comment columns aligned.
type Formatter struct {
	options *FormatOptions
}

// NewFormatter creates a formatter with the given options, or the defaults
// if options is nil.
func NewFormatter(options *FormatOptions) *Formatter {
	if options == nil {
		options = DefaultFormatOptions()
	}
	return &Formatter{options: options}
}

// Format writes prog's parsed lines to w, one per expanded instruction.
// A pseudo-instruction is written as the real instructions it expanded
// into, each on its own line at the same indentation as any other
// instruction; the pseudo mnemonic itself is not written, and a trailing
// comment on its source line is repeated on every expanded line.
func (f *Formatter) Format(w io.Writer, prog *asm.Program) error {
	var lastLine int
	for _, line := range prog.ParsedLines {
		if line.Instruction == "halt" && line.LineNumber == 0 {
			continue // synthetic trailing halt: not part of the source
		}
		if line.LineNumber != lastLine {
			lastLine = line.LineNumber
		}
		rendered := f.formatLine(line)
		if _, err := fmt.Fprintln(w, rendered); err != nil {
			return err
		}
	}
	return nil
}

func (f *Formatter) formatLine(line *asm.ParsedLine) string {
	var sb strings.Builder

	labelField := ""
	if line.Label != "" {
		labelField = line.Label + ":"
	}
	sb.WriteString(padTo(labelField, f.options.LabelWidth))

	body := padTo(line.Instruction, f.options.MnemonicWidth)
	body += strings.Join(line.Args, ", ")
	sb.WriteString(body)

	if comment := extractComment(line.Original); comment != "" {
		current := sb.Len()
		if current < f.options.CommentColumn {
			sb.WriteString(strings.Repeat(" ", f.options.CommentColumn-current))
		} else {
			sb.WriteString("  ")
		}
		sb.WriteString(comment)
	}

	return strings.TrimRight(sb.String(), " ")
}

func padTo(s string, width int) string {
	if len(s) >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-len(s))
}

func extractComment(original string) string {
	return trailingCommentRegex.FindString(original)
}

// FormatSource is a convenience function producing formatted text directly
// from a parsed program, using default options.
func FormatSource(prog *asm.Program) string {
	var sb strings.Builder
	_ = NewFormatter(nil).Format(&sb, prog)
	return sb.String()
}
