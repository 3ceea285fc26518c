package asm

import (
	"regexp"
	"strings"
)

var (
	commentRegex     = regexp.MustCompile(`#.*$`)
	labelRegex       = regexp.MustCompile(`^([\w().]+):\s*(.*)$`)
	instructionRegex = regexp.MustCompile(`^([\w.]+)\s*(.*)$`)
)

// ParsedLine is the canonical, pre-expansion (or post-expansion, for
// pseudo products) record of one source line (spec.md §3).
type ParsedLine struct {
	Original    string
	LineNumber  int
	SubIndex    int // 0 for a real line; 1,2,... for pseudo-expansion products
	Label       string
	Instruction string
	Args        []string
}

// IsDirective reports whether the mnemonic begins with '.'.
func (p *ParsedLine) IsDirective() bool {
	return strings.HasPrefix(p.Instruction, ".")
}

// IsPseudo reports whether the mnemonic names a pseudo-instruction.
func (p *ParsedLine) IsPseudo() bool {
	_, ok := pseudoTable[p.Instruction]
	return ok
}

func (p *ParsedLine) Position(filename string) Position {
	return Position{Filename: filename, Line: p.LineNumber, SubIndex: p.SubIndex}
}

// splitArgs splits a comma-separated argument string, trimming whitespace
// and dropping empty tokens (spec.md §4.3 step 5).
func splitArgs(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parseRawLine implements spec.md §4.3 steps 1-5: strip comments, pull off
// an optional LABEL: prefix, split the remaining MNEMONIC ARGS. Returns
// ok=false for a line that is blank after comment-stripping or does not
// match the instruction grammar — both are silently skipped, never errors.
func parseRawLine(line string) (label, mnemonic string, args []string, ok bool) {
	trimmed := strings.TrimRight(line, "\r\n")
	stripped := commentRegex.ReplaceAllString(trimmed, "")
	stripped = strings.TrimSpace(stripped)

	if m := labelRegex.FindStringSubmatch(stripped); m != nil {
		label = m[1]
		stripped = strings.TrimSpace(m[2])
	}

	if stripped == "" {
		return label, "", nil, label != ""
	}

	m := instructionRegex.FindStringSubmatch(stripped)
	if m == nil {
		return "", "", nil, false
	}
	mnemonic = m[1]
	args = splitArgs(m[2])
	return label, mnemonic, args, true
}
