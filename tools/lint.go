// Package tools provides static-analysis utilities over an already
// parsed *asm.Program: a linter, a cross-reference generator, and a
// source formatter.
package tools

import (
	"fmt"
	"sort"

	"github.com/rv32i-tools/rv32i-asm/asm"
)

// LintLevel represents the severity of a lint issue
type LintLevel int

const (
	LintError   LintLevel = iota // Undefined references
	LintWarning                  // Best practice violations, potential issues
	LintInfo                     // Suggestions, style recommendations
)

func (l LintLevel) String() string {
	switch l {
	case LintError:
		return "error"
	case LintWarning:
		return "warning"
	case LintInfo:
		return "info"
	default:
		return "unknown"
	}
}

// LintIssue represents a single lint finding
type LintIssue struct {
	Level   LintLevel
	Line    int
	Message string
	Code    string // Issue code like "UNDEF_LABEL", "UNREACHABLE_CODE"
}

func (i *LintIssue) String() string {
	return fmt.Sprintf("line %d: %s: %s [%s]", i.Line, i.Level, i.Message, i.Code)
}

// LintOptions controls linter behavior
type LintOptions struct {
	Strict       bool // Treat warnings as errors
	CheckUnused  bool // Check for unused labels
	CheckReach   bool // Check for unreachable code
	SuggestFixes bool // Suggest fixes for common issues
}

// DefaultLintOptions returns default linter options
func DefaultLintOptions() *LintOptions {
	return &LintOptions{
		Strict:       false,
		CheckUnused:  true,
		CheckReach:   true,
		SuggestFixes: true,
	}
}

var branchMnemonics = map[string]bool{
	"beq": true, "bne": true, "blt": true, "bge": true, "bltu": true, "bgeu": true,
}

// Linter analyzes an already-parsed assembly program for issues.
type Linter struct {
	options *LintOptions
	issues  []*LintIssue
	program *asm.Program

	referencedLabels map[string][]int // label -> line numbers where used
}

// NewLinter creates a new linter.
func NewLinter(options *LintOptions) *Linter {
	if options == nil {
		options = DefaultLintOptions()
	}
	return &Linter{
		options:          options,
		referencedLabels: make(map[string][]int),
	}
}

// Lint analyzes prog and returns every finding, sorted by source line.
func (l *Linter) Lint(prog *asm.Program) []*LintIssue {
	l.program = prog
	l.issues = nil
	l.referencedLabels = make(map[string][]int)

	l.checkLabelReferences()
	if l.options.CheckUnused {
		l.checkUnusedLabels()
	}
	if l.options.CheckReach {
		l.checkUnreachableCode()
	}
	if l.options.Strict {
		for _, issue := range l.issues {
			if issue.Level == LintWarning {
				issue.Level = LintError
			}
		}
	}

	sort.SliceStable(l.issues, func(i, j int) bool {
		return l.issues[i].Line < l.issues[j].Line
	})
	return l.issues
}

// checkLabelReferences verifies every branch/jump target names a defined
// label (spec.md §4.9).
func (l *Linter) checkLabelReferences() {
	for _, line := range l.program.ParsedLines {
		target, ok := labelOperand(line)
		if !ok {
			continue
		}
		l.referencedLabels[target] = append(l.referencedLabels[target], line.LineNumber)
		if _, defined := l.program.Labels.Lookup(target); !defined {
			msg := fmt.Sprintf("undefined label %q", target)
			if l.options.SuggestFixes {
				if s := l.findSimilarLabel(target); s != "" {
					msg += fmt.Sprintf(" (did you mean %q?)", s)
				}
			}
			l.issues = append(l.issues, &LintIssue{
				Level:   LintError,
				Line:    line.LineNumber,
				Message: msg,
				Code:    "UNDEF_LABEL",
			})
		}
	}
}

// checkUnusedLabels warns about defined-but-never-referenced labels.
func (l *Linter) checkUnusedLabels() {
	for _, name := range l.program.Labels.Names() {
		if isSpecialLabel(name) {
			continue
		}
		if _, used := l.referencedLabels[name]; !used {
			addr, _ := l.program.Labels.Lookup(name)
			l.issues = append(l.issues, &LintIssue{
				Level:   LintWarning,
				Line:    l.lineForAddress(addr),
				Message: fmt.Sprintf("label %q defined but never referenced", name),
				Code:    "UNUSED_LABEL",
			})
		}
	}
}

// checkUnreachableCode flags code immediately following an unconditional
// jal/jalr whose destination register discards the return address (rd is
// zero), when the next line has no label attached (spec.md §4.9).
func (l *Linter) checkUnreachableCode() {
	lines := l.program.ParsedLines
	for i, line := range lines {
		if !isNonReturningJump(line) {
			continue
		}
		if i+1 >= len(lines) {
			continue
		}
		next := lines[i+1]
		if next.Label == "" {
			l.issues = append(l.issues, &LintIssue{
				Level:   LintWarning,
				Line:    next.LineNumber,
				Message: "unreachable code",
				Code:    "UNREACHABLE_CODE",
			})
		}
	}
}

func isNonReturningJump(line *asm.ParsedLine) bool {
	switch line.Instruction {
	case "jal":
		return len(line.Args) == 2 && isZeroRegister(line.Args[0])
	case "jalr":
		return len(line.Args) == 3 && isZeroRegister(line.Args[0])
	default:
		return false
	}
}

func isZeroRegister(name string) bool {
	return name == "zero" || name == "x0"
}

// labelOperand extracts the label operand from a branch or jal
// instruction, if it has one.
func labelOperand(line *asm.ParsedLine) (string, bool) {
	switch {
	case branchMnemonics[line.Instruction] && len(line.Args) == 3:
		return line.Args[2], true
	case line.Instruction == "jal" && len(line.Args) == 2:
		return line.Args[1], true
	default:
		return "", false
	}
}

func (l *Linter) lineForAddress(addr uint32) int {
	a := uint32(0)
	for _, line := range l.program.ParsedLines {
		if a == addr {
			return line.LineNumber
		}
		a += 4
	}
	return 0
}

// findSimilarLabel finds a defined label with a similar name (for suggestions).
func (l *Linter) findSimilarLabel(target string) string {
	bestMatch := ""
	bestDistance := 999
	for _, name := range l.program.Labels.Names() {
		dist := levenshteinDistance(name, target)
		if dist < bestDistance && dist <= 3 {
			bestMatch = name
			bestDistance = dist
		}
	}
	return bestMatch
}

// levenshteinDistance calculates edit distance between two strings.
func levenshteinDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	matrix := make([][]int, len(s1)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(s2)+1)
		matrix[i][0] = i
	}
	for j := range matrix[0] {
		matrix[0][j] = j
	}

	for i := 1; i <= len(s1); i++ {
		for j := 1; j <= len(s2); j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}
			matrix[i][j] = min3(
				matrix[i-1][j]+1,
				matrix[i][j-1]+1,
				matrix[i-1][j-1]+cost,
			)
		}
	}

	return matrix[len(s1)][len(s2)]
}

// isSpecialLabel reports whether label is a conventional entry point that
// is expected to be unreferenced from within the same file.
func isSpecialLabel(label string) bool {
	switch label {
	case "_start", "main", "start":
		return true
	default:
		return false
	}
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
