package encoder

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/rv32i-tools/rv32i-asm/isa"
)

var immRegRegex = regexp.MustCompile(`^(-?\d+)\((\w+)\)$`)

// parseImmReg parses the imm(rs1) operand shape L-type and S-type
// instructions share (spec.md §4.5).
func parseImmReg(s string) (imm int64, reg string, err error) {
	m := immRegRegex.FindStringSubmatch(s)
	if m == nil {
		return 0, "", fmt.Errorf("%w: expected imm(reg), got %q", isa.ErrMalformedOperand, s)
	}
	imm, convErr := strconv.ParseInt(m[1], 10, 64)
	if convErr != nil {
		return 0, "", fmt.Errorf("%w: %q: %v", isa.ErrMalformedOperand, m[1], convErr)
	}
	return imm, m[2], nil
}
