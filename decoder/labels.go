package decoder

import (
	"fmt"
	"strings"

	"github.com/rv32i-tools/rv32i-asm/asm"
)

const syntheticPrefix = "LABEL_"

// targetText resolves an absolute branch/jump target against labels,
// minting a synthetic LABEL_<N> name the first time an address is seen
// with no existing label (spec.md §4.6). Callers only reach this once
// labels is known non-nil; the no-label case renders the raw relative
// encoding instead (original_source's bits_to_line), not an address.
func targetText(target uint32, labels *asm.LabelTable) string {
	for _, name := range labels.Names() {
		if addr, ok := labels.Lookup(name); ok && addr == target {
			return name
		}
	}
	name := fmt.Sprintf("%s%d", syntheticPrefix, nextSyntheticIndex(labels))
	labels.Define(name, target)
	return name
}

func nextSyntheticIndex(labels *asm.LabelTable) int {
	n := 0
	for _, name := range labels.Names() {
		if strings.HasPrefix(name, syntheticPrefix) {
			n++
		}
	}
	return n
}
