package asm

import "sort"

// LabelTable maps a symbol name to a 32-bit byte address. A label is
// recorded the moment it is encountered during the Line Parser's single
// pass over source text, so forward references resolve correctly once
// parsing finishes and encoding begins (spec.md §4.3/§9: two-pass vs.
// single-pass).
type LabelTable struct {
	addrs map[string]uint32
	order []string // insertion order, for deterministic diagnostics
}

// NewLabelTable returns an empty table.
func NewLabelTable() *LabelTable {
	return &LabelTable{addrs: make(map[string]uint32)}
}

// Define records label at address. Re-defining an existing label
// overwrites its address (the grammar guarantees uniqueness is the
// caller's concern; this type just stores what it's given).
func (lt *LabelTable) Define(label string, address uint32) {
	if _, exists := lt.addrs[label]; !exists {
		lt.order = append(lt.order, label)
	}
	lt.addrs[label] = address
}

// Lookup returns the address of label and whether it was found.
func (lt *LabelTable) Lookup(label string) (uint32, bool) {
	a, ok := lt.addrs[label]
	return a, ok
}

// Nearest returns the label with the greatest address not exceeding addr,
// or "root" if none exists. Used by the source-map writer (spec.md §4.7).
func (lt *LabelTable) Nearest(addr uint32) string {
	best := ""
	bestAddr := uint32(0)
	found := false
	for label, a := range lt.addrs {
		if a <= addr && (!found || a > bestAddr || (a == bestAddr && label < best)) {
			best, bestAddr, found = label, a, true
		}
	}
	if !found {
		return "root"
	}
	return best
}

// Names returns every defined label in insertion order.
func (lt *LabelTable) Names() []string {
	out := make([]string, len(lt.order))
	copy(out, lt.order)
	return out
}

// SortedByAddress returns every defined label ordered by address, then
// name (used by the api /assemble response and the tui symbol pane).
func (lt *LabelTable) SortedByAddress() []string {
	out := lt.Names()
	sort.SliceStable(out, func(i, j int) bool {
		ai, aj := lt.addrs[out[i]], lt.addrs[out[j]]
		if ai != aj {
			return ai < aj
		}
		return out[i] < out[j]
	})
	return out
}
