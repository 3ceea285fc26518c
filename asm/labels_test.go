package asm

import "testing"

func TestLabelTableDefineAndLookup(t *testing.T) {
	lt := NewLabelTable()
	lt.Define("loop", 4)
	addr, ok := lt.Lookup("loop")
	if !ok || addr != 4 {
		t.Fatalf("expected loop=4, got %d, ok=%v", addr, ok)
	}
	if _, ok := lt.Lookup("missing"); ok {
		t.Error("expected missing label to not be found")
	}
}

func TestLabelTableRedefineOverwritesAddress(t *testing.T) {
	lt := NewLabelTable()
	lt.Define("x", 0)
	lt.Define("x", 8)
	addr, _ := lt.Lookup("x")
	if addr != 8 {
		t.Errorf("expected redefinition to overwrite address, got %d", addr)
	}
	if len(lt.Names()) != 1 {
		t.Errorf("expected redefinition to not duplicate the name list, got %v", lt.Names())
	}
}

func TestLabelTableNearestFindsGreatestNotExceeding(t *testing.T) {
	lt := NewLabelTable()
	lt.Define("a", 0)
	lt.Define("b", 8)
	if got := lt.Nearest(10); got != "b" {
		t.Errorf("Nearest(10) = %q, want b", got)
	}
	if got := lt.Nearest(4); got != "a" {
		t.Errorf("Nearest(4) = %q, want a", got)
	}
}

func TestLabelTableNearestDefaultsToRoot(t *testing.T) {
	lt := NewLabelTable()
	if got := lt.Nearest(0); got != "root" {
		t.Errorf("Nearest on empty table = %q, want root", got)
	}
}

func TestLabelTableNamesPreservesInsertionOrder(t *testing.T) {
	lt := NewLabelTable()
	lt.Define("c", 8)
	lt.Define("a", 0)
	lt.Define("b", 4)
	names := lt.Names()
	want := []string{"c", "a", "b"}
	for i, n := range want {
		if names[i] != n {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], n)
		}
	}
}

func TestLabelTableSortedByAddressOrdersByAddressThenName(t *testing.T) {
	lt := NewLabelTable()
	lt.Define("c", 8)
	lt.Define("a", 0)
	lt.Define("b", 0)
	sorted := lt.SortedByAddress()
	want := []string{"a", "b", "c"}
	for i, n := range want {
		if sorted[i] != n {
			t.Errorf("SortedByAddress()[%d] = %q, want %q", i, sorted[i], n)
		}
	}
}
