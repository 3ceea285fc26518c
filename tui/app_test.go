package tui

import (
	"strings"
	"testing"

	"github.com/rv32i-tools/rv32i-asm/assemble"
)

func buildApp(t *testing.T, src string) *App {
	t.Helper()
	prog, result, err := assemble.Assemble(strings.NewReader(src), "test.s")
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	return NewApp(prog, result)
}

func TestNewAppBuildsRowsForEveryWord(t *testing.T) {
	app := buildApp(t, "addi x1, x0, 5\naddi x2, x0, 6\n")
	if len(app.rows) != len(app.result.Words) {
		t.Fatalf("expected %d rows, got %d", len(app.result.Words), len(app.rows))
	}
	if app.rows[0].Address != 0 || app.rows[1].Address != 4 {
		t.Errorf("unexpected addresses: %+v", app.rows)
	}
}

func TestSymbolTableAddressLookup(t *testing.T) {
	app := buildApp(t, "loop:\n  beq x1, x2, loop\n")
	addr, ok := app.symbolTableAddress(1)
	if !ok {
		t.Fatal("expected a resolvable symbol row")
	}
	if addr != 0 {
		t.Errorf("expected loop at address 0, got %d", addr)
	}
}

func TestSourceTableAddressRespectsFilter(t *testing.T) {
	app := buildApp(t, "a:\n  addi x1, x0, 1\nb:\n  addi x2, x0, 2\n")
	app.filterText = "b"
	app.reloadSourceTable()

	addr, ok := app.sourceTableAddress(1)
	if !ok {
		t.Fatal("expected one filtered row")
	}
	if addr != 4 {
		t.Errorf("expected filtered row at address 4 (label b), got %d", addr)
	}
	if _, ok := app.sourceTableAddress(2); ok {
		t.Error("expected only one row to survive the filter")
	}
}

func TestRenderMemoryMarksCenterAddress(t *testing.T) {
	app := buildApp(t, "addi x1, x0, 5\naddi x2, x0, 6\n")
	app.renderMemory(4)
	text := app.memoryView.GetText(true)
	if !strings.Contains(text, "-> 0x00000004") {
		t.Errorf("expected memory view to mark address 4 as current, got %q", text)
	}
}
