package tools

import (
	"strings"
	"testing"
)

func TestXRefDefinitionAndReferences(t *testing.T) {
	prog := parseProgram(t, "loop:\n  beq x1, x2, loop\n  jal zero, loop\n")
	symbols := NewXRefGenerator().Generate(prog)

	sym, ok := symbols["loop"]
	if !ok {
		t.Fatal("expected symbol \"loop\"")
	}
	if sym.Definition == nil {
		t.Fatal("expected loop to have a definition")
	}
	if len(sym.References) != 2 {
		t.Fatalf("expected 2 references to loop, got %d", len(sym.References))
	}
}

func TestXRefReferenceTypes(t *testing.T) {
	prog := parseProgram(t, "target:\n  beq x1, x2, target\n  jal zero, target\n")
	symbols := NewXRefGenerator().Generate(prog)
	sym := symbols["target"]

	var sawBranch, sawJump bool
	for _, ref := range sym.References {
		switch ref.Type {
		case RefBranch:
			sawBranch = true
		case RefJump:
			sawJump = true
		}
	}
	if !sawBranch || !sawJump {
		t.Errorf("expected both branch and jump references, got %+v", sym.References)
	}
}

func TestXRefUndefinedSymbol(t *testing.T) {
	prog := parseProgram(t, "beq x1, x2, nowhere\n")
	symbols := NewXRefGenerator().Generate(prog)

	sym, ok := symbols["nowhere"]
	if !ok {
		t.Fatal("expected symbol \"nowhere\" to be recorded from its reference")
	}
	if sym.Definition != nil {
		t.Error("expected nowhere to have no definition")
	}
}

func TestXRefFunctionCall(t *testing.T) {
	prog := parseProgram(t, "call fn\naddi x1, x0, 1\nfn:\n  jalr zero, ra, 0\n")
	symbols := NewXRefGenerator().Generate(prog)

	sym, ok := symbols["fn"]
	if !ok {
		t.Fatal("expected symbol \"fn\"")
	}
	if !sym.IsFunction {
		t.Error("expected fn to be marked as a function (called via jal ra, ...)")
	}
}

func TestXRefReportRendersSummary(t *testing.T) {
	prog := parseProgram(t, "loop:\n  beq x1, x2, loop\n")
	report := GenerateXRef(prog)

	if !strings.Contains(report, "loop") {
		t.Error("expected report to mention \"loop\"")
	}
	if !strings.Contains(report, "Summary") {
		t.Error("expected report to include a summary section")
	}
}

func TestReferenceTypeString(t *testing.T) {
	cases := map[ReferenceType]string{
		RefDefinition: "definition",
		RefBranch:     "branch",
		RefJump:       "jump",
	}
	for rt, want := range cases {
		if got := rt.String(); got != want {
			t.Errorf("%v.String() = %q, want %q", rt, got, want)
		}
	}
}
