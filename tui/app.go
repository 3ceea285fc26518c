// Package tui implements a read-only three-pane browser over an
// already-assembled program: a symbol table, a source map, and a memory
// image, adapted from the teacher's debugger/tui.go layout and keymap
// conventions (spec.md §4.13). There is nothing to step or break on —
// selecting a row in the symbol or source-map pane centres the memory
// pane on that row's address and marks it there; the other table's
// selection does not move.
package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rv32i-tools/rv32i-asm/asm"
	"github.com/rv32i-tools/rv32i-asm/assemble"
)

// App is the three-pane tview application.
type App struct {
	program *asm.Program
	result  *assemble.Result

	application *tview.Application
	pages       *tview.Pages

	symbolTable *tview.Table
	sourceTable *tview.Table
	memoryView  *tview.TextView
	filterInput *tview.InputField

	layout *tview.Flex

	rows       []row // one per ParsedLine/word, in address order
	filterText string
}

// row is one assembled instruction's address-keyed display data.
type row struct {
	Address uint32
	Word    uint32
	Line    string
	Label   string
}

// NewApp builds a tui.App over an assembled program and its encoded
// result (spec.md §4.13).
func NewApp(prog *asm.Program, result *assemble.Result) *App {
	a := &App{
		program:     prog,
		result:      result,
		application: tview.NewApplication(),
	}
	a.buildRows()
	a.initializeViews()
	a.buildLayout()
	a.setupKeyBindings()
	return a
}

func (a *App) buildRows() {
	var address uint32
	a.rows = make([]row, len(a.result.Words))
	for i, word := range a.result.Words {
		line := a.program.ParsedLines[i]
		a.rows[i] = row{
			Address: address,
			Word:    word,
			Line:    subLineText(line),
			Label:   a.program.Labels.Nearest(address),
		}
		address += 4
	}
}

func subLineText(line *asm.ParsedLine) string {
	if line.SubIndex == 0 {
		return fmt.Sprintf("%d", line.LineNumber)
	}
	return fmt.Sprintf("%d.%d", line.LineNumber, line.SubIndex)
}

func (a *App) initializeViews() {
	a.symbolTable = tview.NewTable().SetSelectable(true, false).SetFixed(1, 0)
	a.symbolTable.SetBorder(true).SetTitle(" Symbols ")

	a.sourceTable = tview.NewTable().SetSelectable(true, false).SetFixed(1, 0)
	a.sourceTable.SetBorder(true).SetTitle(" Source Map ")

	a.memoryView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true).SetWrap(false)
	a.memoryView.SetBorder(true).SetTitle(" Memory ")

	a.filterInput = tview.NewInputField().SetLabel("filter: ")
	a.filterInput.SetBorder(true).SetTitle(" Filter by label (Esc to cancel) ")
	a.filterInput.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEnter {
			a.filterText = a.filterInput.GetText()
			a.reloadSourceTable()
		}
		a.pages.HidePage("filter")
		a.application.SetFocus(a.sourceTable)
	})

	a.reloadSymbolTable()
	a.reloadSourceTable()
	a.renderMemory(0)

	a.symbolTable.SetSelectionChangedFunc(func(r, c int) {
		if addr, ok := a.symbolTableAddress(r); ok {
			a.syncTo(addr)
		}
	})
	a.sourceTable.SetSelectionChangedFunc(func(r, c int) {
		if addr, ok := a.sourceTableAddress(r); ok {
			a.syncTo(addr)
		}
	})
}

func (a *App) buildLayout() {
	left := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.symbolTable, 0, 1, true).
		AddItem(a.sourceTable, 0, 2, false)

	a.layout = tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(left, 0, 2, true).
		AddItem(a.memoryView, 0, 1, false)

	a.pages = tview.NewPages().
		AddPage("main", a.layout, true, true).
		AddPage("filter", a.filterInput, true, false)
}

func (a *App) setupKeyBindings() {
	a.application.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Rune() {
		case 'q':
			a.application.Stop()
			return nil
		case '/':
			a.pages.ShowPage("filter")
			a.application.SetFocus(a.filterInput)
			return nil
		}
		switch event.Key() {
		case tcell.KeyTab:
			a.cycleFocus()
			return nil
		}
		return event
	})
}

func (a *App) cycleFocus() {
	switch a.application.GetFocus() {
	case a.symbolTable:
		a.application.SetFocus(a.sourceTable)
	default:
		a.application.SetFocus(a.symbolTable)
	}
}

func (a *App) reloadSymbolTable() {
	a.symbolTable.Clear()
	a.symbolTable.SetCell(0, 0, tview.NewTableCell("[yellow]Label").SetSelectable(false))
	a.symbolTable.SetCell(0, 1, tview.NewTableCell("[yellow]Address").SetSelectable(false))

	names := a.program.Labels.SortedByAddress()
	for i, name := range names {
		addr, _ := a.program.Labels.Lookup(name)
		a.symbolTable.SetCell(i+1, 0, tview.NewTableCell(name))
		a.symbolTable.SetCell(i+1, 1, tview.NewTableCell(fmt.Sprintf("0x%08X", addr)))
	}
}

func (a *App) reloadSourceTable() {
	a.sourceTable.Clear()
	a.sourceTable.SetCell(0, 0, tview.NewTableCell("[yellow]Addr").SetSelectable(false))
	a.sourceTable.SetCell(0, 1, tview.NewTableCell("[yellow]Line").SetSelectable(false))
	a.sourceTable.SetCell(0, 2, tview.NewTableCell("[yellow]Word").SetSelectable(false))
	a.sourceTable.SetCell(0, 3, tview.NewTableCell("[yellow]Symbol").SetSelectable(false))

	r := 1
	for _, row := range a.rows {
		if a.filterText != "" && !strings.Contains(row.Label, a.filterText) {
			continue
		}
		a.sourceTable.SetCell(r, 0, tview.NewTableCell(fmt.Sprintf("0x%08X", row.Address)))
		a.sourceTable.SetCell(r, 1, tview.NewTableCell(row.Line))
		a.sourceTable.SetCell(r, 2, tview.NewTableCell(fmt.Sprintf("%08x", row.Word)))
		a.sourceTable.SetCell(r, 3, tview.NewTableCell(row.Label))
		r++
	}
}

func (a *App) symbolTableAddress(r int) (uint32, bool) {
	if r <= 0 || r-1 >= len(a.program.Labels.SortedByAddress()) {
		return 0, false
	}
	name := a.program.Labels.SortedByAddress()[r-1]
	addr, ok := a.program.Labels.Lookup(name)
	return addr, ok
}

func (a *App) sourceTableAddress(r int) (uint32, bool) {
	if r <= 0 {
		return 0, false
	}
	i := r - 1
	for _, row := range a.rows {
		if a.filterText != "" && !strings.Contains(row.Label, a.filterText) {
			continue
		}
		if i == 0 {
			return row.Address, true
		}
		i--
	}
	return 0, false
}

// syncTo renders the memory window around the given address and marks
// that address; the selections in the symbol and source-map tables are
// left unchanged.
func (a *App) syncTo(addr uint32) {
	a.renderMemory(addr)
}

func (a *App) renderMemory(center uint32) {
	a.memoryView.Clear()
	var sb strings.Builder
	start := center
	if start > 16*4 {
		start -= 16 * 4
	} else {
		start = 0
	}
	start -= start % 4

	for _, row := range a.rows {
		if row.Address < start || row.Address >= start+32*4 {
			continue
		}
		marker := "  "
		if row.Address == center {
			marker = "->"
		}
		fmt.Fprintf(&sb, "%s 0x%08X: %08x\n", marker, row.Address, row.Word)
	}
	a.memoryView.SetText(sb.String())
}

// Run starts the application's event loop.
func (a *App) Run() error {
	return a.application.SetRoot(a.pages, true).SetFocus(a.symbolTable).Run()
}

// Stop stops the application.
func (a *App) Stop() {
	a.application.Stop()
}
