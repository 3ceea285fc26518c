package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/rv32i-tools/rv32i-asm/assemble"
	"github.com/rv32i-tools/rv32i-asm/asm"
	"github.com/rv32i-tools/rv32i-asm/decoder"
)

// handleAssemble handles POST /assemble: assembles source text and
// returns the encoded words alongside their source-map annotations,
// broadcasting one InstructionEvent per instruction once the whole
// program has encoded successfully (spec.md §4.12).
func (s *Server) handleAssemble(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req AssembleRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	prog, result, err := assemble.Assemble(strings.NewReader(req.Source), "api")
	if err != nil {
		if lineErr, ok := err.(*asm.LineError); ok {
			writeError(w, http.StatusUnprocessableEntity, lineErr.Error())
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	words := make([]WordLine, len(result.Words))
	var address uint32
	for i, word := range result.Words {
		line := prog.ParsedLines[i]
		wl := WordLine{
			Address: address,
			Word:    fmt.Sprintf("%08x", word),
			Line:    lineLabel(line),
			Symbol:  prog.Labels.Nearest(address),
		}
		words[i] = wl
		s.broadcaster.Broadcast(InstructionEvent{Address: address, Word: wl.Word, Line: wl.Line})
		address += 4
	}

	writeJSON(w, http.StatusOK, AssembleResponse{
		Words:    words,
		Labels:   prog.Labels.SortedByAddress(),
		Warnings: prog.Warnings,
	})
}

func lineLabel(line *asm.ParsedLine) string {
	if line.SubIndex == 0 {
		return strconv.Itoa(line.LineNumber)
	}
	return fmt.Sprintf("%d.%d", line.LineNumber, line.SubIndex)
}

// handleDisassemble handles POST /disassemble: decodes a list of 32-bit
// words back into assembly text, optionally seeded with a caller-supplied
// label map so branch/jump targets render as names (spec.md §4.12).
func (s *Server) handleDisassemble(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req DisassembleRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	labels := asm.NewLabelTable()
	for name, addr := range req.Labels {
		labels.Define(name, addr)
	}

	lines := make([]DisassembledLine, 0, len(req.Words))
	address := req.Address
	for _, hex := range req.Words {
		word, err := strconv.ParseUint(strings.TrimPrefix(hex, "0x"), 16, 32)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid word %q: %v", hex, err))
			return
		}
		text, err := decoder.Decode(uint32(word), address, labels)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		lines = append(lines, DisassembledLine{Address: address, Word: fmt.Sprintf("%08x", word), Text: text})
		address += 4
	}

	writeJSON(w, http.StatusOK, DisassembleResponse{Lines: lines})
}
