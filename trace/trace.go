// Package trace renders nestest-compatible per-instruction log lines from
// a pre-execute CPU snapshot, and diffs a run's trace against a reference
// log for conformance testing.
package trace

import (
	"bufio"
	"fmt"
	"io"

	"github.com/n-ulricksen/nes6502/cpu"
)

// Format renders one trace line: decimal instruction count, 4-hex PC,
// 2-hex opcode, then A/X/Y/P/SP each as 2-hex uppercase, space separated.
// snap must be taken before the instruction at opcode executes.
func Format(n int, snap cpu.Snapshot, opcode byte) string {
	return fmt.Sprintf("%d %04X %02X A:%02X X:%02X Y:%02X P:%02X SP:%02X",
		n, snap.PC, opcode, snap.A, snap.X, snap.Y, snap.P, snap.SP)
}

// Mismatch describes the first line at which a run's trace diverges from
// a reference log.
type Mismatch struct {
	Line int
	Got  string
	Want string
}

// Compare reads newline-delimited trace lines from got and want and
// returns the first mismatching pair, or nil if every line both readers
// contain is equal; lines past the end of the shorter reader are not
// compared. Comparison is by exact line equality; callers that only
// care about a subset of columns should pre-filter both readers.
func Compare(got, want io.Reader) (*Mismatch, error) {
	gs := bufio.NewScanner(got)
	ws := bufio.NewScanner(want)

	line := 0
	for {
		line++
		gOk := gs.Scan()
		wOk := ws.Scan()
		if !gOk || !wOk {
			break
		}
		if gs.Text() != ws.Text() {
			return &Mismatch{Line: line, Got: gs.Text(), Want: ws.Text()}, nil
		}
	}
	if err := gs.Err(); err != nil {
		return nil, fmt.Errorf("trace: read got: %w", err)
	}
	if err := ws.Err(); err != nil {
		return nil, fmt.Errorf("trace: read want: %w", err)
	}
	return nil, nil
}
