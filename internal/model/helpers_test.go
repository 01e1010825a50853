package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// boardFromDiagram builds a board from eight rows of '.', 'l', 'L', 'd', 'D'
// (lower case men, upper case kings). Row 0 comes first.
func boardFromDiagram(t *testing.T, rows ...string) *Board {
	t.Helper()
	if len(rows) != BoardSize {
		t.Fatalf("diagram has %d rows; want %d", len(rows), BoardSize)
	}
	b := NewEmptyBoard()
	for r, line := range rows {
		if len(line) != BoardSize {
			t.Fatalf("row %d has %d cells; want %d", r, len(line), BoardSize)
		}
		for c := 0; c < BoardSize; c++ {
			switch line[c] {
			case '.':
			case 'l':
				b.Place(r, c, Light, false)
			case 'L':
				b.Place(r, c, Light, true)
			case 'd':
				b.Place(r, c, Dark, false)
			case 'D':
				b.Place(r, c, Dark, true)
			default:
				t.Fatalf("unknown cell %q at (%d,%d)", line[c], r, c)
			}
		}
	}
	return b
}

var boardCmp = cmp.AllowUnexported(Board{})

// assertCounters checks the incremental counters against a recount.
func assertCounters(t *testing.T, b *Board) {
	t.Helper()
	for _, side := range []Side{Light, Dark} {
		men, kings := 0, 0
		for _, p := range b.AllPieces(side) {
			men++
			if p.King {
				kings++
			}
		}
		if got := b.Remaining(side); got != men {
			t.Errorf("Remaining(%v) = %d; recount %d", side, got, men)
		}
		if got := b.Kings(side); got != kings {
			t.Errorf("Kings(%v) = %d; recount %d", side, got, kings)
		}
	}
}

func pos(row, col int) Position {
	return Position{Row: row, Col: col}
}
