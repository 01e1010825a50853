package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestNewGame(t *testing.T) {
	g := NewGame()
	if got := g.Turn(); got != Dark {
		t.Errorf("Turn() = %v; want dark", got)
	}
	if _, ok := g.Selected(); ok {
		t.Error("new game has a selection")
	}
	if got := g.Depth(); got != DefaultSearchDepth {
		t.Errorf("Depth() = %d; want %d", got, DefaultSearchDepth)
	}
	if got := g.Winner(); got != None {
		t.Errorf("Winner() = %v; want none", got)
	}
}

func TestGameSelect(t *testing.T) {
	tests := []struct {
		name     string
		row, col int
		want     bool
	}{
		{"empty cell", 4, 1, false},
		{"opponent piece", 2, 1, false},
		{"own piece", 5, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGame()
			if got := g.Select(tt.row, tt.col); got != tt.want {
				t.Errorf("Select(%d,%d) = %v; want %v", tt.row, tt.col, got, tt.want)
			}
			_, selected := g.Selected()
			if selected != tt.want {
				t.Errorf("selected = %v; want %v", selected, tt.want)
			}
		})
	}

	t.Run("caches the moves of the selection", func(t *testing.T) {
		g := NewGame()
		g.Select(5, 2)
		want := []Position{pos(4, 1), pos(4, 3)}
		if diff := cmp.Diff(want, g.ValidMoves()); diff != "" {
			t.Errorf("ValidMoves mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestGameSelectThenMove(t *testing.T) {
	g := NewGame()
	if !g.Select(5, 0) {
		t.Fatal("Select(5,0) = false")
	}
	if !g.Select(4, 1) {
		t.Fatal("Select(4,1) = false; want the move to be applied")
	}

	if got := g.Turn(); got != Light {
		t.Errorf("Turn() = %v; want light", got)
	}
	if _, ok := g.Selected(); ok {
		t.Error("selection survived the move")
	}
	if len(g.ValidMoves()) != 0 {
		t.Error("cached moves survived the move")
	}
	if !g.Board().Piece(5, 0).Empty() || g.Board().Piece(4, 1).Side != Dark {
		t.Error("piece did not move")
	}
	want := &LastMove{From: pos(5, 0), To: pos(4, 1), Captured: []Position{}, Side: Dark}
	if diff := cmp.Diff(want, g.LastMove()); diff != "" {
		t.Errorf("LastMove mismatch (-want +got):\n%s", diff)
	}
}

func TestGameFailedMoveReselects(t *testing.T) {
	g := NewGame()
	g.Select(5, 0)

	if !g.Select(5, 2) {
		t.Fatal("Select on another own piece = false; want reselection")
	}
	got, ok := g.Selected()
	if !ok || got != pos(5, 2) {
		t.Errorf("Selected() = %v, %v; want (5,2), true", got, ok)
	}
	if g.Turn() != Dark {
		t.Error("turn changed on a reselection")
	}
}

func TestGameFailedMoveClearsSelection(t *testing.T) {
	g := NewGame()
	g.Select(5, 0)
	before := g.Board().Copy()

	if g.Select(3, 3) {
		t.Error("Select on an unreachable empty cell = true")
	}
	if _, ok := g.Selected(); ok {
		t.Error("selection kept after an illegal destination")
	}
	if diff := cmp.Diff(before, g.Board(), boardCmp); diff != "" {
		t.Errorf("board changed (-want +got):\n%s", diff)
	}
}

func TestGameApplyMove(t *testing.T) {
	t.Run("without selection", func(t *testing.T) {
		g := NewGame()
		if g.ApplyMove(4, 1) {
			t.Error("ApplyMove without selection = true")
		}
	})

	t.Run("occupied destination", func(t *testing.T) {
		g := NewGame()
		g.Select(6, 1)
		if g.ApplyMove(5, 0) {
			t.Error("ApplyMove onto an own piece = true")
		}
	})

	t.Run("capture removes the jumped piece", func(t *testing.T) {
		b := boardFromDiagram(t,
			".l......",
			"........",
			"........",
			"........",
			"...l....",
			"....d...",
			"........",
			"........",
		)
		g := NewGame(WithBoard(b))
		g.Select(5, 4)
		if !g.ApplyMove(3, 2) {
			t.Fatal("ApplyMove(3,2) = false")
		}
		if !g.Board().Piece(4, 3).Empty() {
			t.Error("captured piece still on the board")
		}
		if got := g.Board().Remaining(Light); got != 1 {
			t.Errorf("Remaining(light) = %d; want 1", got)
		}
		want := []Position{pos(4, 3)}
		if diff := cmp.Diff(want, g.LastMove().Captured); diff != "" {
			t.Errorf("captured mismatch (-want +got):\n%s", diff)
		}
		assertCounters(t, g.Board())
	})

	t.Run("stale selection is rejected", func(t *testing.T) {
		g := NewGame()
		g.Select(5, 0)
		g.Board().Remove([]Piece{g.Board().Piece(5, 0)})
		if g.ApplyMove(4, 1) {
			t.Error("ApplyMove with a captured selection = true")
		}
	})
}

func TestGameChangeTurn(t *testing.T) {
	g := NewGame()
	g.Select(5, 0)
	g.ChangeTurn()
	if g.Turn() != Light {
		t.Errorf("Turn() = %v; want light", g.Turn())
	}
	if _, ok := g.Selected(); ok {
		t.Error("selection survived ChangeTurn")
	}
	g.ChangeTurn()
	if g.Turn() != Dark {
		t.Errorf("Turn() = %v; want dark", g.Turn())
	}
}

func TestGameReset(t *testing.T) {
	g := NewGame()
	g.Select(5, 0)
	g.Select(4, 1)
	g.Reset()

	if g.Turn() != Dark {
		t.Errorf("Turn() = %v; want dark", g.Turn())
	}
	if g.LastMove() != nil {
		t.Error("LastMove survived Reset")
	}
	if diff := cmp.Diff(NewBoard(), g.Board(), boardCmp); diff != "" {
		t.Errorf("board not reset (-want +got):\n%s", diff)
	}
}

func TestGameAIMove(t *testing.T) {
	t.Run("plays for light", func(t *testing.T) {
		g := NewGame(WithSearchDepth(2))
		g.Select(5, 0)
		g.Select(4, 1)

		res, ok := g.AIMove()
		if !ok {
			t.Fatal("AIMove() = false")
		}
		if g.Turn() != Dark {
			t.Errorf("Turn() = %v; want dark", g.Turn())
		}
		if g.Board() != res.Board {
			t.Error("game did not adopt the searched board")
		}
		if lm := g.LastMove(); lm == nil || lm.Side != Light {
			t.Errorf("LastMove() = %+v; want a light move", lm)
		}
		if got := g.Board().Remaining(Light); got != 12 {
			t.Errorf("Remaining(light) = %d; want 12", got)
		}
		assertCounters(t, g.Board())
	})

	t.Run("not the computer's turn", func(t *testing.T) {
		g := NewGame()
		if _, ok := g.AIMove(); ok {
			t.Error("AIMove() on dark's turn = true")
		}
	})

	t.Run("no legal move", func(t *testing.T) {
		b := boardFromDiagram(t,
			"........",
			"........",
			".l......",
			"d.d.....",
			"...d....",
			"........",
			"........",
			"........",
		)
		g := NewGame(WithBoard(b), WithTurn(Light))
		before := g.Board().Copy()
		if _, ok := g.AIMove(); ok {
			t.Error("AIMove() without moves = true")
		}
		if g.Turn() != Light {
			t.Error("turn passed without a move")
		}
		if diff := cmp.Diff(before, g.Board(), boardCmp); diff != "" {
			t.Errorf("board changed (-want +got):\n%s", diff)
		}
	})
}

// Alternates the computer with a first-legal-move dark player and checks
// that material is only ever removed by captures.
func TestGameMaterialConservation(t *testing.T) {
	g := NewGame(WithSearchDepth(2))
	captured := map[Side]int{}

	for ply := 0; ply < 40 && g.Winner() == None; ply++ {
		before := map[Side]int{Light: g.Board().Remaining(Light), Dark: g.Board().Remaining(Dark)}
		if g.Turn() == Dark {
			moves := g.Board().AllMoves(Dark)
			if len(moves) == 0 {
				break
			}
			m := moves[0]
			if !g.Select(m.From.Row, m.From.Col) || !g.Select(m.To.Row, m.To.Col) {
				t.Fatalf("ply %d: could not play %v->%v", ply, m.From, m.To)
			}
			captured[Light] += len(m.Captured)
		} else {
			if _, ok := g.AIMove(); !ok {
				break
			}
			captured[Dark] += before[Dark] - g.Board().Remaining(Dark)
		}

		for _, side := range []Side{Light, Dark} {
			if got := g.Board().Remaining(side) + captured[side]; got != 12 {
				t.Fatalf("ply %d: %v remaining+captured = %d; want 12", ply, side, got)
			}
		}
		assertCounters(t, g.Board())
	}
}

func TestGameState(t *testing.T) {
	g := NewGame()
	g.Select(5, 0)
	state := g.State()

	if state.Turn != Dark || state.HumanSide != Dark || state.AISide != Light {
		t.Errorf("sides = turn %v human %v ai %v", state.Turn, state.HumanSide, state.AISide)
	}
	if state.Selected == nil || *state.Selected != pos(5, 0) {
		t.Errorf("Selected = %v; want (5,0)", state.Selected)
	}
	if diff := cmp.Diff([]Position{pos(4, 1)}, state.LegalMoves, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("LegalMoves mismatch (-want +got):\n%s", diff)
	}
	if state.Remaining[Light] != 12 || state.Remaining[Dark] != 12 {
		t.Errorf("Remaining = %v", state.Remaining)
	}
}
