package model

import "fmt"

const piecesPerSide = 12

// Board is the 8x8 checkers grid. Cells hold pieces by value, so copying a
// Board copies every piece with it.
type Board struct {
	cells     [BoardSize][BoardSize]Piece
	remaining [3]int
	kings     [3]int
}

// BoardState is the rendering snapshot of a board.
type BoardState [BoardSize][BoardSize]*PieceState

// NewBoard returns a board set up for the start of a game.
func NewBoard() *Board {
	b := &Board{}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if (row+col)%2 == 0 {
				continue
			}
			switch {
			case row < 3:
				b.cells[row][col] = Piece{Row: row, Col: col, Side: Light}
			case row > 4:
				b.cells[row][col] = Piece{Row: row, Col: col, Side: Dark}
			}
		}
	}
	b.remaining[Light] = piecesPerSide
	b.remaining[Dark] = piecesPerSide
	return b
}

// NewEmptyBoard returns a board without pieces. Use Place to set up positions.
func NewEmptyBoard() *Board {
	return &Board{}
}

// Place puts a piece on an empty cell and updates the counters.
func (b *Board) Place(row, col int, side Side, king bool) {
	mustInBounds(row, col)
	if side == None {
		panic("model: cannot place a piece without a side")
	}
	if !b.cells[row][col].Empty() {
		panic(fmt.Sprintf("model: cell (%d,%d) is occupied", row, col))
	}
	b.cells[row][col] = Piece{Row: row, Col: col, Side: side, King: king}
	b.remaining[side]++
	if king {
		b.kings[side]++
	}
}

// Piece returns the content of a cell. The result is empty when the cell is.
func (b *Board) Piece(row, col int) Piece {
	mustInBounds(row, col)
	return b.cells[row][col]
}

// Move relocates piece to (row, col) and promotes it on the opponent's back
// rank. The destination must be empty; legality is the caller's concern.
func (b *Board) Move(piece Piece, row, col int) Piece {
	mustInBounds(row, col)
	mustInBounds(piece.Row, piece.Col)
	b.cells[piece.Row][piece.Col], b.cells[row][col] = b.cells[row][col], b.cells[piece.Row][piece.Col]

	moved := b.cells[row][col]
	moved.Row, moved.Col = row, col
	if !moved.King && row == moved.Side.BackRank() {
		moved.King = true
		b.kings[moved.Side]++
	}
	b.cells[row][col] = moved
	return moved
}

// Remove clears the cells of captured pieces.
func (b *Board) Remove(pieces []Piece) {
	for _, p := range pieces {
		mustInBounds(p.Row, p.Col)
		cur := b.cells[p.Row][p.Col]
		if cur.Empty() {
			continue
		}
		b.cells[p.Row][p.Col] = Piece{}
		b.remaining[cur.Side]--
		if cur.King {
			b.kings[cur.Side]--
		}
	}
}

// Winner returns the side whose opponent has no pieces left, or None.
// A side that still has pieces but cannot move is not treated as lost.
func (b *Board) Winner() Side {
	if b.remaining[Dark] <= 0 {
		return Light
	}
	if b.remaining[Light] <= 0 {
		return Dark
	}
	return None
}

// Evaluate is the material heuristic used at search leaves. Positive values
// favour Light.
func (b *Board) Evaluate() float64 {
	material := float64(b.remaining[Light] - b.remaining[Dark])
	kings := float64(b.kings[Light]-b.kings[Dark]) * 0.5
	return material + kings
}

// AllPieces lists the pieces of a side in row-major order.
func (b *Board) AllPieces(side Side) []Piece {
	pieces := make([]Piece, 0, b.remaining[side])
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if p := b.cells[row][col]; p.Side == side {
				pieces = append(pieces, p)
			}
		}
	}
	return pieces
}

func (b *Board) Remaining(side Side) int {
	return b.remaining[side]
}

func (b *Board) Kings(side Side) int {
	return b.kings[side]
}

// Copy returns an independent deep copy.
func (b *Board) Copy() *Board {
	c := *b
	return &c
}

// Snapshot renders the grid for the presentation layer.
func (b *Board) Snapshot() BoardState {
	var state BoardState
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if p := b.cells[row][col]; !p.Empty() {
				state[row][col] = &PieceState{Side: p.Side, King: p.King}
			}
		}
	}
	return state
}

// undoRecord restores a board after apply.
type undoRecord struct {
	before   Piece
	to       Position
	promoted bool
	captured []Piece
}

// apply performs a move in place and returns what is needed to take it back.
func (b *Board) apply(m Move) undoRecord {
	before := b.cells[m.From.Row][m.From.Col]
	moved := b.Move(before, m.To.Row, m.To.Col)
	captured := make([]Piece, 0, len(m.Captured))
	for _, c := range m.Captured {
		captured = append(captured, b.cells[c.Row][c.Col])
	}
	b.Remove(m.Captured)
	return undoRecord{
		before:   before,
		to:       m.To,
		promoted: moved.King && !before.King,
		captured: captured,
	}
}

func (b *Board) undo(u undoRecord) {
	b.cells[u.to.Row][u.to.Col] = Piece{}
	b.cells[u.before.Row][u.before.Col] = u.before
	if u.promoted {
		b.kings[u.before.Side]--
	}
	for _, p := range u.captured {
		if p.Empty() {
			continue
		}
		b.cells[p.Row][p.Col] = p
		b.remaining[p.Side]++
		if p.King {
			b.kings[p.Side]++
		}
	}
}

func (b *Board) String() string {
	out := make([]byte, 0, BoardSize*(BoardSize+1))
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := b.cells[row][col]
			ch := byte('.')
			switch {
			case p.Side == Light && p.King:
				ch = 'L'
			case p.Side == Light:
				ch = 'l'
			case p.Side == Dark && p.King:
				ch = 'D'
			case p.Side == Dark:
				ch = 'd'
			}
			out = append(out, ch)
		}
		out = append(out, '\n')
	}
	return string(out)
}

func mustInBounds(row, col int) {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		panic(fmt.Sprintf("model: cell (%d,%d) is off the board", row, col))
	}
}
