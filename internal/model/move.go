package model

// Move is one complete turn: a piece travels From -> To jumping Captured.
type Move struct {
	From     Position `json:"from"`
	To       Position `json:"to"`
	Captured []Piece  `json:"-"`
}

// CapturedAt lists the cells of the captured pieces, for clients.
func (m Move) CapturedAt() []Position {
	out := make([]Position, 0, len(m.Captured))
	for _, p := range m.Captured {
		out = append(out, p.Position())
	}
	return out
}

// LastMove is the JSON view of the most recent move.
type LastMove struct {
	From     Position   `json:"from"`
	To       Position   `json:"to"`
	Captured []Position `json:"captured"`
	Side     Side       `json:"side"`
}

// AllMoves enumerates every move available to side, pieces in row-major
// order and destinations in generation order.
func (b *Board) AllMoves(side Side) []Move {
	var moves []Move
	for _, p := range b.AllPieces(side) {
		for _, e := range b.ValidMoves(p).Entries() {
			moves = append(moves, Move{From: p.Position(), To: e.To, Captured: e.Captured})
		}
	}
	return moves
}
