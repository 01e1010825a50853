package model

// MoveEntry is one destination of a MoveMap and the pieces jumped to reach it.
type MoveEntry struct {
	To       Position
	Captured []Piece
}

// MoveMap maps destination cells to the pieces captured on the way there.
// Iteration follows first insertion, which keeps move ordering (and so the
// search) deterministic. Setting an existing destination replaces its
// captures in place.
type MoveMap struct {
	entries []MoveEntry
	index   map[Position]int
}

func (m *MoveMap) Set(to Position, captured []Piece) {
	if m.index == nil {
		m.index = make(map[Position]int)
	}
	if i, ok := m.index[to]; ok {
		m.entries[i].Captured = captured
		return
	}
	m.index[to] = len(m.entries)
	m.entries = append(m.entries, MoveEntry{To: to, Captured: captured})
}

func (m MoveMap) Get(to Position) ([]Piece, bool) {
	i, ok := m.index[to]
	if !ok {
		return nil, false
	}
	return m.entries[i].Captured, true
}

// Entries returns the destinations in insertion order.
func (m MoveMap) Entries() []MoveEntry {
	return m.entries
}

// Destinations returns the destination cells in insertion order.
func (m MoveMap) Destinations() []Position {
	out := make([]Position, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e.To)
	}
	return out
}

// ValidMoves enumerates the destinations reachable by piece, including
// complete capture chains. Men only move forward; kings try both row
// directions. A capture chain keeps its row direction but may switch
// diagonals after each jump. Captures are not mandatory.
func (b *Board) ValidMoves(piece Piece) MoveMap {
	var moves MoveMap
	if piece.Empty() {
		return moves
	}
	for _, dr := range piece.directions() {
		b.scan(piece.Side, piece.Row, piece.Col, dr, -1, nil, &moves)
		b.scan(piece.Side, piece.Row, piece.Col, dr, 1, nil, &moves)
	}
	return moves
}

// scan walks one diagonal from (row, col). It looks at most two cells: one
// for a step, two for a jump. captured holds the pieces already jumped by the
// chain that reached (row, col); it is never modified.
func (b *Board) scan(side Side, row, col, dr, dc int, captured []Piece, moves *MoveMap) {
	var jumped *Piece
	r, c := row+dr, col+dc
	for step := 0; step < 2; step++ {
		if r < 0 || r >= BoardSize || c < 0 || c >= BoardSize {
			return
		}
		cell := b.cells[r][c]
		switch {
		case cell.Empty():
			if jumped == nil {
				// A step is only legal as the whole move.
				if len(captured) == 0 {
					moves.Set(Position{Row: r, Col: c}, []Piece{})
				}
				return
			}
			chain := make([]Piece, len(captured), len(captured)+1)
			copy(chain, captured)
			chain = append(chain, *jumped)
			moves.Set(Position{Row: r, Col: c}, chain)
			b.scan(side, r, c, dr, -1, chain, moves)
			b.scan(side, r, c, dr, 1, chain, moves)
			return
		case cell.Side == side:
			return
		case jumped != nil:
			// Two opposing pieces in a row cannot be jumped.
			return
		default:
			jumped = &cell
		}
		r, c = r+dr, c+dc
	}
}
