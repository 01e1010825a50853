package model

// Game is the engine the presentation layer talks to. It owns the current
// board, whose turn it is and the piece the human has picked up.
//
// Game is not safe for concurrent use; callers serialize access.
type Game struct {
	board      *Board
	turn       Side
	selected   *Position
	validMoves MoveMap
	lastMove   *LastMove
	depth      int
}

// GameOption configures a Game.
type GameOption func(*Game)

// WithSearchDepth sets the automated player's look-ahead in plies.
func WithSearchDepth(depth int) GameOption {
	return func(g *Game) {
		if depth >= 1 {
			g.depth = depth
		}
	}
}

// WithBoard starts the game from a prepared position instead of the
// standard setup.
func WithBoard(b *Board) GameOption {
	return func(g *Game) {
		if b != nil {
			g.board = b.Copy()
		}
	}
}

// WithTurn overrides which side moves first.
func WithTurn(side Side) GameOption {
	return func(g *Game) {
		if side != None {
			g.turn = side
		}
	}
}

func NewGame(opts ...GameOption) *Game {
	g := &Game{depth: DefaultSearchDepth}
	g.Reset()
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Reset restores the start of a game: fresh board, Dark to move, nothing
// selected.
func (g *Game) Reset() {
	g.board = NewBoard()
	g.turn = Dark
	g.selected = nil
	g.validMoves = MoveMap{}
	g.lastMove = nil
}

// AISide is the side played by the search. The search maximizes Light.
func (g *Game) AISide() Side {
	return Light
}

func (g *Game) Board() *Board {
	return g.board
}

func (g *Game) Turn() Side {
	return g.turn
}

func (g *Game) Depth() int {
	return g.depth
}

func (g *Game) Winner() Side {
	return g.board.Winner()
}

func (g *Game) LastMove() *LastMove {
	return g.lastMove
}

// Selected returns the cell of the selected piece, if any.
func (g *Game) Selected() (Position, bool) {
	if g.selected == nil {
		return Position{}, false
	}
	return *g.selected, true
}

// ValidMoves lists the destinations of the selected piece.
func (g *Game) ValidMoves() []Position {
	return g.validMoves.Destinations()
}

// Select is the single input of the human player.
//
// With nothing selected, a cell holding a piece of the side to move becomes
// the selection and its moves are cached. With a piece selected, the cell is
// treated as a destination; if that move is not legal the selection is
// dropped and the cell is tried again as a fresh selection.
//
// Select returns true when a move was made or a piece ends up selected.
func (g *Game) Select(row, col int) bool {
	mustInBounds(row, col)
	if g.selected != nil {
		if g.ApplyMove(row, col) {
			return true
		}
		g.selected = nil
		g.validMoves = MoveMap{}
		return g.Select(row, col)
	}

	piece := g.board.Piece(row, col)
	if piece.Empty() || piece.Side != g.turn {
		return false
	}
	pos := piece.Position()
	g.selected = &pos
	g.validMoves = g.board.ValidMoves(piece)
	return true
}

// ApplyMove moves the selected piece to (row, col) if that destination is
// in the cached move map and empty. Captured pieces are removed and the
// turn passes. It returns false and changes nothing otherwise.
func (g *Game) ApplyMove(row, col int) bool {
	mustInBounds(row, col)
	piece, ok := g.selectedPiece()
	if !ok {
		return false
	}
	to := Position{Row: row, Col: col}
	captured, ok := g.validMoves.Get(to)
	if !ok || !g.board.Piece(row, col).Empty() {
		return false
	}

	g.board.Move(piece, row, col)
	if len(captured) > 0 {
		g.board.Remove(captured)
	}
	g.recordMove(Move{From: piece.Position(), To: to, Captured: captured}, piece.Side)
	g.ChangeTurn()
	return true
}

// selectedPiece resolves the selection against the live board.
func (g *Game) selectedPiece() (Piece, bool) {
	if g.selected == nil {
		return Piece{}, false
	}
	p := g.board.Piece(g.selected.Row, g.selected.Col)
	if p.Empty() || p.Side != g.turn {
		return Piece{}, false
	}
	return p, true
}

// ChangeTurn passes the turn and forgets the selection. A capture chain is
// always completed by a single move, so there is no continuation state.
func (g *Game) ChangeTurn() {
	g.validMoves = MoveMap{}
	g.selected = nil
	g.turn = g.turn.Opponent()
}

// SearchBestMove runs the automated player's search on board without
// touching the game.
func (g *Game) SearchBestMove(board *Board) SearchResult {
	return Search(board, g.depth, true)
}

// AIMove lets the automated side play: the searched board replaces the
// current one and the turn passes. It returns false, leaving the game
// untouched, when it is not the automated side's turn, the game is over or
// there is no legal move.
func (g *Game) AIMove() (SearchResult, bool) {
	if g.turn != g.AISide() || g.Winner() != None {
		return SearchResult{}, false
	}
	res := g.SearchBestMove(g.board)
	if !res.Found() {
		return res, false
	}
	g.board = res.Board
	g.recordMove(res.Move, g.AISide())
	g.ChangeTurn()
	return res, true
}

func (g *Game) recordMove(m Move, side Side) {
	g.lastMove = &LastMove{
		From:     m.From,
		To:       m.To,
		Captured: m.CapturedAt(),
		Side:     side,
	}
}
