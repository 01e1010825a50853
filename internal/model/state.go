package model

// GameState is what observers of a game receive.
type GameState struct {
	Board      BoardState    `json:"board"`
	Turn       Side          `json:"turn"`
	Selected   *Position     `json:"selected"`
	LegalMoves []Position    `json:"legalMoves"`
	Winner     Side          `json:"winner"`
	LastMove   *LastMove     `json:"lastMove"`
	Evaluation float64       `json:"evaluation"`
	Remaining  map[Side]int  `json:"remaining"`
	Kings      map[Side]int  `json:"kings"`
	HumanSide  Side          `json:"humanSide"`
	AISide     Side          `json:"aiSide"`
	Depth      int           `json:"depth"`
	Clocks     *ClientClocks `json:"clocks,omitempty"`
}

// State snapshots the game. Nothing in the result aliases engine data.
func (g *Game) State() GameState {
	state := GameState{
		Board:      g.board.Snapshot(),
		Turn:       g.turn,
		LegalMoves: g.ValidMoves(),
		Winner:     g.Winner(),
		Evaluation: g.board.Evaluate(),
		Remaining: map[Side]int{
			Light: g.board.Remaining(Light),
			Dark:  g.board.Remaining(Dark),
		},
		Kings: map[Side]int{
			Light: g.board.Kings(Light),
			Dark:  g.board.Kings(Dark),
		},
		HumanSide: g.AISide().Opponent(),
		AISide:    g.AISide(),
		Depth:     g.depth,
	}
	if pos, ok := g.Selected(); ok {
		state.Selected = &pos
	}
	if g.lastMove != nil {
		lm := *g.lastMove
		lm.Captured = append([]Position(nil), g.lastMove.Captured...)
		state.LastMove = &lm
	}
	return state
}
