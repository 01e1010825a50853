package model

import "fmt"

const BoardSize = 8

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// InBounds reports whether the position lies on the 8x8 grid.
func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// Piece is stored by value in its board cell. The zero value is an empty cell.
type Piece struct {
	Row  int
	Col  int
	Side Side
	King bool
}

func (p Piece) Empty() bool {
	return p.Side == None
}

func (p Piece) Position() Position {
	return Position{Row: p.Row, Col: p.Col}
}

// directions returns the row deltas the piece may travel along.
func (p Piece) directions() []int {
	if p.King {
		return []int{-1, 1}
	}
	return []int{p.Side.Forward()}
}

// PieceState is the rendering view of an occupied cell.
type PieceState struct {
	Side Side `json:"side"`
	King bool `json:"king"`
}
