package service

import "errors"

var (
	ErrGameNotFound  = errors.New("game not found")
	ErrGameExists    = errors.New("game already exists")
	ErrNotAuthorized = errors.New("player not in game")
	ErrNotYourTurn   = errors.New("not your turn")
	ErrOutOfBounds   = errors.New("cell out of bounds")
	ErrIllegalAction = errors.New("nothing to select or move there")
	ErrGameOver      = errors.New("game is over")
)
