package service

import (
	"fmt"

	"github.com/benbeisheim/checkers-backend/internal/model"
	"github.com/benbeisheim/checkers-backend/internal/ws"
)

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

func (gs *GameService) CreateGame(playerID string) (string, error) {
	session, err := gs.gameManager.CreateGame(playerID)
	if err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}
	return session.ID, nil
}

// GameCount is the number of live sessions.
func (gs *GameService) GameCount() int {
	return gs.gameManager.Count()
}

// GameExists reports whether gameID names a live game.
func (gs *GameService) GameExists(gameID string) bool {
	_, err := gs.gameManager.GetGame(gameID)
	return err == nil
}

func (gs *GameService) GetGameState(gameID string) (model.GameState, error) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return session.GetState(), nil
}

func (gs *GameService) Select(gameID, playerID string, row, col int) (model.GameState, error) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return session.Select(playerID, row, col)
}

func (gs *GameService) Reset(gameID, playerID string) (model.GameState, error) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return session.Reset(playerID)
}

func (gs *GameService) RegisterConnection(gameID, playerID string, conn Observer) error {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	return session.RegisterConnection(playerID, conn)
}

func (gs *GameService) UnregisterConnection(gameID, playerID string, conn Observer) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return
	}
	session.UnregisterConnection(playerID, conn)
}

// SendError reports a failure to one observer without interleaving with
// state broadcasts.
func (gs *GameService) SendError(gameID, playerID string, conn Observer, text string) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return
	}
	session.send(playerID, conn, ws.NewErrorMessage(text))
}
