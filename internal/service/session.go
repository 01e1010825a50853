package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/benbeisheim/checkers-backend/internal/model"
	"github.com/benbeisheim/checkers-backend/internal/ws"
	"github.com/gofiber/fiber/v2/log"
)

// Observer receives state pushes. *websocket.Conn satisfies it.
type Observer interface {
	WriteJSON(v interface{}) error
	Close() error
}

// The observers of a single session
type GameConnections struct {
	connections map[string]Observer // playerID -> connection
	mu          sync.Mutex
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]Observer),
	}
}

// Session is one human-vs-computer game. All engine calls happen under mu,
// so each runs to completion before the next one starts.
type Session struct {
	ID          string
	OwnerID     string
	mu          sync.Mutex
	game        *model.Game
	clocks      *model.Clocks
	connections *GameConnections
	lastActive  time.Time
}

func NewSession(id, ownerID string, opts ...model.GameOption) *Session {
	s := &Session{
		ID:          id,
		OwnerID:     ownerID,
		game:        model.NewGame(opts...),
		clocks:      model.NewClocks(),
		connections: NewGameConnections(),
		lastActive:  time.Now(),
	}
	s.clocks.For(s.game.Turn()).Start()
	return s
}

func (s *Session) IsOwner(playerID string) bool {
	return playerID != "" && playerID == s.OwnerID
}

// GetState snapshots the session.
func (s *Session) GetState() model.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *Session) stateLocked() model.GameState {
	state := s.game.State()
	clocks := s.clocks.Client()
	state.Clocks = &clocks
	return state
}

// Select forwards a cell click of the human player. When the click completes
// a move and hands the turn to the computer, the computer answers before
// Select returns.
func (s *Session) Select(playerID string, row, col int) (model.GameState, error) {
	if !s.IsOwner(playerID) {
		return model.GameState{}, ErrNotAuthorized
	}
	if !(model.Position{Row: row, Col: col}).InBounds() {
		return model.GameState{}, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, row, col)
	}

	s.mu.Lock()
	s.lastActive = time.Now()
	state, err := s.selectLocked(row, col)
	s.mu.Unlock()
	if err != nil {
		// A rejected click may still have dropped the selection.
		if errors.Is(err, ErrIllegalAction) {
			s.broadcast(state)
		}
		return state, err
	}

	s.broadcast(state)
	return state, nil
}

func (s *Session) selectLocked(row, col int) (model.GameState, error) {
	human := s.game.AISide().Opponent()
	if s.game.Winner() != model.None {
		return s.stateLocked(), ErrGameOver
	}
	if s.game.Turn() != human {
		return s.stateLocked(), ErrNotYourTurn
	}

	if !s.game.Select(row, col) {
		return s.stateLocked(), fmt.Errorf("%w: (%d,%d)", ErrIllegalAction, row, col)
	}
	if s.game.Turn() == human {
		// Only the selection changed.
		return s.stateLocked(), nil
	}

	s.clocks.Switch(s.game.Turn())
	log.Debugw("human moved", "game", s.ID, "move", s.game.LastMove())
	s.playComputerLocked()
	return s.stateLocked(), nil
}

func (s *Session) playComputerLocked() {
	if s.game.Winner() != model.None {
		s.clocks.For(s.game.Turn()).Stop()
		log.Infow("game finished", "game", s.ID, "winner", s.game.Winner())
		return
	}

	res, moved := s.game.AIMove()
	if !moved {
		log.Warnw("computer has no legal move", "game", s.ID)
		return
	}
	s.clocks.Switch(s.game.Turn())
	log.Debugw("computer moved",
		"game", s.ID,
		"move", s.game.LastMove(),
		"score", res.Score,
		"nodes", res.Nodes,
	)
	if w := s.game.Winner(); w != model.None {
		s.clocks.For(s.game.Turn()).Stop()
		log.Infow("game finished", "game", s.ID, "winner", w)
	}
}

// Reset starts the session over.
func (s *Session) Reset(playerID string) (model.GameState, error) {
	if !s.IsOwner(playerID) {
		return model.GameState{}, ErrNotAuthorized
	}

	s.mu.Lock()
	s.lastActive = time.Now()
	s.game.Reset()
	s.clocks.Reset()
	s.clocks.For(s.game.Turn()).Start()
	state := s.stateLocked()
	s.mu.Unlock()

	log.Infow("game reset", "game", s.ID)
	s.broadcast(state)
	return state, nil
}

// RegisterConnection adds an observer. The owner and spectators may watch;
// an existing connection for the same player is kept and the new one closed.
func (s *Session) RegisterConnection(playerID string, conn Observer) error {
	s.connections.mu.Lock()
	if _, exists := s.connections.connections[playerID]; exists {
		s.connections.mu.Unlock()
		log.Warnw("duplicate connection rejected", "game", s.ID, "player", playerID)
		return conn.Close()
	}
	s.connections.connections[playerID] = conn
	s.connections.mu.Unlock()
	log.Debugw("connection registered", "game", s.ID, "player", playerID)

	s.broadcast(s.GetState())
	return nil
}

// UnregisterConnection removes an observer. Leaving restarts the idle timer.
func (s *Session) UnregisterConnection(playerID string, conn Observer) {
	s.mu.Lock()
	s.lastActive = time.Now()
	s.mu.Unlock()

	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()

	// Only drop the entry if it still belongs to this connection.
	if cur, exists := s.connections.connections[playerID]; exists && cur == conn {
		delete(s.connections.connections, playerID)
		log.Debugw("connection unregistered", "game", s.ID, "player", playerID)
	}
}

// Idle reports whether nobody has played in the session since before
// cutoff and no observer is connected.
func (s *Session) Idle(cutoff time.Time) bool {
	s.mu.Lock()
	last := s.lastActive
	s.mu.Unlock()
	return last.Before(cutoff) && s.ConnectionCount() == 0
}

func (s *Session) ConnectionCount() int {
	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()
	return len(s.connections.connections)
}

// broadcast pushes state to every observer. Writes are serialized by the
// connections mutex; observers that fail are dropped.
func (s *Session) broadcast(state model.GameState) {
	msg, err := ws.NewMessage(ws.MessageTypeGameState, state)
	if err != nil {
		log.Errorw("failed to marshal state", "game", s.ID, "error", err)
		return
	}

	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()
	for playerID, conn := range s.connections.connections {
		if err := conn.WriteJSON(msg); err != nil {
			log.Warnw("failed to send state", "game", s.ID, "player", playerID, "error", err)
			delete(s.connections.connections, playerID)
		}
	}
}

func (s *Session) send(playerID string, conn Observer, msg ws.Message) {
	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()
	if err := conn.WriteJSON(msg); err != nil {
		log.Debugw("failed to send message", "game", s.ID, "player", playerID, "error", err)
	}
}
