// service/game_manager.go
package service

import (
	"sync"
	"time"

	"github.com/benbeisheim/checkers-backend/internal/model"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

// GameManager owns every running session.
type GameManager struct {
	games map[string]*Session
	depth int
	mu    sync.RWMutex
}

func NewGameManager(depth int) *GameManager {
	if depth < 1 {
		depth = model.DefaultSearchDepth
	}
	return &GameManager{
		games: make(map[string]*Session),
		depth: depth,
	}
}

// CreateGame starts a new session owned by playerID and returns its id.
func (gm *GameManager) CreateGame(playerID string) (*Session, error) {
	return gm.CreateGameWithID(uuid.New().String(), playerID)
}

func (gm *GameManager) CreateGameWithID(gameID, playerID string, opts ...model.GameOption) (*Session, error) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return nil, ErrGameExists
	}

	opts = append([]model.GameOption{model.WithSearchDepth(gm.depth)}, opts...)
	session := NewSession(gameID, playerID, opts...)
	gm.games[gameID] = session
	log.Infow("game created", "game", gameID, "owner", playerID, "depth", gm.depth)
	return session, nil
}

func (gm *GameManager) GetGame(gameID string) (*Session, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	session, exists := gm.games[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}
	return session, nil
}

// EvictIdle drops every session that has not been played since cutoff and
// has no observer. It returns the ids it removed.
func (gm *GameManager) EvictIdle(cutoff time.Time) []string {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	var evicted []string
	for id, session := range gm.games {
		if session.Idle(cutoff) {
			delete(gm.games, id)
			evicted = append(evicted, id)
		}
	}
	if len(evicted) > 0 {
		log.Infow("idle games evicted", "count", len(evicted), "remaining", len(gm.games))
	}
	return evicted
}

// StartSweeper evicts sessions idle for longer than ttl until the returned
// stop function is called. A zero ttl disables eviction.
func (gm *GameManager) StartSweeper(ttl time.Duration) (stop func()) {
	if ttl <= 0 {
		return func() {}
	}
	interval := ttl / 4
	if interval < time.Second {
		interval = time.Second
	}

	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				gm.EvictIdle(time.Now().Add(-ttl))
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() { once.Do(func() { close(done) }) }
}

func (gm *GameManager) Count() int {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	return len(gm.games)
}
