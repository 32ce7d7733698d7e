package match

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"checkers/internal/checkers"
)

var ErrMatchNotFound = errors.New("match not found")

type Manager struct {
	mu      sync.RWMutex
	matches map[string]*Match
	order   []string // ids in creation order
	log     *zap.SugaredLogger
	now     func() time.Time
}

func NewManager(log *zap.SugaredLogger) *Manager {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Manager{
		matches: make(map[string]*Match),
		log:     log,
		now:     time.Now,
	}
}

// NewMatch starts a game on board with starting to move. The match owns board;
// a position that is already decided yields a finished match.
func (m *Manager) NewMatch(board *checkers.Board, starting checkers.Color) *Match {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	g := &Match{
		ID:        uuid.NewString(),
		State:     checkers.NewGameState(board, starting),
		Starting:  starting,
		CreatedAt: now,
		UpdatedAt: now,
	}
	g.State.UpdateStatus()
	m.matches[g.ID] = g
	m.order = append(m.order, g.ID)
	m.log.Infow("match created",
		"match_id", g.ID,
		"starting", starting.String(),
		"position", checkers.EncodeBoard(board),
	)
	return g
}

func (m *Manager) Get(id string) (*Match, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.matches[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMatchNotFound, id)
	}
	return g, nil
}

// Play applies the legal move whose path equals path.
func (m *Manager) Play(id string, path []checkers.Position) (checkers.Move, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	g, ok := m.matches[id]
	if !ok {
		return checkers.Move{}, fmt.Errorf("%w: %s", ErrMatchNotFound, id)
	}
	player := g.State.CurrentPlayer()
	mv, err := g.State.TryApplyMove(path)
	if err != nil {
		m.log.Debugw("move rejected", "match_id", id, "player", player.String(), zap.Error(err))
		return checkers.Move{}, err
	}
	g.Moves = append(g.Moves, mv)
	g.UpdatedAt = m.now()

	m.log.Infow("move applied",
		"match_id", id,
		"player", player.String(),
		"move", mv.String(),
		"captured", len(mv.Captured),
	)
	if g.IsOver() {
		m.log.Infow("match finished",
			"match_id", id,
			"status", g.State.Status().String(),
			"plies", len(g.Moves),
		)
	}
	return mv, nil
}

// Abandon drops a match, finished or not.
func (m *Manager) Abandon(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.matches[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrMatchNotFound, id)
	}
	delete(m.matches, id)
	m.order = slices.DeleteFunc(m.order, func(s string) bool { return s == id })
	m.log.Infow("match abandoned",
		"match_id", id,
		"status", g.State.Status().String(),
		"plies", len(g.Moves),
	)
	return nil
}

// List returns the ids of all hosted matches, oldest first.
func (m *Manager) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.order)
}
