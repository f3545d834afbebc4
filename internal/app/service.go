package app

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"dotsandboxes/pkg/models/game"
	"dotsandboxes/pkg/models/grid"
)

// ErrNotFound is returned for an unknown game id.
var ErrNotFound = errors.New("game not found")

// State is the read-only snapshot handed to presentation adapters. The
// session itself is never exposed; adapters mutate only through Move
// and Reset.
type State struct {
	ID      string
	Rows    int
	Cols    int
	Players int
	Drawn   []grid.Edge
	Owned   []game.OwnedBox
	Scores  []int
	Current int
	Over    bool
	Result  *game.Result
}

// Service owns every live session. The mutex serializes all access so
// each move runs to completion before the next one is accepted.
type Service struct {
	mu    sync.Mutex
	games map[string]*game.Session
}

func NewService() *Service {
	return &Service{games: make(map[string]*game.Session)}
}

// Create starts a new session and returns its snapshot.
func (s *Service) Create(rows, cols, players int) (State, error) {
	sess, err := game.NewSession(rows, cols, players)
	if err != nil {
		return State{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	s.games[id] = sess
	return snapshot(id, sess), nil
}

// Get returns the current snapshot of a session.
func (s *Service) Get(id string) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.games[id]
	if !ok {
		return State{}, ErrNotFound
	}
	return snapshot(id, sess), nil
}

// Move applies one edge to a session.
func (s *Service) Move(id string, e grid.Edge) (game.MoveResult, State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.games[id]
	if !ok {
		return game.MoveResult{}, State{}, ErrNotFound
	}

	res, err := sess.Apply(e)
	if err != nil {
		return game.MoveResult{}, snapshot(id, sess), err
	}
	return res, snapshot(id, sess), nil
}

// Reset restores a session to its creation-time state.
func (s *Service) Reset(id string) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.games[id]
	if !ok {
		return State{}, ErrNotFound
	}
	sess.Reset()
	return snapshot(id, sess), nil
}

func snapshot(id string, sess *game.Session) State {
	st := State{
		ID:      id,
		Rows:    sess.Grid.Rows,
		Cols:    sess.Grid.Cols,
		Players: sess.Players,
		Drawn:   sess.DrawnEdges(),
		Owned:   sess.OwnedBoxes(),
		Scores:  sess.Scores(),
		Current: sess.CurrentPlayer(),
		Over:    sess.Over(),
	}
	if result, ok := sess.Result(); ok {
		st.Result = &result
	}
	return st
}
