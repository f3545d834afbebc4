package game

import (
	"errors"
	"slices"

	"dotsandboxes/pkg/models/grid"
)

const (
	MinPlayers = 2
	MaxPlayers = 5
)

// Errors returned by session operations. Rejected moves are routine
// outcomes driven by user input; none of them mutate the session.
var (
	ErrGameOver     = errors.New("game already over")
	ErrAlreadyDrawn = errors.New("edge already drawn")
	ErrPlayerCount  = errors.New("player count out of range")
)

// Session is one running game: the drawn-edge set, box ownership,
// per-player scores, the current player and the game-over flag. It is
// mutated only through Apply and Reset.
type Session struct {
	Grid    grid.Grid
	Players int

	drawn   map[grid.Edge]struct{}
	owners  map[grid.Box]int
	scores  []int
	current int
	over    bool
}

func NewSession(rows, cols, players int) (*Session, error) {
	g, err := grid.New(rows, cols)
	if err != nil {
		return nil, err
	}
	if players < MinPlayers || players > MaxPlayers {
		return nil, ErrPlayerCount
	}

	s := &Session{Grid: g, Players: players}
	s.Reset()
	return s, nil
}

// Reset restores the session to its creation-time state.
func (s *Session) Reset() {
	s.drawn = make(map[grid.Edge]struct{})
	s.owners = make(map[grid.Box]int)
	s.scores = make([]int, s.Players)
	s.current = 0
	s.over = false
}

// MoveResult reports the effect of one accepted move.
type MoveResult struct {
	Edge      grid.Edge
	Player    int
	Completed []grid.Box
	GameOver  bool
}

// Apply validates and applies one edge for the current player. A
// completed box is awarded to the mover and keeps the turn; a move
// completing nothing passes it. Once the last legal edge is drawn the
// session is over and further moves fail with ErrGameOver.
func (s *Session) Apply(e grid.Edge) (MoveResult, error) {
	if s.over {
		return MoveResult{}, ErrGameOver
	}
	if err := s.Grid.Check(e); err != nil {
		return MoveResult{}, err
	}
	if _, drawn := s.drawn[e]; drawn {
		return MoveResult{}, ErrAlreadyDrawn
	}

	mover := s.current
	s.drawn[e] = struct{}{}

	var completed []grid.Box
	for _, b := range s.Grid.AdjacentBoxes(e) {
		if _, owned := s.owners[b]; owned {
			continue
		}
		if !s.boxComplete(b) {
			continue
		}
		s.owners[b] = mover
		s.scores[mover]++
		completed = append(completed, b)
	}

	if len(completed) == 0 {
		s.current = (s.current + 1) % s.Players
	}
	if len(s.drawn) == s.Grid.EdgeCount() {
		s.over = true
	}

	return MoveResult{
		Edge:      e,
		Player:    mover,
		Completed: completed,
		GameOver:  s.over,
	}, nil
}

func (s *Session) boxComplete(b grid.Box) bool {
	for _, e := range b.Edges() {
		if _, ok := s.drawn[e]; !ok {
			return false
		}
	}
	return true
}

// Contains reports whether the edge has been drawn.
func (s *Session) Contains(e grid.Edge) bool {
	_, ok := s.drawn[e]
	return ok
}

// DrawnCount returns the number of drawn edges.
func (s *Session) DrawnCount() int {
	return len(s.drawn)
}

// DrawnEdges returns the drawn edges sorted ascending.
func (s *Session) DrawnEdges() []grid.Edge {
	edges := make([]grid.Edge, 0, len(s.drawn))
	for e := range s.drawn {
		edges = append(edges, e)
	}
	slices.Sort(edges)
	return edges
}

// FreeEdges returns the undrawn legal edges in enumeration order.
func (s *Session) FreeEdges() (free []grid.Edge) {
	for _, e := range s.Grid.Edges() {
		if _, ok := s.drawn[e]; !ok {
			free = append(free, e)
		}
	}
	return
}

// Owner returns the player owning the box, if any.
func (s *Session) Owner(b grid.Box) (int, bool) {
	p, ok := s.owners[b]
	return p, ok
}

// OwnedBoxes returns box ownership sorted by box coordinate.
func (s *Session) OwnedBoxes() []OwnedBox {
	boxes := make([]OwnedBox, 0, len(s.owners))
	for b, p := range s.owners {
		boxes = append(boxes, OwnedBox{Box: b, Player: p})
	}
	slices.SortFunc(boxes, func(a, b OwnedBox) int { return int(a.Box - b.Box) })
	return boxes
}

type OwnedBox struct {
	Box    grid.Box
	Player int
}

// Score returns the player's box count.
func (s *Session) Score(player int) int {
	return s.scores[player]
}

// Scores returns a copy of all player scores.
func (s *Session) Scores() []int {
	return slices.Clone(s.scores)
}

// CurrentPlayer returns the index of the player to move.
func (s *Session) CurrentPlayer() int {
	return s.current
}

// Over reports whether every legal edge has been drawn.
func (s *Session) Over() bool {
	return s.over
}
