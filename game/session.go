package game

import (
	"errors"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

var ErrNilMaze = errors.New("nil maze")

// MoveStatus is the outcome of a move attempt.
type MoveStatus uint8

// Move outcomes.
const (
	Blocked MoveStatus = iota
	Moved
)

// String returns "Moved" or "Blocked".
func (s MoveStatus) String() string {
	if s == Moved {
		return "Moved"
	}
	return "Blocked"
}

// MoveResult reports a move attempt and the player position after it.
type MoveResult struct {
	Status   MoveStatus
	Position maze.CellPosition
}

// Session holds a player walking through a maze.
// The maze is only read; the player state is owned by the session and must
// be driven from a single goroutine.
type Session struct {
	id    uuid.UUID
	maze  Maze
	pos   maze.CellPosition // Current player position.
	moves int               // Successful moves.
	bumps int               // Attempts that hit a wall.
}

// NewSession places a player at the start of m.
func NewSession(m Maze) (*Session, error) {
	if m == nil {
		return nil, ErrNilMaze
	}

	return &Session{
		id:   uuid.New(),
		maze: m,
		pos:  m.Start(),
	}, nil
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Position returns the current player position.
func (s *Session) Position() maze.CellPosition {
	return s.pos
}

// Moves returns the number of successful moves.
func (s *Session) Moves() int {
	return s.moves
}

// Bumps returns the number of blocked move attempts.
func (s *Session) Bumps() int {
	return s.bumps
}

// AttemptMove moves the player one cell in dir if the current cell is open
// in that direction. Walls, malformed directions and moves after the maze is
// solved report Blocked and leave the position unchanged.
func (s *Session) AttemptMove(dir maze.Direction) MoveResult {
	if s.IsWon() || !s.maze.IsOpen(s.pos, dir) {
		s.bumps++
		return MoveResult{Status: Blocked, Position: s.pos}
	}

	s.pos = s.maze.Neighbor(s.pos, dir)
	s.moves++
	return MoveResult{Status: Moved, Position: s.pos}
}

// IsWon reports whether the player stands on the maze exit.
func (s *Session) IsWon() bool {
	return s.pos == s.maze.End()
}
