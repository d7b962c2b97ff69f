package i

import (
	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/maze"
)

// ActionSource supplies decoded player actions, one per input event.
type ActionSource interface {
	// Next blocks until the next action is available.
	// io.EOF reports that no more input will arrive.
	Next() (game.Action, error)
}

// Renderer draws the maze and the player after each state change.
type Renderer interface {
	Render(m *maze.Maze, player maze.CellPosition) error
}
