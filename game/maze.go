package game

import "github.com/beka-birhanu/vinom-maze/maze"

// Maze defines the methods a session needs from the maze it is played on.
type Maze interface {
	Start() maze.CellPosition
	End() maze.CellPosition
	IsOpen(pos maze.CellPosition, dir maze.Direction) bool
	Neighbor(pos maze.CellPosition, dir maze.Direction) maze.CellPosition
}

var _ Maze = (*maze.Maze)(nil)
