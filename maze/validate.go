package maze

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

var ErrBrokenMaze = errors.New("maze is not a spanning tree")

// Validate checks that the carved passages form a spanning tree of the grid:
// walls agree on both sides, no passage leaves the grid, there are exactly
// width*height-1 passages, and every cell is reachable from the start.
// A connected graph with n-1 edges is acyclic, so these checks together
// guarantee a unique path between any two cells.
func (m *Maze) Validate() error {
	for row := 0; row < m.height; row++ {
		for col := 0; col < m.width; col++ {
			pos := CellPosition{Row: row, Col: col}
			for _, dir := range Directions {
				if !m.IsOpen(pos, dir) {
					continue
				}
				next := pos.Step(dir)
				if !m.InBound(next.Row, next.Col) {
					return fmt.Errorf("%w: cell %v opens %v outside the grid", ErrBrokenMaze, pos, dir)
				}
				if !m.IsOpen(next, dir.Opposite()) {
					return fmt.Errorf("%w: cell %v opens %v but %v is walled", ErrBrokenMaze, pos, dir, next)
				}
			}
		}
	}

	want := m.width*m.height - 1
	if got := len(m.Passages()); got != want {
		return fmt.Errorf("%w: %d passages, want %d", ErrBrokenMaze, got, want)
	}

	if reached := m.reachable(m.Start()); reached != m.width*m.height {
		return fmt.Errorf("%w: %d of %d cells reachable from start", ErrBrokenMaze, reached, m.width*m.height)
	}
	return nil
}

// reachable counts the cells connected to from through open passages.
func (m *Maze) reachable(from CellPosition) int {
	visited := mapset.New[CellPosition]()
	visited.Put(from)
	queue := []CellPosition{from}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, dir := range Directions {
			if !m.IsOpen(current, dir) {
				continue
			}
			next := current.Step(dir)
			if visited.Has(next) {
				continue
			}
			visited.Put(next)
			queue = append(queue, next)
		}
	}
	return visited.Size()
}
