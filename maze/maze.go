/*
Package maze provides tools for creating and inspecting rectangular mazes.

It defines the `Maze` structure, a grid of `Cell` values whose open directions
describe the carved passages. Mazes are generated with randomized depth-first
backtracking, which carves a spanning tree of the grid: every cell is
reachable from every other cell through exactly one simple path.

A Maze is immutable once returned and may be shared freely between readers.
*/
package maze

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/beka-birhanu/vinom-maze/random"
)

const (
	// maxCells bounds width*height so the grid and its traversal stack fit
	// in memory and the product cannot overflow int.
	maxCells = 1 << 24
)

var (
	ErrInvalidDimension = errors.New("invalid maze dimension")
	ErrNilRand          = errors.New("nil random source")
)

// Rand is the random source used to pick among candidate neighbours.
// IntN must return a uniformly distributed value in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// Maze represents a rectangular maze of cells carved into a spanning tree.
type Maze struct {
	width  int    // Width of the maze (number of columns)
	height int    // Height of the maze (number of rows)
	cells  []Cell // Cells in row-major order
	seed   uint64 // Seed the maze was generated from
	seeded bool   // Whether seed is meaningful
}

// New generates a maze of the given dimensions from a freshly drawn seed.
func New(width, height int) (*Maze, error) {
	seed, err := random.NewSeed()
	if err != nil {
		return nil, err
	}
	return NewSeeded(width, height, seed)
}

// NewSeeded generates a maze of the given dimensions. The same seed always
// produces the same maze.
func NewSeeded(width, height int, seed uint64) (*Maze, error) {
	m, err := Generate(width, height, rand.New(rand.NewPCG(seed, seed)))
	if err != nil {
		return nil, err
	}
	m.seed = seed
	m.seeded = true
	return m, nil
}

// Generate builds a maze of the given dimensions using rng to choose among
// unvisited neighbours.
func Generate(width, height int, rng Rand) (*Maze, error) {
	if width <= 0 || height <= 0 || width > maxCells/height {
		return nil, fmt.Errorf("%w: width=%d height=%d", ErrInvalidDimension, width, height)
	}
	if rng == nil {
		return nil, ErrNilRand
	}

	m := &Maze{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	m.carve(rng)
	return m, nil
}

// carve opens walls by randomized depth-first traversal from the start cell.
// A wall is only ever opened towards an unvisited cell, so the carved
// passages form a spanning tree.
func (m *Maze) carve(rng Rand) {
	visited := make([]bool, len(m.cells))
	start := m.Start()
	visited[m.index(start)] = true

	stack := make([]CellPosition, 0, len(m.cells))
	stack = append(stack, start)

	candidates := make([]Passage, 0, len(Directions))
	for len(stack) > 0 {
		current := stack[len(stack)-1]

		candidates = candidates[:0]
		for _, p := range m.neighbors(current) {
			if !visited[m.index(p.To)] {
				candidates = append(candidates, p)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		chosen := candidates[rng.IntN(len(candidates))]
		m.openWall(chosen)
		visited[m.index(chosen.To)] = true
		stack = append(stack, chosen.To)
	}
}

// neighbors finds all in-bound neighbours of a cell in Directions order.
func (m *Maze) neighbors(pos CellPosition) []Passage {
	result := make([]Passage, 0, len(Directions))
	for _, dir := range Directions {
		next := pos.Step(dir)
		if m.InBound(next.Row, next.Col) {
			result = append(result, Passage{From: pos, To: next, Direction: dir})
		}
	}
	return result
}

// openWall removes the wall between two adjacent cells on both sides.
func (m *Maze) openWall(p Passage) {
	m.cells[m.index(p.From)].open |= p.Direction
	m.cells[m.index(p.To)].open |= p.Direction.Opposite()
}

func (m *Maze) index(pos CellPosition) int {
	return pos.Row*m.width + pos.Col
}

// Width returns the number of columns.
func (m *Maze) Width() int {
	return m.width
}

// Height returns the number of rows.
func (m *Maze) Height() int {
	return m.height
}

// Start returns the entrance cell, the top-left corner.
func (m *Maze) Start() CellPosition {
	return CellPosition{Row: 0, Col: 0}
}

// End returns the exit cell, the bottom-right corner.
func (m *Maze) End() CellPosition {
	return CellPosition{Row: m.height - 1, Col: m.width - 1}
}

// Seed returns the seed the maze was generated from. The second value is
// false when the maze was built from a caller-supplied Rand.
func (m *Maze) Seed() (uint64, bool) {
	return m.seed, m.seeded
}

// InBound reports whether (row, col) lies inside the grid.
func (m *Maze) InBound(row, col int) bool {
	return row >= 0 && row < m.height && col >= 0 && col < m.width
}

// Cell returns a copy of the cell at pos. Out of bound positions yield a
// cell with every wall closed.
func (m *Maze) Cell(pos CellPosition) Cell {
	if !m.InBound(pos.Row, pos.Col) {
		return Cell{}
	}
	return m.cells[m.index(pos)]
}

// IsOpen reports whether a move from pos in direction dir crosses a passage.
func (m *Maze) IsOpen(pos CellPosition, dir Direction) bool {
	return m.Cell(pos).IsOpen(dir)
}

// Neighbor returns the position one step from pos in direction dir.
// It does not check walls or bounds.
func (m *Maze) Neighbor(pos CellPosition, dir Direction) CellPosition {
	return pos.Step(dir)
}

// Passages lists every carved passage once, in row-major order, pointing
// South or East.
func (m *Maze) Passages() []Passage {
	result := make([]Passage, 0, len(m.cells))
	for row := 0; row < m.height; row++ {
		for col := 0; col < m.width; col++ {
			pos := CellPosition{Row: row, Col: col}
			cell := m.cells[m.index(pos)]
			for _, dir := range [...]Direction{South, East} {
				if cell.IsOpen(dir) {
					result = append(result, Passage{From: pos, To: pos.Step(dir), Direction: dir})
				}
			}
		}
	}
	return result
}
