package maze

import "strings"

// Direction is a set of compass directions stored as bit flags.
// A single direction has exactly one bit set.
type Direction uint8

const (
	North Direction = 1 << iota
	South
	East
	West
)

// Directions lists the four directions in the order candidates are
// enumerated during generation. A fixed order keeps seeded mazes reproducible.
var Directions = [...]Direction{North, South, East, West}

// Valid reports whether d is exactly one of the four directions.
func (d Direction) Valid() bool {
	switch d {
	case North, South, East, West:
		return true
	default:
		return false
	}
}

// Opposite returns the mirrored direction, or 0 if d is not a single direction.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return 0
	}
}

// Delta returns the row and column offset of one step in direction d.
func (d Direction) Delta() (row, col int) {
	switch d {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case East:
		return 0, 1
	case West:
		return 0, -1
	default:
		return 0, 0
	}
}

// String returns the direction name, or a "|" separated list for a set.
func (d Direction) String() string {
	if d == 0 {
		return "None"
	}

	var names []string
	for _, dir := range Directions {
		if d&dir == 0 {
			continue
		}
		switch dir {
		case North:
			names = append(names, "North")
		case South:
			names = append(names, "South")
		case East:
			names = append(names, "East")
		case West:
			names = append(names, "West")
		}
	}
	return strings.Join(names, "|")
}

// Cell represents a single cell in a maze grid.
// Walls are the complement of its open directions.
type Cell struct {
	open Direction // open holds the directions carved towards a neighbour.
}

// Open returns the set of open directions of the cell.
func (c Cell) Open() Direction {
	return c.open
}

// IsOpen returns true if the cell has a passage in direction d.
func (c Cell) IsOpen(d Direction) bool {
	return d.Valid() && c.open&d != 0
}

// HasWall returns true if there is a wall in direction d.
func (c Cell) HasWall(d Direction) bool {
	return !c.IsOpen(d)
}

// HasNorthWall returns true if there is a wall on the north side of the cell.
func (c Cell) HasNorthWall() bool {
	return c.HasWall(North)
}

// HasSouthWall returns true if there is a wall on the south side of the cell.
func (c Cell) HasSouthWall() bool {
	return c.HasWall(South)
}

// HasEastWall returns true if there is a wall on the east side of the cell.
func (c Cell) HasEastWall() bool {
	return c.HasWall(East)
}

// HasWestWall returns true if there is a wall on the west side of the cell.
func (c Cell) HasWestWall() bool {
	return c.HasWall(West)
}

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Row int // Row index of the cell
	Col int // Column index of the cell
}

// Step returns the position one step away in direction d.
func (cp CellPosition) Step(d Direction) CellPosition {
	dr, dc := d.Delta()
	return CellPosition{Row: cp.Row + dr, Col: cp.Col + dc}
}

// Passage represents an opened wall between two adjacent cells.
type Passage struct {
	From      CellPosition // Cell the passage was carved from
	To        CellPosition // Neighbouring cell
	Direction Direction    // Direction from From to To
}
