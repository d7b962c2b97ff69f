package maze

import (
	"strings"
)

// Draw renders the maze as ASCII lines in a "+---+" grid.
// The top border above Start and the bottom border below End are left open
// to mark the entrance and exit. overlay, when not nil, supplies a glyph for
// each cell; returning 0 leaves the cell blank.
func (m *Maze) Draw(overlay func(pos CellPosition) rune) []string {
	lines := make([]string, 0, 2*m.height+1)

	// Top boundary
	var top strings.Builder
	top.WriteString("+")
	for col := 0; col < m.width; col++ {
		if (CellPosition{Row: 0, Col: col}) == m.Start() {
			top.WriteString("   +")
		} else {
			top.WriteString("---+")
		}
	}
	lines = append(lines, top.String())

	for row := 0; row < m.height; row++ {
		// Cell rows
		var cellRow strings.Builder
		cellRow.WriteString("|")
		for col := 0; col < m.width; col++ {
			pos := CellPosition{Row: row, Col: col}
			glyph := ' '
			if overlay != nil {
				if g := overlay(pos); g != 0 {
					glyph = g
				}
			}
			cellRow.WriteString(" ")
			cellRow.WriteRune(glyph)
			cellRow.WriteString(" ")

			if m.Cell(pos).HasEastWall() {
				cellRow.WriteString("|")
			} else {
				cellRow.WriteString(" ")
			}
		}
		lines = append(lines, cellRow.String())

		// Wall rows
		var wallRow strings.Builder
		wallRow.WriteString("+")
		for col := 0; col < m.width; col++ {
			pos := CellPosition{Row: row, Col: col}
			if m.Cell(pos).HasSouthWall() && pos != m.End() {
				wallRow.WriteString("---+")
			} else {
				wallRow.WriteString("   +")
			}
		}
		lines = append(lines, wallRow.String())
	}

	return lines
}

// String provides a textual representation of the maze.
func (m *Maze) String() string {
	return strings.Join(m.Draw(nil), "\n") + "\n"
}
