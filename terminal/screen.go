package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/beka-birhanu/vinom-maze/maze"
)

const (
	clearScreen = "\033[H\033[2J"
	playerGlyph = 'o'
	helpLine    = "Use arrow keys or WASD to move. Press 'q' to quit."
)

// Screen draws the maze and the player to a terminal.
type Screen struct {
	out io.Writer
}

// NewScreen returns a Screen writing to out.
func NewScreen(out io.Writer) *Screen {
	return &Screen{out: out}
}

// Render clears the terminal and redraws the maze with the player marked.
func (s *Screen) Render(m *maze.Maze, player maze.CellPosition) error {
	var b strings.Builder
	b.WriteString(clearScreen)
	writeMaze(&b, m, func(pos maze.CellPosition) rune {
		if pos == player {
			return playerGlyph
		}
		return 0
	})
	b.WriteString("\n" + helpLine + "\n")

	_, err := io.WriteString(s.out, b.String())
	return err
}

// PrintMaze writes the maze between its "start" and "end" labels.
func PrintMaze(w io.Writer, m *maze.Maze) error {
	var b strings.Builder
	writeMaze(&b, m, nil)
	_, err := io.WriteString(w, b.String())
	return err
}

func writeMaze(b *strings.Builder, m *maze.Maze, overlay func(maze.CellPosition) rune) {
	fmt.Fprintln(b, "start")
	for _, line := range m.Draw(overlay) {
		fmt.Fprintln(b, line)
	}
	fmt.Fprintln(b, "end")
}
