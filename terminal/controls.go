package terminal

import (
	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/maze"
)

// Controls maps key presses to game actions.
// Arrows and W/A/S/D move, q/Q and Ctrl-C quit, other keys are ignored.
type Controls struct {
	keys *KeyReader
}

// NewControls returns Controls reading from keys.
func NewControls(keys *KeyReader) *Controls {
	return &Controls{keys: keys}
}

// Next blocks until a key mapped to an action is pressed.
// Read errors, including io.EOF, are returned as is.
func (c *Controls) Next() (game.Action, error) {
	for {
		ev, err := c.keys.ReadKey()
		if err != nil {
			return game.Action{}, err
		}
		if action, ok := actionFor(ev); ok {
			return action, nil
		}
	}
}

// Confirm reads one key and reports whether it was y or Y.
func (c *Controls) Confirm() (bool, error) {
	ev, err := c.keys.ReadKey()
	if err != nil {
		return false, err
	}
	return ev.Key == KeyRune && (ev.Rune == 'y' || ev.Rune == 'Y'), nil
}

// WaitKey blocks until any key is pressed.
func (c *Controls) WaitKey() error {
	_, err := c.keys.ReadKey()
	return err
}

func actionFor(ev KeyEvent) (game.Action, bool) {
	switch ev.Key {
	case KeyUp:
		return game.MoveAction(maze.North), true
	case KeyDown:
		return game.MoveAction(maze.South), true
	case KeyRight:
		return game.MoveAction(maze.East), true
	case KeyLeft:
		return game.MoveAction(maze.West), true
	case KeyInterrupt:
		return game.QuitAction(), true
	case KeyRune:
		switch ev.Rune {
		case 'w', 'W':
			return game.MoveAction(maze.North), true
		case 's', 'S':
			return game.MoveAction(maze.South), true
		case 'd', 'D':
			return game.MoveAction(maze.East), true
		case 'a', 'A':
			return game.MoveAction(maze.West), true
		case 'q', 'Q':
			return game.QuitAction(), true
		}
	}
	return game.Action{}, false
}
