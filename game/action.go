package game

import "github.com/beka-birhanu/vinom-maze/maze"

// ActionKind tells a move request apart from a request to stop playing.
type ActionKind uint8

// Action kinds.
const (
	ActionMove ActionKind = iota + 1
	ActionQuit
)

// Action is a decoded player request.
type Action struct {
	Kind      ActionKind
	Direction maze.Direction // Direction is set for ActionMove only.
}

// MoveAction returns an Action requesting a move in dir.
func MoveAction(dir maze.Direction) Action {
	return Action{Kind: ActionMove, Direction: dir}
}

// QuitAction returns an Action requesting the end of play.
func QuitAction() Action {
	return Action{Kind: ActionQuit}
}
