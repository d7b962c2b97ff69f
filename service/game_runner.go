package service

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	ErrNoActionSource = errors.New("no action source")
	ErrNoRenderer     = errors.New("no renderer")
)

// Outcome tells how a game ended.
type Outcome uint8

// Game outcomes.
const (
	Quit Outcome = iota
	Won
)

// String returns "won" or "quit".
func (o Outcome) String() string {
	if o == Won {
		return "won"
	}
	return "quit"
}

// Result summarizes a finished game.
type Result struct {
	SessionID uuid.UUID
	Outcome   Outcome
	Moves     int // Successful moves
	Bumps     int // Moves into a wall
}

// GameRunner drives a game session: it pulls actions from a source, applies
// them to the session and redraws after every move until the player wins or
// quits.
type GameRunner struct {
	source   i.ActionSource
	renderer i.Renderer
	out      io.Writer
	printer  *message.Printer
	logger   *log.Logger
}

// Config holds the collaborators of a GameRunner.
// Out, Printer and Logger are optional.
type Config struct {
	Source   i.ActionSource   // Player input
	Renderer i.Renderer       // Maze drawing
	Out      io.Writer        // End of game messages
	Printer  *message.Printer // Formats messages for the player's language
	Logger   *log.Logger
}

// NewGameRunner creates a GameRunner from c.
func NewGameRunner(c *Config) (*GameRunner, error) {
	if c.Source == nil {
		return nil, ErrNoActionSource
	}
	if c.Renderer == nil {
		return nil, ErrNoRenderer
	}

	g := &GameRunner{
		source:   c.Source,
		renderer: c.Renderer,
		out:      c.Out,
		printer:  c.Printer,
		logger:   c.Logger,
	}
	if g.out == nil {
		g.out = io.Discard
	}
	if g.printer == nil {
		g.printer = message.NewPrinter(language.English)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard, "", 0)
	}
	return g, nil
}

// Play runs a new session on m until it is won or the player quits.
// Running out of input counts as quitting.
func (g *GameRunner) Play(m *maze.Maze) (Result, error) {
	if m == nil {
		return Result{}, game.ErrNilMaze
	}

	session, err := game.NewSession(m)
	if err != nil {
		return Result{}, err
	}
	g.logger.Printf("%s[INFO]%s started session %s on a %dx%d maze", config.LogInfoColor, config.LogColorReset, session.ID(), m.Width(), m.Height())

	if err := g.renderer.Render(m, session.Position()); err != nil {
		return g.result(session, Quit), fmt.Errorf("render: %w", err)
	}

	for !session.IsWon() {
		action, err := g.source.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			g.logger.Printf("%s[ERROR]%s reading input for session %s: %s", config.LogErrorColor, config.LogColorReset, session.ID(), err)
			return g.result(session, Quit), fmt.Errorf("read action: %w", err)
		}

		if action.Kind == game.ActionQuit {
			break
		}
		if action.Kind != game.ActionMove {
			continue
		}

		res := session.AttemptMove(action.Direction)
		g.logger.Printf("%s[INFO]%s session %s: %v %v -> %v", config.LogInfoColor, config.LogColorReset, session.ID(), action.Direction, res.Status, res.Position)
		if res.Status != game.Moved {
			continue
		}
		if err := g.renderer.Render(m, res.Position); err != nil {
			return g.result(session, Quit), fmt.Errorf("render: %w", err)
		}
	}

	outcome := Quit
	if session.IsWon() {
		outcome = Won
	}
	result := g.result(session, outcome)
	g.announce(result)
	g.logger.Printf("%s[INFO]%s session %s %s after %d moves", config.LogInfoColor, config.LogColorReset, session.ID(), outcome, result.Moves)
	return result, nil
}

func (g *GameRunner) result(s *game.Session, o Outcome) Result {
	return Result{
		SessionID: s.ID(),
		Outcome:   o,
		Moves:     s.Moves(),
		Bumps:     s.Bumps(),
	}
}

func (g *GameRunner) announce(r Result) {
	if r.Outcome == Won {
		g.printer.Fprintf(g.out, "\nCongratulations! You solved the maze in %d moves!\n", r.Moves)
		return
	}
	g.printer.Fprintf(g.out, "\nThanks for playing!\n")
}
