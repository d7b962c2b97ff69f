package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/terminal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Global variables for dependencies
var (
	appLogger *log.Logger
	printer   *message.Printer
)

func initLogger(errOut io.Writer) func() error {
	w, closeLog, err := config.OpenLogOutput(config.Envs.LogFile)
	if err != nil {
		fmt.Fprintf(errOut, "Warning: %v, logging disabled\n", err)
		w, closeLog = io.Discard, func() error { return nil }
	}
	appLogger = config.NewLogger("APP", config.ColorGreen, w)
	return closeLog
}

func initPrinter() {
	tag, err := language.Parse(config.Envs.Lang)
	if err != nil {
		appLogger.Printf("%s[ERROR]%s unknown language %q, using English: %s", config.LogErrorColor, config.LogColorReset, config.Envs.Lang, err)
		tag = language.English
	}
	printer = message.NewPrinter(tag)
}

func generateMaze(width, height int, seed uint64) (*maze.Maze, error) {
	if seed == 0 {
		return maze.New(width, height)
	}
	return maze.NewSeeded(width, height, seed)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run plays one maze with the given arguments and streams and returns the
// process exit code.
func run(args []string, in *os.File, out, errOut io.Writer) int {
	fs := flag.NewFlagSet("vinom-maze", flag.ContinueOnError)
	fs.SetOutput(errOut)
	width := fs.Int("width", config.Envs.Width, "maze width in cells")
	height := fs.Int("height", config.Envs.Height, "maze height in cells")
	seed := fs.Uint64("seed", config.Envs.Seed, "random seed for reproducibility (0 = random)")
	yes := fs.Bool("yes", false, "play right away without asking")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	closeLog := initLogger(errOut)
	defer func() {
		_ = closeLog()
	}()
	initPrinter()

	fmt.Fprintln(out, "Generating maze...")
	m, err := generateMaze(*width, *height, *seed)
	if err != nil {
		appLogger.Printf("%s[ERROR]%s generating maze: %s", config.LogErrorColor, config.LogColorReset, err)
		if errors.Is(err, maze.ErrInvalidDimension) {
			fmt.Fprintf(errOut, "Error: width and height must be positive integers (%v)\n", err)
		} else {
			fmt.Fprintf(errOut, "Error: %v\n", err)
		}
		return 1
	}
	if err := m.Validate(); err != nil {
		appLogger.Printf("%s[ERROR]%s generated maze failed validation: %s", config.LogErrorColor, config.LogColorReset, err)
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return 1
	}
	usedSeed, _ := m.Seed()
	appLogger.Printf("%s[INFO]%s generated %dx%d maze with seed %d", config.LogInfoColor, config.LogColorReset, m.Width(), m.Height(), usedSeed)

	fmt.Fprintln(out)
	if err := terminal.PrintMaze(out, m); err != nil {
		return 1
	}
	// Printed raw so it can be pasted back into -seed.
	fmt.Fprintf(out, "seed: %d\n\n", usedSeed)

	console, err := terminal.OpenConsole(in, out)
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return 1
	}
	defer func() {
		if err := console.Close(); err != nil {
			appLogger.Printf("%s[ERROR]%s %s", config.LogErrorColor, config.LogColorReset, err)
		}
	}()
	errOut = console.Wrap(errOut)
	controls := terminal.NewControls(console.Keys)

	if !*yes {
		fmt.Fprint(console.Out, "Would you like to play this maze? (y/n): ")
		ok, err := controls.Confirm()
		fmt.Fprintln(console.Out)
		if err != nil && !errors.Is(err, io.EOF) {
			fmt.Fprintf(errOut, "Error: %v\n", err)
			return 1
		}
		if !ok {
			fmt.Fprintln(console.Out, "Goodbye!")
			return 0
		}
	}

	runner, err := service.NewGameRunner(&service.Config{
		Source:   controls,
		Renderer: terminal.NewScreen(console.Out),
		Out:      console.Out,
		Printer:  printer,
		Logger:   config.NewLogger("GAME", config.ColorCyan, appLogger.Writer()),
	})
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return 1
	}

	result, err := runner.Play(m)
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return 1
	}

	if result.Outcome == service.Won {
		fmt.Fprintln(console.Out, "Press any key to exit...")
		_ = controls.WaitKey()
	}
	return 0
}
