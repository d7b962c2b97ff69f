/*
Package terminal connects a game to a text terminal.

It decodes raw keyboard input into game actions, draws the maze with the
player on it, and switches the terminal in and out of raw mode so single
key presses arrive without waiting for Enter.
*/
package terminal

import (
	"bufio"
	"io"
)

// Key identifies the kind of a decoded key press.
type Key uint8

// Decoded keys. KeyRune carries the typed character in KeyEvent.Rune.
const (
	KeyRune Key = iota
	KeyUp
	KeyDown
	KeyRight
	KeyLeft
	KeyEscape
	KeyInterrupt
)

const (
	escape    = 0x1b
	interrupt = 0x03 // Ctrl-C, delivered as a byte in raw mode.
)

// KeyEvent is a single decoded key press.
type KeyEvent struct {
	Key  Key
	Rune rune
}

// KeyReader decodes key presses from a byte stream.
type KeyReader struct {
	r *bufio.Reader
}

// NewKeyReader returns a KeyReader reading from r.
func NewKeyReader(r io.Reader) *KeyReader {
	return &KeyReader{r: bufio.NewReader(r)}
}

// ReadKey blocks until the next key press is decoded.
// Arrow keys arrive as "ESC [ X" or "ESC O X" sequences; an escape that is
// not followed by one of those is reported as KeyEscape.
func (k *KeyReader) ReadKey() (KeyEvent, error) {
	r, _, err := k.r.ReadRune()
	if err != nil {
		return KeyEvent{}, err
	}

	switch r {
	case interrupt:
		return KeyEvent{Key: KeyInterrupt}, nil
	case escape:
		return k.readEscape()
	default:
		return KeyEvent{Key: KeyRune, Rune: r}, nil
	}
}

// readEscape decodes the bytes after an ESC. There is no read timeout, so on a
// live terminal a bare ESC is only reported once the next key arrives.
func (k *KeyReader) readEscape() (KeyEvent, error) {
	intro, err := k.r.ReadByte()
	if err != nil {
		return KeyEvent{Key: KeyEscape}, nil
	}
	if intro != '[' && intro != 'O' {
		_ = k.r.UnreadByte()
		return KeyEvent{Key: KeyEscape}, nil
	}

	final, err := k.r.ReadByte()
	if err != nil {
		return KeyEvent{Key: KeyEscape}, nil
	}

	switch final {
	case 'A':
		return KeyEvent{Key: KeyUp}, nil
	case 'B':
		return KeyEvent{Key: KeyDown}, nil
	case 'C':
		return KeyEvent{Key: KeyRight}, nil
	case 'D':
		return KeyEvent{Key: KeyLeft}, nil
	default:
		return KeyEvent{Key: KeyEscape}, nil
	}
}
