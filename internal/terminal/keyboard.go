package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
	"unicode/utf8"

	"github.com/alexanderramin/worktimer/internal/driver"
	"golang.org/x/term"
)

const ctrlC = '\x03'

// ErrInputClosed is returned by PollEvent once the key source is exhausted.
var ErrInputClosed = errors.New("keyboard input closed")

// Keys maps keys to control events.
type Keys struct {
	Pause rune
	Quit  rune
}

// DefaultKeys are p to toggle pause and q to quit.
var DefaultKeys = Keys{Pause: 'p', Quit: 'q'}

// ParseKeys builds Keys from single-character names.
func ParseKeys(pause, quit string) (Keys, error) {
	p, err := singleRune(pause)
	if err != nil {
		return Keys{}, fmt.Errorf("pause key: %w", err)
	}
	q, err := singleRune(quit)
	if err != nil {
		return Keys{}, fmt.Errorf("quit key: %w", err)
	}
	return Keys{Pause: p, Quit: q}, nil
}

func singleRune(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, fmt.Errorf("want a single character, got %q", s)
	}
	return r, nil
}

// Keyboard reads key presses and reports them as driver events. A reader
// goroutine feeds a channel so PollEvent can honour its timeout.
type Keyboard struct {
	keys  Keys
	runes chan rune
	err   error

	fd    int
	state *term.State
}

// NewKeyboard reads keys from r without changing any terminal mode.
func NewKeyboard(r io.Reader, keys Keys) *Keyboard {
	k := &Keyboard{keys: keys, runes: make(chan rune, 16), fd: -1}
	go k.read(bufio.NewReader(r))
	return k
}

// OpenKeyboard puts f into raw mode when it is a terminal so single key
// presses arrive unbuffered, then reads keys from it. Call Close to restore
// the terminal.
func OpenKeyboard(f *os.File, keys Keys) (*Keyboard, error) {
	fd := int(f.Fd())
	var state *term.State
	if term.IsTerminal(fd) {
		var err error
		state, err = term.MakeRaw(fd)
		if err != nil {
			return nil, fmt.Errorf("entering raw mode: %w", err)
		}
	}
	k := NewKeyboard(f, keys)
	k.fd, k.state = fd, state
	return k, nil
}

func (k *Keyboard) read(r *bufio.Reader) {
	defer close(k.runes)
	for {
		ch, _, err := r.ReadRune()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				k.err = err
			}
			return
		}
		k.runes <- ch
	}
}

// PollEvent waits up to maxWait for one key.
func (k *Keyboard) PollEvent(maxWait time.Duration) (driver.Event, error) {
	t := time.NewTimer(maxWait)
	defer t.Stop()

	select {
	case ch, ok := <-k.runes:
		if !ok {
			if k.err != nil {
				return driver.EventNone, fmt.Errorf("%w: %w", ErrInputClosed, k.err)
			}
			return driver.EventNone, ErrInputClosed
		}
		return k.classify(ch), nil
	case <-t.C:
		return driver.EventNone, nil
	}
}

func (k *Keyboard) classify(ch rune) driver.Event {
	switch ch {
	case k.keys.Pause:
		return driver.EventPause
	case k.keys.Quit, ctrlC:
		return driver.EventQuit
	default:
		return driver.EventOther
	}
}

// Close restores the terminal mode saved by OpenKeyboard.
func (k *Keyboard) Close() error {
	if k.state == nil {
		return nil
	}
	state := k.state
	k.state = nil
	if err := term.Restore(k.fd, state); err != nil {
		return fmt.Errorf("restoring terminal: %w", err)
	}
	return nil
}
