// This file is part of makeref.
//
// makeref is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// makeref is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with makeref.  If not, see <https://www.gnu.org/licenses/>.

// Package terminal provides keyboard input and a status line for running the
// demonstration without a window. It implements both the demo.Events and the
// demo.Overlay interfaces.
//
// When stdin is a terminal it is put into cbreak mode so that single key
// presses are seen immediately:
//
//	m   toggle the makeRef setting
//	q   quit
package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/term"
	xterm "golang.org/x/term"

	"github.com/jetsetilly/makeref/demo"
	"github.com/jetsetilly/makeref/engine"
	"github.com/jetsetilly/makeref/logger"
)

// Keys recognised by the terminal.
const (
	KeyToggle = 'm'
	KeyQuit   = 'q'
)

// how often the status line is redrawn
const statusRate = 250 * time.Millisecond

// Terminal implements the demo.Events and demo.Overlay interfaces.
type Terminal struct {
	output     io.Writer
	realOutput bool

	// tty is nil if stdin is not a terminal
	tty  *term.Term
	done chan struct{}
	wg   sync.WaitGroup

	// status returns the text of the status line
	status func() string

	quit    atomic.Bool
	toggles atomic.Int32

	lastStatus time.Time
}

// New returns a Terminal that takes no keyboard input. Keys can be sent with
// the Key() function.
func New(output io.Writer, status func() string) *Terminal {
	trm := &Terminal{
		output: output,
		status: status,
		done:   make(chan struct{}),
	}
	if f, ok := output.(*os.File); ok {
		trm.realOutput = xterm.IsTerminal(int(f.Fd()))
	}
	return trm
}

// Open returns a Terminal reading key presses from the controlling terminal.
// If stdin is not a terminal then the Terminal is the same as that returned
// by New().
func Open(output io.Writer, status func() string) (*Terminal, error) {
	trm := New(output, status)

	if !xterm.IsTerminal(int(os.Stdin.Fd())) {
		logger.Log(logger.Allow, "terminal", "stdin is not a terminal. keyboard input disabled")
		return trm, nil
	}

	var err error
	trm.tty, err = term.Open("/dev/tty", term.CBreakMode, term.ReadTimeout(100*time.Millisecond))
	if err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}

	trm.wg.Add(1)
	go trm.read()

	fmt.Fprintf(trm.output, "press '%c' to toggle makeRef, '%c' to quit\n", KeyToggle, KeyQuit)

	return trm, nil
}

func (trm *Terminal) read() {
	defer trm.wg.Done()

	b := make([]byte, 1)
	for {
		select {
		case <-trm.done:
			return
		default:
		}

		n, err := trm.tty.Read(b)
		if n > 0 {
			trm.Key(b[0])
		}
		if err != nil && !errors.Is(err, io.EOF) {
			logger.Log(logger.Allow, "terminal", err)
			trm.Quit()
			return
		}
	}
}

// Close restores the terminal to its original state.
func (trm *Terminal) Close() error {
	select {
	case <-trm.done:
		return nil
	default:
	}
	close(trm.done)
	trm.wg.Wait()

	if trm.realOutput {
		fmt.Fprintln(trm.output)
	}

	if trm.tty == nil {
		return nil
	}
	if err := trm.tty.Restore(); err != nil {
		trm.tty.Close()
		return fmt.Errorf("terminal: %w", err)
	}
	if err := trm.tty.Close(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	return nil
}

// Key handles a key press. It is safe to call from any goroutine.
func (trm *Terminal) Key(k byte) {
	switch k {
	case KeyToggle, KeyToggle - 'a' + 'A':
		trm.toggles.Add(1)
	case KeyQuit, KeyQuit - 'a' + 'A':
		trm.Quit()
	}
}

// Quit causes the next call to ProcessEvents() to return false. It is safe
// to call from any goroutine.
func (trm *Terminal) Quit() {
	trm.quit.Store(true)
}

// ProcessEvents implements the demo.Events interface.
func (trm *Terminal) ProcessEvents() (demo.Input, bool) {
	return demo.Input{}, !trm.quit.Load()
}

// Create implements the demo.Overlay interface.
func (trm *Terminal) Create(_ *engine.Context, _ engine.ViewID) error {
	return nil
}

// Destroy implements the demo.Overlay interface.
func (trm *Terminal) Destroy() {}

// BeginFrame implements the demo.Overlay interface.
func (trm *Terminal) BeginFrame(_ demo.Input, _ int, _ int) {}

// Begin implements the demo.Overlay interface.
func (trm *Terminal) Begin(_ string, _, _, _, _ float32) {}

// End implements the demo.Overlay interface.
func (trm *Terminal) End() {}

// Checkbox implements the demo.Overlay interface. The value is flipped once
// for every toggle key pressed since the previous call.
func (trm *Terminal) Checkbox(label string, v *bool) bool {
	if trm.toggles.Swap(0)%2 == 0 {
		return false
	}
	*v = !*v

	if trm.realOutput {
		fmt.Fprint(trm.output, "\r\033[K")
	}
	fmt.Fprintf(trm.output, "%s: %v\n", strings.ReplaceAll(label, "\n", " "), *v)

	return true
}

// EndFrame implements the demo.Overlay interface. The status line is redrawn
// if the output is a terminal.
func (trm *Terminal) EndFrame() {
	if !trm.realOutput || trm.status == nil {
		return
	}
	if time.Since(trm.lastStatus) < statusRate {
		return
	}
	trm.lastStatus = time.Now()
	fmt.Fprintf(trm.output, "\r\033[K%s", trm.status())
}
