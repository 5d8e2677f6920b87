// This file is part of Gopher2A03.
//
// Gopher2A03 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2A03 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2A03.  If not, see <https://www.gnu.org/licenses/>.

package terminal

import (
	"io"

	"github.com/jetsetilly/gopher2a03/hardware/input"
	"github.com/jetsetilly/gopher2a03/terminal/easyterm"
)

// HoldFrames is the number of frames a button remains pressed after the most
// recent key press.
const HoldFrames = 6

// Input defines the destination for controller events generated by the
// Keyboard.
type Input interface {
	PushEvent(input.Event) error
}

// the keyboard layout for player zero
var keys = map[byte]input.Button{
	'x':                        input.ButtonA,
	'k':                        input.ButtonA,
	'z':                        input.ButtonB,
	'j':                        input.ButtonB,
	easyterm.KeyTab:            input.ButtonSelect,
	easyterm.KeySpace:          input.ButtonSelect,
	easyterm.KeyCarriageReturn: input.ButtonStart,
	easyterm.KeyLineFeed:       input.ButtonStart,
	'w':                        input.ButtonUp,
	's':                        input.ButtonDown,
	'a':                        input.ButtonLeft,
	'd':                        input.ButtonRight,
}

// the cursor keys are sent as escape sequences
var cursorKeys = map[byte]input.Button{
	easyterm.CursorUp:       input.ButtonUp,
	easyterm.CursorDown:     input.ButtonDown,
	easyterm.CursorForward:  input.ButtonRight,
	easyterm.CursorBackward: input.ButtonLeft,
}

// state of escape sequence parsing
const (
	escNone = iota
	escStarted
	escCursor
)

// Keyboard translates terminal key presses into input events.
type Keyboard struct {
	inp Input

	// data read by the Listen() goroutine
	incoming chan []byte

	// the frame on which each button was most recently pressed
	held map[input.Button]int

	frame int
	esc   int
	quit  bool
}

// NewKeyboard is the preferred method of initialisation for the Keyboard type.
func NewKeyboard(inp Input) *Keyboard {
	return &Keyboard{
		inp:      inp,
		incoming: make(chan []byte, 16),
		held:     make(map[input.Button]int),
	}
}

// Listen starts a goroutine that reads from the reader until an error occurs.
// Data is forwarded to the keyboard and processed on the next call to
// EndFrame().
func (kb *Keyboard) Listen(r io.Reader) {
	go func() {
		buf := make([]byte, 32)
		for {
			n, err := r.Read(buf)
			if n > 0 {
				p := make([]byte, n)
				copy(p, buf[:n])
				kb.incoming <- p
			}
			if err != nil {
				return
			}
		}
	}()
}

// Quit returns true if the quit key has been pressed.
func (kb *Keyboard) Quit() bool {
	return kb.quit
}

// Feed processes key data immediately. Must not be called at the same time
// as EndFrame().
func (kb *Keyboard) Feed(p []byte) error {
	for _, b := range p {
		switch kb.esc {
		case escStarted:
			if b == easyterm.EscCursor {
				kb.esc = escCursor
			} else {
				kb.esc = escNone
			}
			continue
		case escCursor:
			kb.esc = escNone
			if btn, ok := cursorKeys[b]; ok {
				if err := kb.press(btn); err != nil {
					return err
				}
			}
			continue
		}

		switch b {
		case easyterm.KeyEsc:
			kb.esc = escStarted
		case easyterm.KeyInterrupt, 'q':
			kb.quit = true
		case easyterm.KeySuspend:
			easyterm.SuspendProcess()
		default:
			if btn, ok := keys[b]; ok {
				if err := kb.press(btn); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (kb *Keyboard) press(btn input.Button) error {
	if _, ok := kb.held[btn]; !ok {
		err := kb.inp.PushEvent(input.Event{Port: input.Player0, Button: btn, Pressed: true})
		if err != nil {
			return err
		}
	}
	kb.held[btn] = kb.frame
	return nil
}

// EndFrame processes any key data received since the previous call and
// releases buttons that have been held for long enough. The signature matches
// the callback used by hardware.RunForFrameCount().
func (kb *Keyboard) EndFrame(frame int) (bool, error) {
	kb.frame = frame

	for done := false; !done; {
		select {
		case p := <-kb.incoming:
			if err := kb.Feed(p); err != nil {
				return false, err
			}
		default:
			done = true
		}
	}

	for btn, pressed := range kb.held {
		if kb.frame-pressed >= HoldFrames {
			delete(kb.held, btn)
			err := kb.inp.PushEvent(input.Event{Port: input.Player0, Button: btn, Pressed: false})
			if err != nil {
				return false, err
			}
		}
	}

	return !kb.quit, nil
}
