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

package macro

import (
	"fmt"
	"strconv"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/hardware/input"
	"github.com/jetsetilly/gopher2a03/hardware/memory/bus"
	"github.com/jetsetilly/gopher2a03/logger"
)

// Sentinal errors.
const (
	ScriptError = "macro: %v"
)

// Input defines the part of the input system used by the macro.
type Input interface {
	PushEvent(input.Event) error
}

// the name of the function called at the end of every frame.
const frameFunction = "frame"

// Macro is a type that allows control of an emulation from a Lua script.
type Macro struct {
	name  string
	input Input
	mem   bus.DebuggerBus

	state *lua.LState

	// the script has called quit()
	quit bool

	// the script has failed and will not be called again
	failed bool
}

// NewMacro is the preferred method of initialisation for the Macro type. The
// script file is run immediately.
func NewMacro(filename string, inp Input, mem bus.DebuggerBus) (*Macro, error) {
	mcr := newMacro(filename, inp, mem)
	if err := mcr.state.DoFile(filename); err != nil {
		mcr.Close()
		return nil, curated.Errorf(ScriptError, err)
	}
	return mcr, nil
}

// NewMacroFromString is like NewMacro() except that the script is supplied as
// a string. The name is used in log entries.
func NewMacroFromString(name string, script string, inp Input, mem bus.DebuggerBus) (*Macro, error) {
	mcr := newMacro(name, inp, mem)
	if err := mcr.state.DoString(script); err != nil {
		mcr.Close()
		return nil, curated.Errorf(ScriptError, err)
	}
	return mcr, nil
}

func newMacro(name string, inp Input, mem bus.DebuggerBus) *Macro {
	mcr := &Macro{
		name:  name,
		input: inp,
		mem:   mem,
		state: lua.NewState(),
	}

	mcr.state.SetGlobal("press", mcr.state.NewFunction(mcr.button(true)))
	mcr.state.SetGlobal("release", mcr.state.NewFunction(mcr.button(false)))
	mcr.state.SetGlobal("peek", mcr.state.NewFunction(mcr.peek))
	mcr.state.SetGlobal("poke", mcr.state.NewFunction(mcr.poke))
	mcr.state.SetGlobal("log", mcr.state.NewFunction(mcr.log))
	mcr.state.SetGlobal("quit", mcr.state.NewFunction(func(_ *lua.LState) int {
		mcr.quit = true
		return 0
	}))

	return mcr
}

func (mcr *Macro) String() string {
	return mcr.name
}

// Close the Lua state. The macro cannot be used after it is closed.
func (mcr *Macro) Close() {
	mcr.state.Close()
}

// EndFrame calls the frame function of the script, if there is one. Returns
// false if the script has asked for the emulation to end. Errors in the
// script are logged and the script is not called again.
//
// The function signature matches the continueCheck argument of the
// RunForFrameCount() function in the hardware package.
func (mcr *Macro) EndFrame(frame int) (bool, error) {
	if mcr.failed || mcr.quit {
		return !mcr.quit, nil
	}

	fn := mcr.state.GetGlobal(frameFunction)
	if fn.Type() != lua.LTFunction {
		return true, nil
	}

	err := mcr.state.CallByParam(lua.P{
		Fn:      fn,
		NRet:    0,
		Protect: true,
	}, lua.LNumber(frame))

	if err != nil {
		mcr.failed = true
		logger.Log(logger.Allow, "macro", curated.Errorf(ScriptError, fmt.Errorf("%s: %w", mcr.name, err)))
		return true, nil
	}

	return !mcr.quit, nil
}

// parseNumber converts a Lua value to a number. Strings prefixed with $ are
// hexadecimal.
func parseNumber(v lua.LValue, bitSize int) (uint64, error) {
	switch v := v.(type) {
	case lua.LNumber:
		n := int64(v)
		if n < 0 || n >= 1<<bitSize {
			return 0, fmt.Errorf("value out of range: %d", n)
		}
		return uint64(n), nil
	case lua.LString:
		s := strings.TrimSpace(string(v))
		if strings.HasPrefix(s, "$") {
			s = fmt.Sprintf("0x%s", s[1:])
		}
		return strconv.ParseUint(s, 0, bitSize)
	}
	return 0, fmt.Errorf("not a number: %s", v.Type())
}

func (mcr *Macro) address(L *lua.LState, n int) uint16 {
	a, err := parseNumber(L.CheckAny(n), 16)
	if err != nil {
		L.ArgError(n, err.Error())
	}
	return uint16(a)
}

func (mcr *Macro) button(pressed bool) lua.LGFunction {
	return func(L *lua.LState) int {
		b, ok := input.ParseButton(L.CheckString(1))
		if !ok {
			L.ArgError(1, "unrecognised button")
		}

		port := input.Player0
		if L.OptInt(2, 0) == 1 {
			port = input.Player1
		}

		err := mcr.input.PushEvent(input.Event{Port: port, Button: b, Pressed: pressed})
		if err != nil {
			L.RaiseError("%v", err)
		}
		return 0
	}
}

func (mcr *Macro) peek(L *lua.LState) int {
	L.Push(lua.LNumber(mcr.mem.Peek(mcr.address(L, 1))))
	return 1
}

func (mcr *Macro) poke(L *lua.LState) int {
	address := mcr.address(L, 1)
	v, err := parseNumber(L.CheckAny(2), 8)
	if err != nil {
		L.ArgError(2, err.Error())
	}
	mcr.mem.Poke(address, uint8(v))
	return 0
}

func (mcr *Macro) log(L *lua.LState) int {
	logger.Log(logger.Allow, "macro", L.CheckString(1))
	return 0
}
