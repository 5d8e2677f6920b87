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

package prefs

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// the command line stack allows preference values to be overridden for the
// duration of a session.
var commandLineStack struct {
	crit  sync.Mutex
	stack []map[string]Value
}

// PushCommandLineStack parses a prefs string and pushes the key/value pairs to
// the top of the stack. The prefs string is of the form:
//
//	key::value; key::value
//
// Malformed entries are ignored.
func PushCommandLineStack(prefs string) {
	commandLineStack.crit.Lock()
	defer commandLineStack.crit.Unlock()

	cl := make(map[string]Value)
	for _, p := range strings.Split(prefs, ";") {
		k, v, ok := strings.Cut(p, "::")
		if !ok {
			continue
		}
		cl[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}

	commandLineStack.stack = append(commandLineStack.stack, cl)
}

// PopCommandLineStack removes the top of the stack and returns the entries
// that were not consumed, as a prefs string with the keys sorted.
func PopCommandLineStack() string {
	commandLineStack.crit.Lock()
	defer commandLineStack.crit.Unlock()

	if len(commandLineStack.stack) == 0 {
		return ""
	}

	popped := commandLineStack.stack[len(commandLineStack.stack)-1]
	commandLineStack.stack = commandLineStack.stack[:len(commandLineStack.stack)-1]

	keys := make([]string, 0, len(popped))
	for k := range popped {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := make([]string, 0, len(keys))
	for _, k := range keys {
		s = append(s, fmt.Sprintf("%s::%v", k, popped[k]))
	}

	return strings.Join(s, "; ")
}

// GetCommandLinePref returns the value for key from the top of the stack. The
// entry is consumed and will not be returned again.
func GetCommandLinePref(key string) (bool, Value) {
	commandLineStack.crit.Lock()
	defer commandLineStack.crit.Unlock()

	if len(commandLineStack.stack) == 0 {
		return false, nil
	}

	cl := commandLineStack.stack[len(commandLineStack.stack)-1]
	if v, ok := cl[key]; ok {
		delete(cl, key)
		return true, v
	}

	return false, nil
}
