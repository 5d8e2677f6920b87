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

package logger_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher2a03/logger"
	"github.com/jetsetilly/gopher2a03/test"
)

type prohibit struct{}

func (_ prohibit) AllowLogging() bool {
	return false
}

func TestLogger(t *testing.T) {
	tw := &test.CompareWriter{}
	log := logger.NewLogger(100)

	log.Write(tw)
	test.ExpectEquality(t, tw.String(), "")

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(tw)
	test.ExpectEquality(t, tw.String(), "test: this is a test\n")

	// clear the test.Writer buffer before continuing, makes comparisons easier
	// to manage
	tw.Clear()

	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(tw)
	test.ExpectEquality(t, tw.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	tw.Clear()
	log.Tail(tw, 100)
	test.ExpectEquality(t, tw.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for exactly the correct number of entries is okay
	tw.Clear()
	log.Tail(tw, 2)
	test.ExpectEquality(t, tw.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries is okay too
	tw.Clear()
	log.Tail(tw, 1)
	test.ExpectEquality(t, tw.String(), "test2: this is another test\n")

	// and no entries
	tw.Clear()
	log.Tail(tw, 0)
	test.ExpectEquality(t, tw.String(), "")
}

func TestRepeatAndCap(t *testing.T) {
	tw := &test.CompareWriter{}
	log := logger.NewLogger(2)

	log.Log(logger.Allow, "ppu", "frame")
	log.Log(logger.Allow, "ppu", "frame")
	log.Log(logger.Allow, "ppu", "frame")
	log.Write(tw)
	test.ExpectEquality(t, tw.String(), "ppu: frame (repeat x3)\n")

	log.Logf(logger.Allow, "cpu", "pc %#04x", 0x8000)
	log.Log(logger.Allow, "nes", errors.New("halted"))
	test.ExpectEquality(t, len(log.Copy()), 2)

	tw.Clear()
	log.Write(tw)
	test.ExpectEquality(t, tw.String(), "cpu: pc 0x8000\nnes: halted\n")
}

func TestPermission(t *testing.T) {
	log := logger.NewLogger(10)
	log.Log(prohibit{}, "test", "should not appear")
	test.ExpectEquality(t, len(log.Copy()), 0)
}

func TestEchoAndColorizer(t *testing.T) {
	tw := &test.CompareWriter{}
	log := logger.NewLogger(10)
	log.SetEcho(tw)
	log.Log(logger.Allow, "tag", "detail")
	test.ExpectEquality(t, tw.String(), "tag: detail\n")

	tw.Clear()
	log.SetEcho(logger.NewColorizer(tw))
	log.Log(logger.Allow, "tag", "colour")
	test.ExpectEquality(t, tw.String(), "\033[1;36mtag: \033[2;37mcolour\033[0m\n")
}
