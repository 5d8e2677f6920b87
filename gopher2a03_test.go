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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher2a03/test"
)

// writeROM creates an NROM cartridge file containing an infinite loop at the
// reset address.
func writeROM(t *testing.T, dir string) string {
	t.Helper()

	data := make([]byte, 16+0x4000)
	copy(data, []byte{'N', 'E', 'S', 0x1a, 1, 0})

	prg := data[16:]
	copy(prg, []byte{0x4c, 0x00, 0x80})
	prg[0x3ffc] = 0x00
	prg[0x3ffd] = 0x80

	fn := filepath.Join(dir, "loop.nes")
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o600))
	return fn
}

// launch creates the resource directory in the working directory
func inTempDir(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	t.Cleanup(func() { os.Chdir(wd) })

	dir := t.TempDir()
	test.DemandSuccess(t, os.Chdir(dir))
	return dir
}

func TestVersionMode(t *testing.T) {
	var out bytes.Buffer
	test.ExpectEquality(t, launch([]string{"VERSION"}, &out), 0)
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "Gopher2A03 "))
}

func TestHelp(t *testing.T) {
	var out bytes.Buffer
	test.ExpectEquality(t, launch([]string{"-help"}, &out), 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "DIGEST"))
}

func TestUnknownFlag(t *testing.T) {
	var out bytes.Buffer
	test.ExpectEquality(t, launch([]string{"-foo"}, &out), 10)
}

func TestMissingCartridge(t *testing.T) {
	inTempDir(t)

	var out bytes.Buffer
	test.ExpectEquality(t, launch([]string{"DIGEST"}, &out), 20)
	test.ExpectSuccess(t, strings.Contains(out.String(), "cartridge required"))
}

func TestDigestMode(t *testing.T) {
	dir := inTempDir(t)
	fn := writeROM(t, dir)

	hash := regexp.MustCompile(`^[0-9a-f]{40}\n$`)

	var out bytes.Buffer
	test.DemandEquality(t, launch([]string{"DIGEST", "-frames", "3", fn}, &out), 0, out.String())
	first := out.String()
	test.ExpectSuccess(t, hash.MatchString(first), first)

	// the same cartridge run for the same number of frames gives the same
	// digest
	out.Reset()
	test.DemandEquality(t, launch([]string{"DIGEST", "-frames", "3", fn}, &out), 0, out.String())
	test.ExpectEquality(t, out.String(), first)
}

func TestTraceMode(t *testing.T) {
	dir := inTempDir(t)
	fn := writeROM(t, dir)

	var out bytes.Buffer
	test.DemandEquality(t, launch([]string{"TRACE", "-steps", "3", fn}, &out), 0, out.String())

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	test.DemandEquality(t, len(lines), 3)
	for _, l := range lines {
		test.ExpectSuccess(t, strings.HasPrefix(l, "8000  4C 00 80"), l)
		test.ExpectSuccess(t, strings.Contains(l, "JMP $8000"), l)
	}
}

func TestRunMode(t *testing.T) {
	dir := inTempDir(t)
	fn := writeROM(t, dir)
	png := filepath.Join(dir, "final.png")
	wav := filepath.Join(dir, "audio.wav")
	viz := filepath.Join(dir, "cpu.dot")

	var out bytes.Buffer
	args := []string{"RUN", "-frames", "2", "-fps", "0", "-png", png, "-wav", wav, "-memviz", viz, "-rewind", fn}
	test.DemandEquality(t, launch(args, &out), 0, out.String())
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "2 frames."), out.String())

	for _, f := range []string{png, wav, viz} {
		st, err := os.Stat(f)
		if test.ExpectSuccess(t, err, f) {
			test.ExpectInequality(t, st.Size(), int64(0), f)
		}
	}
}

func TestDisasmMode(t *testing.T) {
	dir := inTempDir(t)
	fn := writeROM(t, dir)

	var out bytes.Buffer
	test.DemandEquality(t, launch([]string{"DISASM", "-to", "$8002", "-bytecode", fn}, &out), 0, out.String())

	lines := strings.Split(out.String(), "\n")
	test.DemandEquality(t, len(lines) >= 3, true)
	test.ExpectEquality(t, lines[0], "; NMI $0000  RESET $8000  IRQ $0000")
	test.ExpectEquality(t, lines[1], "L8000:")
	test.ExpectEquality(t, lines[2], "8000  4C 00 80  JMP $8000")
}
