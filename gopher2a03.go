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
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher2a03/cartridgeloader"
	"github.com/jetsetilly/gopher2a03/digest"
	"github.com/jetsetilly/gopher2a03/disassembly"
	"github.com/jetsetilly/gopher2a03/hardware"
	"github.com/jetsetilly/gopher2a03/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher2a03/hardware/preferences"
	"github.com/jetsetilly/gopher2a03/logger"
	"github.com/jetsetilly/gopher2a03/macro"
	"github.com/jetsetilly/gopher2a03/modalflag"
	"github.com/jetsetilly/gopher2a03/paths"
	"github.com/jetsetilly/gopher2a03/performance"
	"github.com/jetsetilly/gopher2a03/performance/limiter"
	"github.com/jetsetilly/gopher2a03/prefs"
	"github.com/jetsetilly/gopher2a03/statsview"
	"github.com/jetsetilly/gopher2a03/terminal"
	"github.com/jetsetilly/gopher2a03/terminal/easyterm"
	"github.com/jetsetilly/gopher2a03/version"
	"github.com/jetsetilly/gopher2a03/wavwriter"
	"golang.org/x/term"
)

// the name of the preferences file in the resource directory
const prefsFile = "preferences"

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch parses the arguments and runs the selected mode. returns the value
// to be used with os.Exit()
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "PLAY", "DIGEST", "TRACE", "DISASM", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "PLAY":
		err = play(md)

	case "DIGEST":
		err = digestMode(md)

	case "TRACE":
		err = trace(md)

	case "DISASM":
		err = disasm(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// flags shared by all modes that run a cartridge
type cartridgeFlags struct {
	mapper *string
	prefs  *string
	log    *bool
}

func addCartridgeFlags(md *modalflag.Modes) cartridgeFlags {
	return cartridgeFlags{
		mapper: md.AddString("mapper", "AUTO", "force use of cartridge mapper: number or NROM, MMC1, UXROM, CNROM, MMC3, AXROM"),
		prefs:  md.AddString("prefs", "", "preferences for this session only. eg. \"hardware.cpu.unofficial::false\""),
		log:    md.AddBool("log", false, "echo debugging log to stdout"),
	}
}

// setLogEcho sends log entries to the output. entries are colorized if the
// output is a terminal
func setLogEcho(output io.Writer, echo bool) {
	if !echo {
		logger.SetEcho(nil)
		return
	}

	if f, ok := output.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		logger.SetEcho(logger.NewColorizer(output))
		return
	}

	logger.SetEcho(output)
}

// newNES creates a NES with the preferences from disk, overridden by the
// prefs string, and attaches the cartridge named in the remaining arguments
func newNES(md *modalflag.Modes, flags cartridgeFlags, extraPrefs ...string) (*hardware.NES, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, fmt.Errorf("NES cartridge required for %s mode", md)
	case 1:
	default:
		return nil, fmt.Errorf("too many arguments for %s mode", md)
	}

	cl, err := cartridgeloader.NewLoader(md.GetArg(0), *flags.mapper)
	if err != nil {
		return nil, err
	}

	pth, err := paths.ResourcePath("", prefsFile)
	if err != nil {
		return nil, err
	}

	prefs.PushCommandLineStack(strings.Join(append([]string{*flags.prefs}, extraPrefs...), ";"))
	p, err := preferences.NewPreferences(pth)
	unused := prefs.PopCommandLineStack()
	if err != nil {
		return nil, err
	}
	if unused != "" {
		logger.Logf(logger.Allow, "prefs", "unused preferences: %s", unused)
	}

	nes, err := hardware.NewNES(hardware.MainEmulation, p)
	if err != nil {
		return nil, err
	}

	err = nes.AttachCartridge(cl)
	if err != nil {
		return nil, err
	}

	return nes, nil
}

// presenters and mixers that can be used together
type presenters []hardware.Presenter

func (ps presenters) Present(frame *image.RGBA) error {
	for _, p := range ps {
		if err := p.Present(frame); err != nil {
			return err
		}
	}
	return nil
}

type mixers []hardware.AudioMixer

func (ms mixers) SetAudio(samples []int16) error {
	for _, m := range ms {
		if err := m.SetAudio(samples); err != nil {
			return err
		}
	}
	return nil
}

// lastFrame keeps a copy of the most recent frame
type lastFrame struct {
	img *image.RGBA
}

func (lf *lastFrame) Present(frame *image.RGBA) error {
	if lf.img == nil || lf.img.Bounds() != frame.Bounds() {
		lf.img = image.NewRGBA(frame.Bounds())
	}
	copy(lf.img.Pix, frame.Pix)
	return nil
}

func (lf *lastFrame) save(filename string) (rerr error) {
	if lf.img == nil {
		return fmt.Errorf("no frame to save")
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = err
		}
	}()

	return png.Encode(f, lf.img)
}

// writeMemviz writes a graphviz representation of the CPU to the file
func writeMemviz(nes *hardware.NES, filename string) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = err
		}
	}()

	// the copy is disconnected from memory so that the graph only includes
	// the CPU
	cpu := nes.CPU.Snapshot()
	cpu.Plumb(nil, nil)
	memviz.Map(f, cpu)

	return nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	flags := addCartridgeFlags(md)
	frames := md.AddInt("frames", 0, "number of frames to run. zero runs until interrupted")
	fps := md.AddFloat64("fps", performance.FramesPerSecond, "limit frame rate. zero for no limit")
	scale := md.AddInt("scale", 0, "framebuffer scale. zero uses preference value")
	pngFile := md.AddString("png", "", "save final frame to PNG file")
	wav := md.AddString("wav", "", "record audio to wav file")
	macroFile := md.AddString("macro", "", "lua macro script to run")
	rewind := md.AddBool("rewind", false, "record frames for rewind")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.DefaultAddress))
	memvizFile := md.AddString("memviz", "", "write graphviz representation of CPU to file on exit")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLogEcho(md.Output, *flags.log)

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("statsview not available in this build")
		}
		statsview.Launch(md.Output, "")
	}

	nes, err := newNES(md, flags)
	if err != nil {
		return err
	}

	if *scale > 0 {
		nes.PPU.Framebuffer().SetScale(*scale)
	}
	nes.EnableRewind(*rewind)

	var pr presenters
	var mx mixers

	last := &lastFrame{}
	if *pngFile != "" {
		pr = append(pr, last)
	}

	if *wav != "" {
		aw, err := wavwriter.New(*wav)
		if err != nil {
			return err
		}
		defer func() {
			err := aw.EndMixing()
			if err != nil {
				logger.Log(logger.Allow, "wavwriter", err)
			}
		}()
		mx = append(mx, aw)
	}

	nes.SetPresenter(pr)
	nes.SetAudioMixer(mx)

	var mcr *macro.Macro
	if *macroFile != "" {
		mcr, err = macro.NewMacro(*macroFile, nes.Input, nes.Mem)
		if err != nil {
			return err
		}
		defer mcr.Close()
	}

	var lim *limiter.FpsLimiter
	if *fps > 0 {
		lim, err = limiter.NewFPSLimiter(*fps)
		if err != nil {
			return err
		}
		defer lim.End()
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	frame := 0
	err = nes.Run(func() (bool, error) {
		frame++

		if lim != nil {
			lim.Wait()
		}

		if mcr != nil {
			cont, err := mcr.EndFrame(frame)
			if err != nil || !cont {
				return false, err
			}
		}

		select {
		case <-intChan:
			return false, nil
		default:
		}

		return *frames == 0 || frame < *frames, nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "%d frames. %d CPU cycles\n", frame, nes.CPU.Cycles)
	if *rewind {
		fmt.Fprintf(md.Output, "rewind: %s\n", nes.Rewind())
	}

	if *pngFile != "" {
		if err := last.save(*pngFile); err != nil {
			return err
		}
	}

	if *memvizFile != "" {
		if err := writeMemviz(nes, *memvizFile); err != nil {
			return err
		}
	}

	return nil
}

func play(md *modalflag.Modes) error {
	md.NewMode()

	flags := addCartridgeFlags(md)
	fps := md.AddFloat64("fps", performance.FramesPerSecond, "limit frame rate")
	wav := md.AddString("wav", "", "record audio to wav file")
	macroFile := md.AddString("macro", "", "lua macro script to run")

	md.AdditionalHelp(`Keys for player one:

	cursor keys or WASD    d-pad
	x or k                 A
	z or j                 B
	tab or space           Select
	return                 Start
	q or ctrl-c            quit`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// log entries would disrupt the display. they are written to the
	// output after the terminal has been restored
	setLogEcho(md.Output, false)
	if *flags.log {
		defer logger.Write(md.Output)
	}

	nes, err := newNES(md, flags)
	if err != nil {
		return err
	}

	var pt easyterm.Terminal
	err = pt.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer pt.CleanUp()
	pt.RawMode()

	display := terminal.NewDisplay(pt.Output(), pt.Geometry)
	defer display.CleanUp()
	nes.SetPresenter(display)

	if *wav != "" {
		aw, err := wavwriter.New(*wav)
		if err != nil {
			return err
		}
		defer func() {
			err := aw.EndMixing()
			if err != nil {
				logger.Log(logger.Allow, "wavwriter", err)
			}
		}()
		nes.SetAudioMixer(aw)
	}

	var mcr *macro.Macro
	if *macroFile != "" {
		mcr, err = macro.NewMacro(*macroFile, nes.Input, nes.Mem)
		if err != nil {
			return err
		}
		defer mcr.Close()
	}

	lim, err := limiter.NewFPSLimiter(*fps)
	if err != nil {
		return err
	}
	defer lim.End()

	kb := terminal.NewKeyboard(nes.Input)
	kb.Listen(pt.Input())

	frame := 0
	return nes.Run(func() (bool, error) {
		frame++
		lim.Wait()

		if mcr != nil {
			cont, err := mcr.EndFrame(frame)
			if err != nil || !cont {
				return false, err
			}
		}

		return kb.EndFrame(frame)
	})
}

func digestMode(md *modalflag.Modes) error {
	md.NewMode()

	flags := addCartridgeFlags(md)
	frames := md.AddInt("frames", 60, "number of frames to run")
	withAudio := md.AddBool("audio", false, "also output digest of audio")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLogEcho(md.Output, *flags.log)

	nes, err := newNES(md, flags)
	if err != nil {
		return err
	}

	video := digest.NewVideo()
	nes.SetPresenter(video)

	aud := digest.NewAudio()
	if *withAudio {
		nes.SetAudioMixer(aud)
	}

	err = nes.RunForFrameCount(*frames, nil)
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "%s\n", video.Hash())
	if *withAudio {
		fmt.Fprintf(md.Output, "%s\n", aud.Hash())
	}

	return nil
}

func trace(md *modalflag.Modes) error {
	md.NewMode()

	flags := addCartridgeFlags(md)
	steps := md.AddInt("steps", 10000, "number of instructions to run")
	pc := md.AddString("pc", "", "start address in hex. empty string uses reset vector")

	md.AdditionalHelp("Each instruction is written to stdout in the same format as the log used by nestest.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLogEcho(md.Output, *flags.log)

	nes, err := newNES(md, flags, "hardware.cpu.trace::true")
	if err != nil {
		return err
	}

	if *pc != "" {
		v, err := parseAddress(*pc)
		if err != nil {
			return err
		}
		nes.CPU.LoadPC(v)
	}

	nes.SetTraceOutput(md.Output)

	for range *steps {
		err := nes.Step()
		if err != nil {
			return err
		}
	}

	return nil
}

// parseAddress accepts hex addresses with or without a $ or 0x prefix
func parseAddress(s string) (uint16, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimPrefix(s, "$"), "0x"), 16, 16)
	if err != nil {
		return 0, fmt.Errorf("bad address (%s)", s)
	}
	return uint16(v), nil
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	flags := addCartridgeFlags(md)
	from := md.AddString("from", "8000", "first address to disassemble in hex")
	to := md.AddString("to", "FFFF", "last address to disassemble in hex")
	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")

	md.AdditionalHelp("Disassembly is of the program banks visible to the CPU after power on.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLogEcho(md.Output, *flags.log)

	origin, err := parseAddress(*from)
	if err != nil {
		return err
	}
	memtop, err := parseAddress(*to)
	if err != nil {
		return err
	}

	nes, err := newNES(md, flags)
	if err != nil {
		return err
	}

	table := instructions.NewTable()
	if !nes.Instance.Prefs.UnofficialOpcodes.Get().(bool) {
		table = table.Official()
	}

	dsm, err := disassembly.FromMemory(nes.Mem, table, origin, memtop)
	if err != nil {
		return err
	}

	nmi, reset, irq := disassembly.Vectors(nes.Mem)
	fmt.Fprintf(md.Output, "; NMI $%04X  RESET $%04X  IRQ $%04X\n", nmi, reset, irq)

	return dsm.Write(md.Output, disassembly.WriteAttr{ByteCode: *bytecode})
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	flags := addCartridgeFlags(md)
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "run performance check with profiling: command separated CPU, MEM, TRACE or ALL")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLogEcho(md.Output, *flags.log)

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	nes, err := newNES(md, flags)
	if err != nil {
		return err
	}

	return performance.Check(md.Output, prf, nes, *duration)
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information from version control")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	fmt.Fprintln(md.Output, version.String())
	if *revision {
		_, r, _ := version.Version()
		if r == "" {
			r = "no revision information"
		}
		fmt.Fprintln(md.Output, r)
	}

	return nil
}
