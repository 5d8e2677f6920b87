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

package cpu_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/hardware/cpu"
	"github.com/jetsetilly/gopher2a03/hardware/cpu/execution"
	"github.com/jetsetilly/gopher2a03/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher2a03/hardware/instance"
	"github.com/jetsetilly/gopher2a03/test"
)

type mockMem struct {
	internal []uint8
}

func newMockMem() *mockMem {
	mem := &mockMem{
		internal: make([]uint8, 0x10000),
	}

	// reset vector points to 0x8000, NMI vector to 0xa000 and IRQ vector to
	// 0x9000
	mem.putInstructions(0xfffa, 0x00, 0xa0, 0x00, 0x80, 0x00, 0x90)

	return mem
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.Write(uint16(i)+origin, b)
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	if mem.internal[address] != value {
		t.Errorf("memory assertion failed (%#02x - wanted %#02x at address %#04x)", mem.internal[address], value, address)
	}
}

func (mem *mockMem) Read(address uint16) uint8 {
	return mem.internal[address]
}

func (mem *mockMem) Write(address uint16, data uint8) {
	mem.internal[address] = data
}

func newCPU(t *testing.T) (*cpu.CPU, *mockMem) {
	t.Helper()
	mem := newMockMem()
	mc := cpu.NewCPU(nil, mem, instructions.NewTable())
	mc.Boot()
	return mc, mem
}

func step(t *testing.T, mc *cpu.CPU) execution.Result {
	t.Helper()
	cycles, err := mc.ExecuteInstruction()
	if err != nil {
		t.Fatal(err)
	}
	err = mc.LastResult.IsValid()
	if err != nil {
		t.Fatal(err)
	}
	if cycles != mc.LastResult.Cycles {
		t.Fatalf("returned cycles (%d) do not match result (%d)", cycles, mc.LastResult.Cycles)
	}
	return mc.LastResult
}

func TestBoot(t *testing.T) {
	mc, mem := newCPU(t)
	mem.internal[0x4015] = 0xff
	mem.internal[0x4017] = 0xff
	mc.Boot()

	test.ExpectEquality(t, mc.PC.Address(), uint16(0x8000))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xfd))
	test.ExpectEquality(t, mc.Status.Value(), uint8(0x24))
	test.ExpectEquality(t, mc.A.Value(), uint8(0))
	test.ExpectEquality(t, mc.X.Value(), uint8(0))
	test.ExpectEquality(t, mc.Y.Value(), uint8(0))
	test.ExpectEquality(t, mc.Cycles, uint64(7))
	mem.assert(t, 0x4015, 0x00)
	mem.assert(t, 0x4017, 0x00)
}

func TestReset(t *testing.T) {
	mc, _ := newCPU(t)
	mc.Status.InterruptDisable = false
	mc.LoadPC(0x1234)
	mc.Reset()

	test.ExpectEquality(t, mc.PC.Address(), uint16(0x8000))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xfa))
	test.ExpectSuccess(t, mc.Status.InterruptDisable)
}

func TestStatusInstructions(t *testing.T) {
	mc, mem := newCPU(t)

	// SEC; CLC; CLI; SEI; SED; CLD; CLV
	origin := mem.putInstructions(0x8000, 0x38, 0x18, 0x58, 0x78, 0xf8, 0xd8, 0xb8)
	step(t, mc) // SEC
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzC")
	step(t, mc) // CLC
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc")
	step(t, mc) // CLI
	test.ExpectEquality(t, mc.Status.String(), "nv-bdizc")
	step(t, mc) // SEI
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc")
	step(t, mc) // SED
	test.ExpectEquality(t, mc.Status.String(), "nv-bDIzc")
	step(t, mc) // CLD
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc")
	step(t, mc) // CLV
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc")

	// PHP; PLP
	mem.putInstructions(origin, 0x08, 0x28)
	step(t, mc) // PHP
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xfc))
	mem.assert(t, 0x01fd, 0x34)

	// mangle status register
	mc.Status.Sign = true
	mc.Status.Overflow = true

	// restore status register. the break bit in the pushed value is ignored
	step(t, mc) // PLP
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xfd))
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc")
}

func TestLoadStoreLoop(t *testing.T) {
	mc, mem := newCPU(t)

	// LDA #$42; STA $0200; JMP $8005
	mem.putInstructions(0x8000, 0xa9, 0x42, 0x8d, 0x00, 0x02, 0x4c, 0x05, 0x80)

	r := step(t, mc) // LDA #$42
	test.ExpectEquality(t, r.Cycles, 2)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x42))

	r = step(t, mc) // STA $0200
	test.ExpectEquality(t, r.Cycles, 4)
	mem.assert(t, 0x0200, 0x42)

	for range 3 {
		r = step(t, mc) // JMP $8005
		test.ExpectEquality(t, r.Cycles, 3)
		test.ExpectEquality(t, mc.PC.Address(), uint16(0x8005))
	}

	test.ExpectEquality(t, mc.Cycles, uint64(7+2+4+3+3+3))
}

func TestArithmetic(t *testing.T) {
	mc, mem := newCPU(t)

	// CLC; LDA #$FF; ADC #$01
	origin := mem.putInstructions(0x8000, 0x18, 0xa9, 0xff, 0x69, 0x01)
	step(t, mc) // CLC
	step(t, mc) // LDA #$FF
	step(t, mc) // ADC #$01
	test.ExpectEquality(t, mc.A.Value(), uint8(0x00))
	test.ExpectSuccess(t, mc.Status.Carry)
	test.ExpectSuccess(t, mc.Status.Zero)
	test.ExpectFailure(t, mc.Status.Sign)
	test.ExpectFailure(t, mc.Status.Overflow)

	// CLC; LDA #$7F; ADC #$01
	origin = mem.putInstructions(origin, 0x18, 0xa9, 0x7f, 0x69, 0x01)
	step(t, mc) // CLC
	step(t, mc) // LDA #$7F
	step(t, mc) // ADC #$01
	test.ExpectEquality(t, mc.A.Value(), uint8(0x80))
	test.ExpectFailure(t, mc.Status.Carry)
	test.ExpectSuccess(t, mc.Status.Sign)
	test.ExpectSuccess(t, mc.Status.Overflow)

	// SEC; LDA #$0B; SBC #$08
	mem.putInstructions(origin, 0x38, 0xa9, 0x0b, 0xe9, 0x08)
	step(t, mc) // SEC
	step(t, mc) // LDA #$0B
	step(t, mc) // SBC #$08
	test.ExpectEquality(t, mc.A.Value(), uint8(0x03))
	test.ExpectSuccess(t, mc.Status.Carry)
}

func TestDecimalMode(t *testing.T) {
	// SED; CLC; LDA #$09; ADC #$01
	program := []uint8{0xf8, 0x18, 0xa9, 0x09, 0x69, 0x01}

	// without an instance the decimal flag has no effect
	mc, mem := newCPU(t)
	mem.putInstructions(0x8000, program...)
	for range 4 {
		step(t, mc)
	}
	test.ExpectEquality(t, mc.A.Value(), uint8(0x0a))

	// the preference is off by default so arithmetic remains binary
	ins, err := instance.NewInstance(nil, nil)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, ins.Prefs.DecimalMode.Get().(bool))

	mem = newMockMem()
	mc = cpu.NewCPU(ins, mem, instructions.NewTable())
	mc.Boot()
	mem.putInstructions(0x8000, program...)
	for range 4 {
		step(t, mc)
	}
	test.ExpectSuccess(t, mc.Status.DecimalMode)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x0a))

	test.DemandSuccess(t, ins.Prefs.DecimalMode.Set(true))

	mem = newMockMem()
	mc = cpu.NewCPU(ins, mem, instructions.NewTable())
	mc.Boot()
	mem.putInstructions(0x8000, program...)
	for range 4 {
		step(t, mc)
	}
	test.ExpectEquality(t, mc.A.Value(), uint8(0x10))

	// each nibble is treated as a decimal digit even when it is not a valid
	// decimal digit
	mem.putInstructions(mc.PC.Address(), 0x18, 0xa9, 0x0f, 0x69, 0x01)
	for range 3 {
		step(t, mc)
	}
	test.ExpectEquality(t, mc.A.Value(), uint8(0x16))

	// decimal flag clear
	mem.putInstructions(mc.PC.Address(), 0xd8, 0x18, 0xa9, 0x09, 0x69, 0x01)
	for range 4 {
		step(t, mc)
	}
	test.ExpectEquality(t, mc.A.Value(), uint8(0x0a))
}

func TestStack(t *testing.T) {
	mc, mem := newCPU(t)

	// LDA #1; PHA; LDA #2; PHA; PLA; PLA
	mem.putInstructions(0x8000, 0xa9, 0x01, 0x48, 0xa9, 0x02, 0x48, 0x68, 0x68)
	step(t, mc) // LDA #1
	step(t, mc) // PHA
	step(t, mc) // LDA #2
	step(t, mc) // PHA
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xfb))
	mem.assert(t, 0x01fd, 0x01)
	mem.assert(t, 0x01fc, 0x02)

	step(t, mc) // PLA
	test.ExpectEquality(t, mc.A.Value(), uint8(0x02))
	step(t, mc) // PLA
	test.ExpectEquality(t, mc.A.Value(), uint8(0x01))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xfd))
}

func TestSubroutine(t *testing.T) {
	mc, mem := newCPU(t)

	// JSR $9100
	mem.putInstructions(0x8000, 0x20, 0x00, 0x91)

	// RTS
	mem.putInstructions(0x9100, 0x60)

	r := step(t, mc) // JSR $9100
	test.ExpectEquality(t, r.Cycles, 6)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x9100))

	// the address of the last byte of the JSR instruction is pushed
	mem.assert(t, 0x01fd, 0x80)
	mem.assert(t, 0x01fc, 0x02)

	r = step(t, mc) // RTS
	test.ExpectEquality(t, r.Cycles, 6)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x8003))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xfd))
}

func TestAddressingWraparound(t *testing.T) {
	t.Run("zero page indexed x", func(t *testing.T) {
		mc, mem := newCPU(t)
		mem.internal[0x0000] = 0x77

		// LDX #$01; LDA $FF,X
		mem.putInstructions(0x8000, 0xa2, 0x01, 0xb5, 0xff)
		step(t, mc)
		step(t, mc)
		test.ExpectEquality(t, mc.A.Value(), uint8(0x77))
	})

	t.Run("zero page indexed y", func(t *testing.T) {
		mc, mem := newCPU(t)
		mem.internal[0x0001] = 0x66

		// LDY #$02; LDX $FF,Y
		mem.putInstructions(0x8000, 0xa0, 0x02, 0xb6, 0xff)
		step(t, mc)
		step(t, mc)
		test.ExpectEquality(t, mc.X.Value(), uint8(0x66))
	})

	t.Run("indexed indirect", func(t *testing.T) {
		mc, mem := newCPU(t)
		mem.internal[0x00ff] = 0x34
		mem.internal[0x0000] = 0x12
		mem.internal[0x0100] = 0xee
		mem.internal[0x1234] = 0x99

		// LDX #$00; LDA ($FF,X)
		mem.putInstructions(0x8000, 0xa2, 0x00, 0xa1, 0xff)
		step(t, mc)
		r := step(t, mc)
		test.ExpectEquality(t, mc.A.Value(), uint8(0x99))
		test.ExpectEquality(t, r.Cycles, 6)
	})

	t.Run("indexed indirect pointer wrap", func(t *testing.T) {
		mc, mem := newCPU(t)
		mem.internal[0x0001] = 0x34
		mem.internal[0x0002] = 0x12
		mem.internal[0x1234] = 0x98

		// LDX #$02; LDA ($FF,X)
		mem.putInstructions(0x8000, 0xa2, 0x02, 0xa1, 0xff)
		step(t, mc)
		step(t, mc)
		test.ExpectEquality(t, mc.A.Value(), uint8(0x98))
	})

	t.Run("indirect indexed", func(t *testing.T) {
		mc, mem := newCPU(t)
		mem.internal[0x00ff] = 0x34
		mem.internal[0x0000] = 0x12
		mem.internal[0x1235] = 0x55

		// LDY #$01; LDA ($FF),Y
		mem.putInstructions(0x8000, 0xa0, 0x01, 0xb1, 0xff)
		step(t, mc)
		r := step(t, mc)
		test.ExpectEquality(t, mc.A.Value(), uint8(0x55))
		test.ExpectFailure(t, r.PageFault)
		test.ExpectEquality(t, r.Cycles, 5)
	})

	t.Run("indirect jump bug", func(t *testing.T) {
		mc, mem := newCPU(t)
		mem.internal[0x02ff] = 0x00
		mem.internal[0x0200] = 0x90
		mem.internal[0x0300] = 0xa0

		// JMP ($02FF)
		mem.putInstructions(0x8000, 0x6c, 0xff, 0x02)
		r := step(t, mc)
		test.ExpectEquality(t, mc.PC.Address(), uint16(0x9000))
		test.ExpectInequality(t, r.CPUBug, "")
	})
}

func TestPagePenalties(t *testing.T) {
	mc, mem := newCPU(t)

	// LDX #$01; LDA $02FF,X; LDA $0200,X; STA $02FF,X
	mem.putInstructions(0x8000, 0xa2, 0x01, 0xbd, 0xff, 0x02, 0xbd, 0x00, 0x02, 0x9d, 0xff, 0x02)
	step(t, mc)

	r := step(t, mc) // LDA $02FF,X
	test.ExpectSuccess(t, r.PageFault)
	test.ExpectEquality(t, r.Cycles, 5)

	r = step(t, mc) // LDA $0200,X
	test.ExpectFailure(t, r.PageFault)
	test.ExpectEquality(t, r.Cycles, 4)

	// stores always take the extra cycle
	r = step(t, mc) // STA $02FF,X
	test.ExpectFailure(t, r.PageFault)
	test.ExpectEquality(t, r.Cycles, 5)
}

func TestBranching(t *testing.T) {
	mc, mem := newCPU(t)

	// LDA #$00; BEQ +2; (skipped); BNE +2
	mem.putInstructions(0x8000, 0xa9, 0x00, 0xf0, 0x02, 0xea, 0xea, 0xd0, 0x02)
	step(t, mc)

	r := step(t, mc) // BEQ +2
	test.ExpectSuccess(t, r.BranchSuccess)
	test.ExpectEquality(t, r.Cycles, 3)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x8006))

	r = step(t, mc) // BNE +2
	test.ExpectFailure(t, r.BranchSuccess)
	test.ExpectEquality(t, r.Cycles, 2)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x8008))

	// BEQ +$10 across a page boundary
	mem.putInstructions(0x80f0, 0xf0, 0x10)
	mc.LoadPC(0x80f0)
	r = step(t, mc)
	test.ExpectSuccess(t, r.PageFault)
	test.ExpectEquality(t, r.Cycles, 4)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x8102))

	// BEQ -2 branches to itself
	mem.putInstructions(0x8010, 0xf0, 0xfe)
	mc.LoadPC(0x8010)
	r = step(t, mc)
	test.ExpectFailure(t, r.PageFault)
	test.ExpectEquality(t, r.Cycles, 3)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x8010))

	// BEQ backwards across a page boundary
	mem.putInstructions(0x8100, 0xf0, 0xf0)
	mc.LoadPC(0x8100)
	r = step(t, mc)
	test.ExpectSuccess(t, r.PageFault)
	test.ExpectEquality(t, r.Cycles, 4)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x80f2))
}

func TestInterrupts(t *testing.T) {
	mc, mem := newCPU(t)

	// CLI; NOP
	mem.putInstructions(0x8000, 0x58, 0xea)

	// RTI
	mem.putInstructions(0x9000, 0x40)

	// the interrupt disable flag is set after boot so the IRQ remains
	// pending
	mc.RequestIRQ()
	r := step(t, mc) // CLI
	test.ExpectEquality(t, r.Interrupt, "")
	_, irq := mc.InterruptPending()
	test.ExpectSuccess(t, irq)

	r = step(t, mc)
	test.ExpectEquality(t, r.Interrupt, "IRQ")
	test.ExpectEquality(t, r.Cycles, 7)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x9000))
	test.ExpectSuccess(t, mc.Status.InterruptDisable)
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xfa))
	mem.assert(t, 0x01fd, 0x80)
	mem.assert(t, 0x01fc, 0x01)
	mem.assert(t, 0x01fb, 0x20)

	r = step(t, mc) // RTI
	test.ExpectEquality(t, r.Cycles, 6)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x8001))
	test.ExpectFailure(t, mc.Status.InterruptDisable)
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xfd))

	// NMI has priority over IRQ
	mc.RequestIRQ()
	mc.RequestNMI()
	r = step(t, mc)
	test.ExpectEquality(t, r.Interrupt, "NMI")
	test.ExpectEquality(t, mc.PC.Address(), uint16(0xa000))
	nmi, irq := mc.InterruptPending()
	test.ExpectFailure(t, nmi)
	test.ExpectSuccess(t, irq)
}

func TestNMIWithInterruptsDisabled(t *testing.T) {
	mc, _ := newCPU(t)
	test.ExpectSuccess(t, mc.Status.InterruptDisable)
	mc.RequestNMI()
	r := step(t, mc)
	test.ExpectEquality(t, r.Interrupt, "NMI")
	test.ExpectEquality(t, mc.PC.Address(), uint16(0xa000))
}

func TestBRK(t *testing.T) {
	mc, mem := newCPU(t)

	// BRK; padding byte
	mem.putInstructions(0x8000, 0x00, 0xff)

	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 7)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x9000))
	mem.assert(t, 0x01fd, 0x80)
	mem.assert(t, 0x01fc, 0x02)
	mem.assert(t, 0x01fb, 0x34)
}

func TestUnofficialInstructions(t *testing.T) {
	mc, mem := newCPU(t)
	mem.internal[0x0010] = 0x81
	mem.internal[0x0021] = 0x31
	mem.internal[0x0022] = 0x81

	mem.putInstructions(0x8000,
		0xa7, 0x10, // LAX $10
		0xa9, 0xf0, // LDA #$F0
		0xa2, 0x3c, // LDX #$3C
		0x87, 0x20, // SAX $20
		0xc7, 0x21, // DCP $21
		0xcb, 0x10, // AXS #$10
		0x07, 0x22, // SLO $22
		0x0b, 0x80, // ANC #$80
		0x4b, 0x03, // ALR #$03
		0xa9, 0xff, // LDA #$FF
		0x38,       // SEC
		0x6b, 0xc0, // ARR #$C0
	)

	r := step(t, mc) // LAX $10
	test.ExpectSuccess(t, r.Defn.Unofficial)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x81))
	test.ExpectEquality(t, mc.X.Value(), uint8(0x81))
	test.ExpectSuccess(t, mc.Status.Sign)

	step(t, mc) // LDA #$F0
	step(t, mc) // LDX #$3C
	step(t, mc) // SAX $20
	mem.assert(t, 0x0020, 0x30)

	r = step(t, mc) // DCP $21
	test.ExpectEquality(t, r.Cycles, 5)
	mem.assert(t, 0x0021, 0x30)
	test.ExpectSuccess(t, mc.Status.Carry)
	test.ExpectFailure(t, mc.Status.Zero)

	step(t, mc) // AXS #$10
	test.ExpectEquality(t, mc.X.Value(), uint8(0x20))
	test.ExpectSuccess(t, mc.Status.Carry)

	step(t, mc) // SLO $22
	mem.assert(t, 0x0022, 0x02)
	test.ExpectSuccess(t, mc.Status.Carry)
	test.ExpectEquality(t, mc.A.Value(), uint8(0xf2))

	step(t, mc) // ANC #$80
	test.ExpectEquality(t, mc.A.Value(), uint8(0x80))
	test.ExpectSuccess(t, mc.Status.Carry)
	test.ExpectSuccess(t, mc.Status.Sign)

	step(t, mc) // ALR #$03
	test.ExpectEquality(t, mc.A.Value(), uint8(0x00))
	test.ExpectFailure(t, mc.Status.Carry)
	test.ExpectSuccess(t, mc.Status.Zero)

	step(t, mc) // LDA #$FF
	step(t, mc) // SEC
	step(t, mc) // ARR #$C0
	test.ExpectEquality(t, mc.A.Value(), uint8(0xe0))
	test.ExpectSuccess(t, mc.Status.Carry)
	test.ExpectFailure(t, mc.Status.Overflow)
}

func TestUnrecognizedInstruction(t *testing.T) {
	mc, mem := newCPU(t)

	// JAM
	mem.putInstructions(0x8000, 0x02)

	_, err := mc.ExecuteInstruction()
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cpu.UnrecognizedInstruction))

	var fault *cpu.FaultError
	test.DemandSuccess(t, errors.As(err, &fault))
	test.ExpectEquality(t, fault.Opcode, uint8(0x02))
	test.ExpectEquality(t, fault.PC, uint16(0x8000))

	// unofficial opcodes are unrecognized when using the official table
	mem = newMockMem()
	mc = cpu.NewCPU(nil, mem, instructions.NewTable().Official())
	mc.Boot()
	mem.putInstructions(0x8000, 0xa7, 0x10)
	_, err = mc.ExecuteInstruction()
	test.DemandFailure(t, err)
	test.DemandSuccess(t, errors.As(err, &fault))
	test.ExpectEquality(t, fault.Opcode, uint8(0xa7))
}

func TestTrace(t *testing.T) {
	mc, mem := newCPU(t)

	// LDA #$42; LAX $10
	mem.putInstructions(0x8000, 0xa9, 0x42, 0xa7, 0x10)

	r := step(t, mc)
	expected := "8000  A9 42     LDA #$42" + strings.Repeat(" ", 24) + "A:00 X:00 Y:00 P:24 SP:FD CYC:7"
	test.ExpectEquality(t, r.String(), expected)

	r = step(t, mc)
	expected = "8002  A7 10    *LAX $10" + strings.Repeat(" ", 24) + "A:42 X:00 Y:00 P:24 SP:FD CYC:9"
	test.ExpectEquality(t, r.String(), expected)
}

func TestSnapshot(t *testing.T) {
	mc, mem := newCPU(t)
	mem.putInstructions(0x8000, 0xa9, 0x42)

	snapshot := mc.Snapshot()
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x42))
	test.ExpectEquality(t, snapshot.A.Value(), uint8(0x00))
	test.ExpectEquality(t, snapshot.PC.Address(), uint16(0x8000))
}
