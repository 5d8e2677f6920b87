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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/hardware/cpu/execution"
	"github.com/jetsetilly/gopher2a03/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher2a03/hardware/cpu/registers"
	"github.com/jetsetilly/gopher2a03/hardware/instance"
	"github.com/jetsetilly/gopher2a03/hardware/memory/cpubus"
)

// the number of cycles required to service an interrupt or to reset.
const interruptCycles = 7

// CPU implements the 2A03 as found in the NES. Register logic is implemented
// by the Register type in the registers sub-package.
type CPU struct {
	instance *instance.Instance

	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	// some operations only need an accumulator
	acc8 registers.Register

	mem          cpubus.Memory
	instructions *instructions.Table

	// interrupt request lines. cleared when the interrupt is serviced
	nmi bool
	irq bool

	// the total number of cycles executed since boot
	Cycles uint64

	// result of the most recent instruction or interrupt
	LastResult execution.Result
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// instance argument can be nil, in which case default preferences apply.
func NewCPU(instance *instance.Instance, mem cpubus.Memory, table *instructions.Table) *CPU {
	return &CPU{
		instance:     instance,
		mem:          mem,
		instructions: table,
		A:            registers.NewRegister(0, "A"),
		X:            registers.NewRegister(0, "X"),
		Y:            registers.NewRegister(0, "Y"),
		SP:           registers.NewStackPointer(0),
		Status:       registers.NewStatusRegister(),
		acc8:         registers.NewRegister(0, "accumulator"),
	}
}

// Snapshot creates a copy of the CPU in its current state.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

// Plumb a new memory interface and instance into the CPU. Used after
// restoring a snapshot.
func (mc *CPU) Plumb(instance *instance.Instance, mem cpubus.Memory) {
	mc.instance = instance
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// decimalMode returns true if decimal arithmetic should be used. The 2A03
// ignores the DecimalMode flag so the hardware.cpu.decimal preference is off
// by default and ADC/SBC use binary arithmetic even when the flag is set.
// With the preference on the arithmetic is the non-standard digit
// adjustment, not true BCD.
func (mc *CPU) decimalMode() bool {
	if !mc.Status.DecimalMode || mc.instance == nil {
		return false
	}
	return mc.instance.Prefs.DecimalMode.Get().(bool)
}

// Boot sets the registers to their power-up values, silences the audio
// sequencer and loads the PC with the reset vector.
func (mc *CPU) Boot() {
	mc.LastResult.Reset()
	mc.nmi = false
	mc.irq = false

	if mc.instance != nil && mc.instance.Prefs.RandomState.Get().(bool) {
		mc.A.Load(uint8(mc.instance.Random.Intn(0xff)))
		mc.X.Load(uint8(mc.instance.Random.Intn(0xff)))
		mc.Y.Load(uint8(mc.instance.Random.Intn(0xff)))
	} else {
		mc.A.Load(0)
		mc.X.Load(0)
		mc.Y.Load(0)
	}
	mc.SP.Load(0xfd)
	mc.Status.Load(registers.InterruptDisable)

	// silence all audio channels and the frame counter
	mc.mem.Write(cpubus.SNDCHNAddr, 0x00)
	mc.mem.Write(cpubus.JOY2Addr, 0x00)

	mc.PC.Load(mc.read16Bit(cpubus.Reset))
	mc.Cycles = interruptCycles
}

// Reset the CPU. The stack pointer is moved down by three bytes as though
// three values had been pushed but nothing is written to memory.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.nmi = false
	mc.irq = false

	mc.SP.Load(mc.SP.Value() - 3)
	mc.Status.InterruptDisable = true
	mc.PC.Load(mc.read16Bit(cpubus.Reset))
	mc.Cycles += interruptCycles
}

// RequestNMI raises the non-maskable interrupt line. The interrupt is serviced
// at the start of the next call to ExecuteInstruction().
func (mc *CPU) RequestNMI() {
	mc.nmi = true
}

// RequestIRQ raises the maskable interrupt line. The interrupt is serviced
// at the start of the next call to ExecuteInstruction() in which the
// InterruptDisable flag is clear.
func (mc *CPU) RequestIRQ() {
	mc.irq = true
}

// InterruptPending returns the state of the two interrupt request lines.
func (mc *CPU) InterruptPending() (nmi bool, irq bool) {
	return mc.nmi, mc.irq
}

// LoadPC loads the contents of directAddress into the PC.
func (mc *CPU) LoadPC(directAddress uint16) {
	mc.PC.Load(directAddress)
}

// read16Bit returns the little-endian 16 bit value at the address. The high
// byte is read from the next address with 16 bit wraparound.
func (mc *CPU) read16Bit(address uint16) uint16 {
	lo := mc.mem.Read(address)
	hi := mc.mem.Read(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// read16BitZeroPage returns the 16 bit value at the zero page address. The
// high byte is read from the next zero page address, wrapping from 0xff to
// 0x00.
func (mc *CPU) read16BitZeroPage(address uint8) uint16 {
	lo := mc.mem.Read(uint16(address))
	hi := mc.mem.Read(uint16(address + 1))
	return uint16(hi)<<8 | uint16(lo)
}

// read8BitPC reads 8 bits from the memory location pointed to by PC
//
// side-effects:
//   - updates program counter
//   - updates LastResult.Bytes and LastResult.ByteCount
func (mc *CPU) read8BitPC() uint8 {
	v := mc.mem.Read(mc.PC.Address())
	mc.PC.Add(1)
	if mc.LastResult.ByteCount < len(mc.LastResult.Bytes) {
		mc.LastResult.Bytes[mc.LastResult.ByteCount] = v
	}
	mc.LastResult.ByteCount++
	return v
}

// read16BitPC reads 16 bits from the memory location pointed to by PC. Same
// side effects as read8BitPC.
func (mc *CPU) read16BitPC() uint16 {
	lo := mc.read8BitPC()
	hi := mc.read8BitPC()
	return uint16(hi)<<8 | uint16(lo)
}

func (mc *CPU) push(v uint8) {
	mc.mem.Write(mc.SP.Push(), v)
}

func (mc *CPU) pull() uint8 {
	return mc.mem.Read(mc.SP.Pull())
}

func (mc *CPU) pushPC() {
	mc.push(uint8(mc.PC.Address() >> 8))
	mc.push(uint8(mc.PC.Address()))
}

func (mc *CPU) pullPC() uint16 {
	lo := mc.pull()
	hi := mc.pull()
	return uint16(hi)<<8 | uint16(lo)
}

// startResult prepares LastResult for a new instruction or interrupt.
func (mc *CPU) startResult() {
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()
	mc.LastResult.A = mc.A.Value()
	mc.LastResult.X = mc.X.Value()
	mc.LastResult.Y = mc.Y.Value()
	mc.LastResult.P = mc.Status.Value()
	mc.LastResult.SP = mc.SP.Value()
	mc.LastResult.TotalCycles = mc.Cycles
}

// finishResult finalises LastResult and accumulates the cycle count.
func (mc *CPU) finishResult(cycles int) int {
	mc.LastResult.Cycles = cycles
	mc.LastResult.Final = true
	mc.Cycles += uint64(cycles)
	return cycles
}

// interrupt pushes the PC and status register and loads the PC from the
// vector. The break flag is clear in the pushed status value.
func (mc *CPU) interrupt(vector uint16, name string) int {
	mc.startResult()
	mc.LastResult.Interrupt = name

	mc.pushPC()
	mc.push(mc.Status.Value() &^ registers.Break)
	mc.Status.InterruptDisable = true
	mc.PC.Load(mc.read16Bit(vector))

	return mc.finishResult(interruptCycles)
}

// branch adds the signed offset to PC if flag is true. Returns the number of
// additional cycles required by the branch.
func (mc *CPU) branch(flag bool, offset uint8) int {
	mc.LastResult.BranchSuccess = flag
	if !flag {
		return 0
	}

	// sign extend the 8 bit offset
	address := uint16(offset)
	if address&0x0080 == 0x0080 {
		address |= 0xff00
	}

	if mc.PC.Add(address) {
		mc.LastResult.PageFault = true
		return 2
	}
	return 1
}

// setZN sets the zero and sign flags according to the value.
func (mc *CPU) setZN(v uint8) {
	mc.Status.Zero = v == 0
	mc.Status.Sign = v&0x80 == 0x80
}

// adc adds the value to the accumulator, using decimal arithmetic if
// appropriate.
func (mc *CPU) adc(value uint8) {
	if mc.decimalMode() {
		mc.Status.Carry,
			mc.Status.Zero,
			mc.Status.Overflow,
			mc.Status.Sign = mc.A.AddDecimal(value, mc.Status.Carry)
		return
	}
	mc.Status.Carry, mc.Status.Overflow = mc.A.Add(value, mc.Status.Carry)
	mc.setZN(mc.A.Value())
}

// sbc subtracts the value from the accumulator, using decimal arithmetic if
// appropriate.
func (mc *CPU) sbc(value uint8) {
	if mc.decimalMode() {
		mc.Status.Carry,
			mc.Status.Zero,
			mc.Status.Overflow,
			mc.Status.Sign = mc.A.SubtractDecimal(value, mc.Status.Carry)
		return
	}
	mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(value, mc.Status.Carry)
	mc.setZN(mc.A.Value())
}

// compare sets the carry, zero and sign flags by comparing the register with
// the value.
func (mc *CPU) compare(r registers.Register, value uint8) {
	mc.Status.Carry, mc.Status.Zero, mc.Status.Sign = r.Compare(value)
}

// ExecuteInstruction steps the CPU forward one instruction and returns the
// number of cycles consumed. The basic process when executing an instruction
// is this:
//
//  1. service a pending interrupt, if any, instead of an instruction
//  2. read opcode and look up instruction definition
//  3. read operands (if any) according to the addressing mode of the instruction
//  4. using the operator as a guide, perform the instruction on the data
//
// The only error is UnrecognizedInstruction. The PC is left pointing at the
// byte after the unrecognized opcode.
func (mc *CPU) ExecuteInstruction() (int, error) {
	if mc.nmi {
		mc.nmi = false
		return mc.interrupt(cpubus.NMI, "NMI"), nil
	}

	if mc.irq && !mc.Status.InterruptDisable {
		mc.irq = false
		return mc.interrupt(cpubus.IRQ, "IRQ"), nil
	}

	mc.startResult()

	opcode := mc.read8BitPC()

	defn := mc.instructions.Lookup(opcode)
	if defn == nil {
		mc.LastResult.Final = true
		return 0, curated.Errorf(UnrecognizedInstruction, &FaultError{
			Opcode: opcode,
			PC:     mc.LastResult.Address,
		})
	}
	mc.LastResult.Defn = defn

	// address is the actual address to use to access memory (after any indexing
	// has taken place)
	var address uint16

	// value is read from the program for immediate mode, and from memory for
	// all other modes that require a value. for read-modify-write
	// instructions the value will change during execution and be written
	// back to memory
	var value uint8

	// get address to use when reading/writing from/to memory (note that in the
	// case of immediate addressing, we are actually getting the value to use
	// in the instruction, not the address).
	switch defn.AddressingMode {
	case instructions.Implied:
		// no operand

	case instructions.Accumulator:
		value = mc.A.Value()

	case instructions.Immediate:
		value = mc.read8BitPC()
		mc.LastResult.InstructionData = uint16(value)

	case instructions.Relative:
		// relative addressing is only used for branch instructions. the
		// offset is applied in the branch() function
		value = mc.read8BitPC()
		mc.LastResult.InstructionData = uint16(value)

	case instructions.Absolute:
		address = mc.read16BitPC()
		mc.LastResult.InstructionData = address

	case instructions.ZeroPage:
		address = uint16(mc.read8BitPC())
		mc.LastResult.InstructionData = address

	case instructions.Indirect:
		// indirect addressing (without indexing) is only used for the JMP
		// command
		indirectAddress := mc.read16BitPC()
		mc.LastResult.InstructionData = indirectAddress

		// handle indirect addressing JMP bug. the high byte is read from the
		// start of the same page rather than the start of the next page
		if indirectAddress&0x00ff == 0x00ff {
			mc.LastResult.CPUBug = "indirect addressing bug (JMP bug)"
			lo := mc.mem.Read(indirectAddress)
			hi := mc.mem.Read(indirectAddress & 0xff00)
			address = uint16(hi)<<8 | uint16(lo)
		} else {
			address = mc.read16Bit(indirectAddress)
		}

	case instructions.IndexedIndirect: // x indexing
		indirectAddress := mc.read8BitPC()
		mc.LastResult.InstructionData = uint16(indirectAddress)

		// using 8bit addition so that the pointer does not extend past the
		// zero page
		mc.acc8.Load(indirectAddress)
		mc.acc8.Add(mc.X.Value(), false)
		address = mc.read16BitZeroPage(mc.acc8.Value())

	case instructions.IndirectIndexed: // y indexing
		indirectAddress := mc.read8BitPC()
		mc.LastResult.InstructionData = uint16(indirectAddress)

		base := mc.read16BitZeroPage(indirectAddress)
		address = base + mc.Y.Address()
		mc.LastResult.PageFault = defn.PageSensitive && base&0xff00 != address&0xff00

	case instructions.AbsoluteIndexedX:
		base := mc.read16BitPC()
		mc.LastResult.InstructionData = base
		address = base + mc.X.Address()
		mc.LastResult.PageFault = defn.PageSensitive && base&0xff00 != address&0xff00

	case instructions.AbsoluteIndexedY:
		base := mc.read16BitPC()
		mc.LastResult.InstructionData = base
		address = base + mc.Y.Address()
		mc.LastResult.PageFault = defn.PageSensitive && base&0xff00 != address&0xff00

	case instructions.ZeroPageIndexedX:
		indirectAddress := mc.read8BitPC()
		mc.LastResult.InstructionData = uint16(indirectAddress)
		mc.acc8.Load(indirectAddress)
		mc.acc8.Add(mc.X.Value(), false)
		address = mc.acc8.Address()

	case instructions.ZeroPageIndexedY:
		indirectAddress := mc.read8BitPC()
		mc.LastResult.InstructionData = uint16(indirectAddress)
		mc.acc8.Load(indirectAddress)
		mc.acc8.Add(mc.Y.Value(), false)
		address = mc.acc8.Address()
	}

	// read value from memory using address found in AddressingMode switch
	// above only when the instruction is Read or RMW and the addressing mode
	// is a memory addressing mode
	switch defn.AddressingMode {
	case instructions.Implied, instructions.Accumulator, instructions.Immediate, instructions.Relative:
	default:
		if defn.Effect == instructions.Read || defn.Effect == instructions.RMW {
			value = mc.mem.Read(address)
		}
	}

	cycles := defn.Cycles
	if mc.LastResult.PageFault && defn.PageSensitive {
		cycles++
	}

	// actually perform instruction based on operator group
	switch defn.Operator {
	case instructions.Nop:
		// does nothing

	case instructions.Cli:
		mc.Status.InterruptDisable = false

	case instructions.Sei:
		mc.Status.InterruptDisable = true

	case instructions.Clc:
		mc.Status.Carry = false

	case instructions.Sec:
		mc.Status.Carry = true

	case instructions.Cld:
		mc.Status.DecimalMode = false

	case instructions.Sed:
		mc.Status.DecimalMode = true

	case instructions.Clv:
		mc.Status.Overflow = false

	case instructions.Pha:
		mc.push(mc.A.Value())

	case instructions.Pla:
		mc.A.Load(mc.pull())
		mc.setZN(mc.A.Value())

	case instructions.Php:
		// the break flag is always set in the pushed value
		mc.push(mc.Status.Value() | registers.Break)

	case instructions.Plp:
		mc.Status.Load(mc.pull())

	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.setZN(mc.A.Value())

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.setZN(mc.X.Value())

	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.setZN(mc.Y.Value())

	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.setZN(mc.A.Value())

	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.setZN(mc.X.Value())

	case instructions.Txs:
		mc.SP.Load(mc.X.Value())

	case instructions.Eor:
		mc.A.EOR(value)
		mc.setZN(mc.A.Value())

	case instructions.Ora:
		mc.A.ORA(value)
		mc.setZN(mc.A.Value())

	case instructions.And:
		mc.A.AND(value)
		mc.setZN(mc.A.Value())

	case instructions.Lda:
		mc.A.Load(value)
		mc.setZN(mc.A.Value())

	case instructions.Ldx:
		mc.X.Load(value)
		mc.setZN(mc.X.Value())

	case instructions.Ldy:
		mc.Y.Load(value)
		mc.setZN(mc.Y.Value())

	case instructions.Sta:
		mc.mem.Write(address, mc.A.Value())

	case instructions.Stx:
		mc.mem.Write(address, mc.X.Value())

	case instructions.Sty:
		mc.mem.Write(address, mc.Y.Value())

	case instructions.Inx:
		mc.X.Add(1, false)
		mc.setZN(mc.X.Value())

	case instructions.Iny:
		mc.Y.Add(1, false)
		mc.setZN(mc.Y.Value())

	case instructions.Dex:
		mc.X.Add(0xff, false)
		mc.setZN(mc.X.Value())

	case instructions.Dey:
		mc.Y.Add(0xff, false)
		mc.setZN(mc.Y.Value())

	case instructions.Asl:
		mc.acc8.Load(value)
		mc.Status.Carry = mc.acc8.ASL()
		value = mc.acc8.Value()
		mc.setZN(value)

	case instructions.Lsr:
		mc.acc8.Load(value)
		mc.Status.Carry = mc.acc8.LSR()
		value = mc.acc8.Value()
		mc.setZN(value)

	case instructions.Rol:
		mc.acc8.Load(value)
		mc.Status.Carry = mc.acc8.ROL(mc.Status.Carry)
		value = mc.acc8.Value()
		mc.setZN(value)

	case instructions.Ror:
		mc.acc8.Load(value)
		mc.Status.Carry = mc.acc8.ROR(mc.Status.Carry)
		value = mc.acc8.Value()
		mc.setZN(value)

	case instructions.Adc:
		mc.adc(value)

	case instructions.Sbc:
		mc.sbc(value)

	case instructions.Inc:
		value++
		mc.setZN(value)

	case instructions.Dec:
		value--
		mc.setZN(value)

	case instructions.Cmp:
		mc.compare(mc.A, value)

	case instructions.Cpx:
		mc.compare(mc.X, value)

	case instructions.Cpy:
		mc.compare(mc.Y, value)

	case instructions.Bit:
		mc.acc8.Load(value)
		mc.Status.Sign = mc.acc8.IsNegative()
		mc.Status.Overflow = mc.acc8.IsBitV()
		mc.acc8.AND(mc.A.Value())
		mc.Status.Zero = mc.acc8.IsZero()

	case instructions.Jmp:
		mc.PC.Load(address)

	case instructions.Bcc:
		cycles += mc.branch(!mc.Status.Carry, value)

	case instructions.Bcs:
		cycles += mc.branch(mc.Status.Carry, value)

	case instructions.Beq:
		cycles += mc.branch(mc.Status.Zero, value)

	case instructions.Bmi:
		cycles += mc.branch(mc.Status.Sign, value)

	case instructions.Bne:
		cycles += mc.branch(!mc.Status.Zero, value)

	case instructions.Bpl:
		cycles += mc.branch(!mc.Status.Sign, value)

	case instructions.Bvc:
		cycles += mc.branch(!mc.Status.Overflow, value)

	case instructions.Bvs:
		cycles += mc.branch(mc.Status.Overflow, value)

	case instructions.Jsr:
		// the address pushed to the stack is the address of the last byte
		// of the JSR instruction
		mc.PC.Add(0xffff)
		mc.pushPC()
		mc.PC.Load(address)

	case instructions.Rts:
		mc.PC.Load(mc.pullPC())
		mc.PC.Add(1)

	case instructions.Brk:
		// BRK is unusual in that it increases the PC by two bytes despite
		// being an implied addressing instruction. the padding byte is
		// skipped but is not recorded as part of the instruction
		mc.PC.Add(1)
		mc.pushPC()
		mc.push(mc.Status.Value() | registers.Break)
		mc.Status.InterruptDisable = true
		mc.PC.Load(mc.read16Bit(cpubus.BRK))

	case instructions.Rti:
		mc.Status.Load(mc.pull())
		mc.PC.Load(mc.pullPC())

	// unofficial instructions

	case instructions.Lax:
		mc.A.Load(value)
		mc.X.Load(value)
		mc.setZN(value)

	case instructions.Sax:
		mc.acc8.Load(mc.A.Value())
		mc.acc8.AND(mc.X.Value())
		mc.mem.Write(address, mc.acc8.Value())

	case instructions.Dcp:
		value--
		mc.compare(mc.A, value)

	case instructions.Isc:
		value++
		mc.sbc(value)

	case instructions.Slo:
		mc.acc8.Load(value)
		mc.Status.Carry = mc.acc8.ASL()
		value = mc.acc8.Value()
		mc.A.ORA(value)
		mc.setZN(mc.A.Value())

	case instructions.Rla:
		mc.acc8.Load(value)
		mc.Status.Carry = mc.acc8.ROL(mc.Status.Carry)
		value = mc.acc8.Value()
		mc.A.AND(value)
		mc.setZN(mc.A.Value())

	case instructions.Sre:
		mc.acc8.Load(value)
		mc.Status.Carry = mc.acc8.LSR()
		value = mc.acc8.Value()
		mc.A.EOR(value)
		mc.setZN(mc.A.Value())

	case instructions.Rra:
		mc.acc8.Load(value)
		mc.Status.Carry = mc.acc8.ROR(mc.Status.Carry)
		value = mc.acc8.Value()
		mc.adc(value)

	case instructions.Anc:
		mc.A.AND(value)
		mc.setZN(mc.A.Value())
		mc.Status.Carry = mc.A.IsNegative()

	case instructions.Alr:
		mc.A.AND(value)
		mc.Status.Carry = mc.A.LSR()
		mc.setZN(mc.A.Value())

	case instructions.Arr:
		mc.A.AND(value)
		mc.A.ROR(mc.Status.Carry)
		mc.setZN(mc.A.Value())
		mc.Status.Carry = mc.A.IsBitV()
		mc.Status.Overflow = (mc.A.Value()>>6)&0x01 != (mc.A.Value()>>5)&0x01

	case instructions.Xaa:
		mc.A.Load(mc.X.Value())
		mc.A.AND(value)
		mc.setZN(mc.A.Value())

	case instructions.Axs:
		mc.acc8.Load(mc.A.Value())
		mc.acc8.AND(mc.X.Value())
		mc.Status.Carry, mc.Status.Zero, _ = mc.acc8.Compare(value)
		mc.acc8.Subtract(value, true)
		mc.X.Load(mc.acc8.Value())
		mc.setZN(mc.X.Value())

	case instructions.Ahx:
		mc.mem.Write(address, mc.A.Value()&mc.X.Value()&highPlusOne(address))

	case instructions.Tas:
		mc.SP.Load(mc.A.Value() & mc.X.Value())
		mc.mem.Write(address, mc.SP.Value()&highPlusOne(address))

	case instructions.Shy:
		mc.mem.Write(address, mc.Y.Value()&highPlusOne(address))

	case instructions.Shx:
		mc.mem.Write(address, mc.X.Value()&highPlusOne(address))

	case instructions.Las:
		mc.SP.Load(mc.SP.Value() & value)
		mc.A.Load(mc.SP.Value())
		mc.X.Load(mc.SP.Value())
		mc.setZN(mc.SP.Value())

	default:
		return 0, curated.Errorf("cpu: unknown operator (%v)", defn.Operator)
	}

	// write altered value back to memory for RMW instructions
	if defn.Effect == instructions.RMW {
		mc.mem.Write(address, value)
	}

	// accumulator addressing writes the altered value to the A register
	if defn.AddressingMode == instructions.Accumulator {
		mc.A.Load(value)
	}

	return mc.finishResult(cycles), nil
}

// highPlusOne returns the high byte of the address plus one. Used by the
// unstable unofficial store instructions.
func highPlusOne(address uint16) uint8 {
	return uint8(address>>8) + 1
}
