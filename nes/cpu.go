package nes

import "sync/atomic"

// Processor status flags, bit 0 upward: C Z I D B U V N.
//
// https://www.nesdev.org/obelisk-6502-guide/registers.html
const (
	flagCarry      byte = 1 << 0
	flagZero       byte = 1 << 1
	flagInterrupt  byte = 1 << 2
	flagDecimal    byte = 1 << 3 // ignored by ADC/SBC on the 2A03; SED/CLD still toggle it
	flagBreak      byte = 1 << 4
	flagUnused     byte = 1 << 5
	flagOverflow   byte = 1 << 6
	flagNegative   byte = 1 << 7
)

const (
	stackBase  uint16 = 0x0100
	vectorNMI  uint16 = 0xFFFA
	vectorRST  uint16 = 0xFFFC
	vectorIRQ  uint16 = 0xFFFE
)

// CPU is a NMOS 6502 (2A03) core: official opcodes plus the documented
// illegal set, stack/interrupt discipline, and a nestest-compatible trace.
type CPU struct {
	A, X, Y byte
	PC      uint16
	SP      byte
	P       byte

	Cycles uint64

	bus *Bus

	halted atomic.Bool
	paused atomic.Bool

	// lastX fields back the trace formatter: the PC, opcode, operand bytes,
	// register file, and cycle count as they stood immediately before the
	// most recently dispatched instruction ran (nestest's trace convention).
	lastPC      uint16
	lastOpcode  byte
	lastOperand [2]byte
	lastSize    int
	lastCycles  uint64
	lastA, lastX, lastY, lastP, lastSP byte
	lastDisasm  string
}

// NewCPU constructs a CPU wired to bus. The CPU's registers are left zeroed
// until Reset is called.
func NewCPU(bus *Bus) *CPU {
	return &CPU{bus: bus}
}

// Reset loads PC from the reset vector, sets SP to $FD, P to I|U, and the
// cycle counter to 7, matching the documented NES power-on/reset state.
func (c *CPU) Reset() {
	c.SP = 0xFD
	c.P = flagInterrupt | flagUnused
	c.Cycles = 7
	c.PC = c.readWord(vectorRST)
	c.halted.Store(false)
}

// Halted reports whether the CPU has executed an STP (illegal KIL) opcode.
func (c *CPU) Halted() bool { return c.halted.Load() }

func (c *CPU) read(addr uint16) byte        { return c.bus.Read(addr) }
func (c *CPU) write(addr uint16, v byte)    { c.bus.Write(addr, v) }

func (c *CPU) readWord(addr uint16) uint16 {
	lo := uint16(c.read(addr))
	hi := uint16(c.read(addr + 1))
	return hi<<8 | lo
}

// readWordBugged emulates the 6502 JMP (indirect) page-wrap bug: when the
// pointer's low byte is $FF, the high byte is fetched from the start of the
// same page rather than the next page.
func (c *CPU) readWordBugged(ptr uint16) uint16 {
	lo := uint16(c.read(ptr))
	hiAddr := (ptr & 0xFF00) | uint16(byte(ptr)+1)
	hi := uint16(c.read(hiAddr))
	return hi<<8 | lo
}

func (c *CPU) push(v byte) {
	c.write(stackBase+uint16(c.SP), v)
	c.SP--
}

func (c *CPU) pull() byte {
	c.SP++
	return c.read(stackBase + uint16(c.SP))
}

func (c *CPU) pushWord(v uint16) {
	c.push(byte(v >> 8))
	c.push(byte(v))
}

func (c *CPU) pullWord() uint16 {
	lo := uint16(c.pull())
	hi := uint16(c.pull())
	return hi<<8 | lo
}

func (c *CPU) setZN(v byte) {
	if v == 0 {
		c.P |= flagZero
	} else {
		c.P &^= flagZero
	}
	if v&0x80 != 0 {
		c.P |= flagNegative
	} else {
		c.P &^= flagNegative
	}
}

func (c *CPU) setFlag(flag byte, on bool) {
	if on {
		c.P |= flag
	} else {
		c.P &^= flag
	}
}

// NMI services a non-maskable interrupt: push PC and P (B clear), set I,
// load PC from the NMI vector. Costs 7 cycles, same shape as IRQ/BRK.
func (c *CPU) nmi() {
	c.pushWord(c.PC)
	c.push((c.P | flagUnused) &^ flagBreak)
	c.P |= flagInterrupt
	c.PC = c.readWord(vectorNMI)
	c.Cycles += 7
}

// IRQ services a maskable interrupt request; a no-op while the interrupt
// disable flag is set. No component in this core raises one (APU/mapper
// IRQ sources are out of scope) but the sequence is exposed for
// completeness and testability.
func (c *CPU) IRQ() {
	if c.P&flagInterrupt != 0 {
		return
	}
	c.pushWord(c.PC)
	c.push((c.P | flagUnused) &^ flagBreak)
	c.P |= flagInterrupt
	c.PC = c.readWord(vectorIRQ)
	c.Cycles += 7
}

// Step executes exactly one instruction (after first servicing a pending
// NMI, if any) and returns the number of CPU cycles it took. The caller is
// responsible for propagating that many cycles to the bus/PPU.
func (c *CPU) Step() uint64 {
	if c.halted.Load() {
		return 0
	}

	if c.bus.PPU().TakeNMI() {
		c.nmi()
	}

	before := c.Cycles
	snapA, snapX, snapY, snapP, snapSP := c.A, c.X, c.Y, c.P, c.SP

	opcodePC := c.PC
	opcode := c.read(c.PC)
	c.PC++

	entry := &opcodeTable[opcode]

	operand0, operand1 := c.peekOperandBytes(opcodePC, entry.mode)

	addr, pageCrossed := c.resolveOperand(entry.mode)

	// Disassemble before the handler runs: nestest's trace shows register
	// and memory state as of instruction entry, and several handlers
	// (STA, INC, ...) mutate the very memory the trace's "= value"
	// annotation reads.
	c.lastDisasm = c.disassemble(entry, opcodePC, operand0, operand1, snapX, snapY)

	entry.handler(c, entry.mode, addr)

	cycles := uint64(entry.cycles)
	if entry.pageCross && pageCrossed {
		cycles++
	}
	c.Cycles += cycles
	// Taken branches add their penalty to c.Cycles inside the handler, so the
	// instruction's full cost is the counter's advance.
	cycles = c.Cycles - before

	c.lastPC = opcodePC
	c.lastOpcode = opcode
	c.lastOperand = [2]byte{operand0, operand1}
	c.lastSize = modeSize[entry.mode]
	c.lastCycles = before
	c.lastA, c.lastX, c.lastY, c.lastP, c.lastSP = snapA, snapX, snapY, snapP, snapSP

	return cycles
}

// peekOperandBytes reads up to two operand bytes without disturbing PC, for
// use by the trace formatter (resolveOperand performs the real, PC-moving
// read immediately after).
func (c *CPU) peekOperandBytes(opcodePC uint16, mode AddressingMode) (b0, b1 byte) {
	size := modeSize[mode]
	if size >= 2 {
		b0 = c.read(opcodePC + 1)
	}
	if size >= 3 {
		b1 = c.read(opcodePC + 2)
	}
	return b0, b1
}

// branch applies a taken branch's extra cycle(s): +1 for the branch itself,
// +1 more if it crosses a page.
func (c *CPU) branch(target uint16) {
	c.Cycles++
	if c.PC&0xFF00 != target&0xFF00 {
		c.Cycles++
	}
	c.PC = target
}
