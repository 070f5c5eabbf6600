package nes

import "fmt"

// Trace renders a nestest-compatible disassembly line for the instruction
// most recently executed by Step: program counter, raw opcode bytes,
// mnemonic and operand disassembly, registers, and cycle count, all as of
// the instant that instruction was fetched (not after it ran).
//
// https://www.qmtpro.com/~nes/misc/nestest.log
func (c *CPU) Trace() string {
	bytesField := formatBytes(c.lastOpcode, c.lastOperand, c.lastSize)

	return fmt.Sprintf("%04X  %s  %-31s A:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%d",
		c.lastPC, bytesField, c.lastDisasm, c.lastA, c.lastX, c.lastY, c.lastP, c.lastSP, c.lastCycles)
}

func formatBytes(opcode byte, operand [2]byte, size int) string {
	switch size {
	case 1:
		return fmt.Sprintf("%02X      ", opcode)
	case 2:
		return fmt.Sprintf("%02X %02X   ", opcode, operand[0])
	default:
		return fmt.Sprintf("%02X %02X %02X", opcode, operand[0], operand[1])
	}
}

// disassemble formats the mnemonic and operand text for entry, reading
// memory and the index registers as they stood at instruction entry (pc is
// the opcode's address, x/y are pre-execution snapshots), reproducing
// nestest's "$addr = value" annotations.
func (c *CPU) disassemble(entry *opcodeEntry, pc uint16, lo, hi, x, y byte) string {
	zp := uint16(lo)
	abs := uint16(hi)<<8 | uint16(lo)

	name := entry.mnemonic
	if entry.illegal {
		name = "*" + name
	}

	switch entry.mode {
	case Implied:
		return name

	case Accumulator:
		return name + " A"

	case Immediate:
		return fmt.Sprintf("%s #$%02X", name, lo)

	case ZeroPage:
		return fmt.Sprintf("%s $%02X = %02X", name, zp, c.read(zp))

	case ZeroPageX:
		eff := byte(lo + x)
		return fmt.Sprintf("%s $%02X,X @ %02X = %02X", name, zp, eff, c.read(uint16(eff)))

	case ZeroPageY:
		eff := byte(lo + y)
		return fmt.Sprintf("%s $%02X,Y @ %02X = %02X", name, zp, eff, c.read(uint16(eff)))

	case Absolute:
		if entry.mnemonic == "JMP" || entry.mnemonic == "JSR" {
			return fmt.Sprintf("%s $%04X", name, abs)
		}
		return fmt.Sprintf("%s $%04X = %02X", name, abs, c.read(abs))

	case AbsoluteX:
		eff := abs + uint16(x)
		return fmt.Sprintf("%s $%04X,X @ %04X = %02X", name, abs, eff, c.read(eff))

	case AbsoluteY:
		eff := abs + uint16(y)
		return fmt.Sprintf("%s $%04X,Y @ %04X = %02X", name, abs, eff, c.read(eff))

	case Indirect:
		return fmt.Sprintf("%s ($%04X) = %04X", name, abs, c.readWordBugged(abs))

	case IndirectX:
		ptr := lo + x
		effLo := uint16(c.read(uint16(ptr)))
		effHi := uint16(c.read(uint16(ptr + 1)))
		eff := effHi<<8 | effLo
		return fmt.Sprintf("%s ($%02X,X) @ %02X = %04X = %02X", name, zp, ptr, eff, c.read(eff))

	case IndirectY:
		baseLo := uint16(c.read(zp))
		baseHi := uint16(c.read(uint16(lo + 1)))
		base := baseHi<<8 | baseLo
		eff := base + uint16(y)
		return fmt.Sprintf("%s ($%02X),Y = %04X @ %04X = %02X", name, zp, base, eff, c.read(eff))

	case Relative:
		target := uint16(int32(pc) + 2 + int32(int8(lo)))
		return fmt.Sprintf("%s $%04X", name, target)
	}

	return name
}
