package nes

// resolveOperand computes the effective address for mode, advancing PC past
// any operand bytes the mode consumes, and reports whether an indexed
// addressing mode crossed a page boundary. Implied and Accumulator modes
// return (0, false) and touch neither PC nor memory.
func (c *CPU) resolveOperand(mode AddressingMode) (addr uint16, pageCrossed bool) {
	switch mode {
	case Implied, Accumulator:
		return 0, false

	case Immediate:
		addr = c.PC
		c.PC++
		return addr, false

	case ZeroPage:
		addr = uint16(c.read(c.PC))
		c.PC++
		return addr, false

	case ZeroPageX:
		zp := c.read(c.PC)
		c.PC++
		return uint16(zp + c.X), false

	case ZeroPageY:
		zp := c.read(c.PC)
		c.PC++
		return uint16(zp + c.Y), false

	case Absolute:
		lo := uint16(c.read(c.PC))
		hi := uint16(c.read(c.PC + 1))
		c.PC += 2
		return hi<<8 | lo, false

	case AbsoluteX:
		lo := uint16(c.read(c.PC))
		hi := uint16(c.read(c.PC + 1))
		c.PC += 2
		base := hi<<8 | lo
		addr = base + uint16(c.X)
		return addr, base&0xFF00 != addr&0xFF00

	case AbsoluteY:
		lo := uint16(c.read(c.PC))
		hi := uint16(c.read(c.PC + 1))
		c.PC += 2
		base := hi<<8 | lo
		addr = base + uint16(c.Y)
		return addr, base&0xFF00 != addr&0xFF00

	case Indirect:
		lo := uint16(c.read(c.PC))
		hi := uint16(c.read(c.PC + 1))
		c.PC += 2
		ptr := hi<<8 | lo
		return c.readWordBugged(ptr), false

	case IndirectX:
		zp := c.read(c.PC)
		c.PC++
		ptr := zp + c.X
		lo := uint16(c.read(uint16(ptr)))
		hi := uint16(c.read(uint16(ptr + 1)))
		return hi<<8 | lo, false

	case IndirectY:
		zp := c.read(c.PC)
		c.PC++
		lo := uint16(c.read(uint16(zp)))
		hi := uint16(c.read(uint16(zp + 1)))
		base := hi<<8 | lo
		addr = base + uint16(c.Y)
		return addr, base&0xFF00 != addr&0xFF00

	case Relative:
		offset := int8(c.read(c.PC))
		c.PC++
		return uint16(int32(c.PC) + int32(offset)), false
	}
	return 0, false
}

// operand fetches the byte addressed by a resolved addr/mode pair, reading
// the accumulator directly for Accumulator-mode RMW instructions.
func (c *CPU) operand(mode AddressingMode, addr uint16) byte {
	if mode == Accumulator {
		return c.A
	}
	return c.read(addr)
}

func (c *CPU) storeResult(mode AddressingMode, addr uint16, v byte) {
	if mode == Accumulator {
		c.A = v
		return
	}
	c.write(addr, v)
}

// --- load/store ---

func opLDA(c *CPU, mode AddressingMode, addr uint16) { c.A = c.read(addr); c.setZN(c.A) }
func opLDX(c *CPU, mode AddressingMode, addr uint16) { c.X = c.read(addr); c.setZN(c.X) }
func opLDY(c *CPU, mode AddressingMode, addr uint16) { c.Y = c.read(addr); c.setZN(c.Y) }
func opSTA(c *CPU, mode AddressingMode, addr uint16) { c.write(addr, c.A) }
func opSTX(c *CPU, mode AddressingMode, addr uint16) { c.write(addr, c.X) }
func opSTY(c *CPU, mode AddressingMode, addr uint16) { c.write(addr, c.Y) }

// --- transfers ---

func opTAX(c *CPU, mode AddressingMode, addr uint16) { c.X = c.A; c.setZN(c.X) }
func opTAY(c *CPU, mode AddressingMode, addr uint16) { c.Y = c.A; c.setZN(c.Y) }
func opTSX(c *CPU, mode AddressingMode, addr uint16) { c.X = c.SP; c.setZN(c.X) }
func opTXA(c *CPU, mode AddressingMode, addr uint16) { c.A = c.X; c.setZN(c.A) }
func opTXS(c *CPU, mode AddressingMode, addr uint16) { c.SP = c.X }
func opTYA(c *CPU, mode AddressingMode, addr uint16) { c.A = c.Y; c.setZN(c.A) }

// --- stack ---

func opPHA(c *CPU, mode AddressingMode, addr uint16) { c.push(c.A) }
func opPHP(c *CPU, mode AddressingMode, addr uint16) { c.push(c.P | flagUnused | flagBreak) }
func opPLA(c *CPU, mode AddressingMode, addr uint16) { c.A = c.pull(); c.setZN(c.A) }
func opPLP(c *CPU, mode AddressingMode, addr uint16) {
	c.P = (c.pull() &^ flagBreak) | flagUnused
}

// --- ALU helpers ---

func (c *CPU) doAdc(value byte) {
	carryIn := uint16(0)
	if c.P&flagCarry != 0 {
		carryIn = 1
	}
	sum := uint16(c.A) + uint16(value) + carryIn
	result := byte(sum)
	c.setFlag(flagCarry, sum > 0xFF)
	c.setFlag(flagOverflow, (c.A^value)&0x80 == 0 && (c.A^result)&0x80 != 0)
	c.A = result
	c.setZN(c.A)
}

// doSbc implements A - M - (1-C) as A + ~M + C, per the corrected operand
// direction (the complement is taken of the fetched value, not its address).
func (c *CPU) doSbc(value byte) { c.doAdc(^value) }

func (c *CPU) doCompare(reg, value byte) {
	result := reg - value
	c.setFlag(flagCarry, reg >= value)
	c.setZN(result)
}

func (c *CPU) doAsl(v byte) byte {
	c.setFlag(flagCarry, v&0x80 != 0)
	result := v << 1
	c.setZN(result)
	return result
}

func (c *CPU) doLsr(v byte) byte {
	c.setFlag(flagCarry, v&0x01 != 0)
	result := v >> 1
	c.setZN(result)
	return result
}

func (c *CPU) doRol(v byte) byte {
	carryIn := byte(0)
	if c.P&flagCarry != 0 {
		carryIn = 1
	}
	c.setFlag(flagCarry, v&0x80 != 0)
	result := v<<1 | carryIn
	c.setZN(result)
	return result
}

func (c *CPU) doRor(v byte) byte {
	carryIn := byte(0)
	if c.P&flagCarry != 0 {
		carryIn = 0x80
	}
	c.setFlag(flagCarry, v&0x01 != 0)
	result := v>>1 | carryIn
	c.setZN(result)
	return result
}

// --- logic/arithmetic ---

func opAND(c *CPU, mode AddressingMode, addr uint16) { c.A &= c.read(addr); c.setZN(c.A) }
func opEOR(c *CPU, mode AddressingMode, addr uint16) { c.A ^= c.read(addr); c.setZN(c.A) }
func opORA(c *CPU, mode AddressingMode, addr uint16) { c.A |= c.read(addr); c.setZN(c.A) }
func opADC(c *CPU, mode AddressingMode, addr uint16) { c.doAdc(c.read(addr)) }
func opSBC(c *CPU, mode AddressingMode, addr uint16) { c.doSbc(c.read(addr)) }
func opCMP(c *CPU, mode AddressingMode, addr uint16) { c.doCompare(c.A, c.read(addr)) }
func opCPX(c *CPU, mode AddressingMode, addr uint16) { c.doCompare(c.X, c.read(addr)) }
func opCPY(c *CPU, mode AddressingMode, addr uint16) { c.doCompare(c.Y, c.read(addr)) }

func opBIT(c *CPU, mode AddressingMode, addr uint16) {
	v := c.read(addr)
	c.setFlag(flagZero, c.A&v == 0)
	c.setFlag(flagOverflow, v&0x40 != 0)
	c.setFlag(flagNegative, v&0x80 != 0)
}

// --- increment/decrement ---

func opINC(c *CPU, mode AddressingMode, addr uint16) {
	v := c.read(addr) + 1
	c.write(addr, v)
	c.setZN(v)
}

func opDEC(c *CPU, mode AddressingMode, addr uint16) {
	v := c.read(addr) - 1
	c.write(addr, v)
	c.setZN(v)
}

func opINX(c *CPU, mode AddressingMode, addr uint16) { c.X++; c.setZN(c.X) }
func opINY(c *CPU, mode AddressingMode, addr uint16) { c.Y++; c.setZN(c.Y) }
func opDEX(c *CPU, mode AddressingMode, addr uint16) { c.X--; c.setZN(c.X) }
func opDEY(c *CPU, mode AddressingMode, addr uint16) { c.Y--; c.setZN(c.Y) }

// --- shifts/rotates ---

func opASL(c *CPU, mode AddressingMode, addr uint16) {
	c.storeResult(mode, addr, c.doAsl(c.operand(mode, addr)))
}
func opLSR(c *CPU, mode AddressingMode, addr uint16) {
	c.storeResult(mode, addr, c.doLsr(c.operand(mode, addr)))
}
func opROL(c *CPU, mode AddressingMode, addr uint16) {
	c.storeResult(mode, addr, c.doRol(c.operand(mode, addr)))
}
func opROR(c *CPU, mode AddressingMode, addr uint16) {
	c.storeResult(mode, addr, c.doRor(c.operand(mode, addr)))
}

// --- jumps/calls ---

func opJMP(c *CPU, mode AddressingMode, addr uint16) { c.PC = addr }

func opJSR(c *CPU, mode AddressingMode, addr uint16) {
	c.pushWord(c.PC - 1)
	c.PC = addr
}

func opRTS(c *CPU, mode AddressingMode, addr uint16) { c.PC = c.pullWord() + 1 }

// --- branches ---

func opBCC(c *CPU, mode AddressingMode, addr uint16) {
	if c.P&flagCarry == 0 {
		c.branch(addr)
	}
}
func opBCS(c *CPU, mode AddressingMode, addr uint16) {
	if c.P&flagCarry != 0 {
		c.branch(addr)
	}
}
func opBEQ(c *CPU, mode AddressingMode, addr uint16) {
	if c.P&flagZero != 0 {
		c.branch(addr)
	}
}
func opBMI(c *CPU, mode AddressingMode, addr uint16) {
	if c.P&flagNegative != 0 {
		c.branch(addr)
	}
}
func opBNE(c *CPU, mode AddressingMode, addr uint16) {
	if c.P&flagZero == 0 {
		c.branch(addr)
	}
}
func opBPL(c *CPU, mode AddressingMode, addr uint16) {
	if c.P&flagNegative == 0 {
		c.branch(addr)
	}
}
func opBVC(c *CPU, mode AddressingMode, addr uint16) {
	if c.P&flagOverflow == 0 {
		c.branch(addr)
	}
}
func opBVS(c *CPU, mode AddressingMode, addr uint16) {
	if c.P&flagOverflow != 0 {
		c.branch(addr)
	}
}

// --- status flags ---

func opCLC(c *CPU, mode AddressingMode, addr uint16) { c.P &^= flagCarry }
func opCLD(c *CPU, mode AddressingMode, addr uint16) { c.P &^= flagDecimal }
func opCLI(c *CPU, mode AddressingMode, addr uint16) { c.P &^= flagInterrupt }
func opCLV(c *CPU, mode AddressingMode, addr uint16) { c.P &^= flagOverflow }
func opSEC(c *CPU, mode AddressingMode, addr uint16) { c.P |= flagCarry }
func opSED(c *CPU, mode AddressingMode, addr uint16) { c.P |= flagDecimal }
func opSEI(c *CPU, mode AddressingMode, addr uint16) { c.P |= flagInterrupt }

// --- system ---

func opBRK(c *CPU, mode AddressingMode, addr uint16) {
	c.pushWord(c.PC + 1)
	c.push(c.P | flagUnused | flagBreak)
	c.P |= flagInterrupt
	c.PC = c.readWord(vectorIRQ)
}

func opRTI(c *CPU, mode AddressingMode, addr uint16) {
	c.P = (c.pull() &^ flagBreak) | flagUnused
	c.PC = c.pullWord()
}

func opNOP(c *CPU, mode AddressingMode, addr uint16) {
	if mode != Implied {
		c.read(addr) // documented NOPs still perform the dummy read
	}
}

func opJAM(c *CPU, mode AddressingMode, addr uint16) { c.halted.Store(true) }

// --- documented illegal opcodes ---

func opSLO(c *CPU, mode AddressingMode, addr uint16) {
	v := c.doAsl(c.read(addr))
	c.write(addr, v)
	c.A |= v
	c.setZN(c.A)
}

func opRLA(c *CPU, mode AddressingMode, addr uint16) {
	v := c.doRol(c.read(addr))
	c.write(addr, v)
	c.A &= v
	c.setZN(c.A)
}

func opSRE(c *CPU, mode AddressingMode, addr uint16) {
	v := c.doLsr(c.read(addr))
	c.write(addr, v)
	c.A ^= v
	c.setZN(c.A)
}

func opRRA(c *CPU, mode AddressingMode, addr uint16) {
	v := c.doRor(c.read(addr))
	c.write(addr, v)
	c.doAdc(v)
}

func opSAX(c *CPU, mode AddressingMode, addr uint16) { c.write(addr, c.A&c.X) }

func opLAX(c *CPU, mode AddressingMode, addr uint16) {
	v := c.read(addr)
	c.A = v
	c.X = v
	c.setZN(v)
}

func opDCP(c *CPU, mode AddressingMode, addr uint16) {
	v := c.read(addr) - 1
	c.write(addr, v)
	c.doCompare(c.A, v)
}

func opISC(c *CPU, mode AddressingMode, addr uint16) {
	v := c.read(addr) + 1
	c.write(addr, v)
	c.doSbc(v)
}

func opANC(c *CPU, mode AddressingMode, addr uint16) {
	c.A &= c.read(addr)
	c.setZN(c.A)
	c.setFlag(flagCarry, c.A&0x80 != 0)
}

func opALR(c *CPU, mode AddressingMode, addr uint16) {
	c.A &= c.read(addr)
	c.A = c.doLsr(c.A)
}

func opARR(c *CPU, mode AddressingMode, addr uint16) {
	c.A &= c.read(addr)
	c.A = c.doRor(c.A)
	bit6 := c.A&0x40 != 0
	bit5 := c.A&0x20 != 0
	c.setFlag(flagCarry, bit6)
	c.setFlag(flagOverflow, bit6 != bit5)
}

func opAXS(c *CPU, mode AddressingMode, addr uint16) {
	v := c.read(addr)
	and := c.A & c.X
	result := and - v
	c.setFlag(flagCarry, and >= v)
	c.X = result
	c.setZN(c.X)
}

func opLXA(c *CPU, mode AddressingMode, addr uint16) {
	v := c.read(addr)
	c.A = v
	c.X = v
	c.setZN(v)
}

// opXAA (ANE) depends on unstable analog constant behavior on real
// hardware; this implements the commonly cited A = (A | $EE) & X & #imm
// approximation.
func opXAA(c *CPU, mode AddressingMode, addr uint16) {
	c.A = (c.A | 0xEE) & c.X & c.read(addr)
	c.setZN(c.A)
}

func opLAS(c *CPU, mode AddressingMode, addr uint16) {
	v := c.read(addr) & c.SP
	c.A, c.X, c.SP = v, v, v
	c.setZN(v)
}

// opAHX (SHA/AXA) stores A&X&(high byte of addr+1); unstable on real
// hardware across page-crossing boundary conditions, implemented here with
// the commonly documented approximation.
func opAHX(c *CPU, mode AddressingMode, addr uint16) {
	c.write(addr, c.A&c.X&byte(addr>>8+1))
}

func opSHX(c *CPU, mode AddressingMode, addr uint16) {
	c.write(addr, c.X&byte(addr>>8+1))
}

func opSHY(c *CPU, mode AddressingMode, addr uint16) {
	c.write(addr, c.Y&byte(addr>>8+1))
}

func opTAS(c *CPU, mode AddressingMode, addr uint16) {
	c.SP = c.A & c.X
	c.write(addr, c.SP&byte(addr>>8+1))
}
