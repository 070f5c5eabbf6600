package nes

// AddressingMode identifies one of the 6502's 13 operand-addressing forms.
type AddressingMode int

const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX
	IndirectY
	Relative
)

// modeSize is the instruction length in bytes (opcode included) for each
// addressing mode. BRK is a documented exception handled in its own opcode
// handler rather than through this table.
var modeSize = [...]int{
	Implied:     1,
	Accumulator: 1,
	Immediate:   2,
	ZeroPage:    2,
	ZeroPageX:   2,
	ZeroPageY:   2,
	Absolute:    3,
	AbsoluteX:   3,
	AbsoluteY:   3,
	Indirect:    3,
	IndirectX:   2,
	IndirectY:   2,
	Relative:    2,
}

type opcodeHandler func(c *CPU, mode AddressingMode, addr uint16)

// opcodeEntry describes one of the 256 opcode slots: its mnemonic (for the
// trace formatter), addressing mode, base cycle count, whether an indexed
// addressing-mode page cross adds one more cycle, whether it is one of the
// documented illegal opcodes, and its handler.
type opcodeEntry struct {
	mnemonic  string
	mode      AddressingMode
	cycles    byte
	pageCross bool
	illegal   bool
	handler   opcodeHandler
}

// opcodeTable is the full 256-entry NMOS 6502 instruction set: every
// official opcode plus the documented illegal/undocumented opcodes (SLO,
// RLA, SRE, RRA, SAX, LAX, DCP, ISC, ANC, ALR, ARR, AXS, LAS, XAA, AHX, SHX,
// SHY, TAS) and the JAM/KIL/STP halting opcodes.
//
// https://www.nesdev.org/wiki/CPU_unofficial_opcodes
var opcodeTable = buildOpcodeTable()

func buildOpcodeTable() [256]opcodeEntry {
	var t [256]opcodeEntry
	for i := range t {
		t[i] = opcodeEntry{mnemonic: "JAM", mode: Implied, cycles: 2, illegal: true, handler: opJAM}
	}

	set := func(op byte, mnemonic string, mode AddressingMode, cycles byte, pageCross bool, h opcodeHandler) {
		t[op] = opcodeEntry{mnemonic: mnemonic, mode: mode, cycles: cycles, pageCross: pageCross, handler: h}
	}
	setIllegal := func(op byte, mnemonic string, mode AddressingMode, cycles byte, pageCross bool, h opcodeHandler) {
		t[op] = opcodeEntry{mnemonic: mnemonic, mode: mode, cycles: cycles, pageCross: pageCross, illegal: true, handler: h}
	}

	// Load/store.
	set(0xA9, "LDA", Immediate, 2, false, opLDA)
	set(0xA5, "LDA", ZeroPage, 3, false, opLDA)
	set(0xB5, "LDA", ZeroPageX, 4, false, opLDA)
	set(0xAD, "LDA", Absolute, 4, false, opLDA)
	set(0xBD, "LDA", AbsoluteX, 4, true, opLDA)
	set(0xB9, "LDA", AbsoluteY, 4, true, opLDA)
	set(0xA1, "LDA", IndirectX, 6, false, opLDA)
	set(0xB1, "LDA", IndirectY, 5, true, opLDA)

	set(0xA2, "LDX", Immediate, 2, false, opLDX)
	set(0xA6, "LDX", ZeroPage, 3, false, opLDX)
	set(0xB6, "LDX", ZeroPageY, 4, false, opLDX)
	set(0xAE, "LDX", Absolute, 4, false, opLDX)
	set(0xBE, "LDX", AbsoluteY, 4, true, opLDX)

	set(0xA0, "LDY", Immediate, 2, false, opLDY)
	set(0xA4, "LDY", ZeroPage, 3, false, opLDY)
	set(0xB4, "LDY", ZeroPageX, 4, false, opLDY)
	set(0xAC, "LDY", Absolute, 4, false, opLDY)
	set(0xBC, "LDY", AbsoluteX, 4, true, opLDY)

	set(0x85, "STA", ZeroPage, 3, false, opSTA)
	set(0x95, "STA", ZeroPageX, 4, false, opSTA)
	set(0x8D, "STA", Absolute, 4, false, opSTA)
	set(0x9D, "STA", AbsoluteX, 5, false, opSTA)
	set(0x99, "STA", AbsoluteY, 5, false, opSTA)
	set(0x81, "STA", IndirectX, 6, false, opSTA)
	set(0x91, "STA", IndirectY, 6, false, opSTA)

	set(0x86, "STX", ZeroPage, 3, false, opSTX)
	set(0x96, "STX", ZeroPageY, 4, false, opSTX)
	set(0x8E, "STX", Absolute, 4, false, opSTX)

	set(0x84, "STY", ZeroPage, 3, false, opSTY)
	set(0x94, "STY", ZeroPageX, 4, false, opSTY)
	set(0x8C, "STY", Absolute, 4, false, opSTY)

	// Transfers.
	set(0xAA, "TAX", Implied, 2, false, opTAX)
	set(0xA8, "TAY", Implied, 2, false, opTAY)
	set(0xBA, "TSX", Implied, 2, false, opTSX)
	set(0x8A, "TXA", Implied, 2, false, opTXA)
	set(0x9A, "TXS", Implied, 2, false, opTXS)
	set(0x98, "TYA", Implied, 2, false, opTYA)

	// Stack.
	set(0x48, "PHA", Implied, 3, false, opPHA)
	set(0x08, "PHP", Implied, 3, false, opPHP)
	set(0x68, "PLA", Implied, 4, false, opPLA)
	set(0x28, "PLP", Implied, 4, false, opPLP)

	// Logic/arithmetic.
	set(0x29, "AND", Immediate, 2, false, opAND)
	set(0x25, "AND", ZeroPage, 3, false, opAND)
	set(0x35, "AND", ZeroPageX, 4, false, opAND)
	set(0x2D, "AND", Absolute, 4, false, opAND)
	set(0x3D, "AND", AbsoluteX, 4, true, opAND)
	set(0x39, "AND", AbsoluteY, 4, true, opAND)
	set(0x21, "AND", IndirectX, 6, false, opAND)
	set(0x31, "AND", IndirectY, 5, true, opAND)

	set(0x49, "EOR", Immediate, 2, false, opEOR)
	set(0x45, "EOR", ZeroPage, 3, false, opEOR)
	set(0x55, "EOR", ZeroPageX, 4, false, opEOR)
	set(0x4D, "EOR", Absolute, 4, false, opEOR)
	set(0x5D, "EOR", AbsoluteX, 4, true, opEOR)
	set(0x59, "EOR", AbsoluteY, 4, true, opEOR)
	set(0x41, "EOR", IndirectX, 6, false, opEOR)
	set(0x51, "EOR", IndirectY, 5, true, opEOR)

	set(0x09, "ORA", Immediate, 2, false, opORA)
	set(0x05, "ORA", ZeroPage, 3, false, opORA)
	set(0x15, "ORA", ZeroPageX, 4, false, opORA)
	set(0x0D, "ORA", Absolute, 4, false, opORA)
	set(0x1D, "ORA", AbsoluteX, 4, true, opORA)
	set(0x19, "ORA", AbsoluteY, 4, true, opORA)
	set(0x01, "ORA", IndirectX, 6, false, opORA)
	set(0x11, "ORA", IndirectY, 5, true, opORA)

	set(0x69, "ADC", Immediate, 2, false, opADC)
	set(0x65, "ADC", ZeroPage, 3, false, opADC)
	set(0x75, "ADC", ZeroPageX, 4, false, opADC)
	set(0x6D, "ADC", Absolute, 4, false, opADC)
	set(0x7D, "ADC", AbsoluteX, 4, true, opADC)
	set(0x79, "ADC", AbsoluteY, 4, true, opADC)
	set(0x61, "ADC", IndirectX, 6, false, opADC)
	set(0x71, "ADC", IndirectY, 5, true, opADC)

	set(0xE9, "SBC", Immediate, 2, false, opSBC)
	set(0xE5, "SBC", ZeroPage, 3, false, opSBC)
	set(0xF5, "SBC", ZeroPageX, 4, false, opSBC)
	set(0xED, "SBC", Absolute, 4, false, opSBC)
	set(0xFD, "SBC", AbsoluteX, 4, true, opSBC)
	set(0xF9, "SBC", AbsoluteY, 4, true, opSBC)
	set(0xE1, "SBC", IndirectX, 6, false, opSBC)
	set(0xF1, "SBC", IndirectY, 5, true, opSBC)
	setIllegal(0xEB, "SBC", Immediate, 2, false, opSBC) // undocumented dup of $E9

	set(0xC9, "CMP", Immediate, 2, false, opCMP)
	set(0xC5, "CMP", ZeroPage, 3, false, opCMP)
	set(0xD5, "CMP", ZeroPageX, 4, false, opCMP)
	set(0xCD, "CMP", Absolute, 4, false, opCMP)
	set(0xDD, "CMP", AbsoluteX, 4, true, opCMP)
	set(0xD9, "CMP", AbsoluteY, 4, true, opCMP)
	set(0xC1, "CMP", IndirectX, 6, false, opCMP)
	set(0xD1, "CMP", IndirectY, 5, true, opCMP)

	set(0xE0, "CPX", Immediate, 2, false, opCPX)
	set(0xE4, "CPX", ZeroPage, 3, false, opCPX)
	set(0xEC, "CPX", Absolute, 4, false, opCPX)

	set(0xC0, "CPY", Immediate, 2, false, opCPY)
	set(0xC4, "CPY", ZeroPage, 3, false, opCPY)
	set(0xCC, "CPY", Absolute, 4, false, opCPY)

	set(0x24, "BIT", ZeroPage, 3, false, opBIT)
	set(0x2C, "BIT", Absolute, 4, false, opBIT)

	// Increment/decrement.
	set(0xE6, "INC", ZeroPage, 5, false, opINC)
	set(0xF6, "INC", ZeroPageX, 6, false, opINC)
	set(0xEE, "INC", Absolute, 6, false, opINC)
	set(0xFE, "INC", AbsoluteX, 7, false, opINC)

	set(0xC6, "DEC", ZeroPage, 5, false, opDEC)
	set(0xD6, "DEC", ZeroPageX, 6, false, opDEC)
	set(0xCE, "DEC", Absolute, 6, false, opDEC)
	set(0xDE, "DEC", AbsoluteX, 7, false, opDEC)

	set(0xE8, "INX", Implied, 2, false, opINX)
	set(0xC8, "INY", Implied, 2, false, opINY)
	set(0xCA, "DEX", Implied, 2, false, opDEX)
	set(0x88, "DEY", Implied, 2, false, opDEY)

	// Shifts/rotates.
	set(0x0A, "ASL", Accumulator, 2, false, opASL)
	set(0x06, "ASL", ZeroPage, 5, false, opASL)
	set(0x16, "ASL", ZeroPageX, 6, false, opASL)
	set(0x0E, "ASL", Absolute, 6, false, opASL)
	set(0x1E, "ASL", AbsoluteX, 7, false, opASL)

	set(0x4A, "LSR", Accumulator, 2, false, opLSR)
	set(0x46, "LSR", ZeroPage, 5, false, opLSR)
	set(0x56, "LSR", ZeroPageX, 6, false, opLSR)
	set(0x4E, "LSR", Absolute, 6, false, opLSR)
	set(0x5E, "LSR", AbsoluteX, 7, false, opLSR)

	set(0x2A, "ROL", Accumulator, 2, false, opROL)
	set(0x26, "ROL", ZeroPage, 5, false, opROL)
	set(0x36, "ROL", ZeroPageX, 6, false, opROL)
	set(0x2E, "ROL", Absolute, 6, false, opROL)
	set(0x3E, "ROL", AbsoluteX, 7, false, opROL)

	set(0x6A, "ROR", Accumulator, 2, false, opROR)
	set(0x66, "ROR", ZeroPage, 5, false, opROR)
	set(0x76, "ROR", ZeroPageX, 6, false, opROR)
	set(0x6E, "ROR", Absolute, 6, false, opROR)
	set(0x7E, "ROR", AbsoluteX, 7, false, opROR)

	// Jumps/calls.
	set(0x4C, "JMP", Absolute, 3, false, opJMP)
	set(0x6C, "JMP", Indirect, 5, false, opJMP)
	set(0x20, "JSR", Absolute, 6, false, opJSR)
	set(0x60, "RTS", Implied, 6, false, opRTS)

	// Branches.
	set(0x90, "BCC", Relative, 2, false, opBCC)
	set(0xB0, "BCS", Relative, 2, false, opBCS)
	set(0xF0, "BEQ", Relative, 2, false, opBEQ)
	set(0x30, "BMI", Relative, 2, false, opBMI)
	set(0xD0, "BNE", Relative, 2, false, opBNE)
	set(0x10, "BPL", Relative, 2, false, opBPL)
	set(0x50, "BVC", Relative, 2, false, opBVC)
	set(0x70, "BVS", Relative, 2, false, opBVS)

	// Status flags.
	set(0x18, "CLC", Implied, 2, false, opCLC)
	set(0xD8, "CLD", Implied, 2, false, opCLD)
	set(0x58, "CLI", Implied, 2, false, opCLI)
	set(0xB8, "CLV", Implied, 2, false, opCLV)
	set(0x38, "SEC", Implied, 2, false, opSEC)
	set(0xF8, "SED", Implied, 2, false, opSED)
	set(0x78, "SEI", Implied, 2, false, opSEI)

	// System.
	set(0x00, "BRK", Implied, 7, false, opBRK)
	set(0x40, "RTI", Implied, 6, false, opRTI)
	set(0xEA, "NOP", Implied, 2, false, opNOP)

	// Documented illegal/undocumented opcodes.
	for _, op := range []byte{0x1A, 0x3A, 0x5A, 0x7A, 0xDA, 0xFA} {
		setIllegal(op, "NOP", Implied, 2, false, opNOP)
	}
	for _, op := range []byte{0x80, 0x82, 0x89, 0xC2, 0xE2} {
		setIllegal(op, "NOP", Immediate, 2, false, opNOP)
	}
	setIllegal(0x04, "NOP", ZeroPage, 3, false, opNOP)
	setIllegal(0x44, "NOP", ZeroPage, 3, false, opNOP)
	setIllegal(0x64, "NOP", ZeroPage, 3, false, opNOP)
	for _, op := range []byte{0x14, 0x34, 0x54, 0x74, 0xD4, 0xF4} {
		setIllegal(op, "NOP", ZeroPageX, 4, false, opNOP)
	}
	setIllegal(0x0C, "NOP", Absolute, 4, false, opNOP)
	for _, op := range []byte{0x1C, 0x3C, 0x5C, 0x7C, 0xDC, 0xFC} {
		setIllegal(op, "NOP", AbsoluteX, 4, true, opNOP)
	}

	for _, op := range []byte{0x02, 0x12, 0x22, 0x32, 0x42, 0x52, 0x62, 0x72, 0x92, 0xB2, 0xD2, 0xF2} {
		setIllegal(op, "JAM", Implied, 2, false, opJAM)
	}

	setIllegal(0x07, "SLO", ZeroPage, 5, false, opSLO)
	setIllegal(0x17, "SLO", ZeroPageX, 6, false, opSLO)
	setIllegal(0x0F, "SLO", Absolute, 6, false, opSLO)
	setIllegal(0x1F, "SLO", AbsoluteX, 7, false, opSLO)
	setIllegal(0x1B, "SLO", AbsoluteY, 7, false, opSLO)
	setIllegal(0x03, "SLO", IndirectX, 8, false, opSLO)
	setIllegal(0x13, "SLO", IndirectY, 8, false, opSLO)

	setIllegal(0x27, "RLA", ZeroPage, 5, false, opRLA)
	setIllegal(0x37, "RLA", ZeroPageX, 6, false, opRLA)
	setIllegal(0x2F, "RLA", Absolute, 6, false, opRLA)
	setIllegal(0x3F, "RLA", AbsoluteX, 7, false, opRLA)
	setIllegal(0x3B, "RLA", AbsoluteY, 7, false, opRLA)
	setIllegal(0x23, "RLA", IndirectX, 8, false, opRLA)
	setIllegal(0x33, "RLA", IndirectY, 8, false, opRLA)

	setIllegal(0x47, "SRE", ZeroPage, 5, false, opSRE)
	setIllegal(0x57, "SRE", ZeroPageX, 6, false, opSRE)
	setIllegal(0x4F, "SRE", Absolute, 6, false, opSRE)
	setIllegal(0x5F, "SRE", AbsoluteX, 7, false, opSRE)
	setIllegal(0x5B, "SRE", AbsoluteY, 7, false, opSRE)
	setIllegal(0x43, "SRE", IndirectX, 8, false, opSRE)
	setIllegal(0x53, "SRE", IndirectY, 8, false, opSRE)

	setIllegal(0x67, "RRA", ZeroPage, 5, false, opRRA)
	setIllegal(0x77, "RRA", ZeroPageX, 6, false, opRRA)
	setIllegal(0x6F, "RRA", Absolute, 6, false, opRRA)
	setIllegal(0x7F, "RRA", AbsoluteX, 7, false, opRRA)
	setIllegal(0x7B, "RRA", AbsoluteY, 7, false, opRRA)
	setIllegal(0x63, "RRA", IndirectX, 8, false, opRRA)
	setIllegal(0x73, "RRA", IndirectY, 8, false, opRRA)

	setIllegal(0x87, "SAX", ZeroPage, 3, false, opSAX)
	setIllegal(0x97, "SAX", ZeroPageY, 4, false, opSAX)
	setIllegal(0x8F, "SAX", Absolute, 4, false, opSAX)
	setIllegal(0x83, "SAX", IndirectX, 6, false, opSAX)

	setIllegal(0xA7, "LAX", ZeroPage, 3, false, opLAX)
	setIllegal(0xB7, "LAX", ZeroPageY, 4, false, opLAX)
	setIllegal(0xAF, "LAX", Absolute, 4, false, opLAX)
	setIllegal(0xBF, "LAX", AbsoluteY, 4, true, opLAX)
	setIllegal(0xA3, "LAX", IndirectX, 6, false, opLAX)
	setIllegal(0xB3, "LAX", IndirectY, 5, true, opLAX)

	setIllegal(0xC7, "DCP", ZeroPage, 5, false, opDCP)
	setIllegal(0xD7, "DCP", ZeroPageX, 6, false, opDCP)
	setIllegal(0xCF, "DCP", Absolute, 6, false, opDCP)
	setIllegal(0xDF, "DCP", AbsoluteX, 7, false, opDCP)
	setIllegal(0xDB, "DCP", AbsoluteY, 7, false, opDCP)
	setIllegal(0xC3, "DCP", IndirectX, 8, false, opDCP)
	setIllegal(0xD3, "DCP", IndirectY, 8, false, opDCP)

	setIllegal(0xE7, "ISC", ZeroPage, 5, false, opISC)
	setIllegal(0xF7, "ISC", ZeroPageX, 6, false, opISC)
	setIllegal(0xEF, "ISC", Absolute, 6, false, opISC)
	setIllegal(0xFF, "ISC", AbsoluteX, 7, false, opISC)
	setIllegal(0xFB, "ISC", AbsoluteY, 7, false, opISC)
	setIllegal(0xE3, "ISC", IndirectX, 8, false, opISC)
	setIllegal(0xF3, "ISC", IndirectY, 8, false, opISC)

	setIllegal(0x0B, "ANC", Immediate, 2, false, opANC)
	setIllegal(0x2B, "ANC", Immediate, 2, false, opANC)
	setIllegal(0x4B, "ALR", Immediate, 2, false, opALR)
	setIllegal(0x6B, "ARR", Immediate, 2, false, opARR)
	setIllegal(0xCB, "AXS", Immediate, 2, false, opAXS)
	setIllegal(0xAB, "LXA", Immediate, 2, false, opLXA)
	setIllegal(0x8B, "XAA", Immediate, 2, false, opXAA)

	setIllegal(0xBB, "LAS", AbsoluteY, 4, true, opLAS)
	setIllegal(0x9F, "AHX", AbsoluteY, 5, false, opAHX)
	setIllegal(0x93, "AHX", IndirectY, 6, false, opAHX)
	setIllegal(0x9E, "SHX", AbsoluteY, 5, false, opSHX)
	setIllegal(0x9C, "SHY", AbsoluteX, 5, false, opSHY)
	setIllegal(0x9B, "TAS", AbsoluteY, 5, false, opTAS)

	return t
}
