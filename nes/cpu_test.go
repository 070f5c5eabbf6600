package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCPU_LDA_Immediate(t *testing.T) {
	_, cpu, _ := newTestMachine(newTestCartridge([]byte{0xA9, 0x42}), 0x8000)
	cpu.Step()
	assert.Equal(t, byte(0x42), cpu.A)
	assert.Equal(t, uint16(0x8002), cpu.PC)
	assert.Zero(t, cpu.P&flagZero)
	assert.Zero(t, cpu.P&flagNegative)
}

func TestCPU_LDA_ZeroFlag(t *testing.T) {
	_, cpu, _ := newTestMachine(newTestCartridge([]byte{0xA9, 0x00}), 0x8000)
	cpu.Step()
	assert.NotZero(t, cpu.P&flagZero)
}

func TestCPU_STA_LDA_RoundTrip(t *testing.T) {
	bus, cpu, _ := newTestMachine(newTestCartridge([]byte{
		0xA9, 0x7F, // LDA #$7F
		0x8D, 0x00, 0x03, // STA $0300
	}), 0x8000)
	cpu.Step()
	cpu.Step()
	assert.Equal(t, byte(0x7F), bus.Read(0x0300))
}

func TestCPU_AbsoluteX_PageCrossPenalty(t *testing.T) {
	_, cpu, _ := newTestMachine(newTestCartridge([]byte{
		0xA2, 0xFF, // LDX #$FF
		0xBD, 0x01, 0x03, // LDA $0301,X -> $0400, page crossed
	}), 0x8000)
	cpu.Step()
	cycles := cpu.Step()
	assert.Equal(t, uint64(5), cycles) // 4 base + 1 page-cross
}

func TestCPU_AbsoluteX_NoPageCross(t *testing.T) {
	_, cpu, _ := newTestMachine(newTestCartridge([]byte{
		0xA2, 0x01, // LDX #$01
		0xBD, 0x01, 0x03, // LDA $0301,X -> $0302, same page
	}), 0x8000)
	cpu.Step()
	cycles := cpu.Step()
	assert.Equal(t, uint64(4), cycles)
}

func TestCPU_JMP_IndirectPageWrapBug(t *testing.T) {
	bus, cpu, _ := newTestMachine(newTestCartridge([]byte{
		0x6C, 0xFF, 0x02, // JMP ($02FF)
	}), 0x8000)
	bus.Write(0x02FF, 0x00)
	bus.Write(0x0200, 0x80) // hardware bug: high byte read from $0200, not $0300
	bus.Write(0x0300, 0x12)

	cpu.Step()
	assert.Equal(t, uint16(0x8000), cpu.PC)
}

func TestCPU_BRK_RTI_RoundTrip(t *testing.T) {
	cart := newTestCartridge([]byte{
		0x00, 0x00, // BRK (+ padding byte)
	})
	cart.PRG[0x7FFE] = 0x00 // IRQ/BRK vector -> $9000
	cart.PRG[0x7FFF] = 0x90
	cart.PRG[0x1000] = 0x40 // RTI at $9000

	_, cpu, _ := newTestMachine(cart, 0x8000)
	brkAddr := cpu.PC

	cpu.Step() // BRK
	assert.Equal(t, uint16(0x9000), cpu.PC)
	assert.NotZero(t, cpu.P&flagInterrupt)

	cpu.Step() // RTI
	assert.Equal(t, brkAddr+2, cpu.PC)
}

func TestCPU_SBC_CorrectedOperandDirection(t *testing.T) {
	// 0x50 - 0x10 with carry set (no borrow) = 0x40, no borrow out (C=1).
	_, cpu, _ := newTestMachine(newTestCartridge([]byte{
		0xA9, 0x50, // LDA #$50
		0x38,       // SEC
		0xE9, 0x10, // SBC #$10
	}), 0x8000)
	cpu.Step()
	cpu.Step()
	cpu.Step()
	assert.Equal(t, byte(0x40), cpu.A)
	assert.NotZero(t, cpu.P&flagCarry)
}

func TestCPU_Branch_NotTaken(t *testing.T) {
	cart := newTestCartridge([]byte{0xD0, 0x10}) // BNE +16
	_, cpu, _ := newTestMachine(cart, 0x8000)
	cpu.P |= flagZero // BNE condition false
	cycles := cpu.Step()
	assert.Equal(t, uint64(2), cycles)
	assert.Equal(t, uint16(0x8002), cpu.PC)
}

func TestCPU_Branch_TakenSamePage(t *testing.T) {
	cart := newTestCartridge([]byte{0xD0, 0x10}) // BNE +16, from $8002 -> $8012
	_, cpu, _ := newTestMachine(cart, 0x8000)
	cpu.P &^= flagZero
	cycles := cpu.Step()
	assert.Equal(t, uint64(3), cycles)
	assert.Equal(t, uint16(0x8012), cpu.PC)
}

func TestCPU_Branch_TakenCrossesPage(t *testing.T) {
	prg := make([]byte, 0x200)
	prg[0xF0] = 0xD0 // BNE at $80F0
	prg[0xF1] = 0x20 // +32, from $80F2 -> $8112: crosses page
	cart := newTestCartridge(prg)
	_, cpu, _ := newTestMachine(cart, 0x8000)
	cpu.PC = 0x80F0
	cpu.P &^= flagZero
	cycles := cpu.Step()
	assert.Equal(t, uint64(4), cycles)
	assert.Equal(t, uint16(0x8112), cpu.PC)
}

func TestCPU_IllegalOpcode_LAX(t *testing.T) {
	bus, cpu, _ := newTestMachine(newTestCartridge([]byte{
		0xA7, 0x10, // LAX $10
	}), 0x8000)
	bus.Write(0x0010, 0x99)
	cpu.Step()
	assert.Equal(t, byte(0x99), cpu.A)
	assert.Equal(t, byte(0x99), cpu.X)
}

func TestCPU_IllegalOpcode_JAMHalts(t *testing.T) {
	_, cpu, _ := newTestMachine(newTestCartridge([]byte{0x02}), 0x8000)
	cpu.Step()
	assert.True(t, cpu.Halted())
	cycles := cpu.Step()
	assert.Zero(t, cycles)
}

func TestCPU_Reset_PowerOnState(t *testing.T) {
	_, cpu, _ := newTestMachine(newTestCartridge([]byte{0xEA}), 0x8000)
	assert.Equal(t, byte(0xFD), cpu.SP)
	assert.Equal(t, uint16(0x8000), cpu.PC)
	assert.NotZero(t, cpu.P&flagInterrupt)
	assert.NotZero(t, cpu.P&flagUnused)
}
