package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBus_WramMirroring(t *testing.T) {
	bus, _, _ := newTestMachine(newTestCartridge(nil), 0x8000)
	bus.Write(0x0000, 0x55)
	assert.Equal(t, byte(0x55), bus.Read(0x0800))
	assert.Equal(t, byte(0x55), bus.Read(0x1000))
	assert.Equal(t, byte(0x55), bus.Read(0x1800))
}

func TestBus_PRGMirror16K(t *testing.T) {
	cart := &Cartridge{PRG: make([]byte, prgUnit), CHR: make([]byte, chrUnit), chrIsRAM: true}
	cart.PRG[0] = 0xAB
	bus := NewBus(NewPPU(cart), cart)
	assert.Equal(t, byte(0xAB), bus.Read(0x8000))
	assert.Equal(t, byte(0xAB), bus.Read(0xC000))
}

func TestBus_ControllerRangeReadsZeroWritesIgnored(t *testing.T) {
	bus, _, _ := newTestMachine(newTestCartridge(nil), 0x8000)
	bus.Write(0x4016, 0xFF)
	bus.Write(0x4017, 0xFF)
	assert.Equal(t, byte(0), bus.Read(0x4016))
	assert.Equal(t, byte(0), bus.Read(0x4017))
}

func TestBus_TickPropagatesThreeToOne(t *testing.T) {
	bus, _, ppu := newTestMachine(newTestCartridge(nil), 0x8000)
	startScanline, startCycle := ppu.scanline, ppu.cycle
	bus.Tick(1)
	// exactly 3 PPU dots should have advanced.
	got := (ppu.scanline-startScanline)*cyclesPerScanline + (ppu.cycle - startCycle)
	assert.Equal(t, 3, got)
}
