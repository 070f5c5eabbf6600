package nes

const (
	wramSize   = 0x0800 // 2KiB CPU work RAM
	wramMirror = 0x1FFF
	ioStart    = 0x4000
	ioEnd      = 0x4017
	sramStart  = 0x6000
	sramEnd    = 0x7FFF
	prgStart   = 0x8000
)

// Bus is the CPU address bus: it translates 16-bit CPU addresses to WRAM,
// the PPU register file, or cartridge PRG ROM, and propagates CPU cycles to
// the PPU at the fixed 1:3 ratio.
//
// https://www.nesdev.org/wiki/CPU_memory_map
type Bus struct {
	ram      [wramSize]byte
	ppu      *PPU
	cart     *Cartridge
	mirror   uint16 // PRG mirror mask: 0x3FFF (16KiB) or 0x7FFF (32KiB)
	lastRead byte   // open-bus shadow
}

// NewBus wires a Bus to a PPU and a loaded Cartridge. The PPU must already
// be constructed; the Bus does not own it.
func NewBus(ppu *PPU, cart *Cartridge) *Bus {
	b := &Bus{ppu: ppu}
	b.AttachCartridge(cart)
	return b
}

// PPU returns the bus's attached PPU, for callers (the CPU's NMI edge
// check, a host front-end's frame pump) that need direct access.
func (b *Bus) PPU() *PPU { return b.ppu }

// AttachCartridge replaces the cartridge view used for PRG reads/writes,
// e.g. on ROM reload.
func (b *Bus) AttachCartridge(cart *Cartridge) {
	b.cart = cart
	if cart != nil {
		b.mirror = cart.PRGMirrorMask()
	}
}

// Read performs a CPU-side memory read, updating the open-bus shadow on
// every successfully decoded access.
func (b *Bus) Read(addr uint16) byte {
	switch {
	case addr <= wramMirror:
		b.lastRead = b.ram[addr&0x07FF]
	case addr >= 0x2000 && addr <= 0x3FFF:
		b.lastRead = b.ppu.ReadRegister(addr & 7)
	case addr >= ioStart && addr <= ioEnd:
		// APU/IO/controller stubs: reads return 0 (not wired to the
		// open-bus shadow, matching hardware's per-register open-bus
		// behavior for these). Controller input is out of scope for
		// this core; $4016/$4017 are plain stubs like the rest of the
		// range.
		return 0
	case addr >= sramStart && addr <= sramEnd:
		// cartridge RAM stub
	case addr >= prgStart && b.cart != nil:
		b.lastRead = b.cart.PRG[(addr-prgStart)&b.mirror]
	}
	return b.lastRead
}

// Write performs a CPU-side memory write. Writes to PRG ROM and unmapped
// regions are silently dropped, matching hardware.
func (b *Bus) Write(addr uint16, v byte) {
	switch {
	case addr <= wramMirror:
		b.ram[addr&0x07FF] = v
	case addr >= 0x2000 && addr <= 0x3FFF:
		b.ppu.WriteRegister(addr&7, v)
	case addr >= ioStart && addr <= ioEnd:
		// ignored (APU/IO/controller stubs)
	case addr >= sramStart && addr <= sramEnd:
		// ignored
	case addr >= prgStart:
		// ROM: writes dropped
	}
}

// Tick does not touch the CPU cycle accumulator (the CPU advances that
// itself); its job is solely to interleave n CPU-cycles' worth of PPU ticks
// (3n PPU cycles), returning whether an NMI edge was raised during this span.
func (b *Bus) Tick(n uint64) (nmiRaised bool) {
	for i := uint64(0); i < n*3; i++ {
		if b.ppu.tick() {
			nmiRaised = true
		}
	}
	return nmiRaised
}
