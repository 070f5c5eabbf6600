package nes

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// dumpOnFailure logs a deep Sdump of v if the test has already failed,
// giving a full field-by-field view of cartridge/register state without
// cluttering passing runs.
func dumpOnFailure(t *testing.T, label string, v interface{}) {
	t.Helper()
	if t.Failed() {
		t.Logf("%s:\n%s", label, spew.Sdump(v))
	}
}

// newTestCartridge builds a minimal 32KiB-PRG/8KiB-CHR-RAM cartridge for
// unit tests, with prg copied to the start of the PRG image (so resetting
// through $FFFC/$FFFD lands wherever the test wires the reset vector).
func newTestCartridge(prg []byte) *Cartridge {
	p := make([]byte, 2*prgUnit)
	copy(p, prg)
	return &Cartridge{
		PRG:       p,
		CHR:       make([]byte, chrUnit),
		Mirroring: MirrorHorizontal,
		chrIsRAM:  true,
	}
}

// newTestMachine wires a fresh Bus+CPU+PPU around cart, with the reset
// vector pointed at start and Reset already called.
func newTestMachine(cart *Cartridge, start uint16) (*Bus, *CPU, *PPU) {
	ppu := NewPPU(cart)
	bus := NewBus(ppu, cart)
	cpu := NewCPU(bus)

	cart.PRG[0x7FFC] = byte(start)
	cart.PRG[0x7FFD] = byte(start >> 8)

	cpu.Reset()
	ppu.Reset()
	return bus, cpu, ppu
}
