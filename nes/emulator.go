package nes

import (
	"context"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
)

// Emulator drives a Cartridge/Bus/CPU/PPU triple as a single unit: load,
// reset, single-step, and free-run, with pause/resume control suitable for
// a host front-end running the core on its own goroutine.
type Emulator struct {
	cart *Cartridge
	bus  *Bus
	cpu  *CPU
	ppu  *PPU

	paused atomic.Bool
	resume chan struct{} // unused: a blocked Run loop is woken through cv

	mu sync.Mutex
	cv *sync.Cond
}

// NewEmulator constructs an Emulator with no cartridge loaded. Load or
// LoadPath must be called before Step/Run will do anything useful.
func NewEmulator() *Emulator {
	e := &Emulator{}
	e.cv = sync.NewCond(&e.mu)
	return e
}

// LoadPath reads an iNES image from disk and loads it.
func (e *Emulator) LoadPath(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("nes: open rom: %w", err)
	}
	defer f.Close()

	cart, err := LoadINES(f)
	if err != nil {
		return fmt.Errorf("nes: load rom %s: %w", path, err)
	}
	e.load(cart)
	return nil
}

// Load installs an already-parsed Cartridge and resets the machine.
func (e *Emulator) Load(cart *Cartridge) {
	e.load(cart)
}

func (e *Emulator) load(cart *Cartridge) {
	e.cart = cart
	e.ppu = NewPPU(cart)
	e.bus = NewBus(e.ppu, cart)
	e.cpu = NewCPU(e.bus)
	e.Reset()
}

// Reset returns the CPU and PPU to their post-reset state.
func (e *Emulator) Reset() {
	e.ppu.Reset()
	e.cpu.Reset()
}

// Step executes exactly one CPU instruction and propagates its cycles to
// the PPU, returning the cycle count consumed.
func (e *Emulator) Step() uint64 {
	cycles := e.cpu.Step()
	e.bus.Tick(cycles)
	return cycles
}

// StepFrame runs instructions until a PPU frame completes (or the CPU
// halts), returning the completed frame.
func (e *Emulator) StepFrame() *Frame {
	for !e.cpu.Halted() {
		if e.Step(); e.ppu.FrameReady() {
			break
		}
	}
	return e.ppu.LastFrame()
}

// Run executes instructions continuously until ctx is cancelled or the CPU
// halts, honoring Pause/Resume between instructions. Intended to run on its
// own goroutine, driven by a host front-end's frame pump.
func (e *Emulator) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if e.paused.Load() {
			e.waitForResume(ctx)
			continue
		}

		if e.cpu.Halted() {
			return
		}

		e.Step()
	}
}

func (e *Emulator) waitForResume(ctx context.Context) {
	e.mu.Lock()
	for e.paused.Load() {
		done := make(chan struct{})
		go func() {
			select {
			case <-ctx.Done():
				e.cv.Broadcast()
			case <-done:
			}
		}()
		e.cv.Wait()
		close(done)
		if ctx.Err() != nil {
			e.mu.Unlock()
			return
		}
	}
	e.mu.Unlock()
}

// Pause suspends a Run loop before its next instruction.
func (e *Emulator) Pause() { e.paused.Store(true) }

// Resume wakes a paused Run loop.
func (e *Emulator) Resume() {
	e.mu.Lock()
	e.paused.Store(false)
	e.cv.Broadcast()
	e.mu.Unlock()
}

// Halted reports whether the CPU executed a JAM/KIL opcode.
func (e *Emulator) Halted() bool { return e.cpu.Halted() }

// LastFrame returns the most recently completed PPU frame.
func (e *Emulator) LastFrame() *Frame { return e.ppu.LastFrame() }

// TraceLine renders the nestest-format trace line for the instruction Step
// most recently executed.
func (e *Emulator) TraceLine() string { return e.cpu.Trace() }

// CPU exposes the underlying CPU for tests and trace tooling that need
// direct register access.
func (e *Emulator) CPU() *CPU { return e.cpu }

// PPU exposes the underlying PPU for tests that need direct register or
// VRAM access.
func (e *Emulator) PPU() *PPU { return e.ppu }

// Cartridge returns the currently loaded cartridge, or nil.
func (e *Emulator) Cartridge() *Cartridge { return e.cart }
