package nes

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmulator_LoadAndStep(t *testing.T) {
	e := NewEmulator()
	e.Load(newTestCartridge([]byte{0xA9, 0x55}))
	e.CPU().PC = 0x8000
	e.Step()
	assert.Equal(t, byte(0x55), e.CPU().A)
}

func TestEmulator_StepFrameReturnsOnHalt(t *testing.T) {
	e := NewEmulator()
	e.Load(newTestCartridge([]byte{0x02})) // JAM
	e.CPU().PC = 0x8000
	frame := e.StepFrame()
	require.NotNil(t, frame)
	assert.True(t, e.Halted())
}

func TestEmulator_PauseResume(t *testing.T) {
	e := NewEmulator()
	prg := make([]byte, 0x100)
	for i := range prg {
		prg[i] = 0xEA // NOP forever
	}
	e.Load(newTestCartridge(prg))
	e.CPU().PC = 0x8000

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	e.Pause()
	done := make(chan struct{})
	go func() {
		e.Run(ctx)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	before := e.CPU().Cycles

	e.Resume()
	time.Sleep(20 * time.Millisecond)
	after := e.CPU().Cycles
	assert.Greater(t, after, before)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not exit after context cancellation")
	}
}

func TestEmulator_TraceLine(t *testing.T) {
	e := NewEmulator()
	e.Load(newTestCartridge([]byte{0xEA}))
	e.CPU().PC = 0x8000
	e.Step()
	assert.Contains(t, e.TraceLine(), "NOP")
}
