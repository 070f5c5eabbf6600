// Command gones-display runs an iNES ROM and renders it with Ebitengine,
// driving the emulator core on its own goroutine the way a host front-end
// is expected to (spec.md 5): Draw only ever reads the PPU's last
// completed frame, never blocking on the CPU/PPU goroutine.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gones-core/gones/nes"
)

const windowScale = 3

type game struct {
	emu    *nes.Emulator
	img    *ebiten.Image
	pix    []byte
	paused bool
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
		if g.paused {
			g.emu.Pause()
		} else {
			g.emu.Resume()
		}
	}

	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	frame := g.emu.LastFrame()
	for i, p := range frame.Pix {
		o := i * 4
		g.pix[o+0] = byte(p >> 16)
		g.pix[o+1] = byte(p >> 8)
		g.pix[o+2] = byte(p)
		g.pix[o+3] = byte(p >> 24)
	}
	g.img.WritePixels(g.pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(windowScale, windowScale)
	screen.DrawImage(g.img, op)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return nes.ScreenWidth * windowScale, nes.ScreenHeight * windowScale
}

func main() {
	romPath := flag.String("rom", "", "path to an iNES ROM image")
	flag.Parse()

	if *romPath == "" {
		log.Fatal("gones-display: -rom is required")
	}

	emu := nes.NewEmulator()
	if err := emu.LoadPath(*romPath); err != nil {
		log.Fatalf("gones-display: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go emu.Run(ctx)

	g := &game{
		emu: emu,
		img: ebiten.NewImage(nes.ScreenWidth, nes.ScreenHeight),
		pix: make([]byte, nes.ScreenWidth*nes.ScreenHeight*4),
	}

	ebiten.SetWindowTitle("gones")
	ebiten.SetWindowSize(nes.ScreenWidth*windowScale, nes.ScreenHeight*windowScale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
