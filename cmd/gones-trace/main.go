// Command gones-trace runs an iNES ROM headlessly and emits a
// nestest-compatible trace line per instruction, for golden-log comparison
// against known-good emulator traces.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/gones-core/gones/nes"
)

func main() {
	romPath := flag.String("rom", "", "path to an iNES ROM image")
	startPC := flag.Uint("pc", 0, "override the reset vector with this address (0 = use the cartridge's reset vector)")
	count := flag.Uint64("n", 0, "number of instructions to trace (0 = run until the CPU halts)")
	flag.Parse()

	if *romPath == "" {
		fmt.Fprintln(os.Stderr, "gones-trace: -rom is required")
		os.Exit(1)
	}

	if err := run(*romPath, uint16(*startPC), *count, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "gones-trace:", err)
		os.Exit(1)
	}
}

func run(romPath string, startPC uint16, count uint64, out *os.File) error {
	e := nes.NewEmulator()
	if err := e.LoadPath(romPath); err != nil {
		return err
	}
	if startPC != 0 {
		e.CPU().PC = startPC
	}

	w := bufio.NewWriter(out)
	defer w.Flush()

	var n uint64
	for !e.Halted() {
		if count != 0 && n >= count {
			break
		}
		e.Step()
		fmt.Fprintln(w, e.TraceLine())
		n++
	}
	return nil
}
