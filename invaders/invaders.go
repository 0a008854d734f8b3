package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Brad-S1/intel-8080-cpu-emulator/cpu"
	"github.com/Brad-S1/intel-8080-cpu-emulator/graphics"
	"github.com/Brad-S1/intel-8080-cpu-emulator/input"
	"github.com/Brad-S1/intel-8080-cpu-emulator/machine"
	"github.com/Brad-S1/intel-8080-cpu-emulator/rom"
	"github.com/Brad-S1/intel-8080-cpu-emulator/sound"
)

const (
	// The screen interrupts fire every 8ms, alternating between the
	// mid-screen and vertical-blank vectors, with a fixed batch of
	// instructions executed between timer checks.
	interruptInterval    = 8 * time.Millisecond
	instructionsPerSlice = 100

	midScreenVector = 1
	vblankVector    = 2

	soundsDir = "sounds"
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s <rom-file>\n", os.Args[0])
		os.Exit(1)
	}

	if err := run(flag.Arg(0)); err != nil {
		log.Fatal(err)
	}
}

func run(romFile string) error {
	c := cpu.StartCPU()

	n, err := rom.Load(romFile, c.Memory)
	if err != nil {
		return err
	}
	fmt.Printf("Loaded %s (%d bytes)\n", romFile, n)

	bank, err := sound.NewBank(soundsDir)
	if err != nil {
		return fmt.Errorf("failed to initialize sound: %w", err)
	}
	defer bank.Shutdown()

	m := machine.New(bank)
	c.Input = m.In
	c.Output = m.Out

	display, err := graphics.NewDisplay()
	if err != nil {
		return fmt.Errorf("failed to initialize graphics: %w", err)
	}
	defer display.Cleanup()

	return emulate(c, m, display)
}

// emulate is the outer loop and the sole driver of time: poll input, fire
// the screen interrupts on their wall-clock schedule, hand the framebuffer
// to the renderer at vertical blank, then run a batch of instructions.
// Interrupt delivery and instruction execution never overlap; everything
// here is one thread.
func emulate(c *cpu.CPU, m *machine.Machine, display *graphics.Display) error {
	keys := input.NewHandler(m)

	vector := byte(midScreenVector)
	nextInterrupt := time.Now().Add(interruptInterval)

	for {
		if keys.Poll() {
			return nil
		}

		if !time.Now().Before(nextInterrupt) {
			cpu.Interrupt(c, vector)
			if vector == vblankVector {
				if err := display.Draw(c.Memory); err != nil {
					return err
				}
				vector = midScreenVector
			} else {
				vector = vblankVector
			}
			// Advance by the fixed interval rather than from "now", so
			// the schedule stays periodic no matter how long the batch
			// work took.
			nextInterrupt = nextInterrupt.Add(interruptInterval)
		}

		for i := 0; i < instructionsPerSlice; i++ {
			status, err := cpu.Step(c)
			if err != nil {
				return err
			}
			if status == cpu.StatusHalted {
				fmt.Println("CPU halted")
				return nil
			}
		}
	}
}
