// Standalone Intel 8080 disassembler. Reads a raw ROM image and prints one
// line per instruction, sharing the emulator's opcode table so the two
// always agree on encodings and lengths.
//
// Usage: disassembler <rom-file>
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Brad-S1/intel-8080-cpu-emulator/cpu"
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s <rom-file>\n", os.Args[0])
		os.Exit(1)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("Unable to read ROM file: %v", err)
	}

	pc := 0
	for pc < len(data) {
		text, size := cpu.DisasmOp(data, pc)
		fmt.Printf("%04X  %s\n", pc, text)
		pc += size
	}

	if pc > len(data) {
		fmt.Println("Warning: last instruction extends beyond the end of the file.")
	}
}
