package cpu

import (
	"strings"
	"testing"
)

func TestPushPopRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		push     byte
		pop      byte
		setup    func(*CPU)
		validate func(*CPU) bool
	}{
		{"B", 0xC5, 0xC1,
			func(c *CPU) { c.B, c.C = 0x12, 0x34 },
			func(c *CPU) bool { return c.B == 0x12 && c.C == 0x34 }},
		{"D", 0xD5, 0xD1,
			func(c *CPU) { c.D, c.E = 0x56, 0x78 },
			func(c *CPU) bool { return c.D == 0x56 && c.E == 0x78 }},
		{"H", 0xE5, 0xE1,
			func(c *CPU) { c.H, c.L = 0x9A, 0xBC },
			func(c *CPU) bool { return c.H == 0x9A && c.L == 0xBC }},
		{"PSW", 0xF5, 0xF1,
			func(c *CPU) { c.A = 0x42; c.Flags = Flags{Z: 1, CY: 1, P: 1} },
			func(c *CPU) bool { return c.A == 0x42 && c.Flags == (Flags{Z: 1, CY: 1, P: 1}) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu := StartCPU()
			cpu.SP = 0x2400
			tt.setup(cpu)
			loadProgram(cpu, tt.push, tt.pop)

			step(t, cpu)
			if cpu.SP != 0x23FE {
				t.Fatalf("SP after push: expected 0x23FE, got 0x%04X", cpu.SP)
			}

			// Clobber the pair, then pop it back.
			if tt.name != "PSW" {
				cpu.B, cpu.C, cpu.D, cpu.E, cpu.H, cpu.L = 0, 0, 0, 0, 0, 0
			}
			step(t, cpu)

			if cpu.SP != 0x2400 {
				t.Errorf("SP after pop: expected 0x2400, got 0x%04X", cpu.SP)
			}
			if !tt.validate(cpu) {
				t.Errorf("pair not restored after push/pop round trip")
			}
		})
	}
}

func TestPushLayout(t *testing.T) {
	cpu := StartCPU()
	cpu.SP = 0x2400
	cpu.B, cpu.C = 0xAB, 0xCD
	loadProgram(cpu, 0xC5) // PUSH B
	step(t, cpu)

	if got := RM(cpu, 0x23FF); got != 0xAB {
		t.Errorf("high byte at SP-1: expected 0xAB, got 0x%02X", got)
	}
	if got := RM(cpu, 0x23FE); got != 0xCD {
		t.Errorf("low byte at SP-2: expected 0xCD, got 0x%02X", got)
	}
}

func TestCallRetRoundTrip(t *testing.T) {
	cpu := StartCPU()
	cpu.SP = 0x2400
	loadProgram(cpu, 0xCD, 0x00, 0x10) // CALL $1000
	WM(cpu, 0x1000, 0xC9)              // RET

	step(t, cpu)
	if cpu.PC != 0x1000 {
		t.Fatalf("PC after CALL: expected 0x1000, got 0x%04X", cpu.PC)
	}
	if cpu.SP != 0x23FE {
		t.Fatalf("SP after CALL: expected 0x23FE, got 0x%04X", cpu.SP)
	}

	step(t, cpu)
	if cpu.PC != 0x0003 {
		t.Errorf("PC after RET: expected the instruction after the CALL (0x0003), got 0x%04X", cpu.PC)
	}
	if cpu.SP != 0x2400 {
		t.Errorf("SP after RET: expected 0x2400, got 0x%04X", cpu.SP)
	}
}

func TestConditionalCallNotTaken(t *testing.T) {
	cpu := StartCPU()
	cpu.SP = 0x2400
	cpu.Flags.Z = 1
	loadProgram(cpu, 0xC4, 0x00, 0x10) // CNZ $1000
	step(t, cpu)

	if cpu.PC != 0x0003 {
		t.Errorf("PC: expected fall-through to 0x0003, got 0x%04X", cpu.PC)
	}
	if cpu.SP != 0x2400 {
		t.Errorf("SP: expected untouched stack, got 0x%04X", cpu.SP)
	}
}

func TestConditionalJumps(t *testing.T) {
	tests := []struct {
		op    byte
		flags Flags
		taken bool
	}{
		{0xC2, Flags{Z: 0}, true},  // JNZ
		{0xC2, Flags{Z: 1}, false},
		{0xCA, Flags{Z: 1}, true},  // JZ
		{0xD2, Flags{CY: 0}, true}, // JNC
		{0xDA, Flags{CY: 1}, true}, // JC
		{0xDA, Flags{CY: 0}, false},
		{0xE2, Flags{P: 0}, true},  // JPO
		{0xEA, Flags{P: 1}, true},  // JPE
		{0xF2, Flags{S: 0}, true},  // JP
		{0xFA, Flags{S: 1}, true},  // JM
		{0xFA, Flags{S: 0}, false},
	}

	for _, tt := range tests {
		cpu := StartCPU()
		cpu.Flags = tt.flags
		loadProgram(cpu, tt.op, 0x00, 0x20)
		step(t, cpu)

		want := uint16(0x0003)
		if tt.taken {
			want = 0x2000
		}
		if cpu.PC != want {
			t.Errorf("opcode 0x%02X with flags %+v: expected PC=0x%04X, got 0x%04X",
				tt.op, tt.flags, want, cpu.PC)
		}
	}
}

func TestRSTVectors(t *testing.T) {
	for n := byte(0); n < 8; n++ {
		cpu := StartCPU()
		cpu.SP = 0x2400
		cpu.PC = 0x1234
		WM(cpu, 0x1234, 0xC7|n<<3) // RST n
		step(t, cpu)

		if want := uint16(n) * 8; cpu.PC != want {
			t.Errorf("RST %d: expected PC=0x%04X, got 0x%04X", n, want, cpu.PC)
		}
		if got := RM16(cpu, cpu.SP); got != 0x1235 {
			t.Errorf("RST %d: expected return address 0x1235 on stack, got 0x%04X", n, got)
		}
	}
}

func TestInterruptDelivery(t *testing.T) {
	cpu := StartCPU()
	cpu.SP = 0x2400
	cpu.PC = 0x1234
	cpu.IntEnable = true

	Interrupt(cpu, 2)

	if cpu.PC != 0x0010 {
		t.Errorf("PC: expected vector 0x0010, got 0x%04X", cpu.PC)
	}
	if got := RM16(cpu, cpu.SP); got != 0x1234 {
		t.Errorf("stack: expected interrupted PC 0x1234, got 0x%04X", got)
	}
	if cpu.IntEnable {
		t.Errorf("enable latch must clear on delivery")
	}
}

func TestInterruptDisabledIsNoop(t *testing.T) {
	cpu := StartCPU()
	cpu.SP = 0x2400
	cpu.PC = 0x1234

	Interrupt(cpu, 2)

	if cpu.PC != 0x1234 || cpu.SP != 0x2400 {
		t.Errorf("disabled interrupt must leave PC and SP alone, got PC=0x%04X SP=0x%04X",
			cpu.PC, cpu.SP)
	}
}

func TestEIDIAndRearm(t *testing.T) {
	cpu := StartCPU()
	loadProgram(cpu, 0xFB, 0xF3) // EI, DI
	step(t, cpu)
	if !cpu.IntEnable {
		t.Fatalf("EI must set the latch")
	}
	step(t, cpu)
	if cpu.IntEnable {
		t.Fatalf("DI must clear the latch")
	}
}

func TestHaltStatus(t *testing.T) {
	cpu := StartCPU()
	loadProgram(cpu, 0x76)
	status, err := Step(cpu)
	if err != nil {
		t.Fatalf("HLT is not a fault: %v", err)
	}
	if status != StatusHalted {
		t.Errorf("expected StatusHalted, got %v", status)
	}
}

func TestUndefinedOpcodesFault(t *testing.T) {
	undefined := []byte{0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38, 0xCB, 0xD9, 0xDD, 0xED, 0xFD}

	for _, op := range undefined {
		cpu := StartCPU()
		cpu.PC = 0x1000
		WM(cpu, 0x1000, op)

		_, err := Step(cpu)
		if err == nil {
			t.Errorf("opcode 0x%02X: expected a fault, got silent execution", op)
			continue
		}
		if !strings.Contains(err.Error(), "0x1000") {
			t.Errorf("opcode 0x%02X: fault should report the PC, got %q", op, err)
		}
		if cpu.PC != 0x1000 {
			t.Errorf("opcode 0x%02X: PC must still point at the fault, got 0x%04X", op, cpu.PC)
		}
	}
}

func TestInOutDispatch(t *testing.T) {
	cpu := StartCPU()

	var wrotePort, wroteValue byte
	cpu.Input = func(port byte) byte {
		if port == 3 {
			return 0x5A
		}
		return 0
	}
	cpu.Output = func(port, value byte) {
		wrotePort, wroteValue = port, value
	}

	cpu.A = 0x99
	loadProgram(cpu, 0xD3, 0x04, 0xDB, 0x03) // OUT #$04, IN #$03
	step(t, cpu)
	if wrotePort != 4 || wroteValue != 0x99 {
		t.Errorf("OUT: expected port 4 value 0x99, got port %d value 0x%02X", wrotePort, wroteValue)
	}
	if cpu.PC != 2 {
		t.Errorf("OUT: expected 2-byte advance, got PC=%d", cpu.PC)
	}

	step(t, cpu)
	if cpu.A != 0x5A {
		t.Errorf("IN: expected A=0x5A, got 0x%02X", cpu.A)
	}
	if cpu.PC != 4 {
		t.Errorf("IN: expected 2-byte advance, got PC=%d", cpu.PC)
	}
}

func TestMemoryMoves(t *testing.T) {
	cpu := StartCPU()
	cpu.SetHL(0x2500)
	cpu.A = 0x7E
	loadProgram(cpu, 0x77, 0x46) // MOV M,A then MOV B,M
	step(t, cpu)
	if got := RM(cpu, 0x2500); got != 0x7E {
		t.Fatalf("MOV M,A: expected memory 0x7E, got 0x%02X", got)
	}
	step(t, cpu)
	if cpu.B != 0x7E {
		t.Errorf("MOV B,M: expected 0x7E, got 0x%02X", cpu.B)
	}
	if cpu.Flags != (Flags{}) {
		t.Errorf("MOV must not touch flags, got %+v", cpu.Flags)
	}
}

func TestStaxLdax(t *testing.T) {
	cpu := StartCPU()
	cpu.SetBC(0x3000)
	cpu.SetDE(0x3001)
	cpu.A = 0x11
	loadProgram(cpu, 0x02, 0x1A) // STAX B, LDAX D
	WM(cpu, 0x3001, 0x22)
	step(t, cpu)
	if got := RM(cpu, 0x3000); got != 0x11 {
		t.Errorf("STAX B: expected 0x11, got 0x%02X", got)
	}
	step(t, cpu)
	if cpu.A != 0x22 {
		t.Errorf("LDAX D: expected 0x22, got 0x%02X", cpu.A)
	}
}

func TestDirectLoadsAndStores(t *testing.T) {
	cpu := StartCPU()
	cpu.A = 0x33
	cpu.SetHL(0xBEEF)
	loadProgram(cpu,
		0x32, 0x00, 0x30, // STA $3000
		0x22, 0x02, 0x30, // SHLD $3002
		0x3A, 0x00, 0x30, // LDA $3000
		0x2A, 0x02, 0x30, // LHLD $3002
	)
	step(t, cpu)
	if got := RM(cpu, 0x3000); got != 0x33 {
		t.Fatalf("STA: expected 0x33, got 0x%02X", got)
	}
	step(t, cpu)
	if RM16(cpu, 0x3002) != 0xBEEF {
		t.Fatalf("SHLD: expected 0xBEEF, got 0x%04X", RM16(cpu, 0x3002))
	}

	cpu.A = 0
	cpu.SetHL(0)
	step(t, cpu)
	if cpu.A != 0x33 {
		t.Errorf("LDA: expected 0x33, got 0x%02X", cpu.A)
	}
	step(t, cpu)
	if cpu.GetHL() != 0xBEEF {
		t.Errorf("LHLD: expected 0xBEEF, got 0x%04X", cpu.GetHL())
	}
}

func TestExchangeInstructions(t *testing.T) {
	cpu := StartCPU()
	cpu.SetHL(0x1111)
	cpu.SetDE(0x2222)
	loadProgram(cpu, 0xEB) // XCHG
	step(t, cpu)
	if cpu.GetHL() != 0x2222 || cpu.GetDE() != 0x1111 {
		t.Errorf("XCHG: expected HL=0x2222 DE=0x1111, got HL=0x%04X DE=0x%04X",
			cpu.GetHL(), cpu.GetDE())
	}

	cpu = StartCPU()
	cpu.SP = 0x2400
	cpu.SetHL(0xABCD)
	WM16(cpu, 0x2400, 0x1234)
	loadProgram(cpu, 0xE3) // XTHL
	step(t, cpu)
	if cpu.GetHL() != 0x1234 {
		t.Errorf("XTHL: expected HL=0x1234, got 0x%04X", cpu.GetHL())
	}
	if RM16(cpu, 0x2400) != 0xABCD {
		t.Errorf("XTHL: expected stack top 0xABCD, got 0x%04X", RM16(cpu, 0x2400))
	}
	if cpu.SP != 0x2400 {
		t.Errorf("XTHL: SP must not move, got 0x%04X", cpu.SP)
	}
}

func TestPCHLAndSPHL(t *testing.T) {
	cpu := StartCPU()
	cpu.SetHL(0x4321)
	loadProgram(cpu, 0xE9) // PCHL
	step(t, cpu)
	if cpu.PC != 0x4321 {
		t.Errorf("PCHL: expected PC=0x4321, got 0x%04X", cpu.PC)
	}

	cpu = StartCPU()
	cpu.SetHL(0x2400)
	loadProgram(cpu, 0xF9) // SPHL
	step(t, cpu)
	if cpu.SP != 0x2400 {
		t.Errorf("SPHL: expected SP=0x2400, got 0x%04X", cpu.SP)
	}
	if cpu.PC != 1 {
		t.Errorf("SPHL: expected PC=1, got 0x%04X", cpu.PC)
	}
}

func TestConditionalReturns(t *testing.T) {
	cpu := StartCPU()
	cpu.SP = 0x23FE
	WM16(cpu, 0x23FE, 0x1000)
	cpu.Flags.CY = 1
	loadProgram(cpu, 0xD8) // RC
	step(t, cpu)
	if cpu.PC != 0x1000 || cpu.SP != 0x2400 {
		t.Errorf("RC taken: expected PC=0x1000 SP=0x2400, got PC=0x%04X SP=0x%04X",
			cpu.PC, cpu.SP)
	}

	cpu = StartCPU()
	cpu.SP = 0x23FE
	WM16(cpu, 0x23FE, 0x1000)
	loadProgram(cpu, 0xD8) // RC, carry clear
	step(t, cpu)
	if cpu.PC != 0x0001 || cpu.SP != 0x23FE {
		t.Errorf("RC not taken: expected PC=0x0001 SP=0x23FE, got PC=0x%04X SP=0x%04X",
			cpu.PC, cpu.SP)
	}
}

func TestPopPSWRestoresFlags(t *testing.T) {
	cpu := StartCPU()
	cpu.SP = 0x23FE
	WM(cpu, 0x23FE, 0xD7) // all five flags set, fixed bit set
	WM(cpu, 0x23FF, 0x42) // accumulator
	loadProgram(cpu, 0xF1) // POP PSW
	step(t, cpu)

	if cpu.A != 0x42 {
		t.Errorf("A: expected 0x42, got 0x%02X", cpu.A)
	}
	want := Flags{Z: 1, S: 1, P: 1, CY: 1, AC: 1}
	if cpu.Flags != want {
		t.Errorf("flags: expected %+v, got %+v", want, cpu.Flags)
	}
}
