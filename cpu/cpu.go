package cpu

// CPU holds the complete state of the emulated Intel 8080: the accumulator,
// the six general-purpose registers, the 16-bit stack pointer and program
// counter, the five condition flags, the interrupt-enable latch, and the
// flat 64KB memory the processor owns for its whole lifetime.
type CPU struct {
	A byte // accumulator
	B byte // general purpose registers (B through L)
	C byte
	D byte
	E byte
	H byte
	L byte

	SP uint16
	PC uint16

	Flags     Flags
	IntEnable bool

	Memory []byte

	// Port hooks wired by the machine layer. IN reads the addressed port,
	// OUT writes it. Left nil they behave as open bus / no-op.
	Input  func(port byte) byte
	Output func(port byte, value byte)
}

// Status is what a single executed instruction tells the scheduler.
type Status int

const (
	StatusRunning Status = iota
	StatusHalted
)

// StartCPU allocates a zeroed CPU with its memory. The program image is
// expected to be copied to address 0 afterwards; execution begins at PC 0.
func StartCPU() *CPU {
	var cpu CPU
	cpu.Memory = make([]byte, MemorySize)
	return &cpu
}

// Step fetches the opcode at PC, executes it, and advances PC according to
// the instruction's length (control transfers set PC directly instead).
// A halt instruction reports StatusHalted. An opcode byte with no defined
// semantics is a fatal fault reported through the error, with PC still
// pointing at the failing byte.
func Step(cpu *CPU) (Status, error) {
	op := RM(cpu, cpu.PC)
	return execute(cpu, op)
}

// Interrupt delivers the given restart vector: the current PC is pushed and
// control transfers to 8*vector, exactly as an RST instruction would do it.
// The enable latch is cleared and must be re-armed by the program (EI)
// before the next interrupt can be taken. With the latch clear this is a
// no-op. Called by the scheduler, never from the instruction stream.
func Interrupt(cpu *CPU, vector byte) {
	if !cpu.IntEnable {
		return
	}
	PushWord(cpu, cpu.PC)
	cpu.PC = uint16(vector) * 8
	cpu.IntEnable = false
}

// Register pair accessors. A pair is a convention for composing a 16-bit
// value from two 8-bit registers, high byte first.

func (cpu *CPU) GetBC() uint16 { return LE(cpu.C, cpu.B) }
func (cpu *CPU) GetDE() uint16 { return LE(cpu.E, cpu.D) }
func (cpu *CPU) GetHL() uint16 { return LE(cpu.L, cpu.H) }

func (cpu *CPU) SetBC(val uint16) {
	cpu.B = byte(val >> 8)
	cpu.C = byte(val)
}

func (cpu *CPU) SetDE(val uint16) {
	cpu.D = byte(val >> 8)
	cpu.E = byte(val)
}

func (cpu *CPU) SetHL(val uint16) {
	cpu.H = byte(val >> 8)
	cpu.L = byte(val)
}

func (cpu *CPU) readPort(port byte) byte {
	if cpu.Input == nil {
		return 0
	}
	return cpu.Input(port)
}

func (cpu *CPU) writePort(port byte, value byte) {
	if cpu.Output != nil {
		cpu.Output(port, value)
	}
}
