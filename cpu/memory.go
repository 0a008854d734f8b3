package cpu

// MemorySize is the full 16-bit address space (the 8080 has a 16-bit bus).
const MemorySize = 0x10000

// LE composes a 16-bit value from little-endian low and high bytes.
func LE(lo byte, hi byte) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}

// RM reads one byte of memory.
func RM(cpu *CPU, addr uint16) byte {
	return cpu.Memory[addr]
}

// WM writes one byte of memory. There is no write protection: the target
// program owns the whole address space, ROM included.
func WM(cpu *CPU, addr uint16, value byte) {
	cpu.Memory[addr] = value
}

// RM16 reads a little-endian word starting at addr.
func RM16(cpu *CPU, addr uint16) uint16 {
	return LE(RM(cpu, addr), RM(cpu, addr+1))
}

// WM16 writes a little-endian word starting at addr.
func WM16(cpu *CPU, addr uint16, value uint16) {
	WM(cpu, addr, byte(value))
	WM(cpu, addr+1, byte(value>>8))
}

// PushWord pushes a 16-bit value: high byte at SP-1, low byte at SP-2,
// then SP moves down by two. The stack grows downward with no bounds
// enforcement, matching the hardware.
func PushWord(cpu *CPU, value uint16) {
	WM(cpu, cpu.SP-1, byte(value>>8))
	WM(cpu, cpu.SP-2, byte(value))
	cpu.SP -= 2
}

// PopWord pops a 16-bit value: low byte at SP, high byte at SP+1, then SP
// moves up by two.
func PopWord(cpu *CPU) uint16 {
	value := LE(RM(cpu, cpu.SP), RM(cpu, cpu.SP+1))
	cpu.SP += 2
	return value
}
