package cpu

// Semantic helpers shared by the opcode dispatch. Each implements one
// instruction family's effect on the accumulator, a register, or memory,
// plus exactly the flags documented for that family.

// add implements ADD/ADC: A <- A + value + carryIn. All five flags update.
// Carry is the overflow out of bit 7; auxiliary carry is the overflow out
// of bit 3 with the carry-in included.
func add(cpu *CPU, value byte, carryIn byte) {
	result := uint16(cpu.A) + uint16(value) + uint16(carryIn)
	setZSP(cpu, byte(result))
	cpu.Flags.CY = boolToBit(result > 0xFF)
	cpu.Flags.AC = boolToBit((cpu.A&0x0F)+(value&0x0F)+carryIn > 0x0F)
	cpu.A = byte(result)
}

// sub implements SUB/SBB: A <- A - value - borrowIn. All five flags update.
// Carry is the borrow out of bit 7; auxiliary carry is the borrow out of
// bit 3 with the borrow-in included.
func sub(cpu *CPU, value byte, borrowIn byte) {
	result := uint16(cpu.A) - uint16(value) - uint16(borrowIn)
	setZSP(cpu, byte(result))
	cpu.Flags.CY = boolToBit(result > 0xFF)
	cpu.Flags.AC = boolToBit(uint16(cpu.A&0x0F) < uint16(value&0x0F)+uint16(borrowIn))
	cpu.A = byte(result)
}

// cmp implements CMP/CPI: the subtraction's flags without its result.
func cmp(cpu *CPU, value byte) {
	saved := cpu.A
	sub(cpu, value, 0)
	cpu.A = saved
}

// inr increments an 8-bit value. Updates Z/S/P/AC, never carry. The
// auxiliary carry reports a carry out of the low nibble, i.e. it is set
// exactly when the nibble was 0xF before the increment.
func inr(cpu *CPU, value byte) byte {
	cpu.Flags.AC = boolToBit(value&0x0F == 0x0F)
	value++
	setZSP(cpu, value)
	return value
}

// dcr decrements an 8-bit value. Updates Z/S/P/AC, never carry. The
// auxiliary carry reports a borrow into the low nibble, i.e. it is set
// exactly when the nibble was 0x0 before the decrement.
func dcr(cpu *CPU, value byte) byte {
	cpu.Flags.AC = boolToBit(value&0x0F == 0x00)
	value--
	setZSP(cpu, value)
	return value
}

// dad adds a 16-bit value into HL. Only carry updates, detected by
// widening past bit 15.
func dad(cpu *CPU, value uint16) {
	result := uint32(cpu.GetHL()) + uint32(value)
	cpu.Flags.CY = boolToBit(result > 0xFFFF)
	cpu.SetHL(uint16(result))
}

// and implements ANA/ANI. Carry clears; the auxiliary carry takes the
// logical OR of bit 3 of both operands, a documented 8080 quirk rather
// than the arithmetic rule.
func and(cpu *CPU, value byte) {
	result := cpu.A & value
	setZSP(cpu, result)
	cpu.Flags.CY = 0
	cpu.Flags.AC = boolToBit((cpu.A|value)&0x08 != 0)
	cpu.A = result
}

// xor implements XRA/XRI. Carry and auxiliary carry both clear.
func xor(cpu *CPU, value byte) {
	cpu.A ^= value
	setZSP(cpu, cpu.A)
	cpu.Flags.CY = 0
	cpu.Flags.AC = 0
}

// or implements ORA/ORI. Carry and auxiliary carry both clear.
func or(cpu *CPU, value byte) {
	cpu.A |= value
	setZSP(cpu, cpu.A)
	cpu.Flags.CY = 0
	cpu.Flags.AC = 0
}

// rlc rotates the accumulator left; bit 7 feeds both bit 0 and carry.
func rlc(cpu *CPU) {
	bit7 := cpu.A >> 7
	cpu.A = cpu.A<<1 | bit7
	cpu.Flags.CY = bit7
}

// rrc rotates the accumulator right; bit 0 feeds both bit 7 and carry.
func rrc(cpu *CPU) {
	bit0 := cpu.A & 1
	cpu.A = cpu.A>>1 | bit0<<7
	cpu.Flags.CY = bit0
}

// ral rotates left through carry: the flag acts as a 9th bit, feeding
// bit 0 while receiving the old bit 7.
func ral(cpu *CPU) {
	bit7 := cpu.A >> 7
	cpu.A = cpu.A<<1 | cpu.Flags.CY
	cpu.Flags.CY = bit7
}

// rar rotates right through carry: the flag feeds bit 7 while receiving
// the old bit 0.
func rar(cpu *CPU) {
	bit0 := cpu.A & 1
	cpu.A = cpu.A>>1 | cpu.Flags.CY<<7
	cpu.Flags.CY = bit0
}

// daa adjusts the accumulator after a BCD addition, in two stages: add 6
// to the low nibble if it exceeds 9 or the auxiliary carry was set, then
// add 0x60 if the resulting high nibble exceeds 9 or the carry was set.
// All five flags update from the final value.
func daa(cpu *CPU) {
	value := cpu.A
	ac := byte(0)
	cy := cpu.Flags.CY

	if value&0x0F > 9 || cpu.Flags.AC == 1 {
		ac = boolToBit((value&0x0F)+0x06 > 0x0F)
		value += 0x06
	}
	if value>>4 > 9 || cy == 1 {
		value += 0x60
		cy = 1
	}

	setZSP(cpu, value)
	cpu.Flags.AC = ac
	cpu.Flags.CY = cy
	cpu.A = value
}

// jump transfers control when taken, otherwise skips the 3-byte
// instruction. Conditions never touch the flags.
func jump(cpu *CPU, taken bool) {
	if taken {
		cpu.PC = RM16(cpu, cpu.PC+1)
	} else {
		cpu.PC += 3
	}
}

// call pushes the address of the following instruction and transfers
// control when taken.
func call(cpu *CPU, taken bool) {
	if taken {
		PushWord(cpu, cpu.PC+3)
		cpu.PC = RM16(cpu, cpu.PC+1)
	} else {
		cpu.PC += 3
	}
}

// ret pops the return address when taken.
func ret(cpu *CPU, taken bool) {
	if taken {
		cpu.PC = PopWord(cpu)
	} else {
		cpu.PC++
	}
}

// rst pushes the address of the next instruction and transfers to the
// fixed low-memory vector 8*n.
func rst(cpu *CPU, n byte) {
	PushWord(cpu, cpu.PC+1)
	cpu.PC = uint16(n) * 8
}
