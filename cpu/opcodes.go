package cpu

import "fmt"

// execute interprets a single opcode: fetch operands, apply the documented
// transformation, update the flags the instruction owns, and advance PC by
// the instruction's byte length. Control transfers (jump, call, return,
// restart, PCHL) set PC directly and skip the generic advance. A byte with
// no defined semantics is a fatal fault, never a silent no-op.
func execute(cpu *CPU, op byte) (Status, error) {
	switch op {

	// --- Data movement, 16-bit loads, rotates, specials (0x00-0x3F) ---

	case 0x00: // NOP
		cpu.PC++
	case 0x01: // LXI B,d16
		cpu.SetBC(RM16(cpu, cpu.PC+1))
		cpu.PC += 3
	case 0x02: // STAX B
		WM(cpu, cpu.GetBC(), cpu.A)
		cpu.PC++
	case 0x03: // INX B
		cpu.SetBC(cpu.GetBC() + 1)
		cpu.PC++
	case 0x04: // INR B
		cpu.B = inr(cpu, cpu.B)
		cpu.PC++
	case 0x05: // DCR B
		cpu.B = dcr(cpu, cpu.B)
		cpu.PC++
	case 0x06: // MVI B,d8
		cpu.B = RM(cpu, cpu.PC+1)
		cpu.PC += 2
	case 0x07: // RLC
		rlc(cpu)
		cpu.PC++
	case 0x09: // DAD B
		dad(cpu, cpu.GetBC())
		cpu.PC++
	case 0x0A: // LDAX B
		cpu.A = RM(cpu, cpu.GetBC())
		cpu.PC++
	case 0x0B: // DCX B
		cpu.SetBC(cpu.GetBC() - 1)
		cpu.PC++
	case 0x0C: // INR C
		cpu.C = inr(cpu, cpu.C)
		cpu.PC++
	case 0x0D: // DCR C
		cpu.C = dcr(cpu, cpu.C)
		cpu.PC++
	case 0x0E: // MVI C,d8
		cpu.C = RM(cpu, cpu.PC+1)
		cpu.PC += 2
	case 0x0F: // RRC
		rrc(cpu)
		cpu.PC++

	case 0x11: // LXI D,d16
		cpu.SetDE(RM16(cpu, cpu.PC+1))
		cpu.PC += 3
	case 0x12: // STAX D
		WM(cpu, cpu.GetDE(), cpu.A)
		cpu.PC++
	case 0x13: // INX D
		cpu.SetDE(cpu.GetDE() + 1)
		cpu.PC++
	case 0x14: // INR D
		cpu.D = inr(cpu, cpu.D)
		cpu.PC++
	case 0x15: // DCR D
		cpu.D = dcr(cpu, cpu.D)
		cpu.PC++
	case 0x16: // MVI D,d8
		cpu.D = RM(cpu, cpu.PC+1)
		cpu.PC += 2
	case 0x17: // RAL
		ral(cpu)
		cpu.PC++
	case 0x19: // DAD D
		dad(cpu, cpu.GetDE())
		cpu.PC++
	case 0x1A: // LDAX D
		cpu.A = RM(cpu, cpu.GetDE())
		cpu.PC++
	case 0x1B: // DCX D
		cpu.SetDE(cpu.GetDE() - 1)
		cpu.PC++
	case 0x1C: // INR E
		cpu.E = inr(cpu, cpu.E)
		cpu.PC++
	case 0x1D: // DCR E
		cpu.E = dcr(cpu, cpu.E)
		cpu.PC++
	case 0x1E: // MVI E,d8
		cpu.E = RM(cpu, cpu.PC+1)
		cpu.PC += 2
	case 0x1F: // RAR
		rar(cpu)
		cpu.PC++

	case 0x21: // LXI H,d16
		cpu.SetHL(RM16(cpu, cpu.PC+1))
		cpu.PC += 3
	case 0x22: // SHLD a16
		WM16(cpu, RM16(cpu, cpu.PC+1), cpu.GetHL())
		cpu.PC += 3
	case 0x23: // INX H
		cpu.SetHL(cpu.GetHL() + 1)
		cpu.PC++
	case 0x24: // INR H
		cpu.H = inr(cpu, cpu.H)
		cpu.PC++
	case 0x25: // DCR H
		cpu.H = dcr(cpu, cpu.H)
		cpu.PC++
	case 0x26: // MVI H,d8
		cpu.H = RM(cpu, cpu.PC+1)
		cpu.PC += 2
	case 0x27: // DAA
		daa(cpu)
		cpu.PC++
	case 0x29: // DAD H
		dad(cpu, cpu.GetHL())
		cpu.PC++
	case 0x2A: // LHLD a16
		cpu.SetHL(RM16(cpu, RM16(cpu, cpu.PC+1)))
		cpu.PC += 3
	case 0x2B: // DCX H
		cpu.SetHL(cpu.GetHL() - 1)
		cpu.PC++
	case 0x2C: // INR L
		cpu.L = inr(cpu, cpu.L)
		cpu.PC++
	case 0x2D: // DCR L
		cpu.L = dcr(cpu, cpu.L)
		cpu.PC++
	case 0x2E: // MVI L,d8
		cpu.L = RM(cpu, cpu.PC+1)
		cpu.PC += 2
	case 0x2F: // CMA
		cpu.A = ^cpu.A
		cpu.PC++

	case 0x31: // LXI SP,d16
		cpu.SP = RM16(cpu, cpu.PC+1)
		cpu.PC += 3
	case 0x32: // STA a16
		WM(cpu, RM16(cpu, cpu.PC+1), cpu.A)
		cpu.PC += 3
	case 0x33: // INX SP
		cpu.SP++
		cpu.PC++
	case 0x34: // INR M
		WM(cpu, cpu.GetHL(), inr(cpu, RM(cpu, cpu.GetHL())))
		cpu.PC++
	case 0x35: // DCR M
		WM(cpu, cpu.GetHL(), dcr(cpu, RM(cpu, cpu.GetHL())))
		cpu.PC++
	case 0x36: // MVI M,d8
		WM(cpu, cpu.GetHL(), RM(cpu, cpu.PC+1))
		cpu.PC += 2
	case 0x37: // STC
		cpu.Flags.CY = 1
		cpu.PC++
	case 0x39: // DAD SP
		dad(cpu, cpu.SP)
		cpu.PC++
	case 0x3A: // LDA a16
		cpu.A = RM(cpu, RM16(cpu, cpu.PC+1))
		cpu.PC += 3
	case 0x3B: // DCX SP
		cpu.SP--
		cpu.PC++
	case 0x3C: // INR A
		cpu.A = inr(cpu, cpu.A)
		cpu.PC++
	case 0x3D: // DCR A
		cpu.A = dcr(cpu, cpu.A)
		cpu.PC++
	case 0x3E: // MVI A,d8
		cpu.A = RM(cpu, cpu.PC+1)
		cpu.PC += 2
	case 0x3F: // CMC
		cpu.Flags.CY ^= 1
		cpu.PC++

	// --- MOV matrix (0x40-0x7F), with HLT in the hole at 0x76 ---

	case 0x40: // MOV B,B
		cpu.PC++
	case 0x41: // MOV B,C
		cpu.B = cpu.C
		cpu.PC++
	case 0x42: // MOV B,D
		cpu.B = cpu.D
		cpu.PC++
	case 0x43: // MOV B,E
		cpu.B = cpu.E
		cpu.PC++
	case 0x44: // MOV B,H
		cpu.B = cpu.H
		cpu.PC++
	case 0x45: // MOV B,L
		cpu.B = cpu.L
		cpu.PC++
	case 0x46: // MOV B,M
		cpu.B = RM(cpu, cpu.GetHL())
		cpu.PC++
	case 0x47: // MOV B,A
		cpu.B = cpu.A
		cpu.PC++

	case 0x48: // MOV C,B
		cpu.C = cpu.B
		cpu.PC++
	case 0x49: // MOV C,C
		cpu.PC++
	case 0x4A: // MOV C,D
		cpu.C = cpu.D
		cpu.PC++
	case 0x4B: // MOV C,E
		cpu.C = cpu.E
		cpu.PC++
	case 0x4C: // MOV C,H
		cpu.C = cpu.H
		cpu.PC++
	case 0x4D: // MOV C,L
		cpu.C = cpu.L
		cpu.PC++
	case 0x4E: // MOV C,M
		cpu.C = RM(cpu, cpu.GetHL())
		cpu.PC++
	case 0x4F: // MOV C,A
		cpu.C = cpu.A
		cpu.PC++

	case 0x50: // MOV D,B
		cpu.D = cpu.B
		cpu.PC++
	case 0x51: // MOV D,C
		cpu.D = cpu.C
		cpu.PC++
	case 0x52: // MOV D,D
		cpu.PC++
	case 0x53: // MOV D,E
		cpu.D = cpu.E
		cpu.PC++
	case 0x54: // MOV D,H
		cpu.D = cpu.H
		cpu.PC++
	case 0x55: // MOV D,L
		cpu.D = cpu.L
		cpu.PC++
	case 0x56: // MOV D,M
		cpu.D = RM(cpu, cpu.GetHL())
		cpu.PC++
	case 0x57: // MOV D,A
		cpu.D = cpu.A
		cpu.PC++

	case 0x58: // MOV E,B
		cpu.E = cpu.B
		cpu.PC++
	case 0x59: // MOV E,C
		cpu.E = cpu.C
		cpu.PC++
	case 0x5A: // MOV E,D
		cpu.E = cpu.D
		cpu.PC++
	case 0x5B: // MOV E,E
		cpu.PC++
	case 0x5C: // MOV E,H
		cpu.E = cpu.H
		cpu.PC++
	case 0x5D: // MOV E,L
		cpu.E = cpu.L
		cpu.PC++
	case 0x5E: // MOV E,M
		cpu.E = RM(cpu, cpu.GetHL())
		cpu.PC++
	case 0x5F: // MOV E,A
		cpu.E = cpu.A
		cpu.PC++

	case 0x60: // MOV H,B
		cpu.H = cpu.B
		cpu.PC++
	case 0x61: // MOV H,C
		cpu.H = cpu.C
		cpu.PC++
	case 0x62: // MOV H,D
		cpu.H = cpu.D
		cpu.PC++
	case 0x63: // MOV H,E
		cpu.H = cpu.E
		cpu.PC++
	case 0x64: // MOV H,H
		cpu.PC++
	case 0x65: // MOV H,L
		cpu.H = cpu.L
		cpu.PC++
	case 0x66: // MOV H,M
		cpu.H = RM(cpu, cpu.GetHL())
		cpu.PC++
	case 0x67: // MOV H,A
		cpu.H = cpu.A
		cpu.PC++

	case 0x68: // MOV L,B
		cpu.L = cpu.B
		cpu.PC++
	case 0x69: // MOV L,C
		cpu.L = cpu.C
		cpu.PC++
	case 0x6A: // MOV L,D
		cpu.L = cpu.D
		cpu.PC++
	case 0x6B: // MOV L,E
		cpu.L = cpu.E
		cpu.PC++
	case 0x6C: // MOV L,H
		cpu.L = cpu.H
		cpu.PC++
	case 0x6D: // MOV L,L
		cpu.PC++
	case 0x6E: // MOV L,M
		cpu.L = RM(cpu, cpu.GetHL())
		cpu.PC++
	case 0x6F: // MOV L,A
		cpu.L = cpu.A
		cpu.PC++

	case 0x70: // MOV M,B
		WM(cpu, cpu.GetHL(), cpu.B)
		cpu.PC++
	case 0x71: // MOV M,C
		WM(cpu, cpu.GetHL(), cpu.C)
		cpu.PC++
	case 0x72: // MOV M,D
		WM(cpu, cpu.GetHL(), cpu.D)
		cpu.PC++
	case 0x73: // MOV M,E
		WM(cpu, cpu.GetHL(), cpu.E)
		cpu.PC++
	case 0x74: // MOV M,H
		WM(cpu, cpu.GetHL(), cpu.H)
		cpu.PC++
	case 0x75: // MOV M,L
		WM(cpu, cpu.GetHL(), cpu.L)
		cpu.PC++
	case 0x76: // HLT
		cpu.PC++
		return StatusHalted, nil
	case 0x77: // MOV M,A
		WM(cpu, cpu.GetHL(), cpu.A)
		cpu.PC++

	case 0x78: // MOV A,B
		cpu.A = cpu.B
		cpu.PC++
	case 0x79: // MOV A,C
		cpu.A = cpu.C
		cpu.PC++
	case 0x7A: // MOV A,D
		cpu.A = cpu.D
		cpu.PC++
	case 0x7B: // MOV A,E
		cpu.A = cpu.E
		cpu.PC++
	case 0x7C: // MOV A,H
		cpu.A = cpu.H
		cpu.PC++
	case 0x7D: // MOV A,L
		cpu.A = cpu.L
		cpu.PC++
	case 0x7E: // MOV A,M
		cpu.A = RM(cpu, cpu.GetHL())
		cpu.PC++
	case 0x7F: // MOV A,A
		cpu.PC++

	// --- Arithmetic and logic on the accumulator (0x80-0xBF) ---

	case 0x80: // ADD B
		add(cpu, cpu.B, 0)
		cpu.PC++
	case 0x81: // ADD C
		add(cpu, cpu.C, 0)
		cpu.PC++
	case 0x82: // ADD D
		add(cpu, cpu.D, 0)
		cpu.PC++
	case 0x83: // ADD E
		add(cpu, cpu.E, 0)
		cpu.PC++
	case 0x84: // ADD H
		add(cpu, cpu.H, 0)
		cpu.PC++
	case 0x85: // ADD L
		add(cpu, cpu.L, 0)
		cpu.PC++
	case 0x86: // ADD M
		add(cpu, RM(cpu, cpu.GetHL()), 0)
		cpu.PC++
	case 0x87: // ADD A
		add(cpu, cpu.A, 0)
		cpu.PC++

	case 0x88: // ADC B
		add(cpu, cpu.B, cpu.Flags.CY)
		cpu.PC++
	case 0x89: // ADC C
		add(cpu, cpu.C, cpu.Flags.CY)
		cpu.PC++
	case 0x8A: // ADC D
		add(cpu, cpu.D, cpu.Flags.CY)
		cpu.PC++
	case 0x8B: // ADC E
		add(cpu, cpu.E, cpu.Flags.CY)
		cpu.PC++
	case 0x8C: // ADC H
		add(cpu, cpu.H, cpu.Flags.CY)
		cpu.PC++
	case 0x8D: // ADC L
		add(cpu, cpu.L, cpu.Flags.CY)
		cpu.PC++
	case 0x8E: // ADC M
		add(cpu, RM(cpu, cpu.GetHL()), cpu.Flags.CY)
		cpu.PC++
	case 0x8F: // ADC A
		add(cpu, cpu.A, cpu.Flags.CY)
		cpu.PC++

	case 0x90: // SUB B
		sub(cpu, cpu.B, 0)
		cpu.PC++
	case 0x91: // SUB C
		sub(cpu, cpu.C, 0)
		cpu.PC++
	case 0x92: // SUB D
		sub(cpu, cpu.D, 0)
		cpu.PC++
	case 0x93: // SUB E
		sub(cpu, cpu.E, 0)
		cpu.PC++
	case 0x94: // SUB H
		sub(cpu, cpu.H, 0)
		cpu.PC++
	case 0x95: // SUB L
		sub(cpu, cpu.L, 0)
		cpu.PC++
	case 0x96: // SUB M
		sub(cpu, RM(cpu, cpu.GetHL()), 0)
		cpu.PC++
	case 0x97: // SUB A
		sub(cpu, cpu.A, 0)
		cpu.PC++

	case 0x98: // SBB B
		sub(cpu, cpu.B, cpu.Flags.CY)
		cpu.PC++
	case 0x99: // SBB C
		sub(cpu, cpu.C, cpu.Flags.CY)
		cpu.PC++
	case 0x9A: // SBB D
		sub(cpu, cpu.D, cpu.Flags.CY)
		cpu.PC++
	case 0x9B: // SBB E
		sub(cpu, cpu.E, cpu.Flags.CY)
		cpu.PC++
	case 0x9C: // SBB H
		sub(cpu, cpu.H, cpu.Flags.CY)
		cpu.PC++
	case 0x9D: // SBB L
		sub(cpu, cpu.L, cpu.Flags.CY)
		cpu.PC++
	case 0x9E: // SBB M
		sub(cpu, RM(cpu, cpu.GetHL()), cpu.Flags.CY)
		cpu.PC++
	case 0x9F: // SBB A
		sub(cpu, cpu.A, cpu.Flags.CY)
		cpu.PC++

	case 0xA0: // ANA B
		and(cpu, cpu.B)
		cpu.PC++
	case 0xA1: // ANA C
		and(cpu, cpu.C)
		cpu.PC++
	case 0xA2: // ANA D
		and(cpu, cpu.D)
		cpu.PC++
	case 0xA3: // ANA E
		and(cpu, cpu.E)
		cpu.PC++
	case 0xA4: // ANA H
		and(cpu, cpu.H)
		cpu.PC++
	case 0xA5: // ANA L
		and(cpu, cpu.L)
		cpu.PC++
	case 0xA6: // ANA M
		and(cpu, RM(cpu, cpu.GetHL()))
		cpu.PC++
	case 0xA7: // ANA A
		and(cpu, cpu.A)
		cpu.PC++

	case 0xA8: // XRA B
		xor(cpu, cpu.B)
		cpu.PC++
	case 0xA9: // XRA C
		xor(cpu, cpu.C)
		cpu.PC++
	case 0xAA: // XRA D
		xor(cpu, cpu.D)
		cpu.PC++
	case 0xAB: // XRA E
		xor(cpu, cpu.E)
		cpu.PC++
	case 0xAC: // XRA H
		xor(cpu, cpu.H)
		cpu.PC++
	case 0xAD: // XRA L
		xor(cpu, cpu.L)
		cpu.PC++
	case 0xAE: // XRA M
		xor(cpu, RM(cpu, cpu.GetHL()))
		cpu.PC++
	case 0xAF: // XRA A
		xor(cpu, cpu.A)
		cpu.PC++

	case 0xB0: // ORA B
		or(cpu, cpu.B)
		cpu.PC++
	case 0xB1: // ORA C
		or(cpu, cpu.C)
		cpu.PC++
	case 0xB2: // ORA D
		or(cpu, cpu.D)
		cpu.PC++
	case 0xB3: // ORA E
		or(cpu, cpu.E)
		cpu.PC++
	case 0xB4: // ORA H
		or(cpu, cpu.H)
		cpu.PC++
	case 0xB5: // ORA L
		or(cpu, cpu.L)
		cpu.PC++
	case 0xB6: // ORA M
		or(cpu, RM(cpu, cpu.GetHL()))
		cpu.PC++
	case 0xB7: // ORA A
		or(cpu, cpu.A)
		cpu.PC++

	case 0xB8: // CMP B
		cmp(cpu, cpu.B)
		cpu.PC++
	case 0xB9: // CMP C
		cmp(cpu, cpu.C)
		cpu.PC++
	case 0xBA: // CMP D
		cmp(cpu, cpu.D)
		cpu.PC++
	case 0xBB: // CMP E
		cmp(cpu, cpu.E)
		cpu.PC++
	case 0xBC: // CMP H
		cmp(cpu, cpu.H)
		cpu.PC++
	case 0xBD: // CMP L
		cmp(cpu, cpu.L)
		cpu.PC++
	case 0xBE: // CMP M
		cmp(cpu, RM(cpu, cpu.GetHL()))
		cpu.PC++
	case 0xBF: // CMP A
		cmp(cpu, cpu.A)
		cpu.PC++

	// --- Branches, stack, I/O, interrupts (0xC0-0xFF) ---

	case 0xC0: // RNZ
		ret(cpu, cpu.Flags.Z == 0)
	case 0xC1: // POP B
		cpu.SetBC(PopWord(cpu))
		cpu.PC++
	case 0xC2: // JNZ a16
		jump(cpu, cpu.Flags.Z == 0)
	case 0xC3: // JMP a16
		jump(cpu, true)
	case 0xC4: // CNZ a16
		call(cpu, cpu.Flags.Z == 0)
	case 0xC5: // PUSH B
		PushWord(cpu, cpu.GetBC())
		cpu.PC++
	case 0xC6: // ADI d8
		add(cpu, RM(cpu, cpu.PC+1), 0)
		cpu.PC += 2
	case 0xC7: // RST 0
		rst(cpu, 0)
	case 0xC8: // RZ
		ret(cpu, cpu.Flags.Z == 1)
	case 0xC9: // RET
		ret(cpu, true)
	case 0xCA: // JZ a16
		jump(cpu, cpu.Flags.Z == 1)
	case 0xCC: // CZ a16
		call(cpu, cpu.Flags.Z == 1)
	case 0xCD: // CALL a16
		call(cpu, true)
	case 0xCE: // ACI d8
		add(cpu, RM(cpu, cpu.PC+1), cpu.Flags.CY)
		cpu.PC += 2
	case 0xCF: // RST 1
		rst(cpu, 1)

	case 0xD0: // RNC
		ret(cpu, cpu.Flags.CY == 0)
	case 0xD1: // POP D
		cpu.SetDE(PopWord(cpu))
		cpu.PC++
	case 0xD2: // JNC a16
		jump(cpu, cpu.Flags.CY == 0)
	case 0xD3: // OUT d8
		cpu.writePort(RM(cpu, cpu.PC+1), cpu.A)
		cpu.PC += 2
	case 0xD4: // CNC a16
		call(cpu, cpu.Flags.CY == 0)
	case 0xD5: // PUSH D
		PushWord(cpu, cpu.GetDE())
		cpu.PC++
	case 0xD6: // SUI d8
		sub(cpu, RM(cpu, cpu.PC+1), 0)
		cpu.PC += 2
	case 0xD7: // RST 2
		rst(cpu, 2)
	case 0xD8: // RC
		ret(cpu, cpu.Flags.CY == 1)
	case 0xDA: // JC a16
		jump(cpu, cpu.Flags.CY == 1)
	case 0xDB: // IN d8
		cpu.A = cpu.readPort(RM(cpu, cpu.PC+1))
		cpu.PC += 2
	case 0xDC: // CC a16
		call(cpu, cpu.Flags.CY == 1)
	case 0xDE: // SBI d8
		sub(cpu, RM(cpu, cpu.PC+1), cpu.Flags.CY)
		cpu.PC += 2
	case 0xDF: // RST 3
		rst(cpu, 3)

	case 0xE0: // RPO
		ret(cpu, cpu.Flags.P == 0)
	case 0xE1: // POP H
		cpu.SetHL(PopWord(cpu))
		cpu.PC++
	case 0xE2: // JPO a16
		jump(cpu, cpu.Flags.P == 0)
	case 0xE3: // XTHL
		top := RM16(cpu, cpu.SP)
		WM16(cpu, cpu.SP, cpu.GetHL())
		cpu.SetHL(top)
		cpu.PC++
	case 0xE4: // CPO a16
		call(cpu, cpu.Flags.P == 0)
	case 0xE5: // PUSH H
		PushWord(cpu, cpu.GetHL())
		cpu.PC++
	case 0xE6: // ANI d8
		and(cpu, RM(cpu, cpu.PC+1))
		cpu.PC += 2
	case 0xE7: // RST 4
		rst(cpu, 4)
	case 0xE8: // RPE
		ret(cpu, cpu.Flags.P == 1)
	case 0xE9: // PCHL
		cpu.PC = cpu.GetHL()
	case 0xEA: // JPE a16
		jump(cpu, cpu.Flags.P == 1)
	case 0xEB: // XCHG
		cpu.H, cpu.D = cpu.D, cpu.H
		cpu.L, cpu.E = cpu.E, cpu.L
		cpu.PC++
	case 0xEC: // CPE a16
		call(cpu, cpu.Flags.P == 1)
	case 0xEE: // XRI d8
		xor(cpu, RM(cpu, cpu.PC+1))
		cpu.PC += 2
	case 0xEF: // RST 5
		rst(cpu, 5)

	case 0xF0: // RP
		ret(cpu, cpu.Flags.S == 0)
	case 0xF1: // POP PSW
		word := PopWord(cpu)
		cpu.Flags.Unpack(byte(word))
		cpu.A = byte(word >> 8)
		cpu.PC++
	case 0xF2: // JP a16
		jump(cpu, cpu.Flags.S == 0)
	case 0xF3: // DI
		cpu.IntEnable = false
		cpu.PC++
	case 0xF4: // CP a16
		call(cpu, cpu.Flags.S == 0)
	case 0xF5: // PUSH PSW
		PushWord(cpu, uint16(cpu.A)<<8|uint16(cpu.Flags.Pack()))
		cpu.PC++
	case 0xF6: // ORI d8
		or(cpu, RM(cpu, cpu.PC+1))
		cpu.PC += 2
	case 0xF7: // RST 6
		rst(cpu, 6)
	case 0xF8: // RM
		ret(cpu, cpu.Flags.S == 1)
	case 0xF9: // SPHL
		cpu.SP = cpu.GetHL()
		cpu.PC++
	case 0xFA: // JM a16
		jump(cpu, cpu.Flags.S == 1)
	case 0xFB: // EI
		cpu.IntEnable = true
		cpu.PC++
	case 0xFC: // CM a16
		call(cpu, cpu.Flags.S == 1)
	case 0xFE: // CPI d8
		cmp(cpu, RM(cpu, cpu.PC+1))
		cpu.PC += 2
	case 0xFF: // RST 7
		rst(cpu, 7)

	default:
		// The 12 encodings Intel left undefined (0x08, 0x10, 0x18, 0x20,
		// 0x28, 0x30, 0x38, 0xCB, 0xD9, 0xDD, 0xED, 0xFD). Reaching one
		// means the fetch stream is corrupt; stop rather than skip.
		return StatusHalted, fmt.Errorf("unimplemented opcode 0x%02X at PC=0x%04X", op, cpu.PC)
	}

	return StatusRunning, nil
}
