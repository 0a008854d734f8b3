package cpu

import "math/bits"

// Flags are the five 8080 condition bits, kept as separate 0/1 bytes
// rather than packed into a status register. The packed layout only
// exists on the wire, for PUSH PSW / POP PSW.
type Flags struct {
	Z  byte // zero
	S  byte // sign
	P  byte // parity
	CY byte // carry
	AC byte // auxiliary carry
}

// PSW bit layout: S Z 0 AC 0 P 1 CY (bit 1 always reads as set).
const pswAlwaysSet = 0x02

// Parity returns 1 when the byte has an even number of set bits
// (zero counts as even).
func Parity(value byte) byte {
	if bits.OnesCount8(value)%2 == 0 {
		return 1
	}
	return 0
}

// setZSP recomputes the zero, sign, and parity flags from an 8-bit result.
// Every instruction documented as updating Z/S/P goes through here with
// the post-operation, truncated value.
func setZSP(cpu *CPU, result byte) {
	cpu.Flags.Z = boolToBit(result == 0)
	cpu.Flags.S = boolToBit(result&0x80 != 0)
	cpu.Flags.P = Parity(result)
}

// Pack assembles the flag byte pushed by PUSH PSW.
func (f *Flags) Pack() byte {
	flags := byte(pswAlwaysSet)
	flags |= f.CY << 0
	flags |= f.P << 2
	flags |= f.AC << 4
	flags |= f.Z << 6
	flags |= f.S << 7
	return flags
}

// Unpack restores the flags from a byte popped by POP PSW.
func (f *Flags) Unpack(value byte) {
	f.CY = (value >> 0) & 1
	f.P = (value >> 2) & 1
	f.AC = (value >> 4) & 1
	f.Z = (value >> 6) & 1
	f.S = (value >> 7) & 1
}

func boolToBit(b bool) byte {
	if b {
		return 1
	}
	return 0
}
