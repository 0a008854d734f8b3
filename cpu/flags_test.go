package cpu

import (
	"math/bits"
	"testing"
)

func TestParityExhaustive(t *testing.T) {
	for v := 0; v < 256; v++ {
		want := byte(0)
		if bits.OnesCount8(byte(v))%2 == 0 {
			want = 1
		}
		if got := Parity(byte(v)); got != want {
			t.Errorf("Parity(0x%02X): expected %d, got %d", v, want, got)
		}
	}
}

func TestZeroSignPredicates(t *testing.T) {
	cpu := StartCPU()
	for v := 0; v < 256; v++ {
		setZSP(cpu, byte(v))
		if got, want := cpu.Flags.Z, boolToBit(v == 0); got != want {
			t.Errorf("Z after 0x%02X: expected %d, got %d", v, want, got)
		}
		if got, want := cpu.Flags.S, boolToBit(v&0x80 != 0); got != want {
			t.Errorf("S after 0x%02X: expected %d, got %d", v, want, got)
		}
	}
}

func TestFlagsPackLayout(t *testing.T) {
	// S Z 0 AC 0 P 1 CY, bit 1 always set.
	f := Flags{Z: 1, S: 1, P: 1, CY: 1, AC: 1}
	if got := f.Pack(); got != 0xD7 {
		t.Errorf("Pack all set: expected 0xD7, got 0x%02X", got)
	}
	f = Flags{}
	if got := f.Pack(); got != 0x02 {
		t.Errorf("Pack all clear: expected 0x02, got 0x%02X", got)
	}
}

func TestFlagsPackUnpackRoundTrip(t *testing.T) {
	for v := 0; v < 32; v++ {
		orig := Flags{
			Z:  byte(v) & 1,
			S:  byte(v>>1) & 1,
			P:  byte(v>>2) & 1,
			CY: byte(v>>3) & 1,
			AC: byte(v>>4) & 1,
		}
		var restored Flags
		restored.Unpack(orig.Pack())
		if restored != orig {
			t.Errorf("round trip of %+v came back as %+v", orig, restored)
		}
	}
}
