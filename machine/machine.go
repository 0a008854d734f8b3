package machine

import "github.com/Brad-S1/intel-8080-cpu-emulator/sound"

// Player is what the port bridge needs from the audio side: fire a sound
// and forget about it.
type Player interface {
	Play(id sound.ID)
}

// Port 1 bit 3 is wired high on the real board and must always read as set.
const port1AlwaysSet = 0x08

// Machine is the custom Space Invaders hardware outside the CPU proper:
// the two input latches the keyboard collaborator writes, the 16-bit
// barrel shift register with its 3-bit offset, and the previous values of
// the two sound ports for edge detection. All of it is driven synchronously
// by IN/OUT instructions; nothing here buffers or runs on its own.
type Machine struct {
	Port1 byte // coin / start / P1 controls
	Port2 byte // DIP switches / P2 controls

	shift       uint16
	shiftOffset byte

	prevPort3 byte
	prevPort5 byte

	player Player
}

// New returns a machine with everything zeroed except the fixed port-1 bit.
// player may be nil for a silent machine.
func New(player Player) *Machine {
	return &Machine{Port1: port1AlwaysSet, player: player}
}

// In services the IN instruction for the given port.
func (m *Machine) In(port byte) byte {
	switch port {
	case 1:
		return m.Port1 | port1AlwaysSet
	case 2:
		return m.Port2
	case 3:
		// An 8-bit window into the 16-bit shift register, offset bits
		// from the top. This is how the game reads arbitrarily shifted
		// pixel data through an 8-bit port.
		return byte(m.shift >> (8 - m.shiftOffset))
	}
	return 0
}

// Out services the OUT instruction for the given port.
func (m *Machine) Out(port byte, value byte) {
	switch port {
	case 2:
		m.shiftOffset = value & 0x07
	case 3:
		m.triggerSounds(value, m.prevPort3, port3Sounds[:])
		m.prevPort3 = value
	case 4:
		// The written byte becomes the new high byte; the old high byte
		// slides down. A right-shift-by-8 composition, not a bit-level
		// shift register simulation.
		m.shift = uint16(value)<<8 | m.shift>>8
	case 5:
		m.triggerSounds(value, m.prevPort5, port5Sounds[:])
		m.prevPort5 = value
	case 6:
		// Watchdog acknowledgment.
	}
}

var port3Sounds = [...]sound.ID{sound.UFO, sound.Shot, sound.PlayerDie, sound.InvaderDie}

var port5Sounds = [...]sound.ID{sound.Fleet1, sound.Fleet2, sound.Fleet3, sound.Fleet4, sound.UFOHit}

// triggerSounds fires one event per bit that just went from 0 to 1. The
// game holds a bit high for as long as the sound should last and rewrites
// the port every frame, so only the rising edge may trigger.
func (m *Machine) triggerSounds(value, prev byte, ids []sound.ID) {
	if m.player == nil {
		return
	}
	risen := value &^ prev
	for bit, id := range ids {
		if risen&(1<<bit) != 0 {
			m.player.Play(id)
		}
	}
}
