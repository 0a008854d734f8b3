package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Brad-S1/intel-8080-cpu-emulator/machine"
)

// Port 1 bits (player 1 and cabinet).
const (
	Port1Coin    = 0x01
	Port1P2Start = 0x02
	Port1P1Start = 0x04
	Port1P1Shoot = 0x10
	Port1P1Left  = 0x20
	Port1P1Right = 0x40
)

// Port 2 bits (player 2; the low bits are DIP switches left untouched).
const (
	Port2P2Shoot = 0x10
	Port2P2Left  = 0x20
	Port2P2Right = 0x40
)

// Handler drains the SDL event queue once per scheduler iteration and is
// the only writer of the machine's input latches.
type Handler struct {
	m *machine.Machine
}

func NewHandler(m *machine.Machine) *Handler {
	return &Handler{m: m}
}

// Poll processes pending events and reports whether quit was requested
// (window closed or Escape pressed).
func (h *Handler) Poll() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return true
		case *sdl.KeyboardEvent:
			if e.Keysym.Sym == sdl.K_ESCAPE {
				return true
			}
			h.handleKey(e.Keysym.Sym, e.State == sdl.PRESSED)
		}
	}
	return false
}

func (h *Handler) handleKey(key sdl.Keycode, pressed bool) {
	switch key {
	case sdl.K_c:
		h.setPort1(Port1Coin, pressed)
	case sdl.K_1:
		h.setPort1(Port1P1Start, pressed)
	case sdl.K_2:
		h.setPort1(Port1P2Start, pressed)
	case sdl.K_SPACE:
		h.setPort1(Port1P1Shoot, pressed)
	case sdl.K_LEFT:
		h.setPort1(Port1P1Left, pressed)
	case sdl.K_RIGHT:
		h.setPort1(Port1P1Right, pressed)
	case sdl.K_q:
		h.setPort2(Port2P2Left, pressed)
	case sdl.K_w:
		h.setPort2(Port2P2Right, pressed)
	case sdl.K_e:
		h.setPort2(Port2P2Shoot, pressed)
	}
}

func (h *Handler) setPort1(mask byte, pressed bool) {
	if pressed {
		h.m.Port1 |= mask
	} else {
		h.m.Port1 &^= mask
	}
}

func (h *Handler) setPort2(mask byte, pressed bool) {
	if pressed {
		h.m.Port2 |= mask
	} else {
		h.m.Port2 &^= mask
	}
}
