package graphics

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

// Screen geometry. The monitor is mounted sideways: the framebuffer runs
// 256 pixels across and 224 down in machine coordinates, rotated 90
// degrees counterclockwise onto a 224x256 screen.
const (
	ScreenWidth  = 224
	ScreenHeight = 256
	windowScale  = 5

	// The video bitmap lives in ordinary memory; only the renderer treats
	// this range specially.
	vramStart = 0x2400
	vramSize  = ScreenWidth * ScreenHeight / 8 // 1 bit per pixel
)

const bytesPerPixel = 4 // ARGB8888

// Display owns the SDL window, renderer, and the streaming texture the
// framebuffer is unpacked into once per vertical blank.
type Display struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
}

// NewDisplay initializes the SDL video subsystem and creates the window.
func NewDisplay() (*Display, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("failed to initialize SDL video: %w", err)
	}

	d := &Display{}

	var err error
	d.window, err = sdl.CreateWindow("Space Invaders",
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		ScreenWidth*windowScale, ScreenHeight*windowScale,
		sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	d.renderer, err = sdl.CreateRenderer(d.window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		d.window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	// Nearest-neighbor scaling keeps the pixels square when resized.
	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "0")
	if err = d.renderer.SetLogicalSize(ScreenWidth, ScreenHeight); err != nil {
		return nil, fmt.Errorf("failed to set logical size: %w", err)
	}

	d.texture, err = d.renderer.CreateTexture(
		sdl.PIXELFORMAT_ARGB8888,
		sdl.TEXTUREACCESS_STREAMING,
		ScreenWidth, ScreenHeight)
	if err != nil {
		d.renderer.Destroy()
		d.window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("failed to create texture: %w", err)
	}

	return d, nil
}

// Draw unpacks the video bitmap out of memory and presents it. The memory
// buffer is read-only here; the CPU core has no idea this range is special.
func (d *Display) Draw(memory []byte) error {
	pixels, pitch, err := d.texture.Lock(nil)
	if err != nil {
		return fmt.Errorf("failed to lock texture: %w", err)
	}

	vram := memory[vramStart : vramStart+vramSize]

	for i, b := range vram {
		// Bytes run along the machine's x axis, 32 bytes per 256-pixel
		// row, LSB first.
		x := (i % 32) * 8
		y := i / 32

		for bit := 0; bit < 8; bit++ {
			// Rotate 90 degrees counterclockwise; SDL's origin is the
			// top left corner.
			xr := y
			yr := 255 - (x + bit)

			idx := yr*pitch + xr*bytesPerPixel
			if b>>bit&1 != 0 {
				pixels[idx+0] = 0xFF // B
				pixels[idx+1] = 0xFF // G
				pixels[idx+2] = 0xFF // R
			} else {
				pixels[idx+0] = 0x00
				pixels[idx+1] = 0x00
				pixels[idx+2] = 0x00
			}
			pixels[idx+3] = 0xFF // A
		}
	}

	d.texture.Unlock()
	d.renderer.Clear()
	d.renderer.Copy(d.texture, nil, nil)
	d.renderer.Present()
	return nil
}

// Cleanup tears down the SDL video resources.
func (d *Display) Cleanup() {
	if d.texture != nil {
		d.texture.Destroy()
	}
	if d.renderer != nil {
		d.renderer.Destroy()
	}
	if d.window != nil {
		d.window.Destroy()
	}
	sdl.Quit()
}
