// sdlconsole is a graphical host for the console.Bridge: an SDL window
// renders the bridge's text output with a fixed bitmap font and forwards
// typed keystrokes back into the bridge's input FIFO.
package main

import (
	"flag"
	"image"
	"image/color"
	"log"
	"os"
	"strings"

	"github.com/veandco/go-sdl2/sdl"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/retrocore/m6502basic/console"
	"github.com/retrocore/m6502basic/cpu"
	"github.com/retrocore/m6502basic/memory"
	"github.com/retrocore/m6502basic/rom"
)

var (
	cart = flag.String("cart", "", "path to a PRG-style program image to load and run")
	cols = flag.Int("cols", 80, "terminal width in characters")
	rows = flag.Int("rows", 25, "terminal height in characters")
)

const (
	charW = 7
	charH = 13
)

// screen accumulates output bytes as a simple scrolling line buffer; it
// implements io.ByteWriter so it can sit directly behind a console.Bridge.
type screen struct {
	lines   []string
	maxRows int
}

func (s *screen) WriteByte(b byte) error {
	if len(s.lines) == 0 {
		s.lines = append(s.lines, "")
	}
	last := len(s.lines) - 1
	switch b {
	case '\n':
		s.lines = append(s.lines, "")
	default:
		s.lines[last] += string(rune(b))
	}
	if len(s.lines) > s.maxRows {
		s.lines = s.lines[len(s.lines)-s.maxRows:]
	}
	return nil
}

// surfaceImage adapts an sdl.Surface to draw.Image so a font.Drawer can
// blit glyphs directly into the window's pixel buffer, the same
// poke-the-pixel-bytes-directly approach used to avoid color.Color
// conversion overhead on every Set call.
type surfaceImage struct {
	surface *sdl.Surface
	data    []byte
}

func newSurfaceImage(s *sdl.Surface) *surfaceImage {
	return &surfaceImage{surface: s, data: s.Pixels()}
}

func (f *surfaceImage) ColorModel() color.Model { return color.RGBAModel }
func (f *surfaceImage) Bounds() image.Rectangle { return f.surface.Bounds() }

func (f *surfaceImage) At(x, y int) color.Color {
	i := int32(y)*f.surface.Pitch + int32(x)*int32(f.surface.Format.BytesPerPixel)
	return color.RGBA{f.data[i], f.data[i+1], f.data[i+2], f.data[i+3]}
}

func (f *surfaceImage) Set(x, y int, c color.Color) {
	r, g, b, a := c.RGBA()
	i := int32(y)*f.surface.Pitch + int32(x)*int32(f.surface.Format.BytesPerPixel)
	f.data[i+0] = uint8(r >> 8)
	f.data[i+1] = uint8(g >> 8)
	f.data[i+2] = uint8(b >> 8)
	f.data[i+3] = uint8(a >> 8)
}

func main() {
	flag.Parse()
	if *cart == "" {
		log.Fatal("--cart is required")
	}

	bus, err := memory.NewBus(1 << 16)
	if err != nil {
		log.Fatalf("NewBus: %v", err)
	}
	data, err := os.ReadFile(*cart)
	if err != nil {
		log.Fatalf("reading %s: %v", *cart, err)
	}
	addr, err := rom.LoadPRG(bus, data)
	if err != nil {
		log.Fatalf("LoadPRG: %v", err)
	}
	bus.Write(0xFFFC, uint8(addr))
	bus.Write(0xFFFD, uint8(addr>>8))

	scr := &screen{maxRows: *rows}
	bridge := console.NewBridge(console.DefaultAddrs(), scr, nil)
	bus.Attach(bridge)

	chip, err := cpu.New(bus)
	if err != nil {
		log.Fatalf("cpu.New: %v", err)
	}

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		log.Fatalf("sdl.Init: %v", err)
	}
	defer sdl.Quit()

	w, h := int32(*cols*charW), int32(*rows*charH)
	window, err := sdl.CreateWindow("6502 console", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, w, h, sdl.WINDOW_SHOWN)
	if err != nil {
		log.Fatalf("CreateWindow: %v", err)
	}
	defer window.Destroy()

	drawer := &font.Drawer{
		Src:  image.NewUniform(color.RGBA{0, 255, 0, 255}),
		Face: basicfont.Face7x13,
	}

	running := true
	for running {
		for i := 0; i < 2000 && running; i++ {
			if _, err := chip.Step(); err != nil {
				if _, ok := err.(cpu.IllegalOpcodeError); ok {
					running = false
					break
				}
				log.Fatalf("Step: %v", err)
			}
		}

		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				running = false
			case *sdl.TextInputEvent:
				bridge.SubmitInput(textOf(e))
			case *sdl.KeyboardEvent:
				if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_RETURN {
					bridge.SubmitInput("\n")
				}
			}
		}

		surface, err := window.GetSurface()
		if err != nil {
			log.Fatalf("GetSurface: %v", err)
		}
		surface.FillRect(nil, 0)
		drawer.Dst = newSurfaceImage(surface)
		for row, line := range scr.lines {
			drawer.Dot = fixed.P(0, (row+1)*charH)
			drawer.DrawString(line)
		}
		window.UpdateSurface()
	}
}

func textOf(e *sdl.TextInputEvent) string {
	return strings.TrimRight(string(e.Text[:]), "\x00")
}
