package term

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/conclave-media/videogrid/pkg/errors"
	"github.com/conclave-media/videogrid/pkg/gridview"
	"github.com/conclave-media/videogrid/pkg/media"
)

// shades maps luma to runes, darkest first.
var shades = []rune(" .:-=+*#%@")

// rect is a tile region in screen cells.
type rect struct {
	x, y, w, h int
}

func (r rect) empty() bool {
	return r.w <= 0 || r.h <= 0
}

// Surface renders one video stream into its assigned tile region. Frames
// arrive on the source's goroutine; the container assigns bounds on the UI
// loop. The internal mutex is the only synchronization between the two.
type Surface struct {
	mu       sync.Mutex
	ctx      *Context
	bounds   rect
	frame    media.Frame
	hasFrame bool
	visible  bool
	fill     bool
	hwScale  bool
	released bool
}

// Init binds the surface to the shared rendering context.
func (s *Surface) Init(ctx gridview.RenderContext) error {
	termCtx, ok := ctx.(*Context)
	if !ok || termCtx == nil {
		return errors.New(errors.ErrCodeSurfaceInit, "terminal surface needs a term.Context").
			WithContext("got", ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ctx = termCtx
	s.released = false
	return nil
}

// SetFillScaling crops frames to cover the tile instead of letterboxing.
func (s *Surface) SetFillScaling() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fill = true
}

// EnableHardwareScaling is accepted for interface parity; a terminal has
// no scaler, so sampling always happens in software here.
func (s *Surface) EnableHardwareScaling() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hwScale = true
}

// SetVisible toggles frame drawing. Hidden surfaces keep consuming frames
// so the picture is current the moment they become visible.
func (s *Surface) SetVisible(visible bool) {
	s.mu.Lock()
	s.visible = visible
	s.mu.Unlock()
	s.redraw()
}

// ConsumeFrame stores and draws the latest frame.
func (s *Surface) ConsumeFrame(frame media.Frame) {
	s.mu.Lock()
	s.frame = frame
	s.hasFrame = true
	s.mu.Unlock()
	s.redraw()
}

// ClearFrame drops the last rendered frame.
func (s *Surface) ClearFrame() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frame = media.Frame{}
	s.hasFrame = false
}

// Release detaches the surface from the rendering context. Idempotent.
func (s *Surface) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ctx = nil
	s.released = true
}

// setBounds is called by the container when the tile moves or resizes.
func (s *Surface) setBounds(b rect) {
	s.mu.Lock()
	s.bounds = b
	s.mu.Unlock()
	s.redraw()
}

// redraw paints the current frame into the tile region.
func (s *Surface) redraw() {
	s.mu.Lock()
	ctx := s.ctx
	b := s.bounds
	frame := s.frame
	draw := s.visible && s.hasFrame && !s.released && ctx != nil && !b.empty() && frame.Valid()
	fill := s.fill
	s.mu.Unlock()

	if !draw {
		return
	}

	style := tcell.StyleDefault
	srcX, srcY, srcW, srcH := sampleRegion(frame, b, fill)
	for cy := 0; cy < b.h; cy++ {
		for cx := 0; cx < b.w; cx++ {
			fx := srcX + cx*srcW/b.w
			fy := srcY + cy*srcH/b.h
			luma := frame.Luma[fy*frame.Width+fx]
			shade := shades[int(luma)*len(shades)/256]
			ctx.SetCell(b.x+cx, b.y+cy, shade, style)
		}
	}
	ctx.Flush()
}

// sampleRegion picks the source rectangle to map onto the tile. Fill
// scaling center-crops the frame to the tile's aspect ratio; otherwise the
// full frame is stretched.
func sampleRegion(frame media.Frame, b rect, fill bool) (x, y, w, h int) {
	w, h = frame.Width, frame.Height
	if !fill {
		return 0, 0, w, h
	}

	// Terminal cells are roughly twice as tall as wide; fold that into
	// the target aspect so faces are not squashed.
	targetW := b.w
	targetH := b.h * 2

	if w*targetH > h*targetW {
		// Frame is wider than the tile: crop the sides.
		cropW := h * targetW / targetH
		if cropW < 1 {
			cropW = 1
		}
		return (w - cropW) / 2, 0, cropW, h
	}
	cropH := w * targetH / targetW
	if cropH < 1 {
		cropH = 1
	}
	if cropH > h {
		cropH = h
	}
	return 0, (h - cropH) / 2, w, cropH
}
