// Package term hosts a conference grid on a terminal. It provides the
// container and surface capabilities consumed by pkg/gridview, drawing
// tiles as character cells through a tcell screen.
package term

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Context is the shared rendering context every surface draws through.
// One Context exists per screen; it serializes cell writes so surfaces can
// deliver frames from source goroutines while the grid mutates on the UI
// loop.
type Context struct {
	mu     sync.Mutex
	screen tcell.Screen
}

// NewContext wraps a tcell screen.
func NewContext(screen tcell.Screen) *Context {
	return &Context{screen: screen}
}

// SetCell writes one cell.
func (c *Context) SetCell(x, y int, r rune, style tcell.Style) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.screen.SetContent(x, y, r, nil, style)
}

// Size returns the screen dimensions.
func (c *Context) Size() (int, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.screen.Size()
}

// Flush pushes buffered cells to the terminal.
func (c *Context) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.screen.Show()
}

// Clear erases the screen buffer.
func (c *Context) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.screen.Clear()
}
