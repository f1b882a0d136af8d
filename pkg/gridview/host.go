// Package gridview implements the conference grid reconciler: an ordered
// set of tiles bound to participant tracks, arranged into rows and columns
// and incrementally updated as the roster changes.
//
// The package is host-agnostic. Rendering is delegated to a Container and
// per-tile Surfaces supplied by the host (pkg/ui/term provides a terminal
// host); the reconciler owns their lifecycle but never draws.
package gridview

import (
	"github.com/conclave-media/videogrid/pkg/grid"
	"github.com/conclave-media/videogrid/pkg/media"
)

//go:generate mockgen -package=gridview -destination=mock_host_test.go github.com/conclave-media/videogrid/pkg/gridview Container,Surface,SurfaceFactory

// RenderContext is the shared hardware rendering context all surfaces draw
// through. Exactly one exists per process. It is injected rather than read
// from ambient global state so tests can substitute a fake; the reconciler
// treats it as opaque and only forwards it to Surface.Init.
type RenderContext any

// Label carries the participant text shown on a tile.
type Label struct {
	Name     string
	Initials string
	HasVideo bool
}

// Surface is one hardware-backed rendering target, exclusively owned by a
// single tile. Implementations receive frames on the source's goroutine
// and must synchronize internally.
type Surface interface {
	media.Sink

	// Init prepares the surface against the shared rendering context.
	Init(ctx RenderContext) error

	// SetFillScaling makes frames fill the tile, cropping overflow.
	SetFillScaling()

	// EnableHardwareScaling offloads frame scaling to the render context.
	EnableHardwareScaling()

	// SetVisible toggles between the live surface and the host's
	// audio-only placeholder.
	SetVisible(visible bool)

	// ClearFrame drops the last rendered frame.
	ClearFrame()

	// Release frees hardware resources. Idempotent; the surface is dead
	// afterwards.
	Release()
}

// SurfaceFactory allocates surfaces for new tiles.
type SurfaceFactory interface {
	NewSurface() (Surface, error)
}

// Container is the host view capable of positioning tiles in a grid.
type Container interface {
	// SetDimensions applies new row/column counts.
	SetDimensions(rows, cols int)

	// Place positions a surface at a cell, adding it to the view tree on
	// first placement.
	Place(surface Surface, pos grid.Position, label Label)

	// Remove takes a surface out of the view tree.
	Remove(surface Surface)

	// Clear removes every child.
	Clear()
}
