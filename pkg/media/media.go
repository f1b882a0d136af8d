// Package media defines the track and video-source model bound into grid
// tiles. A Track is identity only; the grid never owns or mutates it.
package media

// Track is a participant's bindable media identity.
type Track struct {
	// ID is the stable identity key used for reconciliation. Two Track
	// values with equal IDs refer to the same participant track even if
	// the display name or source pointer differs. Reconciliation never
	// compares the other fields.
	ID string

	// DisplayName is shown on the tile and used to derive initials.
	DisplayName string

	// Source delivers video frames, or nil for an audio-only participant.
	Source Source
}

// HasVideo reports whether the track carries a video source.
func (t Track) HasVideo() bool {
	return t.Source != nil
}

// Frame is one decoded video frame: a luma plane, enough for any renderer
// that maps brightness to output. Codec work happens upstream of Source
// implementations and is out of scope here.
type Frame struct {
	Width  int
	Height int
	Luma   []byte // row-major, len == Width*Height
}

// Valid reports whether the frame dimensions match its sample buffer.
func (f Frame) Valid() bool {
	return f.Width > 0 && f.Height > 0 && len(f.Luma) == f.Width*f.Height
}

// Sink consumes frames from a Source. ConsumeFrame may be called from the
// source's reader goroutine; implementations synchronize internally.
type Sink interface {
	ConsumeFrame(Frame)
}

// Source is a live video stream with explicit attach/detach semantics.
// Every Attach must be matched by a Detach; Detach of a sink that was
// never attached is a no-op.
type Source interface {
	// ID identifies the underlying stream.
	ID() string

	// Attach registers a sink to receive subsequent frames.
	Attach(Sink) error

	// Detach unregisters a sink. Idempotent.
	Detach(Sink)
}
