package media

import (
	"sync"

	"github.com/conclave-media/videogrid/pkg/errors"
)

// StaticSource is an in-memory Source fed by Push. It backs tests and the
// demo's synthetic participants.
type StaticSource struct {
	id string

	mu      sync.Mutex
	sinks   map[Sink]bool
	closed  bool
	last    Frame
	hasLast bool
}

// NewStaticSource creates a source with the given stream ID.
func NewStaticSource(id string) *StaticSource {
	return &StaticSource{
		id:    id,
		sinks: make(map[Sink]bool),
	}
}

// ID returns the stream ID.
func (s *StaticSource) ID() string {
	return s.id
}

// Attach registers a sink. A newly attached sink immediately receives the
// most recent frame so a freshly bound tile is not blank until the next
// push.
func (s *StaticSource) Attach(sink Sink) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return errors.New(errors.ErrCodeSourceClosed, "attach to closed source").
			WithContext("source_id", s.id)
	}
	s.sinks[sink] = true
	replay := s.hasLast
	last := s.last
	s.mu.Unlock()

	if replay {
		sink.ConsumeFrame(last)
	}
	return nil
}

// Detach unregisters a sink. Safe to call for sinks never attached.
func (s *StaticSource) Detach(sink Sink) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sinks, sink)
}

// Push delivers a frame to all attached sinks. Invalid frames are dropped.
func (s *StaticSource) Push(frame Frame) {
	if !frame.Valid() {
		return
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.last = frame
	s.hasLast = true
	sinks := make([]Sink, 0, len(s.sinks))
	for sink := range s.sinks {
		sinks = append(sinks, sink)
	}
	s.mu.Unlock()

	for _, sink := range sinks {
		sink.ConsumeFrame(frame)
	}
}

// SinkCount returns the number of attached sinks.
func (s *StaticSource) SinkCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sinks)
}

// Close detaches all sinks and rejects future attaches.
func (s *StaticSource) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.sinks = make(map[Sink]bool)
}
