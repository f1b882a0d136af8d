package media

import (
	"context"
	"encoding/binary"
	"errors"
	"io"

	"github.com/pion/rtp"
	"github.com/pion/webrtc/v4"

	griderrors "github.com/conclave-media/videogrid/pkg/errors"
)

// rawLumaHeader is width (uint16) + height (uint16), big endian, followed
// by width*height luma samples. One frame per packet.
const rawLumaHeader = 4

// RTPSource adapts a remote WebRTC track into a Source. It reads RTP
// packets carrying raw luma frames and fans them out to attached sinks.
// Codec depacketization belongs upstream; this source only understands the
// raw-luma payload used by in-process pipelines.
type RTPSource struct {
	remote *webrtc.TrackRemote
	fan    *StaticSource
}

// NewRTPSource wraps a remote track.
func NewRTPSource(remote *webrtc.TrackRemote) *RTPSource {
	return &RTPSource{
		remote: remote,
		fan:    NewStaticSource(remote.ID()),
	}
}

// ID returns the remote track's ID.
func (s *RTPSource) ID() string {
	return s.remote.ID()
}

// Attach registers a sink for decoded frames.
func (s *RTPSource) Attach(sink Sink) error {
	return s.fan.Attach(sink)
}

// Detach unregisters a sink.
func (s *RTPSource) Detach(sink Sink) {
	s.fan.Detach(sink)
}

// Run reads packets until the track ends or ctx is cancelled. Call it on a
// dedicated goroutine; sinks receive frames on that goroutine.
func (s *RTPSource) Run(ctx context.Context) error {
	defer s.fan.Close()

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		pkt, _, err := s.remote.ReadRTP()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return griderrors.Wrap(err, griderrors.ErrCodeSourceRead, "reading remote track").
				WithContext("track_id", s.remote.ID())
		}

		if frame, ok := frameFromPacket(pkt); ok {
			s.fan.Push(frame)
		}
	}
}

// frameFromPacket unpacks a raw-luma payload. Malformed packets are
// skipped rather than failing the whole stream.
func frameFromPacket(pkt *rtp.Packet) (Frame, bool) {
	payload := pkt.Payload
	if len(payload) < rawLumaHeader {
		return Frame{}, false
	}

	width := int(binary.BigEndian.Uint16(payload[0:2]))
	height := int(binary.BigEndian.Uint16(payload[2:4]))
	luma := payload[rawLumaHeader:]

	frame := Frame{Width: width, Height: height, Luma: luma}
	if !frame.Valid() {
		return Frame{}, false
	}
	return frame, true
}

// EncodeFramePayload packs a frame into the raw-luma RTP payload format.
// Used by senders feeding an RTPSource on the far side.
func EncodeFramePayload(frame Frame) []byte {
	payload := make([]byte, rawLumaHeader+len(frame.Luma))
	binary.BigEndian.PutUint16(payload[0:2], uint16(frame.Width))
	binary.BigEndian.PutUint16(payload[2:4], uint16(frame.Height))
	copy(payload[rawLumaHeader:], frame.Luma)
	return payload
}
