package gridview

import (
	"strings"
	"unicode"

	"github.com/conclave-media/videogrid/pkg/errors"
	"github.com/conclave-media/videogrid/pkg/logging"
	"github.com/conclave-media/videogrid/pkg/telemetry"
)

// bind wires a slot's surface to its track: video surfaces are initialized
// against the shared render context, configured for fill scaling, and
// attached as a sink of the track's source; audio-only slots just hide the
// surface behind the placeholder.
func (v *View) bind(s *slot) error {
	if !s.track.HasVideo() {
		s.surface.SetVisible(false)
		return nil
	}

	if err := s.surface.Init(v.renderCtx); err != nil {
		s.surface.Release()
		return errors.Wrap(err, errors.ErrCodeSurfaceInit, "initializing tile surface").
			WithContext("track_id", s.track.ID)
	}
	s.surface.SetFillScaling()
	s.surface.EnableHardwareScaling()

	if err := s.track.Source.Attach(s.surface); err != nil {
		s.surface.Release()
		return errors.Wrap(err, errors.ErrCodeSurfaceAttach, "attaching surface to track source").
			WithContext("track_id", s.track.ID)
	}
	s.attached = true
	s.surface.SetVisible(true)
	telemetry.RecordAttach()

	v.logger.Debug(logging.CategoryBinder, "bind", "surface attached", map[string]any{
		"track_id": s.track.ID,
	})
	return nil
}

// unbind reverses bind. It is idempotent and safe to call for slots whose
// video was never attached; the surface is always released so hardware
// resources cannot leak on any exit path.
func (v *View) unbind(s *slot) {
	if s.released {
		return
	}
	if s.attached {
		s.track.Source.Detach(s.surface)
		s.attached = false
		telemetry.RecordDetach()
	}
	s.surface.ClearFrame()
	s.surface.Release()
	s.released = true

	v.logger.Debug(logging.CategoryBinder, "unbind", "surface released", map[string]any{
		"track_id": s.track.ID,
	})
}

// label builds the tile label for a track.
func (v *View) label(s *slot) Label {
	return Label{
		Name:     s.track.DisplayName,
		Initials: Initials(s.track.DisplayName, v.placeholder),
		HasVideo: s.track.HasVideo(),
	}
}

// Initials derives the tile initials from a display name: the first letter
// of each whitespace-separated token, uppercased. An empty name yields the
// placeholder.
func Initials(name, placeholder string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return placeholder
	}

	var sb strings.Builder
	for _, field := range fields {
		for _, r := range field {
			sb.WriteRune(unicode.ToUpper(r))
			break
		}
	}
	return sb.String()
}
