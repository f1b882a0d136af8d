package gridview

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/conclave-media/videogrid/pkg/errors"
	"github.com/conclave-media/videogrid/pkg/grid"
	"github.com/conclave-media/videogrid/pkg/logging"
	"github.com/conclave-media/videogrid/pkg/media"
	"github.com/conclave-media/videogrid/pkg/telemetry"
)

// slot is one live grid cell: a surface bound to exactly one track.
type slot struct {
	track    media.Track
	surface  Surface
	pos      grid.Position
	attached bool
	released bool
}

// View is the grid reconciler. It owns every slot and surface; tracks are
// supplied externally and only referenced for identity.
//
// All methods must run on the host's UI event loop. Update calls are
// serialized by that loop; the View performs no locking of its own.
type View struct {
	bounds      grid.Bounds
	container   Container
	factory     SurfaceFactory
	renderCtx   RenderContext
	onClick     func(media.Track)
	logger      *logging.Logger
	placeholder string

	slots    []*slot
	tornDown bool
}

// Option configures a View.
type Option func(*View)

// WithClickHandler sets the callback invoked when a tile is clicked.
func WithClickHandler(fn func(media.Track)) Option {
	return func(v *View) { v.onClick = fn }
}

// WithLogger sets the structural-change event logger.
func WithLogger(l *logging.Logger) Option {
	return func(v *View) { v.logger = l }
}

// WithRenderContext injects the shared hardware rendering context.
func WithRenderContext(ctx RenderContext) Option {
	return func(v *View) { v.renderCtx = ctx }
}

// WithPlaceholder overrides the initials placeholder for unnamed tracks.
func WithPlaceholder(s string) Option {
	return func(v *View) { v.placeholder = s }
}

// New creates a grid view with fixed bounds over the given host container.
func New(bounds grid.Bounds, container Container, factory SurfaceFactory, opts ...Option) (*View, error) {
	if err := bounds.Validate(); err != nil {
		return nil, err
	}
	if container == nil || factory == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "grid view requires a container and a surface factory")
	}

	v := &View{
		bounds:      bounds,
		container:   container,
		factory:     factory,
		placeholder: "--",
	}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

// Init populates the grid from the initial track list, allocating one slot
// per track in input order, then computes the layout. Capacity is enforced
// before any surface is allocated.
func (v *View) Init(tracks []media.Track) error {
	if err := v.checkLive(); err != nil {
		return err
	}

	tracks = dedupe(tracks)
	if err := v.checkCapacity(tracks); err != nil {
		return err
	}

	for _, track := range tracks {
		s, err := v.allocate(track)
		if err != nil {
			return err
		}
		v.slots = append(v.slots, s)
	}

	v.logger.Info(logging.CategoryReconcile, "init", "grid initialized", map[string]any{
		"tracks": len(v.slots),
	})
	return v.applyLayout()
}

// Update reconciles the grid against the desired roster in two phases:
// absent tracks are unbound and removed, then the slot list is rebuilt in
// desired order, reusing the existing surface for every retained track so
// unchanged participants never flicker. The final on-screen order equals
// the input order exactly.
func (v *View) Update(tracks []media.Track) error {
	if err := v.checkLive(); err != nil {
		return err
	}

	tracks = dedupe(tracks)
	if err := v.checkCapacity(tracks); err != nil {
		return err
	}

	ctx, span := telemetry.StartSpan(context.Background(), "gridview.update")
	defer span.End()

	desired := make([]string, len(tracks))
	for i, t := range tracks {
		desired[i] = t.ID
	}
	diff := grid.Reconcile(v.trackIDs(), desired)

	telemetry.SetAttributes(ctx,
		attribute.Int("grid.removed", len(diff.Removed)),
		attribute.Int("grid.added", len(diff.Added)),
		attribute.Int("grid.retained", len(diff.Retained)),
	)

	before := len(v.slots)

	// Removal phase: detach surfaces whose tracks left the roster.
	removed := make(map[string]bool, len(diff.Removed))
	for _, id := range diff.Removed {
		removed[id] = true
	}
	existing := make(map[string]*slot, len(v.slots))
	for _, s := range v.slots {
		if removed[s.track.ID] {
			v.unbind(s)
			v.container.Remove(s.surface)
			continue
		}
		existing[s.track.ID] = s
	}

	// Rebuild phase: fresh ordered slot list, reusing retained slots
	// without rebinding and allocating only for additions.
	rebuilt := make([]*slot, 0, len(tracks))
	for _, track := range tracks {
		if s, ok := existing[track.ID]; ok {
			delete(existing, track.ID)
			rebuilt = append(rebuilt, s)
			continue
		}
		s, err := v.allocate(track)
		if err != nil {
			// Keep every still-live slot reachable so Teardown can
			// release it.
			for _, remaining := range existing {
				rebuilt = append(rebuilt, remaining)
			}
			v.slots = rebuilt
			telemetry.RecordError(ctx, err)
			return err
		}
		rebuilt = append(rebuilt, s)
	}
	v.slots = rebuilt

	telemetry.RecordReconcile()
	v.logger.Info(logging.CategoryReconcile, "update", "grid reconciled", map[string]any{
		"before":   before,
		"after":    len(v.slots),
		"removed":  len(diff.Removed),
		"added":    len(diff.Added),
		"retained": len(diff.Retained),
	})

	if err := v.applyLayout(); err != nil {
		telemetry.RecordError(ctx, err)
		return err
	}
	return nil
}

// Teardown releases every surface and clears the container. It must run
// before the host view is destroyed and is safe to call more than once.
func (v *View) Teardown() {
	if v.tornDown {
		return
	}
	for _, s := range v.slots {
		v.unbind(s)
	}
	v.slots = nil
	v.container.Clear()
	v.tornDown = true
	telemetry.RecordTiles(0)

	v.logger.Info(logging.CategoryReconcile, "teardown", "grid torn down", nil)
}

// Click reports the track occupying the given cell to the click callback.
// Returns false if the cell is empty or no callback is registered.
func (v *View) Click(pos grid.Position) bool {
	if v.onClick == nil {
		return false
	}
	for _, s := range v.slots {
		if s.pos == pos {
			v.onClick(s.track)
			return true
		}
	}
	return false
}

// Tracks returns the tracks currently on screen, in display order.
func (v *View) Tracks() []media.Track {
	tracks := make([]media.Track, len(v.slots))
	for i, s := range v.slots {
		tracks[i] = s.track
	}
	return tracks
}

// Len returns the number of live slots.
func (v *View) Len() int {
	return len(v.slots)
}

// allocate creates and binds a slot for a track.
func (v *View) allocate(track media.Track) (*slot, error) {
	surface, err := v.factory.NewSurface()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeSurfaceInit, "allocating tile surface").
			WithContext("track_id", track.ID)
	}
	s := &slot{track: track, surface: surface}
	if err := v.bind(s); err != nil {
		return nil, err
	}
	return s, nil
}

// applyLayout recomputes every slot's position from scratch and applies
// the new dimensions to the container. Positions are assigned in slot
// order; there is no animation.
func (v *View) applyLayout() error {
	layout, err := v.bounds.Arrange(v.trackIDs())
	if err != nil {
		telemetry.RecordLayoutFailure()
		v.logger.Error(logging.CategoryLayout, "recompute", "layout failed", map[string]any{
			"tiles": len(v.slots),
			"error": err.Error(),
		})
		return err
	}

	v.container.SetDimensions(layout.Rows, layout.Cols)
	for i, s := range v.slots {
		s.pos = layout.Positions[i]
		v.container.Place(s.surface, s.pos, v.label(s))
	}
	telemetry.RecordTiles(len(v.slots))

	v.logger.Debug(logging.CategoryLayout, "recompute", "layout applied", map[string]any{
		"tiles": len(v.slots),
		"rows":  layout.Rows,
		"cols":  layout.Cols,
	})
	return nil
}

// checkCapacity enforces the declared bounds unconditionally, before any
// structural mutation. Overflow is a programming error on the caller's
// side and fails fast rather than truncating the roster.
func (v *View) checkCapacity(tracks []media.Track) error {
	if len(tracks) <= v.bounds.Capacity() {
		return nil
	}
	ids := make([]string, len(tracks))
	for i, t := range tracks {
		ids[i] = t.ID
	}
	telemetry.RecordLayoutFailure()
	return errors.New(errors.ErrCodeCapacityExceeded, "more tracks than the grid can hold").
		WithContext("tracks", ids).
		WithContext("count", len(tracks)).
		WithContext("capacity", v.bounds.Capacity())
}

func (v *View) checkLive() error {
	if v.tornDown {
		return errors.New(errors.ErrCodeInvalidInput, "grid view used after teardown")
	}
	return nil
}

func (v *View) trackIDs() []string {
	ids := make([]string, len(v.slots))
	for i, s := range v.slots {
		ids[i] = s.track.ID
	}
	return ids
}

// dedupe keeps the first occurrence of each track ID.
func dedupe(tracks []media.Track) []media.Track {
	seen := make(map[string]bool, len(tracks))
	out := make([]media.Track, 0, len(tracks))
	for _, t := range tracks {
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		out = append(out, t)
	}
	return out
}
