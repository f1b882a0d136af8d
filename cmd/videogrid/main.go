// Command videogrid runs a demo conference grid in the terminal: synthetic
// participants join and leave while their video tiles are reconciled live.
// Click a tile to log its track; press q or Esc to quit.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/conclave-media/videogrid/pkg/config"
	"github.com/conclave-media/videogrid/pkg/grid"
	"github.com/conclave-media/videogrid/pkg/gridview"
	"github.com/conclave-media/videogrid/pkg/logging"
	"github.com/conclave-media/videogrid/pkg/media"
	"github.com/conclave-media/videogrid/pkg/telemetry"
	"github.com/conclave-media/videogrid/pkg/ui/term"
)

var participantNames = []string{
	"Ada Lovelace", "Grace Hopper", "Alan Turing", "Katherine Johnson",
	"Edsger Dijkstra", "Barbara Liskov", "Donald Knuth", "Radia Perlman",
}

// rosterEvent carries a desired roster into the UI event loop.
type rosterEvent struct {
	when   time.Time
	tracks []media.Track
}

func (e *rosterEvent) When() time.Time { return e.when }

func main() {
	configPath := flag.String("config", "videogrid.yaml", "path to config file")
	trace := flag.Bool("trace", false, "emit OpenTelemetry spans to stdout (disturbs the TUI)")
	flag.Parse()

	if err := run(*configPath, *trace); err != nil {
		fmt.Fprintf(os.Stderr, "videogrid: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, trace bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(cfg.Logging.Dir, uuid.New().String())
	if err != nil {
		return err
	}
	defer logger.Close()
	logger.SetMinLevel(logging.Level(cfg.Logging.Level))

	if trace {
		tp, err := telemetry.NewTracerProvider("videogrid-demo")
		if err != nil {
			return err
		}
		defer tp.Shutdown(context.Background())
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	renderCtx := term.NewContext(screen)
	host := term.NewScreen(renderCtx)

	view, err := gridview.New(
		grid.Bounds{MaxRows: cfg.Grid.MaxRows, MaxCols: cfg.Grid.MaxCols},
		host, host,
		gridview.WithRenderContext(renderCtx),
		gridview.WithLogger(logger),
		gridview.WithPlaceholder(cfg.Grid.Placeholder),
		gridview.WithClickHandler(func(track media.Track) {
			logger.Info(logging.CategoryBinder, "click", "tile clicked", map[string]any{
				"track_id": track.ID,
				"name":     track.DisplayName,
			})
		}),
	)
	if err != nil {
		return err
	}
	defer view.Teardown()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	group, ctx := errgroup.WithContext(ctx)

	roster := newRoster(cfg.Demo)
	if err := view.Init(roster.tracks()); err != nil {
		return err
	}

	if cfg.Metrics.Enabled {
		server := &http.Server{Addr: cfg.Metrics.Bind, Handler: telemetry.Handler()}
		group.Go(func() error {
			errCh := make(chan error, 1)
			go func() { errCh <- server.ListenAndServe() }()
			select {
			case <-ctx.Done():
				server.Close()
				return nil
			case err := <-errCh:
				return err
			}
		})
	}

	// Synthetic churn: every few seconds a participant joins or leaves.
	group.Go(func() error {
		ticker := time.NewTicker(3 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				roster.churn(cfg.Grid.MaxRows * cfg.Grid.MaxCols)
				postEvent(screen, logger, &rosterEvent{when: time.Now(), tracks: roster.tracks()})
			}
		}
	})

	// Frame feed: animate every participant's video.
	group.Go(func() error {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for tick := 0; ; tick++ {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				roster.pushFrames(tick)
			}
		}
	})

	// UI event loop. All grid mutation happens here.
	group.Go(func() error {
		defer cancel()
		for {
			if ctx.Err() != nil {
				return nil
			}
			switch ev := screen.PollEvent().(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Rune() == 'q' {
					return nil
				}
			case *tcell.EventMouse:
				if ev.Buttons()&tcell.Button1 != 0 {
					x, y := ev.Position()
					if pos, ok := host.PositionAt(x, y); ok {
						view.Click(pos)
					}
				}
			case *tcell.EventResize:
				if err := view.Update(view.Tracks()); err != nil {
					return err
				}
			case *rosterEvent:
				if err := view.Update(ev.tracks); err != nil {
					return err
				}
			case nil:
				return nil
			}
		}
	})

	// Wake the poll loop when another goroutine fails or quits.
	group.Go(func() error {
		<-ctx.Done()
		postEvent(screen, logger, tcell.NewEventInterrupt(nil))
		return nil
	})

	return group.Wait()
}

// postEvent delivers an event to the UI loop. A full queue drops the event
// and leaves the grid stale until the next tick, so the drop is logged.
func postEvent(screen tcell.Screen, logger *logging.Logger, ev tcell.Event) {
	if err := screen.PostEvent(ev); err != nil {
		logger.Warn(logging.CategoryReconcile, "post_event", "event dropped", map[string]any{
			"event": fmt.Sprintf("%T", ev),
			"error": err.Error(),
		})
	}
}

// roster maintains the synthetic participant set. The churn ticker and the
// frame feeder run on separate goroutines, so every method takes the lock.
type roster struct {
	cfg config.DemoConfig

	mu      sync.Mutex
	entries []*participant
	joined  int
}

type participant struct {
	track  media.Track
	source *media.StaticSource
}

func newRoster(cfg config.DemoConfig) *roster {
	r := &roster{cfg: cfg}
	r.add()
	r.add()
	return r
}

func (r *roster) add() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.addLocked()
}

func (r *roster) addLocked() {
	name := participantNames[r.joined%len(participantNames)]
	r.joined++

	id := uuid.New().String()
	var source *media.StaticSource
	// Every third participant is audio-only.
	if r.joined%3 != 0 {
		source = media.NewStaticSource(id)
	}

	track := media.Track{ID: id, DisplayName: name}
	if source != nil {
		track.Source = source
	}
	r.entries = append(r.entries, &participant{track: track, source: source})
}

func (r *roster) churn(capacity int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.entries) >= capacity || (len(r.entries) > 1 && r.joined%4 == 0) {
		gone := r.entries[0]
		if gone.source != nil {
			gone.source.Close()
		}
		r.entries = r.entries[1:]
		r.joined++
		return
	}
	r.addLocked()
}

func (r *roster) tracks() []media.Track {
	r.mu.Lock()
	defer r.mu.Unlock()

	tracks := make([]media.Track, len(r.entries))
	for i, p := range r.entries {
		tracks[i] = p.track
	}
	return tracks
}

// pushFrames feeds each video participant a moving gradient.
func (r *roster) pushFrames(tick int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	width := r.cfg.FrameWidth
	height := r.cfg.FrameHeight
	for i, p := range r.entries {
		if p.source == nil {
			continue
		}
		luma := make([]byte, width*height)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				luma[y*width+x] = byte((x*8 + y*4 + tick*16 + i*64) % 256)
			}
		}
		p.source.Push(media.Frame{Width: width, Height: height, Luma: luma})
	}
}
