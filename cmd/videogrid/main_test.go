package main

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conclave-media/videogrid/pkg/config"
	"github.com/conclave-media/videogrid/pkg/logging"
)

// The churn ticker and the frame feeder run on separate goroutines, so the
// roster must tolerate concurrent mutation and iteration. Run under -race.
func TestRosterConcurrentChurnAndFrames(t *testing.T) {
	r := newRoster(config.DemoConfig{FrameWidth: 8, FrameHeight: 4})

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			r.churn(8)
		}
	}()
	go func() {
		defer wg.Done()
		for tick := 0; tick < 200; tick++ {
			r.pushFrames(tick)
		}
	}()
	wg.Wait()

	tracks := r.tracks()
	require.NotEmpty(t, tracks)
	assert.LessOrEqual(t, len(tracks), 8)
}

func TestPostEventLogsDroppedEvents(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()

	var buf bytes.Buffer
	logger := logging.NewWriterLogger(&buf, "demo")

	// Nothing drains the queue, so it eventually overflows and the drop
	// must surface in the event log.
	for i := 0; i < 64; i++ {
		postEvent(screen, logger, &rosterEvent{when: time.Now()})
	}

	assert.Contains(t, buf.String(), `"type":"post_event"`)
	assert.Contains(t, buf.String(), "rosterEvent")
}

func TestRosterChurnRespectsCapacity(t *testing.T) {
	r := newRoster(config.DemoConfig{FrameWidth: 8, FrameHeight: 4})
	for i := 0; i < 50; i++ {
		r.churn(4)
		assert.LessOrEqual(t, len(r.tracks()), 4)
	}
}
