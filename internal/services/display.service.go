package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"deskgauge/internal/models"
)

const header = "System Usage"

// ErrLoopRunning is returned when Run is called on a loop that already ran
var ErrLoopRunning = errors.New("display loop already started")

// Snapshotter produces metric snapshots
type Snapshotter interface {
	Sample() models.MetricSnapshot
}

// Surface draws frames. Render is called from the display loop goroutine and
// must not block for long.
type Surface interface {
	Render(frame models.Frame)
}

// EventSink accepts shell events from input goroutines
type EventSink interface {
	Send(ev ShellEvent) bool
}

// WidgetState is the mutable state of the widget, touched only by the loop
type WidgetState struct {
	Previous    models.MetricSnapshot // retained for the next rate computation
	Current     models.MetricSnapshot
	Rate        models.RateSample
	Seeded      bool
	unavailable map[models.MetricKind]bool
}

// DisplayLoop samples metrics on a fixed interval and renders them
type DisplayLoop struct {
	sampler    Snapshotter
	surface    Surface
	shell      *Shell
	interval   time.Duration
	thresholds Thresholds

	state   WidgetState
	events  chan ShellEvent
	latest  atomic.Pointer[models.Frame]
	reading atomic.Pointer[models.Reading]

	mu      sync.Mutex
	started bool
	done    chan struct{}
}

var displayLoop *DisplayLoop

// NewDisplayLoop creates a loop. Nothing is sampled until Seed or Run.
func NewDisplayLoop(sampler Snapshotter, surface Surface, shell *Shell, interval time.Duration, thresholds Thresholds) *DisplayLoop {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return &DisplayLoop{
		sampler:    sampler,
		surface:    surface,
		shell:      shell,
		interval:   interval,
		thresholds: thresholds,
		state: WidgetState{
			unavailable: make(map[models.MetricKind]bool),
		},
		events: make(chan ShellEvent, 64),
		done:   make(chan struct{}),
	}
}

// RegisterDisplayLoop makes the loop reachable from the HTTP layer
func RegisterDisplayLoop(d *DisplayLoop) {
	displayLoop = d
}

// GetDisplayLoop returns the registered loop
func GetDisplayLoop() *DisplayLoop {
	return displayLoop
}

// Seed takes the initial snapshot so the first tick computes a rate over a
// real interval, then renders it.
func (d *DisplayLoop) Seed() {
	if d.closed() {
		return
	}
	snap := d.sampler.Sample()
	d.noteAvailability(snap)

	d.state.Current = snap
	d.state.Previous = snap
	d.state.Rate = models.RateSample{Available: snap.NetworkAvailable()}
	d.state.Seeded = true

	d.render()
}

// Tick runs one sample-compute-render cycle
func (d *DisplayLoop) Tick() {
	if d.closed() {
		return
	}
	if !d.state.Seeded {
		d.Seed()
		return
	}

	curr := d.sampler.Sample()
	d.noteAvailability(curr)

	rate := ComputeRate(d.state.Previous, curr, d.interval)
	if rate.Reset {
		log.Printf("[LOOP] %v: clamping rate to zero for this tick",
			fmt.Errorf("%w (sent %d→%d, recv %d→%d)", ErrStaleCounterReset,
				d.state.Previous.BytesSent, curr.BytesSent, d.state.Previous.BytesRecv, curr.BytesRecv))
	}

	d.state.Current = curr
	d.state.Rate = rate
	if curr.NetworkAvailable() {
		d.state.Previous = curr
	}

	d.render()
}

// Run seeds the loop and ticks until ctx is cancelled or the widget is
// closed. Once Run returns no further tick executes.
func (d *DisplayLoop) Run(ctx context.Context) error {
	d.mu.Lock()
	if d.started {
		d.mu.Unlock()
		return ErrLoopRunning
	}
	d.started = true
	d.mu.Unlock()

	defer close(d.done)

	if !d.state.Seeded {
		d.Seed()
	}

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	log.Printf("[LOOP] Display loop started (interval: %v)", d.interval)

	for {
		select {
		case <-ctx.Done():
			log.Println("[LOOP] Display loop stopped")
			return nil

		case <-ticker.C:
			if ctx.Err() != nil {
				return nil
			}
			d.Tick()

		case ev := <-d.events:
			if d.handle(ev) {
				log.Println("[LOOP] Widget closed")
				return nil
			}
		}
	}
}

// Send queues a shell event for the loop. It reports false once the loop has
// stopped or when the queue is full.
func (d *DisplayLoop) Send(ev ShellEvent) bool {
	if d.closed() {
		return false
	}
	select {
	case d.events <- ev:
		return true
	case <-d.done:
		return false
	default:
		log.Printf("[LOOP] Event queue full, dropping %s", ev.Type)
		return false
	}
}

// Done is closed when Run returns
func (d *DisplayLoop) Done() <-chan struct{} {
	return d.done
}

// Latest returns the most recently rendered frame
func (d *DisplayLoop) Latest() (models.Frame, bool) {
	frame := d.latest.Load()
	if frame == nil {
		return models.Frame{}, false
	}
	return *frame, true
}

// LatestReading returns the values behind the most recent frame
func (d *DisplayLoop) LatestReading() (models.Reading, bool) {
	reading := d.reading.Load()
	if reading == nil {
		return models.Reading{}, false
	}
	return *reading, true
}

func (d *DisplayLoop) closed() bool {
	select {
	case <-d.done:
		return true
	default:
		return false
	}
}

// handle applies a shell event and reports whether the widget should exit
func (d *DisplayLoop) handle(ev ShellEvent) bool {
	redraw, exit := d.shell.Apply(ev)
	if exit {
		return true
	}
	if redraw && d.state.Seeded {
		d.render()
	}
	return false
}

func (d *DisplayLoop) render() {
	reading := models.NewReading(d.state.Current, d.state.Rate)
	d.reading.Store(&reading)

	frame := d.compose()
	d.latest.Store(&frame)
	d.surface.Render(frame)
}

// compose builds a frame from the current readings and the shell state
func (d *DisplayLoop) compose() models.Frame {
	theme := d.shell.Theme()
	palette := theme.Palette()
	snap := d.state.Current
	rate := d.state.Rate

	labels := make([]models.Label, 0, len(models.MetricKinds))
	for _, kind := range models.MetricKinds {
		label := models.Label{
			Kind:  kind,
			ID:    kind.LabelID(),
			Name:  kind.Name(),
			Text:  Placeholder,
			Color: palette.Text,
		}

		switch kind {
		case models.MetricUpload, models.MetricDownload:
			if rate.Available {
				value := rate.UploadKBps
				if kind == models.MetricDownload {
					value = rate.DownloadKBps
				}
				label.Text = FormatRate(value)
				label.Color = palette.Accent
			}
		default:
			if percent, ok := snap.Percent(kind); ok {
				tier := d.thresholds.Classify(percent)
				label.Text = FormatPercent(percent)
				label.Color = tier.Color()
				label.Tier = &tier
			}
		}

		labels = append(labels, label)
	}

	frame := models.Frame{
		Header:        header,
		Theme:         theme,
		Palette:       palette,
		ToggleCaption: theme.ToggleCaption(),
		Labels:        labels,
		Window:        d.shell.Geometry(),
		InTray:        d.shell.InTray(),
		RenderedAt:    time.Now(),
	}
	if frame.InTray {
		frame.TrayMenu = TrayMenu
	}
	return frame
}

// noteAvailability logs readings that become unavailable or recover
func (d *DisplayLoop) noteAvailability(snap models.MetricSnapshot) {
	for _, kind := range []models.MetricKind{models.MetricCPU, models.MetricMemory, models.MetricDisk, models.MetricUpload} {
		err := snap.Errors[kind]
		was := d.state.unavailable[kind]
		switch {
		case err != nil && !was:
			log.Printf("[LOOP] %v", err)
			d.state.unavailable[kind] = true
		case err == nil && was:
			log.Printf("[LOOP] %s reading recovered", kind.Name())
			d.state.unavailable[kind] = false
		}
	}
}
