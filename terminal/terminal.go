// Package terminal runs the moire animation inside a text terminal.
// The simulation renders into a pixel surface that is downscaled to two
// pixels per character cell and drawn with upper-half-block glyphs.
package terminal

import (
	"errors"
	"fmt"
	"image"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	xdraw "golang.org/x/image/draw"

	"moire/moire"
)

// ErrNoDisplay is returned when the terminal reports no usable size
var ErrNoDisplay = errors.New("terminal has no usable size")

// ErrInputClosed is returned by Run when the terminal stops delivering
// events before input ended the screensaver
var ErrInputClosed = errors.New("terminal input closed")

// Supersample is how many surface pixels map onto one half-cell per axis
const Supersample = 2

// halfBlock draws the upper pixel in the foreground and the lower in the background
const halfBlock = '▀'

// Runner drives the simulation on a tcell screen
type Runner struct {
	screen tcell.Screen
	config moire.Config

	sim     *moire.Simulation
	surface *moire.Surface
	cells   *image.RGBA
	watcher *moire.Watcher

	cols, rows int
	frames     moire.FrameTracker

	eventCh   chan tcell.Event
	pollDone  chan struct{}
	doneCh    chan struct{}
	closeOnce sync.Once
	pending   []moire.Event
}

// NewRunner initializes screen and seeds a simulation sized to it.
// The terminal size is fixed for the whole run.
func NewRunner(screen tcell.Screen, config moire.Config, rng *rand.Rand) (*Runner, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("terminal init: %w", err)
	}

	cols, rows := screen.Size()
	if cols <= 0 || rows <= 0 {
		screen.Fini()
		return nil, fmt.Errorf("size %dx%d: %w", cols, rows, ErrNoDisplay)
	}

	screen.HideCursor()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.Clear()

	width, height := cols*Supersample, rows*2*Supersample
	surface := moire.NewSurface(width, height)

	r := &Runner{
		screen:   screen,
		config:   config,
		sim:      moire.NewSimulation(config, width, height, rng),
		surface:  surface,
		cells:    image.NewRGBA(image.Rect(0, 0, cols, rows*2)),
		watcher:  moire.NewWatcher(config.MotionThreshold),
		cols:     cols,
		rows:     rows,
		eventCh:  make(chan tcell.Event, 256),
		pollDone: make(chan struct{}),
		doneCh:   make(chan struct{}),
		pending:  make([]moire.Event, 0, 16),
	}

	// Present the cleared surface before the first frame
	r.present()
	return r, nil
}

// Run animates until input ends the screensaver. It returns nil on a
// qualifying input event or after Close, and ErrInputClosed if the screen
// stops delivering events first.
func (r *Runner) Run() error {
	go r.pollLoop()

	ticker := time.NewTicker(r.config.FrameDelay)
	defer ticker.Stop()

	for {
		r.Frame()

		inputClosed := false
		select {
		case <-r.doneCh:
			return nil
		case <-r.pollDone:
			inputClosed = true
		case <-ticker.C:
		}

		if r.watcher.Drain(r.drainEvents()) == moire.StateTerminated {
			return nil
		}
		if inputClosed {
			select {
			case <-r.doneCh:
				return nil
			default:
				return ErrInputClosed
			}
		}
	}
}

// Frame steps the simulation once and presents the result
func (r *Runner) Frame() {
	r.sim.Step(r.surface)
	r.present()
}

// Close restores the terminal. It is safe to call more than once.
func (r *Runner) Close() {
	r.closeOnce.Do(func() {
		close(r.doneCh)
		r.screen.Fini()
	})
}

// pollLoop forwards tcell events until the screen is finalized
func (r *Runner) pollLoop() {
	defer close(r.pollDone)

	for {
		ev := r.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case r.eventCh <- ev:
		case <-r.doneCh:
			return
		}
	}
}

// drainEvents collects every event queued since the previous frame
func (r *Runner) drainEvents() []moire.Event {
	r.pending = r.pending[:0]
	for {
		select {
		case ev := <-r.eventCh:
			r.pending = append(r.pending, translateEvent(ev))
		default:
			return r.pending
		}
	}
}

// present downscales the surface into cell pixels and shows them
func (r *Runner) present() {
	if !r.frames.NeedsPresent(r.surface) {
		return
	}
	r.frames.MarkPresented(r.surface)

	xdraw.BiLinear.Scale(r.cells, r.cells.Bounds(), r.surface.Image(), r.surface.Image().Bounds(), xdraw.Src, nil)

	for y := 0; y < r.rows; y++ {
		for x := 0; x < r.cols; x++ {
			top := r.cells.RGBAAt(x, y*2)
			bottom := r.cells.RGBAAt(x, y*2+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			r.screen.SetContent(x, y, halfBlock, nil, style)
		}
	}
	r.screen.Show()
}
