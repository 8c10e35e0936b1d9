package game

import (
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"moire/moire"
)

// Game presents the moire simulation through ebiten
type Game struct {
	config Config

	sim     *moire.Simulation
	surface *moire.Surface
	watcher *moire.Watcher
	input   *InputPoller
	events  []moire.Event

	// Tracks the surface version last uploaded to the screen
	frames moire.FrameTracker
}

// NewGame creates a new game instance with randomly placed vertices
func NewGame(config Config) *Game {
	seed := uint64(time.Now().UnixNano())
	rng := rand.New(rand.NewPCG(seed, seed>>32|1))

	surface := moire.NewSurface(config.ScreenWidth, config.ScreenHeight)

	return &Game{
		config:  config,
		sim:     moire.NewSimulation(config.Animation, surface.Width(), surface.Height(), rng),
		surface: surface,
		watcher: moire.NewWatcher(config.Animation.MotionThreshold),
		input:   NewInputPoller(),
		events:  make([]moire.Event, 0, 16),
	}
}

// Configure applies the fullscreen window settings. It must be called before RunGame.
func (g *Game) Configure() {
	ebiten.SetWindowTitle(g.config.Title)
	ebiten.SetFullscreen(true)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
	ebiten.SetTPS(g.config.Animation.TicksPerSecond())
	ebiten.SetWindowClosingHandled(true)
	// Only a fresh surface is uploaded; the screen keeps the last frame otherwise
	ebiten.SetScreenClearedEveryFrame(false)
}

// Update advances one frame and checks input
func (g *Game) Update() error {
	g.sim.Step(g.surface)

	g.events = g.input.Poll(g.events[:0])
	if g.watcher.Drain(g.events) == moire.StateTerminated {
		return ebiten.Termination
	}
	return nil
}

// Draw uploads the surface when a new frame has been unlocked
func (g *Game) Draw(screen *ebiten.Image) {
	if !g.frames.NeedsPresent(g.surface) {
		return
	}
	screen.WritePixels(g.surface.Image().Pix)
	g.frames.MarkPresented(g.surface)
}

// Layout returns the fixed surface size; resizing is not supported
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.surface.Width(), g.surface.Height()
}
