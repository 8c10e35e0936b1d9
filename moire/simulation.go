package moire

import (
	"math/rand/v2"
)

// Vertex is one bouncing polygon corner
type Vertex struct {
	X, Y   int // Position in pixels
	DX, DY int // Velocity in pixels per frame, only the sign ever changes
}

// Simulation holds the whole animation state and is advanced one frame
// at a time by a display adapter
type Simulation struct {
	config   Config
	width    int
	height   int
	Vertices []Vertex

	history *TrailHistory
	phase   float64
	frame   uint64
}

// NewSimulation places the configured number of vertices at random positions
// inside a width x height surface with random velocity signs
func NewSimulation(config Config, width, height int, rng *rand.Rand) *Simulation {
	vertices := make([]Vertex, config.VertexCount)
	for i := range vertices {
		vertices[i] = Vertex{
			X:  rng.IntN(max(width, 1)),
			Y:  rng.IntN(max(height, 1)),
			DX: randomSign(rng) * config.Speed,
			DY: randomSign(rng) * config.Speed,
		}
	}
	return NewSimulationWithVertices(config, width, height, vertices)
}

// NewSimulationWithVertices builds a simulation from explicit vertices.
// The trail keeps TrailLength frames of edges for however many vertices are given.
func NewSimulationWithVertices(config Config, width, height int, vertices []Vertex) *Simulation {
	if len(config.Palette) == 0 {
		config.Palette = DefaultPalette()
	}
	return &Simulation{
		config:   config,
		width:    width,
		height:   height,
		Vertices: vertices,
		history:  NewTrailHistory(len(vertices) * config.TrailLength),
	}
}

// randomSign returns -1 or +1 with equal probability
func randomSign(rng *rand.Rand) int {
	return rng.IntN(2)*2 - 1
}

// Config returns the configuration the simulation was built with
func (s *Simulation) Config() Config { return s.config }

// Phase returns the current color phase
func (s *Simulation) Phase() float64 { return s.phase }

// Frame returns the number of completed frames
func (s *Simulation) Frame() uint64 { return s.frame }

// History returns the trail history
func (s *Simulation) History() *TrailHistory { return s.history }

// edge returns the polygon side from vertex i to its successor
func (s *Simulation) edge(i int) Edge {
	a := s.Vertices[i]
	b := s.Vertices[(i+1)%len(s.Vertices)]
	return Edge{X1: a.X, Y1: a.Y, X2: b.X, Y2: b.Y}
}

// Step renders one frame into surf and then moves the vertices.
// The oldest edges are erased before the new ones are drawn so the trail
// never holds more than the history capacity.
func (s *Simulation) Step(surf *Surface) {
	n := len(s.Vertices)
	if n == 0 {
		return
	}

	stroke := CycleColor(s.config.Palette, s.phase)
	s.phase += s.config.PhaseStep

	surf.Lock()

	// Erase pass
	s.history.Evictions(n, func(e Edge) {
		DrawLine(surf, e.X1, e.Y1, e.X2, e.Y2, Background)
	})

	// Draw pass
	for i := 0; i < n; i++ {
		e := s.edge(i)
		DrawLine(surf, e.X1, e.Y1, e.X2, e.Y2, stroke)
		s.history.Record(e)
	}

	surf.Unlock()

	s.bounce()
	s.frame++
}

// bounce reflects each vertex off the surface edges and moves it one step
func (s *Simulation) bounce() {
	for i := range s.Vertices {
		v := &s.Vertices[i]
		v.X, v.DX = bounceAxis(v.X, v.DX, s.width)
		v.Y, v.DY = bounceAxis(v.Y, v.DY, s.height)
	}
}

// bounceAxis advances p by d along an axis of the given size, flipping d first
// if the step would leave [0, size). The result is clamped into range so
// surfaces narrower than two steps still hold the vertex.
func bounceAxis(p, d, size int) (int, int) {
	if p+d >= size || p+d < 0 {
		d = -d
	}
	p += d
	if p >= size {
		p = size - 1
	}
	if p < 0 {
		p = 0
	}
	return p, d
}
