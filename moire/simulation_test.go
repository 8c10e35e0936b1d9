package moire

import (
	"math/rand/v2"
	"testing"
)

func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestNewSimulationSeedsInsideBounds(t *testing.T) {
	cfg := DefaultConfig()
	sim := NewSimulation(cfg, 64, 48, newTestRand())

	if len(sim.Vertices) != cfg.VertexCount {
		t.Fatalf("got %d vertices, want %d", len(sim.Vertices), cfg.VertexCount)
	}
	if sim.History().Cap() != cfg.HistoryCapacity() {
		t.Errorf("history cap %d, want %d", sim.History().Cap(), cfg.HistoryCapacity())
	}
	for i, v := range sim.Vertices {
		if v.X < 0 || v.X >= 64 || v.Y < 0 || v.Y >= 48 {
			t.Errorf("vertex %d at (%d,%d) outside surface", i, v.X, v.Y)
		}
		if abs(v.DX) != cfg.Speed || abs(v.DY) != cfg.Speed {
			t.Errorf("vertex %d velocity (%d,%d), want magnitude %d", i, v.DX, v.DY, cfg.Speed)
		}
	}
}

func TestStepKeepsVerticesInBounds(t *testing.T) {
	sizes := []struct{ w, h int }{{100, 100}, {37, 211}, {5, 5}, {3, 2}}
	for _, size := range sizes {
		cfg := DefaultConfig()
		sim := NewSimulation(cfg, size.w, size.h, newTestRand())
		surf := NewSurface(size.w, size.h)

		for frame := 0; frame < 500; frame++ {
			sim.Step(surf)
			for i, v := range sim.Vertices {
				if v.X < 0 || v.X >= size.w || v.Y < 0 || v.Y >= size.h {
					t.Fatalf("%dx%d frame %d: vertex %d at (%d,%d)", size.w, size.h, frame, i, v.X, v.Y)
				}
				if abs(v.DX) != cfg.Speed || abs(v.DY) != cfg.Speed {
					t.Fatalf("%dx%d frame %d: vertex %d velocity (%d,%d)", size.w, size.h, frame, i, v.DX, v.DY)
				}
			}
		}
	}
}

func TestStepReflectsAtBoundary(t *testing.T) {
	cfg := DefaultConfig()
	sim := NewSimulationWithVertices(cfg, 100, 100, []Vertex{{X: 0, Y: 0, DX: 4, DY: 4}})
	surf := NewSurface(100, 100)

	flipped := false
	for frame := 0; frame < 30; frame++ {
		before := sim.Vertices[0]
		sim.Step(surf)
		after := sim.Vertices[0]

		if before.X+before.DX >= 100 {
			if after.DX != -4 || after.DY != -4 {
				t.Fatalf("frame %d: velocity (%d,%d) after hitting the edge, want (-4,-4)", frame, after.DX, after.DY)
			}
			if after.X != 92 || after.Y != 92 {
				t.Fatalf("frame %d: position (%d,%d), want (92,92)", frame, after.X, after.Y)
			}
			flipped = true
			break
		}
		if after.DX != 4 || after.X != before.X+4 {
			t.Fatalf("frame %d: moved from %d to %d with dx %d before reaching the edge", frame, before.X, after.X, after.DX)
		}
	}
	if !flipped {
		t.Fatal("vertex never reached the right edge")
	}
}

func TestStepAdvancesPhaseAndPresents(t *testing.T) {
	cfg := DefaultConfig()
	sim := NewSimulation(cfg, 80, 60, newTestRand())
	surf := NewSurface(80, 60)

	sim.Step(surf)
	if surf.Locked() {
		t.Error("surface still locked after a frame")
	}
	if surf.Version() != 1 {
		t.Errorf("surface version %d, want 1", surf.Version())
	}
	if sim.Frame() != 1 {
		t.Errorf("frame %d, want 1", sim.Frame())
	}
	if sim.Phase() != cfg.PhaseStep {
		t.Errorf("phase %v, want %v", sim.Phase(), cfg.PhaseStep)
	}

	// The first frame is stroked with the first palette entry
	lit := litPixels(surf)
	if len(lit) == 0 {
		t.Fatal("first frame drew nothing")
	}
	for p, c := range lit {
		if c != cfg.Palette[0] {
			t.Fatalf("pixel %v = %06x, want %06x", p, uint32(c), uint32(cfg.Palette[0]))
		}
	}
}

func TestTrailStaysBounded(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TrailLength = 3
	const w, h = 60, 40
	sim := NewSimulation(cfg, w, h, newTestRand())
	surf := NewSurface(w, h)

	for frame := 0; frame < 300; frame++ {
		sim.Step(surf)

		if sim.History().Len() > cfg.HistoryCapacity() {
			t.Fatalf("frame %d: history holds %d edges, capacity %d", frame, sim.History().Len(), cfg.HistoryCapacity())
		}

		// Every lit pixel must belong to an edge that is still in the history
		trail := NewSurface(w, h)
		trail.Lock()
		for _, e := range sim.History().Edges() {
			DrawLine(trail, e.X1, e.Y1, e.X2, e.Y2, testStroke)
		}
		trail.Unlock()

		for p := range litPixels(surf) {
			if trail.At(p[0], p[1]) == Background {
				t.Fatalf("frame %d: pixel %v lit but not on any remembered edge", frame, p)
			}
		}
	}
}

func TestStepWithoutVerticesIsNoop(t *testing.T) {
	sim := NewSimulationWithVertices(DefaultConfig(), 10, 10, nil)
	surf := NewSurface(10, 10)
	sim.Step(surf)
	if surf.Version() != 0 || sim.Frame() != 0 {
		t.Errorf("empty simulation touched the surface")
	}
}

func TestBounceAxis(t *testing.T) {
	tests := []struct {
		name         string
		p, d, size   int
		wantP, wantD int
	}{
		{"free move", 10, 4, 100, 14, 4},
		{"hits far edge", 96, 4, 100, 92, -4},
		{"just inside far edge", 95, 4, 100, 99, 4},
		{"hits near edge", 3, -4, 100, 7, 4},
		{"lands on zero", 4, -4, 100, 0, -4},
		{"narrow axis clamps", 1, 4, 3, 0, -4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, d := bounceAxis(tt.p, tt.d, tt.size)
			if p != tt.wantP || d != tt.wantD {
				t.Errorf("bounceAxis(%d,%d,%d) = (%d,%d), want (%d,%d)", tt.p, tt.d, tt.size, p, d, tt.wantP, tt.wantD)
			}
		})
	}
}
