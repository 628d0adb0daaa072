package game

import (
	"math/rand/v2"
	"testing"
)

func TestStarSpawnsInsideArea(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 9))
	for i := 0; i < 100; i++ {
		st := NewStarInArea(rng, -100, 100, 50, 200)
		if st.X < -100 || st.X > 100 || st.Y < 50 || st.Y > 200 {
			t.Fatalf("star at (%v, %v) outside spawn area", st.X, st.Y)
		}
		if st.Size <= 0 || st.Depth <= 0 {
			t.Fatalf("degenerate star: size=%v depth=%v", st.Size, st.Depth)
		}
	}
}

func TestStarEdgeSpawnIsOffscreen(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 9))
	for i := 0; i < 100; i++ {
		st := NewStarAtEdge(rng, 0, 0)
		inView := st.X >= 0 && st.X <= LogicalWidth && st.Y >= 0 && st.Y <= LogicalHeight
		if inView {
			t.Fatalf("edge spawn at (%v, %v) is inside the view", st.X, st.Y)
		}
	}
}

func TestTwinkleLevelStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 9))
	st := NewStarInArea(rng, 0, 100, 0, 100)
	for i := 0; i < 1000; i++ {
		st.Advance(0.016)
		if lvl := st.TwinkleLevel(); lvl < 0 || lvl > 1 {
			t.Fatalf("twinkle level %v outside [0, 1]", lvl)
		}
	}
}
