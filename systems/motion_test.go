package systems

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"

	"github.com/pthm-cable/hound/components"
)

func TestUpdatePosition(t *testing.T) {
	tests := []struct {
		name     string
		start    r3.Vector
		velocity r3.Vector
		dt       float64
		want     r3.Vector
	}{
		{
			name:     "forward step",
			velocity: r3.Vector{X: 1.0, Y: 0.5, Z: 0.2},
			dt:       0.1,
			want:     r3.Vector{X: 0.1, Y: 0.05, Z: 0.02},
		},
		{
			name:     "zero dt",
			start:    r3.Vector{X: 3, Y: 4, Z: 5},
			velocity: r3.Vector{X: 1, Y: 1, Z: 1},
			dt:       0,
			want:     r3.Vector{X: 3, Y: 4, Z: 5},
		},
		{
			name:     "negative dt moves backward",
			start:    r3.Vector{X: 1, Y: 1, Z: 0},
			velocity: r3.Vector{X: 2, Y: 0, Z: 4},
			dt:       -0.5,
			want:     r3.Vector{X: 0, Y: 1, Z: -2},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := components.NewAgent("test", 0)
			a.Position = tc.start
			a.Velocity = tc.velocity

			UpdatePosition(a, tc.dt)

			if math.Abs(a.Position.X-tc.want.X) > 1e-9 ||
				math.Abs(a.Position.Y-tc.want.Y) > 1e-9 ||
				math.Abs(a.Position.Z-tc.want.Z) > 1e-9 {
				t.Errorf("position = %v, want %v", a.Position, tc.want)
			}
			if a.Velocity != tc.velocity {
				t.Errorf("velocity mutated: %v, want %v", a.Velocity, tc.velocity)
			}
		})
	}
}

func TestUpdatePositionAccumulates(t *testing.T) {
	a := components.NewAgent("test", 0)
	a.Velocity = r3.Vector{X: 1.0, Y: 2.0, Z: 0.5}

	for i := 0; i < 10; i++ {
		UpdatePosition(a, 0.1)
	}

	want := r3.Vector{X: 1.0, Y: 2.0, Z: 0.5}
	if math.Abs(a.Position.X-want.X) > 1e-9 ||
		math.Abs(a.Position.Y-want.Y) > 1e-9 ||
		math.Abs(a.Position.Z-want.Z) > 1e-9 {
		t.Errorf("position after 10 steps = %v, want %v", a.Position, want)
	}
}

func TestUpdatePositionRecordsHistory(t *testing.T) {
	a := components.NewAgent("test", 100)
	a.Velocity = r3.Vector{X: 1}

	for i := 0; i < 1000; i++ {
		UpdatePosition(a, 1.0)
	}

	if a.History.Len() != 100 {
		t.Fatalf("History.Len() = %d, want 100", a.History.Len())
	}
	// Snapshot after update #901 is the oldest survivor.
	if got := a.History.At(0).X; math.Abs(got-901) > 1e-9 {
		t.Errorf("oldest history entry X = %v, want 901", got)
	}
	latest, _ := a.History.Latest()
	if math.Abs(latest.X-1000) > 1e-9 {
		t.Errorf("latest history entry X = %v, want 1000", latest.X)
	}
}

func TestHistoryStoresSnapshots(t *testing.T) {
	a := components.NewAgent("test", 10)
	a.Velocity = r3.Vector{X: 1}

	UpdatePosition(a, 1.0)
	first, _ := a.History.Latest()
	UpdatePosition(a, 1.0)

	// The stored entry must be a copy, not track the live position.
	if math.Abs(first.X-1) > 1e-9 {
		t.Errorf("first snapshot X = %v, want 1", first.X)
	}
	if got := a.History.At(0).X; math.Abs(got-1) > 1e-9 {
		t.Errorf("history[0].X = %v, want 1", got)
	}
}
