package systems

import (
	"errors"
	"testing"

	"github.com/pthm-cable/hound/components"
)

func TestScanEnvironment(t *testing.T) {
	a := components.NewAgent("test", 0)

	field, err := ScanEnvironment(a, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []float64{0, 1, 4, 1, 2, 5, 4, 5, 8}
	if len(field) != len(want) {
		t.Fatalf("len(field) = %d, want %d", len(field), len(want))
	}
	for i, w := range want {
		if field[i] != w {
			t.Errorf("field[%d] = %v, want %v", i, field[i], w)
		}
	}
}

func TestScanEnvironmentExactValues(t *testing.T) {
	a := components.NewAgent("test", 0)

	n := 20
	field, err := ScanEnvironment(a, n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(field) != n*n {
		t.Fatalf("len(field) = %d, want %d", len(field), n*n)
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := float64(i*i + j*j)
			if got := field[i*n+j]; got != want {
				t.Fatalf("field[%d*%d+%d] = %v, want %v", i, n, j, got, want)
			}
		}
	}
}

func TestScanEnvironmentReplacesField(t *testing.T) {
	a := components.NewAgent("test", 0)

	if _, err := ScanEnvironment(a, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ScanEnvironment(a, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Replaced wholesale, not appended.
	if len(a.SensorField) != 25 {
		t.Errorf("len(SensorField) after two scans = %d, want 25", len(a.SensorField))
	}
}

func TestScanEnvironmentEdgeCases(t *testing.T) {
	a := components.NewAgent("test", 0)

	field, err := ScanEnvironment(a, 0)
	if err != nil {
		t.Fatalf("ScanEnvironment(0) error = %v, want nil", err)
	}
	if len(field) != 0 {
		t.Errorf("ScanEnvironment(0) len = %d, want 0", len(field))
	}

	if _, err := ScanEnvironment(a, -1); !errors.Is(err, ErrNegativeSamples) {
		t.Errorf("ScanEnvironment(-1) error = %v, want ErrNegativeSamples", err)
	}
}

func TestScanEnvironmentReturnsStoredSlice(t *testing.T) {
	a := components.NewAgent("test", 0)

	field, err := ScanEnvironment(a, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if &field[0] != &a.SensorField[0] {
		t.Error("returned field is not the slice stored on the agent")
	}
}
