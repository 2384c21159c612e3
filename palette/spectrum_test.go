package palette

import (
	"testing"

	"github.com/pkg/errors"
)

func TestAllocate(t *testing.T) {
	h, err := BuildHistogram(Grid{{0, 0}, {1, 2}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		policy Policy
		want   map[int]int
	}{
		{FrequencyCentered, map[int]int{0: 4, 1: 4, 2: 5}},
		{EvenDistribution, map[int]int{0: 2, 1: 3, 2: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.policy.String(), func(t *testing.T) {
			s, err := Allocate(h, tt.policy)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if s.Max() != 4 {
				t.Errorf("expected max 4, got %d", s.Max())
			}
			for k, want := range tt.want {
				got, ok := s.Location(k)
				if !ok || got != want {
					t.Errorf("location of %d: expected %d, got %d (ok=%v)", k, want, got, ok)
				}
			}
		})
	}
}

func TestAllocateNonDecreasing(t *testing.T) {
	// a dense band followed by a sparse one
	grid := Grid{make([]int, 101)}
	grid[0][100] = 1
	dense, err := BuildHistogram(grid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	escape, err := BuildHistogram(escapeGrid(80, 60, 150, 3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, h := range []*Histogram{dense, escape} {
		for _, p := range []Policy{FrequencyCentered, EvenDistribution} {
			s, err := Allocate(h, p)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			prev := -1
			for _, k := range s.Keys() {
				loc, _ := s.Location(k)
				if loc < prev {
					t.Fatalf("%v: location of %d is %d, below previous %d", p, k, loc, prev)
				}
				prev = loc
			}
			if s.Max() != h.Total() {
				t.Errorf("%v: expected max %d, got %d", p, h.Total(), s.Max())
			}
		}
	}
}

func TestAllocateUnknownPolicy(t *testing.T) {
	h, err := BuildHistogram(Grid{{1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := Allocate(h, Policy(7)); !errors.Is(err, ErrUnknownPolicy) {
		t.Errorf("expected ErrUnknownPolicy, got %v", err)
	}
}

func TestParsePolicy(t *testing.T) {
	for _, p := range []Policy{FrequencyCentered, EvenDistribution} {
		got, err := ParsePolicy(p.String())
		if err != nil || got != p {
			t.Errorf("ParsePolicy(%q) = %v, %v", p.String(), got, err)
		}
	}
	if _, err := ParsePolicy("uniform"); !errors.Is(err, ErrUnknownPolicy) {
		t.Errorf("expected ErrUnknownPolicy, got %v", err)
	}
}
