package palette

import (
	"fmt"

	"github.com/pkg/errors"
)

// Policy selects how spectrum locations are derived from frequencies.
type Policy int

const (
	// FrequencyCentered centers each key within the band its frequency
	// occupies: location = S + occ/2 + 1.
	FrequencyCentered Policy = iota
	// EvenDistribution divides each frequency by the number of distinct
	// keys: location = S + occ/keys. The offset is zero whenever occ is
	// smaller than the key count.
	EvenDistribution
)

func (p Policy) String() string {
	switch p {
	case FrequencyCentered:
		return "centered"
	case EvenDistribution:
		return "even"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy accepts the names returned by Policy.String.
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case "centered", "":
		return FrequencyCentered, nil
	case "even":
		return EvenDistribution, nil
	}
	return 0, errors.Wrapf(ErrUnknownPolicy, "%q", name)
}

// Spectrum holds the relative position of each iteration count.
type Spectrum struct {
	keys      []int
	locations map[int]int
	max       int
}

// Allocate walks h in ascending key order keeping a running sum of
// frequencies. The final sum becomes Max. A location never drops below
// the one allocated to the previous key.
func Allocate(h *Histogram, p Policy) (*Spectrum, error) {
	var location func(sum, occ int) int
	switch p {
	case FrequencyCentered:
		location = func(sum, occ int) int { return sum + occ/2 + 1 }
	case EvenDistribution:
		n := h.Len()
		location = func(sum, occ int) int { return sum + occ/n }
	default:
		return nil, errors.Wrapf(ErrUnknownPolicy, "%v", p)
	}

	s := &Spectrum{
		keys:      h.Keys(),
		locations: make(map[int]int, h.Len()),
	}
	sum, prev := 0, 0
	for _, k := range s.keys {
		occ := h.Count(k)
		sum += occ
		loc := location(sum, occ)
		if loc < prev {
			loc = prev
		}
		s.locations[k] = loc
		prev = loc
	}
	s.max = sum
	return s, nil
}

// Location returns the spectrum location of iter and whether it is known.
func (s *Spectrum) Location(iter int) (int, bool) {
	loc, ok := s.locations[iter]
	return loc, ok
}

// Keys returns the iteration counts in ascending order.
func (s *Spectrum) Keys() []int {
	return append([]int(nil), s.keys...)
}

// Max is the final running sum.
func (s *Spectrum) Max() int { return s.max }
