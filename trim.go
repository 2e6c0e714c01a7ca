package two

import "math"

// Beginning returns the trim start fraction, 0 by default.
func (s *StrokeStyle) Beginning() float64 { return s.beginning }

// Ending returns the trim end fraction, 1 by default.
func (s *StrokeStyle) Ending() float64 { return s.ending }

// SetBeginning sets where the visible part of the outline starts, as a
// fraction of its vertices. The value is clamped to [0, 1].
func (s *StrokeStyle) SetBeginning(f float64) {
	s.beginning = clamp01(f)
}

// SetEnding sets where the visible part of the outline ends, as a fraction
// of its vertices. The value is clamped to [0, 1].
func (s *StrokeStyle) SetEnding(f float64) {
	s.ending = clamp01(f)
}

// SetTrim sets both trim fractions at once.
func (s *StrokeStyle) SetTrim(beginning, ending float64) {
	s.beginning = clamp01(beginning)
	s.ending = clamp01(ending)
}

func (s *StrokeStyle) trimmed() bool {
	return s.beginning != 0 || s.ending != 1
}

// TrimRange returns the vertex cutoffs for an outline of n vertices.
// Vertices before ia collapse onto vertex ia and vertices from ib on
// collapse onto vertex ib. Out-of-order fractions are swapped.
func TrimRange(beginning, ending float64, n int) (ia, ib int) {
	if n <= 0 {
		return 0, 0
	}
	a, b := ending, beginning
	if beginning > ending {
		a, b = beginning, ending
	}
	last := n - 1
	ia = min(int(math.Round((1-a)*float64(n))), last)
	ib = min(int(math.Round((1-b)*float64(n))), last)
	return ia, ib
}

// Trim writes src into dst with the vertices outside the window
// collapsed. dst is grown as needed and returned; len(dst) == len(src).
func Trim(dst, src []Vector, beginning, ending float64) []Vector {
	dst = append(dst[:0], src...)
	if len(src) == 0 {
		return dst
	}
	ia, ib := TrimRange(beginning, ending, len(src))
	for i := 0; i < ia; i++ {
		dst[i] = src[ia]
	}
	for i := ib; i < len(src); i++ {
		dst[i] = src[ib]
	}
	return dst
}

func clamp01(f float64) float64 {
	return math.Min(math.Max(f, 0), 1)
}
