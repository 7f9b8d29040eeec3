// Package speedcore maps between two monotonic domains with keyframed
// linear motion. It backs tempo changes and stops (timing), scroll
// segments (positioning) and note spacing factors (spacing).
//
// A Segment {T, X, DX} says that at T the value is X, and DX more for
// every unit of T after that. For a song at 150 BPM with a 2 beat stop
// on beat 32, with T in seconds and X in beats:
//
//	{T:  0.0, X:  0, DX: 2.5, Inclusive: true}
//	{T: 12.8, X: 32, DX: 0,   Inclusive: true}
//	{T: 13.6, X: 32, DX: 2.5, Inclusive: false}
//
// The exclusive third segment leaves beat 32 itself to the stop.
package speedcore

import (
	"errors"
	"fmt"
	"math"
)

type Segment struct {
	T  float64
	X  float64
	DX float64 // Change in X per unit of T

	// Whether T belongs to this segment rather than the previous one.
	Inclusive bool
}

func (s Segment) validate() error {
	for _, v := range [...]float64{s.T, s.X, s.DX} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("segment %+v is not finite", s)
		}
	}
	return nil
}

type Speedcore struct {
	segments []Segment
}

// New validates the segments, which must be ordered by T. The slice is
// copied.
func New(segments []Segment) (*Speedcore, error) {
	if len(segments) == 0 {
		return nil, errors.New("speedcore needs at least one segment")
	}
	for i, s := range segments {
		if err := s.validate(); nil != err {
			return nil, err
		}
		if i > 0 && s.T < segments[i-1].T {
			return nil, fmt.Errorf("segment %v starts before segment %v", i, i-1)
		}
	}
	return &Speedcore{segments: append([]Segment{}, segments...)}, nil
}

// MustNew is New for segment lists built by this module, which are
// valid by construction.
func MustNew(segments []Segment) *Speedcore {
	s, err := New(segments)
	if nil != err {
		panic(err)
	}
	return s
}

func segmentT(s Segment) float64 { return s.T }
func segmentX(s Segment) float64 { return s.X }

func (s *Speedcore) reached(index int, target func(Segment) float64, position float64) bool {
	if index >= len(s.segments) {
		return false
	}
	segment := s.segments[index]
	if segment.Inclusive {
		return position >= target(segment)
	}
	return position > target(segment)
}

// The last segment always matches since nothing comes after it.
func (s *Speedcore) segmentAt(target func(Segment) float64, position float64) int {
	i := 0
	for s.reached(i+1, target, position) {
		i++
	}
	return i
}

// SegmentAtT returns the index of the segment in effect at t.
func (s *Speedcore) SegmentAtT(t float64) int {
	return s.segmentAt(segmentT, t)
}

// SegmentAtX returns the index of the segment in effect at x.
func (s *Speedcore) SegmentAtX(x float64) int {
	return s.segmentAt(segmentX, x)
}

func (s *Speedcore) Segment(index int) Segment {
	return s.segments[index]
}

func (s *Speedcore) Segments() []Segment {
	return append([]Segment{}, s.segments...)
}

// X at a given t.
func (s *Speedcore) X(t float64) float64 {
	segment := s.segments[s.SegmentAtT(t)]
	return segment.X + (t-segment.T)*segment.DX
}

// T at a given x. Inside a segment with a DX of 0 the rate is taken as 1,
// the answer there is defined but not meaningful.
func (s *Speedcore) T(x float64) float64 {
	segment := s.segments[s.SegmentAtX(x)]
	dx := segment.DX
	if dx == 0 {
		dx = 1
	}
	return segment.T + (x-segment.X)/dx
}

// DX at a given t.
func (s *Speedcore) DX(t float64) float64 {
	return s.segments[s.SegmentAtT(t)].DX
}
