package bms

import "math"

// DefaultMeasureSize is a 4/4 measure.
const DefaultMeasureSize = 1.0

// TimeSignatures maps a measure number to its size, where a size of 1
// is four beats. Unset measures have the default size.
type TimeSignatures struct {
	values map[int]float64
}

func NewTimeSignatures() *TimeSignatures {
	return &TimeSignatures{values: map[int]float64{}}
}

// Set the size of a measure, 0.75 is 3/4 or 6/8.
func (t *TimeSignatures) Set(measure int, size float64) {
	t.values[measure] = size
}

func (t *TimeSignatures) Get(measure int) float64 {
	size, ok := t.values[measure]
	if !ok || !(size > 0) || math.IsInf(size*4, 0) {
		return DefaultMeasureSize
	}
	return size
}

// Beats in a measure.
func (t *TimeSignatures) Beats(measure int) float64 {
	return t.Get(measure) * 4
}

// MeasureToBeat converts a measure number and a fraction of that measure
// into beats since the start of measure 0.
func (t *TimeSignatures) MeasureToBeat(measure int, fraction float64) float64 {
	sum := 0.0
	for i := 0; i < measure; i++ {
		sum += t.Beats(i)
	}
	return sum + t.Beats(measure)*fraction
}
