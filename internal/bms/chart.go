package bms

// Chart is a compiled chart. Control flow such as #RANDOM has already
// been resolved by the compiler, what remains is plain data to derive
// notes, timing and song information from.
type Chart struct {
	Headers        *Headers
	Objects        *Objects
	TimeSignatures *TimeSignatures
}

func NewChart() *Chart {
	return &Chart{
		Headers:        NewHeaders(),
		Objects:        NewObjects(),
		TimeSignatures: NewTimeSignatures(),
	}
}

func (c *Chart) MeasureToBeat(measure int, fraction float64) float64 {
	return c.TimeSignatures.MeasureToBeat(measure, fraction)
}

// ObjectBeat is the beat an object is placed on.
func (c *Chart) ObjectBeat(o Object) float64 {
	return c.MeasureToBeat(o.Measure, o.Fraction)
}
