// Package spacing maps beats to a note spacing factor, interpolated
// linearly between keyframes.
package spacing

import (
	"math"
	"strconv"
	"strings"

	"git.lost.host/meutraa/bmsc/internal/bms"
	"git.lost.host/meutraa/bmsc/internal/speedcore"
)

const ChannelSpeed = "SP"

type Spacing struct {
	core *speedcore.Speedcore // nil means a constant factor of 1
}

// New expects segments with T in beats and X as the spacing factor. An
// empty list is a constant factor of 1.
func New(segments []speedcore.Segment) (*Spacing, error) {
	if len(segments) == 0 {
		return &Spacing{}, nil
	}
	core, err := speedcore.New(segments)
	if nil != err {
		return nil, err
	}
	return &Spacing{core: core}, nil
}

func (s *Spacing) Factor(beat float64) float64 {
	if s.core == nil {
		return 1
	}
	return s.core.X(beat)
}

// FromChart reads SP channel objects, each referencing a #SPEEDxx header.
//
//	#SPEED01 1.0
//	#SPEED02 2.0
//	#001SP:01010202
//
// goes from 1.0 at beat 5 to 2.0 at beat 6 gradually.
func FromChart(chart *bms.Chart) *Spacing {
	segments := []speedcore.Segment{}
	for _, object := range chart.Objects.Sorted() {
		if !strings.EqualFold(object.Channel, ChannelSpeed) {
			continue
		}
		beat := chart.ObjectBeat(object)
		v, _ := chart.Headers.Get("speed" + object.Value)
		factor, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if nil != err || !finite(factor) || !finite(beat) {
			continue
		}
		if len(segments) > 0 {
			previous := &segments[len(segments)-1]
			if beat > previous.T {
				previous.DX = (factor - previous.X) / (beat - previous.T)
			}
		}
		segments = append(segments, speedcore.Segment{T: beat, X: factor, DX: 0, Inclusive: true})
	}
	if len(segments) == 0 {
		return &Spacing{}
	}
	anchor := speedcore.Segment{T: 0, X: segments[0].X, DX: 0, Inclusive: true}
	segments = append([]speedcore.Segment{anchor}, segments...)
	core, err := speedcore.New(segments)
	if nil != err {
		return &Spacing{}
	}
	return &Spacing{core: core}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
