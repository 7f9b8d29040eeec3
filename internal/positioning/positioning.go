// Package positioning maps beats to the scroll position on screen, for
// charts that change how far the field scrolls per beat.
package positioning

import (
	"math"
	"strconv"
	"strings"

	"git.lost.host/meutraa/bmsc/internal/bms"
	"git.lost.host/meutraa/bmsc/internal/speedcore"
)

const ChannelScroll = "SC"

type Positioning struct {
	core *speedcore.Speedcore
}

// New expects segments with T in beats and X as the scroll position.
func New(segments []speedcore.Segment) (*Positioning, error) {
	core, err := speedcore.New(segments)
	if nil != err {
		return nil, err
	}
	return &Positioning{core: core}, nil
}

// Speed is the scroll amount per beat at a beat.
func (p *Positioning) Speed(beat float64) float64 {
	return p.core.DX(beat)
}

// Position is the total scroll amount at a beat.
func (p *Positioning) Position(beat float64) float64 {
	return p.core.X(beat)
}

// FromChart reads SC channel objects, each referencing a #SCROLLxx header.
func FromChart(chart *bms.Chart) *Positioning {
	segments := []speedcore.Segment{{T: 0, X: 0, DX: 1, Inclusive: true}}
	x := 0.0
	for _, object := range chart.Objects.Sorted() {
		if !strings.EqualFold(object.Channel, ChannelScroll) {
			continue
		}
		beat := chart.ObjectBeat(object)
		v, _ := chart.Headers.Get("scroll" + object.Value)
		dx, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if nil != err || !finite(dx) || !finite(beat) {
			continue
		}
		previous := segments[len(segments)-1]
		x += (beat - previous.T) * previous.DX
		if beat == 0 && len(segments) == 1 {
			segments[0].DX = dx
			continue
		}
		segments = append(segments, speedcore.Segment{T: beat, X: x, DX: dx, Inclusive: true})
	}
	core, err := speedcore.New(segments)
	if nil != err {
		// The scroll position overflowed, scroll at a constant speed.
		core = speedcore.MustNew([]speedcore.Segment{{T: 0, X: 0, DX: 1, Inclusive: true}})
	}
	return &Positioning{core: core}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
