// Package timing converts between musical time (beats) and metric time
// (seconds), honouring BPM changes and stops.
package timing

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"git.lost.host/meutraa/bmsc/internal/bms"
	"git.lost.host/meutraa/bmsc/internal/speedcore"
	"golang.org/x/exp/slices"
)

const (
	DefaultBPM = 60.0

	// Stop lengths are written in 1/192 of a 4/4 measure.
	stopUnitsPerBeat = 48.0

	ChannelBPM         = "03"
	ChannelExtendedBPM = "08"
	ChannelStop        = "09"
)

type ActionType int

// Order matters, a BPM change applies before a stop on the same beat.
const (
	BPMChange ActionType = iota + 1
	Stop
)

type Action struct {
	Type      ActionType
	Beat      float64
	BPM       float64 // For BPMChange
	StopBeats float64 // For Stop
}

type Timing struct {
	core       *speedcore.Speedcore
	bpms       []float64 // BPM for each segment of core
	eventBeats []float64
}

// New builds the beat to seconds map from an initial BPM and a list of
// actions, which do not need to be sorted.
func New(initialBPM float64, actions []Action) (*Timing, error) {
	if !(initialBPM > 0) || math.IsInf(initialBPM, 0) {
		return nil, fmt.Errorf("initial bpm must be positive, got %v", initialBPM)
	}

	actions = append([]Action{}, actions...)
	slices.SortStableFunc(actions, func(a, b Action) bool {
		if a.Beat != b.Beat {
			return a.Beat < b.Beat
		}
		return a.Type < b.Type
	})

	bpm, beat, seconds := initialBPM, 0.0, 0.0
	segments := []speedcore.Segment{{T: 0, X: 0, DX: bpm / 60, Inclusive: true}}
	bpms := []float64{bpm}

	for _, action := range actions {
		t := seconds + (action.Beat-beat)*60/bpm
		switch action.Type {
		case BPMChange:
			if !(action.BPM > 0) || math.IsInf(action.BPM, 0) {
				return nil, fmt.Errorf("bpm change at beat %v must be positive, got %v", action.Beat, action.BPM)
			}
			bpm = action.BPM
			segments = append(segments, speedcore.Segment{T: t, X: action.Beat, DX: bpm / 60, Inclusive: true})
			bpms = append(bpms, bpm)
		case Stop:
			segments = append(segments, speedcore.Segment{T: t, X: action.Beat, DX: 0, Inclusive: true})
			bpms = append(bpms, bpm)
			t += action.StopBeats * 60 / bpm
			segments = append(segments, speedcore.Segment{T: t, X: action.Beat, DX: bpm / 60, Inclusive: false})
			bpms = append(bpms, bpm)
		default:
			return nil, errors.New("unknown timing action")
		}
		if math.IsInf(t, 0) {
			return nil, fmt.Errorf("timing overflows at beat %v", action.Beat)
		}
		beat, seconds = action.Beat, t
	}

	core, err := speedcore.New(segments)
	if nil != err {
		return nil, err
	}

	eventBeats := []float64{}
	for _, action := range actions {
		if !slices.Contains(eventBeats, action.Beat) {
			eventBeats = append(eventBeats, action.Beat)
		}
	}

	return &Timing{core: core, bpms: bpms, eventBeats: eventBeats}, nil
}

func (t *Timing) BeatToSeconds(beat float64) float64 {
	return t.core.T(beat)
}

func (t *Timing) SecondsToBeat(seconds float64) float64 {
	return t.core.X(seconds)
}

func (t *Timing) BPMAtBeat(beat float64) float64 {
	return t.bpms[t.core.SegmentAtX(beat)]
}

// EventBeats returns every beat with a BPM change or stop, ascending.
func (t *Timing) EventBeats() []float64 {
	return append([]float64{}, t.eventBeats...)
}

func headerFloat(chart *bms.Chart, name string) (float64, bool) {
	v, ok := chart.Headers.Get(name)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if nil != err || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// FromChart reads #BPM, the BPM channels (hex and #BPMxx references) and
// the stop channel (#STOPxx references). References that do not resolve
// to a usable number are skipped.
func FromChart(chart *bms.Chart) *Timing {
	actions := []Action{}
	for _, object := range chart.Objects.All() {
		beat := chart.ObjectBeat(object)
		if math.IsInf(beat, 0) {
			continue
		}
		switch object.Channel {
		case ChannelBPM:
			bpm, err := strconv.ParseInt(object.Value, 16, 64)
			if nil != err || bpm <= 0 {
				continue
			}
			actions = append(actions, Action{Type: BPMChange, Beat: beat, BPM: float64(bpm)})
		case ChannelExtendedBPM:
			bpm, ok := headerFloat(chart, "bpm"+object.Value)
			if !ok || bpm <= 0 {
				continue
			}
			actions = append(actions, Action{Type: BPMChange, Beat: beat, BPM: bpm})
		case ChannelStop:
			units, ok := headerFloat(chart, "stop"+object.Value)
			if !ok || units < 0 {
				continue
			}
			actions = append(actions, Action{Type: Stop, Beat: beat, StopBeats: units / stopUnitsPerBeat})
		}
	}

	initial, ok := headerFloat(chart, "bpm")
	if !ok || initial <= 0 {
		initial = DefaultBPM
	}

	t, err := New(initial, actions)
	if nil != err {
		// Only reachable when the song runs past the largest float, such
		// charts are timed at their initial BPM.
		t, _ = New(initial, nil)
	}
	return t
}
