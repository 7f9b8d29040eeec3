package score

import (
	"time"

	"git.lost.host/meutraa/bmsc/internal/game"
	"git.lost.host/meutraa/bmsc/internal/judgement"
)

type Scorer interface {
	Init(path string) error
	Deinit()

	// Save the inputs of this performance, returning the play id
	Save(chart *game.Notechart, inputs []game.Input, rate float64) (string, error)

	// Load up previous plays for the chart
	Load(chart *game.Notechart) ([]History, error)

	Score(chart *game.Notechart, history *History, judge judgement.Judge) Score
	ApplyInputToChart(chart *game.Notechart, play *Play, input *game.Input, rate float64, judge judgement.Judge, onHit func(note *game.Note, j judgement.Judgement, distance float64))

	Distance(rate float64, noteTime, hitTime float64) float64
}

type History struct {
	ID       string
	Sum      string
	Inputs   []game.Input
	Rate     float64
	PlayedAt time.Time
}

// Hit is the judgement of a note head or long note tail.
type Hit struct {
	Judgement judgement.Judgement
	Time      float64
}

// Play tracks which notes have been judged so far, by note id.
type Play struct {
	heads map[int]Hit
	tails map[int]Hit
}

func NewPlay() *Play {
	return &Play{heads: map[int]Hit{}, tails: map[int]Hit{}}
}

func (p *Play) Head(note *game.Note) (Hit, bool) {
	h, ok := p.heads[note.ID]
	return h, ok
}

func (p *Play) Tail(note *game.Note) (Hit, bool) {
	h, ok := p.tails[note.ID]
	return h, ok
}

type Score struct {
	Counts     map[judgement.Judgement]int
	Combo      int
	MaxCombo   int
	Weight     int // Sum of judgement weights
	MaxWeight  int
	MissCount  uint64
	TotalError time.Duration
}

// Accuracy is the weight scored out of the maximum, between 0 and 1.
func (s Score) Accuracy() float64 {
	if s.MaxWeight == 0 {
		return 0
	}
	return float64(s.Weight) / float64(s.MaxWeight)
}
