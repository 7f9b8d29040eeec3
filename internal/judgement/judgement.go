package judgement

import "git.lost.host/meutraa/bmsc/internal/songinfo"

type Judgement int

const (
	Missed   Judgement = -1
	Unjudged Judgement = 0 // Too early to judge
	PGreat   Judgement = 1
	Great    Judgement = 2
	Good     Judgement = 3
	Offbeat  Judgement = 4
)

// All judged outcomes, best first.
var Judgements = []Judgement{PGreat, Great, Good, Offbeat, Missed}

func (j Judgement) String() string {
	switch j {
	case Missed:
		return "MISSED"
	case Unjudged:
		return "UNJUDGED"
	case PGreat:
		return "PGREAT"
	case Great:
		return "GREAT"
	case Good:
		return "GOOD"
	case Offbeat:
		return "OFFBEAT"
	}
	return "UNKNOWN"
}

// Timegate is the largest distance in seconds from the note for a
// judgement, for a note (or long note head) and for a long note tail.
type Timegate struct {
	Value       Judgement
	Timegate    float64
	EndTimegate float64
}

// Timegates are ordered from the tightest to the loosest.
type Timegates []Timegate

var (
	Normal = Timegates{
		{Value: PGreat, Timegate: 0.020, EndTimegate: 0.040},
		{Value: Great, Timegate: 0.050, EndTimegate: 0.100},
		{Value: Good, Timegate: 0.100, EndTimegate: 0.200},
		{Value: Offbeat, Timegate: 0.200, EndTimegate: 0.200},
	}
	TransitionalBeginnerLv5 = Timegates{
		{Value: PGreat, Timegate: 0.021, EndTimegate: 0.042},
		{Value: Great, Timegate: 0.060, EndTimegate: 0.120},
		{Value: Good, Timegate: 0.120, EndTimegate: 0.200},
		{Value: Offbeat, Timegate: 0.200, EndTimegate: 0.200},
	}
	TransitionalBeginnerLv4 = Timegates{
		{Value: PGreat, Timegate: 0.022, EndTimegate: 0.044},
		{Value: Great, Timegate: 0.070, EndTimegate: 0.140},
		{Value: Good, Timegate: 0.140, EndTimegate: 0.200},
		{Value: Offbeat, Timegate: 0.200, EndTimegate: 0.200},
	}
	TransitionalBeginnerLv3 = Timegates{
		{Value: PGreat, Timegate: 0.023, EndTimegate: 0.046},
		{Value: Great, Timegate: 0.080, EndTimegate: 0.160},
		{Value: Good, Timegate: 0.160, EndTimegate: 0.200},
		{Value: Offbeat, Timegate: 0.200, EndTimegate: 0.200},
	}
	AbsoluteBeginner = Timegates{
		{Value: PGreat, Timegate: 0.024, EndTimegate: 0.048},
		{Value: Great, Timegate: 0.100, EndTimegate: 0.180},
		{Value: Good, Timegate: 0.180, EndTimegate: 0.200},
		{Value: Offbeat, Timegate: 0.200, EndTimegate: 0.200},
	}
)

// In tutorial mode notes in the first part of the song are judged with
// the absolute beginner windows.
const TutorialCutoff = 100.0

// Judge picks the timegates for a note. It is a plain value chosen once
// per play.
type Judge struct {
	tutorial  bool
	timegates Timegates
}

var NormalJudge = Judge{timegates: Normal}

func (j Judge) Tutorial() bool {
	return j.tutorial
}

// Timegates for a note at noteTime seconds.
func (j Judge) Timegates(noteTime float64) Timegates {
	if j.tutorial {
		if noteTime < TutorialCutoff {
			return AbsoluteBeginner
		}
		return Normal
	}
	return j.timegates
}

// JudgeFor chooses the judge for a chart. Insane charts always use the
// normal windows, easy levels get wider ones.
func JudgeFor(tutorial bool, difficulty, level int) Judge {
	if tutorial {
		return Judge{tutorial: true}
	}
	if difficulty >= songinfo.Insane {
		return NormalJudge
	}
	switch level {
	case 1, 2:
		return Judge{timegates: AbsoluteBeginner}
	case 3:
		return Judge{timegates: TransitionalBeginnerLv3}
	case 4:
		return Judge{timegates: TransitionalBeginnerLv4}
	case 5:
		return Judge{timegates: TransitionalBeginnerLv5}
	}
	return NormalJudge
}

func judgeWith(gate func(Timegate) float64, gameTime, noteTime float64, judge Judge) Judgement {
	delta := gameTime - noteTime
	if delta < 0 {
		delta = -delta
	}
	for _, timegate := range judge.Timegates(noteTime) {
		if delta < gate(timegate) {
			return timegate.Value
		}
	}
	if gameTime < noteTime {
		return Unjudged
	}
	return Missed
}

// JudgeTime judges a hit at gameTime on a note at noteTime, both in
// seconds.
func JudgeTime(gameTime, noteTime float64, judge Judge) Judgement {
	return judgeWith(func(t Timegate) float64 { return t.Timegate }, gameTime, noteTime, judge)
}

// JudgeEndTime judges the release of a long note.
func JudgeEndTime(gameTime, noteTime float64, judge Judge) Judgement {
	return judgeWith(func(t Timegate) float64 { return t.EndTimegate }, gameTime, noteTime, judge)
}

// TimegateOf returns the note window of a judgement, 0 if the judge has
// none for it.
func TimegateOf(j Judgement, judge Judge) float64 {
	for _, timegate := range judge.Timegates(0) {
		if timegate.Value == j {
			return timegate.Timegate
		}
	}
	return 0
}

// The widest window still counting as a hit.
func (j Judge) MaxTimegate(noteTime float64) float64 {
	gates := j.Timegates(noteTime)
	return gates[len(gates)-1].Timegate
}

func IsBad(j Judgement) bool {
	return j >= Offbeat
}

// BreaksCombo is true for a miss and for the two loosest hits.
func BreaksCombo(j Judgement) bool {
	return j == Missed || j >= Good
}

// Weight is the score of a judgement out of 100.
func Weight(j Judgement) int {
	switch j {
	case PGreat:
		return 100
	case Great:
		return 80
	case Good:
		return 50
	}
	return 0
}
