package score

import (
	"database/sql"
	"encoding/json"
	"log"
	"math"
	"time"

	"git.lost.host/meutraa/bmsc/internal/game"
	"git.lost.host/meutraa/bmsc/internal/judgement"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

type DefaultScorer struct {
	db *sql.DB
}

type InputsCompact struct {
	Column   string
	Times    []float64
	Releases []float64 `json:",omitempty"`
}

// compactInputs groups input times by column, columns in order of their
// first input.
func compactInputs(inputs []game.Input) []InputsCompact {
	ins := []InputsCompact{}
	index := map[string]int{}
	for _, i := range inputs {
		idx, ok := index[i.Column]
		if !ok {
			idx = len(ins)
			index[i.Column] = idx
			ins = append(ins, InputsCompact{Column: i.Column, Times: []float64{}})
		}
		if i.Release {
			ins[idx].Releases = append(ins[idx].Releases, i.HitTime)
		} else {
			ins[idx].Times = append(ins[idx].Times, i.HitTime)
		}
	}
	return ins
}

// uncompactInputs returns the inputs ordered by time.
func uncompactInputs(inputs []InputsCompact) []game.Input {
	ins := []game.Input{}
	for _, i := range inputs {
		for _, t := range i.Times {
			ins = append(ins, game.Input{Column: i.Column, HitTime: t})
		}
		for _, t := range i.Releases {
			ins = append(ins, game.Input{Column: i.Column, HitTime: t, Release: true})
		}
	}
	slices.SortStableFunc(ins, func(a, b game.Input) bool {
		return a.HitTime < b.HitTime
	})
	return ins
}

func (s *DefaultScorer) Init(path string) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return errors.Wrapf(err, "unable to open %s", path)
	}

	initStatement := `
	create table if not exists scores 
	  (
		  id text not null primary key, 
		  sum text,
		  rate real,
		  played_at integer,
		  inputs bytearray
	  );
	`
	_, err = db.Exec(initStatement)
	if nil != err {
		db.Close()
		return errors.Wrap(err, "unable to create scores table")
	}

	s.db = db
	return nil
}

func (s *DefaultScorer) Deinit() {
	if nil != s.db {
		s.db.Close()
	}
}

func (s *DefaultScorer) Save(c *game.Notechart, inputs []game.Input, rate float64) (string, error) {
	data, err := json.Marshal(compactInputs(inputs))
	if nil != err {
		return "", errors.Wrap(err, "unable to marshal inputs")
	}
	id := uuid.New().String()
	_, err = s.db.Exec(
		"insert into scores(id, sum, rate, played_at, inputs) values(?, ?, ?, ?, ?)",
		id, c.Hash, rate, time.Now().Unix(), data,
	)
	if nil != err {
		return "", errors.Wrap(err, "unable to save score")
	}
	return id, nil
}

func (s *DefaultScorer) Load(c *game.Notechart) ([]History, error) {
	histories := []History{}
	rows, err := s.db.Query("select id, sum, rate, played_at, inputs from scores where sum = ? order by played_at", c.Hash)
	if nil != err {
		return histories, errors.Wrap(err, "unable to load scores")
	}
	defer rows.Close()
	for rows.Next() {
		var id, sum string
		var inputs []byte
		var rate float64
		var playedAt int64
		if err := rows.Scan(&id, &sum, &rate, &playedAt, &inputs); nil != err {
			return histories, errors.Wrap(err, "unable to scan score")
		}
		var ins []InputsCompact
		if err := json.Unmarshal(inputs, &ins); nil != err {
			log.Println("unable to unmarshal input history", id, err)
			continue
		}
		histories = append(histories, History{
			ID:       id,
			Sum:      sum,
			Inputs:   uncompactInputs(ins),
			Rate:     rate,
			PlayedAt: time.Unix(playedAt, 0),
		})
	}
	return histories, errors.Wrap(rows.Err(), "unable to read scores")
}

// Distance is how early, in seconds, a hit was for a note at rate.
// Negative when late.
func (s *DefaultScorer) Distance(rate float64, noteTime, hitTime float64) float64 {
	return noteTime/rate - hitTime
}

// ApplyInputToChart judges one input. A press judges the closest
// unjudged note in its column that is within a timegate, a release
// judges the tail of the long note being held in its column.
func (s *DefaultScorer) ApplyInputToChart(chart *game.Notechart, play *Play, input *game.Input, rate float64, judge judgement.Judge, onHit func(note *game.Note, j judgement.Judgement, distance float64)) {
	if input.Release {
		s.applyRelease(chart, play, input, rate, judge, onHit)
		return
	}

	var closestNote *game.Note
	var closest judgement.Judgement
	absDistance := math.Inf(1)
	distance := 0.0

	for _, note := range chart.Notes() {
		if note.Column != input.Column {
			continue
		}
		if _, ok := play.heads[note.ID]; ok {
			continue
		}
		j := judgement.JudgeTime(input.HitTime, note.Time/rate, judge)
		if j == judgement.Unjudged || j == judgement.Missed {
			continue
		}
		dd := s.Distance(rate, note.Time, input.HitTime)
		if d := math.Abs(dd); d < absDistance {
			distance = dd
			absDistance = d
			closestNote = note
			closest = j
		}
	}

	if nil != closestNote {
		play.heads[closestNote.ID] = Hit{Judgement: closest, Time: input.HitTime}
		onHit(closestNote, closest, distance)
	}
}

func (s *DefaultScorer) applyRelease(chart *game.Notechart, play *Play, input *game.Input, rate float64, judge judgement.Judge, onHit func(note *game.Note, j judgement.Judgement, distance float64)) {
	for _, note := range chart.Notes() {
		if !note.IsLong() || note.Column != input.Column {
			continue
		}
		if _, held := play.heads[note.ID]; !held {
			continue
		}
		if _, released := play.tails[note.ID]; released {
			continue
		}
		j := judgement.JudgeEndTime(input.HitTime, note.End.Time/rate, judge)
		if j == judgement.Unjudged {
			// Let go too early
			j = judgement.Missed
		}
		play.tails[note.ID] = Hit{Judgement: j, Time: input.HitTime}
		onHit(note, j, s.Distance(rate, note.End.Time, input.HitTime))
		return
	}
}

// Score replays a history. Every note head, and every long note tail,
// gives one judgement, those never hit are missed.
func (s *DefaultScorer) Score(chart *game.Notechart, history *History, judge judgement.Judge) Score {
	score := Score{Counts: map[judgement.Judgement]int{}}
	play := NewPlay()
	for i := range history.Inputs {
		s.ApplyInputToChart(chart, play, &history.Inputs[i], history.Rate, judge, func(*game.Note, judgement.Judgement, float64) {})
	}

	type judged struct {
		time float64
		hit  Hit
		ok   bool
	}
	results := []judged{}
	for _, note := range chart.Notes() {
		head, ok := play.heads[note.ID]
		results = append(results, judged{time: note.Time, hit: head, ok: ok})
		if ok {
			score.TotalError += seconds(math.Abs(s.Distance(history.Rate, note.Time, head.Time)))
		}
		if note.IsLong() {
			tail, ok := play.tails[note.ID]
			results = append(results, judged{time: note.End.Time, hit: tail, ok: ok})
		}
	}
	slices.SortStableFunc(results, func(a, b judged) bool {
		return a.time < b.time
	})

	for _, r := range results {
		j := r.hit.Judgement
		if !r.ok {
			j = judgement.Missed
			score.MissCount++
		}
		score.Counts[j]++
		score.Weight += judgement.Weight(j)
		score.MaxWeight += judgement.Weight(judgement.PGreat)
		if judgement.BreaksCombo(j) {
			score.Combo = 0
		} else {
			score.Combo++
		}
		if score.Combo > score.MaxCombo {
			score.MaxCombo = score.Combo
		}
	}
	return score
}

func seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}
