package main

import (
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"math"
	"strings"

	"git.lost.host/meutraa/bmsc/internal/game"
	"git.lost.host/meutraa/bmsc/internal/judgement"
	"git.lost.host/meutraa/bmsc/internal/parser"
	"git.lost.host/meutraa/bmsc/internal/score"
	"git.lost.host/meutraa/bmsc/internal/theme"
)

type Program struct {
	Parser parser.Parser
	Theme  theme.Theme
	Scorer score.Scorer

	out      io.Writer
	rate     float64
	offset   float64 // Seconds added to every input
	scratch  game.Scratch
	tutorial bool
	verbose  bool
}

func (p *Program) load(file string) (*parser.Parsed, error) {
	parsed, err := p.Parser.Parse(file)
	if nil != err {
		return nil, fmt.Errorf("unable to parse %v: %w", file, err)
	}
	if p.verbose {
		for _, w := range parsed.Compile.Warnings {
			log.Printf("line %d: %s", w.LineNumber, w.Message)
		}
	}
	return parsed, nil
}

func (p *Program) Info(file string) error {
	parsed, err := p.load(file)
	if nil != err {
		return err
	}
	chart, result := parsed.Notechart, parsed.Compile
	info := chart.SongInfo()

	fmt.Fprintf(p.out, "%-10v %v\n", "title", info.Title)
	for _, subtitle := range info.Subtitles {
		fmt.Fprintf(p.out, "%-10v %v\n", "", subtitle)
	}
	fmt.Fprintf(p.out, "%-10v %v\n", "artist", info.Artist)
	for _, subartist := range info.Subartists {
		fmt.Fprintf(p.out, "%-10v %v\n", "", subartist)
	}
	fmt.Fprintf(p.out, "%-10v %v\n", "genre", info.Genre)
	fmt.Fprintf(p.out, "%-10v %v / %v\n", "level", info.Difficulty, info.Level)
	fmt.Fprintln(p.out, p.Theme.Separator())
	fmt.Fprintf(p.out, "%-10v %v\n", "mode", chart.KeyMode(p.scratch))
	fmt.Fprintf(p.out, "%-10v %v\n", "notes", chart.NoteCount())
	fmt.Fprintf(p.out, "%-10v %v\n", "holds", chart.HoldCount())
	fmt.Fprintf(p.out, "%-10v %v\n", "mines", chart.MineCount())
	fmt.Fprintf(p.out, "%-10v %v\n", "samples", len(chart.Samples()))
	fmt.Fprintf(p.out, "%-10v %.3fs\n", "duration", chart.Duration())
	fmt.Fprintf(p.out, "%-10v %v\n", "bpm", bpmRange(chart))
	fmt.Fprintf(p.out, "%-10v %v\n", "judge", chart.ExpertJudgementWindow)
	fmt.Fprintln(p.out, p.Theme.Separator())
	fmt.Fprintf(p.out, "%-10v %v\n", "headers", result.HeaderSentences)
	fmt.Fprintf(p.out, "%-10v %v\n", "channels", result.ChannelSentences)
	fmt.Fprintf(p.out, "%-10v %v\n", "control", result.ControlSentences)
	fmt.Fprintf(p.out, "%-10v %v\n", "skipped", result.SkippedSentences)
	fmt.Fprintf(p.out, "%-10v %v\n", "malformed", result.MalformedSentences)
	fmt.Fprintf(p.out, "%-10v %v\n", "warnings", len(result.Warnings))
	return nil
}

func bpmRange(chart *game.Notechart) string {
	low, high := math.Inf(1), math.Inf(-1)
	for _, beat := range append([]float64{0}, chart.EventBeats()...) {
		bpm := chart.BPMAtBeat(beat)
		low = math.Min(low, bpm)
		high = math.Max(high, bpm)
	}
	if low == high {
		return fmt.Sprintf("%g", low)
	}
	return fmt.Sprintf("%g-%g", low, high)
}

func (p *Program) Notes(file string) error {
	parsed, err := p.load(file)
	if nil != err {
		return err
	}
	for _, note := range parsed.Notechart.Notes() {
		end := ""
		if note.IsLong() {
			end = fmt.Sprintf(" -> %9.3f %9.3fs", note.End.Beat, note.End.Time)
		}
		fmt.Fprintf(p.out, "%5v %v %9.3f %9.3fs%v\n", note.ID, p.Theme.RenderColumn(note.Column), note.Beat, note.Time, end)
	}
	return nil
}

func (p *Program) Timing(file string) error {
	parsed, err := p.load(file)
	if nil != err {
		return err
	}
	chart := parsed.Notechart
	fmt.Fprintf(p.out, "%9.3f %9.3fs %8g\n", 0.0, 0.0, chart.BPMAtBeat(0))
	for _, beat := range chart.EventBeats() {
		fmt.Fprintf(p.out, "%9.3f %9.3fs %8g\n", beat, chart.BeatToSeconds(beat), chart.BPMAtBeat(beat))
	}
	return nil
}

func readInputs(file string, offset float64) ([]game.Input, error) {
	data, err := ioutil.ReadFile(file)
	if nil != err {
		return nil, fmt.Errorf("unable to read inputs: %w", err)
	}
	var inputs []game.Input
	if err := json.Unmarshal(data, &inputs); nil != err {
		return nil, fmt.Errorf("unable to unmarshal inputs: %w", err)
	}
	for i := range inputs {
		inputs[i].HitTime += offset
	}
	return inputs, nil
}

func (p *Program) printScore(s score.Score) {
	for _, j := range judgement.Judgements {
		fmt.Fprintf(p.out, "%v %5v\n", p.Theme.RenderJudgement(j), s.Counts[j])
	}
	fmt.Fprintln(p.out, p.Theme.Separator())
	fmt.Fprintf(p.out, "%8v %5v\n", "combo", s.MaxCombo)
	fmt.Fprintf(p.out, "%8v %5.2f%%\n", "accuracy", s.Accuracy()*100)
	fmt.Fprintf(p.out, "%8v %5v\n", "error", s.TotalError)
}

func (p *Program) Replay(file, inputsFile string, save bool) error {
	parsed, err := p.load(file)
	if nil != err {
		return err
	}
	chart := parsed.Notechart
	inputs, err := readInputs(inputsFile, p.offset)
	if nil != err {
		return err
	}

	judge := p.judge(chart)
	play := score.NewPlay()
	for i := range inputs {
		input := &inputs[i]
		p.Scorer.ApplyInputToChart(chart, play, input, p.rate, judge, func(note *game.Note, j judgement.Judgement, distance float64) {
			fmt.Fprintf(p.out, "%9.3fs %v %5v %v %+8.1fms\n", input.HitTime, p.Theme.RenderColumn(note.Column), note.ID, p.Theme.RenderJudgement(j), distance*1000)
		})
	}
	fmt.Fprintln(p.out, p.Theme.Separator())
	p.printScore(p.Scorer.Score(chart, &score.History{Inputs: inputs, Rate: p.rate}, judge))

	if !save {
		return nil
	}
	id, err := p.Scorer.Save(chart, inputs, p.rate)
	if nil != err {
		return fmt.Errorf("unable to save play: %w", err)
	}
	fmt.Fprintf(p.out, "saved %v\n", id)
	return nil
}

func (p *Program) History(file string) error {
	parsed, err := p.load(file)
	if nil != err {
		return err
	}
	chart := parsed.Notechart
	histories, err := p.Scorer.Load(chart)
	if nil != err {
		return fmt.Errorf("unable to load history: %w", err)
	}
	if len(histories) == 0 {
		fmt.Fprintln(p.out, "no plays")
		return nil
	}
	judge := p.judge(chart)
	for _, history := range histories {
		s := p.Scorer.Score(chart, &history, judge)
		counts := []string{}
		for _, j := range judgement.Judgements {
			counts = append(counts, fmt.Sprint(s.Counts[j]))
		}
		fmt.Fprintf(p.out, "%v %v %4gx %6.2f%% %5v [%v]\n",
			history.ID, history.PlayedAt.Format("2006-01-02 15:04"), history.Rate,
			s.Accuracy()*100, s.MaxCombo, strings.Join(counts, " "))
	}
	return nil
}
