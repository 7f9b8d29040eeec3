package main

import (
	"fmt"
	"log"
	"os"

	"git.lost.host/meutraa/bmsc/internal/compiler"
	"git.lost.host/meutraa/bmsc/internal/config"
	"git.lost.host/meutraa/bmsc/internal/game"
	"git.lost.host/meutraa/bmsc/internal/judgement"
	"git.lost.host/meutraa/bmsc/internal/parser"
	"git.lost.host/meutraa/bmsc/internal/score"
	"git.lost.host/meutraa/bmsc/internal/theme"
)

func main() {
	if err := run(); nil != err {
		log.Fatalln(err)
	}
}

func run() error {
	command := config.MustParse()

	format, ok := compiler.ParseFormat(*config.Format)
	if !ok {
		return fmt.Errorf("unknown format %v", *config.Format)
	}
	scratch, ok := game.Scratches[*config.Scratch]
	if !ok {
		return fmt.Errorf("unknown scratch %v", *config.Scratch)
	}

	// Ensure our Default implementations are used as interfaces
	var psr parser.Parser = &parser.DefaultParser{
		Format:  format,
		Options: game.PlayerOptions{Scratch: scratch, Double: *config.Double},
		Seed:    *config.Seed,
	}
	var th theme.Theme = theme.NewDefaultTheme(os.Stdout)
	var scorer score.Scorer = &score.DefaultScorer{}

	p := &Program{
		Parser:   psr,
		Theme:    th,
		Scorer:   scorer,
		out:      os.Stdout,
		rate:     *config.Rate,
		offset:   config.Offset.Seconds(),
		scratch:  scratch,
		tutorial: *config.Tutorial,
		verbose:  *config.Verbose,
	}

	switch command {
	case config.Info.FullCommand():
		return p.Info(*config.InfoChart)
	case config.Notes.FullCommand():
		return p.Notes(*config.NotesChart)
	case config.Timing.FullCommand():
		return p.Timing(*config.TimingChart)
	case config.Replay.FullCommand():
		return p.withScores(func() error {
			return p.Replay(*config.ReplayChart, *config.ReplayInputs, !*config.ReplayDryRun)
		})
	case config.History.FullCommand():
		return p.withScores(func() error {
			return p.History(*config.HistoryChart)
		})
	}
	return fmt.Errorf("unknown command %v", command)
}

func (p *Program) withScores(fn func() error) error {
	if err := p.Scorer.Init(*config.Database); nil != err {
		return fmt.Errorf("unable to open score database: %w", err)
	}
	defer p.Scorer.Deinit()
	return fn()
}

// Judge for a chart, tutorial when asked for.
func (p *Program) judge(chart *game.Notechart) judgement.Judge {
	info := chart.SongInfo()
	return judgement.JudgeFor(p.tutorial, info.Difficulty, info.Level)
}
