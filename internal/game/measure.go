package game

import (
	"git.lost.host/meutraa/bmsc/internal/bms"
	"git.lost.host/meutraa/bmsc/internal/notes"
)

// BarLines returns the beat of every measure start, from 0 until one
// past the last note.
func BarLines(ns []notes.Note, ts *bms.TimeSignatures) []float64 {
	max := 0.0
	for _, note := range ns {
		beat := note.Beat
		if note.EndBeat != nil {
			beat = *note.EndBeat
		}
		if beat > max {
			max = beat
		}
	}

	barLines := []float64{0}
	beat := 0.0
	for measure := 0; beat <= max; measure++ {
		beat += ts.Beats(measure)
		barLines = append(barLines, beat)
	}
	return barLines
}
