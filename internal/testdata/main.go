// Package testdata holds a small chart shared by tests.
package testdata

import (
	"git.lost.host/meutraa/bmsc/internal/compiler"
	"git.lost.host/meutraa/bmsc/internal/game"
)

// Chart at 120 BPM, so a beat is half a second. Measure 1 has notes in
// column 1 every beat from beat 4, a scratch and column 3, measure 2 a
// long note in column 1 from beat 8 to 11 and a landmine in column 2.
const Chart = `
#TITLE Fixture [ANOTHER]
#ARTIST fixture
#GENRE test
#PLAYLEVEL 7
#DIFFICULTY 3
#RANK 2
#BPM 120
#WAV01 kick.wav
#WAV02 snare.wav
#WAV03 hat.wav
#00111:01010101
#00113:0002
#00116:03
#00101:03030303
#00251:01000001
#002D2:01
`

const (
	NoteCount = 7
	HoldCount = 1
	MineCount = 1
)

// GetChart builds Chart for single play with the scratch on the left.
func GetChart() (*game.Notechart, error) {
	result := compiler.Compile(Chart, compiler.Options{Format: compiler.FormatBMS})
	return game.FromChart(result.Chart, game.PlayerOptions{Scratch: game.ScratchLeft})
}
