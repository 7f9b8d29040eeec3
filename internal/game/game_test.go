package game

import (
	"testing"

	"git.lost.host/meutraa/bmsc/internal/bms"
	"git.lost.host/meutraa/bmsc/internal/compiler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fiveKeyChart = `
#TITLE test
#BPM 120
#WAV01 a.wav
#WAV02 b.wav
#00111:01
#00112:0002
#00115:01
#00101:02
#00251:0101
`

func compile(t *testing.T, text string) *bms.Chart {
	t.Helper()
	result := compiler.Compile(text, compiler.Options{Format: compiler.FormatBMS})
	require.Empty(t, result.Warnings)
	return result.Chart
}

func notechart(t *testing.T, text string, options PlayerOptions) *Notechart {
	t.Helper()
	n, err := FromChart(compile(t, text), options)
	require.NoError(t, err)
	return n
}

func columnsOf(n *Notechart) []string {
	columns := []string{}
	for _, note := range n.Notes() {
		columns = append(columns, note.Column)
	}
	return columns
}

func TestNotechart(t *testing.T) {
	n := notechart(t, fiveKeyChart, PlayerOptions{Scratch: ScratchLeft})

	assert.Equal(t, 4, n.NoteCount())
	assert.Equal(t, 1, n.HoldCount())
	assert.Equal(t, 0, n.MineCount())
	require.Len(t, n.Autos(), 1)
	assert.Equal(t, "02", n.Autos()[0].Keysound)
	assert.InDelta(t, 2.0, n.Autos()[0].Time, 1e-9)

	for i, note := range n.Notes() {
		assert.Equal(t, i+1, note.ID)
	}
	assert.ElementsMatch(t, []string{"1", "2", "5", "1"}, columnsOf(n))

	assert.InDelta(t, 5.0, n.Duration(), 1e-9)
	assert.Equal(t, []string{"a.wav", "b.wav"}, n.Samples())
	assert.Equal(t, "test", n.SongInfo().Title)
	assert.Equal(t, KeyMode5K, n.KeyMode(ScratchLeft))
	assert.Equal(t, Columns, n.Columns())
}

func TestNotechartLongNoteInfo(t *testing.T) {
	n := notechart(t, fiveKeyChart, PlayerOptions{Scratch: ScratchLeft})
	for _, note := range n.Notes() {
		info, ok := n.Info(note)
		require.True(t, ok)
		if note.IsLong() {
			assert.Equal(t, 2, info.Combos)
			assert.InDelta(t, 8.0, note.Beat, 1e-9)
			assert.InDelta(t, 10.0, note.End.Beat, 1e-9)
			assert.InDelta(t, 5.0, note.End.Time, 1e-9)
		} else {
			assert.Equal(t, 1, info.Combos)
		}
	}
}

func TestFiveKeyShift(t *testing.T) {
	off := notechart(t, fiveKeyChart, PlayerOptions{Scratch: ScratchOff})
	assert.ElementsMatch(t, []string{"2", "3", "6", "2"}, columnsOf(off))
	assert.Equal(t, KeyMode5K, off.KeyMode(ScratchOff))

	right := notechart(t, fiveKeyChart, PlayerOptions{Scratch: ScratchRight})
	assert.ElementsMatch(t, []string{"3", "4", "7", "3"}, columnsOf(right))
	assert.Equal(t, KeyMode5K, right.KeyMode(ScratchRight))
}

func TestScratchOff(t *testing.T) {
	text := `
#BPM 60
#00116:01
#00111:01
#00119:01
`
	n := notechart(t, text, PlayerOptions{Scratch: ScratchOff})
	assert.Equal(t, []string{"1", "7"}, columnsOf(n))
	require.Len(t, n.Autos(), 1)
	assert.InDelta(t, 4.0, n.Autos()[0].Beat, 1e-9)
	assert.Equal(t, KeyMode7K, n.KeyMode(ScratchOff))

	left := notechart(t, text, PlayerOptions{Scratch: ScratchLeft})
	assert.Equal(t, []string{"SC", "1", "7"}, columnsOf(left))
	assert.Empty(t, left.Autos())
}

func TestLandmines(t *testing.T) {
	text := `
#BPM 60
#001D1:01
#001E1:01
#00111:01
`
	n := notechart(t, text, PlayerOptions{Scratch: ScratchLeft})
	require.Equal(t, 1, n.MineCount())
	assert.Equal(t, "1", n.Landmines()[0].Column)
	assert.Equal(t, 1, n.Landmines()[0].ID)
	assert.InDelta(t, 4.0, n.Landmines()[0].Time, 1e-9)
	assert.Equal(t, 1, n.NoteCount())

	dp := notechart(t, text, PlayerOptions{Scratch: ScratchLeft, Double: true})
	assert.Equal(t, 2, dp.MineCount())
	assert.Equal(t, DoubleColumns, dp.Columns())
}

func TestBarLinesAndMeasures(t *testing.T) {
	n := notechart(t, fiveKeyChart, PlayerOptions{Scratch: ScratchLeft})
	beats := []float64{}
	for _, e := range n.BarLines() {
		beats = append(beats, e.Beat)
	}
	assert.Equal(t, []float64{0, 4, 8, 12}, beats)
	assert.InDelta(t, 4.0, n.MeasureToBeat(1), 1e-9)
	assert.InDelta(t, 12.0, n.MeasureToBeat(100), 1e-9)
	assert.InDelta(t, 0.0, n.MeasureToBeat(-1), 1e-9)
}

func TestBarLinesTimeSignature(t *testing.T) {
	ts := bms.NewTimeSignatures()
	ts.Set(0, 0.75)
	assert.Equal(t, []float64{0, 3}, BarLines(nil, ts))
}

func TestConversions(t *testing.T) {
	n := notechart(t, fiveKeyChart, PlayerOptions{Scratch: ScratchLeft})
	assert.InDelta(t, 2.0, n.BeatToSeconds(4), 1e-9)
	assert.InDelta(t, 4.0, n.SecondsToBeat(2), 1e-9)
	assert.InDelta(t, 4.0, n.BeatToPosition(4), 1e-9)
	assert.InDelta(t, 4.0, n.SecondsToPosition(2), 1e-9)
	assert.InDelta(t, 120.0, n.BPMAtBeat(3), 1e-9)
	assert.InDelta(t, 1.0, n.ScrollSpeedAtBeat(3), 1e-9)
	assert.InDelta(t, 1.0, n.SpacingAtBeat(3), 1e-9)
}

func TestNewValidates(t *testing.T) {
	_, err := New(Data{}, PlayerOptions{})
	assert.EqualError(t, err, "expected data.notes")
}

func TestExpertJudgementWindow(t *testing.T) {
	for rank, expected := range map[string]ExpertJudgementWindow{
		"0": {8, 24},
		"1": {15, 30},
		"2": {18, 40},
		"3": {21, 60},
		"x": {18, 40},
	} {
		chart := bms.NewChart()
		chart.Headers.Set("rank", rank)
		assert.Equal(t, expected, ExpertJudgementWindowFromChart(chart), rank)
	}
	assert.Equal(t, ExpertJudgementWindow{18, 40}, ExpertJudgementWindowFromChart(bms.NewChart()))
}
