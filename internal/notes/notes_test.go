package notes

import (
	"testing"

	"git.lost.host/meutraa/bmsc/internal/compiler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extract(text string, mapping Mapping) []Note {
	chart := compiler.Compile(text, compiler.Options{}).Chart
	return FromChart(chart, mapping).All()
}

func TestNormalNotes(t *testing.T) {
	all := extract("#00111:0102\n#00016:03\n#00117:04\n", nil)
	require.Len(t, all, 4)

	assert.Equal(t, 0.0, all[0].Beat)
	assert.Equal(t, "SC", all[0].Column)
	assert.Equal(t, "03", all[0].Keysound)

	assert.Equal(t, 4.0, all[1].Beat)
	assert.Equal(t, "1", all[1].Column)

	// 17 has no column in the 1P mapping, it becomes a background sound
	assert.Equal(t, 4.0, all[2].Beat)
	assert.True(t, all[2].IsAuto())

	assert.Equal(t, 6.0, all[3].Beat)
	assert.False(t, all[3].IsLong())
}

func TestAutoKeysoundChannel(t *testing.T) {
	all := extract("#00101:0102\n#00101:03\n", IIDXP1)
	require.Len(t, all, 3)
	for _, note := range all {
		assert.True(t, note.IsAuto())
	}
}

func TestLongNotePairing(t *testing.T) {
	all := extract("#00051:AA\n#00151:AA\n", IIDXP1)
	require.Len(t, all, 1)
	assert.Equal(t, 0.0, all[0].Beat)
	require.NotNil(t, all[0].EndBeat)
	assert.Equal(t, 4.0, *all[0].EndBeat)
	assert.Equal(t, "1", all[0].Column)
	assert.Equal(t, "AA", all[0].Keysound)
}

func TestUnclosedLongNote(t *testing.T) {
	all := extract("#00051:AA\n#00152:BB\n", IIDXP1)
	assert.Empty(t, all)
}

func TestLongNoteSecondSide(t *testing.T) {
	all := extract("#00061:01\n#00061:0001\n", IIDXDP)
	require.Len(t, all, 1)
	assert.Equal(t, "8", all[0].Column)
	assert.Equal(t, 2.0, *all[0].EndBeat)
}

func TestLNObj(t *testing.T) {
	all := extract("#LNOBJ zz\n#00011:01000000ZZ\n#00012:02\n#00012:00ZZ\n", IIDXP1)
	require.Len(t, all, 2)
	require.NotNil(t, all[0].EndBeat)
	assert.Equal(t, 0.0, all[0].Beat)
	assert.InDelta(t, 3.2, *all[0].EndBeat, 1e-9)

	require.NotNil(t, all[1].EndBeat)
	assert.Equal(t, 2.0, *all[1].EndBeat)
}

func TestLandmines(t *testing.T) {
	text := "#00111:01\n#000D1:20\n#000E1:20\n"

	all := extract(text, IIDXP1)
	require.Len(t, all, 1)
	assert.Equal(t, "1", all[0].Column)

	mines := extract(text, IIDXP1Landmine)
	require.Len(t, mines, 2)
	assert.Equal(t, "1", mines[0].Column)
	assert.Equal(t, "20", mines[0].Keysound)
	// 11 is not in the landmine mapping
	assert.True(t, mines[1].IsAuto())

	mines = extract(text, IIDXDPLandmine)
	columns := []string{}
	for _, n := range mines {
		if !n.IsAuto() {
			columns = append(columns, n.Column)
		}
	}
	assert.Equal(t, []string{"1", "8"}, columns)
}

func TestLowercaseChannel(t *testing.T) {
	all := extract("#000d1:01\n", IIDXP1Landmine)
	require.Len(t, all, 1)
	assert.Equal(t, "1", all[0].Column)
}

func TestAllIsACopy(t *testing.T) {
	chart := compiler.Compile("#00051:AA\n#00151:AA\n", compiler.Options{}).Chart
	n := FromChart(chart, IIDXP1)
	all := n.All()
	*all[0].EndBeat = 100
	all[0].Column = "7"

	again := n.All()
	assert.Equal(t, 4.0, *again[0].EndBeat)
	assert.Equal(t, "1", again[0].Column)
	assert.Equal(t, 1, n.Count())
}

func TestPresets(t *testing.T) {
	for name, mapping := range Presets {
		assert.NotEmpty(t, mapping, name)
	}
	assert.Len(t, IIDXDP, 16)
}
