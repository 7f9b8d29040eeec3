package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func always(n int) func(int) int {
	return func(int) int { return n }
}

func TestCompileHeadersAndChannels(t *testing.T) {
	result := Compile("#TITLE Hello World\n#BPM 140\n#00111:01020304\n#00202:0.75\nnot a sentence\n", Options{})

	title, ok := result.Chart.Headers.Get("title")
	require.True(t, ok)
	assert.Equal(t, "Hello World", title)
	assert.Equal(t, 2, result.HeaderSentences)
	assert.Equal(t, 2, result.ChannelSentences)
	assert.Equal(t, 0.75, result.Chart.TimeSignatures.Get(2))

	objects := result.Chart.Objects.All()
	require.Len(t, objects, 4)
	assert.Equal(t, "11", objects[1].Channel)
	assert.Equal(t, 1, objects[1].Measure)
	assert.Equal(t, 0.25, objects[1].Fraction)
	assert.Equal(t, "02", objects[1].Value)
	assert.Equal(t, 3, objects[1].LineNumber)
}

func TestCompileSkipsRests(t *testing.T) {
	result := Compile("#00111:00010000", Options{})
	objects := result.Chart.Objects.All()
	require.Len(t, objects, 1)
	assert.Equal(t, 0.25, objects[0].Fraction)
}

func TestCompileRandomMatching(t *testing.T) {
	text := "#RANDOM 1\n#IF 1\n#00111:01\n#00112:01\n#00113:01\n#ENDIF\n"
	result := Compile(text, Options{})
	assert.Equal(t, 3, result.Chart.Objects.Len())
	assert.Equal(t, 3, result.ControlSentences)
	assert.Empty(t, result.Warnings)
}

func TestCompileRandomNotMatching(t *testing.T) {
	text := "#RANDOM 1\n#IF 2\n#00111:01\n#00112:01\n#TITLE skipped\n#ENDIF\n#00113:01\n"
	result := Compile(text, Options{})
	assert.Equal(t, 1, result.Chart.Objects.Len())
	assert.Equal(t, 3, result.SkippedSentences)
	_, ok := result.Chart.Headers.Get("title")
	assert.False(t, ok)
}

func TestCompileRandomUsesGenerator(t *testing.T) {
	text := "#RANDOM 3\n#IF 1\n#TITLE one\n#ENDIF\n#IF 2\n#TITLE two\n#ENDIF\n#IF 3\n#TITLE three\n#ENDIF\n"
	for n, expected := range map[int]string{1: "one", 2: "two", 3: "three"} {
		result := Compile(text, Options{Rand: always(n)})
		title, _ := result.Chart.Headers.Get("title")
		assert.Equal(t, expected, title)
	}
}

func TestCompileNestedSkipPropagates(t *testing.T) {
	text := "#RANDOM 2\n#IF 1\n#RANDOM 2\n#IF 2\n#00111:01\n#ENDIF\n#ENDIF\n"
	result := Compile(text, Options{Rand: always(2)})
	assert.Equal(t, 0, result.Chart.Objects.Len())
}

func TestCompileUnmatchedEndifIgnored(t *testing.T) {
	result := Compile("#ENDIF\n#ENDIF\n#00111:01\n", Options{})
	assert.Equal(t, 1, result.Chart.Objects.Len())
	require.Len(t, result.Warnings, 2)
	assert.Equal(t, 1, result.Warnings[0].LineNumber)
}

func TestCompileReplaceNotDuplicate(t *testing.T) {
	result := Compile("#00111:0100\n#00111:02\n", Options{})
	objects := result.Chart.Objects.All()
	require.Len(t, objects, 1)
	assert.Equal(t, "02", objects[0].Value)

	result = Compile("#00101:0100\n#00101:02\n", Options{})
	assert.Equal(t, 2, result.Chart.Objects.Len())
}

func TestCompileMalformed(t *testing.T) {
	result := Compile("#\n#!!!\n#TITLE ok\n", Options{})
	assert.Equal(t, 2, result.MalformedSentences)
	require.Len(t, result.Warnings, 2)
	assert.Equal(t, 2, result.Warnings[1].LineNumber)
}

func TestCompileLineEndings(t *testing.T) {
	result := Compile("#TITLE a\r\n  #ARTIST b  \r#GENRE c", Options{})
	assert.Equal(t, 3, result.HeaderSentences)
	artist, _ := result.Chart.Headers.Get("artist")
	assert.Equal(t, "b", artist)
}

func TestCompileDTX(t *testing.T) {
	result := Compile("#TITLE: Drums\n#00111: 0102\n#00102: 0.5\n", Options{Format: FormatDTX})
	title, _ := result.Chart.Headers.Get("title")
	assert.Equal(t, "Drums", title)
	assert.Equal(t, 2, result.Chart.Objects.Len())
	assert.Equal(t, 0.5, result.Chart.TimeSignatures.Get(1))
}

func TestCompileExtendedChannel(t *testing.T) {
	result := Compile("#EXT #00211:0001", Options{})
	objects := result.Chart.Objects.All()
	require.Len(t, objects, 1)
	assert.Equal(t, 2, objects[0].Measure)
}

func TestParseFormat(t *testing.T) {
	f, ok := ParseFormat("DTX")
	assert.True(t, ok)
	assert.Equal(t, FormatDTX, f)
	_, ok = ParseFormat("osu")
	assert.False(t, ok)
}

func TestCompileInvalidMeasureSize(t *testing.T) {
	for _, size := range []string{"inf", "+Inf", "NaN", "-1", "0", "1e308"} {
		result := Compile("#00102:"+size+"\n#00211:01", Options{})
		assert.Len(t, result.Warnings, 1, size)
		assert.Equal(t, 1.0, result.Chart.TimeSignatures.Get(1), size)
		assert.Equal(t, 8.0, result.Chart.ObjectBeat(result.Chart.Objects.All()[0]), size)
	}
}

func TestCompileRandomOutOfRange(t *testing.T) {
	strict := func(max int) int {
		if max < 1 {
			panic("max must be at least 1")
		}
		return max
	}
	for _, random := range []string{"0", "99999999999999999999"} {
		text := "#RANDOM " + random + "\n#IF 1\n#00111:01\n#ENDIF\n"
		var result *Result
		require.NotPanics(t, func() {
			result = Compile(text, Options{Rand: strict})
		}, random)
		assert.Len(t, result.Warnings, 1, random)
		assert.Equal(t, 1, result.Chart.Objects.Len(), random)
	}
}

func TestCompileMultiByteChannelData(t *testing.T) {
	result := Compile("#00111:あい01", Options{})
	assert.Empty(t, result.Warnings)
	objects := result.Chart.Objects.All()
	require.Len(t, objects, 2)
	assert.Equal(t, "あい", objects[0].Value)
	assert.Equal(t, "01", objects[1].Value)
	assert.Equal(t, 0.5, objects[1].Fraction)
}
