package spacing

import (
	"testing"

	"git.lost.host/meutraa/bmsc/internal/compiler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoSpacing(t *testing.T) {
	s := FromChart(compiler.Compile("#00111:01", compiler.Options{}).Chart)
	assert.Equal(t, 1.0, s.Factor(0))
	assert.Equal(t, 1.0, s.Factor(1000))
}

func TestSpacingInterpolates(t *testing.T) {
	text := `
#SPEED01 1.0
#SPEED02 2.0
#SPEED03 abc
#001SP:01010202
#002SP:03
`
	s := FromChart(compiler.Compile(text, compiler.Options{}).Chart)

	// anchored at the first factor before the first keyframe
	assert.InDelta(t, 1.0, s.Factor(0), 1e-9)
	assert.InDelta(t, 1.0, s.Factor(5), 1e-9)
	assert.InDelta(t, 1.5, s.Factor(5.5), 1e-9)
	assert.InDelta(t, 2.0, s.Factor(6), 1e-9)
	assert.InDelta(t, 2.0, s.Factor(100), 1e-9)
}

func TestNewEmpty(t *testing.T) {
	s, err := New(nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, s.Factor(3))
}

func TestSpacingNonFinite(t *testing.T) {
	for _, text := range []string{
		"#SPEED01 inf\n#001SP:01",
		"#SPEED01 NaN\n#001SP:01",
		// The slope between the two overflows
		"#SPEED01 1e308\n#SPEED02 -1e308\n#001SP:0102",
	} {
		var s *Spacing
		require.NotPanics(t, func() {
			s = FromChart(compiler.Compile(text, compiler.Options{}).Chart)
		}, text)
		assert.Equal(t, 1.0, s.Factor(5), text)
	}
}
