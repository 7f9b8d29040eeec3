package theme

import (
	"fmt"
	"os"
	"strings"

	"git.lost.host/meutraa/bmsc/internal/judgement"
	"golang.org/x/term"
)

type color struct {
	R, G, B uint8
}

type DefaultTheme struct {
	colored bool
	width   int
}

const defaultWidth = 60

// NewDefaultTheme colours output only when out is a terminal.
func NewDefaultTheme(out *os.File) *DefaultTheme {
	fd := int(out.Fd())
	t := &DefaultTheme{width: defaultWidth}
	if term.IsTerminal(fd) {
		t.colored = true
		if w, _, err := term.GetSize(fd); nil == err && w > 0 && w < defaultWidth {
			t.width = w
		}
	}
	return t
}

func (t *DefaultTheme) paint(c color, s string) string {
	if !t.colored {
		return s
	}
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", c.R, c.G, c.B, s)
}

func (t *DefaultTheme) RenderJudgement(j judgement.Judgement) string {
	c, ok := judgementColors[j]
	if !ok {
		c = white
	}
	return t.paint(c, fmt.Sprintf("%8v", j))
}

func (t *DefaultTheme) RenderColumn(column string) string {
	c, ok := columnColors[column]
	if !ok {
		c = white
	}
	return t.paint(c, fmt.Sprintf("%3v", column))
}

func (t *DefaultTheme) Separator() string {
	return strings.Repeat("-", t.width)
}

var (
	white           = color{255, 255, 255}
	judgementColors = map[judgement.Judgement]color{
		judgement.PGreat:  {173, 236, 236}, // light blue
		judgement.Great:   {236, 195, 0},   // yellow
		judgement.Good:    {0, 236, 128},   // green
		judgement.Offbeat: {236, 128, 0},   // orange
		judgement.Missed:  {236, 30, 0},    // red
	}
	// Scratch red, odd keys white, even keys blue
	columnColors = map[string]color{
		"SC": {236, 30, 0}, "SC2": {236, 30, 0},
		"2": {0, 118, 236}, "4": {0, 118, 236}, "6": {0, 118, 236},
		"9": {0, 118, 236}, "11": {0, 118, 236}, "13": {0, 118, 236},
	}
)
