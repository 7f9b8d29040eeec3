package parser

import (
	"git.lost.host/meutraa/bmsc/internal/compiler"
	"git.lost.host/meutraa/bmsc/internal/game"
)

type Parser interface {
	Parse(file string) (*Parsed, error)
}

// Parsed is a chart file ready to be played.
type Parsed struct {
	Notechart *game.Notechart
	Compile   *compiler.Result
}
