package parser

import (
	"crypto/sha256"
	"encoding/base64"
	"io/ioutil"
	"math/rand"

	"git.lost.host/meutraa/bmsc/internal/compiler"
	"git.lost.host/meutraa/bmsc/internal/game"
	"git.lost.host/meutraa/bmsc/internal/reader"
	"github.com/pkg/errors"
)

type DefaultParser struct {
	Format  compiler.Format
	Options game.PlayerOptions

	// Seed for #RANDOM, 0 picks a new sequence for every parse.
	Seed int64
}

func (p *DefaultParser) random() func(max int) int {
	if p.Seed == 0 {
		return nil
	}
	r := rand.New(rand.NewSource(p.Seed))
	return func(max int) int {
		return r.Intn(max) + 1
	}
}

func hash(data []byte) string {
	sum := sha256.Sum256(data)
	return base64.StdEncoding.EncodeToString(sum[:])
}

func (p *DefaultParser) Parse(file string) (*Parsed, error) {
	data, err := ioutil.ReadFile(file)
	if nil != err {
		return nil, errors.Wrap(err, "unable to read chart")
	}
	return p.ParseBytes(data, file)
}

// ParseBytes parses chart data, the name is only used to pick the charset.
func (p *DefaultParser) ParseBytes(data []byte, name string) (*Parsed, error) {
	text, err := reader.Read(data, name)
	if nil != err {
		return nil, err
	}

	result := compiler.Compile(text, compiler.Options{
		Format: p.Format,
		Rand:   p.random(),
	})

	notechart, err := game.FromChart(result.Chart, p.Options)
	if nil != err {
		return nil, errors.Wrapf(err, "unable to build notechart for %s", name)
	}
	notechart.Hash = hash(data)

	return &Parsed{Notechart: notechart, Compile: result}, nil
}
