// Package keysounds maps two character keysound ids to sound files.
package keysounds

import (
	"regexp"
	"strings"

	"git.lost.host/meutraa/bmsc/internal/bms"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var wavHeader = regexp.MustCompile(`(?i)^wav(\S\S)$`)

type Keysounds struct {
	files map[string]string
	order []string // ids in header order
}

func New(files map[string]string) *Keysounds {
	k := &Keysounds{files: map[string]string{}}
	ids := maps.Keys(files)
	slices.Sort(ids)
	for _, id := range ids {
		k.add(id, files[id])
	}
	return k
}

func (k *Keysounds) add(id, file string) {
	id = strings.ToLower(id)
	if _, ok := k.files[id]; !ok {
		k.order = append(k.order, id)
	}
	k.files[id] = file
}

// Get the file of a keysound id, ids are case-insensitive.
func (k *Keysounds) Get(id string) (string, bool) {
	file, ok := k.files[strings.ToLower(id)]
	return file, ok
}

// Files returns each distinct file once.
func (k *Keysounds) Files() []string {
	files := []string{}
	for _, id := range k.order {
		if file := k.files[id]; !slices.Contains(files, file) {
			files = append(files, file)
		}
	}
	return files
}

func (k *Keysounds) All() map[string]string {
	return maps.Clone(k.files)
}

func (k *Keysounds) Len() int {
	return len(k.files)
}

// FromChart reads every #WAVxx header.
func FromChart(chart *bms.Chart) *Keysounds {
	k := &Keysounds{files: map[string]string{}}
	chart.Headers.Each(func(name, value string) {
		if m := wavHeader.FindStringSubmatch(name); m != nil {
			k.add(m[1], value)
		}
	})
	return k
}
