// Package notes extracts playable and background notes from a chart.
package notes

import (
	"strings"

	"git.lost.host/meutraa/bmsc/internal/bms"
)

type Notes struct {
	notes []Note
}

func New(notes []Note) *Notes {
	n := &Notes{notes: make([]Note, 0, len(notes))}
	for _, note := range notes {
		n.notes = append(n.notes, note.Clone())
	}
	return n
}

// Count of playable and background notes.
func (n *Notes) Count() int {
	return len(n.notes)
}

func (n *Notes) All() []Note {
	all := make([]Note, len(n.notes))
	for i, note := range n.notes {
		all[i] = note.Clone()
	}
	return all
}

type behavior int

const (
	ignored behavior = iota
	normal
	landmine
	long
)

func channelBehavior(channel string) behavior {
	if channel == bms.AutoKeysoundChannel {
		return normal
	}
	switch channel[0] {
	case '1', '2':
		return normal
	case 'D', 'E':
		return landmine
	case '5', '6':
		return long
	}
	return ignored
}

// Long note channels 5x and 6x fold onto 1x and 2x.
func normalizeChannel(channel string) string {
	switch channel[0] {
	case '5':
		return "1" + channel[1:]
	case '6':
		return "2" + channel[1:]
	}
	return channel
}

type builder struct {
	chart   *bms.Chart
	mapping Mapping
	lnObj   string

	notes []Note
	// Scratch state for one pass, keyed by normalized channel.
	lastNote map[string]int
	activeLN map[string]*Note
}

// FromChart extracts notes with a channel mapping, IIDXP1 when nil.
//
// Objects on 1x/2x (and 01) channels are single notes, unless the value
// is the #LNOBJ marker which turns the previous note on that channel
// into a long note ending there. Objects on 5x/6x channels come in
// pairs, the first starts a long note and the second ends it. Landmine
// channels Dx/Ex only produce notes when the mapping has a column for
// them.
func FromChart(chart *bms.Chart, mapping Mapping) *Notes {
	if mapping == nil {
		mapping = IIDXP1
	}
	lnObj, _ := chart.Headers.Get("lnobj")
	b := &builder{
		chart:    chart,
		mapping:  mapping,
		lnObj:    strings.ToLower(lnObj),
		notes:    []Note{},
		lastNote: map[string]int{},
		activeLN: map[string]*Note{},
	}
	for _, object := range chart.Objects.Sorted() {
		b.handle(object)
	}
	return &Notes{notes: b.notes}
}

func (b *builder) handle(object bms.Object) {
	object.Channel = strings.ToUpper(object.Channel)
	if len(object.Channel) != 2 {
		return
	}
	switch channelBehavior(object.Channel) {
	case normal:
		b.handleNormalNote(object)
	case landmine:
		if _, ok := b.mapping[object.Channel]; ok {
			b.handleNormalNote(object)
		}
	case long:
		b.handleLongNote(object)
	}
}

func (b *builder) handleNormalNote(object bms.Object) {
	channel := normalizeChannel(object.Channel)
	beat := b.chart.ObjectBeat(object)
	if b.lnObj != "" && strings.ToLower(object.Value) == b.lnObj {
		if i, ok := b.lastNote[channel]; ok {
			b.notes[i].EndBeat = &beat
		}
		return
	}
	b.lastNote[channel] = len(b.notes)
	b.notes = append(b.notes, Note{
		Beat:     beat,
		Keysound: object.Value,
		Column:   b.mapping[channel],
	})
}

func (b *builder) handleLongNote(object bms.Object) {
	channel := normalizeChannel(object.Channel)
	beat := b.chart.ObjectBeat(object)
	if note, ok := b.activeLN[channel]; ok {
		note.EndBeat = &beat
		b.notes = append(b.notes, *note)
		delete(b.activeLN, channel)
		return
	}
	b.activeLN[channel] = &Note{
		Beat:     beat,
		Keysound: object.Value,
		Column:   b.mapping[channel],
	}
}
