// Package game assembles the derived views of a chart into a Notechart,
// the timed events a game plays.
package game

import (
	"errors"

	"git.lost.host/meutraa/bmsc/internal/bms"
	"git.lost.host/meutraa/bmsc/internal/keysounds"
	"git.lost.host/meutraa/bmsc/internal/notes"
	"git.lost.host/meutraa/bmsc/internal/positioning"
	"git.lost.host/meutraa/bmsc/internal/songinfo"
	"git.lost.host/meutraa/bmsc/internal/spacing"
	"git.lost.host/meutraa/bmsc/internal/timing"
	"golang.org/x/exp/slices"
)

// Data is everything needed to build a Notechart.
type Data struct {
	Notes         []notes.Note
	LandmineNotes []notes.Note // Optional
	Timing        *timing.Timing
	Keysounds     *keysounds.Keysounds
	SongInfo      *songinfo.SongInfo
	Positioning   *positioning.Positioning
	Spacing       *spacing.Spacing
	BarLines      []float64 // Beat of each measure start

	ExpertJudgementWindow ExpertJudgementWindow
}

func (d *Data) validate() error {
	switch {
	case d.Notes == nil:
		return errors.New("expected data.notes")
	case d.Timing == nil:
		return errors.New("expected data.timing")
	case d.Keysounds == nil:
		return errors.New("expected data.keysounds")
	case d.SongInfo == nil:
		return errors.New("expected data.songInfo")
	case d.Positioning == nil:
		return errors.New("expected data.positioning")
	case d.Spacing == nil:
		return errors.New("expected data.spacing")
	case d.BarLines == nil:
		return errors.New("expected data.barLines")
	}
	return nil
}

// Notechart holds what a single player needs to play a chart. It is not
// modified after New.
type Notechart struct {
	// Hash identifies the chart source, set by the parser.
	Hash string

	ExpertJudgementWindow ExpertJudgementWindow

	timing      *timing.Timing
	keysounds   *keysounds.Keysounds
	positioning *positioning.Positioning
	spacing     *spacing.Spacing
	songInfo    *songinfo.SongInfo

	duration  float64
	notes     []*Note
	autos     []*SoundedEvent
	landmines []*Landmine
	barLines  []Event
	samples   []string
	columns   []string
	infos     map[int]NoteInfo
}

func New(data Data, options PlayerOptions) (*Notechart, error) {
	if err := data.validate(); nil != err {
		return nil, err
	}

	n := &Notechart{
		ExpertJudgementWindow: data.ExpertJudgementWindow,

		timing:      data.Timing,
		keysounds:   data.Keysounds,
		positioning: data.Positioning,
		spacing:     data.Spacing,
		songInfo:    data.SongInfo,
		columns:     Columns,
		infos:       map[int]NoteInfo{},
	}
	if options.Double {
		n.columns = DoubleColumns
	}

	ns, err := preTransform(data.Notes, options)
	if nil != err {
		return nil, err
	}

	n.notes = n.playableNotes(ns)
	n.landmines = n.landmineEvents(data.LandmineNotes)
	n.autos = n.autoKeysoundEvents(ns)
	for _, beat := range data.BarLines {
		n.barLines = append(n.barLines, n.event(beat))
	}
	n.samples = n.keysoundFiles()
	for _, note := range n.notes {
		info := NoteInfo{Combos: 1}
		if note.IsLong() {
			info.Combos = 2
		}
		n.infos[note.ID] = info
	}
	return n, nil
}

// FromChart builds a Notechart with the mapping chosen by the options.
func FromChart(chart *bms.Chart, options PlayerOptions) (*Notechart, error) {
	mapping, landmineMapping := notes.IIDXP1, notes.IIDXP1Landmine
	if options.Double {
		mapping, landmineMapping = notes.IIDXDP, notes.IIDXDPLandmine
	}
	ns := notes.FromChart(chart, mapping).All()

	return New(Data{
		Notes:                 ns,
		LandmineNotes:         notes.FromChart(chart, landmineMapping).All(),
		Timing:                timing.FromChart(chart),
		Keysounds:             keysounds.FromChart(chart),
		SongInfo:              songinfo.FromChart(chart),
		Positioning:           positioning.FromChart(chart),
		Spacing:               spacing.FromChart(chart),
		BarLines:              BarLines(ns, chart.TimeSignatures),
		ExpertJudgementWindow: ExpertJudgementWindowFromChart(chart),
	}, options)
}

func keyMode(ns []notes.Note) string {
	for _, note := range ns {
		if note.Column == "6" || note.Column == "7" {
			return KeyMode7K
		}
	}
	return KeyMode5K
}

// preTransform applies the scratch option. Without a scratch the SC
// column becomes background sound, and a 5 key chart is moved right so
// it sits next to the scratch side the player chose.
func preTransform(ns []notes.Note, options PlayerOptions) ([]notes.Note, error) {
	fiveKey := !options.Double && keyMode(ns) == KeyMode5K
	out := make([]notes.Note, 0, len(ns))
	for _, note := range ns {
		note = note.Clone()
		if options.Scratch == ScratchOff && note.Column == "SC" {
			note.Column = ""
		}
		if fiveKey {
			amount := 0
			switch options.Scratch {
			case ScratchOff:
				amount = 1
			case ScratchRight:
				amount = 2
			}
			if index := slices.Index(shiftableColumns, note.Column); index > -1 && amount > 0 {
				shifted := index + amount
				if shifted >= len(shiftableColumns) {
					return nil, errors.New("column shifted past the available columns")
				}
				note.Column = shiftableColumns[shifted]
			}
		}
		out = append(out, note)
	}
	return out, nil
}

func (n *Notechart) event(beat float64) Event {
	return Event{
		Beat:     beat,
		Time:     n.BeatToSeconds(beat),
		Position: n.BeatToPosition(beat),
	}
}

func (n *Notechart) updateDuration(e Event) {
	if e.Time > n.duration {
		n.duration = e.Time
	}
}

func (n *Notechart) playableNotes(ns []notes.Note) []*Note {
	out := []*Note{}
	nextID := 1
	for _, note := range ns {
		if note.IsAuto() {
			continue
		}
		gn := &Note{
			SoundedEvent: SoundedEvent{
				Event:         n.event(note.Beat),
				Keysound:      note.Keysound,
				KeysoundStart: note.KeysoundStart,
				KeysoundEnd:   note.KeysoundEnd,
			},
			ID:     nextID,
			Column: note.Column,
		}
		nextID++
		n.updateDuration(gn.Event)
		if note.EndBeat != nil {
			end := n.event(*note.EndBeat)
			gn.End = &end
			n.updateDuration(end)
		}
		out = append(out, gn)
	}
	return out
}

func (n *Notechart) landmineEvents(ns []notes.Note) []*Landmine {
	out := []*Landmine{}
	nextID := 1
	for _, note := range ns {
		if note.IsAuto() {
			continue
		}
		l := &Landmine{Event: n.event(note.Beat), ID: nextID, Column: note.Column}
		nextID++
		n.updateDuration(l.Event)
		out = append(out, l)
	}
	return out
}

func (n *Notechart) autoKeysoundEvents(ns []notes.Note) []*SoundedEvent {
	out := []*SoundedEvent{}
	for _, note := range ns {
		if !note.IsAuto() {
			continue
		}
		out = append(out, &SoundedEvent{
			Event:         n.event(note.Beat),
			Keysound:      note.Keysound,
			KeysoundStart: note.KeysoundStart,
			KeysoundEnd:   note.KeysoundEnd,
		})
	}
	return out
}

func (n *Notechart) keysoundFiles() []string {
	files := []string{}
	add := func(keysound string) {
		if file, ok := n.keysounds.Get(keysound); ok && !slices.Contains(files, file) {
			files = append(files, file)
		}
	}
	for _, note := range n.notes {
		add(note.Keysound)
	}
	for _, auto := range n.autos {
		add(auto.Keysound)
	}
	return files
}

func (n *Notechart) Notes() []*Note {
	return n.notes
}

func (n *Notechart) Landmines() []*Landmine {
	return n.landmines
}

// Autos are the background sounds played without input.
func (n *Notechart) Autos() []*SoundedEvent {
	return n.autos
}

// Samples are the sound files used by notes and autos.
func (n *Notechart) Samples() []string {
	return n.samples
}

func (n *Notechart) Keysounds() map[string]string {
	return n.keysounds.All()
}

func (n *Notechart) BarLines() []Event {
	return n.barLines
}

func (n *Notechart) Columns() []string {
	return n.columns
}

// Duration is the time of the last note, in seconds.
func (n *Notechart) Duration() float64 {
	return n.duration
}

func (n *Notechart) SongInfo() *songinfo.SongInfo {
	return n.songInfo
}

func (n *Notechart) Info(note *Note) (NoteInfo, bool) {
	info, ok := n.infos[note.ID]
	return info, ok
}

func (n *Notechart) BeatToSeconds(beat float64) float64 {
	return n.timing.BeatToSeconds(beat)
}

func (n *Notechart) SecondsToBeat(seconds float64) float64 {
	return n.timing.SecondsToBeat(seconds)
}

func (n *Notechart) BeatToPosition(beat float64) float64 {
	return n.positioning.Position(beat)
}

func (n *Notechart) SecondsToPosition(seconds float64) float64 {
	return n.BeatToPosition(n.SecondsToBeat(seconds))
}

// MeasureToBeat uses the bar lines, measures past the end are clamped to
// the last one.
func (n *Notechart) MeasureToBeat(measure int) float64 {
	if len(n.barLines) == 0 {
		return 0
	}
	if measure < 0 {
		measure = 0
	}
	if measure >= len(n.barLines) {
		measure = len(n.barLines) - 1
	}
	return n.barLines[measure].Beat
}

func (n *Notechart) BPMAtBeat(beat float64) float64 {
	return n.timing.BPMAtBeat(beat)
}

func (n *Notechart) EventBeats() []float64 {
	return n.timing.EventBeats()
}

func (n *Notechart) ScrollSpeedAtBeat(beat float64) float64 {
	return n.positioning.Speed(beat)
}

func (n *Notechart) SpacingAtBeat(beat float64) float64 {
	return n.spacing.Factor(beat)
}

// KeyMode is 5K when the chart does not use the columns the scratch
// option would take, 7K otherwise.
func (n *Notechart) KeyMode(scratch Scratch) string {
	used := map[string]bool{}
	for _, note := range n.notes {
		used[note.Column] = true
	}
	switch {
	case scratch == ScratchOff && !used["1"] && !used["7"]:
		return KeyMode5K
	case scratch == ScratchLeft && !used["6"] && !used["7"]:
		return KeyMode5K
	case scratch == ScratchRight && !used["1"] && !used["2"]:
		return KeyMode5K
	}
	return KeyMode7K
}

func (n *Notechart) NoteCount() int {
	return len(n.notes)
}

func (n *Notechart) HoldCount() int {
	count := 0
	for _, note := range n.notes {
		if note.IsLong() {
			count++
		}
	}
	return count
}

func (n *Notechart) MineCount() int {
	return len(n.landmines)
}
