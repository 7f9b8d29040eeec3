package game

// Event is something placed in the song, at a beat, the time in seconds
// for that beat and its scroll position.
type Event struct {
	Beat     float64
	Time     float64
	Position float64
}

// SoundedEvent plays a keysound when it happens.
type SoundedEvent struct {
	Event
	Keysound      string
	KeysoundStart *float64
	KeysoundEnd   *float64
}

// Note is a playable note in a column.
type Note struct {
	SoundedEvent
	ID     int
	Column string
	End    *Event // The tail of a long note
}

func (n *Note) IsLong() bool {
	return n.End != nil
}

type Landmine struct {
	Event
	ID     int
	Column string
}

// NoteInfo holds how many judgements a note can produce.
type NoteInfo struct {
	Combos int
}

// Input is a key press, or release, recorded during play.
type Input struct {
	Column  string
	HitTime float64 // Seconds since the song started
	Release bool
}
