package notes

// Note is a single sound object in a chart. A note without a column is
// a background sound which is played automatically.
type Note struct {
	Beat     float64
	EndBeat  *float64 // Set for long notes
	Column   string   // Empty for background sounds
	Keysound string

	// Where to start and stop playing inside the sound file, in seconds.
	KeysoundStart *float64
	KeysoundEnd   *float64
}

func (n *Note) IsLong() bool {
	return n.EndBeat != nil
}

func (n *Note) IsAuto() bool {
	return n.Column == ""
}

func copyFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}

// Clone returns a note that shares no memory with n.
func (n Note) Clone() Note {
	n.EndBeat = copyFloat(n.EndBeat)
	n.KeysoundStart = copyFloat(n.KeysoundStart)
	n.KeysoundEnd = copyFloat(n.KeysoundEnd)
	return n
}
