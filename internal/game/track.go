package game

// Track is the immutable result of parsing one MIDI file, ordered by
// note time ascending. Sessions copy its notes so a restart always
// begins from the full set.
type Track struct {
	Name  string
	Notes []Note
}

// CloneNotes returns fresh note pointers for a new session.
func (t *Track) CloneNotes() []*Note {
	notes := make([]*Note, len(t.Notes))
	for i := range t.Notes {
		n := t.Notes[i]
		notes[i] = &n
	}
	return notes
}
