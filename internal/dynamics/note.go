package dynamics

// NoteID addresses a note inside the take that produced it. IDs are dense
// indices issued by the take and stay valid for the lifetime of one run.
type NoteID int

// Note is the slice of a note event this package operates on. Per-note
// fields an editor keeps but the transform never reads (timing, duration,
// mute state) are deliberately absent.
type Note struct {
	ID       NoteID
	Channel  uint8
	Pitch    uint8
	Velocity uint8
}

// GroupKey identifies a pitch group. Equal note numbers on different
// channels are distinct instruments and must not share an average.
type GroupKey struct {
	Channel uint8
	Pitch   uint8
}

// Take is the editing surface a compression run operates against.
// Implementations enumerate the currently selected notes and write
// velocities back by ID.
type Take interface {
	SelectedNotes() []Note
	SetVelocity(id NoteID, velocity uint8) error
}
