package processor

import (
	"fmt"

	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/indiscipline/midicompress/internal/dynamics"
)

// noteRef addresses a note start event inside an SMF.
type noteRef struct {
	track, index int
}

// smfTake exposes the note starts of one SMF as a dynamics.Take. Velocity
// writes go straight into the stored message bytes, leaving channel, pitch
// and timing untouched.
type smfTake struct {
	mid   *smf.SMF
	notes []dynamics.Note
	refs  []noteRef
}

func newTake(mid *smf.SMF, sel *Selection) (*smfTake, error) {
	t := &smfTake{mid: mid}
	err := forEachEventWithTime(mid, func(time int64, track, index int, msg smf.Message) error {
		var ch, pitch, velocity uint8
		if !msg.GetNoteStart(&ch, &pitch, &velocity) {
			return nil
		}
		if !sel.Contains(time, ch, pitch) {
			return nil
		}
		t.notes = append(t.notes, dynamics.Note{
			ID:       dynamics.NoteID(len(t.notes)),
			Channel:  ch,
			Pitch:    pitch,
			Velocity: velocity,
		})
		t.refs = append(t.refs, noteRef{track: track, index: index})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (t *smfTake) SelectedNotes() []dynamics.Note {
	notes := make([]dynamics.Note, len(t.notes))
	copy(notes, t.notes)
	return notes
}

func (t *smfTake) SetVelocity(id dynamics.NoteID, velocity uint8) error {
	if id < 0 || int(id) >= len(t.refs) {
		return fmt.Errorf("no note with ID %d", id)
	}
	ref := t.refs[id]
	// A note start message is [status, key, velocity].
	t.mid.Tracks[ref.track][ref.index].Message.Bytes()[2] = velocity
	t.notes[id].Velocity = velocity
	return nil
}
