package processor

import (
	"errors"

	"gitlab.com/gomidi/midi/v2/smf"
)

// StopIteration can be returned by the yield function to stop without failure.
var StopIteration = errors.New("forEachEventWithTime: StopIteration")

// forEachEventWithTime runs yield for every event of every track in
// absolute tick order, note-off events first within a tick. track and index
// address the event inside mid so callers may rewrite it in place.
func forEachEventWithTime(mid *smf.SMF, yield func(time int64, track, index int, msg smf.Message) error) error {
	// trackPos is the index of the NEXT event from each track.
	trackPos := make([]int, len(mid.Tracks))
	// trackTime is the time of the LAST event from each track.
	trackTime := make([]int64, len(mid.Tracks))
	for {
		earliestTrack := -1
		var earliestTime int64
		var earliestNoteOff bool
		for i, t := range mid.Tracks {
			p := trackPos[i]
			if p >= len(t) {
				// End of track.
				continue
			}
			time := trackTime[i] + int64(t[p].Delta)
			noteOff := t[p].Message.GetNoteEnd(nil, nil)
			if earliestTrack < 0 || time < earliestTime || (time == earliestTime && noteOff && !earliestNoteOff) {
				earliestTime = time
				earliestTrack = i
				earliestNoteOff = noteOff
			}
		}
		if earliestTrack < 0 {
			// End of MIDI.
			return nil
		}
		pos := trackPos[earliestTrack]
		msg := mid.Tracks[earliestTrack][pos].Message
		if !msg.Is(smf.MetaEndOfTrackMsg) {
			err := yield(earliestTime, earliestTrack, pos, msg)
			if errors.Is(err, StopIteration) {
				return nil
			}
			if err != nil {
				return err
			}
		}
		trackPos[earliestTrack]++
		trackTime[earliestTrack] = earliestTime
	}
}
