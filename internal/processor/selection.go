package processor

// Selection picks the notes an operation applies to, standing in for the
// note selection of an interactive editor. The zero value selects every
// note.
type Selection struct {
	// Channels lists the MIDI channels (0-15) to include. Empty means all.
	Channels []uint8 `yaml:"channels"`
	// MinPitch and MaxPitch bound the note number window. A MaxPitch of 0
	// means no upper bound.
	MinPitch uint8 `yaml:"min_pitch"`
	MaxPitch uint8 `yaml:"max_pitch"`
	// BeginTick and EndTick bound the note start time in absolute ticks,
	// half-open. An EndTick of 0 means no upper bound.
	BeginTick int64 `yaml:"begin_tick"`
	EndTick   int64 `yaml:"end_tick"`
}

// Contains reports whether a note starting at tick on channel ch with the
// given pitch is part of the selection.
func (s *Selection) Contains(tick int64, ch, pitch uint8) bool {
	if s == nil {
		return true
	}
	if len(s.Channels) > 0 {
		found := false
		for _, c := range s.Channels {
			if c == ch {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if pitch < s.MinPitch {
		return false
	}
	if s.MaxPitch != 0 && pitch > s.MaxPitch {
		return false
	}
	if tick < s.BeginTick {
		return false
	}
	if s.EndTick != 0 && tick >= s.EndTick {
		return false
	}
	return true
}
