package dynamics

// Run applies two compression phases to the take's selection: first each
// pitch group against its own mean with pitchRate, then the whole selection
// against its combined mean with globalRate. The global phase reads the
// velocities the pitch phase wrote, so the phase order is observable
// whenever both rates are nonzero.
//
// pitchRate is capped at 100 so dynamics within a pitch group never invert.
// globalRate is passed through as given, sign and magnitude untouched; a
// whole-selection rate above 100 inverting loud and quiet notes is allowed.
//
// A zero rate skips its phase. An empty selection returns nil without a
// single write. The global phase also requires more than one selected note,
// as a singleton cannot move relative to its own mean.
func Run(take Take, pitchRate, globalRate float64) error {
	notes := take.SelectedNotes()
	if len(notes) == 0 {
		return nil
	}
	if pitchRate != 0 {
		rate := pitchRate
		if rate > maxPitchRate {
			rate = maxPitchRate
		}
		for _, group := range GroupByPitch(notes) {
			if err := compressInto(take, notes, group, rate); err != nil {
				return err
			}
		}
	}
	if globalRate != 0 && len(notes) > 1 {
		all := make([]int, len(notes))
		for i := range all {
			all[i] = i
		}
		return compressInto(take, notes, all, globalRate)
	}
	return nil
}

// compressInto compresses the velocities of the notes addressed by idx and
// writes the results both to the take and back into notes.
func compressInto(take Take, notes []Note, idx []int, rate float64) error {
	velocities := make([]uint8, len(idx))
	for i, n := range idx {
		velocities[i] = notes[n].Velocity
	}
	for i, v := range Compress(velocities, rate) {
		notes[idx[i]].Velocity = v
		if err := take.SetVelocity(notes[idx[i]].ID, v); err != nil {
			return err
		}
	}
	return nil
}
