package dynamics

import "math"

// MaxVelocity is the top of the MIDI velocity range.
const MaxVelocity = 127

// maxPitchRate caps the per-pitch compression rate. Above 100, a note
// louder than its group mean would end up quieter than one that started
// below it.
const maxPitchRate = 100

func clampVelocity(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > MaxVelocity {
		return MaxVelocity
	}
	return uint8(v)
}

// GroupByPitch partitions notes into per-(channel, pitch) groups. The map
// values are indices into notes, so callers see velocity updates made
// between phases.
func GroupByPitch(notes []Note) map[GroupKey][]int {
	groups := map[GroupKey][]int{}
	for i, n := range notes {
		k := GroupKey{Channel: n.Channel, Pitch: n.Pitch}
		groups[k] = append(groups[k], i)
	}
	return groups
}

// Compress remaps velocities linearly around their mean: rate 100 collapses
// the collection onto the mean, rates in (0,100) move every value toward
// it, negative rates push values away from it. Results are rounded half
// away from zero and clamped to [0,127], in input order.
func Compress(velocities []uint8, rate float64) []uint8 {
	if len(velocities) == 0 {
		return nil
	}
	sum := 0
	for _, v := range velocities {
		sum += int(v)
	}
	mean := float64(sum) / float64(len(velocities))
	out := make([]uint8, len(velocities))
	for i, v := range velocities {
		delta := (float64(v) - mean) * rate / 100
		// math.Round rounds halves away from zero.
		out[i] = clampVelocity(math.Round(float64(v) - delta))
	}
	return out
}
