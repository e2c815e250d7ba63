package processor

import (
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/indiscipline/midicompress/internal/dynamics"
)

// Options configures one compression run.
type Options struct {
	// PitchCompression is the percentage applied to each pitch group
	// against its own mean. 100 flattens a group onto its mean, negative
	// values expand, 0 skips the phase. Values above 100 behave like 100.
	PitchCompression float64 `yaml:"pitch_compression"`
	// GlobalCompression is the percentage applied to the whole selection
	// after the per-pitch phase, with no upper cap. 0 skips the phase.
	GlobalCompression float64 `yaml:"global_compression"`
	// Selection restricts which notes are touched. The zero value selects
	// every note.
	Selection Selection `yaml:"selection"`
}

// Process compresses the note velocities of mid in place according to
// options. A file with no tracks or no selected notes is left untouched.
func Process(mid *smf.SMF, options *Options) error {
	take, err := newTake(mid, &options.Selection)
	if err != nil {
		return err
	}
	return dynamics.Run(take, options.PitchCompression, options.GlobalCompression)
}
