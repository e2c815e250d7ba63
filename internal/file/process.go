package file

import (
	"bytes"
	"fmt"
	"io/fs"

	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/indiscipline/midicompress/internal/processor"
)

// Process reads the MIDI file, applies the compression options and returns
// the modified file for the caller to write. Nothing is written here, so a
// failed run leaves no partial output behind.
func Process(fsys fs.FS, inputFile string, options *processor.Options) (*smf.SMF, error) {
	inBytes, err := fs.ReadFile(fsys, inputFile)
	if err != nil {
		return nil, fmt.Errorf("could not read %v: %v", inputFile, err)
	}
	mid, err := smf.ReadFrom(bytes.NewReader(inBytes))
	if err != nil {
		return nil, fmt.Errorf("could not parse %v: %v", inputFile, err)
	}
	err = processor.Process(mid, options)
	if err != nil {
		return nil, fmt.Errorf("failed to process %v: %v", inputFile, err)
	}
	return mid, nil
}
