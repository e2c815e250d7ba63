package file

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/indiscipline/midicompress/internal/processor"
)

func TestParseRates(t *testing.T) {
	assert := assert.New(t)

	pitch, global, err := ParseRates("75,25")
	assert.NoError(err)
	assert.Equal(75.0, pitch)
	assert.Equal(25.0, global)

	pitch, global, err = ParseRates(" -50 , 150 ")
	assert.NoError(err)
	assert.Equal(-50.0, pitch)
	assert.Equal(150.0, global)

	pitch, global, err = ParseRates("75")
	assert.NoError(err)
	assert.Equal(75.0, pitch)
	assert.Equal(0.0, global)

	_, _, err = ParseRates("")
	assert.Error(err)
	_, _, err = ParseRates("abc,25")
	assert.Error(err)
	_, _, err = ParseRates("75,x")
	assert.Error(err)
	_, _, err = ParseRates("1,2,3")
	assert.Error(err)
}

func TestReadOptions(t *testing.T) {
	assert := assert.New(t)
	fsys := fstest.MapFS{
		"compress.yml": &fstest.MapFile{Data: []byte(
			"pitch_compression: 75\n" +
				"global_compression: 25\n" +
				"selection:\n" +
				"  channels: [0, 9]\n" +
				"  min_pitch: 36\n" +
				"  max_pitch: 59\n",
		)},
		"broken.yml": &fstest.MapFile{Data: []byte("pitch_compression: [oops\n")},
	}

	options, err := ReadOptions(fsys, "compress.yml")
	assert.NoError(err)
	assert.Equal(75.0, options.PitchCompression)
	assert.Equal(25.0, options.GlobalCompression)
	assert.Equal([]uint8{0, 9}, options.Selection.Channels)
	assert.Equal(uint8(36), options.Selection.MinPitch)
	assert.Equal(uint8(59), options.Selection.MaxPitch)

	_, err = ReadOptions(fsys, "missing.yml")
	assert.Error(err)
	_, err = ReadOptions(fsys, "broken.yml")
	assert.Error(err)
}

func TestProcess(t *testing.T) {
	assert := assert.New(t)

	var track smf.Track
	for _, v := range []uint8{40, 60, 80} {
		track.Add(0, midi.NoteOn(0, 60, v))
		track.Add(960, midi.NoteOff(0, 60))
	}
	track.Close(0)
	in := smf.New()
	in.Add(track)
	var buf bytes.Buffer
	_, err := in.WriteTo(&buf)
	assert.NoError(err)

	fsys := fstest.MapFS{
		"song.mid":    &fstest.MapFile{Data: buf.Bytes()},
		"notmidi.mid": &fstest.MapFile{Data: []byte("not a midi file")},
	}

	out, err := Process(fsys, "song.mid", &processor.Options{PitchCompression: 50})
	assert.NoError(err)
	var velocities []uint8
	for _, ev := range out.Tracks[0] {
		var velocity uint8
		if ev.Message.GetNoteStart(nil, nil, &velocity) {
			velocities = append(velocities, velocity)
		}
	}
	assert.Equal([]uint8{45, 60, 75}, velocities)

	_, err = Process(fsys, "missing.mid", &processor.Options{})
	assert.Error(err)
	_, err = Process(fsys, "notmidi.mid", &processor.Options{})
	assert.Error(err)
}
