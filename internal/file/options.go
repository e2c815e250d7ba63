package file

import (
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/indiscipline/midicompress/internal/processor"
)

func ReadOptions(fsys fs.FS, optionsFile string) (*processor.Options, error) {
	f, err := fsys.Open(optionsFile)
	if err != nil {
		return nil, fmt.Errorf("could not open %v: %v", optionsFile, err)
	}
	defer f.Close()
	var options processor.Options
	err = yaml.NewDecoder(f).Decode(&options)
	if err != nil {
		return nil, fmt.Errorf("could not decode %v: %v", optionsFile, err)
	}
	return &options, nil
}

// ParseRates parses a comma separated "pitch,global" percentage pair. A
// single number is the pitch rate alone, with a global rate of 0.
func ParseRates(s string) (pitch, global float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) > 2 {
		return 0, 0, fmt.Errorf("want at most two comma separated rates, got %q", s)
	}
	pitch, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad pitch compression rate in %q: %v", s, err)
	}
	if len(parts) == 2 {
		global, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return 0, 0, fmt.Errorf("bad global compression rate in %q: %v", s, err)
		}
	}
	return pitch, global, nil
}
