package version

import (
	"bytes"
	_ "embed"
)

//go:embed version.txt
var versionBytes []byte

// Version returns the midicompress release version.
func Version() string {
	return string(bytes.TrimSpace(versionBytes))
}
