package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/indiscipline/midicompress/internal/file"
	"github.com/indiscipline/midicompress/internal/processor"
	"github.com/indiscipline/midicompress/internal/version"
)

var (
	i           = flag.String("i", "", "input file name")
	o           = flag.String("o", "", "output file name")
	w           = flag.Bool("w", false, "overwrite the input file instead of writing to -o")
	c           = flag.String("c", "", "options file name (YAML)")
	rates       = flag.String("rates", "", "pitch and global compression percentages, comma separated (e.g. 75,25)")
	showVersion = flag.Bool("version", false, "print the version and exit")
)

const defaultRates = "75,25"

// promptRates asks for the two percentages on the terminal. An empty reply
// takes the default; EOF means the user cancelled.
func promptRates() (string, bool) {
	fmt.Fprintf(os.Stderr, "Compression rates in percent (pitch,global) [%s]: ", defaultRates)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	line = strings.TrimSpace(line)
	if line == "" {
		line = defaultRates
	}
	return line, true
}

func Main() error {
	if *showVersion {
		fmt.Println(version.Version())
		return nil
	}
	if *i == "" {
		return fmt.Errorf("-i is required")
	}
	out := *o
	if *w {
		if out != "" {
			return fmt.Errorf("-o and -w are mutually exclusive")
		}
		out = *i
	}
	if out == "" {
		return fmt.Errorf("-o or -w is required")
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %v", err)
	}
	fsys := os.DirFS(cwd)

	options := &processor.Options{}
	if *c != "" {
		options, err = file.ReadOptions(fsys, *c)
		if err != nil {
			return fmt.Errorf("failed to read options: %v", err)
		}
	}

	rateSpec := *rates
	if rateSpec == "" && *c == "" {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("no compression rates given; use -rates or -c")
		}
		spec, ok := promptRates()
		if !ok {
			// Cancelled; nothing to do.
			return nil
		}
		rateSpec = spec
	}
	if rateSpec != "" {
		pitch, global, err := file.ParseRates(rateSpec)
		if err != nil {
			return err
		}
		options.PitchCompression = pitch
		options.GlobalCompression = global
	}

	mid, err := file.Process(fsys, *i, options)
	if err != nil {
		return err
	}
	err = mid.WriteFile(out)
	if err != nil {
		return fmt.Errorf("failed to write %v: %v", out, err)
	}
	return nil
}

func main() {
	flag.Parse()
	err := Main()
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
