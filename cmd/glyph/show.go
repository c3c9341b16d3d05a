package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/k0kubun/pp/v3"
	"golang.org/x/term"

	"github.com/neumenon/glyph/internal/canon"
)

type showFlags struct {
	canonFlags
	Debug bool `long:"debug" description:"Pretty-print the internal Value tree instead of the canonical form"`
}

func runShow(args []string) error {
	var f showFlags
	rest, err := parseArgs(&f, "show <file.json> [options]", args)
	if err != nil {
		return err
	}
	if len(rest) < 1 {
		return fmt.Errorf("usage: glyph show <file.json> [options]")
	}

	v, err := loadValue(rest[0])
	if err != nil {
		return err
	}

	if f.Debug {
		pp.Println(v)
		return nil
	}

	opts, err := resolveOptions(f.canonFlags)
	if err != nil {
		return err
	}

	fmt.Println(wrapToTerminal(canon.Encode(v, opts)))
	return nil
}

// wrapToTerminal wraps long lines to the current terminal width for a
// human reading show's output in a shell; this reshaping is display-only
// and never affects canon.Encode's own output.
func wrapToTerminal(s string) string {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80
	}

	var out strings.Builder
	for _, line := range strings.Split(s, "\n") {
		for len(line) > width {
			out.WriteString(line[:width])
			out.WriteByte('\n')
			line = line[width:]
		}
		out.WriteString(line)
		out.WriteByte('\n')
	}
	return strings.TrimSuffix(out.String(), "\n")
}
