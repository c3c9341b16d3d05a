package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/neumenon/glyph/internal/verify"
)

func runVerify(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: glyph verify <vectors.json>")
	}

	out := verifyOutput()
	results, err := verify.VerifyVectors(args[0])

	for _, r := range results {
		status := colorize(out, "PASS", 32)
		if !r.Pass {
			status = colorize(out, "FAIL", 31)
		}
		fmt.Fprintf(out, "  %s: %s\n", r.VectorID, status)
		if !r.Pass {
			fmt.Fprintf(out, "    expected: %s\n", r.Expected)
			fmt.Fprintf(out, "    got:      %s\n", r.Got)
		}
	}

	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nAll %d vectors: PASS\n", len(results))
	return nil
}

// verifyOutput wraps stdout in mattn/go-colorable so ANSI codes render on
// Windows consoles too, matching sqldef's terminal-output handling.
func verifyOutput() io.Writer {
	return colorable.NewColorableStdout()
}

// colorize applies an ANSI SGR color code only when stdout is actually a
// terminal; piping glyph verify's output should produce plain text.
func colorize(w io.Writer, s string, sgr int) string {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return s
	}
	return fmt.Sprintf("\x1b[%dm%s\x1b[0m", sgr, s)
}
