package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "canon":
		err = runCanon(args)
	case "hash":
		err = runHash(args)
	case "verify":
		err = runVerify(args)
	case "id":
		err = runId(args)
	case "show":
		err = runShow(args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s%s\n", cmd, suggestSubcommand(cmd))
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "GLYPH — Canonical Serialization Tool")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  glyph canon <file.json> [options]   Print canonical form")
	fmt.Fprintln(os.Stderr, "  glyph hash <file.json>              Print 16-hex-char content hash")
	fmt.Fprintln(os.Stderr, "  glyph verify <vectors.json>         Run canonicalization test vectors")
	fmt.Fprintln(os.Stderr, "  glyph id <prefix>                   Mint a fresh reference id")
	fmt.Fprintln(os.Stderr, "  glyph show <file.json> [--pretty]   Print a human-readable preview")
}
