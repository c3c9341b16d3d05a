package main

import (
	"fmt"

	flags "github.com/jessevdk/go-flags"

	"github.com/agnivade/levenshtein"

	"github.com/neumenon/glyph/internal/canon"
	"github.com/neumenon/glyph/internal/config"
)

var subcommands = []string{"canon", "hash", "verify", "id", "show"}

// canonFlags are the canon-affecting options shared by the canon and show
// subcommands, parsed with go-flags the way sqldef's cmd/*def binaries
// parse their per-binary option structs.
type canonFlags struct {
	Pretty    bool   `long:"pretty" description:"Use the pretty preset (∅ for null)"`
	NoTabular bool   `long:"no-tabular" description:"Disable tabular-mode detection"`
	MinRows   int    `long:"min-rows" description:"Minimum rows for tabular mode (0 = use default/config)"`
	MaxCols   int    `long:"max-cols" description:"Maximum columns for tabular mode (0 = use default/config)"`
	NullStyle string `long:"null-style" description:"Null glyph: _ or symbol"`
}

// resolveOptions layers canonFlags over the config-file defaults: a flag
// left at its zero value keeps whatever the config file (or
// canon.Default()) already set.
func resolveOptions(f canonFlags) (canon.Options, error) {
	opts, err := config.Load("")
	if err != nil {
		return opts, err
	}

	if f.Pretty {
		opts.NullStyle = canon.NullSymbol
	}
	if f.NoTabular {
		opts.AutoTabular = false
	}
	if f.MinRows > 0 {
		opts.MinRows = f.MinRows
	}
	if f.MaxCols > 0 {
		opts.MaxCols = f.MaxCols
	}
	switch f.NullStyle {
	case "symbol":
		opts.NullStyle = canon.NullSymbol
	case "_":
		opts.NullStyle = canon.NullUnderscore
	}
	return opts, nil
}

func parseArgs(opts interface{}, usage string, args []string) ([]string, error) {
	parser := flags.NewParser(opts, flags.Default)
	parser.Usage = usage
	return parser.ParseArgs(args)
}

// suggestSubcommand finds the closest known subcommand by edit distance
// and formats a "did you mean" hint, or the empty string if nothing is
// close enough to be worth suggesting.
func suggestSubcommand(typed string) string {
	best := ""
	bestDist := -1
	for _, c := range subcommands {
		d := levenshtein.ComputeDistance(typed, c)
		if bestDist == -1 || d < bestDist {
			bestDist = d
			best = c
		}
	}
	if bestDist >= 0 && bestDist <= 2 {
		return fmt.Sprintf(" (did you mean %q?)", best)
	}
	return ""
}
