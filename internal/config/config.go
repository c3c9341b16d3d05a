// Package config loads cmd/glyph's default Options from an optional YAML
// file, grounded on sqldef's database.ParseGeneratorConfig /
// parseGeneratorConfigFromBytes (database/database.go): read the file if
// present, decode into an unexported field struct with strict field
// checking, and fall back to canon.Default()'s values when the file, or
// any field in it, is absent. Only cmd/glyph reads this file — library callers
// always get canon.Default() unless they pass Options explicitly.
package config

import (
	"bytes"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/neumenon/glyph/internal/canon"
)

// DefaultPath is where cmd/glyph looks for a config file absent the
// GLYPH_CONFIG environment variable override.
const DefaultPath = ".glyphrc.yaml"

// fileFields mirrors the subset of canon.Options a user may override from
// YAML. Fields left unset in the file keep canon.Default()'s value.
type fileFields struct {
	AutoTabular  *bool   `yaml:"auto_tabular"`
	MinRows      *int    `yaml:"min_rows"`
	MaxCols      *int    `yaml:"max_cols"`
	AllowMissing *bool   `yaml:"allow_missing"`
	NullStyle    *string `yaml:"null_style"`
}

// Load resolves the config path (explicit path, then $GLYPH_CONFIG, then
// DefaultPath under the user's home directory) and returns the Options it
// describes layered over canon.Default(). A missing file is not an error;
// it just means every field keeps its default.
func Load(explicitPath string) (canon.Options, error) {
	path := explicitPath
	if path == "" {
		path = os.Getenv("GLYPH_CONFIG")
	}
	if path == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home + string(os.PathSeparator) + DefaultPath
		}
	}

	opts := canon.Default()
	if path == "" {
		return opts, nil
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}
		return opts, err
	}
	return parseOptionsFromBytes(buf, opts)
}

func parseOptionsFromBytes(buf []byte, base canon.Options) (canon.Options, error) {
	var f fileFields
	dec := yaml.NewDecoder(bytes.NewReader(buf))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return base, err
	}

	if f.AutoTabular != nil {
		base.AutoTabular = *f.AutoTabular
	}
	if f.MinRows != nil {
		base.MinRows = *f.MinRows
	}
	if f.MaxCols != nil {
		base.MaxCols = *f.MaxCols
	}
	if f.AllowMissing != nil {
		base.AllowMissing = *f.AllowMissing
	}
	if f.NullStyle != nil {
		switch *f.NullStyle {
		case "symbol":
			base.NullStyle = canon.NullSymbol
		default:
			base.NullStyle = canon.NullUnderscore
		}
	}
	return base, nil
}
