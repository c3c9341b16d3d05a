package main

import (
	"fmt"
	"os"

	"github.com/neumenon/glyph/internal/canon"
	"github.com/neumenon/glyph/internal/jsonbridge"
	"github.com/neumenon/glyph/internal/value"
)

func runCanon(args []string) error {
	var f canonFlags
	rest, err := parseArgs(&f, "canon <file.json> [options]", args)
	if err != nil {
		return err
	}
	if len(rest) < 1 {
		return fmt.Errorf("usage: glyph canon <file.json> [options]")
	}

	v, err := loadValue(rest[0])
	if err != nil {
		return err
	}

	opts, err := resolveOptions(f)
	if err != nil {
		return err
	}

	fmt.Println(canon.Encode(v, opts))
	return nil
}

func loadValue(path string) (*value.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	v, ok := jsonbridge.Parse(data)
	if !ok {
		return nil, fmt.Errorf("failed to parse %s as JSON", path)
	}
	return v, nil
}
