package config

import (
	"testing"

	"github.com/neumenon/glyph/internal/canon"
)

func TestParseOptionsFromBytesOverridesOnlySetFields(t *testing.T) {
	yaml := []byte("min_rows: 5\nnull_style: symbol\n")
	got, err := parseOptionsFromBytes(yaml, canon.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.MinRows != 5 {
		t.Errorf("min_rows not applied: got %d", got.MinRows)
	}
	if got.NullStyle != canon.NullSymbol {
		t.Error("null_style not applied")
	}
	if got.MaxCols != canon.Default().MaxCols {
		t.Error("unset field should keep default")
	}
}

func TestParseOptionsFromBytesEmptyYieldsDefaults(t *testing.T) {
	got, err := parseOptionsFromBytes([]byte(""), canon.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != canon.Default() {
		t.Error("empty config should yield exactly canon.Default()")
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	got, err := Load("/nonexistent/path/does/not/exist.yaml")
	if err != nil {
		t.Fatalf("missing file should not error, got %v", err)
	}
	if got != canon.Default() {
		t.Error("missing file should yield exactly canon.Default()")
	}
}

func TestParseOptionsFromBytesUnknownFieldErrors(t *testing.T) {
	yaml := []byte("bogus_field: 1\n")
	if _, err := parseOptionsFromBytes(yaml, canon.Default()); err == nil {
		t.Error("expected error for unknown yaml field")
	}
}
