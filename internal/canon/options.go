package canon

// NullStyle selects the glyph used to render a Null value.
type NullStyle int

const (
	// NullUnderscore renders null as "_" (the default).
	NullUnderscore NullStyle = iota
	// NullSymbol renders null as "∅".
	NullSymbol
)

func (s NullStyle) glyph() string {
	if s == NullSymbol {
		return "∅"
	}
	return "_"
}

// Options controls canonical-writer behavior.
type Options struct {
	AutoTabular  bool
	MinRows      int
	MaxCols      int
	AllowMissing bool
	NullStyle    NullStyle
}

// Default returns the default option set.
func Default() Options {
	return Options{
		AutoTabular:  true,
		MinRows:      3,
		MaxCols:      64,
		AllowMissing: true,
		NullStyle:    NullUnderscore,
	}
}

// LLM returns the "llm" preset, identical to Default.
func LLM() Options { return Default() }

// Pretty returns the "pretty" preset: Default with NullStyle = ∅.
func Pretty() Options {
	o := Default()
	o.NullStyle = NullSymbol
	return o
}

// NoTabular returns the "no_tabular" preset: Default with AutoTabular = false.
func NoTabular() Options {
	o := Default()
	o.AutoTabular = false
	return o
}
