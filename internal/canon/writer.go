// Package canon implements the GLYPH canonical writer: the container
// encoders, the tabular detector, and the options/presets that compose
// them. The writer performs no normalization of its own (Str payloads are
// NFC-normalized at construction in internal/value); it writes to an
// io.Writer (a bytes.Buffer for Encode) and sorts entries before emission.
package canon

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/neumenon/glyph/internal/numfmt"
	"github.com/neumenon/glyph/internal/scalarfmt"
	"github.com/neumenon/glyph/internal/strclass"
	"github.com/neumenon/glyph/internal/value"
)

// Encode returns the canonical textual form of v under opts.
func Encode(v *value.Value, opts Options) string {
	var buf bytes.Buffer
	Write(&buf, v, opts)
	return buf.String()
}

// Write streams the canonical textual form of v under opts to w.
// Encoding never fails for a well-formed value tree.
func Write(w io.Writer, v *value.Value, opts Options) {
	writeValue(w, v, opts)
}

func writeValue(w io.Writer, v *value.Value, opts Options) {
	switch v.Kind() {
	case value.KindNull:
		io.WriteString(w, opts.NullStyle.glyph())
	case value.KindBool:
		if v.AsBool() {
			io.WriteString(w, "t")
		} else {
			io.WriteString(w, "f")
		}
	case value.KindInt:
		io.WriteString(w, numfmt.Int(v.AsInt()))
	case value.KindFloat:
		io.WriteString(w, numfmt.Float(v.AsFloat()))
	case value.KindStr:
		s, _ := v.AsStr()
		io.WriteString(w, strclass.Canon(s))
	case value.KindBytes:
		io.WriteString(w, scalarfmt.Bytes(v.AsBytes()))
	case value.KindTime:
		io.WriteString(w, scalarfmt.Time(v.AsTime()))
	case value.KindId:
		writeId(w, v)
	case value.KindList:
		writeList(w, v, opts)
	case value.KindMap:
		writeMap(w, v.Entries(), opts)
	case value.KindStruct:
		io.WriteString(w, v.TypeName())
		writeMap(w, v.Entries(), opts)
	case value.KindSum:
		writeSum(w, v, opts)
	default:
		io.WriteString(w, opts.NullStyle.glyph())
	}
}

func writeId(w io.Writer, v *value.Value) {
	id, _ := v.AsId()
	io.WriteString(w, "^")
	if id.Prefix != "" {
		io.WriteString(w, id.Prefix)
		io.WriteString(w, ":")
	}
	io.WriteString(w, strclass.CanonId(id.Value))
}

func writeSum(w io.Writer, v *value.Value, opts Options) {
	sum, _ := v.AsSum()
	io.WriteString(w, sum.Tag)
	io.WriteString(w, "(")
	if sum.Inner != nil {
		writeValue(w, sum.Inner, opts)
	}
	io.WriteString(w, ")")
}

// sortedEntries returns entries sorted by byte-wise lexicographic key
// comparison: raw UTF-8 bytes, not locale-aware, not Unicode-normalized.
func sortedEntries(entries []value.MapEntry) []value.MapEntry {
	sorted := make([]value.MapEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Key < sorted[j].Key })
	return sorted
}

func writeMap(w io.Writer, entries []value.MapEntry, opts Options) {
	io.WriteString(w, "{")
	sorted := sortedEntries(entries)
	for i, e := range sorted {
		if i > 0 {
			io.WriteString(w, " ")
		}
		io.WriteString(w, strclass.Canon(e.Key))
		io.WriteString(w, "=")
		writeValue(w, e.Value, opts)
	}
	io.WriteString(w, "}")
}

func writeList(w io.Writer, v *value.Value, opts Options) {
	items := v.Items()
	if opts.AutoTabular {
		if cols, ok := tabularColumns(items, opts); ok {
			writeTabular(w, items, cols, opts)
			return
		}
	}

	io.WriteString(w, "[")
	for i, item := range items {
		if i > 0 {
			io.WriteString(w, " ")
		}
		writeValue(w, item, opts)
	}
	io.WriteString(w, "]")
}

// tabularColumns runs the homogeneity test and, if the list is eligible
// for tabular rendering, returns the sorted column set.
//
// The check scans the list twice: collect the key union, then test
// commonality, mirroring the reference C implementation's
// check_homogeneous (two explicit passes rather than one fused pass).
func tabularColumns(items []*value.Value, opts Options) ([]string, bool) {
	if len(items) < opts.MinRows {
		return nil, false
	}

	union := map[string]bool{}
	order := make([]string, 0, opts.MaxCols)
	for _, item := range items {
		if item.Kind() != value.KindMap && item.Kind() != value.KindStruct {
			return nil, false
		}
		for _, e := range item.Entries() {
			if !union[e.Key] {
				union[e.Key] = true
				order = append(order, e.Key)
			}
		}
	}

	if len(order) == 0 || len(order) > opts.MaxCols {
		return nil, false
	}

	common := 0
	for _, key := range order {
		inAll := true
		for _, item := range items {
			if item.Get(key) == nil {
				inAll = false
				break
			}
		}
		if inAll {
			common++
		}
	}
	if common*2 < len(order) {
		return nil, false
	}
	if !opts.AllowMissing && common != len(order) {
		return nil, false
	}

	sort.Strings(order)
	return order, true
}

func writeTabular(w io.Writer, items []*value.Value, cols []string, opts Options) {
	fmt.Fprintf(w, "@tab _ rows=%d cols=%d [", len(items), len(cols))
	for i, c := range cols {
		if i > 0 {
			io.WriteString(w, " ")
		}
		io.WriteString(w, strclass.Canon(c))
	}
	io.WriteString(w, "]\n")

	for _, item := range items {
		io.WriteString(w, "|")
		for _, c := range cols {
			cell := item.Get(c)
			if cell != nil {
				writeValue(w, cell, opts)
			} else {
				io.WriteString(w, opts.NullStyle.glyph())
			}
			io.WriteString(w, "|")
		}
		io.WriteString(w, "\n")
	}
	io.WriteString(w, "@end")
}
