// Package verify runs canonicalization test vectors against the writer in
// internal/canon: load a vectors file, compute each vector's canonical
// form (or confirm its expected rejection), compare, and collect
// pass/fail results.
package verify

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Masterminds/semver"

	"github.com/neumenon/glyph/internal/canon"
	"github.com/neumenon/glyph/internal/jsonbridge"
)

// SupportedVectorsVersion is the vectors_version range this binary can
// execute. A vectors file pinned to an incompatible version is rejected
// up front instead of silently mis-scoring.
const SupportedVectorsVersion = "^1.0.0"

// Vector is a single test vector. expected_outcome "accept" requires the
// input to canonicalize to expected_canonical; "reject" requires
// jsonbridge.Parse to report failure on malformed input.
type Vector struct {
	VectorID          string          `json:"vector_id"`
	Description       string          `json:"description"`
	VectorType        string          `json:"vector_type"`
	ExpectedOutcome   string          `json:"expected_outcome"`
	Input             json.RawMessage `json:"input"`
	ExpectedCanonical string          `json:"expected_canonical"`
}

// VectorsFile is the top-level structure of a vectors JSON document.
type VectorsFile struct {
	SpecVersion    string   `json:"spec_version"`
	VectorsVersion string   `json:"vectors_version"`
	Vectors        []Vector `json:"vectors"`
}

// Result holds the outcome of running a single vector.
type Result struct {
	VectorID string
	Expected string
	Got      string
	Pass     bool
}

// VerifyVectors loads a vectors file, checks its vectors_version against
// SupportedVectorsVersion, and runs every vector. It returns the
// per-vector results even when some fail; the returned error is non-nil
// only if at least one vector failed (or the file itself could not be
// loaded or parsed, its vectors_version is unsupported, or a vector could
// not be run at all; in those cases no results are returned).
func VerifyVectors(path string) ([]Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vectors file: %w", err)
	}

	var vf VectorsFile
	if err := json.Unmarshal(data, &vf); err != nil {
		return nil, fmt.Errorf("failed to parse vectors file: %w", err)
	}

	if err := checkVectorsVersion(vf.VectorsVersion); err != nil {
		return nil, err
	}

	results := make([]Result, len(vf.Vectors))
	var failures int

	for i, vec := range vf.Vectors {
		result, err := runVector(vec)
		if err != nil {
			return nil, fmt.Errorf("vector %q: %w", vec.VectorID, err)
		}
		results[i] = result
		if !result.Pass {
			failures++
		}
	}

	if failures > 0 {
		return results, fmt.Errorf("%d of %d vectors failed verification", failures, len(vf.Vectors))
	}
	return results, nil
}

func runVector(vec Vector) (Result, error) {
	switch vec.ExpectedOutcome {
	case "reject":
		// A "reject" vector's input is the malformed document encoded as a
		// JSON string (it has to be, to survive decoding the vectors file
		// itself), so it is unwrapped to raw text before being handed to
		// the bridge parser.
		var raw string
		if err := json.Unmarshal(vec.Input, &raw); err != nil {
			return Result{}, fmt.Errorf("reject vector's input must be a JSON string: %w", err)
		}
		_, ok := jsonbridge.Parse([]byte(raw))
		return Result{
			VectorID: vec.VectorID,
			Expected: "parse failure",
			Got:      okLabel(ok),
			Pass:     !ok,
		}, nil
	case "accept", "":
		v, ok := jsonbridge.Parse(vec.Input)
		if !ok {
			return Result{}, fmt.Errorf("input did not parse as JSON")
		}
		got := canon.Encode(v, canon.Default())
		return Result{
			VectorID: vec.VectorID,
			Expected: vec.ExpectedCanonical,
			Got:      got,
			Pass:     got == vec.ExpectedCanonical,
		}, nil
	default:
		return Result{}, fmt.Errorf("unknown expected_outcome %q", vec.ExpectedOutcome)
	}
}

func okLabel(ok bool) string {
	if ok {
		return "parsed"
	}
	return "rejected"
}

func checkVectorsVersion(v string) error {
	if v == "" {
		return nil
	}
	ver, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("vectors_version %q is not a valid semver: %w", v, err)
	}
	c, err := semver.NewConstraint(SupportedVectorsVersion)
	if err != nil {
		return fmt.Errorf("internal: invalid constraint %q: %w", SupportedVectorsVersion, err)
	}
	if !c.Check(ver) {
		return fmt.Errorf("vectors_version %q does not satisfy %s", v, SupportedVectorsVersion)
	}
	return nil
}
