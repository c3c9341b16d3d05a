package scalarfmt

import "time"

// Time renders ms (milliseconds since the Unix epoch, UTC) as an
// ISO-8601 UTC string YYYY-MM-DDTHH:MM:SSZ. Sub-second precision is
// dropped via integer division by 1000 (truncation toward zero, matching
// the reference C implementation's `time_val / 1000`), not floored.
func Time(ms int64) string {
	secs := ms / 1000
	return time.Unix(secs, 0).UTC().Format("2006-01-02T15:04:05Z")
}
