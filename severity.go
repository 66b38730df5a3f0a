package cvss

import (
	"bytes"
	"fmt"
	"math"
)

// Severity is the "Qualitative Severity" of a score.
type Severity uint8

// The specified qualitative severities, in increasing order.
const (
	_ Severity = iota
	None
	Low
	Medium
	High
	Critical
)

// MarshalText implements [encoding.TextMarshaler].
func (s Severity) MarshalText() ([]byte, error) {
	if s == 0 || s > Critical {
		return nil, fmt.Errorf("cvss: invalid severity %d", uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Severity) UnmarshalText(b []byte) error {
	// This depends on the contents of cvss_string.go.
	i := bytes.Index([]byte(_Severity_name), b)
	if i == -1 || len(b) == 0 {
		return fmt.Errorf("cvss: unknown severity %q", string(b))
	}
	idx := uint8(i)
	for n, off := range _Severity_index[:len(_Severity_index)-1] {
		if idx == off && _Severity_index[n+1]-off == uint8(len(b)) {
			*s = Severity(n + 1)
			return nil
		}
	}
	return fmt.Errorf("cvss: unknown severity %q", string(b))
}

// Classify reports the qualitative severity of the score "s" according to the
// scale for version "v".
//
// The v3.0 and v3.1 scale is the one published in the specification. The v2.0
// specification has no scale, so the one used by the NVD is used: it has no
// "None" or "Critical" bands.
//
// Classify panics if the score is outside of [0, 10]; no vector in this
// package can produce such a score.
func Classify(v Version, s Score) Severity {
	f := float64(s)
	if math.IsNaN(f) || f < 0 || f > 10 {
		panic(fmt.Sprintf("programmer error: score out of range: %v", f))
	}
	if v == Version20 {
		switch {
		case f < 4:
			return Low
		case f < 7:
			return Medium
		default:
			return High
		}
	}
	switch {
	case f == 0:
		return None
	case f < 4:
		return Low
	case f < 7:
		return Medium
	case f < 9:
		return High
	default:
		return Critical
	}
}
