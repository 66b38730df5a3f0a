// Package cvss implements v2.0, v3.0, and v3.1 CVSS vectors and scoring.
//
// The primary purpose of this package is to parse CVSS vectors then use the
// parsed representation to calculate the numerical scores and produce the
// canonicalized representation of the vector.
//
// Vectors are values: they're only constructed by the parsing functions in
// this package and have no methods that modify them. All functions and methods
// are safe to call concurrently.
//
// # CVSS v2.0
//
// Metrics and scoring is implemented as laid out in the [v2.0 specification],
// with one exception: the Base score is rounded up to one decimal place
// (ceiling) rather than to the nearest. The Temporal and Environmental scores
// use the specification's rounding.
//
// There's no qualitative severity scale in the v2.0 specification. The scale
// published by the NVD is used.
//
// # CVSS v3.0
//
// Metrics and scoring is implemented as laid out in the [v3.0 specification].
//
// # CVSS v3.1
//
// Metrics and scoring is implemented as laid out in the [v3.1 specification].
// The "Roundup" function differs from v3.0, so identical metrics may score
// differently.
//
// [v2.0 specification]: https://www.first.org/cvss/v2/guide
// [v3.0 specification]: https://www.first.org/cvss/v3-0/
// [v3.1 specification]: https://www.first.org/cvss/v3-1/
package cvss

import (
	"encoding"
	"fmt"
	"strings"
)

/*
This package is organized according to the CVSS version;
all the needed functionality specific to a version should be grouped into files with a "cvss_vN" prefix, where "N" is the major version number.

Metric values are small integer types whose String methods are generated by the [stringer] tool with "-linecomment".
The generated tables double as the lookup tables for parsing, so "go generate" must be run whenever a value constant is modified.

[stringer]: https://pkg.go.dev/golang.org/x/tools/cmd/stringer
*/
var internalDoc = struct{}{}

// Version is a CVSS specification version.
type Version uint8

// The supported versions.
const (
	_         Version = iota
	Version20         // 2.0
	Version30         // 3.0
	Version31         // 3.1
)

// Major reports the major version number.
func (v Version) Major() int {
	switch v {
	case Version20:
		return 2
	case Version30, Version31:
		return 3
	}
	return 0
}

// MarshalText implements [encoding.TextMarshaler].
func (v Version) MarshalText() ([]byte, error) {
	if v.Major() == 0 {
		return nil, fmt.Errorf("cvss: invalid version %d", uint8(v))
	}
	return []byte(v.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
//
// Only the bare version number ("2.0", "3.0", or "3.1") is accepted.
func (v *Version) UnmarshalText(b []byte) error {
	switch string(b) {
	case "2.0":
		*v = Version20
	case "3.0":
		*v = Version30
	case "3.1":
		*v = Version31
	default:
		return &Error{Kind: ErrUnsupportedVersion, Value: string(b)}
	}
	return nil
}

// Vector is a parsed CVSS vector of any supported version.
//
// The Impact and Exploitability methods report the unrounded sub-scores.
type Vector interface {
	fmt.Stringer
	encoding.TextMarshaler

	// Version reports the specification version of the vector.
	Version() Version
	// Impact reports the Impact sub-score.
	Impact() float64
	// Exploitability reports the Exploitability sub-score.
	Exploitability() float64
	// BaseScore reports the Base score.
	BaseScore() Score
	// TemporalScore reports the Temporal score.
	TemporalScore() Score
	// EnvironmentalScore reports the Environmental score.
	EnvironmentalScore() Score
	// Severity reports the qualitative severity of the Base score, using the
	// scale for the vector's version.
	Severity() Severity
	// Temporal reports if any Temporal metric is defined.
	Temporal() bool
	// Environmental reports if any Environmental metric is defined.
	Environmental() bool
}

var (
	_ Vector = V2{}
	_ Vector = V3{}
)

// Parse parses the provided string as a vector of whatever version its prefix
// indicates. Unprefixed vectors are v2.0.
//
// Any returned error can be inspected as an [*Error].
func Parse(s string) (Vector, error) {
	if strings.HasPrefix(s, prefix) {
		v, err := ParseV3(s)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
	v, err := ParseV2(s)
	if err != nil {
		return nil, err
	}
	return v, nil
}
