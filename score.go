package cvss

import (
	"math"
	"strconv"
)

// Score is a CVSS score: a value in [0, 10] with one decimal digit.
type Score float64

// String implements [fmt.Stringer].
func (s Score) String() string {
	return strconv.FormatFloat(float64(s), 'f', 1, 64)
}

// Severity reports the qualitative severity of the score using the v3 scale.
//
// Use [Classify] or [Vector.Severity] for version-specific scales.
func (s Score) Severity() Severity {
	return Classify(Version31, s)
}

// Scores is every score reported for a Vector.
type Scores struct {
	Version        Version  `json:"version"`
	Base           Score    `json:"base"`
	Temporal       Score    `json:"temporal"`
	Environmental  Score    `json:"environmental"`
	Impact         float64  `json:"impact"`
	Exploitability float64  `json:"exploitability"`
	Severity       Severity `json:"severity"`
}

// Calculate computes all the scores for the Vector "v".
func Calculate(v Vector) Scores {
	return Scores{
		Version:        v.Version(),
		Base:           v.BaseScore(),
		Temporal:       v.TemporalScore(),
		Environmental:  v.EnvironmentalScore(),
		Impact:         v.Impact(),
		Exploitability: v.Exploitability(),
		Severity:       v.Severity(),
	}
}

// The rounding functions all return a positive zero, so that a score never
// prints as "-0.0".

// V2Roundup rounds up to one decimal place.
func v2Roundup(f float64) Score {
	return score(math.Ceil(f*10) / 10)
}

// V2Round rounds to the nearest decimal place, as "round_to_1_decimal" in the
// v2.0 specification.
func v2Round(f float64) Score {
	return score(math.Round(f*10) / 10)
}

// V30Roundup is the v3.0 "Roundup" function: the smallest number, to one
// decimal place, that is equal to or higher than its input.
func v30Roundup(f float64) Score {
	return score(math.Ceil(f*10) / 10)
}

// V31Roundup is the v3.1 "Roundup" function, which works in integer
// arithmetic to avoid floating point error pushing values into the next
// decimal.
func v31Roundup(f float64) Score {
	i := int64(math.Round(f * 100_000))
	if i%10_000 == 0 {
		return score(float64(i) / 100_000)
	}
	return score(float64(i/10_000+1) / 10)
}

func score(f float64) Score {
	if f == 0 {
		return 0
	}
	return Score(f)
}
