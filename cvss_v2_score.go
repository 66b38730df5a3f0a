package cvss

import (
	"math"
)

// Check panics if the vector wasn't constructed by a parser.
func (v V2) check() {
	if !v.valid() {
		panic("programmer error: invalid vector constructed")
	}
}

// Impact implements [Vector].
func (v V2) Impact() float64 {
	v.check()
	return 10.41 * (1 - (1-v.c.Weight())*(1-v.i.Weight())*(1-v.a.Weight()))
}

// Exploitability implements [Vector].
func (v V2) Exploitability() float64 {
	v.check()
	return 20 * v.av.Weight() * v.ac.Weight() * v.au.Weight()
}

// BaseScore implements [Vector].
//
// The result is rounded up, not to the nearest decimal.
func (v V2) BaseScore() Score {
	return v2Roundup(v2Base(v.Impact(), v.Exploitability()))
}

// V2Base is the unrounded Base score equation, shared with the Environmental
// score's "AdjustedBase".
func v2Base(impact, exploitability float64) float64 {
	f := 1.176
	if impact == 0 {
		f = 0
	}
	return ((0.6 * impact) + (0.4 * exploitability) - 1.5) * f
}

// Temporal reports the product of the Temporal metric weights.
func (v V2) temporal() float64 {
	return v.e.Weight() * v.rl.Weight() * v.rc.Weight()
}

// TemporalScore implements [Vector].
func (v V2) TemporalScore() Score {
	return v2Round(float64(v.BaseScore()) * v.temporal())
}

// EnvironmentalScore implements [Vector].
//
// If no Environmental metrics are defined, this is the Temporal score. The
// "AdjustedImpact" is capped at 10 where the Impact is not, and the
// "AdjustedBase" is rounded to the nearest decimal where the Base score is
// rounded up, so the equations are only used when the vector has
// Environmental metrics.
func (v V2) EnvironmentalScore() Score {
	if !v.Environmental() {
		return v.TemporalScore()
	}
	impact := math.Min(10, 10.41*(1-
		(1-v.c.Weight()*v.cr.Weight())*
			(1-v.i.Weight()*v.ir.Weight())*
			(1-v.a.Weight()*v.ar.Weight())))
	base := v2Round(v2Base(impact, v.Exploitability()))
	temporal := float64(v2Round(float64(base) * v.temporal()))
	return v2Round((temporal + (10-temporal)*v.cdp.Weight()) * v.td.Weight())
}

// Severity implements [Vector].
func (v V2) Severity() Severity {
	return Classify(Version20, v.BaseScore())
}
