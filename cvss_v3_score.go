package cvss

import (
	"math"
)

// Roundup returns the rounding function for the vector's minor version.
func (v V3) roundup() func(float64) Score {
	switch v.ver {
	case Version30:
		return v30Roundup
	case Version31:
		return v31Roundup
	}
	panic("programmer error: invalid vector constructed")
}

// Check panics if the vector wasn't constructed by a parser.
func (v V3) check() {
	if !v.valid() {
		panic("programmer error: invalid vector constructed")
	}
}

// Impact implements [Vector].
//
// This is the Scope-adjusted Impact, which may be negative when the Scope is
// changed and there is no impact to Confidentiality, Integrity, or
// Availability.
func (v V3) Impact() float64 {
	v.check()
	iss := 1 - ((1 - v.c.Weight()) * (1 - v.i.Weight()) * (1 - v.a.Weight()))
	if v.s == V3ScopeChanged {
		return 7.52*(iss-0.029) - 3.25*math.Pow(iss-0.02, 15)
	}
	return 6.42 * iss
}

// Exploitability implements [Vector].
func (v V3) Exploitability() float64 {
	v.check()
	return 8.22 * v.av.Weight() * v.ac.Weight() * v.pr.Weight(v.s) * v.ui.Weight()
}

// BaseScore implements [Vector].
func (v V3) BaseScore() Score {
	return v.base(v.s, v.Impact(), v.Exploitability())
}

// Base is the Base score equation, shared with the Environmental score.
func (v V3) base(s V3ScopeValue, impact, exploitability float64) Score {
	if impact <= 0 {
		return 0
	}
	sum := impact + exploitability
	if s == V3ScopeChanged {
		sum *= 1.08
	}
	return v.roundup()(math.Min(sum, 10))
}

// Temporal reports the product of the Temporal metric weights.
//
// The "Not Defined" weights are the multiplicative identity.
func (v V3) temporal() float64 {
	return v.e.Weight() * v.rl.Weight() * v.rc.Weight()
}

// TemporalScore implements [Vector].
func (v V3) TemporalScore() Score {
	return v.roundup()(float64(v.BaseScore()) * v.temporal())
}

// EnvironmentalScore implements [Vector].
//
// If no Environmental metrics are defined, this is the Temporal score. The
// v3.1 Modified Impact equation differs from the Impact equation even with
// every metric "Not Defined", so it's only used when the vector has
// Environmental metrics.
func (v V3) EnvironmentalScore() Score {
	if !v.Environmental() {
		return v.TemporalScore()
	}
	v.check()

	// Modified base metrics fall back to the base metric when not defined.
	scope := or(v.ms, v.s)
	mc, mi, ma := or(v.mc, v.c), or(v.mi, v.i), or(v.ma, v.a)
	miss := math.Min(0.915, 1-
		((1-v.cr.Weight()*mc.Weight())*
			(1-v.ir.Weight()*mi.Weight())*
			(1-v.ar.Weight()*ma.Weight())))

	var impact float64
	switch {
	case scope != V3ScopeChanged:
		impact = 6.42 * miss
	case v.ver == Version30:
		impact = 7.52*(miss-0.029) - 3.25*math.Pow(miss-0.02, 15)
	default:
		impact = 7.52*(miss-0.029) - 3.25*math.Pow(miss*0.9731-0.02, 13)
	}
	exploitability := 8.22 *
		or(v.mav, v.av).Weight() *
		or(v.mac, v.ac).Weight() *
		or(v.mpr, v.pr).Weight(scope) *
		or(v.mui, v.ui).Weight()
	return v.roundup()(float64(v.base(scope, impact, exploitability)) * v.temporal())
}

// Severity implements [Vector].
func (v V3) Severity() Severity {
	return Classify(v.ver, v.BaseScore())
}

// Or returns "v" unless it's the "Not Defined" value, in which case "def" is
// returned.
func or[T enum](v, def T) T {
	if v == 0 {
		return def
	}
	return v
}
