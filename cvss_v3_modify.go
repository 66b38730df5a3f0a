package cvss

// Apply returns a copy of the vector with the "metric:value" tokens applied
// over it. A token may also be several "/"-separated metrics. Later tokens
// take precedence over earlier ones and over the vector's own metrics.
//
// This is the way to add Temporal or Environmental context to a vector, e.g.
// from deployment-specific configuration. Tokens are validated the same way
// [ParseV3] validates metrics: base metrics cannot be made "Not Defined", and
// the version label cannot be changed. The receiver is not modified.
func (v V3) Apply(tokens ...string) (V3, error) {
	v.check()
	out := v
	for _, tok := range tokens {
		err := eachMetric(out.ver, tok, func(name, val string) error {
			m, ok := v3MetricByName[name]
			if !ok {
				return &Error{Kind: ErrUnknownMetric, Version: out.ver, Metric: name, Value: name}
			}
			return out.set(m, val)
		})
		if err != nil {
			return V3{}, err
		}
	}
	return out, nil
}

// Clamp returns a copy of the vector where every Modified base metric that
// describes the vulnerability as more severe than the corresponding base
// metric is reset to "Not Defined".
//
// Environmental metrics are meant to describe mitigations in an environment;
// a Modified metric that makes a vulnerability worse than its intrinsic
// characteristics is usually a misconfiguration. Modified Scope and the
// Security Requirements are never changed.
func (v V3) Clamp() V3 {
	v.check()
	out := v
	if out.mav.Weight() > out.av.Weight() {
		out.mav = V3AttackVectorNotDefined
	}
	if out.mac.Weight() > out.ac.Weight() {
		out.mac = V3AttackComplexityNotDefined
	}
	// Compare privileges without the Scope adjustment, so that only the
	// metric itself is considered.
	if out.mpr.Weight(V3ScopeUnchanged) > out.pr.Weight(V3ScopeUnchanged) {
		out.mpr = V3PrivilegesRequiredNotDefined
	}
	if out.mui.Weight() > out.ui.Weight() {
		out.mui = V3UserInteractionNotDefined
	}
	if out.mc.Weight() > out.c.Weight() {
		out.mc = V3ImpactNotDefined
	}
	if out.mi.Weight() > out.i.Weight() {
		out.mi = V3ImpactNotDefined
	}
	if out.ma.Weight() > out.a.Weight() {
		out.ma = V3ImpactNotDefined
	}
	return out
}
