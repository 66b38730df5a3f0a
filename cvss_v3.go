package cvss

import (
	"strings"
)

// V3 is a CVSS version 3.0 or 3.1 vector.
type V3 struct {
	ver Version

	// Base
	av V3AttackVectorValue
	ac V3AttackComplexityValue
	pr V3PrivilegesRequiredValue
	ui V3UserInteractionValue
	s  V3ScopeValue
	c  V3Impact
	i  V3Impact
	a  V3Impact
	// Temporal
	e  V3ExploitMaturityValue
	rl V3RemediationLevelValue
	rc V3ReportConfidenceValue
	// Environmental
	cr  V3Requirement
	ir  V3Requirement
	ar  V3Requirement
	mav V3AttackVectorValue
	mac V3AttackComplexityValue
	mpr V3PrivilegesRequiredValue
	mui V3UserInteractionValue
	ms  V3ScopeValue
	mc  V3Impact
	mi  V3Impact
	ma  V3Impact
}

// V3Metric is a metric in a v3 vector.
type V3Metric int

// These are the metrics defined in the specification, in the specified
// order.
const (
	V3AttackVector               V3Metric = iota // AV
	V3AttackComplexity                           // AC
	V3PrivilegesRequired                         // PR
	V3UserInteraction                            // UI
	V3Scope                                      // S
	V3Confidentiality                            // C
	V3Integrity                                  // I
	V3Availability                               // A
	V3ExploitMaturity                            // E
	V3RemediationLevel                           // RL
	V3ReportConfidence                           // RC
	V3ConfidentialityRequirement                 // CR
	V3IntegrityRequirement                       // IR
	V3AvailabilityRequirement                    // AR
	V3ModifiedAttackVector                       // MAV
	V3ModifiedAttackComplexity                   // MAC
	V3ModifiedPrivilegesRequired                 // MPR
	V3ModifiedUserInteraction                    // MUI
	V3ModifiedScope                              // MS
	V3ModifiedConfidentiality                    // MC
	V3ModifiedIntegrity                          // MI
	V3ModifiedAvailability                       // MA

	numV3Metrics int = iota
)

// Base reports whether the metric is a mandatory Base metric.
func (m V3Metric) Base() bool { return m >= V3AttackVector && m <= V3Availability }

// V3MetricByName reverse-maps metric abbreviations, including the Modified
// metrics.
var v3MetricByName = func() map[string]V3Metric {
	out := make(map[string]V3Metric, numV3Metrics)
	for i := range numV3Metrics {
		m := V3Metric(i)
		out[m.String()] = m
	}
	return out
}()

// ParseV3 parses the provided string as a v3.0 or v3.1 vector.
//
// The string must start with a "CVSS:3.0" or "CVSS:3.1" label. Metrics may be
// supplied in any order.
func ParseV3(s string) (V3, error) {
	if !strings.HasPrefix(s, prefix) {
		label, _, _ := strings.Cut(s, "/")
		return V3{}, &Error{Kind: ErrUnsupportedVersion, Value: label}
	}
	ver, rest, err := splitVersion(s)
	if err != nil {
		return V3{}, err
	}
	return parseV3(ver, rest)
}

func parseV3(ver Version, s string) (V3, error) {
	v := V3{ver: ver}
	var seen [numV3Metrics]bool
	err := eachMetric(ver, s, func(name, val string) error {
		m, ok := v3MetricByName[name]
		if !ok {
			return &Error{Kind: ErrUnknownMetric, Version: ver, Metric: name, Value: name}
		}
		if err := v.set(m, val); err != nil {
			return err
		}
		if seen[m] {
			return &Error{Kind: ErrDuplicateMetric, Version: ver, Metric: name, Value: val}
		}
		seen[m] = true
		return nil
	})
	if err != nil {
		return V3{}, err
	}
	for m := V3AttackVector; m.Base(); m++ {
		if !seen[m] {
			return V3{}, &Error{Kind: ErrMissingMetric, Version: ver, Metric: m.String()}
		}
	}
	return v, nil
}

// Set parses "val" as the value of metric "m".
//
// Base metrics must not be "Not Defined".
func (v *V3) set(m V3Metric, val string) error {
	const (
		base = 1 // Skips the "Not Defined" value.
		opt  = 0
	)
	ver, name := v.ver, m.String()
	switch m {
	case V3AttackVector:
		return parseValue(&v.av, ver, name, val, base, len(v3AttackVectorWeights))
	case V3AttackComplexity:
		return parseValue(&v.ac, ver, name, val, base, len(v3AttackComplexityWeights))
	case V3PrivilegesRequired:
		return parseValue(&v.pr, ver, name, val, base, len(v3PrivilegesRequiredWeights))
	case V3UserInteraction:
		return parseValue(&v.ui, ver, name, val, base, len(v3UserInteractionWeights))
	case V3Scope:
		return parseValue(&v.s, ver, name, val, base, numV3Scope)
	case V3Confidentiality:
		return parseValue(&v.c, ver, name, val, base, len(v3ImpactWeights))
	case V3Integrity:
		return parseValue(&v.i, ver, name, val, base, len(v3ImpactWeights))
	case V3Availability:
		return parseValue(&v.a, ver, name, val, base, len(v3ImpactWeights))
	case V3ExploitMaturity:
		return parseValue(&v.e, ver, name, val, opt, len(v3ExploitMaturityWeights))
	case V3RemediationLevel:
		return parseValue(&v.rl, ver, name, val, opt, len(v3RemediationLevelWeights))
	case V3ReportConfidence:
		return parseValue(&v.rc, ver, name, val, opt, len(v3ReportConfidenceWeights))
	case V3ConfidentialityRequirement:
		return parseValue(&v.cr, ver, name, val, opt, len(v3RequirementWeights))
	case V3IntegrityRequirement:
		return parseValue(&v.ir, ver, name, val, opt, len(v3RequirementWeights))
	case V3AvailabilityRequirement:
		return parseValue(&v.ar, ver, name, val, opt, len(v3RequirementWeights))
	case V3ModifiedAttackVector:
		return parseValue(&v.mav, ver, name, val, opt, len(v3AttackVectorWeights))
	case V3ModifiedAttackComplexity:
		return parseValue(&v.mac, ver, name, val, opt, len(v3AttackComplexityWeights))
	case V3ModifiedPrivilegesRequired:
		return parseValue(&v.mpr, ver, name, val, opt, len(v3PrivilegesRequiredWeights))
	case V3ModifiedUserInteraction:
		return parseValue(&v.mui, ver, name, val, opt, len(v3UserInteractionWeights))
	case V3ModifiedScope:
		return parseValue(&v.ms, ver, name, val, opt, numV3Scope)
	case V3ModifiedConfidentiality:
		return parseValue(&v.mc, ver, name, val, opt, len(v3ImpactWeights))
	case V3ModifiedIntegrity:
		return parseValue(&v.mi, ver, name, val, opt, len(v3ImpactWeights))
	case V3ModifiedAvailability:
		return parseValue(&v.ma, ver, name, val, opt, len(v3ImpactWeights))
	}
	panic("unreachable")
}

// Get reports the abbreviated value for the metric "m".
//
// Metrics that are not defined report "X".
func (v V3) Get(m V3Metric) string {
	switch m {
	case V3AttackVector:
		return v.av.String()
	case V3AttackComplexity:
		return v.ac.String()
	case V3PrivilegesRequired:
		return v.pr.String()
	case V3UserInteraction:
		return v.ui.String()
	case V3Scope:
		return v.s.String()
	case V3Confidentiality:
		return v.c.String()
	case V3Integrity:
		return v.i.String()
	case V3Availability:
		return v.a.String()
	case V3ExploitMaturity:
		return v.e.String()
	case V3RemediationLevel:
		return v.rl.String()
	case V3ReportConfidence:
		return v.rc.String()
	case V3ConfidentialityRequirement:
		return v.cr.String()
	case V3IntegrityRequirement:
		return v.ir.String()
	case V3AvailabilityRequirement:
		return v.ar.String()
	case V3ModifiedAttackVector:
		return v.mav.String()
	case V3ModifiedAttackComplexity:
		return v.mac.String()
	case V3ModifiedPrivilegesRequired:
		return v.mpr.String()
	case V3ModifiedUserInteraction:
		return v.mui.String()
	case V3ModifiedScope:
		return v.ms.String()
	case V3ModifiedConfidentiality:
		return v.mc.String()
	case V3ModifiedIntegrity:
		return v.mi.String()
	case V3ModifiedAvailability:
		return v.ma.String()
	}
	return ""
}

// Version implements [Vector].
func (v V3) Version() Version { return v.ver }

// String implements [fmt.Stringer].
//
// Calling this method on an invalid instance results in an invalid vector string.
func (v V3) String() string {
	if !v.valid() {
		return `CVSS:3.1/INVALID`
	}
	return formatVector(prefix+v.ver.String(), []metric{
		{V3AttackVector.String(), v.av.String()},
		{V3AttackComplexity.String(), v.ac.String()},
		{V3PrivilegesRequired.String(), v.pr.String()},
		{V3UserInteraction.String(), v.ui.String()},
		{V3Scope.String(), v.s.String()},
		{V3Confidentiality.String(), v.c.String()},
		{V3Integrity.String(), v.i.String()},
		{V3Availability.String(), v.a.String()},
		{V3ExploitMaturity.String(), optional(v.e)},
		{V3RemediationLevel.String(), optional(v.rl)},
		{V3ReportConfidence.String(), optional(v.rc)},
		{V3ConfidentialityRequirement.String(), optional(v.cr)},
		{V3IntegrityRequirement.String(), optional(v.ir)},
		{V3AvailabilityRequirement.String(), optional(v.ar)},
		{V3ModifiedAttackVector.String(), optional(v.mav)},
		{V3ModifiedAttackComplexity.String(), optional(v.mac)},
		{V3ModifiedPrivilegesRequired.String(), optional(v.mpr)},
		{V3ModifiedUserInteraction.String(), optional(v.mui)},
		{V3ModifiedScope.String(), optional(v.ms)},
		{V3ModifiedConfidentiality.String(), optional(v.mc)},
		{V3ModifiedIntegrity.String(), optional(v.mi)},
		{V3ModifiedAvailability.String(), optional(v.ma)},
	})
}

// MarshalText implements [encoding.TextMarshaler].
func (v V3) MarshalText() ([]byte, error) {
	if !v.valid() {
		return nil, errInvalid
	}
	return []byte(v.String()), nil
}

// Temporal implements [Vector].
func (v V3) Temporal() bool {
	return v.e != 0 || v.rl != 0 || v.rc != 0
}

// Environmental implements [Vector].
func (v V3) Environmental() bool {
	return v.cr != 0 || v.ir != 0 || v.ar != 0 ||
		v.mav != 0 || v.mac != 0 || v.mpr != 0 || v.mui != 0 ||
		v.ms != 0 || v.mc != 0 || v.mi != 0 || v.ma != 0
}

// Valid reports whether the vector was constructed by a parser.
func (v V3) valid() bool {
	return v.ver.Major() == 3 &&
		v.av != 0 && v.ac != 0 && v.pr != 0 && v.ui != 0 &&
		v.s != 0 && v.c != 0 && v.i != 0 && v.a != 0
}
