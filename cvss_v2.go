package cvss

import (
	"strings"
)

// V2 is a CVSS version 2.0 vector.
type V2 struct {
	// Ver is set by the parser; the zero V2 is not a valid vector.
	ver Version

	// Base
	av V2AccessVectorValue
	ac V2AccessComplexityValue
	au V2AuthenticationValue
	c  V2Impact
	i  V2Impact
	a  V2Impact
	// Temporal
	e  V2ExploitabilityValue
	rl V2RemediationLevelValue
	rc V2ReportConfidenceValue
	// Environmental
	cdp V2CollateralDamagePotentialValue
	td  V2TargetDistributionValue
	cr  V2Requirement
	ir  V2Requirement
	ar  V2Requirement
}

// V2Metric is a metric in a v2 vector.
type V2Metric int

// These are the metrics defined in the specification, in the specified
// order.
const (
	V2AccessVector               V2Metric = iota // AV
	V2AccessComplexity                           // AC
	V2Authentication                             // Au
	V2Confidentiality                            // C
	V2Integrity                                  // I
	V2Availability                               // A
	V2Exploitability                             // E
	V2RemediationLevel                           // RL
	V2ReportConfidence                           // RC
	V2CollateralDamagePotential                  // CDP
	V2TargetDistribution                         // TD
	V2ConfidentialityRequirement                 // CR
	V2IntegrityRequirement                       // IR
	V2AvailabilityRequirement                    // AR

	numV2Metrics int = iota
)

// Base reports whether the metric is a mandatory Base metric.
func (m V2Metric) Base() bool { return m >= V2AccessVector && m <= V2Availability }

var v2MetricByName = func() map[string]V2Metric {
	out := make(map[string]V2Metric, numV2Metrics)
	for i := range numV2Metrics {
		m := V2Metric(i)
		out[m.String()] = m
	}
	return out
}()

// ParseV2 parses the provided string as a v2 vector.
//
// CVSS v2 vectors are not labeled, so a string with a "CVSS:" label is
// reported as an [ErrUnsupportedVersion]. Metrics may be supplied in any
// order.
func ParseV2(s string) (V2, error) {
	if strings.HasPrefix(s, prefix) {
		label, _, _ := strings.Cut(strings.TrimPrefix(s, prefix), "/")
		return V2{}, &Error{Kind: ErrUnsupportedVersion, Value: label}
	}
	v := V2{ver: Version20}
	var seen [numV2Metrics]bool
	err := eachMetric(Version20, s, func(name, val string) error {
		m, ok := v2MetricByName[name]
		if !ok {
			return &Error{Kind: ErrUnknownMetric, Version: Version20, Metric: name, Value: name}
		}
		if err := v.set(m, val); err != nil {
			return err
		}
		if seen[m] {
			return &Error{Kind: ErrDuplicateMetric, Version: Version20, Metric: name, Value: val}
		}
		seen[m] = true
		return nil
	})
	if err != nil {
		return V2{}, err
	}
	for m := V2AccessVector; m.Base(); m++ {
		if !seen[m] {
			return V2{}, &Error{Kind: ErrMissingMetric, Version: Version20, Metric: m.String()}
		}
	}
	return v, nil
}

// Set parses "val" as the value of metric "m".
func (v *V2) set(m V2Metric, val string) error {
	const ver = Version20
	name := m.String()
	switch m {
	case V2AccessVector:
		return parseValue(&v.av, ver, name, val, 0, len(v2AccessVectorWeights))
	case V2AccessComplexity:
		return parseValue(&v.ac, ver, name, val, 0, len(v2AccessComplexityWeights))
	case V2Authentication:
		return parseValue(&v.au, ver, name, val, 0, len(v2AuthenticationWeights))
	case V2Confidentiality:
		return parseValue(&v.c, ver, name, val, 0, len(v2ImpactWeights))
	case V2Integrity:
		return parseValue(&v.i, ver, name, val, 0, len(v2ImpactWeights))
	case V2Availability:
		return parseValue(&v.a, ver, name, val, 0, len(v2ImpactWeights))
	case V2Exploitability:
		return parseValue(&v.e, ver, name, val, 0, len(v2ExploitabilityWeights))
	case V2RemediationLevel:
		return parseValue(&v.rl, ver, name, val, 0, len(v2RemediationLevelWeights))
	case V2ReportConfidence:
		return parseValue(&v.rc, ver, name, val, 0, len(v2ReportConfidenceWeights))
	case V2CollateralDamagePotential:
		return parseValue(&v.cdp, ver, name, val, 0, len(v2CollateralDamagePotentialWeights))
	case V2TargetDistribution:
		return parseValue(&v.td, ver, name, val, 0, len(v2TargetDistributionWeights))
	case V2ConfidentialityRequirement:
		return parseValue(&v.cr, ver, name, val, 0, len(v2RequirementWeights))
	case V2IntegrityRequirement:
		return parseValue(&v.ir, ver, name, val, 0, len(v2RequirementWeights))
	case V2AvailabilityRequirement:
		return parseValue(&v.ar, ver, name, val, 0, len(v2RequirementWeights))
	}
	panic("unreachable")
}

// Get reports the abbreviated value for the metric "m".
//
// Metrics that are not defined report "ND".
func (v V2) Get(m V2Metric) string {
	switch m {
	case V2AccessVector:
		return v.av.String()
	case V2AccessComplexity:
		return v.ac.String()
	case V2Authentication:
		return v.au.String()
	case V2Confidentiality:
		return v.c.String()
	case V2Integrity:
		return v.i.String()
	case V2Availability:
		return v.a.String()
	case V2Exploitability:
		return v.e.String()
	case V2RemediationLevel:
		return v.rl.String()
	case V2ReportConfidence:
		return v.rc.String()
	case V2CollateralDamagePotential:
		return v.cdp.String()
	case V2TargetDistribution:
		return v.td.String()
	case V2ConfidentialityRequirement:
		return v.cr.String()
	case V2IntegrityRequirement:
		return v.ir.String()
	case V2AvailabilityRequirement:
		return v.ar.String()
	}
	return ""
}

// Version implements [Vector].
func (V2) Version() Version { return Version20 }

// String implements [fmt.Stringer].
//
// CVSSv2 vectors are not labeled. Calling this method on an invalid instance
// results in an invalid vector string.
func (v V2) String() string {
	if !v.valid() {
		return `CVSS:2.0/INVALID`
	}
	return formatVector("", []metric{
		{V2AccessVector.String(), v.av.String()},
		{V2AccessComplexity.String(), v.ac.String()},
		{V2Authentication.String(), v.au.String()},
		{V2Confidentiality.String(), v.c.String()},
		{V2Integrity.String(), v.i.String()},
		{V2Availability.String(), v.a.String()},
		{V2Exploitability.String(), optional(v.e)},
		{V2RemediationLevel.String(), optional(v.rl)},
		{V2ReportConfidence.String(), optional(v.rc)},
		{V2CollateralDamagePotential.String(), optional(v.cdp)},
		{V2TargetDistribution.String(), optional(v.td)},
		{V2ConfidentialityRequirement.String(), optional(v.cr)},
		{V2IntegrityRequirement.String(), optional(v.ir)},
		{V2AvailabilityRequirement.String(), optional(v.ar)},
	})
}

// MarshalText implements [encoding.TextMarshaler].
func (v V2) MarshalText() ([]byte, error) {
	if !v.valid() {
		return nil, errInvalid
	}
	return []byte(v.String()), nil
}

// Temporal implements [Vector].
func (v V2) Temporal() bool {
	return v.e != 0 || v.rl != 0 || v.rc != 0
}

// Environmental implements [Vector].
func (v V2) Environmental() bool {
	return v.cdp != 0 || v.td != 0 || v.cr != 0 || v.ir != 0 || v.ar != 0
}

// Valid reports whether the vector was constructed by a parser.
func (v V2) valid() bool {
	return v.ver == Version20
}
