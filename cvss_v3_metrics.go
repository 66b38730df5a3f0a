package cvss

// Every v3 value type has "Not Defined" as its zero value. It's only a legal
// value for the Temporal and Environmental metrics; for the Modified base
// metrics it means "use the base metric".

// V3AttackVectorValue is the value of the Attack Vector (AV) and Modified Attack
// Vector (MAV) metrics.
type V3AttackVectorValue uint8

// Attack Vector values.
const (
	V3AttackVectorNotDefined V3AttackVectorValue = iota // X
	V3AttackVectorNetwork                               // N
	V3AttackVectorAdjacent                              // A
	V3AttackVectorLocal                                 // L
	V3AttackVectorPhysical                              // P
)

var v3AttackVectorWeights = [...]float64{1, 0.85, 0.62, 0.55, 0.2}

// Weight reports the numeric value of the metric.
func (v V3AttackVectorValue) Weight() float64 { return v3AttackVectorWeights[v] }

// V3AttackComplexityValue is the value of the Attack Complexity (AC) and Modified
// Attack Complexity (MAC) metrics.
type V3AttackComplexityValue uint8

// Attack Complexity values.
const (
	V3AttackComplexityNotDefined V3AttackComplexityValue = iota // X
	V3AttackComplexityLow                                       // L
	V3AttackComplexityHigh                                      // H
)

var v3AttackComplexityWeights = [...]float64{1, 0.77, 0.44}

// Weight reports the numeric value of the metric.
func (v V3AttackComplexityValue) Weight() float64 { return v3AttackComplexityWeights[v] }

// V3PrivilegesRequiredValue is the value of the Privileges Required (PR) and
// Modified Privileges Required (MPR) metrics.
type V3PrivilegesRequiredValue uint8

// Privileges Required values.
const (
	V3PrivilegesRequiredNotDefined V3PrivilegesRequiredValue = iota // X
	V3PrivilegesRequiredNone                                        // N
	V3PrivilegesRequiredLow                                         // L
	V3PrivilegesRequiredHigh                                        // H
)

var v3PrivilegesRequiredWeights = [...][2]float64{
	// Scope Unchanged, Scope Changed
	{1, 1},
	{0.85, 0.85},
	{0.62, 0.68},
	{0.27, 0.50},
}

// Weight reports the numeric value of the metric, which depends on the
// Scope.
//
// The zero Scope value is treated as Unchanged.
func (v V3PrivilegesRequiredValue) Weight(s V3ScopeValue) float64 {
	if s == V3ScopeChanged {
		return v3PrivilegesRequiredWeights[v][1]
	}
	return v3PrivilegesRequiredWeights[v][0]
}

// V3UserInteractionValue is the value of the User Interaction (UI) and Modified
// User Interaction (MUI) metrics.
type V3UserInteractionValue uint8

// User Interaction values.
const (
	V3UserInteractionNotDefined V3UserInteractionValue = iota // X
	V3UserInteractionNone                                     // N
	V3UserInteractionRequired                                 // R
)

var v3UserInteractionWeights = [...]float64{1, 0.85, 0.62}

// Weight reports the numeric value of the metric.
func (v V3UserInteractionValue) Weight() float64 { return v3UserInteractionWeights[v] }

// V3ScopeValue is the value of the Scope (S) and Modified Scope (MS) metrics.
//
// Scope has no weight of its own; it selects between formulas.
type V3ScopeValue uint8

// Scope values.
const (
	V3ScopeNotDefined V3ScopeValue = iota // X
	V3ScopeUnchanged                      // U
	V3ScopeChanged                        // C
)

const numV3Scope = 3

// V3Impact is the value of the Confidentiality (C), Integrity (I), and
// Availability (A) metrics and their Modified counterparts.
type V3Impact uint8

// Impact values.
const (
	V3ImpactNotDefined V3Impact = iota // X
	V3ImpactHigh                       // H
	V3ImpactLow                        // L
	V3ImpactNone                       // N
)

var v3ImpactWeights = [...]float64{1, 0.56, 0.22, 0}

// Weight reports the numeric value of the metric.
func (v V3Impact) Weight() float64 { return v3ImpactWeights[v] }

// V3ExploitMaturityValue is the value of the Exploit Code Maturity (E) metric.
type V3ExploitMaturityValue uint8

// Exploit Code Maturity values.
const (
	V3ExploitMaturityNotDefined     V3ExploitMaturityValue = iota // X
	V3ExploitMaturityHigh                                         // H
	V3ExploitMaturityFunctional                                   // F
	V3ExploitMaturityProofOfConcept                               // P
	V3ExploitMaturityUnproven                                     // U
)

var v3ExploitMaturityWeights = [...]float64{1, 1, 0.97, 0.94, 0.91}

// Weight reports the numeric value of the metric.
func (v V3ExploitMaturityValue) Weight() float64 { return v3ExploitMaturityWeights[v] }

// V3RemediationLevelValue is the value of the Remediation Level (RL) metric.
type V3RemediationLevelValue uint8

// Remediation Level values.
const (
	V3RemediationLevelNotDefined   V3RemediationLevelValue = iota // X
	V3RemediationLevelUnavailable                                 // U
	V3RemediationLevelWorkaround                                  // W
	V3RemediationLevelTemporaryFix                                // T
	V3RemediationLevelOfficialFix                                 // O
)

var v3RemediationLevelWeights = [...]float64{1, 1, 0.97, 0.96, 0.95}

// Weight reports the numeric value of the metric.
func (v V3RemediationLevelValue) Weight() float64 { return v3RemediationLevelWeights[v] }

// V3ReportConfidenceValue is the value of the Report Confidence (RC) metric.
type V3ReportConfidenceValue uint8

// Report Confidence values.
const (
	V3ReportConfidenceNotDefined V3ReportConfidenceValue = iota // X
	V3ReportConfidenceConfirmed                                 // C
	V3ReportConfidenceReasonable                                // R
	V3ReportConfidenceUnknown                                   // U
)

var v3ReportConfidenceWeights = [...]float64{1, 1, 0.96, 0.92}

// Weight reports the numeric value of the metric.
func (v V3ReportConfidenceValue) Weight() float64 { return v3ReportConfidenceWeights[v] }

// V3Requirement is the value of the Confidentiality (CR), Integrity (IR), and
// Availability (AR) Requirement metrics.
type V3Requirement uint8

// Security Requirement values.
const (
	V3RequirementNotDefined V3Requirement = iota // X
	V3RequirementHigh                            // H
	V3RequirementMedium                          // M
	V3RequirementLow                             // L
)

var v3RequirementWeights = [...]float64{1, 1.5, 1, 0.5}

// Weight reports the numeric value of the metric.
func (v V3Requirement) Weight() float64 { return v3RequirementWeights[v] }
