package cvss

// The v2 base value types have no "Not Defined" member. The Temporal and
// Environmental value types have it as their zero value, abbreviated "ND".

// V2AccessVectorValue is the value of the Access Vector (AV) metric.
type V2AccessVectorValue uint8

// Access Vector values.
const (
	V2AccessVectorLocal    V2AccessVectorValue = iota // L
	V2AccessVectorAdjacent                            // A
	V2AccessVectorNetwork                             // N
)

var v2AccessVectorWeights = [...]float64{0.395, 0.646, 1.0}

// Weight reports the numeric value of the metric.
func (v V2AccessVectorValue) Weight() float64 { return v2AccessVectorWeights[v] }

// V2AccessComplexityValue is the value of the Access Complexity (AC) metric.
type V2AccessComplexityValue uint8

// Access Complexity values.
const (
	V2AccessComplexityHigh   V2AccessComplexityValue = iota // H
	V2AccessComplexityMedium                                // M
	V2AccessComplexityLow                                   // L
)

var v2AccessComplexityWeights = [...]float64{0.35, 0.61, 0.71}

// Weight reports the numeric value of the metric.
func (v V2AccessComplexityValue) Weight() float64 { return v2AccessComplexityWeights[v] }

// V2AuthenticationValue is the value of the Authentication (Au) metric.
type V2AuthenticationValue uint8

// Authentication values.
const (
	V2AuthenticationMultiple V2AuthenticationValue = iota // M
	V2AuthenticationSingle                                // S
	V2AuthenticationNone                                  // N
)

var v2AuthenticationWeights = [...]float64{0.45, 0.56, 0.704}

// Weight reports the numeric value of the metric.
func (v V2AuthenticationValue) Weight() float64 { return v2AuthenticationWeights[v] }

// V2Impact is the value of the Confidentiality (C), Integrity (I), and
// Availability (A) Impact metrics.
type V2Impact uint8

// Impact values.
const (
	V2ImpactNone     V2Impact = iota // N
	V2ImpactPartial                  // P
	V2ImpactComplete                 // C
)

var v2ImpactWeights = [...]float64{0.0, 0.275, 0.660}

// Weight reports the numeric value of the metric.
func (v V2Impact) Weight() float64 { return v2ImpactWeights[v] }

// V2ExploitabilityValue is the value of the Exploitability (E) metric.
type V2ExploitabilityValue uint8

// Exploitability values.
const (
	V2ExploitabilityNotDefined     V2ExploitabilityValue = iota // ND
	V2ExploitabilityUnproven                                    // U
	V2ExploitabilityProofOfConcept                              // POC
	V2ExploitabilityFunctional                                  // F
	V2ExploitabilityHigh                                        // H
)

var v2ExploitabilityWeights = [...]float64{1.00, 0.85, 0.90, 0.95, 1.00}

// Weight reports the numeric value of the metric.
func (v V2ExploitabilityValue) Weight() float64 { return v2ExploitabilityWeights[v] }

// V2RemediationLevelValue is the value of the Remediation Level (RL) metric.
type V2RemediationLevelValue uint8

// Remediation Level values.
const (
	V2RemediationLevelNotDefined   V2RemediationLevelValue = iota // ND
	V2RemediationLevelOfficialFix                                 // OF
	V2RemediationLevelTemporaryFix                                // TF
	V2RemediationLevelWorkaround                                  // W
	V2RemediationLevelUnavailable                                 // U
)

var v2RemediationLevelWeights = [...]float64{1.00, 0.87, 0.90, 0.95, 1.00}

// Weight reports the numeric value of the metric.
func (v V2RemediationLevelValue) Weight() float64 { return v2RemediationLevelWeights[v] }

// V2ReportConfidenceValue is the value of the Report Confidence (RC) metric.
type V2ReportConfidenceValue uint8

// Report Confidence values.
const (
	V2ReportConfidenceNotDefined    V2ReportConfidenceValue = iota // ND
	V2ReportConfidenceUnconfirmed                                  // UC
	V2ReportConfidenceUncorroborated                               // UR
	V2ReportConfidenceConfirmed                                    // C
)

var v2ReportConfidenceWeights = [...]float64{1.00, 0.90, 0.95, 1.00}

// Weight reports the numeric value of the metric.
func (v V2ReportConfidenceValue) Weight() float64 { return v2ReportConfidenceWeights[v] }

// V2CollateralDamagePotentialValue is the value of the Collateral Damage Potential
// (CDP) metric.
//
// This metric is added to, rather than multiplied with, the adjusted Temporal
// score, so the "Not Defined" weight is zero.
type V2CollateralDamagePotentialValue uint8

// Collateral Damage Potential values.
const (
	V2CollateralDamagePotentialNotDefined V2CollateralDamagePotentialValue = iota // ND
	V2CollateralDamagePotentialNone                                               // N
	V2CollateralDamagePotentialLow                                                // L
	V2CollateralDamagePotentialLowMedium                                          // LM
	V2CollateralDamagePotentialMediumHigh                                         // MH
	V2CollateralDamagePotentialHigh                                               // H
)

var v2CollateralDamagePotentialWeights = [...]float64{0, 0, 0.1, 0.3, 0.4, 0.5}

// Weight reports the numeric value of the metric.
func (v V2CollateralDamagePotentialValue) Weight() float64 {
	return v2CollateralDamagePotentialWeights[v]
}

// V2TargetDistributionValue is the value of the Target Distribution (TD) metric.
type V2TargetDistributionValue uint8

// Target Distribution values.
const (
	V2TargetDistributionNotDefined V2TargetDistributionValue = iota // ND
	V2TargetDistributionNone                                        // N
	V2TargetDistributionLow                                         // L
	V2TargetDistributionMedium                                      // M
	V2TargetDistributionHigh                                        // H
)

var v2TargetDistributionWeights = [...]float64{1.00, 0, 0.25, 0.75, 1.00}

// Weight reports the numeric value of the metric.
func (v V2TargetDistributionValue) Weight() float64 { return v2TargetDistributionWeights[v] }

// V2Requirement is the value of the Confidentiality (CR), Integrity (IR), and
// Availability (AR) Requirement metrics.
type V2Requirement uint8

// Security Requirement values.
const (
	V2RequirementNotDefined V2Requirement = iota // ND
	V2RequirementLow                             // L
	V2RequirementMedium                          // M
	V2RequirementHigh                            // H
)

var v2RequirementWeights = [...]float64{1.0, 0.5, 1.0, 1.51}

// Weight reports the numeric value of the metric.
func (v V2Requirement) Weight() float64 { return v2RequirementWeights[v] }
