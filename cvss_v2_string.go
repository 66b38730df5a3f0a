// Code generated by "stringer -type=V2Metric,V2AccessVectorValue,V2AccessComplexityValue,V2AuthenticationValue,V2Impact,V2ExploitabilityValue,V2RemediationLevelValue,V2ReportConfidenceValue,V2CollateralDamagePotentialValue,V2TargetDistributionValue,V2Requirement -linecomment -output cvss_v2_string.go"; DO NOT EDIT.

package cvss

import "strconv"

func _() {
	// An "invalid array index" compiler error signifies that the constant values have changed.
	// Re-run the stringer command to generate them again.
	var x [1]struct{}
	_ = x[V2AccessVector-0]
	_ = x[V2AccessComplexity-1]
	_ = x[V2Authentication-2]
	_ = x[V2Confidentiality-3]
	_ = x[V2Integrity-4]
	_ = x[V2Availability-5]
	_ = x[V2Exploitability-6]
	_ = x[V2RemediationLevel-7]
	_ = x[V2ReportConfidence-8]
	_ = x[V2CollateralDamagePotential-9]
	_ = x[V2TargetDistribution-10]
	_ = x[V2ConfidentialityRequirement-11]
	_ = x[V2IntegrityRequirement-12]
	_ = x[V2AvailabilityRequirement-13]
}

const _V2Metric_name = "AVACAuCIAERLRCCDPTDCRIRAR"

var _V2Metric_index = [...]uint8{0, 2, 4, 6, 7, 8, 9, 10, 12, 14, 17, 19, 21, 23, 25}

func (i V2Metric) String() string {
	if i < 0 || i >= V2Metric(len(_V2Metric_index)-1) {
		return "V2Metric(" + strconv.FormatInt(int64(i), 10) + ")"
	}
	return _V2Metric_name[_V2Metric_index[i]:_V2Metric_index[i+1]]
}

func _() {
	// An "invalid array index" compiler error signifies that the constant values have changed.
	// Re-run the stringer command to generate them again.
	var x [1]struct{}
	_ = x[V2AccessVectorLocal-0]
	_ = x[V2AccessVectorAdjacent-1]
	_ = x[V2AccessVectorNetwork-2]
}

const _V2AccessVectorValue_name = "LAN"

var _V2AccessVectorValue_index = [...]uint8{0, 1, 2, 3}

func (i V2AccessVectorValue) String() string {
	if i >= V2AccessVectorValue(len(_V2AccessVectorValue_index)-1) {
		return "V2AccessVectorValue(" + strconv.FormatInt(int64(i), 10) + ")"
	}
	return _V2AccessVectorValue_name[_V2AccessVectorValue_index[i]:_V2AccessVectorValue_index[i+1]]
}

func _() {
	// An "invalid array index" compiler error signifies that the constant values have changed.
	// Re-run the stringer command to generate them again.
	var x [1]struct{}
	_ = x[V2AccessComplexityHigh-0]
	_ = x[V2AccessComplexityMedium-1]
	_ = x[V2AccessComplexityLow-2]
}

const _V2AccessComplexityValue_name = "HML"

var _V2AccessComplexityValue_index = [...]uint8{0, 1, 2, 3}

func (i V2AccessComplexityValue) String() string {
	if i >= V2AccessComplexityValue(len(_V2AccessComplexityValue_index)-1) {
		return "V2AccessComplexityValue(" + strconv.FormatInt(int64(i), 10) + ")"
	}
	return _V2AccessComplexityValue_name[_V2AccessComplexityValue_index[i]:_V2AccessComplexityValue_index[i+1]]
}

func _() {
	// An "invalid array index" compiler error signifies that the constant values have changed.
	// Re-run the stringer command to generate them again.
	var x [1]struct{}
	_ = x[V2AuthenticationMultiple-0]
	_ = x[V2AuthenticationSingle-1]
	_ = x[V2AuthenticationNone-2]
}

const _V2AuthenticationValue_name = "MSN"

var _V2AuthenticationValue_index = [...]uint8{0, 1, 2, 3}

func (i V2AuthenticationValue) String() string {
	if i >= V2AuthenticationValue(len(_V2AuthenticationValue_index)-1) {
		return "V2AuthenticationValue(" + strconv.FormatInt(int64(i), 10) + ")"
	}
	return _V2AuthenticationValue_name[_V2AuthenticationValue_index[i]:_V2AuthenticationValue_index[i+1]]
}

func _() {
	// An "invalid array index" compiler error signifies that the constant values have changed.
	// Re-run the stringer command to generate them again.
	var x [1]struct{}
	_ = x[V2ImpactNone-0]
	_ = x[V2ImpactPartial-1]
	_ = x[V2ImpactComplete-2]
}

const _V2Impact_name = "NPC"

var _V2Impact_index = [...]uint8{0, 1, 2, 3}

func (i V2Impact) String() string {
	if i >= V2Impact(len(_V2Impact_index)-1) {
		return "V2Impact(" + strconv.FormatInt(int64(i), 10) + ")"
	}
	return _V2Impact_name[_V2Impact_index[i]:_V2Impact_index[i+1]]
}

func _() {
	// An "invalid array index" compiler error signifies that the constant values have changed.
	// Re-run the stringer command to generate them again.
	var x [1]struct{}
	_ = x[V2ExploitabilityNotDefined-0]
	_ = x[V2ExploitabilityUnproven-1]
	_ = x[V2ExploitabilityProofOfConcept-2]
	_ = x[V2ExploitabilityFunctional-3]
	_ = x[V2ExploitabilityHigh-4]
}

const _V2ExploitabilityValue_name = "NDUPOCFH"

var _V2ExploitabilityValue_index = [...]uint8{0, 2, 3, 6, 7, 8}

func (i V2ExploitabilityValue) String() string {
	if i >= V2ExploitabilityValue(len(_V2ExploitabilityValue_index)-1) {
		return "V2ExploitabilityValue(" + strconv.FormatInt(int64(i), 10) + ")"
	}
	return _V2ExploitabilityValue_name[_V2ExploitabilityValue_index[i]:_V2ExploitabilityValue_index[i+1]]
}

func _() {
	// An "invalid array index" compiler error signifies that the constant values have changed.
	// Re-run the stringer command to generate them again.
	var x [1]struct{}
	_ = x[V2RemediationLevelNotDefined-0]
	_ = x[V2RemediationLevelOfficialFix-1]
	_ = x[V2RemediationLevelTemporaryFix-2]
	_ = x[V2RemediationLevelWorkaround-3]
	_ = x[V2RemediationLevelUnavailable-4]
}

const _V2RemediationLevelValue_name = "NDOFTFWU"

var _V2RemediationLevelValue_index = [...]uint8{0, 2, 4, 6, 7, 8}

func (i V2RemediationLevelValue) String() string {
	if i >= V2RemediationLevelValue(len(_V2RemediationLevelValue_index)-1) {
		return "V2RemediationLevelValue(" + strconv.FormatInt(int64(i), 10) + ")"
	}
	return _V2RemediationLevelValue_name[_V2RemediationLevelValue_index[i]:_V2RemediationLevelValue_index[i+1]]
}

func _() {
	// An "invalid array index" compiler error signifies that the constant values have changed.
	// Re-run the stringer command to generate them again.
	var x [1]struct{}
	_ = x[V2ReportConfidenceNotDefined-0]
	_ = x[V2ReportConfidenceUnconfirmed-1]
	_ = x[V2ReportConfidenceUncorroborated-2]
	_ = x[V2ReportConfidenceConfirmed-3]
}

const _V2ReportConfidenceValue_name = "NDUCURC"

var _V2ReportConfidenceValue_index = [...]uint8{0, 2, 4, 6, 7}

func (i V2ReportConfidenceValue) String() string {
	if i >= V2ReportConfidenceValue(len(_V2ReportConfidenceValue_index)-1) {
		return "V2ReportConfidenceValue(" + strconv.FormatInt(int64(i), 10) + ")"
	}
	return _V2ReportConfidenceValue_name[_V2ReportConfidenceValue_index[i]:_V2ReportConfidenceValue_index[i+1]]
}

func _() {
	// An "invalid array index" compiler error signifies that the constant values have changed.
	// Re-run the stringer command to generate them again.
	var x [1]struct{}
	_ = x[V2CollateralDamagePotentialNotDefined-0]
	_ = x[V2CollateralDamagePotentialNone-1]
	_ = x[V2CollateralDamagePotentialLow-2]
	_ = x[V2CollateralDamagePotentialLowMedium-3]
	_ = x[V2CollateralDamagePotentialMediumHigh-4]
	_ = x[V2CollateralDamagePotentialHigh-5]
}

const _V2CollateralDamagePotentialValue_name = "NDNLLMMHH"

var _V2CollateralDamagePotentialValue_index = [...]uint8{0, 2, 3, 4, 6, 8, 9}

func (i V2CollateralDamagePotentialValue) String() string {
	if i >= V2CollateralDamagePotentialValue(len(_V2CollateralDamagePotentialValue_index)-1) {
		return "V2CollateralDamagePotentialValue(" + strconv.FormatInt(int64(i), 10) + ")"
	}
	return _V2CollateralDamagePotentialValue_name[_V2CollateralDamagePotentialValue_index[i]:_V2CollateralDamagePotentialValue_index[i+1]]
}

func _() {
	// An "invalid array index" compiler error signifies that the constant values have changed.
	// Re-run the stringer command to generate them again.
	var x [1]struct{}
	_ = x[V2TargetDistributionNotDefined-0]
	_ = x[V2TargetDistributionNone-1]
	_ = x[V2TargetDistributionLow-2]
	_ = x[V2TargetDistributionMedium-3]
	_ = x[V2TargetDistributionHigh-4]
}

const _V2TargetDistributionValue_name = "NDNLMH"

var _V2TargetDistributionValue_index = [...]uint8{0, 2, 3, 4, 5, 6}

func (i V2TargetDistributionValue) String() string {
	if i >= V2TargetDistributionValue(len(_V2TargetDistributionValue_index)-1) {
		return "V2TargetDistributionValue(" + strconv.FormatInt(int64(i), 10) + ")"
	}
	return _V2TargetDistributionValue_name[_V2TargetDistributionValue_index[i]:_V2TargetDistributionValue_index[i+1]]
}

func _() {
	// An "invalid array index" compiler error signifies that the constant values have changed.
	// Re-run the stringer command to generate them again.
	var x [1]struct{}
	_ = x[V2RequirementNotDefined-0]
	_ = x[V2RequirementLow-1]
	_ = x[V2RequirementMedium-2]
	_ = x[V2RequirementHigh-3]
}

const _V2Requirement_name = "NDLMH"

var _V2Requirement_index = [...]uint8{0, 2, 3, 4, 5}

func (i V2Requirement) String() string {
	if i >= V2Requirement(len(_V2Requirement_index)-1) {
		return "V2Requirement(" + strconv.FormatInt(int64(i), 10) + ")"
	}
	return _V2Requirement_name[_V2Requirement_index[i]:_V2Requirement_index[i+1]]
}
