// Code generated by "stringer -type=V3Metric,V3AttackVectorValue,V3AttackComplexityValue,V3PrivilegesRequiredValue,V3UserInteractionValue,V3ScopeValue,V3Impact,V3ExploitMaturityValue,V3RemediationLevelValue,V3ReportConfidenceValue,V3Requirement -linecomment -output cvss_v3_string.go"; DO NOT EDIT.

package cvss

import "strconv"

func _() {
	// An "invalid array index" compiler error signifies that the constant values have changed.
	// Re-run the stringer command to generate them again.
	var x [1]struct{}
	_ = x[V3AttackVector-0]
	_ = x[V3AttackComplexity-1]
	_ = x[V3PrivilegesRequired-2]
	_ = x[V3UserInteraction-3]
	_ = x[V3Scope-4]
	_ = x[V3Confidentiality-5]
	_ = x[V3Integrity-6]
	_ = x[V3Availability-7]
	_ = x[V3ExploitMaturity-8]
	_ = x[V3RemediationLevel-9]
	_ = x[V3ReportConfidence-10]
	_ = x[V3ConfidentialityRequirement-11]
	_ = x[V3IntegrityRequirement-12]
	_ = x[V3AvailabilityRequirement-13]
	_ = x[V3ModifiedAttackVector-14]
	_ = x[V3ModifiedAttackComplexity-15]
	_ = x[V3ModifiedPrivilegesRequired-16]
	_ = x[V3ModifiedUserInteraction-17]
	_ = x[V3ModifiedScope-18]
	_ = x[V3ModifiedConfidentiality-19]
	_ = x[V3ModifiedIntegrity-20]
	_ = x[V3ModifiedAvailability-21]
}

const _V3Metric_name = "AVACPRUISCIAERLRCCRIRARMAVMACMPRMUIMSMCMIMA"

var _V3Metric_index = [...]uint8{0, 2, 4, 6, 8, 9, 10, 11, 12, 13, 15, 17, 19, 21, 23, 26, 29, 32, 35, 37, 39, 41, 43}

func (i V3Metric) String() string {
	if i < 0 || i >= V3Metric(len(_V3Metric_index)-1) {
		return "V3Metric(" + strconv.FormatInt(int64(i), 10) + ")"
	}
	return _V3Metric_name[_V3Metric_index[i]:_V3Metric_index[i+1]]
}

func _() {
	// An "invalid array index" compiler error signifies that the constant values have changed.
	// Re-run the stringer command to generate them again.
	var x [1]struct{}
	_ = x[V3AttackVectorNotDefined-0]
	_ = x[V3AttackVectorNetwork-1]
	_ = x[V3AttackVectorAdjacent-2]
	_ = x[V3AttackVectorLocal-3]
	_ = x[V3AttackVectorPhysical-4]
}

const _V3AttackVectorValue_name = "XNALP"

var _V3AttackVectorValue_index = [...]uint8{0, 1, 2, 3, 4, 5}

func (i V3AttackVectorValue) String() string {
	if i >= V3AttackVectorValue(len(_V3AttackVectorValue_index)-1) {
		return "V3AttackVectorValue(" + strconv.FormatInt(int64(i), 10) + ")"
	}
	return _V3AttackVectorValue_name[_V3AttackVectorValue_index[i]:_V3AttackVectorValue_index[i+1]]
}

func _() {
	// An "invalid array index" compiler error signifies that the constant values have changed.
	// Re-run the stringer command to generate them again.
	var x [1]struct{}
	_ = x[V3AttackComplexityNotDefined-0]
	_ = x[V3AttackComplexityLow-1]
	_ = x[V3AttackComplexityHigh-2]
}

const _V3AttackComplexityValue_name = "XLH"

var _V3AttackComplexityValue_index = [...]uint8{0, 1, 2, 3}

func (i V3AttackComplexityValue) String() string {
	if i >= V3AttackComplexityValue(len(_V3AttackComplexityValue_index)-1) {
		return "V3AttackComplexityValue(" + strconv.FormatInt(int64(i), 10) + ")"
	}
	return _V3AttackComplexityValue_name[_V3AttackComplexityValue_index[i]:_V3AttackComplexityValue_index[i+1]]
}

func _() {
	// An "invalid array index" compiler error signifies that the constant values have changed.
	// Re-run the stringer command to generate them again.
	var x [1]struct{}
	_ = x[V3PrivilegesRequiredNotDefined-0]
	_ = x[V3PrivilegesRequiredNone-1]
	_ = x[V3PrivilegesRequiredLow-2]
	_ = x[V3PrivilegesRequiredHigh-3]
}

const _V3PrivilegesRequiredValue_name = "XNLH"

var _V3PrivilegesRequiredValue_index = [...]uint8{0, 1, 2, 3, 4}

func (i V3PrivilegesRequiredValue) String() string {
	if i >= V3PrivilegesRequiredValue(len(_V3PrivilegesRequiredValue_index)-1) {
		return "V3PrivilegesRequiredValue(" + strconv.FormatInt(int64(i), 10) + ")"
	}
	return _V3PrivilegesRequiredValue_name[_V3PrivilegesRequiredValue_index[i]:_V3PrivilegesRequiredValue_index[i+1]]
}

func _() {
	// An "invalid array index" compiler error signifies that the constant values have changed.
	// Re-run the stringer command to generate them again.
	var x [1]struct{}
	_ = x[V3UserInteractionNotDefined-0]
	_ = x[V3UserInteractionNone-1]
	_ = x[V3UserInteractionRequired-2]
}

const _V3UserInteractionValue_name = "XNR"

var _V3UserInteractionValue_index = [...]uint8{0, 1, 2, 3}

func (i V3UserInteractionValue) String() string {
	if i >= V3UserInteractionValue(len(_V3UserInteractionValue_index)-1) {
		return "V3UserInteractionValue(" + strconv.FormatInt(int64(i), 10) + ")"
	}
	return _V3UserInteractionValue_name[_V3UserInteractionValue_index[i]:_V3UserInteractionValue_index[i+1]]
}

func _() {
	// An "invalid array index" compiler error signifies that the constant values have changed.
	// Re-run the stringer command to generate them again.
	var x [1]struct{}
	_ = x[V3ScopeNotDefined-0]
	_ = x[V3ScopeUnchanged-1]
	_ = x[V3ScopeChanged-2]
}

const _V3ScopeValue_name = "XUC"

var _V3ScopeValue_index = [...]uint8{0, 1, 2, 3}

func (i V3ScopeValue) String() string {
	if i >= V3ScopeValue(len(_V3ScopeValue_index)-1) {
		return "V3ScopeValue(" + strconv.FormatInt(int64(i), 10) + ")"
	}
	return _V3ScopeValue_name[_V3ScopeValue_index[i]:_V3ScopeValue_index[i+1]]
}

func _() {
	// An "invalid array index" compiler error signifies that the constant values have changed.
	// Re-run the stringer command to generate them again.
	var x [1]struct{}
	_ = x[V3ImpactNotDefined-0]
	_ = x[V3ImpactHigh-1]
	_ = x[V3ImpactLow-2]
	_ = x[V3ImpactNone-3]
}

const _V3Impact_name = "XHLN"

var _V3Impact_index = [...]uint8{0, 1, 2, 3, 4}

func (i V3Impact) String() string {
	if i >= V3Impact(len(_V3Impact_index)-1) {
		return "V3Impact(" + strconv.FormatInt(int64(i), 10) + ")"
	}
	return _V3Impact_name[_V3Impact_index[i]:_V3Impact_index[i+1]]
}

func _() {
	// An "invalid array index" compiler error signifies that the constant values have changed.
	// Re-run the stringer command to generate them again.
	var x [1]struct{}
	_ = x[V3ExploitMaturityNotDefined-0]
	_ = x[V3ExploitMaturityHigh-1]
	_ = x[V3ExploitMaturityFunctional-2]
	_ = x[V3ExploitMaturityProofOfConcept-3]
	_ = x[V3ExploitMaturityUnproven-4]
}

const _V3ExploitMaturityValue_name = "XHFPU"

var _V3ExploitMaturityValue_index = [...]uint8{0, 1, 2, 3, 4, 5}

func (i V3ExploitMaturityValue) String() string {
	if i >= V3ExploitMaturityValue(len(_V3ExploitMaturityValue_index)-1) {
		return "V3ExploitMaturityValue(" + strconv.FormatInt(int64(i), 10) + ")"
	}
	return _V3ExploitMaturityValue_name[_V3ExploitMaturityValue_index[i]:_V3ExploitMaturityValue_index[i+1]]
}

func _() {
	// An "invalid array index" compiler error signifies that the constant values have changed.
	// Re-run the stringer command to generate them again.
	var x [1]struct{}
	_ = x[V3RemediationLevelNotDefined-0]
	_ = x[V3RemediationLevelUnavailable-1]
	_ = x[V3RemediationLevelWorkaround-2]
	_ = x[V3RemediationLevelTemporaryFix-3]
	_ = x[V3RemediationLevelOfficialFix-4]
}

const _V3RemediationLevelValue_name = "XUWTO"

var _V3RemediationLevelValue_index = [...]uint8{0, 1, 2, 3, 4, 5}

func (i V3RemediationLevelValue) String() string {
	if i >= V3RemediationLevelValue(len(_V3RemediationLevelValue_index)-1) {
		return "V3RemediationLevelValue(" + strconv.FormatInt(int64(i), 10) + ")"
	}
	return _V3RemediationLevelValue_name[_V3RemediationLevelValue_index[i]:_V3RemediationLevelValue_index[i+1]]
}

func _() {
	// An "invalid array index" compiler error signifies that the constant values have changed.
	// Re-run the stringer command to generate them again.
	var x [1]struct{}
	_ = x[V3ReportConfidenceNotDefined-0]
	_ = x[V3ReportConfidenceConfirmed-1]
	_ = x[V3ReportConfidenceReasonable-2]
	_ = x[V3ReportConfidenceUnknown-3]
}

const _V3ReportConfidenceValue_name = "XCRU"

var _V3ReportConfidenceValue_index = [...]uint8{0, 1, 2, 3, 4}

func (i V3ReportConfidenceValue) String() string {
	if i >= V3ReportConfidenceValue(len(_V3ReportConfidenceValue_index)-1) {
		return "V3ReportConfidenceValue(" + strconv.FormatInt(int64(i), 10) + ")"
	}
	return _V3ReportConfidenceValue_name[_V3ReportConfidenceValue_index[i]:_V3ReportConfidenceValue_index[i+1]]
}

func _() {
	// An "invalid array index" compiler error signifies that the constant values have changed.
	// Re-run the stringer command to generate them again.
	var x [1]struct{}
	_ = x[V3RequirementNotDefined-0]
	_ = x[V3RequirementHigh-1]
	_ = x[V3RequirementMedium-2]
	_ = x[V3RequirementLow-3]
}

const _V3Requirement_name = "XHML"

var _V3Requirement_index = [...]uint8{0, 1, 2, 3, 4}

func (i V3Requirement) String() string {
	if i >= V3Requirement(len(_V3Requirement_index)-1) {
		return "V3Requirement(" + strconv.FormatInt(int64(i), 10) + ")"
	}
	return _V3Requirement_name[_V3Requirement_index[i]:_V3Requirement_index[i+1]]
}
