package cvss

//go:generate go tool stringer -type=Version,Severity -linecomment -output cvss_string.go
//go:generate go tool stringer -type=V2Metric,V2AccessVectorValue,V2AccessComplexityValue,V2AuthenticationValue,V2Impact,V2ExploitabilityValue,V2RemediationLevelValue,V2ReportConfidenceValue,V2CollateralDamagePotentialValue,V2TargetDistributionValue,V2Requirement -linecomment -output cvss_v2_string.go
//go:generate go tool stringer -type=V3Metric,V3AttackVectorValue,V3AttackComplexityValue,V3PrivilegesRequiredValue,V3UserInteractionValue,V3ScopeValue,V3Impact,V3ExploitMaturityValue,V3RemediationLevelValue,V3ReportConfidenceValue,V3Requirement -linecomment -output cvss_v3_string.go
