package models

import "fmt"

type ScanType string

const (
	ScanTypeAutomated ScanType = "automated"
	ScanTypeManual    ScanType = "manual"
	ScanTypeScheduled ScanType = "scheduled"
)

func ParseScanType(s string) (ScanType, error) {
	switch t := ScanType(s); t {
	case ScanTypeAutomated, ScanTypeManual, ScanTypeScheduled:
		return t, nil
	}

	return "", fmt.Errorf("unknown scan type: %q", s)
}

type ScanStatus string

const (
	ScanStatusRunning   ScanStatus = "running"
	ScanStatusCompleted ScanStatus = "completed"
	ScanStatusFailed    ScanStatus = "failed"
)

func (s ScanStatus) Finished() bool {
	return s == ScanStatusCompleted || s == ScanStatusFailed
}

type FindingType string

const (
	FindingTypeExposedInCode        FindingType = "exposed_in_code"
	FindingTypeExposedInLogs        FindingType = "exposed_in_logs"
	FindingTypeWeakEncryption       FindingType = "weak_encryption"
	FindingTypePublicRepository     FindingType = "public_repository"
	FindingTypeInsecureTransmission FindingType = "insecure_transmission"
)

func ParseFindingType(s string) (FindingType, error) {
	switch t := FindingType(s); t {
	case FindingTypeExposedInCode,
		FindingTypeExposedInLogs,
		FindingTypeWeakEncryption,
		FindingTypePublicRepository,
		FindingTypeInsecureTransmission:
		return t, nil
	}

	return "", fmt.Errorf("unknown finding type: %q", s)
}

type FindingStatus string

const (
	FindingStatusOpen          FindingStatus = "open"
	FindingStatusAcknowledged  FindingStatus = "acknowledged"
	FindingStatusResolved      FindingStatus = "resolved"
	FindingStatusFalsePositive FindingStatus = "false_positive"
)

// ActiveFindingStatuses are the non-terminal statuses. A detection matching
// a finding in one of these statuses is a duplicate of it.
var ActiveFindingStatuses = []FindingStatus{
	FindingStatusOpen,
	FindingStatusAcknowledged,
}

func ParseFindingStatus(s string) (FindingStatus, error) {
	switch t := FindingStatus(s); t {
	case FindingStatusOpen,
		FindingStatusAcknowledged,
		FindingStatusResolved,
		FindingStatusFalsePositive:
		return t, nil
	}

	return "", fmt.Errorf("unknown finding status: %q", s)
}

func (s FindingStatus) Terminal() bool {
	return s == FindingStatusResolved || s == FindingStatusFalsePositive
}

var findingTransitions = map[FindingStatus][]FindingStatus{
	FindingStatusOpen: {
		FindingStatusAcknowledged,
		FindingStatusResolved,
		FindingStatusFalsePositive,
	},
	FindingStatusAcknowledged: {
		FindingStatusResolved,
		FindingStatusFalsePositive,
	},
}

func CanTransition(from, to FindingStatus) bool {
	for _, allowed := range findingTransitions[from] {
		if allowed == to {
			return true
		}
	}

	return false
}

type DetectionType string

const (
	DetectionTypeDatabaseLeak   DetectionType = "database_leak"
	DetectionTypeEnvLeak        DetectionType = "env_leak"
	DetectionTypeAPIKeyLeak     DetectionType = "api_key_leak"
	DetectionTypeCredentialLeak DetectionType = "credential_leak"
)

func ParseDetectionType(s string) (DetectionType, error) {
	switch t := DetectionType(s); t {
	case DetectionTypeDatabaseLeak,
		DetectionTypeEnvLeak,
		DetectionTypeAPIKeyLeak,
		DetectionTypeCredentialLeak:
		return t, nil
	}

	return "", fmt.Errorf("unknown detection type: %q", s)
}

// FindingType is the per-variable classification a leak of this kind maps
// to when it is also reported as a finding.
func (t DetectionType) FindingType() FindingType {
	if t == DetectionTypeDatabaseLeak {
		return FindingTypeExposedInLogs
	}

	return FindingTypeExposedInCode
}

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

const (
	ResourceScan    = "scan"
	ResourceFinding = "finding"
	ResourceLeak    = "leak"
)
