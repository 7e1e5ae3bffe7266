package models

// Detection is one raw result of a rule, before reconciliation.
type Detection struct {
	FindingType    FindingType
	Severity       Severity
	EnvironmentID  string
	VariableName   string
	Location       string
	Description    string
	Recommendation string

	Leak *LeakSignal
}

// Key identifies the exposure a detection describes within a project.
func (d Detection) Key(projectID string) FindingKey {
	return FindingKey{
		ProjectID:     projectID,
		EnvironmentID: d.EnvironmentID,
		VariableName:  d.VariableName,
		FindingType:   d.FindingType,
	}
}

type FindingKey struct {
	ProjectID     string
	EnvironmentID string
	VariableName  string
	FindingType   FindingType
}

// LeakSignal is the systemic side of a detection. Key identifies the
// condition across scans. Sample must already be redacted.
type LeakSignal struct {
	ProjectID      string
	DetectionType  DetectionType
	Severity       Severity
	Source         string
	Key            string
	Description    string
	Sample         string
	AffectedTables []string
	AffectedUsers  []string
	Metadata       map[string]interface{}
}
