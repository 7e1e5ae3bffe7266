package db

import (
	"time"

	"github.com/pivotal-cf/cred-audit/models"
)

type Scan struct {
	Model

	ProjectID   string            `json:"project_id"`
	ScanType    models.ScanType   `json:"scan_type"`
	Status      models.ScanStatus `json:"status"`
	TriggeredBy *string           `json:"triggered_by,omitempty"`

	CriticalFindingsCount int `json:"critical_findings_count"`
	HighFindingsCount     int `json:"high_findings_count"`
	MediumFindingsCount   int `json:"medium_findings_count"`
	LowFindingsCount      int `json:"low_findings_count"`

	RulesVersion int         `json:"rules_version"`
	Results      PropertyMap `json:"results"`
	Error        string      `json:"error,omitempty"`

	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (s Scan) Counts() models.SeverityCounts {
	return models.SeverityCounts{
		Critical: s.CriticalFindingsCount,
		High:     s.HighFindingsCount,
		Medium:   s.MediumFindingsCount,
		Low:      s.LowFindingsCount,
	}
}

type Finding struct {
	Model

	ScanID        string `json:"scan_id"`
	ProjectID     string `json:"project_id"`
	EnvironmentID string `json:"environment_id,omitempty"`

	FindingType    models.FindingType   `json:"finding_type"`
	Severity       models.Severity      `json:"severity"`
	VariableName   string               `json:"variable_name"`
	Location       string               `json:"location,omitempty"`
	Description    string               `json:"description"`
	Recommendation string               `json:"recommendation"`
	Status         models.FindingStatus `json:"status"`

	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	ResolvedBy *string    `json:"resolved_by,omitempty"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (f Finding) Key() models.FindingKey {
	return models.FindingKey{
		ProjectID:     f.ProjectID,
		EnvironmentID: f.EnvironmentID,
		VariableName:  f.VariableName,
		FindingType:   f.FindingType,
	}
}

func (f Finding) RankSeverity() models.Severity { return f.Severity }
func (f Finding) RankTime() time.Time           { return f.CreatedAt }

type Leak struct {
	Model

	ProjectID     string               `json:"project_id,omitempty"`
	ScanID        string               `json:"scan_id,omitempty"`
	DetectionType models.DetectionType `json:"detection_type"`
	Severity      models.Severity      `json:"severity"`
	Source        string               `json:"source"`
	Description   string               `json:"description"`

	LeakedDataSample string     `json:"leaked_data_sample,omitempty"`
	AffectedTables   StringList `json:"affected_tables,omitempty"`
	AffectedUsers    StringList `json:"affected_users,omitempty"`

	AutoResolved    bool       `json:"auto_resolved"`
	ResolvedAt      *time.Time `json:"resolved_at,omitempty"`
	ResolvedBy      *string    `json:"resolved_by,omitempty"`
	ResolutionNotes string     `json:"resolution_notes,omitempty"`

	Signature string      `json:"signature"`
	Metadata  PropertyMap `json:"metadata"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func (l Leak) Resolved() bool {
	return l.ResolvedAt != nil
}

func (l Leak) RankSeverity() models.Severity { return l.Severity }
func (l Leak) RankTime() time.Time           { return l.CreatedAt }

// AuditEvent rows are written once and never updated.
type AuditEvent struct {
	Model

	ProjectID    string      `json:"project_id"`
	UserID       *string     `json:"user_id,omitempty"`
	Action       string      `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Metadata     PropertyMap `json:"metadata"`
}

type ScanLock struct {
	ProjectID  string `gorm:"primary_key"`
	ScanID     string
	AcquiredAt time.Time
}

type Project struct {
	Model

	Name string `json:"name"`
}

type Profile struct {
	Model

	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

type Environment struct {
	Model

	ProjectID string `json:"project_id"`
	Name      string `json:"name"`
}

// Secret is one environment-scoped key/value pair as the surrounding product
// stores it.
type Secret struct {
	Model

	EnvironmentID string
	Name          string
	Value         string
}
