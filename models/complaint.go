package models

import "time"

// Complaint status values. Transitions are lenient: any authorized police
// update may set any status, only membership in this set is enforced.
const (
	StatusPending  = "pending"
	StatusAnalyzed = "analyzed"
	StatusFiled    = "filed"
	StatusRejected = "rejected"
	StatusClosed   = "closed"
)

// ValidStatus reports whether s is a recognised complaint status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusAnalyzed, StatusFiled, StatusRejected, StatusClosed:
		return true
	}
	return false
}

// FiledBy records the officer who filed a complaint on a victim's behalf.
type FiledBy struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
	Role string `bson:"role" json:"role"`
}

// Complaint is the central case record tracking a grievance through its
// investigative states.
type Complaint struct {
	ID                  string                 `bson:"id" json:"id"`
	Text                string                 `bson:"text" json:"text"`
	Language            string                 `bson:"language" json:"language"`
	Status              string                 `bson:"status" json:"status"`
	ComplainantID       string                 `bson:"complainantId" json:"complainantId"`
	ComplainantName     string                 `bson:"complainantName" json:"complainantName"`
	ComplainantPhone    string                 `bson:"complainantPhone,omitempty" json:"complainantPhone,omitempty"`
	FiledAt             time.Time              `bson:"filedAt" json:"filedAt"`
	FiledBy             *FiledBy               `bson:"filedBy,omitempty" json:"filedBy,omitempty"`
	FIRNumber           string                 `bson:"firNumber,omitempty" json:"firNumber,omitempty"`
	AppliedSections     []string               `bson:"appliedSections,omitempty" json:"appliedSections,omitempty"`
	SuggestedSections   []string               `bson:"suggestedSections,omitempty" json:"suggestedSections,omitempty"`
	AssignedOfficer     string                 `bson:"assignedOfficer,omitempty" json:"assignedOfficer,omitempty"`
	AnalysisResult      map[string]interface{} `bson:"analysisResult,omitempty" json:"analysisResult,omitempty"`
	IncidentDetails     map[string]interface{} `bson:"incidentDetails,omitempty" json:"incidentDetails,omitempty"`
	LegalClassification map[string]interface{} `bson:"legalClassification,omitempty" json:"legalClassification,omitempty"`
	CurrentStage        string                 `bson:"currentStage,omitempty" json:"currentStage,omitempty"`
	UpdatedAt           *time.Time             `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// summaryFieldLimit caps string fields in the victim-facing list projection.
const summaryFieldLimit = 100

// ComplaintSummary is the privacy-reduced list projection served to victims.
// String fields longer than the limit are truncated, with the original length
// reported separately.
type ComplaintSummary struct {
	ID           string     `json:"id"`
	Text         string     `json:"text"`
	TextLength   int        `json:"textLength,omitempty"`
	Status       string     `json:"status"`
	FIRNumber    string     `json:"firNumber,omitempty"`
	CurrentStage string     `json:"currentStage,omitempty"`
	FiledAt      time.Time  `json:"filedAt"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
}

// Summary projects a complaint into its victim-facing summary form.
func (c Complaint) Summary() ComplaintSummary {
	s := ComplaintSummary{
		ID:           c.ID,
		Text:         c.Text,
		Status:       c.Status,
		FIRNumber:    c.FIRNumber,
		CurrentStage: c.CurrentStage,
		FiledAt:      c.FiledAt,
		UpdatedAt:    c.UpdatedAt,
	}
	if len(c.Text) > summaryFieldLimit {
		s.TextLength = len(c.Text)
		s.Text = c.Text[:summaryFieldLimit]
	}
	return s
}
