package complaint

import (
	"context"

	casenoteRepo "saarthi/database/repository/casenote"
	complaintRepo "saarthi/database/repository/complaint"
	notificationRepo "saarthi/database/repository/notification"
	victimRepo "saarthi/database/repository/victim"
	"saarthi/models"
	"saarthi/services/notification"
)

// VictimDetails carries optional contact fields when police file on a
// victim's behalf.
type VictimDetails struct {
	Address string `json:"address"`
	IDProof string `json:"id_proof"`
}

// CreateRequest is the complaint filing input. The victim_* fields are only
// honoured for police principals filing on a victim's behalf.
type CreateRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`

	VictimPhone   string        `json:"victim_phone"`
	VictimName    string        `json:"victim_name"`
	VictimDetails VictimDetails `json:"victim_details"`

	IncidentDetails     map[string]interface{} `json:"incidentDetails"`
	LegalClassification map[string]interface{} `json:"legalClassification"`
	AnalysisResult      map[string]interface{} `json:"analysisResult"`
}

// UpdateRequest is the police PATCH input. Only whitelisted fields are ever
// applied; nil pointers mean "leave unchanged".
type UpdateRequest struct {
	Status          *string                `json:"status"`
	FIRNumber       *string                `json:"firNumber"`
	AppliedSections []string               `json:"appliedSections"`
	AssignedOfficer *string                `json:"assignedOfficer"`
	AnalysisResult  map[string]interface{} `json:"analysisResult"`
}

// AddNoteRequest is the case note input.
type AddNoteRequest struct {
	Content    string `json:"content"`
	Stage      string `json:"stage"`
	Visibility string `json:"visibility"`
}

// Listing is a role-scoped complaint list: police get full records, victims
// get privacy-reduced summaries.
type Listing struct {
	Full      []models.Complaint
	Summaries []models.ComplaintSummary
}

// Payload returns whichever projection the listing holds.
func (l Listing) Payload() interface{} {
	if l.Full != nil {
		return l.Full
	}
	return l.Summaries
}

// VictimContact is the resolved contact detail shown to police alongside a
// complaint.
type VictimContact struct {
	Name    string `json:"name,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	IDProof string `json:"id_proof,omitempty"`
}

// Detail is a single complaint with police-only contact enrichment.
type Detail struct {
	models.Complaint
	VictimContact *VictimContact `json:"victimContact,omitempty"`
}

// ComplaintService owns the complaint lifecycle: creation, role-scoped reads,
// status updates with notification side effects, and case notes.
type ComplaintService interface {
	Create(ctx context.Context, principal models.Principal, req CreateRequest) (*models.Complaint, error)
	List(ctx context.Context, principal models.Principal) (*Listing, error)
	Get(ctx context.Context, principal models.Principal, id string) (*Detail, error)
	Update(ctx context.Context, principal models.Principal, id string, req UpdateRequest) (*models.Complaint, error)
	AddNote(ctx context.Context, principal models.Principal, complaintID string, req AddNoteRequest) (*models.CaseNote, error)
	ListNotes(ctx context.Context, principal models.Principal, complaintID string) ([]models.CaseNote, error)
}

// DefaultComplaintService is the production implementation.
type DefaultComplaintService struct {
	Complaints    complaintRepo.ComplaintRepository
	Victims       victimRepo.VictimRepository
	PreRegistered victimRepo.PreRegisteredRepository
	Notes         casenoteRepo.CaseNoteRepository
	Notifications notificationRepo.NotificationRepository
	Notifier      notification.NotificationService
}
