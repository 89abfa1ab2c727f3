package complaint

import (
	"context"
	"time"

	"saarthi/models"
	"saarthi/services/notification"
	"saarthi/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// Create files a complaint. Police principals may file on a victim's behalf
// by phone, resolving or creating a pre-registration as needed; everyone else
// files self-attributed.
func (s *DefaultComplaintService) Create(ctx context.Context, principal models.Principal, req CreateRequest) (*models.Complaint, error) {
	if req.Text == "" || req.Language == "" {
		return nil, ValidationError{Msg: "Complaint text and language are required"}
	}

	c := &models.Complaint{
		ID:                  uuid.New().String(),
		Text:                req.Text,
		Language:            req.Language,
		Status:              models.StatusPending,
		FiledAt:             time.Now(),
		IncidentDetails:     req.IncidentDetails,
		LegalClassification: req.LegalClassification,
		AnalysisResult:      req.AnalysisResult,
		SuggestedSections:   suggestedSections(req.AnalysisResult),
	}

	if principal.IsPolice() && req.VictimPhone != "" {
		if err := s.attributeToVictim(c, principal, req); err != nil {
			return nil, err
		}
	} else {
		if !principal.IsPolice() && principal.Role != models.RoleVictim {
			return nil, ForbiddenError{Msg: "Unauthorized access"}
		}
		c.ComplainantID = principal.ID
		c.ComplainantName = principal.Name
		if victim, err := s.Victims.GetByID(principal.ID); err == nil && victim != nil {
			c.ComplainantPhone = victim.Phone
		}
	}

	if err := s.Complaints.Create(c); err != nil {
		return nil, err
	}

	s.notifyConfirmation(c)

	return c, nil
}

// attributeToVictim resolves the complainant for the police-on-behalf path,
// creating a pre-registration when the phone is unknown.
func (s *DefaultComplaintService) attributeToVictim(c *models.Complaint, principal models.Principal, req CreateRequest) error {
	phone := utils.NormalizePhone(req.VictimPhone)
	if !utils.IsValidPhone(phone) {
		return ValidationError{Msg: "Invalid victim phone number format"}
	}
	if req.VictimName == "" {
		return ValidationError{Msg: "Victim name is required"}
	}

	victim, err := s.Victims.GetByPhone(phone)
	if err != nil {
		return err
	}

	switch {
	case victim != nil:
		c.ComplainantID = victim.ID
		c.ComplainantName = victim.Name
	default:
		preRegistered, err := s.PreRegistered.GetByPhone(phone)
		if err != nil {
			return err
		}
		if preRegistered != nil {
			c.ComplainantID = preRegistered.ID
			c.ComplainantName = preRegistered.Name
		} else {
			if !utils.ValidIdentityName(req.VictimName) {
				return ValidationError{Msg: "Name must not contain the ':' character"}
			}
			preRegistered = &models.PreRegisteredVictim{
				ID:           uuid.New().String(),
				Name:         req.VictimName,
				Phone:        phone,
				Address:      req.VictimDetails.Address,
				IDProof:      req.VictimDetails.IDProof,
				RegisteredBy: &models.RegisteredBy{ID: principal.ID, Name: principal.Name},
			}
			if err := s.PreRegistered.Create(preRegistered); err != nil {
				return err
			}
			c.ComplainantID = preRegistered.ID
			c.ComplainantName = preRegistered.Name
		}
	}

	c.ComplainantPhone = phone
	c.FiledBy = &models.FiledBy{ID: principal.ID, Name: principal.Name, Role: models.RolePolice}
	return nil
}

// suggestedSections derives section identifiers from a cognizable analysis
// result carrying a sections list.
func suggestedSections(analysis map[string]interface{}) []string {
	if analysis == nil {
		return nil
	}
	cognizable, ok := analysis["isCognizable"].(bool)
	if !ok || !cognizable {
		return nil
	}
	raw, ok := analysis["sections"].([]interface{})
	if !ok {
		return nil
	}

	var sections []string
	for _, entry := range raw {
		m, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		if section, ok := m["section"].(string); ok && section != "" {
			sections = append(sections, section)
		}
	}
	return sections
}

// List returns all complaints for police, and a privacy-reduced summary of
// the principal's own complaints for victims.
func (s *DefaultComplaintService) List(ctx context.Context, principal models.Principal) (*Listing, error) {
	if principal.IsPolice() {
		full, err := s.Complaints.GetAll()
		if err != nil {
			return nil, err
		}
		if full == nil {
			full = []models.Complaint{}
		}
		return &Listing{Full: full}, nil
	}

	own, err := s.Complaints.GetByComplainant(principal.ID)
	if err != nil {
		return nil, err
	}
	summaries := []models.ComplaintSummary{}
	for _, c := range own {
		summaries = append(summaries, c.Summary())
	}
	return &Listing{Summaries: summaries}, nil
}

// Get fetches a single complaint. Victims may only access their own; police
// additionally get resolved victim contact details.
func (s *DefaultComplaintService) Get(ctx context.Context, principal models.Principal, id string) (*Detail, error) {
	c, err := s.Complaints.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, NotFoundError{Msg: "Complaint not found"}
	}

	if !principal.IsPolice() {
		if c.ComplainantID != principal.ID {
			return nil, ForbiddenError{Msg: "Unauthorized access"}
		}
		return &Detail{Complaint: *c}, nil
	}

	return &Detail{Complaint: *c, VictimContact: s.resolveContact(c)}, nil
}

// resolveContact looks up the complainant's contact details from the victim
// record, falling back to the pre-registration, by id then by phone.
func (s *DefaultComplaintService) resolveContact(c *models.Complaint) *VictimContact {
	if victim, err := s.Victims.GetByID(c.ComplainantID); err == nil && victim != nil {
		return &VictimContact{Name: victim.Name, Phone: victim.Phone, Address: victim.Address, IDProof: victim.IDProof}
	}
	if pre, err := s.PreRegistered.GetByID(c.ComplainantID); err == nil && pre != nil {
		return &VictimContact{Name: pre.Name, Phone: pre.Phone, Address: pre.Address, IDProof: pre.IDProof}
	}
	if c.ComplainantPhone == "" {
		return nil
	}
	if victim, err := s.Victims.GetByPhone(c.ComplainantPhone); err == nil && victim != nil {
		return &VictimContact{Name: victim.Name, Phone: victim.Phone, Address: victim.Address, IDProof: victim.IDProof}
	}
	if pre, err := s.PreRegistered.GetByPhone(c.ComplainantPhone); err == nil && pre != nil {
		return &VictimContact{Name: pre.Name, Phone: pre.Phone, Address: pre.Address, IDProof: pre.IDProof}
	}
	return nil
}

// Update applies a whitelisted police patch. A status change triggers a
// best-effort SMS recorded in the notification log.
func (s *DefaultComplaintService) Update(ctx context.Context, principal models.Principal, id string, req UpdateRequest) (*models.Complaint, error) {
	if !principal.IsPolice() {
		return nil, ForbiddenError{Msg: "Only police officers can update complaints"}
	}

	c, err := s.Complaints.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, NotFoundError{Msg: "Complaint not found"}
	}

	set := bson.M{}
	statusChanged := false
	if req.Status != nil {
		if !models.ValidStatus(*req.Status) {
			return nil, ValidationError{Msg: "Invalid complaint status"}
		}
		statusChanged = *req.Status != c.Status
		c.Status = *req.Status
		set["status"] = c.Status
	}
	if req.FIRNumber != nil {
		c.FIRNumber = *req.FIRNumber
		set["firNumber"] = c.FIRNumber
	}
	if req.AppliedSections != nil {
		c.AppliedSections = req.AppliedSections
		set["appliedSections"] = c.AppliedSections
	}
	if req.AssignedOfficer != nil {
		c.AssignedOfficer = *req.AssignedOfficer
		set["assignedOfficer"] = c.AssignedOfficer
	}
	if req.AnalysisResult != nil {
		c.AnalysisResult = req.AnalysisResult
		set["analysisResult"] = c.AnalysisResult
	}

	if len(set) > 0 {
		now := time.Now()
		c.UpdatedAt = &now
		set["updatedAt"] = now
		if err := s.Complaints.Update(id, bson.M{"$set": set}); err != nil {
			return nil, err
		}
	}

	if statusChanged {
		s.notifyStatusUpdate(c)
	}

	return c, nil
}

// notifyConfirmation dispatches the filing confirmation and appends the
// outcome to the audit log. Never fails the caller.
func (s *DefaultComplaintService) notifyConfirmation(c *models.Complaint) {
	if c.ComplainantPhone == "" {
		return
	}

	var isCognizable *bool
	if c.AnalysisResult != nil {
		if v, ok := c.AnalysisResult["isCognizable"].(bool); ok {
			isCognizable = &v
		}
	}

	outcome := s.Notifier.SendConfirmation(c.ComplainantPhone, c.ID, isCognizable)
	s.appendRecord(outcome, c.ID, models.NotificationConfirmation)
}

// notifyStatusUpdate dispatches the status-change SMS, including the FIR
// number when the complaint was just filed.
func (s *DefaultComplaintService) notifyStatusUpdate(c *models.Complaint) {
	if c.ComplainantPhone == "" {
		return
	}

	details := ""
	if c.Status == models.StatusFiled && c.FIRNumber != "" {
		details = "FIR Number: " + c.FIRNumber
	}

	outcome := s.Notifier.SendStatusUpdate(c.ComplainantPhone, c.ID, c.Status, details)
	s.appendRecord(outcome, c.ID, models.NotificationStatusUpdate)
}

func (s *DefaultComplaintService) appendRecord(outcome notification.Outcome, complaintID, notificationType string) {
	record := outcome.Record(complaintID, notificationType)
	if !outcome.Success {
		utils.GetLogger().Warn("notification dispatch failed",
			zap.String("complaintId", complaintID),
			zap.String("type", notificationType),
			zap.Error(outcome.Err))
	}
	if err := s.Notifications.Append(record); err != nil {
		utils.GetLogger().Error("failed to append notification record", zap.Error(err))
	}
}
