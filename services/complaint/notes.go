package complaint

import (
	"context"
	"time"

	"saarthi/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// AddNote attaches an investigation-log entry to a complaint. Police-only.
// A stage, when given, also advances the complaint's current stage.
func (s *DefaultComplaintService) AddNote(ctx context.Context, principal models.Principal, complaintID string, req AddNoteRequest) (*models.CaseNote, error) {
	if !principal.IsPolice() {
		return nil, ForbiddenError{Msg: "Only police officers can add case notes"}
	}
	if req.Content == "" {
		return nil, ValidationError{Msg: "Note content is required"}
	}
	if req.Visibility == "" {
		req.Visibility = models.VisibilityInternal
	}
	if !models.ValidVisibility(req.Visibility) {
		return nil, ValidationError{Msg: "Visibility must be 'internal' or 'public'"}
	}

	c, err := s.Complaints.GetByID(complaintID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, NotFoundError{Msg: "Complaint not found"}
	}

	note := &models.CaseNote{
		ID:          uuid.New().String(),
		ComplaintID: complaintID,
		AuthorID:    principal.ID,
		AuthorName:  principal.Name,
		Content:     req.Content,
		Stage:       req.Stage,
		Visibility:  req.Visibility,
		CreatedAt:   time.Now(),
	}
	if err := s.Notes.Create(note); err != nil {
		return nil, err
	}

	if req.Stage != "" {
		update := bson.M{"$set": bson.M{
			"currentStage": req.Stage,
			"updatedAt":    time.Now(),
		}}
		if err := s.Complaints.Update(complaintID, update); err != nil {
			return nil, err
		}
	}

	return note, nil
}

// ListNotes returns a complaint's notes, newest first. Victims see only the
// public notes of their own complaint; police see everything.
func (s *DefaultComplaintService) ListNotes(ctx context.Context, principal models.Principal, complaintID string) ([]models.CaseNote, error) {
	c, err := s.Complaints.GetByID(complaintID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, NotFoundError{Msg: "Complaint not found"}
	}

	var notes []models.CaseNote
	if principal.IsPolice() {
		notes, err = s.Notes.GetByComplaint(complaintID)
	} else {
		if c.ComplainantID != principal.ID {
			return nil, ForbiddenError{Msg: "Unauthorized access"}
		}
		notes, err = s.Notes.GetPublicByComplaint(complaintID)
	}
	if err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []models.CaseNote{}
	}
	return notes, nil
}
