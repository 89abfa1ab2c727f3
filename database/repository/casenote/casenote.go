package casenoteRepo

import "saarthi/models"

// CaseNoteRepository defines methods for case note data access.
type CaseNoteRepository interface {
	// Create inserts a new case note.
	Create(note *models.CaseNote) error
	// GetByComplaint retrieves all notes for a complaint, newest first.
	GetByComplaint(complaintID string) ([]models.CaseNote, error)
	// GetPublicByComplaint retrieves only public-visibility notes for a
	// complaint, newest first.
	GetPublicByComplaint(complaintID string) ([]models.CaseNote, error)
}
