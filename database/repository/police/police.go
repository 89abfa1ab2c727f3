package policeRepo

import "saarthi/models"

// PoliceRepository defines methods for police officer data access.
type PoliceRepository interface {
	// GetByID retrieves an officer by its unique ID.
	GetByID(id string) (*models.PoliceOfficer, error)
	// GetByEmail retrieves an officer by its email address.
	GetByEmail(email string) (*models.PoliceOfficer, error)
	// Create inserts a new officer record.
	Create(officer *models.PoliceOfficer) error
}
