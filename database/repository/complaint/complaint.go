package complaintRepo

import (
	"saarthi/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ComplaintRepository defines methods for complaint data access.
type ComplaintRepository interface {
	// GetByID retrieves a complaint by its unique ID.
	GetByID(id string) (*models.Complaint, error)
	// GetAll retrieves all complaints, newest first.
	GetAll() ([]models.Complaint, error)
	// GetByComplainant retrieves complaints filed under a complainant ID.
	GetByComplainant(complainantID string) ([]models.Complaint, error)
	// GetByComplainantOrPhone retrieves complaints linked to either the
	// complainant ID or the phone number, covering records not yet relinked
	// after a promotion.
	GetByComplainantOrPhone(complainantID, phone string) ([]models.Complaint, error)
	// GetByPhone retrieves complaints keyed by complainant phone number.
	GetByPhone(phone string) ([]models.Complaint, error)
	// Create inserts a new complaint record.
	Create(complaint *models.Complaint) error
	// Update applies a partial update document to a complaint.
	Update(id string, update bson.M) error
	// RelinkByPhone points all complaints carrying the phone number at a new
	// complainant ID. Returns the number of relinked records.
	RelinkByPhone(phone, complainantID string) (int64, error)
}
