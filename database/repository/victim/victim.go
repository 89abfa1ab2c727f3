package victimRepo

import (
	"saarthi/models"

	"go.mongodb.org/mongo-driver/bson"
)

// VictimRepository defines methods for verified victim data access.
type VictimRepository interface {
	// GetByID retrieves a victim by its unique ID.
	GetByID(id string) (*models.Victim, error)
	// GetByPhone retrieves a victim by its unique phone number.
	GetByPhone(phone string) (*models.Victim, error)
	// Create inserts a new victim record.
	Create(victim *models.Victim) error
	// Update applies a partial update document to a victim record.
	Update(id string, update bson.M) error
}

// PreRegisteredRepository defines methods for pre-registered victim records.
type PreRegisteredRepository interface {
	// GetByID retrieves a pre-registration by its unique ID.
	GetByID(id string) (*models.PreRegisteredVictim, error)
	// GetByPhone retrieves a pre-registration by phone number.
	GetByPhone(phone string) (*models.PreRegisteredVictim, error)
	// Create inserts a new pre-registration.
	Create(victim *models.PreRegisteredVictim) error
	// Update applies a partial update document to a pre-registration.
	Update(id string, update bson.M) error
}
