package referenceRepo

import "saarthi/models"

// ReferenceRepository serves seeded, read-only legal reference data.
type ReferenceRepository interface {
	// GetIPCSections retrieves all seeded IPC sections.
	GetIPCSections() ([]models.IPCSection, error)
	// GetLegalRights retrieves all seeded legal rights.
	GetLegalRights() ([]models.LegalRight, error)
}
