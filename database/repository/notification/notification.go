package notificationRepo

import "saarthi/models"

// NotificationRepository is an append-only audit log of SMS dispatch attempts.
type NotificationRepository interface {
	// Append records a dispatch attempt.
	Append(record *models.NotificationRecord) error
	// GetByComplaint retrieves all dispatch records for a complaint,
	// newest first.
	GetByComplaint(complaintID string) ([]models.NotificationRecord, error)
}
