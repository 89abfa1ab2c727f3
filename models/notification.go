package models

import "time"

// Notification record types and delivery outcomes.
const (
	NotificationConfirmation = "confirmation"
	NotificationStatusUpdate = "status_update"

	NotificationSent   = "sent"
	NotificationFailed = "failed"
)

// NotificationRecord is an append-only audit entry for an SMS dispatch
// attempt. Delivery failures are recorded here, never surfaced as request
// failures.
type NotificationRecord struct {
	ID                string    `bson:"id" json:"id"`
	ComplaintID       string    `bson:"complaint_id" json:"complaint_id"`
	RecipientPhone    string    `bson:"recipient_phone" json:"recipient_phone"`
	Type              string    `bson:"type" json:"type"`
	Message           string    `bson:"message" json:"message"`
	Status            string    `bson:"status" json:"status"`
	Error             string    `bson:"error,omitempty" json:"error,omitempty"`
	ProviderMessageID string    `bson:"provider_message_id,omitempty" json:"provider_message_id,omitempty"`
	SentAt            time.Time `bson:"sent_at" json:"sent_at"`
}
