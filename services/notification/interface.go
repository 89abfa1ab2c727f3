package notification

import (
	"fmt"
	"strings"
	"time"

	"saarthi/models"

	"github.com/google/uuid"
)

// Sender abstracts the SMS transport. A nil Sender means SMS is not
// configured and every dispatch degrades to a failed outcome.
type Sender interface {
	// Send delivers a message body to a phone number and returns the
	// provider message ID.
	Send(to, body string) (string, error)
}

// Outcome is the result of one dispatch attempt. Errors are carried here for
// the caller's audit log, never raised as request failures.
type Outcome struct {
	Success bool
	SID     string
	To      string
	Message string
	Err     error
}

// Record converts an outcome into an append-only audit entry.
func (o Outcome) Record(complaintID, notificationType string) *models.NotificationRecord {
	rec := &models.NotificationRecord{
		ID:                uuid.New().String(),
		ComplaintID:       complaintID,
		RecipientPhone:    o.To,
		Type:              notificationType,
		Message:           o.Message,
		Status:            models.NotificationSent,
		ProviderMessageID: o.SID,
		SentAt:            time.Now(),
	}
	if !o.Success {
		rec.Status = models.NotificationFailed
		if o.Err != nil {
			rec.Error = o.Err.Error()
		}
	}
	return rec
}

// NotificationService formats and sends complaint SMS messages.
type NotificationService interface {
	SendConfirmation(to, complaintID string, isCognizable *bool) Outcome
	SendStatusUpdate(to, complaintID, status, details string) Outcome
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Sender Sender
}

// FormatReference shortens a complaint ID into the human-facing reference
// printed in every SMS.
func FormatReference(complaintID string) string {
	tail := complaintID
	if len(tail) > 6 {
		tail = tail[len(tail)-6:]
	}
	return strings.ToUpper("SAR-" + tail)
}

// statusSentences maps each status to its notification wording.
var statusSentences = map[string]string{
	models.StatusPending:  "Your complaint is pending review.",
	models.StatusAnalyzed: "Your complaint has been analyzed and is under investigation.",
	models.StatusFiled:    "An FIR has been filed for your complaint.",
	models.StatusRejected: "Your complaint has been reviewed but could not be processed as an FIR.",
	models.StatusClosed:   "Your complaint case has been closed.",
}

// SendConfirmation sends the post-registration confirmation SMS.
func (s *DefaultNotificationService) SendConfirmation(to, complaintID string, isCognizable *bool) Outcome {
	var b strings.Builder
	fmt.Fprintf(&b, "Your complaint has been registered successfully at %s.\n\nComplaint ID: %s\n",
		time.Now().Format("02/01/2006 15:04"), FormatReference(complaintID))

	if isCognizable != nil {
		if *isCognizable {
			b.WriteString("\nThis appears to be a COGNIZABLE offense which requires immediate police action.")
		} else {
			b.WriteString("\nThis appears to be a NON-COGNIZABLE offense. Please follow up with the police station.")
		}
	}
	b.WriteString("\n\nYou can track the status through the SAARTHI app or website.")

	return s.dispatch(to, b.String())
}

// SendStatusUpdate sends the SMS for a complaint status change.
func (s *DefaultNotificationService) SendStatusUpdate(to, complaintID, status, details string) Outcome {
	sentence, ok := statusSentences[status]
	if !ok {
		sentence = fmt.Sprintf("Your complaint status has been updated to: %s", status)
	}

	message := fmt.Sprintf("Update for Complaint %s: %s", FormatReference(complaintID), sentence)
	if details != "" {
		message += fmt.Sprintf("\n\nDetails: %s", details)
	}
	message += "\n\nFor more information, please log in to the SAARTHI app or website."

	return s.dispatch(to, message)
}

func (s *DefaultNotificationService) dispatch(to, message string) Outcome {
	outcome := Outcome{To: to, Message: message}
	if s.Sender == nil {
		outcome.Err = fmt.Errorf("SMS transport not configured")
		return outcome
	}
	if to == "" {
		outcome.Err = fmt.Errorf("missing recipient phone number")
		return outcome
	}

	sid, err := s.Sender.Send(to, message)
	if err != nil {
		outcome.Err = err
		return outcome
	}
	outcome.Success = true
	outcome.SID = sid
	return outcome
}
