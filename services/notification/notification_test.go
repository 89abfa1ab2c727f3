package notification_test

import (
	"errors"
	"testing"

	"saarthi/models"
	"saarthi/services/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(to, body string) (string, error) {
	args := m.Called(to, body)
	return args.String(0), args.Error(1)
}

func TestFormatReference(t *testing.T) {
	assert.Equal(t, "SAR-EF5678", notification.FormatReference("abcdef5678"))
	assert.Equal(t, "SAR-ABC", notification.FormatReference("abc"))
}

func TestSendConfirmation(t *testing.T) {
	sender := new(MockSender)
	sender.On("Send", "+919876543210", mock.AnythingOfType("string")).Return("SM123", nil).Once()
	svc := &notification.DefaultNotificationService{Sender: sender}

	outcome := svc.SendConfirmation("+919876543210", "abcdef5678", nil)

	assert.True(t, outcome.Success)
	assert.Equal(t, "SM123", outcome.SID)
	assert.Contains(t, outcome.Message, "registered successfully")
	assert.Contains(t, outcome.Message, "SAR-EF5678")
	assert.NotContains(t, outcome.Message, "COGNIZABLE")
	sender.AssertExpectations(t)
}

func TestSendConfirmationCognizableAdvisory(t *testing.T) {
	sender := new(MockSender)
	sender.On("Send", mock.Anything, mock.Anything).Return("SM123", nil)
	svc := &notification.DefaultNotificationService{Sender: sender}

	cognizable := true
	outcome := svc.SendConfirmation("+919876543210", "abcdef5678", &cognizable)
	assert.Contains(t, outcome.Message, "COGNIZABLE offense which requires immediate police action")

	cognizable = false
	outcome = svc.SendConfirmation("+919876543210", "abcdef5678", &cognizable)
	assert.Contains(t, outcome.Message, "NON-COGNIZABLE offense")
}

func TestSendStatusUpdateSentences(t *testing.T) {
	sender := new(MockSender)
	sender.On("Send", mock.Anything, mock.Anything).Return("SM123", nil)
	svc := &notification.DefaultNotificationService{Sender: sender}

	cases := []struct {
		status string
		want   string
	}{
		{models.StatusPending, "pending review"},
		{models.StatusAnalyzed, "analyzed and is under investigation"},
		{models.StatusFiled, "An FIR has been filed"},
		{models.StatusRejected, "could not be processed as an FIR"},
		{models.StatusClosed, "case has been closed"},
		{"escalated", "status has been updated to: escalated"},
	}
	for _, c := range cases {
		outcome := svc.SendStatusUpdate("+919876543210", "abcdef5678", c.status, "")
		assert.True(t, outcome.Success)
		assert.Contains(t, outcome.Message, c.want, "status %q", c.status)
	}
}

func TestSendStatusUpdateWithDetails(t *testing.T) {
	sender := new(MockSender)
	sender.On("Send", mock.Anything, mock.Anything).Return("SM123", nil).Once()
	svc := &notification.DefaultNotificationService{Sender: sender}

	outcome := svc.SendStatusUpdate("+919876543210", "abcdef5678", models.StatusFiled, "FIR Number: FIR/2026/042")

	assert.Contains(t, outcome.Message, "Details: FIR Number: FIR/2026/042")
}

// TestDispatchWithoutSender verifies that a missing transport degrades to a
// failed outcome instead of panicking.
func TestDispatchWithoutSender(t *testing.T) {
	svc := &notification.DefaultNotificationService{}

	outcome := svc.SendConfirmation("+919876543210", "abcdef5678", nil)

	assert.False(t, outcome.Success)
	assert.Error(t, outcome.Err)
}

func TestDispatchWithoutRecipient(t *testing.T) {
	sender := new(MockSender)
	svc := &notification.DefaultNotificationService{Sender: sender}

	outcome := svc.SendStatusUpdate("", "abcdef5678", models.StatusFiled, "")

	assert.False(t, outcome.Success)
	assert.Error(t, outcome.Err)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestOutcomeRecord(t *testing.T) {
	ok := notification.Outcome{Success: true, SID: "SM123", To: "+919876543210", Message: "hello"}
	rec := ok.Record("complaint-1", models.NotificationConfirmation)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "complaint-1", rec.ComplaintID)
	assert.Equal(t, models.NotificationSent, rec.Status)
	assert.Equal(t, "SM123", rec.ProviderMessageID)
	assert.Empty(t, rec.Error)

	failed := notification.Outcome{To: "+919876543210", Message: "hello", Err: errors.New("boom")}
	rec = failed.Record("complaint-1", models.NotificationStatusUpdate)
	assert.Equal(t, models.NotificationFailed, rec.Status)
	assert.Equal(t, "boom", rec.Error)
}
