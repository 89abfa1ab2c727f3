package complaint_test

import (
	"context"
	"strings"
	"testing"

	"saarthi/models"
	"saarthi/services/complaint"
	"saarthi/services/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
)

const testPhone = "+919876543210"

var (
	victimPrincipal = models.Principal{ID: "v1", Role: models.RoleVictim, Name: "Asha"}
	policePrincipal = models.Principal{ID: "p1", Role: models.RolePolice, Name: "Insp. Rao"}
)

func newComplaintService() (*complaint.DefaultComplaintService, *MockComplaintRepo, *MockVictimRepo, *MockPreRegisteredRepo, *MockCaseNoteRepo, *MockNotificationRepo, *MockNotifier) {
	complaints := new(MockComplaintRepo)
	victims := new(MockVictimRepo)
	preRegistered := new(MockPreRegisteredRepo)
	notes := new(MockCaseNoteRepo)
	records := new(MockNotificationRepo)
	notifier := new(MockNotifier)
	svc := &complaint.DefaultComplaintService{
		Complaints:    complaints,
		Victims:       victims,
		PreRegistered: preRegistered,
		Notes:         notes,
		Notifications: records,
		Notifier:      notifier,
	}
	return svc, complaints, victims, preRegistered, notes, records, notifier
}

func TestCreateRequiresTextAndLanguage(t *testing.T) {
	svc, _, _, _, _, _, _ := newComplaintService()

	_, err := svc.Create(context.Background(), victimPrincipal, complaint.CreateRequest{Language: "hi"})
	assert.IsType(t, complaint.ValidationError{}, err)

	_, err = svc.Create(context.Background(), victimPrincipal, complaint.CreateRequest{Text: "stolen scooter"})
	assert.IsType(t, complaint.ValidationError{}, err)
}

// TestCreateSelfAttributed verifies a victim filing carries their own
// identity and resolved phone, and a confirmation is dispatched and logged.
func TestCreateSelfAttributed(t *testing.T) {
	svc, complaints, victims, _, _, records, notifier := newComplaintService()
	victims.On("GetByID", "v1").Return(&models.Victim{ID: "v1", Name: "Asha", Phone: testPhone}, nil)
	complaints.On("Create", mock.MatchedBy(func(c *models.Complaint) bool {
		return c.ComplainantID == "v1" && c.ComplainantName == "Asha" &&
			c.ComplainantPhone == testPhone && c.Status == models.StatusPending
	})).Return(nil).Once()
	notifier.On("SendConfirmation", testPhone, mock.AnythingOfType("string"), (*bool)(nil)).
		Return(notification.Outcome{Success: true, SID: "SM1", To: testPhone}).Once()
	records.On("Append", mock.MatchedBy(func(r *models.NotificationRecord) bool {
		return r.Type == models.NotificationConfirmation && r.Status == models.NotificationSent
	})).Return(nil).Once()

	created, err := svc.Create(context.Background(), victimPrincipal, complaint.CreateRequest{
		Text: "stolen scooter", Language: "hi",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Nil(t, created.FiledBy)
	complaints.AssertExpectations(t)
	notifier.AssertExpectations(t)
	records.AssertExpectations(t)
}

// TestCreateOnBehalfExistingVictim verifies the police filing path attributes
// the complaint to the resolved victim and stamps the filing officer.
func TestCreateOnBehalfExistingVictim(t *testing.T) {
	svc, complaints, victims, _, _, records, notifier := newComplaintService()
	victims.On("GetByPhone", testPhone).Return(&models.Victim{ID: "v1", Name: "Asha", Phone: testPhone}, nil)
	complaints.On("Create", mock.MatchedBy(func(c *models.Complaint) bool {
		return c.ComplainantID == "v1" && c.ComplainantName == "Asha" &&
			c.FiledBy != nil && c.FiledBy.ID == "p1" && c.FiledBy.Role == models.RolePolice
	})).Return(nil).Once()
	notifier.On("SendConfirmation", testPhone, mock.AnythingOfType("string"), (*bool)(nil)).
		Return(notification.Outcome{Success: true, To: testPhone})
	records.On("Append", mock.Anything).Return(nil)

	_, err := svc.Create(context.Background(), policePrincipal, complaint.CreateRequest{
		Text: "stolen scooter", Language: "hi",
		VictimPhone: "9876543210", VictimName: "Asha",
	})

	assert.NoError(t, err)
	complaints.AssertExpectations(t)
}

// TestCreateOnBehalfUnknownPhone verifies that filing for an unknown phone
// creates a pre-registration attributed to the filing officer.
func TestCreateOnBehalfUnknownPhone(t *testing.T) {
	svc, complaints, victims, preRegistered, _, records, notifier := newComplaintService()
	victims.On("GetByPhone", testPhone).Return(nil, nil)
	preRegistered.On("GetByPhone", testPhone).Return(nil, nil)
	preRegistered.On("Create", mock.MatchedBy(func(p *models.PreRegisteredVictim) bool {
		return p.Name == "Meera" && p.Phone == testPhone &&
			p.RegisteredBy != nil && p.RegisteredBy.ID == "p1"
	})).Return(nil).Once()
	complaints.On("Create", mock.MatchedBy(func(c *models.Complaint) bool {
		return c.ComplainantName == "Meera" && c.ComplainantPhone == testPhone
	})).Return(nil).Once()
	notifier.On("SendConfirmation", mock.Anything, mock.Anything, mock.Anything).
		Return(notification.Outcome{Success: true, To: testPhone})
	records.On("Append", mock.Anything).Return(nil)

	_, err := svc.Create(context.Background(), policePrincipal, complaint.CreateRequest{
		Text: "stolen scooter", Language: "hi",
		VictimPhone: "9876543210", VictimName: "Meera",
	})

	assert.NoError(t, err)
	preRegistered.AssertExpectations(t)
	complaints.AssertExpectations(t)
}

// TestCreateDerivesSuggestedSections verifies section extraction from a
// cognizable analysis result.
func TestCreateDerivesSuggestedSections(t *testing.T) {
	svc, complaints, victims, _, _, records, notifier := newComplaintService()
	victims.On("GetByID", "v1").Return(nil, nil)
	complaints.On("Create", mock.MatchedBy(func(c *models.Complaint) bool {
		return assert.ObjectsAreEqual([]string{"IPC 354", "IPC 509"}, c.SuggestedSections)
	})).Return(nil).Once()
	notifier.On("SendConfirmation", mock.Anything, mock.Anything, mock.Anything).
		Return(notification.Outcome{Success: true})
	records.On("Append", mock.Anything).Return(nil)

	_, err := svc.Create(context.Background(), victimPrincipal, complaint.CreateRequest{
		Text: "harassment at workplace", Language: "en",
		AnalysisResult: map[string]interface{}{
			"isCognizable": true,
			"sections": []interface{}{
				map[string]interface{}{"section": "IPC 354"},
				map[string]interface{}{"section": "IPC 509"},
			},
		},
	})

	assert.NoError(t, err)
	complaints.AssertExpectations(t)
}

// TestListPoliceGetsAll verifies police receive the full records.
func TestListPoliceGetsAll(t *testing.T) {
	svc, complaints, _, _, _, _, _ := newComplaintService()
	complaints.On("GetAll").Return([]models.Complaint{{ID: "c1"}, {ID: "c2"}}, nil)

	listing, err := svc.List(context.Background(), policePrincipal)

	assert.NoError(t, err)
	assert.Len(t, listing.Full, 2)
	assert.Nil(t, listing.Summaries)
}

// TestListVictimGetsOwnSummaries verifies victims only see their own
// complaints, projected to summaries with long text truncated.
func TestListVictimGetsOwnSummaries(t *testing.T) {
	svc, complaints, _, _, _, _, _ := newComplaintService()
	longText := strings.Repeat("a", 150)
	complaints.On("GetByComplainant", "v1").Return([]models.Complaint{
		{ID: "c1", Text: longText, Status: models.StatusPending, ComplainantPhone: testPhone},
	}, nil)

	listing, err := svc.List(context.Background(), victimPrincipal)

	assert.NoError(t, err)
	assert.Nil(t, listing.Full)
	assert.Len(t, listing.Summaries, 1)
	summary := listing.Summaries[0]
	assert.Len(t, summary.Text, 100)
	assert.Equal(t, 150, summary.TextLength)
}

func TestGetNotFound(t *testing.T) {
	svc, complaints, _, _, _, _, _ := newComplaintService()
	complaints.On("GetByID", "missing").Return(nil, nil)

	_, err := svc.Get(context.Background(), policePrincipal, "missing")
	assert.IsType(t, complaint.NotFoundError{}, err)
}

// TestGetVictimScoping verifies a victim cannot read another complainant's
// complaint.
func TestGetVictimScoping(t *testing.T) {
	svc, complaints, _, _, _, _, _ := newComplaintService()
	complaints.On("GetByID", "c1").Return(&models.Complaint{ID: "c1", ComplainantID: "someone-else"}, nil)
	complaints.On("GetByID", "c2").Return(&models.Complaint{ID: "c2", ComplainantID: "v1"}, nil)

	_, err := svc.Get(context.Background(), victimPrincipal, "c1")
	assert.IsType(t, complaint.ForbiddenError{}, err)

	detail, err := svc.Get(context.Background(), victimPrincipal, "c2")
	assert.NoError(t, err)
	assert.Equal(t, "c2", detail.ID)
	assert.Nil(t, detail.VictimContact)
}

// TestGetPoliceContactResolution verifies police get contact details resolved
// through the pre-registration fallback.
func TestGetPoliceContactResolution(t *testing.T) {
	svc, complaints, victims, preRegistered, _, _, _ := newComplaintService()
	complaints.On("GetByID", "c1").Return(&models.Complaint{ID: "c1", ComplainantID: "pre1"}, nil)
	victims.On("GetByID", "pre1").Return(nil, nil)
	preRegistered.On("GetByID", "pre1").Return(&models.PreRegisteredVictim{
		ID: "pre1", Name: "Meera", Phone: testPhone, Address: "MG Road",
	}, nil)

	detail, err := svc.Get(context.Background(), policePrincipal, "c1")

	assert.NoError(t, err)
	assert.NotNil(t, detail.VictimContact)
	assert.Equal(t, "Meera", detail.VictimContact.Name)
	assert.Equal(t, testPhone, detail.VictimContact.Phone)
}

func TestUpdateRequiresPolice(t *testing.T) {
	svc, _, _, _, _, _, _ := newComplaintService()

	status := models.StatusFiled
	_, err := svc.Update(context.Background(), victimPrincipal, "c1", complaint.UpdateRequest{Status: &status})
	assert.IsType(t, complaint.ForbiddenError{}, err)
}

func TestUpdateRejectsUnknownStatus(t *testing.T) {
	svc, complaints, _, _, _, _, _ := newComplaintService()
	complaints.On("GetByID", "c1").Return(&models.Complaint{ID: "c1", Status: models.StatusPending}, nil)

	status := "vanished"
	_, err := svc.Update(context.Background(), policePrincipal, "c1", complaint.UpdateRequest{Status: &status})
	assert.IsType(t, complaint.ValidationError{}, err)
}

// TestUpdateStatusChangeNotifiesOnce verifies a status transition dispatches
// exactly one status_update SMS with the FIR number and appends one record.
func TestUpdateStatusChangeNotifiesOnce(t *testing.T) {
	svc, complaints, _, _, _, records, notifier := newComplaintService()
	complaints.On("GetByID", "c1").Return(&models.Complaint{
		ID: "c1", Status: models.StatusPending, ComplainantPhone: testPhone,
	}, nil)
	complaints.On("Update", "c1", mock.MatchedBy(func(u bson.M) bool {
		set, ok := u["$set"].(bson.M)
		return ok && set["status"] == models.StatusFiled && set["firNumber"] == "FIR/2026/042"
	})).Return(nil).Once()
	notifier.On("SendStatusUpdate", testPhone, "c1", models.StatusFiled, "FIR Number: FIR/2026/042").
		Return(notification.Outcome{Success: true, To: testPhone}).Once()
	records.On("Append", mock.MatchedBy(func(r *models.NotificationRecord) bool {
		return r.Type == models.NotificationStatusUpdate
	})).Return(nil).Once()

	status := models.StatusFiled
	fir := "FIR/2026/042"
	updated, err := svc.Update(context.Background(), policePrincipal, "c1", complaint.UpdateRequest{
		Status: &status, FIRNumber: &fir,
	})

	assert.NoError(t, err)
	assert.Equal(t, models.StatusFiled, updated.Status)
	assert.NotNil(t, updated.UpdatedAt)
	notifier.AssertExpectations(t)
	records.AssertExpectations(t)
}

// TestUpdateSameStatusDoesNotNotify verifies setting the current status again
// is not a transition.
func TestUpdateSameStatusDoesNotNotify(t *testing.T) {
	svc, complaints, _, _, _, _, notifier := newComplaintService()
	complaints.On("GetByID", "c1").Return(&models.Complaint{
		ID: "c1", Status: models.StatusPending, ComplainantPhone: testPhone,
	}, nil)
	complaints.On("Update", "c1", mock.Anything).Return(nil)

	status := models.StatusPending
	_, err := svc.Update(context.Background(), policePrincipal, "c1", complaint.UpdateRequest{Status: &status})

	assert.NoError(t, err)
	notifier.AssertNotCalled(t, "SendStatusUpdate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// TestUpdateEmptyPatchWritesNothing verifies a patch with no recognised
// fields performs no update.
func TestUpdateEmptyPatchWritesNothing(t *testing.T) {
	svc, complaints, _, _, _, _, _ := newComplaintService()
	complaints.On("GetByID", "c1").Return(&models.Complaint{ID: "c1", Status: models.StatusPending}, nil)

	_, err := svc.Update(context.Background(), policePrincipal, "c1", complaint.UpdateRequest{})

	assert.NoError(t, err)
	complaints.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
